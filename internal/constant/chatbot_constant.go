package constant

import "college-chatbot-be/pkg/store"

// Greeting appended to the history when a mode is selected. Complaint mode
// has no greeting; the structured form takes over.
var ModeGreetings = map[store.Mode]string{
	store.ModeGeneral:   "👋 Hi! I'm Aadya — Ask about admissions, fees, exams, or class schedules.",
	store.ModeAdmission: "Which course are you looking for admission? (e.g., BCA, MBA, BSc)",
	store.ModeSchedule:  "For which course would you like to check the class schedule? (e.g., BA, BSc, MSc)",
	store.ModeFees:      "For which course would you like to check the fee details? (e.g., BA, BSc, MSc)",
	store.ModeExam:      "For which course exam schedule or result details would you like to see?",
}

// Query prefix templates per mode. General mode sends the raw text through
// unprefixed.
var ModeQueryTemplates = map[store.Mode]string{
	store.ModeAdmission: "Admission details for %s",
	store.ModeSchedule:  "Class schedule for %s",
	store.ModeFees:      "Fee details for %s",
	store.ModeExam:      "Exam details for %s",
}

const (
	SessionExpiredNotice = "⏳ Session expired due to 10 minutes of inactivity. Starting a new chat."

	ComplaintSuccessMessage = "✅ Your complaint has been recorded successfully. Our team will reach out soon."
)

// Complaint categories, first entry is the form default.
var ComplaintCategories = []string{"Admission", "Fees", "Exam", "Facilities", "Other"}
