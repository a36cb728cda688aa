package store

import "time"

// Document is one retrievable FAQ block ("Category/Q/A" text) with the
// similarity score attached after a search.
type Document struct {
	ID      int     `json:"id"`
	Content string  `json:"content"`
	Score   float32 `json:"score"`
}

// Message is a single turn in the conversation.
type Message struct {
	Role      string    `json:"role"` // "user" | "bot"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Mode is the active conversational context. Exactly one value is held per
// session, which makes the original's five mutually exclusive flags
// structurally impossible to violate.
type Mode string

const (
	ModeGeneral   Mode = "general"
	ModeAdmission Mode = "admission"
	ModeSchedule  Mode = "schedule"
	ModeFees      Mode = "fees"
	ModeExam      Mode = "exam"
	ModeComplaint Mode = "complaint"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeGeneral, ModeAdmission, ModeSchedule, ModeFees, ModeExam, ModeComplaint:
		return true
	}
	return false
}

// Session is the per-user conversation state held in memory.
type Session struct {
	ID           string    `json:"id"`
	Mode         Mode      `json:"mode"`
	Messages     []Message `json:"messages"`
	InputVersion int       `json:"input_version"` // bumped to force a fresh input widget
	LastActivity time.Time `json:"last_activity"`
}

const (
	MessageRoleUser = "user"
	MessageRoleBot  = "bot"
)
