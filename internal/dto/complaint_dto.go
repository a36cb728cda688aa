package dto

type SubmitComplaintRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	Name      string `json:"name" validate:"required"`
	Contact   string `json:"contact" validate:"required"`
	Category  string `json:"category" validate:"required,oneof=Admission Fees Exam Facilities Other"`
	Complaint string `json:"complaint" validate:"required"`
}

type SubmitComplaintResponse struct {
	Message string             `json:"message"`
	State   *ChatStateResponse `json:"state"`
}
