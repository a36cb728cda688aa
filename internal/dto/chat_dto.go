package dto

import (
	"time"

	"college-chatbot-be/pkg/store"
)

type MessageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatStateResponse is the render model returned after every session
// transition: the client redraws from it instead of re-running a page.
type ChatStateResponse struct {
	SessionId    string       `json:"session_id"`
	Mode         store.Mode   `json:"mode"`
	Messages     []MessageDTO `json:"messages"`
	InputVersion int          `json:"input_version"`
	Expired      bool         `json:"expired,omitempty"`
	Notice       string       `json:"notice,omitempty"`
}

type SelectModeRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	Mode      string `json:"mode" validate:"required,oneof=general admission schedule fees exam complaint"`
}

type SendChatRequest struct {
	SessionId string `json:"session_id" validate:"required,uuid4"`
	Chat      string `json:"chat" validate:"required"`
}
