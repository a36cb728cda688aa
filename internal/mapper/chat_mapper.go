package mapper

import (
	"college-chatbot-be/internal/dto"
	"college-chatbot-be/pkg/store"
)

func ToChatStateResponse(session *store.Session) *dto.ChatStateResponse {
	messages := make([]dto.MessageDTO, 0, len(session.Messages))
	for _, msg := range session.Messages {
		messages = append(messages, dto.MessageDTO{
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return &dto.ChatStateResponse{
		SessionId:    session.ID,
		Mode:         session.Mode,
		Messages:     messages,
		InputVersion: session.InputVersion,
	}
}
