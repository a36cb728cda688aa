package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"college-chatbot-be/internal/constant"
	"college-chatbot-be/internal/dto"
	"college-chatbot-be/internal/mapper"
	"college-chatbot-be/internal/pkg/logger"
	"college-chatbot-be/internal/repository/memory"
	"college-chatbot-be/pkg/store"
)

// IChatService drives the conversation: session creation, mode
// transitions, inactivity expiry, and the retrieval-augmented answer flow.
type IChatService interface {
	StartSession(ctx context.Context) (*dto.ChatStateResponse, error)
	SelectMode(ctx context.Context, request *dto.SelectModeRequest) (*dto.ChatStateResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.ChatStateResponse, error)
	GetHistory(ctx context.Context, sessionId string) (*dto.ChatStateResponse, error)
}

type chatService struct {
	sessionRepo *memory.SessionRepository
	pipeline    AnswerPipeline
	log         logger.ILogger
	timeout     time.Duration
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	pipeline AnswerPipeline,
	log logger.ILogger,
	timeout time.Duration,
) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		pipeline:    pipeline,
		log:         log,
		timeout:     timeout,
	}
}

func (cs *chatService) StartSession(ctx context.Context) (*dto.ChatStateResponse, error) {
	session := &store.Session{
		ID:           uuid.NewString(),
		Mode:         store.ModeGeneral,
		LastActivity: time.Now(),
	}
	cs.sessionRepo.Save(session)

	cs.log.Info("chat", "session started", map[string]interface{}{"session_id": session.ID})

	return mapper.ToChatStateResponse(session), nil
}

func (cs *chatService) SelectMode(ctx context.Context, request *dto.SelectModeRequest) (*dto.ChatStateResponse, error) {
	session, found := cs.sessionRepo.Get(request.SessionId)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	mode := store.Mode(request.Mode)
	if !mode.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown mode")
	}

	// Every menu action resets history and the previous mode before the
	// new one takes effect.
	cs.reset(session)
	session.Mode = mode

	if greeting, ok := constant.ModeGreetings[mode]; ok {
		appendMessage(session, store.MessageRoleBot, greeting)
	}

	cs.sessionRepo.Save(session)

	return mapper.ToChatStateResponse(session), nil
}

func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.ChatStateResponse, error) {
	session, found := cs.sessionRepo.Get(request.SessionId)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	if expired := cs.expireIfInactive(session); expired != nil {
		// The pending input is dropped; the client re-renders from a
		// clean state, matching the original's restart-from-top.
		return expired, nil
	}

	if session.Mode == store.ModeComplaint {
		return nil, fiber.NewError(fiber.StatusConflict, "complaint mode accepts input through the complaint form")
	}

	appendMessage(session, store.MessageRoleUser, request.Chat)
	session.LastActivity = time.Now()
	cs.sessionRepo.Save(session)

	query := composeQuery(session.Mode, request.Chat)

	reply, err := cs.pipeline.Answer(ctx, query)
	if err != nil {
		cs.log.Error("chat", "answer chain failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	appendMessage(session, store.MessageRoleBot, reply)
	session.InputVersion++
	cs.sessionRepo.Save(session)

	return mapper.ToChatStateResponse(session), nil
}

func (cs *chatService) GetHistory(ctx context.Context, sessionId string) (*dto.ChatStateResponse, error) {
	session, found := cs.sessionRepo.Get(sessionId)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	if expired := cs.expireIfInactive(session); expired != nil {
		return expired, nil
	}

	return mapper.ToChatStateResponse(session), nil
}

// expireIfInactive applies the inactivity rule. Returns the cleared render
// state when the session expired, nil otherwise.
func (cs *chatService) expireIfInactive(session *store.Session) *dto.ChatStateResponse {
	if time.Since(session.LastActivity) <= cs.timeout {
		return nil
	}

	cs.reset(session)
	cs.sessionRepo.Save(session)

	cs.log.Info("chat", "session expired from inactivity", map[string]interface{}{
		"session_id": session.ID,
	})

	state := mapper.ToChatStateResponse(session)
	state.Expired = true
	state.Notice = constant.SessionExpiredNotice
	return state
}

// reset clears history and mode, bumps the input widget version, and
// refreshes the activity timestamp.
func (cs *chatService) reset(session *store.Session) {
	session.Messages = nil
	session.Mode = store.ModeGeneral
	session.InputVersion++
	session.LastActivity = time.Now()
}

func composeQuery(mode store.Mode, text string) string {
	if template, ok := constant.ModeQueryTemplates[mode]; ok {
		return fmt.Sprintf(template, text)
	}
	return text
}

func appendMessage(session *store.Session, role, content string) {
	session.Messages = append(session.Messages, store.Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
}
