package service

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"college-chatbot-be/internal/constant"
	"college-chatbot-be/internal/dto"
	"college-chatbot-be/internal/mapper"
	"college-chatbot-be/internal/pkg/logger"
	"college-chatbot-be/internal/repository/memory"
	"college-chatbot-be/pkg/complaintlog"
	"college-chatbot-be/pkg/store"
)

type IComplaintService interface {
	Submit(ctx context.Context, request *dto.SubmitComplaintRequest) (*dto.SubmitComplaintResponse, error)
}

type complaintService struct {
	sessionRepo *memory.SessionRepository
	writer      *complaintlog.Writer
	log         logger.ILogger
}

func NewComplaintService(
	sessionRepo *memory.SessionRepository,
	writer *complaintlog.Writer,
	log logger.ILogger,
) IComplaintService {
	return &complaintService{
		sessionRepo: sessionRepo,
		writer:      writer,
		log:         log,
	}
}

// Submit appends a validated complaint to the shared log and drops the
// session back to general mode. Field validation happens in the controller;
// an invalid form never reaches this method, so the session stays in
// complaint mode for retry.
func (cs *complaintService) Submit(ctx context.Context, request *dto.SubmitComplaintRequest) (*dto.SubmitComplaintResponse, error) {
	session, found := cs.sessionRepo.Get(request.SessionId)
	if !found {
		return nil, fiber.NewError(fiber.StatusNotFound, "session not found")
	}

	if session.Mode != store.ModeComplaint {
		return nil, fiber.NewError(fiber.StatusConflict, "session is not in complaint mode")
	}

	record := complaintlog.Record{
		Timestamp: time.Now(),
		Name:      request.Name,
		Contact:   request.Contact,
		Category:  request.Category,
		Complaint: request.Complaint,
	}
	if err := cs.writer.Append(record); err != nil {
		cs.log.Error("complaint", "failed to persist complaint", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	cs.log.Info("complaint", "complaint recorded", map[string]interface{}{
		"session_id": session.ID,
		"category":   request.Category,
	})

	// Back to a clean general-mode session. The original slept a few
	// seconds before this reset; presentation delay belongs to the client.
	session.Messages = nil
	session.Mode = store.ModeGeneral
	session.InputVersion++
	session.LastActivity = time.Now()
	cs.sessionRepo.Save(session)

	return &dto.SubmitComplaintResponse{
		Message: constant.ComplaintSuccessMessage,
		State:   mapper.ToChatStateResponse(session),
	}, nil
}
