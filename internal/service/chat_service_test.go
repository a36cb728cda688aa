package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"college-chatbot-be/internal/constant"
	"college-chatbot-be/internal/dto"
	"college-chatbot-be/internal/repository/memory"
	"college-chatbot-be/pkg/store"
)

// fakePipeline records composed queries instead of hitting the FAQ source.
type fakePipeline struct {
	queries []string
	reply   string
	err     error
}

func (f *fakePipeline) Answer(ctx context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestChatService(pipeline AnswerPipeline) (IChatService, *memory.SessionRepository) {
	repo := memory.NewSessionRepository()
	svc := NewChatService(repo, pipeline, nopLogger{}, 10*time.Minute)
	return svc, repo
}

func startSession(t *testing.T, svc IChatService) string {
	t.Helper()
	state, err := svc.StartSession(context.Background())
	assert.NoError(t, err)
	return state.SessionId
}

func TestStartSessionInitialState(t *testing.T) {
	svc, _ := newTestChatService(&fakePipeline{})

	state, err := svc.StartSession(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, store.ModeGeneral, state.Mode)
	assert.Empty(t, state.Messages)
	assert.Equal(t, 0, state.InputVersion)
	assert.NotEmpty(t, state.SessionId)
}

func TestSelectModeAppendsGreeting(t *testing.T) {
	tests := []struct {
		mode     string
		greeting string
	}{
		{mode: "general", greeting: constant.ModeGreetings[store.ModeGeneral]},
		{mode: "admission", greeting: constant.ModeGreetings[store.ModeAdmission]},
		{mode: "schedule", greeting: constant.ModeGreetings[store.ModeSchedule]},
		{mode: "fees", greeting: constant.ModeGreetings[store.ModeFees]},
		{mode: "exam", greeting: constant.ModeGreetings[store.ModeExam]},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			svc, _ := newTestChatService(&fakePipeline{})
			sessionId := startSession(t, svc)

			state, err := svc.SelectMode(context.Background(), &dto.SelectModeRequest{
				SessionId: sessionId,
				Mode:      tt.mode,
			})
			assert.NoError(t, err)
			assert.Equal(t, store.Mode(tt.mode), state.Mode)
			assert.Len(t, state.Messages, 1)
			assert.Equal(t, store.MessageRoleBot, state.Messages[0].Role)
			assert.Equal(t, tt.greeting, state.Messages[0].Content)
		})
	}
}

func TestSelectModeComplaintHasNoGreeting(t *testing.T) {
	svc, _ := newTestChatService(&fakePipeline{})
	sessionId := startSession(t, svc)

	state, err := svc.SelectMode(context.Background(), &dto.SelectModeRequest{
		SessionId: sessionId,
		Mode:      "complaint",
	})
	assert.NoError(t, err)
	assert.Equal(t, store.ModeComplaint, state.Mode)
	assert.Empty(t, state.Messages)
}

func TestSelectModeClearsPriorState(t *testing.T) {
	pipeline := &fakePipeline{reply: "some answer"}
	svc, _ := newTestChatService(pipeline)
	sessionId := startSession(t, svc)

	_, err := svc.SelectMode(context.Background(), &dto.SelectModeRequest{SessionId: sessionId, Mode: "admission"})
	assert.NoError(t, err)

	_, err = svc.SendChat(context.Background(), &dto.SendChatRequest{SessionId: sessionId, Chat: "BCA"})
	assert.NoError(t, err)

	// Switching mode drops history and the previous mode entirely.
	state, err := svc.SelectMode(context.Background(), &dto.SelectModeRequest{SessionId: sessionId, Mode: "fees"})
	assert.NoError(t, err)
	assert.Equal(t, store.ModeFees, state.Mode)
	assert.Len(t, state.Messages, 1)
	assert.Equal(t, constant.ModeGreetings[store.ModeFees], state.Messages[0].Content)
}

func TestSendChatComposesModePrefixedQuery(t *testing.T) {
	tests := []struct {
		mode      string
		chat      string
		wantQuery string
	}{
		{mode: "admission", chat: "BCA", wantQuery: "Admission details for BCA"},
		{mode: "schedule", chat: "BSc", wantQuery: "Class schedule for BSc"},
		{mode: "fees", chat: "MBA", wantQuery: "Fee details for MBA"},
		{mode: "exam", chat: "MSc", wantQuery: "Exam details for MSc"},
		{mode: "general", chat: "BCA", wantQuery: "BCA"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			pipeline := &fakePipeline{reply: "answer"}
			svc, _ := newTestChatService(pipeline)
			sessionId := startSession(t, svc)

			_, err := svc.SelectMode(context.Background(), &dto.SelectModeRequest{SessionId: sessionId, Mode: tt.mode})
			assert.NoError(t, err)

			state, err := svc.SendChat(context.Background(), &dto.SendChatRequest{SessionId: sessionId, Chat: tt.chat})
			assert.NoError(t, err)

			assert.Equal(t, []string{tt.wantQuery}, pipeline.queries)

			// User turn then bot reply, appended after the greeting.
			last := state.Messages[len(state.Messages)-1]
			secondLast := state.Messages[len(state.Messages)-2]
			assert.Equal(t, store.MessageRoleBot, last.Role)
			assert.Equal(t, "answer", last.Content)
			assert.Equal(t, store.MessageRoleUser, secondLast.Role)
			assert.Equal(t, tt.chat, secondLast.Content)
		})
	}
}

func TestSendChatBumpsInputVersionAndActivity(t *testing.T) {
	pipeline := &fakePipeline{reply: "answer"}
	svc, repo := newTestChatService(pipeline)
	sessionId := startSession(t, svc)

	session, _ := repo.Get(sessionId)
	session.LastActivity = time.Now().Add(-5 * time.Minute)
	repo.Save(session)

	state, err := svc.SendChat(context.Background(), &dto.SendChatRequest{SessionId: sessionId, Chat: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, 1, state.InputVersion)

	session, _ = repo.Get(sessionId)
	assert.WithinDuration(t, time.Now(), session.LastActivity, time.Minute)
}

func TestSendChatRejectedInComplaintMode(t *testing.T) {
	pipeline := &fakePipeline{reply: "answer"}
	svc, _ := newTestChatService(pipeline)
	sessionId := startSession(t, svc)

	_, err := svc.SelectMode(context.Background(), &dto.SelectModeRequest{SessionId: sessionId, Mode: "complaint"})
	assert.NoError(t, err)

	_, err = svc.SendChat(context.Background(), &dto.SendChatRequest{SessionId: sessionId, Chat: "hi"})

	var fiberErr *fiber.Error
	assert.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusConflict, fiberErr.Code)
	assert.Empty(t, pipeline.queries)
}

func TestSendChatUnknownSession(t *testing.T) {
	svc, _ := newTestChatService(&fakePipeline{})

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{SessionId: "missing", Chat: "hi"})

	var fiberErr *fiber.Error
	assert.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestSendChatExpiresInactiveSession(t *testing.T) {
	pipeline := &fakePipeline{reply: "answer"}
	svc, repo := newTestChatService(pipeline)
	sessionId := startSession(t, svc)

	_, err := svc.SelectMode(context.Background(), &dto.SelectModeRequest{SessionId: sessionId, Mode: "exam"})
	assert.NoError(t, err)

	session, _ := repo.Get(sessionId)
	session.LastActivity = time.Now().Add(-11 * time.Minute)
	repo.Save(session)

	state, err := svc.SendChat(context.Background(), &dto.SendChatRequest{SessionId: sessionId, Chat: "MSc"})
	assert.NoError(t, err)

	// The expired render model: cleared state, notice, dropped input.
	assert.True(t, state.Expired)
	assert.Equal(t, constant.SessionExpiredNotice, state.Notice)
	assert.Equal(t, store.ModeGeneral, state.Mode)
	assert.Empty(t, state.Messages)
	assert.Empty(t, pipeline.queries, "the pending input is not processed after expiry")

	session, _ = repo.Get(sessionId)
	assert.Equal(t, 2, session.InputVersion)
	assert.WithinDuration(t, time.Now(), session.LastActivity, time.Minute)
}

func TestGetHistoryExpiresInactiveSession(t *testing.T) {
	svc, repo := newTestChatService(&fakePipeline{})
	sessionId := startSession(t, svc)

	session, _ := repo.Get(sessionId)
	session.Mode = store.ModeFees
	session.Messages = []store.Message{{Role: store.MessageRoleBot, Content: "old"}}
	session.LastActivity = time.Now().Add(-20 * time.Minute)
	repo.Save(session)

	state, err := svc.GetHistory(context.Background(), sessionId)
	assert.NoError(t, err)
	assert.True(t, state.Expired)
	assert.Empty(t, state.Messages)
	assert.Equal(t, store.ModeGeneral, state.Mode)
}

func TestSendChatPipelineErrorKeepsUserMessage(t *testing.T) {
	pipeline := &fakePipeline{err: errors.New("failed to fetch FAQ sheet: status 500")}
	svc, repo := newTestChatService(pipeline)
	sessionId := startSession(t, svc)

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{SessionId: sessionId, Chat: "BCA"})
	assert.ErrorContains(t, err, "failed to fetch FAQ sheet")

	// The user's turn stays in history; only the reply is missing. A
	// resubmit retries from here, no automatic retry happens.
	session, _ := repo.Get(sessionId)
	assert.Len(t, session.Messages, 1)
	assert.Equal(t, store.MessageRoleUser, session.Messages[0].Role)
}
