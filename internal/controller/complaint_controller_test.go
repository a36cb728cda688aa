package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"college-chatbot-be/internal/pkg/serverutils"
	"college-chatbot-be/internal/repository/memory"
	"college-chatbot-be/internal/service"
	"college-chatbot-be/pkg/complaintlog"
	"college-chatbot-be/pkg/store"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

func newComplaintApp(t *testing.T) (*fiber.App, *memory.SessionRepository, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "complaints.csv")
	repo := memory.NewSessionRepository()
	svc := service.NewComplaintService(repo, complaintlog.NewWriter(path), testLogger{})

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewComplaintController(svc).RegisterRoutes(app.Group("/api"))

	return app, repo, path
}

func postJSON(t *testing.T, app *fiber.App, path string, payload map[string]string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	return res
}

func TestSubmitComplaintEndpoint(t *testing.T) {
	app, repo, path := newComplaintApp(t)

	session := &store.Session{
		ID:           "7a9d2f60-6f0e-4e07-9df7-27d34e7f2b11",
		Mode:         store.ModeComplaint,
		LastActivity: time.Now(),
	}
	repo.Save(session)

	res := postJSON(t, app, "/api/complaint/v1", map[string]string{
		"session_id": session.ID,
		"name":       "Anita",
		"contact":    "anita@example.com",
		"category":   "Exam",
		"complaint":  "Result not published",
	})
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "Result not published")
}

func TestSubmitComplaintMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]string
	}{
		{
			name: "empty name",
			payload: map[string]string{
				"name": "", "contact": "x", "category": "Other", "complaint": "y",
			},
		},
		{
			name: "empty contact",
			payload: map[string]string{
				"name": "x", "contact": "", "category": "Other", "complaint": "y",
			},
		},
		{
			name: "empty complaint",
			payload: map[string]string{
				"name": "x", "contact": "y", "category": "Other", "complaint": "",
			},
		},
		{
			name: "category outside the fixed set",
			payload: map[string]string{
				"name": "x", "contact": "y", "category": "Parking", "complaint": "z",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, repo, path := newComplaintApp(t)

			session := &store.Session{
				ID:           "7a9d2f60-6f0e-4e07-9df7-27d34e7f2b11",
				Mode:         store.ModeComplaint,
				LastActivity: time.Now(),
			}
			repo.Save(session)

			tt.payload["session_id"] = session.ID
			res := postJSON(t, app, "/api/complaint/v1", tt.payload)
			assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

			// Nothing persisted, session still in complaint mode for retry.
			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr))

			saved, found := repo.Get(session.ID)
			assert.True(t, found)
			assert.Equal(t, store.ModeComplaint, saved.Mode)
		})
	}
}

func TestGetComplaintCategories(t *testing.T) {
	app, _, _ := newComplaintApp(t)

	req, _ := http.NewRequest("GET", "/api/complaint/v1/categories", nil)
	res, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	var envelope struct {
		Data []string `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	assert.Equal(t, []string{"Admission", "Fees", "Exam", "Facilities", "Other"}, envelope.Data)
}
