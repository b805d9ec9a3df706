package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/wellnest-health/wellnest-backend/internal/middleware"
	"github.com/wellnest-health/wellnest-backend/internal/models"
	"github.com/wellnest-health/wellnest-backend/internal/services"
)

type stubJournalService struct {
	entry   *models.JournalEntry
	entries []models.JournalEntry
	err     error
}

func (s *stubJournalService) Create(_ context.Context, userID, content string) (*models.JournalEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entry, nil
}

func (s *stubJournalService) List(_ context.Context, userID string) ([]models.JournalEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
}

func TestJournalCreateHandler_Success(t *testing.T) {
	t.Parallel()

	svc := &stubJournalService{entry: &models.JournalEntry{
		UserID:     "user-1",
		Mood:       "Happy",
		Content:    "great day",
		AIResponse: "Lovely to hear.",
	}}
	h := NewJournalHandler(svc, zap.NewNop())

	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/api/journal", `{"content":"great day"}`))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status=%d, want 201", rr.Code)
	}
	var got models.JournalEntry
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Mood != "Happy" || got.AIResponse != "Lovely to hear." {
		t.Errorf("unexpected entry: %+v", got)
	}
}

func TestJournalCreateHandler_EmptyContent(t *testing.T) {
	t.Parallel()

	svc := &stubJournalService{err: &services.PipelineError{Stage: services.StageValidate, Err: services.ErrEmptyEntry}}
	h := NewJournalHandler(svc, zap.NewNop())

	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/api/journal", `{"content":""}`))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rr.Code)
	}
}

func TestJournalCreateHandler_OracleFailure(t *testing.T) {
	t.Parallel()

	svc := &stubJournalService{err: &services.PipelineError{Stage: services.StageClassify, Err: services.ErrUnrecognizedMood}}
	h := NewJournalHandler(svc, zap.NewNop())

	rr := httptest.NewRecorder()
	h.Create(rr, authedRequest(http.MethodPost, "/api/journal", `{"content":"a day"}`))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "Ecstatic") {
		t.Error("upstream cause must not leak to the client")
	}
	if !strings.Contains(rr.Body.String(), "Failed to analyze mood.") {
		t.Errorf("body=%q, want classify failure message", rr.Body.String())
	}
}

func TestJournalCreateHandler_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewJournalHandler(&stubJournalService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/journal", strings.NewReader(`{"content":"x"}`))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rr.Code)
	}
}

func TestJournalListHandler_ReturnsEntries(t *testing.T) {
	t.Parallel()

	svc := &stubJournalService{entries: []models.JournalEntry{
		{UserID: "user-1", Mood: "Content", Content: "later", AIResponse: "ok"},
		{UserID: "user-1", Mood: "Sad", Content: "earlier", AIResponse: "sorry"},
	}}
	h := NewJournalHandler(svc, zap.NewNop())

	rr := httptest.NewRecorder()
	h.List(rr, authedRequest(http.MethodGet, "/api/journal", ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", rr.Code)
	}
	var got []models.JournalEntry
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].Content != "later" {
		t.Errorf("unexpected listing: %+v", got)
	}
}
