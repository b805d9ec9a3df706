package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/wellnest-health/wellnest-backend/internal/middleware"
	"github.com/wellnest-health/wellnest-backend/internal/models"
	"github.com/wellnest-health/wellnest-backend/internal/services"
)

type CreateJournalRequest struct {
	Content string `json:"content"`
}

// JournalService is the slice of the journal pipeline the handler needs.
type JournalService interface {
	Create(ctx context.Context, userID, content string) (*models.JournalEntry, error)
	List(ctx context.Context, userID string) ([]models.JournalEntry, error)
}

// JournalHandler exposes the journal entry pipeline over HTTP.
type JournalHandler struct {
	svc JournalService
	log *zap.Logger
}

func NewJournalHandler(svc JournalService, log *zap.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: log}
}

// Create runs the full pipeline for a new entry and returns the persisted
// record. The upstream cause of a failure is logged, never exposed.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.svc.Create(r.Context(), userID, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrEmptyEntry) {
			respondError(w, http.StatusBadRequest, "Journal entry content is required.")
			return
		}
		h.log.Error("journal entry creation failed", zap.Error(err))

		var pe *services.PipelineError
		if errors.As(err, &pe) && pe.Stage == services.StageClassify {
			respondError(w, http.StatusInternalServerError, "Failed to analyze mood.")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to get an AI response.")
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// List returns the caller's entries, newest first.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	entries, err := h.svc.List(r.Context(), userID)
	if err != nil {
		h.log.Error("journal listing failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch journal entries")
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
