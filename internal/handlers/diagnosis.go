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

type DiagnoseRequest struct {
	Symptoms string `json:"symptoms"`
}

type DiagnosisService interface {
	Diagnose(ctx context.Context, userID, symptoms string) (*models.Diagnosis, error)
	History(ctx context.Context, userID string) ([]models.Diagnosis, error)
}

// DiagnosisHandler exposes the symptom analysis flow over HTTP.
type DiagnosisHandler struct {
	svc DiagnosisService
	log *zap.Logger
}

func NewDiagnosisHandler(svc DiagnosisService, log *zap.Logger) *DiagnosisHandler {
	return &DiagnosisHandler{svc: svc, log: log}
}

// Diagnose generates and persists a preliminary opinion for the caller's
// symptoms.
func (h *DiagnosisHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req DiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.svc.Diagnose(r.Context(), userID, req.Symptoms)
	if err != nil {
		if errors.Is(err, services.ErrEmptySymptoms) {
			respondError(w, http.StatusBadRequest, "Please provide symptoms")
			return
		}
		h.log.Error("diagnosis failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to get a diagnosis from the AI service.")
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// History returns the caller's diagnoses, newest first.
func (h *DiagnosisHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	records, err := h.svc.History(r.Context(), userID)
	if err != nil {
		h.log.Error("diagnosis history failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch diagnosis history")
		return
	}

	respondJSON(w, http.StatusOK, records)
}
