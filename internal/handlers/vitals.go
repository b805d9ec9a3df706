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

type AddVitalsRequest struct {
	BloodPressure string  `json:"bloodPressure"`
	SugarLevel    string  `json:"sugarLevel"`
	HeartRate     int     `json:"heartRate"`
	Temperature   float64 `json:"temperature"`
}

type VitalsService interface {
	Analyze(ctx context.Context, userID string, in services.VitalsInput) (*models.Vital, error)
	History(ctx context.Context, userID string) ([]models.Vital, error)
}

// VitalsHandler exposes the vitals analysis flow over HTTP.
type VitalsHandler struct {
	svc VitalsService
	log *zap.Logger
}

func NewVitalsHandler(svc VitalsService, log *zap.Logger) *VitalsHandler {
	return &VitalsHandler{svc: svc, log: log}
}

// Add analyzes a set of measurements and persists them with the generated
// analysis.
func (h *VitalsHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req AddVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.svc.Analyze(r.Context(), userID, services.VitalsInput{
		BloodPressure: req.BloodPressure,
		SugarLevel:    req.SugarLevel,
		HeartRate:     req.HeartRate,
		Temperature:   req.Temperature,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidVitals) {
			respondError(w, http.StatusBadRequest, "All vital measurements are required")
			return
		}
		h.log.Error("vitals analysis failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to analyze vitals.")
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// History returns the caller's vitals, newest first.
func (h *VitalsHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	records, err := h.svc.History(r.Context(), userID)
	if err != nil {
		h.log.Error("vitals history failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to fetch vitals history")
		return
	}

	respondJSON(w, http.StatusOK, records)
}
