package services

import (
	"context"
	"errors"
	"strings"

	"github.com/wellnest-health/wellnest-backend/internal/llm"
	"github.com/wellnest-health/wellnest-backend/internal/models"
)

// ErrInvalidVitals indicates one or more measurements were missing or out of
// range.
var ErrInvalidVitals = errors.New("all vital measurements are required")

// VitalStore persists vital records.
type VitalStore interface {
	InsertVital(ctx context.Context, v *models.Vital) (*models.Vital, error)
	ListVitalsByUser(ctx context.Context, userID string) ([]models.Vital, error)
}

// VitalsInput is one set of measurements as submitted.
type VitalsInput struct {
	BloodPressure string
	SugarLevel    string
	HeartRate     int
	Temperature   float64
}

// VitalsService analyzes a set of vital measurements with a single model call
// and persists the record together with the analysis.
type VitalsService struct {
	llm   llm.Client
	store VitalStore
}

func NewVitalsService(client llm.Client, store VitalStore) *VitalsService {
	return &VitalsService{llm: client, store: store}
}

// Analyze validates the measurements, generates the risk analysis, and
// persists the record. Nothing is written if generation fails.
func (s *VitalsService) Analyze(ctx context.Context, userID string, in VitalsInput) (*models.Vital, error) {
	if strings.TrimSpace(in.BloodPressure) == "" || strings.TrimSpace(in.SugarLevel) == "" ||
		in.HeartRate <= 0 || in.Temperature <= 0 {
		return nil, ErrInvalidVitals
	}

	analysis, err := s.llm.Generate(ctx, vitalsPrompt(in.BloodPressure, in.SugarLevel, in.HeartRate, in.Temperature))
	if err != nil {
		return nil, err
	}

	return s.store.InsertVital(ctx, &models.Vital{
		UserID:        userID,
		BloodPressure: in.BloodPressure,
		SugarLevel:    in.SugarLevel,
		HeartRate:     in.HeartRate,
		Temperature:   in.Temperature,
		Analysis:      analysis,
	})
}

// History returns the user's vitals, newest first.
func (s *VitalsService) History(ctx context.Context, userID string) ([]models.Vital, error) {
	return s.store.ListVitalsByUser(ctx, userID)
}
