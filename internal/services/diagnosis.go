package services

import (
	"context"
	"errors"
	"strings"

	"github.com/wellnest-health/wellnest-backend/internal/llm"
	"github.com/wellnest-health/wellnest-backend/internal/models"
)

// ErrEmptySymptoms indicates the symptom description was missing.
var ErrEmptySymptoms = errors.New("symptoms are required")

// DiagnosisStore persists diagnosis records.
type DiagnosisStore interface {
	InsertDiagnosis(ctx context.Context, d *models.Diagnosis) (*models.Diagnosis, error)
	ListDiagnosesByUser(ctx context.Context, userID string) ([]models.Diagnosis, error)
}

// DiagnosisService is the one-shot variant of the journal pipeline: a single
// prompt from the symptom text, one model call, one write.
type DiagnosisService struct {
	llm   llm.Client
	store DiagnosisStore
}

func NewDiagnosisService(client llm.Client, store DiagnosisStore) *DiagnosisService {
	return &DiagnosisService{llm: client, store: store}
}

// Diagnose generates a preliminary opinion for the symptoms and persists the
// record. Nothing is written if generation fails.
func (s *DiagnosisService) Diagnose(ctx context.Context, userID, symptoms string) (*models.Diagnosis, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, ErrEmptySymptoms
	}

	opinion, err := s.llm.Generate(ctx, diagnosisPrompt(symptoms))
	if err != nil {
		return nil, err
	}

	return s.store.InsertDiagnosis(ctx, &models.Diagnosis{
		UserID:    userID,
		Symptoms:  symptoms,
		Diagnosis: opinion,
	})
}

// History returns the user's diagnoses, newest first.
func (s *DiagnosisService) History(ctx context.Context, userID string) ([]models.Diagnosis, error) {
	return s.store.ListDiagnosesByUser(ctx, userID)
}
