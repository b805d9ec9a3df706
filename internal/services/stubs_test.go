package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wellnest-health/wellnest-backend/internal/models"
)

// stubOracle returns queued results in order and records every prompt it
// receives.
type stubOracle struct {
	results []stubResult
	prompts []string
}

type stubResult struct {
	text string
	err  error
}

func (s *stubOracle) Generate(_ context.Context, prompt string) (string, error) {
	i := len(s.prompts)
	s.prompts = append(s.prompts, prompt)
	if i >= len(s.results) {
		return "", nil
	}
	r := s.results[i]
	return r.text, r.err
}

// memStore is an in-memory record store.
type memStore struct {
	journals  []models.JournalEntry
	diagnoses []models.Diagnosis
	vitals    []models.Vital
	insertErr error
}

func (m *memStore) InsertJournal(_ context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	saved := *entry
	saved.ID = primitive.NewObjectID()
	saved.CreatedAt = time.Now().UTC()
	m.journals = append(m.journals, saved)
	return &saved, nil
}

func (m *memStore) ListJournalsByUser(_ context.Context, userID string) ([]models.JournalEntry, error) {
	out := []models.JournalEntry{}
	for i := len(m.journals) - 1; i >= 0; i-- {
		if m.journals[i].UserID == userID {
			out = append(out, m.journals[i])
		}
	}
	return out, nil
}

func (m *memStore) InsertDiagnosis(_ context.Context, d *models.Diagnosis) (*models.Diagnosis, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	saved := *d
	saved.ID = primitive.NewObjectID()
	saved.CreatedAt = time.Now().UTC()
	m.diagnoses = append(m.diagnoses, saved)
	return &saved, nil
}

func (m *memStore) ListDiagnosesByUser(_ context.Context, userID string) ([]models.Diagnosis, error) {
	out := []models.Diagnosis{}
	for i := len(m.diagnoses) - 1; i >= 0; i-- {
		if m.diagnoses[i].UserID == userID {
			out = append(out, m.diagnoses[i])
		}
	}
	return out, nil
}

func (m *memStore) InsertVital(_ context.Context, v *models.Vital) (*models.Vital, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	saved := *v
	saved.ID = primitive.NewObjectID()
	saved.CreatedAt = time.Now().UTC()
	m.vitals = append(m.vitals, saved)
	return &saved, nil
}

func (m *memStore) ListVitalsByUser(_ context.Context, userID string) ([]models.Vital, error) {
	out := []models.Vital{}
	for i := len(m.vitals) - 1; i >= 0; i-- {
		if m.vitals[i].UserID == userID {
			out = append(out, m.vitals[i])
		}
	}
	return out, nil
}
