package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wellnest-health/wellnest-backend/internal/models"
)

// ErrEmptyEntry indicates the submitted journal content was empty or
// whitespace-only. Rejected before any model call.
var ErrEmptyEntry = errors.New("journal entry content is required")

// Pipeline stages, used to tag failures. A journal entry only exists once
// every stage has succeeded; there is no path that writes a partial record.
type Stage string

const (
	StageValidate Stage = "validate"
	StageClassify Stage = "classify"
	StageRespond  Stage = "respond"
	StagePersist  Stage = "persist"
)

// PipelineError reports which stage of entry creation failed.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("journal pipeline %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

func failed(stage Stage, err error) error {
	return &PipelineError{Stage: stage, Err: err}
}

// JournalStore persists journal entries.
type JournalStore interface {
	InsertJournal(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	ListJournalsByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)
}

// JournalService runs the entry pipeline: validate, classify the mood,
// generate the supportive response, then persist. The two model calls are
// strictly sequential since the response prompt depends on the mood.
type JournalService struct {
	classifier *MoodClassifier
	responder  *SupportResponder
	store      JournalStore
}

func NewJournalService(classifier *MoodClassifier, responder *SupportResponder, store JournalStore) *JournalService {
	return &JournalService{classifier: classifier, responder: responder, store: store}
}

// Create processes a new journal entry for a user and returns the persisted
// record. On any failure nothing is written.
func (s *JournalService) Create(ctx context.Context, userID, content string) (*models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, failed(StageValidate, ErrEmptyEntry)
	}

	mood, err := s.classifier.Classify(ctx, content)
	if err != nil {
		return nil, failed(StageClassify, err)
	}

	response, err := s.responder.Respond(ctx, content, mood)
	if err != nil {
		return nil, failed(StageRespond, err)
	}

	entry := &models.JournalEntry{
		UserID:     userID,
		Mood:       mood,
		Content:    content,
		AIResponse: response,
	}
	saved, err := s.store.InsertJournal(ctx, entry)
	if err != nil {
		return nil, failed(StagePersist, err)
	}
	return saved, nil
}

// List returns the user's entries, newest first.
func (s *JournalService) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return s.store.ListJournalsByUser(ctx, userID)
}
