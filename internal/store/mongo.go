package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellnest-health/wellnest-backend/internal/models"
)

const (
	journalCollection   = "journals"
	diagnosisCollection = "diagnoses"
	vitalCollection     = "vitals"
)

// Mongo is the document store for wellness records. Each record is owned by
// exactly one user and written with a single atomic insert.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// EnsureIndexes configures the per-user listing indexes. Called on startup
// from main after Mongo has connected.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{journalCollection, diagnosisCollection, vitalCollection} {
		// Compound index on (userId, createdAt) to support newest-first
		// history listings.
		model := mongo.IndexModel{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("idx_user_created"),
		}
		if _, err := m.db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mongo) InsertJournal(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	saved := *entry
	saved.ID = primitive.NewObjectID()
	saved.CreatedAt = time.Now().UTC()
	if _, err := m.db.Collection(journalCollection).InsertOne(ctx, saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (m *Mongo) ListJournalsByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	err := m.listByUser(ctx, journalCollection, userID, &entries)
	return entries, err
}

func (m *Mongo) InsertDiagnosis(ctx context.Context, d *models.Diagnosis) (*models.Diagnosis, error) {
	saved := *d
	saved.ID = primitive.NewObjectID()
	saved.CreatedAt = time.Now().UTC()
	if _, err := m.db.Collection(diagnosisCollection).InsertOne(ctx, saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (m *Mongo) ListDiagnosesByUser(ctx context.Context, userID string) ([]models.Diagnosis, error) {
	records := []models.Diagnosis{}
	err := m.listByUser(ctx, diagnosisCollection, userID, &records)
	return records, err
}

func (m *Mongo) InsertVital(ctx context.Context, v *models.Vital) (*models.Vital, error) {
	saved := *v
	saved.ID = primitive.NewObjectID()
	saved.CreatedAt = time.Now().UTC()
	if _, err := m.db.Collection(vitalCollection).InsertOne(ctx, saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (m *Mongo) ListVitalsByUser(ctx context.Context, userID string) ([]models.Vital, error) {
	records := []models.Vital{}
	err := m.listByUser(ctx, vitalCollection, userID, &records)
	return records, err
}

// listByUser decodes a user's records newest-first into out, which must be a
// pointer to a slice.
func (m *Mongo) listByUser(ctx context.Context, collection, userID string, out interface{}) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := m.db.Collection(collection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	return cur.All(ctx, out)
}
