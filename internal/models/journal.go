package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JournalEntry is a mood-tagged journal record. Mood and AIResponse are both
// generated before the entry is persisted; an entry never exists without them.
// Entries are immutable once written.
type JournalEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	Mood       string             `bson:"mood" json:"mood"`
	Content    string             `bson:"content" json:"content"`
	AIResponse string             `bson:"aiResponse" json:"aiResponse"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
