package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Diagnosis records a symptom description and the generated preliminary
// opinion.
type Diagnosis struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Symptoms  string             `bson:"symptoms" json:"symptoms"`
	Diagnosis string             `bson:"diagnosis" json:"diagnosis"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
