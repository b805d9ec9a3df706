package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vital records one set of vital sign measurements and the generated risk
// analysis.
type Vital struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"userId" json:"userId"`
	BloodPressure string             `bson:"bloodPressure" json:"bloodPressure"`
	SugarLevel    string             `bson:"sugarLevel" json:"sugarLevel"`
	HeartRate     int                `bson:"heartRate" json:"heartRate"`
	Temperature   float64            `bson:"temperature" json:"temperature"`
	Analysis      string             `bson:"analysis" json:"analysis"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
