package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDLength is the width of every record identifier issued by the store
const IDLength = 24

// NewObjectID issues a 24-character hex identifier for a new record
func NewObjectID() string {
	return primitive.NewObjectID().Hex()
}

// IsObjectID reports whether id is a well-formed record identifier
func IsObjectID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}

// GenerateID generates a short prefixed id for events and correlation
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

// GetCurrentTime returns the current time in UTC
func GetCurrentTime() time.Time {
	return time.Now().UTC()
}
