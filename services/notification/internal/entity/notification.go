package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one rendered inbox entry for UserID.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uint      `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	ActorID   uint      `json:"actorId"`
	SubjectID uint      `json:"subjectId"`
	CreatedAt time.Time `json:"createdAt"`
}
