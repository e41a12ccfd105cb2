package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses are derived from the record on the way out, never stored.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
)

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ScheduledAt time.Time          `bson:"scheduledAt" json:"scheduledAt"`
	Specialty   string             `bson:"specialty" json:"specialty"`
	Location    string             `bson:"location" json:"location"`
	Outcome     string             `bson:"outcome,omitempty" json:"outcome,omitempty"`
	Notes       string             `bson:"notes" json:"notes"`
	Active      bool               `bson:"active" json:"active"`
	Status      string             `bson:"-" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SyncStatus fills the derived status field: an appointment with a recorded
// outcome counts as completed, everything else is still scheduled.
func (a *Appointment) SyncStatus() {
	if a.Outcome != "" {
		a.Status = AppointmentCompleted
	} else {
		a.Status = AppointmentScheduled
	}
}
