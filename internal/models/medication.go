package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MedicationActive   = "active"
	MedicationInactive = "inactive"
)

type Medication struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Dosage    string             `bson:"dosage" json:"dosage"`
	Frequency string             `bson:"frequency" json:"frequency"`
	Schedule  []string           `bson:"schedule" json:"schedule"`
	StartDate *time.Time         `bson:"startDate" json:"startDate"`
	EndDate   *time.Time         `bson:"endDate" json:"endDate"`
	Notes     string             `bson:"notes" json:"notes"`
	Active    bool               `bson:"active" json:"active"`
	Status    string             `bson:"-" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SyncStatus mirrors the active flag into the derived status field. The flag is
// the single source of truth; the status string only exists in responses.
func (m *Medication) SyncStatus() {
	if m.Active {
		m.Status = MedicationActive
	} else {
		m.Status = MedicationInactive
	}
	if m.Schedule == nil {
		m.Schedule = make([]string, 0)
	}
}
