// Package store holds the data-access contracts for the two collections and
// their MongoDB implementations. Handlers only ever see the interfaces.
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vcampos/healthtrack-api/internal/models"
)

// ErrNotFound is returned when an id matches no document.
var ErrNotFound = errors.New("document not found")

// AppointmentUpdate carries the full set of mutable appointment fields.
// Updates replace these fields as one atomic operation.
type AppointmentUpdate struct {
	ScheduledAt time.Time
	Specialty   string
	Location    string
	Outcome     string
	Notes       string
}

// MedicationUpdate carries the full set of mutable medication fields.
type MedicationUpdate struct {
	Name      string
	Dosage    string
	Frequency string
	Schedule  []string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string
}

type AppointmentStore interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Insert(ctx context.Context, apt *models.Appointment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	Update(ctx context.Context, id primitive.ObjectID, upd AppointmentUpdate) (*models.Appointment, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
}

type MedicationStore interface {
	List(ctx context.Context) ([]models.Medication, error)
	Insert(ctx context.Context, med *models.Medication) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Medication, error)
	Update(ctx context.Context, id primitive.ObjectID, upd MedicationUpdate) (*models.Medication, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Medication, error)
}
