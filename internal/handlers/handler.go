package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/vcampos/healthtrack-api/internal/store"
)

type Handler struct {
	Appointments store.AppointmentStore
	Medications  store.MedicationStore
	Log          *logrus.Logger
}

func NewHandler(appointments store.AppointmentStore, medications store.MedicationStore, log *logrus.Logger) *Handler {
	return &Handler{
		Appointments: appointments,
		Medications:  medications,
		Log:          log,
	}
}

// RegisterValidators installs the custom binding rules on gin's validator
// engine. Call once before serving requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("15:04", fl.Field().String())
		return err == nil
	})
}

// parseTimestamp accepts RFC3339 or a plain date, the two formats the clients
// send.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseOptionalDate returns nil for an absent value, mirroring the null
// startDate/endDate convention in stored documents.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseTimestamp(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
