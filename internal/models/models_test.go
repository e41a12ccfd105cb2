package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentSyncStatus(t *testing.T) {
	apt := Appointment{}
	apt.SyncStatus()
	assert.Equal(t, AppointmentScheduled, apt.Status)

	apt.Outcome = "Normal ECG"
	apt.SyncStatus()
	assert.Equal(t, AppointmentCompleted, apt.Status)
}

func TestMedicationSyncStatus(t *testing.T) {
	med := Medication{Active: true}
	med.SyncStatus()
	assert.Equal(t, MedicationActive, med.Status)
	assert.NotNil(t, med.Schedule)

	med.Active = false
	med.SyncStatus()
	assert.Equal(t, MedicationInactive, med.Status)
}
