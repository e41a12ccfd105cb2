package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vcampos/healthtrack-api/internal/models"
	"github.com/vcampos/healthtrack-api/internal/store"
)

// appointmentRequest is the body schema for both POST and PUT. Updates are a
// full replacement of the mutable fields, not a sparse patch.
type appointmentRequest struct {
	ScheduledAt string `json:"scheduledAt" binding:"required"`
	Specialty   string `json:"specialty" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Outcome     string `json:"outcome"`
	Notes       string `json:"notes"`
}

// --- LIST APPOINTMENTS ---
func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.Appointments.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "Failed to retrieve appointments")
		return
	}

	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}
	for i := range appointments {
		appointments[i].SyncStatus()
	}

	c.JSON(http.StatusOK, appointments)
}

// --- CREATE APPOINTMENT ---
func (h *Handler) CreateAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	scheduledAt, err := parseTimestamp(req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scheduledAt, use RFC3339 or YYYY-MM-DD"})
		return
	}

	now := time.Now().UTC()
	apt := models.Appointment{
		ScheduledAt: scheduledAt,
		Specialty:   req.Specialty,
		Location:    req.Location,
		Outcome:     req.Outcome,
		Notes:       req.Notes,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.Appointments.Insert(c.Request.Context(), &apt); err != nil {
		h.internalError(c, err, "Failed to create appointment")
		return
	}

	apt.SyncStatus()
	c.JSON(http.StatusCreated, apt)
}

// --- GET APPOINTMENT ---
func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	apt, err := h.Appointments.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to retrieve appointment")
		return
	}

	apt.SyncStatus()
	c.JSON(http.StatusOK, apt)
}

// --- UPDATE APPOINTMENT ---
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	scheduledAt, err := parseTimestamp(req.ScheduledAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scheduledAt, use RFC3339 or YYYY-MM-DD"})
		return
	}

	apt, err := h.Appointments.Update(c.Request.Context(), id, store.AppointmentUpdate{
		ScheduledAt: scheduledAt,
		Specialty:   req.Specialty,
		Location:    req.Location,
		Outcome:     req.Outcome,
		Notes:       req.Notes,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to update appointment")
		return
	}

	apt.SyncStatus()
	c.JSON(http.StatusOK, apt)
}

// --- DELETE APPOINTMENT (soft) ---
func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	apt, err := h.Appointments.Deactivate(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to delete appointment")
		return
	}

	apt.SyncStatus()
	c.JSON(http.StatusOK, apt)
}
