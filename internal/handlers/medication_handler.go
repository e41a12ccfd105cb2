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

// medicationRequest is the body schema for both POST and PUT. Schedule entries
// must be HH:MM; start/end dates are optional and stay null when absent.
type medicationRequest struct {
	Name      string   `json:"name" binding:"required"`
	Dosage    string   `json:"dosage" binding:"required"`
	Frequency string   `json:"frequency" binding:"required"`
	Schedule  []string `json:"schedule" binding:"omitempty,dive,timeofday"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Notes     string   `json:"notes"`
}

func (r *medicationRequest) dates() (start, end *time.Time, err error) {
	if start, err = parseOptionalDate(r.StartDate); err != nil {
		return nil, nil, err
	}
	if end, err = parseOptionalDate(r.EndDate); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

// --- LIST MEDICATIONS ---
func (h *Handler) ListMedications(c *gin.Context) {
	medications, err := h.Medications.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "Failed to retrieve medications")
		return
	}

	if medications == nil {
		medications = make([]models.Medication, 0)
	}
	for i := range medications {
		medications[i].SyncStatus()
	}

	c.JSON(http.StatusOK, medications)
}

// --- CREATE MEDICATION ---
func (h *Handler) CreateMedication(c *gin.Context) {
	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	startDate, endDate, err := req.dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, use RFC3339 or YYYY-MM-DD"})
		return
	}

	schedule := req.Schedule
	if schedule == nil {
		schedule = make([]string, 0)
	}

	now := time.Now().UTC()
	med := models.Medication{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Schedule:  schedule,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.Medications.Insert(c.Request.Context(), &med); err != nil {
		h.internalError(c, err, "Failed to create medication")
		return
	}

	med.SyncStatus()
	c.JSON(http.StatusCreated, med)
}

// --- GET MEDICATION ---
func (h *Handler) GetMedication(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication ID"})
		return
	}

	med, err := h.Medications.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to retrieve medication")
		return
	}

	med.SyncStatus()
	c.JSON(http.StatusOK, med)
}

// --- UPDATE MEDICATION ---
func (h *Handler) UpdateMedication(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication ID"})
		return
	}

	var req medicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationFailed(c, err)
		return
	}

	startDate, endDate, err := req.dates()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, use RFC3339 or YYYY-MM-DD"})
		return
	}

	med, err := h.Medications.Update(c.Request.Context(), id, store.MedicationUpdate{
		Name:      req.Name,
		Dosage:    req.Dosage,
		Frequency: req.Frequency,
		Schedule:  req.Schedule,
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     req.Notes,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to update medication")
		return
	}

	med.SyncStatus()
	c.JSON(http.StatusOK, med)
}

// --- DELETE MEDICATION (soft) ---
func (h *Handler) DeleteMedication(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication ID"})
		return
	}

	med, err := h.Medications.Deactivate(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
		return
	}
	if err != nil {
		h.internalError(c, err, "Failed to delete medication")
		return
	}

	med.SyncStatus()
	c.JSON(http.StatusOK, med)
}
