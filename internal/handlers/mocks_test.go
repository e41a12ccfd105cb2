package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vcampos/healthtrack-api/internal/models"
	"github.com/vcampos/healthtrack-api/internal/store"
)

// Compile-time checks that the mocks implement the store contracts.
var (
	_ store.AppointmentStore = (*mockAppointmentStore)(nil)
	_ store.MedicationStore  = (*mockMedicationStore)(nil)
)

type mockAppointmentStore struct {
	ListFunc       func(ctx context.Context) ([]models.Appointment, error)
	InsertFunc     func(ctx context.Context, apt *models.Appointment) error
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	UpdateFunc     func(ctx context.Context, id primitive.ObjectID, upd store.AppointmentUpdate) (*models.Appointment, error)
	DeactivateFunc func(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
}

func (m *mockAppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAppointmentStore) Insert(ctx context.Context, apt *models.Appointment) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, apt)
	}
	apt.ID = primitive.NewObjectID()
	return nil
}

func (m *mockAppointmentStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *mockAppointmentStore) Update(ctx context.Context, id primitive.ObjectID, upd store.AppointmentUpdate) (*models.Appointment, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, errors.New("UpdateFunc not implemented in mock")
}

func (m *mockAppointmentStore) Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil, errors.New("DeactivateFunc not implemented in mock")
}

type mockMedicationStore struct {
	ListFunc       func(ctx context.Context) ([]models.Medication, error)
	InsertFunc     func(ctx context.Context, med *models.Medication) error
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*models.Medication, error)
	UpdateFunc     func(ctx context.Context, id primitive.ObjectID, upd store.MedicationUpdate) (*models.Medication, error)
	DeactivateFunc func(ctx context.Context, id primitive.ObjectID) (*models.Medication, error)
}

func (m *mockMedicationStore) List(ctx context.Context) ([]models.Medication, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockMedicationStore) Insert(ctx context.Context, med *models.Medication) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, med)
	}
	med.ID = primitive.NewObjectID()
	return nil
}

func (m *mockMedicationStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Medication, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *mockMedicationStore) Update(ctx context.Context, id primitive.ObjectID, upd store.MedicationUpdate) (*models.Medication, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, upd)
	}
	return nil, errors.New("UpdateFunc not implemented in mock")
}

func (m *mockMedicationStore) Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Medication, error) {
	if m.DeactivateFunc != nil {
		return m.DeactivateFunc(ctx, id)
	}
	return nil, errors.New("DeactivateFunc not implemented in mock")
}

func newTestRouter(apts store.AppointmentStore, meds store.MedicationStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	binding.EnableDecoderDisallowUnknownFields = true
	if err := RegisterValidators(); err != nil {
		panic(err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	h := NewHandler(apts, meds, logger)

	r := gin.New()
	r.GET("/appointments", h.ListAppointments)
	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments/:id", h.GetAppointment)
	r.PUT("/appointments/:id", h.UpdateAppointment)
	r.DELETE("/appointments/:id", h.DeleteAppointment)
	r.GET("/medications", h.ListMedications)
	r.POST("/medications", h.CreateMedication)
	r.GET("/medications/:id", h.GetMedication)
	r.PUT("/medications/:id", h.UpdateMedication)
	r.DELETE("/medications/:id", h.DeleteMedication)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
