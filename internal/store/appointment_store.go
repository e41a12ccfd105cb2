package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vcampos/healthtrack-api/internal/models"
)

// Compile-time check that the Mongo store satisfies the contract.
var _ AppointmentStore = (*MongoAppointmentStore)(nil)

type MongoAppointmentStore struct {
	col *mongo.Collection
}

func NewMongoAppointmentStore(db *mongo.Database) *MongoAppointmentStore {
	return &MongoAppointmentStore{col: db.Collection("appointments")}
}

// List returns every non-deactivated appointment sorted by scheduledAt
// ascending. Soft-deleted documents never appear here.
func (s *MongoAppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})

	cursor, err := s.col.Find(ctx, bson.M{"active": bson.M{"$ne": false}}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}

func (s *MongoAppointmentStore) Insert(ctx context.Context, apt *models.Appointment) error {
	apt.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, apt); err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}
	return nil
}

// FindByID ignores the active flag so soft-deleted appointments stay
// reachable by direct lookup.
func (s *MongoAppointmentStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var apt models.Appointment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&apt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find appointment: %w", err)
	}
	return &apt, nil
}

// Update replaces the mutable fields in one atomic call and returns the
// post-update document. Updating reactivates a soft-deleted record.
func (s *MongoAppointmentStore) Update(ctx context.Context, id primitive.ObjectID, upd AppointmentUpdate) (*models.Appointment, error) {
	set := bson.M{
		"scheduledAt": upd.ScheduledAt,
		"specialty":   upd.Specialty,
		"location":    upd.Location,
		"outcome":     upd.Outcome,
		"notes":       upd.Notes,
		"active":      true,
		"updatedAt":   time.Now().UTC(),
	}
	return s.findOneAndUpdate(ctx, id, set)
}

// Deactivate is the only delete in the system. It matches on _id alone, so
// deleting an already-inactive appointment succeeds and converges.
func (s *MongoAppointmentStore) Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	set := bson.M{
		"active":    false,
		"updatedAt": time.Now().UTC(),
	}
	return s.findOneAndUpdate(ctx, id, set)
}

func (s *MongoAppointmentStore) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Appointment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var apt models.Appointment
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&apt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &apt, nil
}
