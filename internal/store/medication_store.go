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

var _ MedicationStore = (*MongoMedicationStore)(nil)

type MongoMedicationStore struct {
	col *mongo.Collection
}

func NewMongoMedicationStore(db *mongo.Database) *MongoMedicationStore {
	return &MongoMedicationStore{col: db.Collection("medications")}
}

// List returns every non-deactivated medication, newest first.
func (s *MongoMedicationStore) List(ctx context.Context) ([]models.Medication, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{"active": bson.M{"$ne": false}}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, fmt.Errorf("failed to decode medications: %w", err)
	}
	return medications, nil
}

func (s *MongoMedicationStore) Insert(ctx context.Context, med *models.Medication) error {
	med.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, med); err != nil {
		return fmt.Errorf("failed to insert medication: %w", err)
	}
	return nil
}

func (s *MongoMedicationStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Medication, error) {
	var med models.Medication
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&med)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find medication: %w", err)
	}
	return &med, nil
}

func (s *MongoMedicationStore) Update(ctx context.Context, id primitive.ObjectID, upd MedicationUpdate) (*models.Medication, error) {
	schedule := upd.Schedule
	if schedule == nil {
		schedule = make([]string, 0)
	}
	set := bson.M{
		"name":      upd.Name,
		"dosage":    upd.Dosage,
		"frequency": upd.Frequency,
		"schedule":  schedule,
		"startDate": upd.StartDate,
		"endDate":   upd.EndDate,
		"notes":     upd.Notes,
		"active":    true,
		"updatedAt": time.Now().UTC(),
	}
	return s.findOneAndUpdate(ctx, id, set)
}

func (s *MongoMedicationStore) Deactivate(ctx context.Context, id primitive.ObjectID) (*models.Medication, error) {
	set := bson.M{
		"active":    false,
		"updatedAt": time.Now().UTC(),
	}
	return s.findOneAndUpdate(ctx, id, set)
}

func (s *MongoMedicationStore) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Medication, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var med models.Medication
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&med)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update medication: %w", err)
	}
	return &med, nil
}
