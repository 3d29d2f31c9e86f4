package patientRepo

import (
	"context"
	"fmt"
	"time"

	"nutribook/database"
	"nutribook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPatientRepo implements PatientRepository using MongoDB.
type MongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo creates a new PatientRepository backed by MongoDB.
func NewMongoPatientRepo() PatientRepository {
	coll := database.Collection("patients")
	repo := &MongoPatientRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create patient indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPatientRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new patient document.
func (r *MongoPatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	now := time.Now()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// GetByID retrieves a patient by its unique ID.
func (r *MongoPatientRepo) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("patient %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch patient %s: %w", id, err)
	}
	return &patient, nil
}

// GetByEmail retrieves a patient by its email address.
func (r *MongoPatientRepo) GetByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&patient); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch patient with email %s: %w", email, err)
	}
	return &patient, nil
}

// Update modifies an existing patient document.
func (r *MongoPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	patient.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": patient.ID}, bson.M{"$set": patient})
	if err != nil {
		return fmt.Errorf("failed to update patient %s: %w", patient.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("patient %s not found", patient.ID)
	}
	return nil
}

// Delete removes a patient document by its ID.
func (r *MongoPatientRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete patient %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("patient %s not found", id)
	}
	return nil
}
