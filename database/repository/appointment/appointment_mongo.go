package appointmentRepo

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

// MongoPendingRepo implements PendingRepository using MongoDB.
type MongoPendingRepo struct {
	coll *mongo.Collection
}

// NewMongoPendingRepo creates a new PendingRepository backed by MongoDB.
func NewMongoPendingRepo() PendingRepository {
	coll := database.Collection("pending_appointments")
	repo := &MongoPendingRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create pending appointment indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPendingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "updatedAt", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new pending appointment document.
func (r *MongoPendingRepo) Create(ctx context.Context, appt *models.PendingAppointment) error {
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create pending appointment: %w", err)
	}
	return nil
}

// GetByID retrieves a pending appointment by its unique ID.
func (r *MongoPendingRepo) GetByID(ctx context.Context, id string) (*models.PendingAppointment, error) {
	var appt models.PendingAppointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("pending appointment %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch pending appointment %s: %w", id, err)
	}
	return &appt, nil
}

// ListByPatient retrieves all pending appointments for a patient, newest first.
func (r *MongoPendingRepo) ListByPatient(ctx context.Context, patientID string) ([]models.PendingAppointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.PendingAppointment
	for cursor.Next(ctx) {
		var a models.PendingAppointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode pending appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// Update replaces the mutable fields of an existing pending appointment.
func (r *MongoPendingRepo) Update(ctx context.Context, appt *models.PendingAppointment) error {
	appt.UpdatedAt = time.Now()
	filter := bson.M{"id": appt.ID}
	update := bson.M{"$set": appt}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update pending appointment %s: %w", appt.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("pending appointment %s not found", appt.ID)
	}
	return nil
}

// Delete removes a pending appointment owned by the given patient.
func (r *MongoPendingRepo) Delete(ctx context.Context, id, patientID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "patientId": patientID})
	if err != nil {
		return fmt.Errorf("failed to delete pending appointment %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("pending appointment %s not found", id)
	}
	return nil
}

// MongoConfirmedRepo implements ConfirmedRepository using MongoDB.
type MongoConfirmedRepo struct {
	coll *mongo.Collection
}

// NewMongoConfirmedRepo creates a new ConfirmedRepository backed by MongoDB.
func NewMongoConfirmedRepo() ConfirmedRepository {
	coll := database.Collection("appointments")
	repo := &MongoConfirmedRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}

func (r *MongoConfirmedRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
		{Keys: bson.D{{Key: "appointmentDate", Value: 1}, {Key: "slotId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a confirmed appointment document.
func (r *MongoConfirmedRepo) Create(ctx context.Context, appt *models.Appointment) error {
	appt.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves a confirmed appointment by ID.
func (r *MongoConfirmedRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("appointment %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// ListByPatient retrieves all confirmed appointments for a patient.
func (r *MongoConfirmedRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// ListBookedSlotIDs returns the slot IDs of non-cancelled appointments on a date.
func (r *MongoConfirmedRepo) ListBookedSlotIDs(ctx context.Context, date string) ([]string, error) {
	filter := bson.M{
		"appointmentDate": date,
		"status":          bson.M{"$ne": models.AppointmentCancelled},
	}
	opts := options.Find().SetProjection(bson.M{"slotId": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query booked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slotIDs []string
	for cursor.Next(ctx) {
		var doc struct {
			SlotID string `bson:"slotId"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode booked slot: %w", err)
		}
		if doc.SlotID != "" {
			slotIDs = append(slotIDs, doc.SlotID)
		}
	}
	return slotIDs, nil
}
