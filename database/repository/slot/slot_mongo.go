package slotRepo

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

// MongoSlotRepo implements SlotRepository using MongoDB.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo creates a new SlotRepository backed by MongoDB.
func NewMongoSlotRepo() SlotRepository {
	coll := database.Collection("slots")
	repo := &MongoSlotRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create slot indexes: %v\n", err)
	}
	return repo
}

func (r *MongoSlotRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mode", Value: 1}, {Key: "startMinute", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListByMode retrieves slot templates for a mode, ordered by start time.
func (r *MongoSlotRepo) ListByMode(ctx context.Context, mode string) ([]models.Slot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startMinute", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"mode": mode}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	for cursor.Next(ctx) {
		var s models.Slot
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// GetByID retrieves a single slot template.
func (r *MongoSlotRepo) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	var slot models.Slot
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("slot %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch slot %s: %w", id, err)
	}
	return &slot, nil
}

// Seed inserts the default slot templates when the collection is empty.
func (r *MongoSlotRepo) Seed(ctx context.Context, slots []models.Slot) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count slots: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(slots))
	for _, s := range slots {
		docs = append(docs, s)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed slots: %w", err)
	}
	return nil
}
