package invoiceRepo

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

// MongoInvoiceRepo implements InvoiceRepository using MongoDB.
type MongoInvoiceRepo struct {
	coll *mongo.Collection
}

// NewMongoInvoiceRepo creates a new InvoiceRepository backed by MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	coll := database.Collection("invoices")
	repo := &MongoInvoiceRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create invoice indexes: %v\n", err)
	}
	return repo
}

func (r *MongoInvoiceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "invoiceId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts an invoice document.
func (r *MongoInvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	now := time.Now()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, inv); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// GetByID retrieves an invoice by its unique ID.
func (r *MongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := r.coll.FindOne(ctx, bson.M{"invoiceId": id}).Decode(&inv); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("invoice %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", id, err)
	}
	return &inv, nil
}

// ListByPatient retrieves all invoices for a patient.
func (r *MongoInvoiceRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Invoice, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	for cursor.Next(ctx) {
		var inv models.Invoice
		if err := cursor.Decode(&inv); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}
