package slotRepo

import (
	"context"

	"nutribook/models"
)

// SlotRepository defines data access for the clinic's slot templates.
type SlotRepository interface {
	// ListByMode retrieves slot templates for the given appointment mode,
	// ordered by start time.
	ListByMode(ctx context.Context, mode string) ([]models.Slot, error)
	// GetByID retrieves a single slot template.
	GetByID(ctx context.Context, id string) (*models.Slot, error)
	// Seed inserts the default templates when the collection is empty.
	Seed(ctx context.Context, slots []models.Slot) error
}
