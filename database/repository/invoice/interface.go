package invoiceRepo

import (
	"context"

	"nutribook/models"
)

// InvoiceRepository defines data access for payment invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Invoice, error)
}
