package booking

import (
	"context"
	"fmt"
	"time"

	"nutribook/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler creates and settles payment orders for appointments.
type PaymentHandler interface {
	CreateOrder(ctx context.Context, appointmentID, patientID string, amountPaise int64) (*models.Invoice, string, error)
	ConfirmPayment(ctx context.Context, inv *models.Invoice, paymentID string) error
}

// StripePaymentHandler implements PaymentHandler over the Stripe API.
// Gateway correctness (webhooks, retries) is the gateway's concern; this
// layer only creates intents and checks their terminal status.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewPaymentHandler constructs a StripePaymentHandler.
func NewPaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreateOrder opens a payment intent for the appointment amount and returns a
// pending invoice plus the client secret the web client needs to collect the
// payment.
func (h *StripePaymentHandler) CreateOrder(ctx context.Context, appointmentID, patientID string, amountPaise int64) (*models.Invoice, string, error) {
	if amountPaise <= 0 {
		return nil, "", fmt.Errorf("invalid payment amount: %d", amountPaise)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountPaise),
		Currency: stripe.String(string(stripe.CurrencyINR)),
	}
	params.AddMetadata("appointmentId", appointmentID)
	params.AddMetadata("patientId", patientID)

	pi, err := paymentintent.New(params)
	if err != nil {
		h.logger.Error("failed to create payment intent", zap.Error(err),
			zap.String("appointmentId", appointmentID))
		return nil, "", fmt.Errorf("failed to create payment order: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID:     uuid.New().String(),
		AppointmentID: appointmentID,
		PatientID:     patientID,
		AmountPaise:   amountPaise,
		Currency:      "INR",
		PaymentID:     pi.ID,
		Status:        "pending",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	return inv, pi.ClientSecret, nil
}

// ConfirmPayment verifies that the payment intent reached a terminal success
// state and marks the invoice paid.
func (h *StripePaymentHandler) ConfirmPayment(ctx context.Context, inv *models.Invoice, paymentID string) error {
	if paymentID == "" {
		paymentID = inv.PaymentID
	}
	if paymentID == "" {
		return fmt.Errorf("no payment to confirm for invoice %s", inv.InvoiceID)
	}

	pi, err := paymentintent.Get(paymentID, nil)
	if err != nil {
		return fmt.Errorf("failed to retrieve payment %s: %w", paymentID, err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment %s not completed (status %s)", paymentID, pi.Status)
	}

	inv.PaymentID = paymentID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()
	h.logger.Info("payment confirmed", zap.String("invoice", inv.InvoiceID),
		zap.String("payment", paymentID))
	return nil
}
