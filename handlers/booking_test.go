package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutribook/models"
	"nutribook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFlow struct {
	form       *models.BookingForm
	advanceErr error
}

func (f *fakeFlow) StartSession(ctx context.Context, patientID, planSlug, packageSlug string) (string, *models.PendingAppointment, error) {
	return "sess-1", &models.PendingAppointment{ID: "appt-1", PatientID: patientID, PlanSlug: planSlug}, nil
}

func (f *fakeFlow) GetForm(ctx context.Context, sessionID string) (*models.BookingForm, error) {
	if f.form == nil {
		return &models.BookingForm{}, nil
	}
	return f.form, nil
}

func (f *fakeFlow) MergeForm(ctx context.Context, sessionID string, patch models.FormPatch) (*models.BookingForm, error) {
	form := &models.BookingForm{}
	if f.form != nil {
		form = f.form
	}
	if err := form.Apply(patch); err != nil {
		return nil, err
	}
	f.form = form
	return form, nil
}

func (f *fakeFlow) Advance(ctx context.Context, sessionID string, step models.Step) (string, error) {
	if f.advanceErr != nil {
		return "", f.advanceErr
	}
	return booking.RouteRecall, nil
}

func (f *fakeFlow) Back(step models.Step) (string, bool) {
	return booking.RouteUserDetails, step != models.StepUserDetails
}

func (f *fakeFlow) Cancel(ctx context.Context, sessionID string) error { return nil }

func (f *fakeFlow) CreateOrder(ctx context.Context, sessionID string) (*models.Invoice, string, error) {
	return &models.Invoice{InvoiceID: "inv-1", AmountPaise: 1780000, Currency: "INR"}, "secret", nil
}

func (f *fakeFlow) Confirm(ctx context.Context, sessionID, paymentID string) (*models.Appointment, error) {
	return &models.Appointment{ID: "appt-1", Status: models.AppointmentConfirmed}, nil
}

func performRequest(t *testing.T, handler gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Handle(method, "/book/:sessionID", func(c *gin.Context) {
		c.Set("patientID", "pat-1")
		handler(c)
	})
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMergeFormHandlerRejectsUnknownField(t *testing.T) {
	flow := &fakeFlow{}

	w := performRequest(t, MergeFormHandler(flow), http.MethodPatch, "/book/sess-1", `{"fullNname":"Asha"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fullNname")
}

func TestMergeFormHandlerAccumulates(t *testing.T) {
	flow := &fakeFlow{}

	w := performRequest(t, MergeFormHandler(flow), http.MethodPatch, "/book/sess-1", `{"fullName":"Asha Rao"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var form models.BookingForm
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &form))
	assert.Equal(t, "Asha Rao", form.FullName)
}

func TestAdvanceHandlerReportsMissingField(t *testing.T) {
	flow := &fakeFlow{advanceErr: booking.NewValidationError("USER_DETAILS", "email")}

	w := performRequest(t, AdvanceHandler(flow), http.MethodPost, "/book/sess-1", `{"step":"USER_DETAILS"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp["missingField"])
	assert.Equal(t, "USER_DETAILS", resp["step"])
}

func TestAdvanceHandlerExpiredSession(t *testing.T) {
	flow := &fakeFlow{advanceErr: &booking.SessionError{SessionID: "sess-1", Reason: "session expired or not found"}}

	w := performRequest(t, AdvanceHandler(flow), http.MethodPost, "/book/sess-1", `{"step":"USER_DETAILS"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdvanceHandlerReturnsNextRoute(t *testing.T) {
	flow := &fakeFlow{}

	w := performRequest(t, AdvanceHandler(flow), http.MethodPost, "/book/sess-1", `{"step":"USER_DETAILS"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), booking.RouteRecall)
}

func TestBackHandlerFirstStepHasNoRoute(t *testing.T) {
	flow := &fakeFlow{}

	w := performRequest(t, BackHandler(flow), http.MethodPost, "/book/sess-1", `{"step":"USER_DETAILS"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp["route"])
}
