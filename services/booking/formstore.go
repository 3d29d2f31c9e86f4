package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nutribook/models"
	"nutribook/utils"

	"github.com/go-redis/redis/v8"
)

// FormKeyPrefix namespaces booking form sessions in the cache.
const FormKeyPrefix = "bookingForm:"

// FormStore holds the single in-flight booking form per session. It is
// deliberately dumb storage: merge and reset, no validation. Each browsing
// session gets its own key, so state never leaks across patients or tabs.
type FormStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFormStore creates a FormStore over the given Redis client. Sessions
// expire after ttl of inactivity; every merge refreshes the clock.
func NewFormStore(client *redis.Client, ttl time.Duration) *FormStore {
	return &FormStore{client: client, ttl: ttl}
}

// Get returns the accumulated form for the session. A session that has never
// been written (or has expired) yields an empty form, not an error.
func (s *FormStore) Get(ctx context.Context, sessionID string) (*models.BookingForm, error) {
	data, err := s.client.Get(ctx, FormKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.BookingForm{}, nil
		}
		return nil, fmt.Errorf("failed to load booking form: %w", err)
	}
	var form models.BookingForm
	if err := json.Unmarshal([]byte(data), &form); err != nil {
		return nil, fmt.Errorf("failed to parse booking form: %w", err)
	}
	return &form, nil
}

// Merge shallow-merges the patch into the stored form and saves the result.
// Keys absent from the patch keep their stored values. The merged form is
// written in a single store operation, so a failed merge leaves the stored
// state untouched. When a date of birth is present the age field is derived
// from it.
func (s *FormStore) Merge(ctx context.Context, sessionID string, patch models.FormPatch) (*models.BookingForm, error) {
	form, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := form.Apply(patch); err != nil {
		return nil, err
	}
	if age, ok := utils.AgeFromDOB(form.DOB, time.Now()); ok {
		form.Age = &age
	}
	if err := s.Put(ctx, sessionID, form); err != nil {
		return nil, err
	}
	return form, nil
}

// Put replaces the stored form for the session in one write.
func (s *FormStore) Put(ctx context.Context, sessionID string, form *models.BookingForm) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to marshal booking form: %w", err)
	}
	if err := s.client.Set(ctx, FormKeyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking form: %w", err)
	}
	return nil
}

// Reset deletes the stored form. Used when a booking completes or the patient
// explicitly cancels; no error path ever calls this.
func (s *FormStore) Reset(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, FormKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to reset booking form: %w", err)
	}
	return nil
}
