package tasks

import (
	"context"
	"encoding/json"
	"time"

	"nutribook/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task carrying the reminder payload,
// scheduled to fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqScheduler enqueues reminder tasks on the shared Redis queue. It
// satisfies the appointment service's ReminderScheduler.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler creates a scheduler over the given Redis connection.
func NewAsynqScheduler(opt asynq.RedisClientOpt) *AsynqScheduler {
	return &AsynqScheduler{client: asynq.NewClient(opt)}
}

// ScheduleReminder queues the reminder for delivery at fireAt.
func (s *AsynqScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.EnqueueContext(ctx, task, opts...)
	return err
}

// Close releases the underlying queue connection.
func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}
