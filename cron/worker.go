package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"nutribook/config"
	"nutribook/models"
	"nutribook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
		return err
	}

	logger := utils.GetLogger()
	logger.Info("sending appointment reminder",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("patientId", p.PatientID),
		zap.String("date", p.AppointmentDate))

	message := "Reminder: your " + p.PlanName + " consultation is tomorrow, " +
		p.AppointmentDate + " at " + p.SlotLabel + "."
	if err := utils.SendPatientReminder(ctx, p.PatientID, message); err != nil {
		logger.Error("failed to deliver reminder",
			zap.String("appointmentId", p.AppointmentID), zap.Error(err))
		return err
	}
	return nil
}
