package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"moveflow/config"
	leadsRepo "moveflow/database/repository/leads"
	"moveflow/httpServices/bookingcore"
	"moveflow/models"

	"github.com/hibiken/asynq"
)

const TypeBookingFollowup = "booking:followup"

// FollowupPayload identifies the booking and lead a follow-up re-checks.
type FollowupPayload struct {
	BookingID string `json:"bookingId"`
	LeadID    string `json:"leadId"`
}

// BookingLookup is the slice of the upstream backend the worker needs.
type BookingLookup interface {
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
}

// Enqueuer schedules follow-up tasks onto the Redis-backed queue.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer creates a client against the follow-up queue DB.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisFollowupDB,
		}),
	}
}

// EnqueueBookingFollowup schedules a delayed re-check of a booking's status.
func (e *Enqueuer) EnqueueBookingFollowup(bookingID, leadID string, delay time.Duration) error {
	payload, err := json.Marshal(FollowupPayload{BookingID: bookingID, LeadID: leadID})
	if err != nil {
		return fmt.Errorf("failed to marshal follow-up payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingFollowup, payload)
	if _, err := e.client.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		return fmt.Errorf("failed to enqueue follow-up: %w", err)
	}
	return nil
}

// InitFollowupWorker runs the async worker in background.
func InitFollowupWorker(lookup BookingLookup, leads leadsRepo.Repository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFollowupDB,
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
	mux.HandleFunc(TypeBookingFollowup, handleFollowupTask(lookup, leads))

	go func() {
		log.Println("[FollowupWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[FollowupWorker] worker stopped: %v", err)
		}
	}()
}

// handleFollowupTask re-queries the booking and records its terminal state on
// the lead. By the time the task fires the backend has long converged, so a
// missing booking here is a real cancellation, not consistency lag.
func handleFollowupTask(lookup BookingLookup, leads leadsRepo.Repository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p FollowupPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FollowupHandler] invalid payload: %v", err)
			return err
		}

		booking, err := lookup.GetBooking(ctx, p.BookingID)
		if err != nil {
			if bookingcore.IsNotFound(err) {
				return leads.UpdateStatus(ctx, p.LeadID, models.LeadStatusFailed, "vanished")
			}
			log.Printf("[FollowupHandler] lookup failed for booking %s: %v", p.BookingID, err)
			return err
		}

		status := models.LeadStatusConfirmed
		if booking.Status == "cancelled" {
			status = models.LeadStatusFailed
		}
		return leads.UpdateStatus(ctx, p.LeadID, status, "")
	}
}
