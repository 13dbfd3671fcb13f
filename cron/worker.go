package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/proyectosweblym/barberbook/config"
	"github.com/proyectosweblym/barberbook/models"
	"github.com/proyectosweblym/barberbook/services/availability"
)

const TypePurgeExpired = "daybook:purge"

// InitPurgeWorker runs the async worker and the daily schedule in background.
// The day book is purged of records dated before today once per day at
// midnight, on top of the purge that runs with every cold load.
func InitPurgeWorker(availSvc availability.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePurgeExpired, handlePurgeTask(availSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[PurgeWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PurgeWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PurgeWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Schedule the daily purge at midnight.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
			Location: time.Local,
		})
		task := asynq.NewTask(TypePurgeExpired, nil)
		if _, err := scheduler.Register("0 0 * * *", task); err != nil {
			log.Printf("[PurgeWorker] Failed to register daily purge: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[PurgeWorker] Scheduler stopped: %v", err)
		}
	}()
}

func handlePurgeTask(availSvc availability.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := models.CanonicalDate(time.Now())
		log.Printf("[PurgeHandler] Purging day records before %s", today)
		availSvc.PurgeExpiredDays(ctx, today)
		return nil
	}
}
