package service

import (
	"context"
	"log"
	"time"

	"hospital-admin-backend/internal/repository"
)

// WorkerService runs periodic housekeeping. Its only job today is purging
// refresh tokens that expired or were revoked; room occupancy is never
// reconciled in the background, the admission lifecycle is its sole writer.
type WorkerService struct {
	userRepo *repository.UserRepository
	interval time.Duration
}

func NewWorkerService(userRepo *repository.UserRepository, interval time.Duration) *WorkerService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &WorkerService{
		userRepo: userRepo,
		interval: interval,
	}
}

// Start begins the background worker until the context is cancelled
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Background worker started - purging stale refresh tokens every %v", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Background worker stopped")
			return
		case <-ticker.C:
			w.purgeStaleTokens()
		}
	}
}

func (w *WorkerService) purgeStaleTokens() {
	removed, err := w.userRepo.DeleteStaleRefreshTokens(time.Now())
	if err != nil {
		log.Printf("Error purging stale refresh tokens: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Purged %d stale refresh tokens", removed)
	}
}
