package handler

import (
	"log"
	"spa_manager/config"
	"spa_manager/constants"
	"spa_manager/database"
	"spa_manager/model"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func selectionTTL() time.Duration {
	minutes, err := strconv.Atoi(config.ConfigDefault("SELECTION_TTL_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// ExpireSelections drops pending selections nobody claimed within the
// TTL so abandoned kiosk sessions do not clog the therapist queue.
func ExpireSelections() {
	cutoff := time.Now().Add(-selectionTTL())

	result := database.DB.
		Where("status = ? AND selection_confirmed_at < ?", model.StatusPendingTherapist, cutoff).
		Delete(&model.Transaction{})
	if result.Error != nil {
		log.Printf("failed to expire stale selections: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("expired %d stale selections", result.RowsAffected)
		broadcast(constants.RoomTherapistQueue, "therapist_queue_updated", fiber.Map{})
		broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})
	}
}

// StartExpireSelectionWorker runs the sweeper every minute until the
// returned stop function is called.
func StartExpireSelectionWorker() func() {
	ticker := time.NewTicker(1 * time.Minute)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				ExpireSelections()
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}
