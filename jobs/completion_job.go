package jobs

import (
	"log"
	"time"

	"github.com/kentanne/CCSPals-sub001/database"
	"github.com/kentanne/CCSPals-sub001/models"
)

// CompletePastSchedules flips confirmed schedules whose session date has
// passed to completed, standing in for the mentor forgetting to do it. Runs
// on the cron registered in main.
func CompletePastSchedules() {
	log.Println("Running job: CompletePastSchedules...")

	today := time.Now().Format("2006-01-02")

	result := database.DB.Model(&models.Schedule{}).
		Where("status = ? AND date < ?", models.ScheduleStatusConfirmed, today).
		Update("status", models.ScheduleStatusCompleted)

	if result.Error != nil {
		log.Printf("Error completing past schedules: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		log.Println("No past schedules to complete.")
		return
	}

	log.Printf("Marked %d schedule(s) as completed.", result.RowsAffected)
}
