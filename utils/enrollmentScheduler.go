package utils

import (
	"elearn/config"
	"elearn/database"
	"elearn/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[ENROLLMENT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartEnrollmentScheduler runs the daily enrollment maintenance job
func StartEnrollmentScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("@daily", CancelStalePendingEnrollments); err != nil {
		logScheduler("Error registering stale enrollment job: " + err.Error())
		return
	}

	c.Start()
	logScheduler("Enrollment scheduler started")
}

// CancelStalePendingEnrollments cancels Pending enrollments whose payment
// confirmation never arrived within the configured TTL. Cancelled rows stay
// behind as history; the (user, course) pair becomes enrollable again.
func CancelStalePendingEnrollments() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.PendingEnrollmentTTLDays)

	result := db.Model(&models.Enrollment{}).
		Where("status = ? AND created_at < ?", models.EnrollmentStatusPending, cutoff).
		Update("status", models.EnrollmentStatusCancelled)

	if result.Error != nil {
		logScheduler("Error cancelling stale pending enrollments: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler(fmt.Sprintf("Cancelled %d stale pending enrollments", result.RowsAffected))
	}
}
