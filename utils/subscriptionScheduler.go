package utils

import (
	"log"
	"time"

	"shopfit/database"
	"shopfit/models/plan"

	"github.com/robfig/cron/v3"
)

// InitializeSubscriptionScheduler sets up the subscription expiry scheduler
func InitializeSubscriptionScheduler() {
	log.Println("[SUBSCRIPTION-SCHEDULER] Initializing subscription scheduler...")

	c := cron.New()

	// Run daily at 9 AM to expire lapsed subscriptions
	c.AddFunc("0 9 * * *", func() {
		log.Println("[SUBSCRIPTION-SCHEDULER] Running daily subscription check...")
		ExpireSubscriptions()
	})

	c.Start()
	log.Println("[SUBSCRIPTION-SCHEDULER] Subscription scheduler started - runs daily at 9 AM")
}

// ExpireSubscriptions flips active subscriptions whose end date has passed
// back to inactive.
func ExpireSubscriptions() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&plan.UserSubscription{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", plan.SubscriptionActive, now).
		Updates(map[string]interface{}{
			"status":         plan.SubscriptionInactive,
			"payment_status": false,
		})

	if result.Error != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error expiring subscriptions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Expired %d subscriptions", result.RowsAffected)
	}
}
