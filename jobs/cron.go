package jobs

import (
	"log"

	"github.com/Kiptoos/alx-travel-app-0x01/utils"

	"github.com/robfig/cron/v3"
)

// BookingExpirer cancels pending bookings that outlived their end date.
type BookingExpirer interface {
	ExpireStalePending() (int, error)
}

var bookingExpirer BookingExpirer

// SetBookingExpirer wires the implementation used by the daily job.
func SetBookingExpirer(expirer BookingExpirer) {
	bookingExpirer = expirer
}

// InitCronJobs registers the background jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron) error {
	// Runs at midnight every day
	_, err := c.AddFunc("0 0 * * *", func() {
		if bookingExpirer == nil {
			utils.LogError("booking expirer not configured, skipping run")
			return
		}
		expired, err := bookingExpirer.ExpireStalePending()
		if err != nil {
			utils.LogError("error expiring stale bookings: %v", err)
			return
		}
		utils.LogInfo("stale booking sweep done, %d cancelled", expired)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
