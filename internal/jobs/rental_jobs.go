// Package jobs runs the scheduled booking lifecycle maintenance: rentals
// whose dates have arrived or elapsed move forward through the same
// status graph the API enforces.
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// BookingLifecycleStore is the slice of the booking repository the jobs
// need.
type BookingLifecycleStore interface {
	StartDue(ctx context.Context, today time.Time) (int64, error)
	CompleteElapsed(ctx context.Context, today time.Time) (int64, error)
}

type Runner struct {
	bookings BookingLifecycleStore
	cron     *cron.Cron
}

func NewRunner(bookings BookingLifecycleStore) *Runner {
	return &Runner{
		bookings: bookings,
		cron:     cron.New(),
	}
}

// Start schedules the nightly lifecycle pass and begins the cron loop.
func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc("5 0 * * *", r.RunLifecyclePass); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *Runner) Stop() {
	r.cron.Stop()
}

// RunLifecyclePass activates confirmed bookings whose start date has
// arrived and completes active bookings past their end date. Exported so
// it can be driven manually (seed scripts, tests, admin tooling).
func (r *Runner) RunLifecyclePass() {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("job_panic job=lifecycle panic=%v", rec)
		}
	}()

	ctx := context.Background()
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	started, err := r.bookings.StartDue(ctx, today)
	if err != nil {
		log.Printf("job_error job=lifecycle step=start_due error=%v", err)
	} else if started > 0 {
		log.Printf("job job=lifecycle step=start_due activated=%d", started)
	}

	completed, err := r.bookings.CompleteElapsed(ctx, today)
	if err != nil {
		log.Printf("job_error job=lifecycle step=complete_elapsed error=%v", err)
	} else if completed > 0 {
		log.Printf("job job=lifecycle step=complete_elapsed completed=%d", completed)
	}
}
