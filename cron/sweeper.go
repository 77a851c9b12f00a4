package cron

import (
	"fmt"

	"planmystay/services/booking"
	"planmystay/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper schedules the nightly reserved-range sweep. It is an explicit
// process-wide task with a start/stop lifecycle rather than an ambient timer,
// so tests can drive the sweep directly through the booking service.
type Sweeper struct {
	service  booking.BookingService
	schedule string
	runner   *cron.Cron
}

// NewSweeper creates a sweeper on the given cron schedule (e.g. "0 0 * * *").
func NewSweeper(service booking.BookingService, schedule string) *Sweeper {
	return &Sweeper{service: service, schedule: schedule}
}

// Start registers and starts the cron schedule.
func (s *Sweeper) Start() error {
	s.runner = cron.New()
	if _, err := s.runner.AddFunc(s.schedule, s.run); err != nil {
		return fmt.Errorf("failed to schedule sweep %q: %w", s.schedule, err)
	}
	s.runner.Start()
	utils.GetLogger().Info("reserved-range sweeper started", zap.String("schedule", s.schedule))
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (s *Sweeper) Stop() {
	if s.runner == nil {
		return
	}
	ctx := s.runner.Stop()
	<-ctx.Done()
	utils.GetLogger().Info("reserved-range sweeper stopped")
}

func (s *Sweeper) run() {
	logger := utils.GetLogger()
	logger.Info("running reserved-range sweep")
	if _, err := s.service.SweepExpiredRanges(); err != nil {
		logger.Error("reserved-range sweep failed", zap.Error(err))
	}
}
