// Package scheduler runs background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = 30 * time.Second

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Resyncer is anything that can refresh itself from its source.
type Resyncer interface {
	Resync(ctx context.Context) error
}

// ValidateSchedule checks a five-field cron expression (descriptors such as
// @every 5m are accepted too).
func ValidateSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// ResyncScheduler periodically resyncs the board so changes made by other
// clients of the names API show up without user action.
type ResyncScheduler struct {
	target   Resyncer
	schedule string
	logger   *slog.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	lastRun time.Time
	lastErr error
}

// NewResyncScheduler creates a scheduler. An empty schedule disables it.
func NewResyncScheduler(target Resyncer, schedule string, logger *slog.Logger) *ResyncScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResyncScheduler{
		target:   target,
		schedule: schedule,
		logger:   logger.With("component", "resync_scheduler"),
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler. It stops on its own when ctx is done.
func (s *ResyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.schedule == "" {
		s.logger.Info("periodic resync disabled")
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		_ = s.run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule resync job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.logger.Info("periodic resync started",
		"schedule", s.schedule,
		"next_run", s.cron.Entry(entryID).Next)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *ResyncScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	entryID, cancel := s.entryID, s.cancelFunc
	s.cancelFunc = nil
	s.mu.Unlock()

	// Not under mu: a running job records its result under it.
	<-s.cron.Stop().Done()
	s.cron.Remove(entryID)
	if cancel != nil {
		cancel()
	}

	s.logger.Info("periodic resync stopped")
}

// RunNow resyncs immediately, outside the schedule.
func (s *ResyncScheduler) RunNow(ctx context.Context) error {
	return s.run(ctx)
}

// IsRunning returns whether the scheduler is active.
func (s *ResyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next resync will occur, or nil when stopped.
func (s *ResyncScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}

// LastRun returns the time and result of the most recent resync.
func (s *ResyncScheduler) LastRun() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun, s.lastErr
}

func (s *ResyncScheduler) run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultRunTimeout)
	defer cancel()

	start := time.Now()
	err := s.target.Resync(ctx)

	s.mu.Lock()
	s.lastRun = start
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("scheduled resync failed", "error", err)
		return err
	}
	s.logger.Debug("scheduled resync completed", "duration", time.Since(start))
	return nil
}
