package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain/caffeine"
	"github.com/joltlabs/jolt-api/internal/store"
)

// analysisWindowHours is how far back the scheduler looks for intake records
// when recomputing a user's crash prediction. Older records have decayed to
// a negligible level at every supported half-life.
const analysisWindowHours = 24

// SchedulerConfig holds configuration for the alert scheduler.
type SchedulerConfig struct {
	// LeadTime is how long before the predicted crash the alert fires.
	LeadTime time.Duration

	// QueueSize determines the buffer size for the recompute request queue.
	QueueSize int
}

// DefaultSchedulerConfig returns a SchedulerConfig with reasonable defaults.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		LeadTime:  30 * time.Minute,
		QueueSize: 100,
	}
}

// Scheduler recomputes crash alerts in the background. Every recompute is a
// full replacement: cancel all pending alerts for the user, then schedule at
// most one new alert ahead of the predicted crash. A single worker processes
// the queue so replacements for a user never interleave.
type Scheduler struct {
	userStore   store.UserStore
	intakeStore store.IntakeStore
	caffeineSvc caffeine.Service
	notifier    Notifier
	config      SchedulerConfig
	requests    chan uuid.UUID
	ctx         context.Context
	cancelFunc  context.CancelFunc
	wg          sync.WaitGroup
	logger      *slog.Logger
	timeFunc    func() time.Time // Injectable for testing
}

// NewScheduler creates a new Scheduler. It does not start processing until
// Start is called.
func NewScheduler(
	userStore store.UserStore,
	intakeStore store.IntakeStore,
	caffeineSvc caffeine.Service,
	notifier Notifier,
	config SchedulerConfig,
	logger *slog.Logger,
) *Scheduler {
	if config.LeadTime <= 0 {
		config.LeadTime = 30 * time.Minute
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 100
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		userStore:   userStore,
		intakeStore: intakeStore,
		caffeineSvc: caffeineSvc,
		notifier:    notifier,
		config:      config,
		requests:    make(chan uuid.UUID, config.QueueSize),
		ctx:         ctx,
		cancelFunc:  cancel,
		logger:      logger.With(slog.String("component", "alert_scheduler")),
		timeFunc:    time.Now,
	}
}

// Start launches the worker goroutine.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.worker()
}

// Stop gracefully shuts down the scheduler, waiting for the in-flight
// recompute to finish. Queued requests that have not started are dropped;
// they will be recomputed on the user's next intake change.
func (s *Scheduler) Stop() {
	s.cancelFunc()
	s.wg.Wait()
}

// Request enqueues a recompute for the user. It never blocks; if the queue
// is full an error is returned and the caller may retry later.
func (s *Scheduler) Request(userID uuid.UUID) error {
	select {
	case s.requests <- userID:
		return nil
	default:
		return fmt.Errorf("alert queue is full, try again later")
	}
}

// worker drains the request queue one recompute at a time.
func (s *Scheduler) worker() {
	defer s.wg.Done()

	s.logger.Debug("starting alert worker")

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Debug("stopping alert worker")
			return
		case userID := <-s.requests:
			if err := s.recompute(s.ctx, userID); err != nil {
				s.logger.Error("alert recompute failed",
					"error", err,
					"user_id", userID)
			}
		}
	}
}

// recompute replaces the user's pending alerts based on the current intake
// history. Cancellation happens unconditionally so a recompute that predicts
// no crash still clears stale alerts.
func (s *Scheduler) recompute(ctx context.Context, userID uuid.UUID) error {
	now := s.timeFunc()

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user for alert recompute: %w", err)
	}

	since := now.Add(-analysisWindowHours * time.Hour)
	records, err := s.intakeStore.ListByUserSince(ctx, userID, since)
	if err != nil {
		return fmt.Errorf("failed to load intake records for alert recompute: %w", err)
	}

	if err := s.notifier.CancelCrashAlerts(ctx, userID); err != nil {
		return err
	}

	crashTime, err := s.caffeineSvc.PredictCrash(records, user.Sensitivity, now)
	if err != nil {
		return fmt.Errorf("failed to predict crash: %w", err)
	}
	if crashTime == nil {
		s.logger.Debug("no crash predicted, alerts cleared",
			"user_id", userID)
		return nil
	}

	fireAt := crashTime.Add(-s.config.LeadTime)
	if !fireAt.After(now) {
		s.logger.Debug("predicted crash too close to schedule an alert",
			"user_id", userID,
			"crash_time", *crashTime)
		return nil
	}

	if err := s.notifier.ScheduleCrashAlert(ctx, userID, fireAt); err != nil {
		return err
	}

	s.logger.Info("crash alert scheduled",
		"user_id", userID,
		"fire_at", fireAt,
		"crash_time", *crashTime)
	return nil
}
