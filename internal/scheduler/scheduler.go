// Package scheduler runs the recurrence background loop: re-activating
// completed recurring todos whose interval has elapsed and purging stale
// completed one-time todos. It writes to the store directly, independent
// of the request-handling path.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nhle/chorebot/internal/model"
	"github.com/nhle/chorebot/internal/roster"
	"github.com/nhle/chorebot/internal/store"
)

// DefaultTick is the pass interval used when none is configured. The
// cadence only bounds recurrence latency; correctness does not depend
// on it.
const DefaultTick = 10 * time.Second

// Scheduler wakes on a fixed tick and runs one re-activation and purge
// pass per wakeup.
type Scheduler struct {
	store  store.Store
	roster *roster.Registry
	log    *zap.SugaredLogger
	tick   time.Duration

	// today is overridable in tests.
	today func() model.Date
}

// New creates a Scheduler with the given tick interval.
func New(s store.Store, r *roster.Registry, log *zap.SugaredLogger, tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Scheduler{
		store:  s,
		roster: r,
		log:    log,
		tick:   tick,
		today:  model.Today,
	}
}

// Run executes passes on every tick until ctx is cancelled. A failed pass
// never stops future ticks.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Infow("recurrence scheduler started", "tick", s.tick.String())

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Infow("recurrence scheduler stopped")
			return
		case <-ticker.C:
			s.RunPass(ctx)
		}
	}
}

// RunPass executes one re-activation and purge pass. Failures on
// individual todos are logged and skipped; re-running a pass on an
// unchanged store is a no-op.
func (s *Scheduler) RunPass(ctx context.Context) {
	today := s.today()
	s.reactivateRecurring(ctx, today)
	s.purgeOneTime(ctx, today)
}

// reactivateRecurring starts a fresh cycle for every completed recurring
// todo whose interval has fully elapsed. The assignee is re-rolled rather
// than kept, so a recurring chore rotates randomly over time.
func (s *Scheduler) reactivateRecurring(ctx context.Context, today model.Date) {
	todos, err := s.store.GetExpiredRecurring(ctx, today)
	if err != nil {
		s.log.Errorw("scanning expired recurring todos failed", "error", err)
		return
	}
	if len(todos) > 0 {
		s.log.Infow("re-activating recurring todos", "count", len(todos))
	}

	for _, todo := range todos {
		assignee, err := s.roster.RandomMember(ctx, todo.ChatID)
		if err != nil {
			s.log.Errorw("re-rolling assignee failed",
				"todo_id", todo.ID, "chat_id", todo.ChatID, "error", err)
			continue
		}
		if err := s.store.ResetTodoCycle(ctx, todo.ID, assignee.ID, today); err != nil {
			s.log.Errorw("resetting todo cycle failed", "todo_id", todo.ID, "error", err)
		}
	}
}

// purgeOneTime removes completed one-time todos past their one-day grace
// period. There is no archive.
func (s *Scheduler) purgeOneTime(ctx context.Context, today model.Date) {
	n, err := s.store.PurgeStaleOneTime(ctx, today)
	if err != nil {
		s.log.Errorw("purging stale one-time todos failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Infow("purged stale one-time todos", "count", n)
	}
}
