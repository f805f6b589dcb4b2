package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/grantboard/grantboard/internal/domain"
	"github.com/grantboard/grantboard/internal/index"
	"github.com/grantboard/grantboard/internal/logger"
	"github.com/grantboard/grantboard/internal/state"
)

// DeadlineNotifier periodically scans bookmarked grants for deadlines
// inside the urgent window and logs a notification for each. It never
// mutates the catalog or the user state.
type DeadlineNotifier struct {
	catalog  *index.Catalog
	state    *state.State
	logger   logger.Logger
	interval time.Duration
	timeNow  func() time.Time
	stopCh   chan struct{}

	mu        sync.RWMutex
	lastCheck time.Time
	lastCount int
}

// NewDeadlineNotifier creates a new deadline notifier
func NewDeadlineNotifier(
	cat *index.Catalog,
	st *state.State,
	log logger.Logger,
	interval time.Duration,
) *DeadlineNotifier {
	return &DeadlineNotifier{
		catalog:  cat,
		state:    st,
		logger:   log,
		interval: interval,
		timeNow:  time.Now,
		stopCh:   make(chan struct{}),
	}
}

// SetTimeNow overrides the clock, for tests.
func (dn *DeadlineNotifier) SetTimeNow(now func() time.Time) {
	dn.timeNow = now
}

// Start begins the periodic deadline check
func (dn *DeadlineNotifier) Start(ctx context.Context) error {
	// Check immediately on start
	dn.Check()

	ticker := time.NewTicker(dn.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				dn.Check()
			case <-dn.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the notifier
func (dn *DeadlineNotifier) Stop() {
	close(dn.stopCh)
}

// Check scans bookmarked grants and logs one notification per grant
// whose deadline falls within the urgent window. Returns the number
// of urgent grants found.
func (dn *DeadlineNotifier) Check() int {
	now := dn.timeNow()

	prefs := dn.state.GetPreferences()
	if !prefs.NotificationsEnabled {
		dn.logger.Debug("deadline notifications disabled, skipping check")
		dn.record(now, 0)
		return 0
	}

	count := 0
	for _, id := range dn.state.BookmarkedIDs() {
		grant, ok := dn.catalog.Get(id)
		if !ok {
			continue
		}
		deadline, ok := grant.DeadlineTime()
		if !ok {
			continue
		}
		if !domain.IsUrgent(deadline, now) {
			continue
		}

		days := domain.DaysUntil(deadline, now)
		dn.logger.Info("📅 grant deadline approaching",
			logger.String("grant_id", grant.ID),
			logger.String("title", grant.Title),
			logger.Int("days_left", days))
		count++
	}

	if count > 0 {
		dn.logger.Info("deadline check completed",
			logger.Int("urgent", count))
	} else {
		dn.logger.Debug("deadline check completed, nothing urgent")
	}

	dn.record(now, count)
	return count
}

func (dn *DeadlineNotifier) record(checkedAt time.Time, count int) {
	dn.mu.Lock()
	dn.lastCheck = checkedAt
	dn.lastCount = count
	dn.mu.Unlock()
}

// LastCheck reports when the notifier last ran and how many urgent
// grants it found.
func (dn *DeadlineNotifier) LastCheck() (time.Time, int) {
	dn.mu.RLock()
	defer dn.mu.RUnlock()
	return dn.lastCheck, dn.lastCount
}
