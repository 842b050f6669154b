package scheduler

import (
	"context"
	"sync"
	"time"

	"karaku/backend/internal/logger"
)

// Refresher reloads remote data into the in-memory lists.
type Refresher interface {
	Activate(ctx context.Context) error
}

// Scheduler runs the refresher once at start and then every interval.
// With a non-positive interval it only runs the initial pass.
type Scheduler struct {
	refresher  Refresher
	interval   time.Duration
	timeout    time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current refresh
	mu         sync.Mutex         // protects cancelFunc
}

// DefaultTimeout bounds a single pass when no interval is set.
const DefaultTimeout = time.Minute

func New(refresher Refresher, interval time.Duration) *Scheduler {
	timeout := interval
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		timeout:   timeout,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "refresh", "resource", "catalog", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "refresh", "resource", "catalog", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.refresh()
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	select {
	case <-s.stopCh:
		return
	default:
	}

	logger.Debug("scheduled refresh started", "module", "scheduler", "action", "refresh", "resource", "catalog", "result", "ok")
	if err := s.refresher.Activate(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("scheduled refresh cancelled", "module", "scheduler", "action", "refresh", "resource", "catalog", "result", "cancelled")
			return
		}
		logger.Error("scheduled refresh failed", "module", "scheduler", "action", "refresh", "resource", "catalog", "result", "failed", "error", err)
		return
	}
	logger.Debug("scheduled refresh completed", "module", "scheduler", "action", "refresh", "resource", "catalog", "result", "ok")
}
