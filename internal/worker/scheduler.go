package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a named periodic job.
type Task struct {
	Name     string
	Interval time.Duration
	// Immediate runs the task once before the first tick.
	Immediate bool
	Run       func(ctx context.Context)
}

// Scheduler runs independent periodic tasks under a single cancellation: one
// Stop (or context cancellation) tears down every task and waits for in-flight
// runs to return.
type Scheduler struct {
	tasks  []Task
	logger *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewScheduler creates a scheduler for the given tasks.
func NewScheduler(logger *slog.Logger, tasks ...Task) *Scheduler {
	return &Scheduler{
		tasks:  tasks,
		logger: logger.With("component", "scheduler"),
	}
}

// Start launches all tasks. It returns immediately; tasks run until the
// context is cancelled or Stop is called. Starting a running scheduler is a
// no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	var wg sync.WaitGroup
	for _, task := range s.tasks {
		wg.Add(1)
		go func(t Task) {
			defer wg.Done()
			s.runTask(runCtx, t)
		}(task)
	}

	go func() {
		wg.Wait()
		close(s.done)
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.logger.Info("scheduler started", "tasks", len(s.tasks))
}

func (s *Scheduler) runTask(ctx context.Context, t Task) {
	logger := s.logger.With("task", t.Name)
	logger.Info("task started", "interval", t.Interval.String())

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	if t.Immediate {
		t.Run(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("task stopped")
			return
		case <-ticker.C:
			t.Run(ctx)
		}
	}
}

// Stop cancels all tasks and waits for them to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	s.logger.Info("stopping scheduler")
	cancel()

	select {
	case <-done:
		return nil
	case <-time.After(10 * time.Second):
		return context.DeadlineExceeded
	}
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
