package worker_test

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exchangethb/exchange-data-service/internal/worker"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunsTasksPeriodically(t *testing.T) {
	var ticks atomic.Int32
	sched := worker.NewScheduler(newTestLogger(), worker.Task{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Run:      func(ctx context.Context) { ticks.Add(1) },
	})

	sched.Start(context.Background())
	defer sched.Stop()

	require.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_ImmediateRunsBeforeFirstTick(t *testing.T) {
	var runs atomic.Int32
	sched := worker.NewScheduler(newTestLogger(), worker.Task{
		Name:      "refresh",
		Interval:  time.Hour,
		Immediate: true,
		Run:       func(ctx context.Context) { runs.Add(1) },
	})

	sched.Start(context.Background())
	defer sched.Stop()

	require.Eventually(t, func() bool {
		return runs.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopCancelsAllTasks(t *testing.T) {
	started := make(chan struct{})
	var cancelled atomic.Bool

	sched := worker.NewScheduler(newTestLogger(),
		worker.Task{
			Name:      "long",
			Interval:  time.Hour,
			Immediate: true,
			Run: func(ctx context.Context) {
				close(started)
				<-ctx.Done()
				cancelled.Store(true)
			},
		},
		worker.Task{
			Name:     "idle",
			Interval: time.Hour,
			Run:      func(ctx context.Context) {},
		},
	)

	sched.Start(context.Background())
	<-started
	assert.True(t, sched.IsRunning())

	require.NoError(t, sched.Stop())
	assert.True(t, cancelled.Load())
	require.Eventually(t, func() bool { return !sched.IsRunning() }, time.Second, 5*time.Millisecond)
}

func TestScheduler_ParentContextCancellation(t *testing.T) {
	var ticks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	sched := worker.NewScheduler(newTestLogger(), worker.Task{
		Name:      "tick",
		Interval:  time.Hour,
		Immediate: true,
		Run:       func(ctx context.Context) { ticks.Add(1) },
	})

	sched.Start(ctx)
	require.Eventually(t, func() bool { return ticks.Load() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return !sched.IsRunning() }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StartTwiceIsNoOp(t *testing.T) {
	var runs atomic.Int32
	sched := worker.NewScheduler(newTestLogger(), worker.Task{
		Name:      "once",
		Interval:  time.Hour,
		Immediate: true,
		Run:       func(ctx context.Context) { runs.Add(1) },
	})

	sched.Start(context.Background())
	sched.Start(context.Background())
	defer sched.Stop()

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}
