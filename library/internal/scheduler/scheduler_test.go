package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/scheduler"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) Sweep(context.Context) (int64, int, error) {
	s.calls.Add(1)
	return 0, 0, nil
}

func TestScheduler_BadSpec(t *testing.T) {
	t.Parallel()
	_, err := scheduler.New("every hour", &countingSweeper{}, zap.NewNop())
	require.Error(t, err)
}

func TestScheduler_RunsSweep(t *testing.T) {
	t.Parallel()
	sweeper := &countingSweeper{}
	s, err := scheduler.New("@every 1s", sweeper, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return sweeper.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
