package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-circulation/library/internal/cache"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	pkgcache "github.com/Astemirdum/library-circulation/pkg/cache"
)

// Requires a disposable redis; set LIBRARY_TEST_REDIS=host:port to run.
func newStores(t *testing.T) (*cache.Sessions, *cache.Reports) {
	t.Helper()
	addr := os.Getenv("LIBRARY_TEST_REDIS")
	if addr == "" {
		t.Skip("LIBRARY_TEST_REDIS is not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rdb, err := pkgcache.NewClient(ctx, pkgcache.Config{Addr: addr, DB: 15})
	require.NoError(t, err)
	require.NoError(t, rdb.FlushDB(ctx).Err())
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewSessions(rdb), cache.NewReports(rdb, time.Minute)
}

func TestSessions(t *testing.T) {
	sessions, _ := newStores(t)
	ctx := context.Background()
	sid := uuid.NewString()

	active, err := sessions.Active(ctx, sid)
	require.NoError(t, err)
	require.False(t, active)

	require.NoError(t, sessions.Create(ctx, sid, 7, time.Minute))
	active, err = sessions.Active(ctx, sid)
	require.NoError(t, err)
	require.True(t, active)

	require.NoError(t, sessions.Revoke(ctx, sid))
	active, err = sessions.Active(ctx, sid)
	require.NoError(t, err)
	require.False(t, active)
}

func TestSessions_Expire(t *testing.T) {
	sessions, _ := newStores(t)
	ctx := context.Background()
	sid := uuid.NewString()

	require.NoError(t, sessions.Create(ctx, sid, 7, 50*time.Millisecond))
	require.Eventually(t, func() bool {
		active, err := sessions.Active(ctx, sid)
		return err == nil && !active
	}, 2*time.Second, 20*time.Millisecond)
}

func TestReports_Dashboard(t *testing.T) {
	_, reports := newStores(t)
	ctx := context.Background()

	_, ok, err := reports.GetDashboard(ctx, 30)
	require.NoError(t, err)
	require.False(t, ok)

	d := model.Dashboard{TotalCheckouts: 5, ActiveLoans: 2, GeneratedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
	require.NoError(t, reports.SetDashboard(ctx, 30, d))
	require.NoError(t, reports.SetDashboard(ctx, 7, d))

	got, ok, err := reports.GetDashboard(ctx, 30)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, d, got)

	require.NoError(t, reports.InvalidateDashboard(ctx))
	for _, days := range []int{7, 30} {
		_, ok, err = reports.GetDashboard(ctx, days)
		require.NoError(t, err)
		require.False(t, ok)
	}
}
