package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/service"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

type memReports struct {
	dashboards map[int]model.Dashboard
}

func (m *memReports) GetDashboard(_ context.Context, days int) (model.Dashboard, bool, error) {
	d, ok := m.dashboards[days]
	return d, ok, nil
}

func (m *memReports) SetDashboard(_ context.Context, days int, d model.Dashboard) error {
	m.dashboards[days] = d
	return nil
}

func (m *memReports) InvalidateDashboard(context.Context) error {
	m.dashboards = make(map[int]model.Dashboard)
	return nil
}

func TestService_Dashboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cache := &memReports{dashboards: make(map[int]model.Dashboard)}
	e := newEnv(t, service.WithReportCache(cache))

	since := now.AddDate(0, 0, -7)
	e.repo.EXPECT().CountCheckouts(gomock.Any(), model.DateRange{From: since, To: now}).Return(12, nil).Times(2)
	e.repo.EXPECT().CountActiveLoans(gomock.Any()).Return(4, nil).Times(2)
	e.repo.EXPECT().CountMembersByStatus(gomock.Any(), model.MemberApproved).Return(30, nil).Times(2)
	e.repo.EXPECT().CountMembersByStatus(gomock.Any(), model.MemberPending).Return(2, nil).Times(2)
	e.repo.EXPECT().CountOverdue(gomock.Any(), now).Return(1, nil).Times(2)
	e.repo.EXPECT().CountNewBooks(gomock.Any(), since).Return(3, nil).Times(2)

	want := model.Dashboard{
		TotalCheckouts:  12,
		ActiveLoans:     4,
		ActiveMembers:   30,
		OverdueItems:    1,
		NewAcquisitions: 3,
		PendingMembers:  2,
		GeneratedAt:     now,
	}
	d, err := e.svc.Dashboard(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, want, d)

	// served from cache
	d, err = e.svc.Dashboard(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, want, d)

	// a circulation change drops the cached copy
	e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(activeLoan(now.Add(day)), nil)
	e.repo.EXPECT().ReturnLoan(gomock.Any(), int64(10), now).Return(returned(activeLoan(now.Add(day)), now), nil)
	e.repo.EXPECT().SetBookAvailability(gomock.Any(), int64(2), model.AvailabilityAvailable).Return(nil)
	_, err = e.svc.ReturnLoan(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, cache.dashboards)

	d, err = e.svc.Dashboard(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, want, d)
	require.Equal(t, []kafka.EventType{kafka.EventLoanReturned}, e.pub.types())
}

func TestService_BorrowingTrends(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("default range", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.repo.EXPECT().BorrowingTrends(gomock.Any(), model.DateRange{From: now.AddDate(0, 0, -30), To: now}).
			Return([]model.TrendPoint{}, nil)
		_, err := e.svc.BorrowingTrends(ctx, model.DateRange{})
		require.NoError(t, err)
	})

	t.Run("inverted range", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		_, err := e.svc.BorrowingTrends(ctx, model.DateRange{From: now, To: now.Add(-time.Hour)})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_PopularBooks_ClampsLimit(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	e.repo.EXPECT().PopularBooks(gomock.Any(), gomock.Any(), 100).Return(nil, nil)
	_, err := e.svc.PopularBooks(context.Background(), model.DateRange{}, 1000)
	require.NoError(t, err)
}
