package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/pkg/metrics"
)

// Sweep expires lapsed memberships and refreshes the overdue loans gauge.
func (s *Service) Sweep(ctx context.Context) (expired int64, overdue int, err error) {
	now := s.now()
	expired, err = s.repo.ExpireMembers(ctx, now)
	if err != nil {
		return 0, 0, err
	}
	overdue, err = s.repo.CountOverdue(ctx, now)
	if err != nil {
		return expired, 0, err
	}
	metrics.SetOverdueLoans(overdue)

	if expired > 0 && s.reports != nil {
		if err := s.reports.InvalidateDashboard(ctx); err != nil {
			s.log.Warn("invalidate dashboard", zap.Error(err))
		}
	}
	s.log.Info("sweep", zap.Int64("expired", expired), zap.Int("overdue", overdue))
	return expired, overdue, nil
}
