package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

const (
	defaultReportDays  = 30
	defaultReportLimit = 10
	maxReportLimit     = 100
)

// reportRange fills an open range with the last defaultReportDays days.
func (s *Service) reportRange(rng model.DateRange) (model.DateRange, error) {
	if rng.To.IsZero() {
		rng.To = s.now()
	}
	if rng.From.IsZero() {
		rng.From = rng.To.AddDate(0, 0, -defaultReportDays)
	}
	if !rng.From.Before(rng.To) {
		return model.DateRange{}, errors.Wrap(errs.ErrValidation, "report range is empty")
	}
	return rng, nil
}

func reportLimit(limit int) int {
	if limit <= 0 {
		return defaultReportLimit
	}
	if limit > maxReportLimit {
		return maxReportLimit
	}
	return limit
}

// Dashboard aggregates the desk counters for the last days days, served from cache when fresh.
func (s *Service) Dashboard(ctx context.Context, days int) (model.Dashboard, error) {
	if days <= 0 {
		days = defaultReportDays
	}
	if s.reports != nil {
		d, ok, err := s.reports.GetDashboard(ctx, days)
		if err != nil {
			s.log.Warn("dashboard cache", zap.Error(err))
		} else if ok {
			return d, nil
		}
	}

	now := s.now()
	since := now.AddDate(0, 0, -days)
	d := model.Dashboard{GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.TotalCheckouts, err = s.repo.CountCheckouts(gctx, model.DateRange{From: since, To: now})
		return err
	})
	g.Go(func() (err error) {
		d.ActiveLoans, err = s.repo.CountActiveLoans(gctx)
		return err
	})
	g.Go(func() (err error) {
		d.ActiveMembers, err = s.repo.CountMembersByStatus(gctx, model.MemberApproved)
		return err
	})
	g.Go(func() (err error) {
		d.PendingMembers, err = s.repo.CountMembersByStatus(gctx, model.MemberPending)
		return err
	})
	g.Go(func() (err error) {
		d.OverdueItems, err = s.repo.CountOverdue(gctx, now)
		return err
	})
	g.Go(func() (err error) {
		d.NewAcquisitions, err = s.repo.CountNewBooks(gctx, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	if s.reports != nil {
		if err := s.reports.SetDashboard(ctx, days, d); err != nil {
			s.log.Warn("dashboard cache", zap.Error(err))
		}
	}
	return d, nil
}

func (s *Service) BorrowingTrends(ctx context.Context, rng model.DateRange) ([]model.TrendPoint, error) {
	rng, err := s.reportRange(rng)
	if err != nil {
		return nil, err
	}
	return s.repo.BorrowingTrends(ctx, rng)
}

func (s *Service) PopularBooks(ctx context.Context, rng model.DateRange, limit int) ([]model.PopularBook, error) {
	rng, err := s.reportRange(rng)
	if err != nil {
		return nil, err
	}
	return s.repo.PopularBooks(ctx, rng, reportLimit(limit))
}

func (s *Service) ActiveMembers(ctx context.Context, rng model.DateRange, limit int) ([]model.ActiveMember, error) {
	rng, err := s.reportRange(rng)
	if err != nil {
		return nil, err
	}
	return s.repo.ActiveMembers(ctx, rng, reportLimit(limit))
}

// FinesReport totals what is still owed on pending fines.
func (s *Service) FinesReport(ctx context.Context) (model.FinesReport, error) {
	fines, err := s.repo.ListFines(ctx, model.FineFilter{Status: model.FinePending})
	if err != nil {
		return model.FinesReport{}, err
	}
	total := decimal.Zero
	for _, f := range fines {
		total = total.Add(f.Balance())
	}
	return model.FinesReport{
		PendingCount: len(fines),
		PendingTotal: total,
		Items:        fines,
	}, nil
}

func (s *Service) ListEvents(ctx context.Context, rng model.DateRange, limit int) ([]model.CirculationEvent, error) {
	rng, err := s.reportRange(rng)
	if err != nil {
		return nil, err
	}
	return s.repo.ListEvents(ctx, rng, reportLimit(limit))
}

// RecordEvent stores a circulation event consumed from the broker.
func (s *Service) RecordEvent(ctx context.Context, e model.CirculationEvent) error {
	if e.ID == "" {
		return errors.Wrap(errs.ErrValidation, "event without id")
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = s.now()
	}
	return s.repo.RecordEvent(ctx, e)
}
