package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/circulation"
	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/metrics"
)

// PayFine records a payment against a pending fine. A nil amount settles the
// remaining balance; the fine turns paid once nothing is owed.
func (s *Service) PayFine(ctx context.Context, id int64, req model.PayFineRequest) (model.PayFineResponse, error) {
	now := s.now()
	var (
		fine    model.Fine
		payment model.Payment
	)
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetFineForUpdate(ctx, id)
		if err != nil {
			return err
		}
		amount, err := circulation.Payment(cur, req.Amount)
		if err != nil {
			return err
		}
		if fine, err = s.repo.ApplyFinePayment(ctx, id, amount, now); err != nil {
			return err
		}
		payment, err = s.repo.CreatePayment(ctx, model.Payment{
			MemberID:  cur.MemberID,
			LoanID:    cur.LoanID,
			FineID:    &cur.ID,
			Amount:    amount,
			Type:      model.PaymentFine,
			Reference: req.Reference,
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return model.PayFineResponse{}, err
	}

	metrics.PaymentRecorded()
	s.log.Info("fine payment", zap.Int64("fineID", id), zap.Int64("paymentID", payment.ID), zap.Stringer("amount", payment.Amount))
	s.publish(kafka.EventCirculation{
		Type:     kafka.EventFinePaid,
		MemberID: fine.MemberID,
		LoanID:   fine.LoanID,
		FineID:   &fine.ID,
		Amount:   payment.Amount,
	})
	return model.PayFineResponse{
		PaymentID: payment.ID,
		Status:    fine.Status,
		Balance:   fine.Balance(),
	}, nil
}

// AddManualFine lets staff charge a member directly, optionally against one of their loans.
func (s *Service) AddManualFine(ctx context.Context, req model.AddFineRequest) (model.Fine, error) {
	if req.Amount == nil {
		return model.Fine{}, errors.Wrap(errs.ErrValidation, "amount is required")
	}
	if req.Amount.IsNegative() {
		return model.Fine{}, errors.Wrap(errs.ErrValidation, "amount must not be negative")
	}
	rate, maxFine := s.policy.FineRate, s.policy.MaxFine
	if req.Rate != nil {
		rate = *req.Rate
	}
	if req.MaxFine != nil {
		maxFine = *req.MaxFine
	}
	if rate.IsNegative() || maxFine.IsNegative() {
		return model.Fine{}, errors.Wrap(errs.ErrValidation, "rate and maxFine must not be negative")
	}

	var fine model.Fine
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetMember(ctx, req.MemberID); err != nil {
			return err
		}
		if req.LoanID != nil {
			loan, err := s.repo.GetLoan(ctx, *req.LoanID)
			if err != nil {
				return err
			}
			if loan.MemberID != req.MemberID {
				return errors.Wrapf(errs.ErrValidation, "loan %d belongs to another member", loan.ID)
			}
		}
		var err error
		fine, err = s.repo.CreateFine(ctx, model.NewFine{
			LoanID:    req.LoanID,
			MemberID:  req.MemberID,
			Amount:    req.Amount.Round(2),
			Rate:      rate,
			GraceDays: s.policy.GraceDays,
			MaxFine:   maxFine,
			Origin:    model.FineManual,
		})
		return err
	})
	if err != nil {
		return model.Fine{}, err
	}

	f, _ := fine.Amount.Float64()
	metrics.FineAssessed(string(model.FineManual), f)
	s.publish(kafka.EventCirculation{
		Type:     kafka.EventFineAssessed,
		MemberID: fine.MemberID,
		LoanID:   fine.LoanID,
		FineID:   &fine.ID,
		Amount:   fine.Amount,
	})
	return fine, nil
}

func (s *Service) GetFine(ctx context.Context, id int64) (model.FineDetails, error) {
	return s.repo.GetFine(ctx, id)
}

func (s *Service) MemberFines(ctx context.Context, memberID int64) ([]model.FineDetails, error) {
	if _, err := s.repo.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListFines(ctx, model.FineFilter{MemberID: memberID})
}

func (s *Service) PendingFines(ctx context.Context) ([]model.FineDetails, error) {
	return s.repo.ListFines(ctx, model.FineFilter{Status: model.FinePending})
}

func (s *Service) FineSummary(ctx context.Context, memberID int64) (model.FineSummary, error) {
	if _, err := s.repo.GetMember(ctx, memberID); err != nil {
		return model.FineSummary{}, err
	}
	return s.repo.FineSummary(ctx, memberID)
}

// UpdateFine corrects the terms of a pending fine. Status only changes through payment.
func (s *Service) UpdateFine(ctx context.Context, id int64, req model.UpdateFineRequest) (model.Fine, error) {
	var fine model.Fine
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetFineForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur.Status != model.FinePending {
			return errors.Wrapf(errs.ErrInvalidState, "fine %d is %s", id, cur.Status)
		}
		for _, v := range []*decimal.Decimal{req.Amount, req.Rate, req.MaxFine} {
			if v != nil && v.IsNegative() {
				return errors.Wrap(errs.ErrValidation, "amounts must not be negative")
			}
		}
		if req.Amount != nil {
			cur.Amount = req.Amount.Round(2)
		}
		if req.Rate != nil {
			cur.Rate = *req.Rate
		}
		if req.MaxFine != nil {
			cur.MaxFine = *req.MaxFine
		}
		if cur.Amount.LessThan(cur.PaidAmount) {
			return errors.Wrapf(errs.ErrValidation, "amount %s is below what was already paid", cur.Amount)
		}
		fine, err = s.repo.UpdateFine(ctx, cur)
		return err
	})
	if err != nil {
		return model.Fine{}, err
	}
	return fine, nil
}

// DeleteFine drops a pending fine nobody has paid towards. Paid fines and payments stay.
func (s *Service) DeleteFine(ctx context.Context, id int64) error {
	return s.repo.InTx(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetFineForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur.Status != model.FinePending {
			return errors.Wrapf(errs.ErrInvalidState, "fine %d is %s", id, cur.Status)
		}
		n, err := s.repo.CountPayments(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errors.Wrapf(errs.ErrConflict, "fine %d has %d payments", id, n)
		}
		return s.repo.DeleteFine(ctx, id)
	})
}
