package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/circulation"
	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/metrics"
)

// IssueLoan lends a book to an approved member. The book row stays locked
// until the loan is written, so concurrent issues of one book serialize and
// all but the first see it checked out.
func (s *Service) IssueLoan(ctx context.Context, req model.IssueLoanRequest) (model.Loan, error) {
	now := s.now()
	var requested *time.Time
	if req.DueDate != nil && !req.DueDate.IsZero() {
		requested = &req.DueDate.Time
	}
	dueDate, err := s.policy.DueDate(now, requested)
	if err != nil {
		return model.Loan{}, err
	}

	var loan model.Loan
	err = s.repo.InTx(ctx, func(ctx context.Context) error {
		book, err := s.repo.GetBookForUpdate(ctx, req.BookID)
		if err != nil {
			return err
		}
		if err := circulation.CheckAvailable(book); err != nil {
			return err
		}
		member, err := s.repo.GetMember(ctx, req.MemberID)
		if err != nil {
			return err
		}
		if err := circulation.CheckMember(member); err != nil {
			return err
		}

		loan, err = s.repo.CreateLoan(ctx, model.Loan{
			MemberID:   member.ID,
			BookID:     book.ID,
			BorrowDate: now,
			DueDate:    dueDate,
			Status:     model.LoanActive,
		})
		if err != nil {
			return err
		}
		return s.repo.SetBookAvailability(ctx, book.ID, model.AvailabilityCheckedOut)
	})
	if err != nil {
		return model.Loan{}, err
	}

	metrics.LoanIssued()
	s.log.Info("loan issued", zap.Int64("loanID", loan.ID), zap.Int64("bookID", loan.BookID), zap.Int64("memberID", loan.MemberID))
	s.publish(kafka.EventCirculation{
		Type:     kafka.EventLoanIssued,
		MemberID: loan.MemberID,
		BookID:   &loan.BookID,
		LoanID:   &loan.ID,
	})
	return loan, nil
}

// ReturnLoan closes an active loan, frees the book and assesses the overdue
// fine in the same transaction. A second return fails before any fine is written.
func (s *Service) ReturnLoan(ctx context.Context, id int64) (model.ReturnResult, error) {
	now := s.now()
	var (
		loan model.Loan
		res  model.ReturnResult
	)
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		var err error
		loan, err = s.repo.GetLoanForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if loan.Status != model.LoanActive {
			return errors.Wrapf(errs.ErrInvalidState, "loan %d already returned", id)
		}
		if loan, err = s.repo.ReturnLoan(ctx, id, now); err != nil {
			return err
		}
		if err := s.repo.SetBookAvailability(ctx, loan.BookID, model.AvailabilityAvailable); err != nil {
			return err
		}

		res = s.policy.Assess(loan.DueDate, now)
		if !res.FineAmount.IsPositive() {
			return nil
		}
		fine, err := s.repo.CreateFine(ctx, model.NewFine{
			LoanID:    &loan.ID,
			MemberID:  loan.MemberID,
			Amount:    res.FineAmount,
			Rate:      s.policy.FineRate,
			GraceDays: s.policy.GraceDays,
			MaxFine:   s.policy.MaxFine,
			Origin:    model.FineOverdue,
		})
		if err != nil {
			return err
		}
		res.FineID = &fine.ID
		return nil
	})
	if err != nil {
		return model.ReturnResult{}, err
	}

	metrics.LoanReturned(res.IsOverdue)
	s.log.Info("loan returned", zap.Int64("loanID", id), zap.Bool("overdue", res.IsOverdue), zap.Stringer("fine", res.FineAmount))
	s.publish(kafka.EventCirculation{
		Type:     kafka.EventLoanReturned,
		MemberID: loan.MemberID,
		BookID:   &loan.BookID,
		LoanID:   &loan.ID,
	})
	if res.FineID != nil {
		f, _ := res.FineAmount.Float64()
		metrics.FineAssessed(string(model.FineOverdue), f)
		s.publish(kafka.EventCirculation{
			Type:     kafka.EventFineAssessed,
			MemberID: loan.MemberID,
			LoanID:   &loan.ID,
			FineID:   res.FineID,
			Amount:   res.FineAmount,
		})
	}
	return res, nil
}

// RenewLoan pushes the due date of an active, not overdue loan by the renewal period.
func (s *Service) RenewLoan(ctx context.Context, id int64) (model.Loan, error) {
	now := s.now()
	var loan model.Loan
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetLoanForUpdate(ctx, id)
		if err != nil {
			return err
		}
		book, err := s.repo.GetBook(ctx, cur.BookID)
		if err != nil {
			return err
		}
		dueDate, err := s.policy.Renew(cur, book, now)
		if err != nil {
			return err
		}
		loan, err = s.repo.RenewLoan(ctx, id, dueDate)
		return err
	})
	if err != nil {
		return model.Loan{}, err
	}

	metrics.LoanRenewed()
	s.publish(kafka.EventCirculation{
		Type:     kafka.EventLoanRenewed,
		MemberID: loan.MemberID,
		BookID:   &loan.BookID,
		LoanID:   &loan.ID,
	})
	return loan, nil
}

// ComputeOverdueStatus reports whether loan is overdue at now and by how many days.
func (s *Service) ComputeOverdueStatus(loan model.Loan, now time.Time) (bool, int) {
	if loan.Status != model.LoanActive {
		return false, 0
	}
	return circulation.ComputeOverdueStatus(loan.DueDate, now)
}

func (s *Service) GetLoan(ctx context.Context, id int64) (model.LoanDetails, error) {
	loan, err := s.repo.GetLoan(ctx, id)
	if err != nil {
		return model.LoanDetails{}, err
	}
	loan.IsOverdue, loan.DaysOverdue = s.ComputeOverdueStatus(loan.Loan, s.now())
	return loan, nil
}

func (s *Service) ListLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error) {
	if f.Status != "" && !f.Status.Valid() {
		return model.ListLoans{}, errors.Wrapf(errs.ErrValidation, "unknown loan status %q", f.Status)
	}
	return s.listLoans(ctx, f)
}

// CurrentLoans lists the active loans of a member with their overdue state.
func (s *Service) CurrentLoans(ctx context.Context, memberID int64) ([]model.LoanDetails, error) {
	if _, err := s.repo.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	list, err := s.listLoans(ctx, model.LoanFilter{MemberID: memberID, Status: model.LoanActive})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (s *Service) listLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error) {
	list, err := s.repo.ListLoans(ctx, f)
	if err != nil {
		return model.ListLoans{}, err
	}
	now := s.now()
	for i := range list.Items {
		list.Items[i].IsOverdue, list.Items[i].DaysOverdue = s.ComputeOverdueStatus(list.Items[i].Loan, now)
	}
	return list, nil
}
