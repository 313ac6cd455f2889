package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

func TestService_IssueLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok with default due date", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		gomock.InOrder(
			e.repo.EXPECT().GetBookForUpdate(gomock.Any(), int64(2)).Return(availableBook(2), nil),
			e.repo.EXPECT().GetMember(gomock.Any(), int64(1)).Return(approvedMember(1), nil),
			e.repo.EXPECT().CreateLoan(gomock.Any(), model.Loan{
				MemberID:   1,
				BookID:     2,
				BorrowDate: now,
				DueDate:    now.Add(14 * day),
				Status:     model.LoanActive,
			}).Return(model.Loan{ID: 10, MemberID: 1, BookID: 2, BorrowDate: now, DueDate: now.Add(14 * day), Status: model.LoanActive}, nil),
			e.repo.EXPECT().SetBookAvailability(gomock.Any(), int64(2), model.AvailabilityCheckedOut).Return(nil),
		)

		loan, err := e.svc.IssueLoan(ctx, model.IssueLoanRequest{MemberID: 1, BookID: 2})
		require.NoError(t, err)
		require.Equal(t, int64(10), loan.ID)
		require.Equal(t, now.Add(14*day), loan.DueDate)
		require.Equal(t, []kafka.EventType{kafka.EventLoanIssued}, e.pub.types())
	})

	t.Run("explicit due date", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		due := now.AddDate(0, 0, 3)
		e.repo.EXPECT().GetBookForUpdate(gomock.Any(), int64(2)).Return(availableBook(2), nil)
		e.repo.EXPECT().GetMember(gomock.Any(), int64(1)).Return(approvedMember(1), nil)
		e.repo.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l model.Loan) (model.Loan, error) {
				require.Equal(t, due, l.DueDate)
				l.ID = 11
				return l, nil
			})
		e.repo.EXPECT().SetBookAvailability(gomock.Any(), int64(2), model.AvailabilityCheckedOut).Return(nil)

		_, err := e.svc.IssueLoan(ctx, model.IssueLoanRequest{MemberID: 1, BookID: 2, DueDate: &model.Date{Time: due}})
		require.NoError(t, err)
	})

	t.Run("due date is today", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		var req model.IssueLoanRequest
		require.NoError(t, json.Unmarshal([]byte(`{"memberID":1,"bookID":2,"dueDate":"2024-03-15"}`), &req))
		endOfDay := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)

		e.repo.EXPECT().GetBookForUpdate(gomock.Any(), int64(2)).Return(availableBook(2), nil)
		e.repo.EXPECT().GetMember(gomock.Any(), int64(1)).Return(approvedMember(1), nil)
		e.repo.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l model.Loan) (model.Loan, error) {
				require.Equal(t, endOfDay, l.DueDate)
				l.ID = 12
				return l, nil
			})
		e.repo.EXPECT().SetBookAvailability(gomock.Any(), int64(2), model.AvailabilityCheckedOut).Return(nil)

		_, err := e.svc.IssueLoan(ctx, req)
		require.NoError(t, err)
	})

	t.Run("due date yesterday", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		var req model.IssueLoanRequest
		require.NoError(t, json.Unmarshal([]byte(`{"memberID":1,"bookID":2,"dueDate":"2024-03-14"}`), &req))
		_, err := e.svc.IssueLoan(ctx, req)
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("due date in the past", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		_, err := e.svc.IssueLoan(ctx, model.IssueLoanRequest{MemberID: 1, BookID: 2, DueDate: &model.Date{Time: now.Add(-time.Hour)}})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("book not found", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.repo.EXPECT().GetBookForUpdate(gomock.Any(), int64(2)).Return(model.Book{}, errs.ErrNotFound)
		_, err := e.svc.IssueLoan(ctx, model.IssueLoanRequest{MemberID: 1, BookID: 2})
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.Empty(t, e.pub.types())
	})

	t.Run("book checked out", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		book := availableBook(2)
		book.AvailabilityStatus = model.AvailabilityCheckedOut
		e.repo.EXPECT().GetBookForUpdate(gomock.Any(), int64(2)).Return(book, nil)
		_, err := e.svc.IssueLoan(ctx, model.IssueLoanRequest{MemberID: 1, BookID: 2})
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("member pending", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		member := approvedMember(1)
		member.Status = model.MemberPending
		e.repo.EXPECT().GetBookForUpdate(gomock.Any(), int64(2)).Return(availableBook(2), nil)
		e.repo.EXPECT().GetMember(gomock.Any(), int64(1)).Return(member, nil)
		_, err := e.svc.IssueLoan(ctx, model.IssueLoanRequest{MemberID: 1, BookID: 2})
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("lost race on the active loan index", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.repo.EXPECT().GetBookForUpdate(gomock.Any(), int64(2)).Return(availableBook(2), nil)
		e.repo.EXPECT().GetMember(gomock.Any(), int64(1)).Return(approvedMember(1), nil)
		e.repo.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).Return(model.Loan{}, errs.ErrConflict)
		_, err := e.svc.IssueLoan(ctx, model.IssueLoanRequest{MemberID: 1, BookID: 2})
		require.ErrorIs(t, err, errs.ErrConflict)
		require.Empty(t, e.pub.types())
	})
}

func activeLoan(due time.Time) model.Loan {
	return model.Loan{ID: 10, MemberID: 1, BookID: 2, BorrowDate: due.Add(-14 * day), DueDate: due, Status: model.LoanActive}
}

func returned(l model.Loan, at time.Time) model.Loan {
	l.Status = model.LoanReturned
	l.ReturnDate = &at
	return l
}

func TestService_ReturnLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("on time", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		loan := activeLoan(now.Add(day))
		e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(loan, nil)
		e.repo.EXPECT().ReturnLoan(gomock.Any(), int64(10), now).Return(returned(loan, now), nil)
		e.repo.EXPECT().SetBookAvailability(gomock.Any(), int64(2), model.AvailabilityAvailable).Return(nil)

		res, err := e.svc.ReturnLoan(ctx, 10)
		require.NoError(t, err)
		require.False(t, res.IsOverdue)
		require.True(t, res.FineAmount.IsZero())
		require.Nil(t, res.FineID)
		require.Equal(t, []kafka.EventType{kafka.EventLoanReturned}, e.pub.types())
	})

	t.Run("ten days late", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		loan := activeLoan(now.Add(-10 * day))
		e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(loan, nil)
		e.repo.EXPECT().ReturnLoan(gomock.Any(), int64(10), now).Return(returned(loan, now), nil)
		e.repo.EXPECT().SetBookAvailability(gomock.Any(), int64(2), model.AvailabilityAvailable).Return(nil)
		e.repo.EXPECT().CreateFine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f model.NewFine) (model.Fine, error) {
				require.Equal(t, int64(10), *f.LoanID)
				require.Equal(t, int64(1), f.MemberID)
				require.True(t, dec("5.00").Equal(f.Amount), f.Amount.String())
				require.True(t, dec("0.50").Equal(f.Rate))
				require.True(t, dec("50.00").Equal(f.MaxFine))
				require.Equal(t, model.FineOverdue, f.Origin)
				return model.Fine{ID: 33, LoanID: f.LoanID, MemberID: 1, Amount: f.Amount, Status: model.FinePending}, nil
			})

		res, err := e.svc.ReturnLoan(ctx, 10)
		require.NoError(t, err)
		require.True(t, res.IsOverdue)
		require.Equal(t, 10, res.DaysOverdue)
		require.True(t, dec("5.00").Equal(res.FineAmount))
		require.Equal(t, int64(33), *res.FineID)
		require.Equal(t, []kafka.EventType{kafka.EventLoanReturned, kafka.EventFineAssessed}, e.pub.types())
	})

	t.Run("two hundred days late is capped", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		loan := activeLoan(now.Add(-200 * day))
		e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(loan, nil)
		e.repo.EXPECT().ReturnLoan(gomock.Any(), int64(10), now).Return(returned(loan, now), nil)
		e.repo.EXPECT().SetBookAvailability(gomock.Any(), int64(2), model.AvailabilityAvailable).Return(nil)
		e.repo.EXPECT().CreateFine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f model.NewFine) (model.Fine, error) {
				return model.Fine{ID: 34, Amount: f.Amount}, nil
			})

		res, err := e.svc.ReturnLoan(ctx, 10)
		require.NoError(t, err)
		require.True(t, dec("50.00").Equal(res.FineAmount))
	})

	t.Run("already returned", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		loan := returned(activeLoan(now.Add(-10*day)), now.Add(-day))
		e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(loan, nil)

		_, err := e.svc.ReturnLoan(ctx, 10)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		require.Empty(t, e.pub.types())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(model.Loan{}, errs.ErrNotFound)
		_, err := e.svc.ReturnLoan(ctx, 10)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_RenewLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		loan := activeLoan(now.Add(2 * day))
		book := availableBook(2)
		book.AvailabilityStatus = model.AvailabilityCheckedOut
		e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(loan, nil)
		e.repo.EXPECT().GetBook(gomock.Any(), int64(2)).Return(book, nil)
		renewed := loan
		renewed.DueDate = loan.DueDate.Add(14 * day)
		renewed.RenewalCount = 1
		e.repo.EXPECT().RenewLoan(gomock.Any(), int64(10), loan.DueDate.Add(14*day)).Return(renewed, nil)

		got, err := e.svc.RenewLoan(ctx, 10)
		require.NoError(t, err)
		require.Equal(t, 14*day, got.DueDate.Sub(loan.DueDate))
		require.Equal(t, 1, got.RenewalCount)
		require.Equal(t, []kafka.EventType{kafka.EventLoanRenewed}, e.pub.types())
	})

	t.Run("overdue", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(activeLoan(now.Add(-time.Minute)), nil)
		e.repo.EXPECT().GetBook(gomock.Any(), int64(2)).Return(availableBook(2), nil)

		_, err := e.svc.RenewLoan(ctx, 10)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		require.Empty(t, e.pub.types())
	})

	t.Run("on hold", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		book := availableBook(2)
		book.AvailabilityStatus = model.AvailabilityOnHold
		e.repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(10)).Return(activeLoan(now.Add(day)), nil)
		e.repo.EXPECT().GetBook(gomock.Any(), int64(2)).Return(book, nil)

		_, err := e.svc.RenewLoan(ctx, 10)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestService_CurrentLoans(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	e.repo.EXPECT().GetMember(gomock.Any(), int64(1)).Return(approvedMember(1), nil)
	e.repo.EXPECT().ListLoans(gomock.Any(), model.LoanFilter{MemberID: 1, Status: model.LoanActive}).
		Return(model.ListLoans{Items: []model.LoanDetails{
			{Loan: activeLoan(now.Add(day))},
			{Loan: activeLoan(now.Add(-3*day - time.Hour))},
		}}, nil)

	loans, err := e.svc.CurrentLoans(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	require.False(t, loans[0].IsOverdue)
	require.Equal(t, 0, loans[0].DaysOverdue)
	require.True(t, loans[1].IsOverdue)
	require.Equal(t, 4, loans[1].DaysOverdue)
}
