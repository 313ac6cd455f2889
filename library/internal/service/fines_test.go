package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

func pendingFine(amount, paid string) model.Fine {
	loanID := int64(10)
	return model.Fine{
		ID:         33,
		LoanID:     &loanID,
		MemberID:   1,
		Amount:     dec(amount),
		PaidAmount: dec(paid),
		Origin:     model.FineOverdue,
		Status:     model.FinePending,
	}
}

func TestService_PayFine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type want struct {
		charged string
		status  model.FineStatus
		balance string
		err     error
	}
	tests := []struct {
		name   string
		fine   model.Fine
		amount *decimal.Decimal
		want   want
	}{
		{
			name: "full balance by default",
			fine: pendingFine("5.00", "0"),
			want: want{charged: "5.00", status: model.FinePaid, balance: "0"},
		},
		{
			name:   "partial",
			fine:   pendingFine("5.00", "1.00"),
			amount: decimalPtr("2.50"),
			want:   want{charged: "2.50", status: model.FinePending, balance: "1.50"},
		},
		{
			name:   "settles the rest",
			fine:   pendingFine("5.00", "3.00"),
			amount: decimalPtr("2.00"),
			want:   want{charged: "2.00", status: model.FinePaid, balance: "0"},
		},
		{
			name:   "overpayment",
			fine:   pendingFine("5.00", "0"),
			amount: decimalPtr("5.01"),
			want:   want{err: errs.ErrValidation},
		},
		{
			name:   "zero amount",
			fine:   pendingFine("5.00", "0"),
			amount: decimalPtr("0"),
			want:   want{err: errs.ErrValidation},
		},
		{
			name: "already paid",
			fine: func() model.Fine {
				f := pendingFine("5.00", "5.00")
				f.Status = model.FinePaid
				return f
			}(),
			want: want{err: errs.ErrInvalidState},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)
			e.repo.EXPECT().GetFineForUpdate(gomock.Any(), tt.fine.ID).Return(tt.fine, nil)
			if tt.want.err == nil {
				e.repo.EXPECT().ApplyFinePayment(gomock.Any(), tt.fine.ID, gomock.Any(), now).
					DoAndReturn(func(_ context.Context, _ int64, amount decimal.Decimal, _ time.Time) (model.Fine, error) {
						require.True(t, dec(tt.want.charged).Equal(amount), amount.String())
						f := tt.fine
						f.PaidAmount = f.PaidAmount.Add(amount)
						if f.PaidAmount.Equal(f.Amount) {
							f.Status = model.FinePaid
							f.PaidAt = &now
						}
						return f, nil
					})
				e.repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p model.Payment) (model.Payment, error) {
						require.Equal(t, model.PaymentFine, p.Type)
						require.Equal(t, tt.fine.ID, *p.FineID)
						require.Equal(t, tt.fine.MemberID, p.MemberID)
						p.ID = 77
						return p, nil
					})
			}

			res, err := e.svc.PayFine(ctx, tt.fine.ID, model.PayFineRequest{Amount: tt.amount})
			if tt.want.err != nil {
				require.ErrorIs(t, err, tt.want.err)
				require.Empty(t, e.pub.types())
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(77), res.PaymentID)
			require.Equal(t, tt.want.status, res.Status)
			require.True(t, dec(tt.want.balance).Equal(res.Balance), res.Balance.String())
			require.Equal(t, []kafka.EventType{kafka.EventFinePaid}, e.pub.types())
		})
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestService_AddManualFine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("defaults from policy", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.repo.EXPECT().GetMember(gomock.Any(), int64(1)).Return(approvedMember(1), nil)
		e.repo.EXPECT().CreateFine(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f model.NewFine) (model.Fine, error) {
				require.Nil(t, f.LoanID)
				require.Equal(t, model.FineManual, f.Origin)
				require.True(t, dec("0.50").Equal(f.Rate))
				require.True(t, dec("50.00").Equal(f.MaxFine))
				require.True(t, dec("12.35").Equal(f.Amount), f.Amount.String())
				return model.Fine{ID: 5, MemberID: f.MemberID, Amount: f.Amount, Status: model.FinePending}, nil
			})

		fine, err := e.svc.AddManualFine(ctx, model.AddFineRequest{MemberID: 1, Amount: decimalPtr("12.345")})
		require.NoError(t, err)
		require.Equal(t, int64(5), fine.ID)
		require.Equal(t, []kafka.EventType{kafka.EventFineAssessed}, e.pub.types())
	})

	t.Run("missing amount", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		_, err := e.svc.AddManualFine(ctx, model.AddFineRequest{MemberID: 1})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("negative amount", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		_, err := e.svc.AddManualFine(ctx, model.AddFineRequest{MemberID: 1, Amount: decimalPtr("-1")})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("loan of another member", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		loanID := int64(10)
		e.repo.EXPECT().GetMember(gomock.Any(), int64(1)).Return(approvedMember(1), nil)
		e.repo.EXPECT().GetLoan(gomock.Any(), loanID).
			Return(model.LoanDetails{Loan: model.Loan{ID: loanID, MemberID: 2}}, nil)

		_, err := e.svc.AddManualFine(ctx, model.AddFineRequest{MemberID: 1, LoanID: &loanID, Amount: decimalPtr("3")})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_DeleteFine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.repo.EXPECT().GetFineForUpdate(gomock.Any(), int64(33)).Return(pendingFine("5.00", "0"), nil)
		e.repo.EXPECT().CountPayments(gomock.Any(), int64(33)).Return(0, nil)
		e.repo.EXPECT().DeleteFine(gomock.Any(), int64(33)).Return(nil)
		require.NoError(t, e.svc.DeleteFine(ctx, 33))
	})

	t.Run("has payments", func(t *testing.T) {
		t.Parallel()
		e := newEnv(t)
		e.repo.EXPECT().GetFineForUpdate(gomock.Any(), int64(33)).Return(pendingFine("5.00", "1.00"), nil)
		e.repo.EXPECT().CountPayments(gomock.Any(), int64(33)).Return(1, nil)
		require.ErrorIs(t, e.svc.DeleteFine(ctx, 33), errs.ErrConflict)
	})
}

func TestService_FinesReport(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	e.repo.EXPECT().ListFines(gomock.Any(), model.FineFilter{Status: model.FinePending}).
		Return([]model.FineDetails{
			{Fine: pendingFine("5.00", "1.00")},
			{Fine: pendingFine("2.50", "0")},
		}, nil)

	rep, err := e.svc.FinesReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, rep.PendingCount)
	require.True(t, dec("6.50").Equal(rep.PendingTotal), rep.PendingTotal.String())
}
