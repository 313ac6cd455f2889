package circulation_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/circulation"
	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var due = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeOverdueStatus(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		now         time.Time
		wantOverdue bool
		wantDays    int
	}{
		{name: "before due", now: due.Add(-time.Hour)},
		{name: "exactly due", now: due},
		{name: "one second late", now: due.Add(time.Second), wantOverdue: true, wantDays: 1},
		{name: "exactly one day", now: due.Add(24 * time.Hour), wantOverdue: true, wantDays: 1},
		{name: "ten days", now: due.AddDate(0, 0, 10), wantOverdue: true, wantDays: 10},
		{name: "ten days and a minute", now: due.AddDate(0, 0, 10).Add(time.Minute), wantOverdue: true, wantDays: 11},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			overdue, days := circulation.ComputeOverdueStatus(due, tt.now)
			require.Equal(t, tt.wantOverdue, overdue)
			require.Equal(t, tt.wantDays, days)
		})
	}
}

func TestFineAmount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		days  int
		grace int
		want  decimal.Decimal
	}{
		{name: "ten days", days: 10, want: dec("5.00")},
		{name: "capped", days: 200, want: dec("50.00")},
		{name: "exactly at cap", days: 100, want: dec("50.00")},
		{name: "inside grace", days: 2, grace: 3, want: decimal.Zero},
		{name: "past grace", days: 5, grace: 3, want: dec("1.00")},
		{name: "not overdue", days: 0, want: decimal.Zero},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := circulation.FineAmount(tt.days, tt.grace, dec("0.50"), dec("50.00"))
			require.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestPolicy_Assess(t *testing.T) {
	t.Parallel()
	p := circulation.DefaultPolicy()

	res := p.Assess(due, due.Add(-time.Minute))
	require.False(t, res.IsOverdue)
	require.True(t, res.FineAmount.IsZero())

	res = p.Assess(due, due.AddDate(0, 0, 10))
	require.True(t, res.IsOverdue)
	require.Equal(t, 10, res.DaysOverdue)
	require.True(t, dec("5").Equal(res.FineAmount))

	res = p.Assess(due, due.AddDate(0, 0, 200))
	require.True(t, dec("50").Equal(res.FineAmount))
}

func TestPolicy_DueDate(t *testing.T) {
	t.Parallel()
	p := circulation.DefaultPolicy()
	now := due

	got, err := p.DueDate(now, nil)
	require.NoError(t, err)
	require.Equal(t, 14*24*time.Hour, got.Sub(now))

	requested := now.AddDate(0, 0, 7)
	got, err = p.DueDate(now, &requested)
	require.NoError(t, err)
	require.Equal(t, requested, got)

	past := now.Add(-time.Hour)
	_, err = p.DueDate(now, &past)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestCheckBorrow(t *testing.T) {
	t.Parallel()
	approved := model.Member{ID: 1, Role: model.RoleMember, Status: model.MemberApproved}
	available := model.Book{ID: 2, AvailabilityStatus: model.AvailabilityAvailable}

	tests := []struct {
		name    string
		member  model.Member
		book    model.Book
		wantErr error
	}{
		{name: "ok", member: approved, book: available},
		{name: "pending member", member: model.Member{ID: 1, Role: model.RoleMember, Status: model.MemberPending}, book: available, wantErr: errs.ErrInvalidState},
		{name: "suspended member", member: model.Member{ID: 1, Role: model.RoleMember, Status: model.MemberSuspended}, book: available, wantErr: errs.ErrInvalidState},
		{name: "librarian", member: model.Member{ID: 1, Role: model.RoleLibrarian, Status: model.MemberApproved}, book: available, wantErr: errs.ErrInvalidState},
		{name: "checked out", member: approved, book: model.Book{ID: 2, AvailabilityStatus: model.AvailabilityCheckedOut}, wantErr: errs.ErrConflict},
		{name: "on hold", member: approved, book: model.Book{ID: 2, AvailabilityStatus: model.AvailabilityOnHold}, wantErr: errs.ErrConflict},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := circulation.CheckBorrow(tt.member, tt.book)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPolicy_Renew(t *testing.T) {
	t.Parallel()
	active := model.Loan{ID: 7, Status: model.LoanActive, DueDate: due, RenewalCount: 1}
	book := model.Book{ID: 2, AvailabilityStatus: model.AvailabilityCheckedOut}

	tests := []struct {
		name    string
		policy  circulation.Policy
		loan    model.Loan
		book    model.Book
		now     time.Time
		wantDue time.Time
		wantErr error
	}{
		{name: "ok", policy: circulation.DefaultPolicy(), loan: active, book: book, now: due.Add(-time.Hour), wantDue: due.Add(14 * 24 * time.Hour)},
		{name: "on due date", policy: circulation.DefaultPolicy(), loan: active, book: book, now: due, wantDue: due.Add(14 * 24 * time.Hour)},
		{name: "overdue", policy: circulation.DefaultPolicy(), loan: active, book: book, now: due.Add(time.Second), wantErr: errs.ErrInvalidState},
		{name: "returned", policy: circulation.DefaultPolicy(), loan: model.Loan{ID: 7, Status: model.LoanReturned, DueDate: due}, book: book, now: due, wantErr: errs.ErrInvalidState},
		{name: "on hold", policy: circulation.DefaultPolicy(), loan: active, book: model.Book{ID: 2, AvailabilityStatus: model.AvailabilityOnHold}, now: due, wantErr: errs.ErrInvalidState},
		{name: "cap reached", policy: circulation.Policy{RenewDays: 14, MaxRenewals: 1}, loan: active, book: book, now: due, wantErr: errs.ErrInvalidState},
		{name: "under cap", policy: circulation.Policy{RenewDays: 14, MaxRenewals: 2}, loan: active, book: book, now: due, wantDue: due.Add(14 * 24 * time.Hour)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.policy.Renew(tt.loan, tt.book, tt.now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDue, got)
		})
	}
}

func TestPayment(t *testing.T) {
	t.Parallel()
	pending := model.Fine{ID: 3, Status: model.FinePending, Amount: dec("5.00"), PaidAmount: dec("1.50")}

	got, err := circulation.Payment(pending, nil)
	require.NoError(t, err)
	require.True(t, dec("3.50").Equal(got))

	part := dec("2")
	got, err = circulation.Payment(pending, &part)
	require.NoError(t, err)
	require.True(t, part.Equal(got))

	over := dec("4")
	_, err = circulation.Payment(pending, &over)
	require.ErrorIs(t, err, errs.ErrValidation)

	zero := decimal.Zero
	_, err = circulation.Payment(pending, &zero)
	require.ErrorIs(t, err, errs.ErrValidation)

	paid := pending
	paid.Status = model.FinePaid
	_, err = circulation.Payment(paid, nil)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCheckBorrow_BookFirst(t *testing.T) {
	t.Parallel()
	pending := model.Member{ID: 1, Role: model.RoleMember, Status: model.MemberPending}
	out := model.Book{ID: 2, AvailabilityStatus: model.AvailabilityCheckedOut}
	require.ErrorIs(t, circulation.CheckBorrow(pending, out), errs.ErrConflict)
}
