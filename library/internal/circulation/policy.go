// Package circulation holds the loan and fine rules. Nothing here touches the store.
package circulation

import (
	"time"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

type Policy struct {
	LoanDays  int
	RenewDays int
	FineRate  decimal.Decimal
	MaxFine   decimal.Decimal
	GraceDays int
	// MaxRenewals of 0 means no cap.
	MaxRenewals int
}

func DefaultPolicy() Policy {
	return Policy{
		LoanDays:  14,
		RenewDays: 14,
		FineRate:  decimal.RequireFromString("0.50"),
		MaxFine:   decimal.RequireFromString("50.00"),
	}
}

// ComputeOverdueStatus counts every started day past due as a full day.
func ComputeOverdueStatus(due, now time.Time) (isOverdue bool, daysOverdue int) {
	if !now.After(due) {
		return false, 0
	}
	late := now.Sub(due)
	days := int(late / day)
	if late%day != 0 {
		days++
	}
	return true, days
}

// FineAmount charges rate per day past the grace period, capped at maxFine.
func FineAmount(daysOverdue, graceDays int, rate, maxFine decimal.Decimal) decimal.Decimal {
	chargeable := daysOverdue - graceDays
	if chargeable <= 0 {
		return decimal.Zero
	}
	amount := rate.Mul(decimal.NewFromInt(int64(chargeable)))
	if amount.GreaterThan(maxFine) {
		amount = maxFine
	}
	return amount.Round(2)
}

// DueDate returns the requested due date, or the default loan period from now.
func (p Policy) DueDate(now time.Time, requested *time.Time) (time.Time, error) {
	if requested == nil || requested.IsZero() {
		return now.Add(time.Duration(p.LoanDays) * day), nil
	}
	if requested.Before(now) {
		return time.Time{}, errors.Wrap(errs.ErrValidation, "due date is before borrow date")
	}
	return *requested, nil
}

// CheckAvailable fails with errs.ErrConflict unless the book can go out.
func CheckAvailable(book model.Book) error {
	if book.AvailabilityStatus != model.AvailabilityAvailable {
		return errors.Wrapf(errs.ErrConflict, "book %d is %s", book.ID, book.AvailabilityStatus)
	}
	return nil
}

// CheckMember fails with errs.ErrInvalidState unless member may borrow.
func CheckMember(member model.Member) error {
	if member.Role != model.RoleMember {
		return errors.Wrapf(errs.ErrInvalidState, "user %d with role %s cannot borrow", member.ID, member.Role)
	}
	if member.Status != model.MemberApproved {
		return errors.Wrapf(errs.ErrInvalidState, "member %d is %s", member.ID, member.Status)
	}
	return nil
}

// CheckBorrow validates both sides of an issue, book first.
func CheckBorrow(member model.Member, book model.Book) error {
	if err := CheckAvailable(book); err != nil {
		return err
	}
	return CheckMember(member)
}

// Renew returns the new due date for loan or the reason it cannot be renewed.
func (p Policy) Renew(loan model.Loan, book model.Book, now time.Time) (time.Time, error) {
	if loan.Status != model.LoanActive {
		return time.Time{}, errors.Wrapf(errs.ErrInvalidState, "loan %d is %s", loan.ID, loan.Status)
	}
	if book.AvailabilityStatus == model.AvailabilityOnHold {
		return time.Time{}, errors.Wrapf(errs.ErrInvalidState, "book %d is on hold", book.ID)
	}
	if overdue, _ := ComputeOverdueStatus(loan.DueDate, now); overdue {
		return time.Time{}, errors.Wrapf(errs.ErrInvalidState, "loan %d is overdue", loan.ID)
	}
	if p.MaxRenewals > 0 && loan.RenewalCount >= p.MaxRenewals {
		return time.Time{}, errors.Wrapf(errs.ErrInvalidState, "loan %d reached %d renewals", loan.ID, p.MaxRenewals)
	}
	return loan.DueDate.Add(time.Duration(p.RenewDays) * day), nil
}

// Assess computes the return outcome for a loan due at due and returned at now.
func (p Policy) Assess(due, now time.Time) model.ReturnResult {
	overdue, days := ComputeOverdueStatus(due, now)
	res := model.ReturnResult{
		IsOverdue:   overdue,
		DaysOverdue: days,
		FineAmount:  decimal.Zero,
	}
	if overdue {
		res.FineAmount = FineAmount(days, p.GraceDays, p.FineRate, p.MaxFine)
	}
	return res
}

// Payment resolves the amount to apply to fine. A nil amount settles the balance.
func Payment(fine model.Fine, amount *decimal.Decimal) (decimal.Decimal, error) {
	if fine.Status != model.FinePending {
		return decimal.Zero, errors.Wrapf(errs.ErrInvalidState, "fine %d is %s", fine.ID, fine.Status)
	}
	balance := fine.Balance()
	if amount == nil {
		return balance, nil
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.Wrap(errs.ErrValidation, "payment amount must be positive")
	}
	if amount.GreaterThan(balance) {
		return decimal.Zero, errors.Wrapf(errs.ErrValidation, "payment %s exceeds balance %s", amount, balance)
	}
	return *amount, nil
}
