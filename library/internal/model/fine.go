package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type FineStatus string

const (
	FinePending FineStatus = "pending"
	FinePaid    FineStatus = "paid"
)

func (s FineStatus) Valid() bool {
	return s == FinePending || s == FinePaid
}

type FineOrigin string

const (
	FineOverdue FineOrigin = "overdue"
	FineManual  FineOrigin = "manual"
)

type Fine struct {
	ID         int64           `json:"id" db:"id"`
	LoanID     *int64          `json:"loanID,omitempty" db:"loan_id"`
	MemberID   int64           `json:"memberID" db:"member_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	PaidAmount decimal.Decimal `json:"paidAmount" db:"paid_amount"`
	Rate       decimal.Decimal `json:"rate" db:"rate"`
	GraceDays  int             `json:"graceDays" db:"grace_days"`
	MaxFine    decimal.Decimal `json:"maxFine" db:"max_fine"`
	Origin     FineOrigin      `json:"origin" db:"origin"`
	Status     FineStatus      `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
	PaidAt     *time.Time      `json:"paidAt,omitempty" db:"paid_at"`
}

// Balance is what is still owed on the fine.
func (f Fine) Balance() decimal.Decimal {
	b := f.Amount.Sub(f.PaidAmount)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}

// FineDetails adds the member and book a fine belongs to.
type FineDetails struct {
	Fine
	MemberName string  `json:"memberName" db:"member_name"`
	BookTitle  *string `json:"bookTitle,omitempty" db:"book_title"`
}

type FineFilter struct {
	MemberID int64
	Status   FineStatus
}

type NewFine struct {
	LoanID    *int64
	MemberID  int64
	Amount    decimal.Decimal
	Rate      decimal.Decimal
	GraceDays int
	MaxFine   decimal.Decimal
	Origin    FineOrigin
}

type AddFineRequest struct {
	MemberID int64            `json:"memberID" validate:"required,gt=0"`
	LoanID   *int64           `json:"loanID" validate:"omitempty,gt=0"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Rate     *decimal.Decimal `json:"rate"`
	MaxFine  *decimal.Decimal `json:"maxFine"`
}

type UpdateFineRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	Rate    *decimal.Decimal `json:"rate"`
	MaxFine *decimal.Decimal `json:"maxFine"`
}

type PayFineRequest struct {
	Amount    *decimal.Decimal `json:"amount"`
	Reference string           `json:"reference"`
}

type PayFineResponse struct {
	PaymentID int64           `json:"paymentID"`
	Status    FineStatus      `json:"status"`
	Balance   decimal.Decimal `json:"balance"`
}

type FineSummary struct {
	MemberID     int64           `json:"memberID" db:"member_id"`
	Count        int             `json:"count" db:"count"`
	PendingCount int             `json:"pendingCount" db:"pending_count"`
	Pending      decimal.Decimal `json:"pending" db:"pending"`
	Paid         decimal.Decimal `json:"paid" db:"paid"`
	Total        decimal.Decimal `json:"total" db:"total"`
}

type PaymentType string

const (
	PaymentFine PaymentType = "fine"
)

type Payment struct {
	ID        int64           `json:"id" db:"id"`
	MemberID  int64           `json:"memberID" db:"member_id"`
	LoanID    *int64          `json:"loanID,omitempty" db:"loan_id"`
	FineID    *int64          `json:"fineID,omitempty" db:"fine_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Type      PaymentType     `json:"type" db:"type"`
	Reference string          `json:"reference" db:"reference"`
	CreatedAt time.Time       `json:"timestamp" db:"created_at"`
}

// ReturnResult is what the desk sees after a return.
type ReturnResult struct {
	IsOverdue   bool            `json:"isOverdue"`
	DaysOverdue int             `json:"daysOverdue"`
	FineAmount  decimal.Decimal `json:"fineAmount"`
	FineID      *int64          `json:"fineID,omitempty"`
}
