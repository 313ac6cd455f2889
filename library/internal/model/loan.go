package model

import (
	"time"
)

type LoanStatus string

const (
	LoanActive   LoanStatus = "active"
	LoanReturned LoanStatus = "returned"
)

func (s LoanStatus) Valid() bool {
	return s == LoanActive || s == LoanReturned
}

type Loan struct {
	ID           int64      `json:"id" db:"id"`
	MemberID     int64      `json:"memberID" db:"member_id"`
	BookID       int64      `json:"bookID" db:"book_id"`
	BorrowDate   time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate      time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate   *time.Time `json:"returnDate,omitempty" db:"return_date"`
	Status       LoanStatus `json:"status" db:"status"`
	RenewalCount int        `json:"renewalCount" db:"renewal_count"`
}

// LoanDetails is a loan joined with the titles a desk clerk needs to read it.
type LoanDetails struct {
	Loan
	BookTitle   string `json:"bookTitle" db:"book_title"`
	BookAuthor  string `json:"bookAuthor" db:"book_author"`
	BookISBN    string `json:"isbn" db:"book_isbn"`
	MemberName  string `json:"memberName" db:"member_name"`
	IsOverdue   bool   `json:"isOverdue" db:"-"`
	DaysOverdue int    `json:"daysOverdue" db:"-"`
}

type LoanFilter struct {
	// Search matches book title, member name or membership ID.
	Search   string
	Status   LoanStatus
	MemberID int64
	BookID   int64
	Paging
}

type ListLoans struct {
	Paging `json:",inline"`
	Items  []LoanDetails `json:"items"`
}

type IssueLoanRequest struct {
	MemberID int64 `json:"memberID" validate:"required,gt=0"`
	BookID   int64 `json:"bookID" validate:"required,gt=0"`
	DueDate  *Date `json:"dueDate"`
}

type IssueLoanResponse struct {
	LoanID     int64     `json:"loanID"`
	BorrowDate time.Time `json:"borrowDate"`
	DueDate    time.Time `json:"dueDate"`
}

type RenewLoanResponse struct {
	NewDueDate   time.Time `json:"newDueDate"`
	RenewalCount int       `json:"renewalCount"`
}
