package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange bounds report queries; zero values mean unbounded.
type DateRange struct {
	From time.Time
	To   time.Time
}

type Dashboard struct {
	TotalCheckouts  int       `json:"totalCheckouts"`
	ActiveLoans     int       `json:"activeLoans"`
	ActiveMembers   int       `json:"activeMembers"`
	OverdueItems    int       `json:"overdueItems"`
	NewAcquisitions int       `json:"newAcquisitions"`
	PendingMembers  int       `json:"pendingMembers"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

type TrendPoint struct {
	Day       time.Time `json:"day" db:"day"`
	Checkouts int       `json:"checkouts" db:"checkouts"`
	Returns   int       `json:"returns" db:"returns"`
}

type PopularBook struct {
	BookID      int64  `json:"bookID" db:"book_id"`
	Title       string `json:"title" db:"title"`
	Author      string `json:"author" db:"author"`
	BorrowCount int    `json:"borrowCount" db:"borrow_count"`
}

type ActiveMember struct {
	MemberID     int64   `json:"memberID" db:"member_id"`
	Name         string  `json:"name" db:"name"`
	MembershipID *string `json:"membershipID,omitempty" db:"membership_id"`
	LoanCount    int     `json:"loanCount" db:"loan_count"`
}

type FinesReport struct {
	PendingCount int             `json:"pendingCount"`
	PendingTotal decimal.Decimal `json:"pendingTotal"`
	Items        []FineDetails   `json:"items"`
}

type SearchType string

const (
	SearchBooks        SearchType = "books"
	SearchMembers      SearchType = "members"
	SearchTransactions SearchType = "transactions"
)

func (t SearchType) Valid() bool {
	switch t {
	case SearchBooks, SearchMembers, SearchTransactions:
		return true
	}
	return false
}

type SearchResult struct {
	Type         SearchType    `json:"type"`
	Books        []Book        `json:"books,omitempty"`
	Members      []Member      `json:"members,omitempty"`
	Transactions []LoanDetails `json:"transactions,omitempty"`
}

// CirculationEvent is the persisted form of a consumed circulation message.
type CirculationEvent struct {
	ID         string          `json:"id" db:"id"`
	Type       string          `json:"type" db:"type"`
	MemberID   int64           `json:"memberID" db:"member_id"`
	BookID     *int64          `json:"bookID,omitempty" db:"book_id"`
	LoanID     *int64          `json:"loanID,omitempty" db:"loan_id"`
	FineID     *int64          `json:"fineID,omitempty" db:"fine_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	OccurredAt time.Time       `json:"occurredAt" db:"occurred_at"`
}

// OpenLibraryBook is a normalized Open Library search hit.
type OpenLibraryBook struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publicationYear,omitempty"`
	Description     string `json:"description,omitempty"`
	CoverImage      string `json:"coverImage,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	Pages           int    `json:"pages,omitempty"`
	Language        string `json:"language,omitempty"`
}
