package handler

import (
	"context"

	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (model.Member, error)

	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	ListGenres(ctx context.Context) ([]string, error)
	ListInventory(ctx context.Context, bookID int64) ([]model.InventoryUpdate, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	SetAvailability(ctx context.Context, id int64, status model.AvailabilityStatus) (model.Book, error)

	GetMember(ctx context.Context, id int64) (model.Member, error)
	ListMembers(ctx context.Context, f model.MemberFilter) (model.ListMembers, error)
	RegisterMember(ctx context.Context, req model.RegisterRequest) (model.Member, error)
	CreateMemberDirect(ctx context.Context, req model.CreateMemberRequest) (model.Member, error)
	UpdateMember(ctx context.Context, id int64, req model.UpdateMemberRequest) (model.Member, error)
	ApproveMember(ctx context.Context, id int64) (model.Member, error)
	DeactivateMember(ctx context.Context, id int64) (model.Member, error)
	ReactivateMember(ctx context.Context, id int64) (model.Member, error)
	MemberHistory(ctx context.Context, id int64, paging model.Paging) (model.ListLoans, error)

	IssueLoan(ctx context.Context, req model.IssueLoanRequest) (model.Loan, error)
	ReturnLoan(ctx context.Context, id int64) (model.ReturnResult, error)
	RenewLoan(ctx context.Context, id int64) (model.Loan, error)
	GetLoan(ctx context.Context, id int64) (model.LoanDetails, error)
	ListLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error)
	CurrentLoans(ctx context.Context, memberID int64) ([]model.LoanDetails, error)

	PayFine(ctx context.Context, id int64, req model.PayFineRequest) (model.PayFineResponse, error)
	AddManualFine(ctx context.Context, req model.AddFineRequest) (model.Fine, error)
	GetFine(ctx context.Context, id int64) (model.FineDetails, error)
	MemberFines(ctx context.Context, memberID int64) ([]model.FineDetails, error)
	PendingFines(ctx context.Context) ([]model.FineDetails, error)
	FineSummary(ctx context.Context, memberID int64) (model.FineSummary, error)
	UpdateFine(ctx context.Context, id int64, req model.UpdateFineRequest) (model.Fine, error)
	DeleteFine(ctx context.Context, id int64) error

	Dashboard(ctx context.Context, days int) (model.Dashboard, error)
	BorrowingTrends(ctx context.Context, rng model.DateRange) ([]model.TrendPoint, error)
	PopularBooks(ctx context.Context, rng model.DateRange, limit int) ([]model.PopularBook, error)
	ActiveMembers(ctx context.Context, rng model.DateRange, limit int) ([]model.ActiveMember, error)
	FinesReport(ctx context.Context) (model.FinesReport, error)
	ListEvents(ctx context.Context, rng model.DateRange, limit int) ([]model.CirculationEvent, error)

	Search(ctx context.Context, typ model.SearchType, query string, limit int) (model.SearchResult, error)
	SearchOpenLibrary(ctx context.Context, query string, limit int) ([]model.OpenLibraryBook, error)
}

// EventRecorder stores circulation events read from the broker.
type EventRecorder interface {
	RecordEvent(ctx context.Context, e model.CirculationEvent) error
}

var (
	_ LibraryService = (*service.Service)(nil)
	_ EventRecorder  = (*service.Service)(nil)
)
