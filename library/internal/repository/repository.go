package repository

import (
	"context"
	"net"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// InTx runs fn in one transaction. Nested calls join the outer transaction.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error

	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookForUpdate(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error)
	CreateBook(ctx context.Context, b model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, b model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	SetBookAvailability(ctx context.Context, id int64, status model.AvailabilityStatus) error
	ListGenres(ctx context.Context) ([]string, error)
	LogInventory(ctx context.Context, u model.InventoryUpdate) error
	ListInventory(ctx context.Context, bookID int64) ([]model.InventoryUpdate, error)

	GetMember(ctx context.Context, id int64) (model.Member, error)
	GetMemberForUpdate(ctx context.Context, id int64) (model.Member, error)
	GetCredentials(ctx context.Context, username string) (model.Credentials, error)
	ListMembers(ctx context.Context, f model.MemberFilter) (model.ListMembers, error)
	CreateMember(ctx context.Context, member model.NewMember) (model.Member, error)
	UpdateMember(ctx context.Context, member model.Member) (model.Member, error)
	SetMemberStatus(ctx context.Context, id int64, status model.MemberStatus, expiration *time.Time) (model.Member, error)
	ExpireMembers(ctx context.Context, now time.Time) (int64, error)

	GetLoan(ctx context.Context, id int64) (model.LoanDetails, error)
	GetLoanForUpdate(ctx context.Context, id int64) (model.Loan, error)
	ListLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error)
	CreateLoan(ctx context.Context, l model.Loan) (model.Loan, error)
	ReturnLoan(ctx context.Context, id int64, at time.Time) (model.Loan, error)
	RenewLoan(ctx context.Context, id int64, dueDate time.Time) (model.Loan, error)
	HasActiveLoan(ctx context.Context, bookID int64) (bool, error)

	GetFine(ctx context.Context, id int64) (model.FineDetails, error)
	GetFineForUpdate(ctx context.Context, id int64) (model.Fine, error)
	ListFines(ctx context.Context, f model.FineFilter) ([]model.FineDetails, error)
	FineSummary(ctx context.Context, memberID int64) (model.FineSummary, error)
	CreateFine(ctx context.Context, f model.NewFine) (model.Fine, error)
	UpdateFine(ctx context.Context, f model.Fine) (model.Fine, error)
	ApplyFinePayment(ctx context.Context, id int64, amount decimal.Decimal, at time.Time) (model.Fine, error)
	DeleteFine(ctx context.Context, id int64) error
	CreatePayment(ctx context.Context, p model.Payment) (model.Payment, error)
	CountPayments(ctx context.Context, fineID int64) (int, error)

	CountCheckouts(ctx context.Context, rng model.DateRange) (int, error)
	CountActiveLoans(ctx context.Context) (int, error)
	CountOverdue(ctx context.Context, now time.Time) (int, error)
	CountMembersByStatus(ctx context.Context, status model.MemberStatus) (int, error)
	CountNewBooks(ctx context.Context, since time.Time) (int, error)
	BorrowingTrends(ctx context.Context, rng model.DateRange) ([]model.TrendPoint, error)
	PopularBooks(ctx context.Context, rng model.DateRange, limit int) ([]model.PopularBook, error)
	ActiveMembers(ctx context.Context, rng model.DateRange, limit int) ([]model.ActiveMember, error)

	RecordEvent(ctx context.Context, e model.CirculationEvent) error
	ListEvents(ctx context.Context, rng model.DateRange, limit int) ([]model.CirculationEvent, error)
}

type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName     = `users`
	booksTableName     = `books`
	loansTableName     = `loans`
	finesTableName     = `fines`
	paymentsTableName  = `payments`
	inventoryTableName = `inventory_updates`
	eventsTableName    = `circulation_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txKey struct{}

func (r *repository) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	return mapErr(err)
}

// conn returns the transaction bound to ctx, or the pool.
func (r *repository) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.db
}

func (r *repository) queryAll(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	r.log.Debug("query", zap.String("query", query), zap.Any("args", args))
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	return rows, nil
}

func (r *repository) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.conn(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

// mapErr translates driver errors into errs kinds. Kinds already set pass through.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{
		errs.ErrNotFound, errs.ErrConflict, errs.ErrInvalidState, errs.ErrValidation,
		errs.ErrUnavailable, errs.ErrUnauthorized, errs.ErrForbidden,
	} {
		if errors.Is(err, kind) {
			return err
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.CheckViolation, pgerrcode.ForeignKeyViolation, pgerrcode.NotNullViolation,
			pgerrcode.InvalidTextRepresentation, pgerrcode.NumericValueOutOfRange:
			return errors.Wrap(errs.ErrValidation, pgErr.Message)
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected,
			pgerrcode.AdminShutdown, pgerrcode.CannotConnectNow:
			return errors.Wrap(errs.ErrUnavailable, pgErr.Message)
		}
		return err
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(errs.ErrUnavailable, err.Error())
	}
	return err
}

func columns(cols []string) string {
	return strings.Join(cols, ", ")
}
