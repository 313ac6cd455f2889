package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

var loanColumns = []string{
	"id", "member_id", "book_id", "borrow_date", "due_date", "return_date", "status", "renewal_count",
}

var loanDetailsColumns = []string{
	"l.id", "l.member_id", "l.book_id", "l.borrow_date", "l.due_date", "l.return_date", "l.status", "l.renewal_count",
	"b.title as book_title", "b.author as book_author", "b.isbn as book_isbn",
	"(u.first_name || ' ' || u.last_name) as member_name",
}

func loanDetails(cols ...string) sq.SelectBuilder {
	return qb.Select(cols...).
		From(loansTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id").
		Join(usersTableName + " u on u.id = l.member_id")
}

func (r *repository) GetLoan(ctx context.Context, id int64) (model.LoanDetails, error) {
	query, args, err := loanDetails(loanDetailsColumns...).
		Where(sq.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return model.LoanDetails{}, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.LoanDetails{}, err
	}
	defer rows.Close()

	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.LoanDetails])
	if err != nil {
		return model.LoanDetails{}, errors.Wrapf(mapErr(err), "loan %d", id)
	}
	return loan, nil
}

// GetLoanForUpdate locks the loan row until the surrounding transaction ends.
func (r *repository) GetLoanForUpdate(ctx context.Context, id int64) (model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.Loan{}, err
	}
	defer rows.Close()

	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		return model.Loan{}, errors.Wrapf(mapErr(err), "loan %d", id)
	}
	return loan, nil
}

func loanFilter(b sq.SelectBuilder, f model.LoanFilter) sq.SelectBuilder {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"b.title": like},
			sq.ILike{"u.first_name": like},
			sq.ILike{"u.last_name": like},
			sq.ILike{"u.membership_id": like},
		})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"l.status": f.Status})
	}
	if f.MemberID != 0 {
		b = b.Where(sq.Eq{"l.member_id": f.MemberID})
	}
	if f.BookID != 0 {
		b = b.Where(sq.Eq{"l.book_id": f.BookID})
	}
	return b
}

func (r *repository) ListLoans(ctx context.Context, f model.LoanFilter) (model.ListLoans, error) {
	total, err := r.count(ctx, loanFilter(loanDetails("count(*)"), f))
	if err != nil {
		return model.ListLoans{}, err
	}

	q := loanFilter(loanDetails(loanDetailsColumns...), f).
		OrderBy("l.borrow_date desc", "l.id desc")
	if f.Page != 0 && f.PageSize != 0 {
		q = q.Limit(uint64(f.PageSize)).Offset(uint64(f.Offset()))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListLoans{}, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.ListLoans{}, err
	}
	defer rows.Close()

	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.LoanDetails])
	if err != nil {
		return model.ListLoans{}, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return model.ListLoans{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.PageSize,
			TotalElements: total,
		},
		Items: loans,
	}, nil
}

// CreateLoan inserts an active loan. A second active loan on the same book
// violates loans_one_active_per_book and surfaces as errs.ErrConflict.
func (r *repository) CreateLoan(ctx context.Context, l model.Loan) (model.Loan, error) {
	q := `
insert into loans (member_id, book_id, borrow_date, due_date, status, renewal_count)
values (@member_id, @book_id, @borrow_date, @due_date, 'active', 0)
returning ` + columns(loanColumns)
	args := pgx.NamedArgs{
		"member_id":   l.MemberID,
		"book_id":     l.BookID,
		"borrow_date": l.BorrowDate,
		"due_date":    l.DueDate,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Loan{}, err
	}
	defer rows.Close()

	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		return model.Loan{}, mapErr(err)
	}
	return loan, nil
}

// ReturnLoan closes an active loan. A loan that is not active yields errs.ErrInvalidState.
func (r *repository) ReturnLoan(ctx context.Context, id int64, at time.Time) (model.Loan, error) {
	q := `
update loans
    set status = 'returned', return_date = @at
where id = @id and status = 'active'
returning ` + columns(loanColumns)
	rows, err := r.queryAll(ctx, q, pgx.NamedArgs{"id": id, "at": at})
	if err != nil {
		return model.Loan{}, err
	}
	defer rows.Close()

	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, errors.Wrapf(errs.ErrInvalidState, "loan %d is not active", id)
		}
		return model.Loan{}, mapErr(err)
	}
	return loan, nil
}

func (r *repository) RenewLoan(ctx context.Context, id int64, dueDate time.Time) (model.Loan, error) {
	q := `
update loans
    set due_date = @due_date, renewal_count = renewal_count + 1
where id = @id and status = 'active'
returning ` + columns(loanColumns)
	rows, err := r.queryAll(ctx, q, pgx.NamedArgs{"id": id, "due_date": dueDate})
	if err != nil {
		return model.Loan{}, err
	}
	defer rows.Close()

	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, errors.Wrapf(errs.ErrInvalidState, "loan %d is not active", id)
		}
		return model.Loan{}, mapErr(err)
	}
	return loan, nil
}

func (r *repository) HasActiveLoan(ctx context.Context, bookID int64) (bool, error) {
	var exists bool
	q := `select exists(select 1 from loans where book_id = $1 and status = 'active')`
	if err := r.conn(ctx).QueryRow(ctx, q, bookID).Scan(&exists); err != nil {
		return false, mapErr(err)
	}
	return exists, nil
}
