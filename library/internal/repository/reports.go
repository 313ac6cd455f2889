package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

func inRange(column string, rng model.DateRange) sq.Sqlizer {
	and := sq.And{}
	if !rng.From.IsZero() {
		and = append(and, sq.GtOrEq{column: rng.From})
	}
	if !rng.To.IsZero() {
		and = append(and, sq.Lt{column: rng.To})
	}
	return and
}

func (r *repository) CountCheckouts(ctx context.Context, rng model.DateRange) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(loansTableName).
		Where(inRange("borrow_date", rng)))
}

func (r *repository) CountActiveLoans(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(loansTableName).
		Where(sq.Eq{"status": model.LoanActive}))
}

func (r *repository) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(loansTableName).
		Where(sq.Eq{"status": model.LoanActive}).
		Where(sq.Lt{"due_date": now}))
}

func (r *repository) CountMembersByStatus(ctx context.Context, status model.MemberStatus) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(usersTableName).
		Where(sq.Eq{"role": model.RoleMember, "status": status}))
}

func (r *repository) CountNewBooks(ctx context.Context, since time.Time) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(booksTableName).
		Where(sq.GtOrEq{"created_at": since}).
		Where(sq.Eq{"deleted_at": nil}))
}

// BorrowingTrends counts checkouts and returns per day.
func (r *repository) BorrowingTrends(ctx context.Context, rng model.DateRange) ([]model.TrendPoint, error) {
	checkouts := qb.Select("date_trunc('day', borrow_date) as day", "1 as checkouts", "0 as returns").
		From(loansTableName).
		Where(inRange("borrow_date", rng))
	returns := qb.Select("date_trunc('day', return_date) as day", "0 as checkouts", "1 as returns").
		From(loansTableName).
		Where(sq.NotEq{"return_date": nil}).
		Where(inRange("return_date", rng))

	union, args, err := checkouts.Suffix("union all").SuffixExpr(returns).ToSql()
	if err != nil {
		return nil, err
	}
	query := `
select day, sum(checkouts)::int as checkouts, sum(returns)::int as returns
from (` + union + `) t
group by day
order by day`

	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.TrendPoint])
	if err != nil {
		return nil, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return points, nil
}

func (r *repository) PopularBooks(ctx context.Context, rng model.DateRange, limit int) ([]model.PopularBook, error) {
	query, args, err := qb.Select("b.id as book_id", "b.title", "b.author", "count(l.id)::int as borrow_count").
		From(loansTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id").
		Where(inRange("l.borrow_date", rng)).
		GroupBy("b.id", "b.title", "b.author").
		OrderBy("borrow_count desc", "b.title").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.PopularBook])
	if err != nil {
		return nil, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return books, nil
}

func (r *repository) ActiveMembers(ctx context.Context, rng model.DateRange, limit int) ([]model.ActiveMember, error) {
	query, args, err := qb.Select(
		"u.id as member_id",
		"(u.first_name || ' ' || u.last_name) as name",
		"u.membership_id",
		"count(l.id)::int as loan_count",
	).
		From(loansTableName + " l").
		Join(usersTableName + " u on u.id = l.member_id").
		Where(inRange("l.borrow_date", rng)).
		GroupBy("u.id", "u.first_name", "u.last_name", "u.membership_id").
		OrderBy("loan_count desc", "u.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ActiveMember])
	if err != nil {
		return nil, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return members, nil
}

// RecordEvent stores a consumed circulation event. Redelivered events are ignored.
func (r *repository) RecordEvent(ctx context.Context, e model.CirculationEvent) error {
	q := `
insert into circulation_events (id, type, member_id, book_id, loan_id, fine_id, amount, occurred_at)
values (@id, @type, @member_id, @book_id, @loan_id, @fine_id, @amount, @occurred_at)
on conflict (id) do nothing`
	_, err := r.conn(ctx).Exec(ctx, q, pgx.NamedArgs{
		"id":          e.ID,
		"type":        e.Type,
		"member_id":   e.MemberID,
		"book_id":     e.BookID,
		"loan_id":     e.LoanID,
		"fine_id":     e.FineID,
		"amount":      e.Amount,
		"occurred_at": e.OccurredAt,
	})
	return mapErr(err)
}

func (r *repository) ListEvents(ctx context.Context, rng model.DateRange, limit int) ([]model.CirculationEvent, error) {
	query, args, err := qb.Select("id::text", "type", "member_id", "book_id", "loan_id", "fine_id", "amount", "occurred_at").
		From(eventsTableName).
		Where(inRange("occurred_at", rng)).
		OrderBy("occurred_at desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.CirculationEvent])
	if err != nil {
		return nil, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return events, nil
}
