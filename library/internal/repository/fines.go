package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

var fineColumns = []string{
	"id", "loan_id", "member_id", "amount", "paid_amount", "rate", "grace_days",
	"max_fine", "origin", "status", "created_at", "paid_at",
}

var fineDetailsColumns = []string{
	"f.id", "f.loan_id", "f.member_id", "f.amount", "f.paid_amount", "f.rate", "f.grace_days",
	"f.max_fine", "f.origin", "f.status", "f.created_at", "f.paid_at",
	"(u.first_name || ' ' || u.last_name) as member_name", "b.title as book_title",
}

var paymentColumns = []string{
	"id", "member_id", "loan_id", "fine_id", "amount", "type", "reference", "created_at",
}

func fineDetails() sq.SelectBuilder {
	return qb.Select(fineDetailsColumns...).
		From(finesTableName + " f").
		Join(usersTableName + " u on u.id = f.member_id").
		LeftJoin(loansTableName + " l on l.id = f.loan_id").
		LeftJoin(booksTableName + " b on b.id = l.book_id")
}

func (r *repository) GetFine(ctx context.Context, id int64) (model.FineDetails, error) {
	query, args, err := fineDetails().Where(sq.Eq{"f.id": id}).ToSql()
	if err != nil {
		return model.FineDetails{}, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.FineDetails{}, err
	}
	defer rows.Close()

	fine, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FineDetails])
	if err != nil {
		return model.FineDetails{}, errors.Wrapf(mapErr(err), "fine %d", id)
	}
	return fine, nil
}

func (r *repository) GetFineForUpdate(ctx context.Context, id int64) (model.Fine, error) {
	query, args, err := qb.Select(fineColumns...).
		From(finesTableName).
		Where(sq.Eq{"id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.Fine{}, err
	}
	defer rows.Close()

	fine, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Fine])
	if err != nil {
		return model.Fine{}, errors.Wrapf(mapErr(err), "fine %d", id)
	}
	return fine, nil
}

func (r *repository) ListFines(ctx context.Context, f model.FineFilter) ([]model.FineDetails, error) {
	b := fineDetails()
	if f.MemberID != 0 {
		b = b.Where(sq.Eq{"f.member_id": f.MemberID})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"f.status": f.Status})
	}
	query, args, err := b.OrderBy("f.created_at desc", "f.id desc").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fines, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.FineDetails])
	if err != nil {
		return nil, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return fines, nil
}

func (r *repository) FineSummary(ctx context.Context, memberID int64) (model.FineSummary, error) {
	q := `
select @member_id::bigint                                                         as member_id,
       count(*)                                                                   as count,
       count(*) filter (where status = 'pending')                                 as pending_count,
       coalesce(sum(amount - paid_amount) filter (where status = 'pending'), 0)   as pending,
       coalesce(sum(paid_amount), 0)                                              as paid,
       coalesce(sum(amount), 0)                                                   as total
from fines
where member_id = @member_id`
	rows, err := r.queryAll(ctx, q, pgx.NamedArgs{"member_id": memberID})
	if err != nil {
		return model.FineSummary{}, err
	}
	defer rows.Close()

	s, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FineSummary])
	if err != nil {
		return model.FineSummary{}, mapErr(err)
	}
	return s, nil
}

// CreateFine inserts a pending fine. An overdue fine for a loan that already
// has one violates fines_one_overdue_per_loan and surfaces as errs.ErrConflict.
func (r *repository) CreateFine(ctx context.Context, f model.NewFine) (model.Fine, error) {
	q := `
insert into fines (loan_id, member_id, amount, rate, grace_days, max_fine, origin, status)
values (@loan_id, @member_id, @amount, @rate, @grace_days, @max_fine, @origin, 'pending')
returning ` + columns(fineColumns)
	args := pgx.NamedArgs{
		"loan_id":    f.LoanID,
		"member_id":  f.MemberID,
		"amount":     f.Amount,
		"rate":       f.Rate,
		"grace_days": f.GraceDays,
		"max_fine":   f.MaxFine,
		"origin":     f.Origin,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Fine{}, err
	}
	defer rows.Close()

	fine, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Fine])
	if err != nil {
		return model.Fine{}, mapErr(err)
	}
	return fine, nil
}

func (r *repository) UpdateFine(ctx context.Context, f model.Fine) (model.Fine, error) {
	q := `
update fines
    set amount = @amount, rate = @rate, max_fine = @max_fine
where id = @id and status = 'pending'
returning ` + columns(fineColumns)
	args := pgx.NamedArgs{
		"id":       f.ID,
		"amount":   f.Amount,
		"rate":     f.Rate,
		"max_fine": f.MaxFine,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Fine{}, err
	}
	defer rows.Close()

	fine, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Fine])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Fine{}, errors.Wrapf(errs.ErrInvalidState, "fine %d is not pending", f.ID)
		}
		return model.Fine{}, mapErr(err)
	}
	return fine, nil
}

// ApplyFinePayment adds amount to what was paid and settles the fine once nothing is owed.
func (r *repository) ApplyFinePayment(ctx context.Context, id int64, amount decimal.Decimal, at time.Time) (model.Fine, error) {
	q := `
update fines
    set paid_amount = paid_amount + @amount,
        status  = case when paid_amount + @amount >= amount then 'paid' else 'pending' end,
        paid_at = case when paid_amount + @amount >= amount then @at::timestamptz end
where id = @id and status = 'pending'
returning ` + columns(fineColumns)
	rows, err := r.queryAll(ctx, q, pgx.NamedArgs{"id": id, "amount": amount, "at": at})
	if err != nil {
		return model.Fine{}, err
	}
	defer rows.Close()

	fine, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Fine])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Fine{}, errors.Wrapf(errs.ErrInvalidState, "fine %d is not pending", id)
		}
		return model.Fine{}, mapErr(err)
	}
	return fine, nil
}

func (r *repository) DeleteFine(ctx context.Context, id int64) error {
	tag, err := r.conn(ctx).Exec(ctx, `delete from fines where id = $1 and status = 'pending'`, id)
	if err != nil {
		if errors.Is(mapErr(err), errs.ErrValidation) {
			return errors.Wrapf(errs.ErrConflict, "fine %d has payments", id)
		}
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrInvalidState, "fine %d is not pending", id)
	}
	return nil
}

func (r *repository) CreatePayment(ctx context.Context, p model.Payment) (model.Payment, error) {
	q := `
insert into payments (member_id, loan_id, fine_id, amount, type, reference, created_at)
values (@member_id, @loan_id, @fine_id, @amount, @type, @reference, @created_at)
returning ` + columns(paymentColumns)
	args := pgx.NamedArgs{
		"member_id":  p.MemberID,
		"loan_id":    p.LoanID,
		"fine_id":    p.FineID,
		"amount":     p.Amount,
		"type":       p.Type,
		"reference":  p.Reference,
		"created_at": p.CreatedAt,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Payment{}, err
	}
	defer rows.Close()

	payment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Payment])
	if err != nil {
		return model.Payment{}, mapErr(err)
	}
	return payment, nil
}

func (r *repository) CountPayments(ctx context.Context, fineID int64) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(paymentsTableName).Where(sq.Eq{"fine_id": fineID}))
}
