package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

var memberColumns = []string{
	"id", "username", "email", "first_name", "last_name", "phone", "address",
	"role", "status", "membership_id", "membership_type", "join_date", "expiration_date",
}

// membershipID draws the next LIB-NNNNN number from the store sequence.
const membershipID = `'LIB-' || lpad(nextval('membership_seq')::text, 5, '0')`

func (r *repository) getMember(ctx context.Context, id int64, forUpdate bool) (model.Member, error) {
	b := qb.Select(memberColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id})
	if forUpdate {
		b = b.Suffix("for update")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Member{}, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.Member{}, err
	}
	defer rows.Close()

	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
	if err != nil {
		return model.Member{}, errors.Wrapf(mapErr(err), "member %d", id)
	}
	return m, nil
}

func (r *repository) GetMember(ctx context.Context, id int64) (model.Member, error) {
	return r.getMember(ctx, id, false)
}

func (r *repository) GetMemberForUpdate(ctx context.Context, id int64) (model.Member, error) {
	return r.getMember(ctx, id, true)
}

func (r *repository) GetCredentials(ctx context.Context, username string) (model.Credentials, error) {
	query, args, err := qb.Select("id", "username", "password_hash", "role", "status").
		From(usersTableName).
		Where(sq.Or{sq.Eq{"username": username}, sq.Eq{"email": username}}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Credentials{}, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.Credentials{}, err
	}
	defer rows.Close()

	c, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Credentials])
	if err != nil {
		return model.Credentials{}, mapErr(err)
	}
	return c, nil
}

func memberFilter(b sq.SelectBuilder, f model.MemberFilter) sq.SelectBuilder {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"username": like},
			sq.ILike{"email": like},
			sq.ILike{"first_name": like},
			sq.ILike{"last_name": like},
			sq.ILike{"membership_id": like},
		})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": f.Status})
	}
	if f.Role != "" {
		b = b.Where(sq.Eq{"role": f.Role})
	}
	return b
}

func (r *repository) ListMembers(ctx context.Context, f model.MemberFilter) (model.ListMembers, error) {
	total, err := r.count(ctx, memberFilter(qb.Select("count(*)").From(usersTableName), f))
	if err != nil {
		return model.ListMembers{}, err
	}

	q := memberFilter(qb.Select(memberColumns...).From(usersTableName), f).
		OrderBy("last_name", "first_name", "id")
	if f.Page != 0 && f.PageSize != 0 {
		q = q.Limit(uint64(f.PageSize)).Offset(uint64(f.Offset()))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListMembers{}, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.ListMembers{}, err
	}
	defer rows.Close()

	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Member])
	if err != nil {
		return model.ListMembers{}, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return model.ListMembers{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.PageSize,
			TotalElements: total,
		},
		Items: members,
	}, nil
}

// CreateMember inserts a user. Approved users get a membership ID at once;
// an empty username becomes the email local part suffixed with a sequence number.
func (r *repository) CreateMember(ctx context.Context, m model.NewMember) (model.Member, error) {
	q := `
with seq as (select nextval('membership_seq') as n)
insert into users (username, email, password_hash, first_name, last_name, phone, address,
                   role, status, membership_id, membership_type, expiration_date)
select coalesce(nullif(@username, ''), split_part(@email, '@', 1) || seq.n),
       @email, @password_hash, @first_name, @last_name, @phone, @address,
       @role, @status,
       case when @status = 'approved' then 'LIB-' || lpad(seq.n::text, 5, '0') end,
       @membership_type, @expiration_date::timestamptz
from seq
returning ` + columns(memberColumns)
	args := pgx.NamedArgs{
		"username":        m.Username,
		"email":           m.Email,
		"password_hash":   m.PasswordHash,
		"first_name":      m.FirstName,
		"last_name":       m.LastName,
		"phone":           m.Phone,
		"address":         m.Address,
		"role":            m.Role,
		"status":          m.Status,
		"membership_type": m.MembershipType,
		"expiration_date": m.ExpirationDate,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Member{}, err
	}
	defer rows.Close()

	member, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
	if err != nil {
		return model.Member{}, mapErr(err)
	}
	return member, nil
}

func (r *repository) UpdateMember(ctx context.Context, m model.Member) (model.Member, error) {
	q := `
update users
    set email = @email, first_name = @first_name, last_name = @last_name,
        phone = @phone, address = @address, membership_type = @membership_type
where id = @id
returning ` + columns(memberColumns)
	args := pgx.NamedArgs{
		"id":              m.ID,
		"email":           m.Email,
		"first_name":      m.FirstName,
		"last_name":       m.LastName,
		"phone":           m.Phone,
		"address":         m.Address,
		"membership_type": m.MembershipType,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Member{}, err
	}
	defer rows.Close()

	member, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
	if err != nil {
		return model.Member{}, errors.Wrapf(mapErr(err), "member %d", m.ID)
	}
	return member, nil
}

// SetMemberStatus moves a member to status. A nil expiration keeps the stored one.
// Approved members without a membership ID get the next one.
func (r *repository) SetMemberStatus(ctx context.Context, id int64, status model.MemberStatus, expiration *time.Time) (model.Member, error) {
	q := `
update users
    set status = @status,
        expiration_date = coalesce(@expiration_date, expiration_date),
        membership_id = case when @status = 'approved'
                             then coalesce(membership_id, ` + membershipID + `)
                             else membership_id end
where id = @id
returning ` + columns(memberColumns)
	args := pgx.NamedArgs{
		"id":              id,
		"status":          status,
		"expiration_date": expiration,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Member{}, err
	}
	defer rows.Close()

	member, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Member])
	if err != nil {
		return model.Member{}, errors.Wrapf(mapErr(err), "member %d", id)
	}
	return member, nil
}

// ExpireMembers marks approved members whose membership lapsed before now.
func (r *repository) ExpireMembers(ctx context.Context, now time.Time) (int64, error) {
	q := `
update users
    set status = 'expired'
where status = 'approved' and role = 'member' and expiration_date < @now`
	tag, err := r.conn(ctx).Exec(ctx, q, pgx.NamedArgs{"now": now})
	if err != nil {
		return 0, mapErr(err)
	}
	return tag.RowsAffected(), nil
}
