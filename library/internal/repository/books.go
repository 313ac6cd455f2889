package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

var bookColumns = []string{
	"id", "title", "author", "isbn", "genre", "category", "publication_year",
	"availability_status", "quantity", "cover_image", "description", "created_at",
}

func (r *repository) getBook(ctx context.Context, id int64, forUpdate bool) (model.Book, error) {
	b := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id, "deleted_at": nil})
	if forUpdate {
		b = b.Suffix("for update")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return model.Book{}, err
	}

	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.Book{}, errors.Wrapf(mapErr(err), "book %d", id)
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return r.getBook(ctx, id, false)
}

// GetBookForUpdate locks the book row until the surrounding transaction ends.
func (r *repository) GetBookForUpdate(ctx context.Context, id int64) (model.Book, error) {
	return r.getBook(ctx, id, true)
}

func bookFilter(b sq.SelectBuilder, f model.BookFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"deleted_at": nil})
	if f.Search != "" {
		like := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": like},
			sq.ILike{"author": like},
			sq.ILike{"isbn": like},
		})
	}
	if f.Genre != "" {
		b = b.Where(sq.Eq{"genre": f.Genre})
	}
	if f.Availability != "" {
		b = b.Where(sq.Eq{"availability_status": f.Availability})
	}
	return b
}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	total, err := r.count(ctx, bookFilter(qb.Select("count(*)").From(booksTableName), f))
	if err != nil {
		return model.ListBooks{}, err
	}

	q := bookFilter(qb.Select(bookColumns...).From(booksTableName), f).
		OrderBy("title", "id")
	if f.Page != 0 && f.PageSize != 0 {
		q = q.Limit(uint64(f.PageSize)).Offset(uint64(f.Offset()))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}

	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return model.ListBooks{}, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.ListBooks{}, errors.Wrap(mapErr(err), "pgx.CollectRows")
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.PageSize,
			TotalElements: total,
		},
		Items: books,
	}, nil
}

func (r *repository) CreateBook(ctx context.Context, b model.Book) (model.Book, error) {
	q := `
insert into books (title, author, isbn, genre, category, publication_year, availability_status, quantity, cover_image, description)
values (@title, @author, @isbn, @genre, @category, @publication_year, @availability_status, @quantity, @cover_image, @description)
returning ` + columns(bookColumns)
	args := pgx.NamedArgs{
		"title":               b.Title,
		"author":              b.Author,
		"isbn":                b.ISBN,
		"genre":               b.Genre,
		"category":            b.Category,
		"publication_year":    b.PublicationYear,
		"availability_status": b.AvailabilityStatus,
		"quantity":            b.Quantity,
		"cover_image":         b.CoverImage,
		"description":         b.Description,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.Book{}, mapErr(err)
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, b model.Book) (model.Book, error) {
	q := `
update books
    set title = @title, author = @author, isbn = @isbn, genre = @genre, category = @category,
        publication_year = @publication_year, quantity = @quantity,
        cover_image = @cover_image, description = @description
where id = @id and deleted_at is null
returning ` + columns(bookColumns)
	args := pgx.NamedArgs{
		"id":               b.ID,
		"title":            b.Title,
		"author":           b.Author,
		"isbn":             b.ISBN,
		"genre":            b.Genre,
		"category":         b.Category,
		"publication_year": b.PublicationYear,
		"quantity":         b.Quantity,
		"cover_image":      b.CoverImage,
		"description":      b.Description,
	}
	rows, err := r.queryAll(ctx, q, args)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.Book{}, errors.Wrapf(mapErr(err), "book %d", b.ID)
	}
	return book, nil
}

// DeleteBook withdraws the book from the catalog. The row stays so loan history keeps its title.
func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	q := `update books set deleted_at = now() where id = $1 and deleted_at is null`
	tag, err := r.conn(ctx).Exec(ctx, q, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	return nil
}

func (r *repository) SetBookAvailability(ctx context.Context, id int64, status model.AvailabilityStatus) error {
	q := `update books set availability_status = @status where id = @id and deleted_at is null`
	tag, err := r.conn(ctx).Exec(ctx, q, pgx.NamedArgs{"id": id, "status": status})
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	return nil
}

func (r *repository) ListGenres(ctx context.Context) ([]string, error) {
	rows, err := r.queryAll(ctx, `select distinct genre from books where genre <> '' and deleted_at is null order by genre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapErr(err)
	}
	return genres, nil
}

func (r *repository) LogInventory(ctx context.Context, u model.InventoryUpdate) error {
	q := `
insert into inventory_updates (book_id, action, quantity_before, quantity_after, updated_by)
values (@book_id, @action, @before, @after, @updated_by)`
	_, err := r.conn(ctx).Exec(ctx, q, pgx.NamedArgs{
		"book_id":    u.BookID,
		"action":     u.Action,
		"before":     u.QuantityBefore,
		"after":      u.QuantityAfter,
		"updated_by": u.UpdatedBy,
	})
	return mapErr(err)
}

func (r *repository) ListInventory(ctx context.Context, bookID int64) ([]model.InventoryUpdate, error) {
	query, args, err := qb.Select("id", "book_id", "action", "quantity_before", "quantity_after", "updated_by", "created_at").
		From(inventoryTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("created_at desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.queryAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.InventoryUpdate])
	if err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}
