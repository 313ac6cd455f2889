package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
)

// actor is the staff member behind the request, if known.
func actor(ctx context.Context) *int64 {
	p, err := auth.GetProfile(ctx)
	if err != nil {
		return nil
	}
	return &p.UserID
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, f model.BookFilter) (model.ListBooks, error) {
	if f.Availability != "" && !f.Availability.Valid() {
		return model.ListBooks{}, errors.Wrapf(errs.ErrValidation, "unknown availability %q", f.Availability)
	}
	return s.repo.ListBooks(ctx, f)
}

func (s *Service) ListGenres(ctx context.Context) ([]string, error) {
	return s.repo.ListGenres(ctx)
}

func (s *Service) ListInventory(ctx context.Context, bookID int64) ([]model.InventoryUpdate, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.repo.ListInventory(ctx, bookID)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	b := model.Book{
		Title:              req.Title,
		Author:             req.Author,
		ISBN:               req.ISBN,
		Genre:              req.Genre,
		Category:           req.Category,
		PublicationYear:    req.PublicationYear,
		AvailabilityStatus: model.AvailabilityAvailable,
		Quantity:           1,
		CoverImage:         req.CoverImage,
		Description:        req.Description,
	}
	if req.Quantity != nil {
		b.Quantity = *req.Quantity
	}
	if b.CoverImage == "" {
		b.CoverImage = model.CoverURL(b.ISBN)
	}

	var book model.Book
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.repo.CreateBook(ctx, b)
		if err != nil {
			return err
		}
		return s.repo.LogInventory(ctx, model.InventoryUpdate{
			BookID:        book.ID,
			Action:        model.InventoryActionAdd,
			QuantityAfter: book.Quantity,
			UpdatedBy:     actor(ctx),
		})
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	var book model.Book
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		cur, err := s.repo.GetBookForUpdate(ctx, id)
		if err != nil {
			return err
		}
		next := cur
		if req.Title != nil {
			next.Title = *req.Title
		}
		if req.Author != nil {
			next.Author = *req.Author
		}
		if req.ISBN != nil {
			next.ISBN = *req.ISBN
		}
		if req.Genre != nil {
			next.Genre = *req.Genre
		}
		if req.Category != nil {
			next.Category = *req.Category
		}
		if req.PublicationYear != nil {
			next.PublicationYear = req.PublicationYear
		}
		if req.Quantity != nil {
			next.Quantity = *req.Quantity
		}
		if req.CoverImage != nil {
			next.CoverImage = *req.CoverImage
		}
		if req.Description != nil {
			next.Description = *req.Description
		}

		book, err = s.repo.UpdateBook(ctx, next)
		if err != nil {
			return err
		}
		if book.Quantity == cur.Quantity {
			return nil
		}
		return s.repo.LogInventory(ctx, model.InventoryUpdate{
			BookID:         id,
			Action:         model.InventoryActionUpdate,
			QuantityBefore: cur.Quantity,
			QuantityAfter:  book.Quantity,
			UpdatedBy:      actor(ctx),
		})
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}

// DeleteBook removes a book that is not out on loan.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.InTx(ctx, func(ctx context.Context) error {
		book, err := s.repo.GetBookForUpdate(ctx, id)
		if err != nil {
			return err
		}
		active, err := s.repo.HasActiveLoan(ctx, id)
		if err != nil {
			return err
		}
		if active {
			return errors.Wrapf(errs.ErrConflict, "book %d has an active loan", id)
		}
		if err := s.repo.DeleteBook(ctx, id); err != nil {
			return err
		}
		return s.repo.LogInventory(ctx, model.InventoryUpdate{
			BookID:         id,
			Action:         model.InventoryActionDelete,
			QuantityBefore: book.Quantity,
			UpdatedBy:      actor(ctx),
		})
	})
}

// SetAvailability lets staff put a book on hold or release it.
// checked_out is reserved to loan issue, and a book out on loan cannot be made available.
func (s *Service) SetAvailability(ctx context.Context, id int64, status model.AvailabilityStatus) (model.Book, error) {
	if !status.Valid() {
		return model.Book{}, errors.Wrapf(errs.ErrValidation, "unknown availability %q", status)
	}
	if status == model.AvailabilityCheckedOut {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "checked_out is set by issuing a loan")
	}

	var book model.Book
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.repo.GetBookForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if status == model.AvailabilityAvailable {
			active, err := s.repo.HasActiveLoan(ctx, id)
			if err != nil {
				return err
			}
			if active {
				return errors.Wrapf(errs.ErrConflict, "book %d has an active loan", id)
			}
		}
		if err := s.repo.SetBookAvailability(ctx, id, status); err != nil {
			return err
		}
		book.AvailabilityStatus = status
		return nil
	})
	if err != nil {
		return model.Book{}, err
	}
	return book, nil
}
