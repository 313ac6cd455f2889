package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

// Search runs a substring search over one kind of record.
func (s *Service) Search(ctx context.Context, typ model.SearchType, query string, limit int) (model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.SearchResult{}, errors.Wrap(errs.ErrValidation, "empty search query")
	}
	if typ == "" {
		typ = model.SearchBooks
	}
	if !typ.Valid() {
		return model.SearchResult{}, errors.Wrapf(errs.ErrValidation, "unknown search type %q", typ)
	}
	page := model.Paging{Page: 1, PageSize: reportLimit(limit)}

	res := model.SearchResult{Type: typ}
	switch typ {
	case model.SearchBooks:
		books, err := s.repo.ListBooks(ctx, model.BookFilter{Search: query, Paging: page})
		if err != nil {
			return model.SearchResult{}, err
		}
		res.Books = books.Items
	case model.SearchMembers:
		members, err := s.repo.ListMembers(ctx, model.MemberFilter{Search: query, Paging: page})
		if err != nil {
			return model.SearchResult{}, err
		}
		res.Members = members.Items
	case model.SearchTransactions:
		loans, err := s.listLoans(ctx, model.LoanFilter{Search: query, Paging: page})
		if err != nil {
			return model.SearchResult{}, err
		}
		res.Transactions = loans.Items
	}
	return res, nil
}

// SearchOpenLibrary looks titles up in Open Library for cataloguing.
func (s *Service) SearchOpenLibrary(ctx context.Context, query string, limit int) ([]model.OpenLibraryBook, error) {
	if s.books == nil {
		return nil, errors.Wrap(errs.ErrUnavailable, "external catalog is not configured")
	}
	return s.books.Search(ctx, query, limit)
}
