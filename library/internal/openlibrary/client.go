package openlibrary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
)

const (
	searchFields = "title,author_name,isbn,first_publish_year,subject,cover_edition_key,edition_key," +
		"language,number_of_pages_median,publisher,description"
	coversURL    = "https://covers.openlibrary.org/b"
	maxBodyBytes = 4 << 20
)

type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      circuit_breaker.CircuitBreaker
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		log:     log.Named("openlibrary"),
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		cb:      circuit_breaker.New(10, 30*time.Second, 0.5, 3),
	}
}

// Search queries Open Library and returns hits that carry an ISBN.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]model.OpenLibraryBook, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.Wrap(errs.ErrValidation, "search query is required")
	}
	if limit <= 0 {
		limit = 20
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("fields", searchFields)

	var body []byte
	err := c.cb.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+q.Encode(), http.NoBody)
		if err != nil {
			return err
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("open library status %d", resp.StatusCode)
		}
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		return err
	})
	if err != nil {
		c.log.Warn("search", zap.String("query", query), zap.Error(err))
		return nil, errors.Wrap(errs.ErrUnavailable, err.Error())
	}
	return parseSearch(body), nil
}

func parseSearch(body []byte) []model.OpenLibraryBook {
	docs := gjson.GetBytes(body, "docs").Array()
	books := make([]model.OpenLibraryBook, 0, len(docs))
	for _, doc := range docs {
		isbn := pickISBN(doc.Get("isbn").Array())
		if isbn == "" {
			continue
		}
		books = append(books, model.OpenLibraryBook{
			Title:           doc.Get("title").String(),
			Author:          firstOr(doc.Get("author_name"), "Unknown Author"),
			ISBN:            isbn,
			Genre:           pickGenre(doc.Get("subject").Array()),
			PublicationYear: int(doc.Get("first_publish_year").Int()),
			Description:     description(doc.Get("description")),
			CoverImage:      coverURL(isbn),
			Publisher:       firstOr(doc.Get("publisher"), ""),
			Pages:           int(doc.Get("number_of_pages_median").Int()),
			Language:        firstOr(doc.Get("language"), ""),
		})
	}
	return books
}

// pickISBN prefers ISBN-13, then ISBN-10, then whatever comes first.
func pickISBN(isbns []gjson.Result) string {
	var isbn10 string
	for _, r := range isbns {
		s := r.String()
		switch len(s) {
		case 13:
			return s
		case 10:
			if isbn10 == "" {
				isbn10 = s
			}
		}
	}
	if isbn10 != "" {
		return isbn10
	}
	if len(isbns) > 0 {
		return isbns[0].String()
	}
	return ""
}

func pickGenre(subjects []gjson.Result) string {
	for _, r := range subjects {
		s := r.String()
		if len(s) >= 30 ||
			strings.Contains(s, "Accessible book") ||
			strings.Contains(s, "Protected DAISY") ||
			strings.Contains(s, "In library") {
			continue
		}
		return s
	}
	return "General"
}

// description is either a plain string or an object with a value field.
func description(r gjson.Result) string {
	if r.IsObject() {
		return r.Get("value").String()
	}
	return r.String()
}

func coverURL(isbn string) string {
	return fmt.Sprintf("%s/isbn/%s-M.jpg", coversURL, strings.ReplaceAll(isbn, "-", ""))
}

func firstOr(r gjson.Result, fallback string) string {
	if first := r.Get("0"); first.Exists() && first.String() != "" {
		return first.String()
	}
	return fallback
}
