package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
)

const searchResponse = `{
  "numFound": 3,
  "docs": [
    {
      "title": "The Hobbit",
      "author_name": ["J.R.R. Tolkien"],
      "isbn": ["0261102214", "9780261102217"],
      "first_publish_year": 1937,
      "subject": ["Accessible book", "Fantasy fiction", "Hobbits"],
      "publisher": ["HarperCollins"],
      "number_of_pages_median": 310,
      "language": ["eng"],
      "description": {"type": "/type/text", "value": "A hobbit goes there and back again."}
    },
    {
      "title": "No ISBN here",
      "author_name": ["Someone"]
    },
    {
      "title": "Anonymous Pamphlet",
      "isbn": ["1234567890"],
      "subject": ["A very long subject name that exceeds the limit"],
      "description": "Plain text description"
    }
  ]
}`

func TestClient_Search(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/search.json" || q.Get("q") != "hobbit" || q.Get("limit") != "5" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second, zap.NewNop())
	books, err := c.Search(context.Background(), "hobbit", 5)
	require.NoError(t, err)
	require.Equal(t, []model.OpenLibraryBook{
		{
			Title:           "The Hobbit",
			Author:          "J.R.R. Tolkien",
			ISBN:            "9780261102217",
			Genre:           "Fantasy fiction",
			PublicationYear: 1937,
			Description:     "A hobbit goes there and back again.",
			CoverImage:      "https://covers.openlibrary.org/b/isbn/9780261102217-M.jpg",
			Publisher:       "HarperCollins",
			Pages:           310,
			Language:        "eng",
		},
		{
			Title:       "Anonymous Pamphlet",
			Author:      "Unknown Author",
			ISBN:        "1234567890",
			Genre:       "General",
			Description: "Plain text description",
			CoverImage:  "https://covers.openlibrary.org/b/isbn/1234567890-M.jpg",
		},
	}, books)
}

func TestClient_Search_EmptyQuery(t *testing.T) {
	t.Parallel()
	c := NewClient("http://127.0.0.1:0", time.Second, zap.NewNop())
	_, err := c.Search(context.Background(), "  ", 5)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestClient_Search_Unavailable(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	for i := 0; i < 10; i++ {
		_, err := c.Search(context.Background(), "hobbit", 5)
		require.ErrorIs(t, err, errs.ErrUnavailable)
	}
	// the breaker opens after half of its window failed
	require.Equal(t, int32(5), atomic.LoadInt32(&calls))
}
