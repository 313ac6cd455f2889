package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/auth"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type sessions struct {
	open map[string]bool
	err  error
}

func (s sessions) Active(_ context.Context, sid string) (bool, error) {
	return s.open[sid], s.err
}

func TestJwtAuthentication(t *testing.T) {
	t.Parallel()
	tokens := auth.NewManager(auth.Config{JWTSecret: "secret", TokenTTL: time.Hour})
	token, claims, err := tokens.Issue(auth.Profile{UserID: 3, Username: "jdoe", Role: "librarian"}, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name     string
		authz    string
		sessions sessions
		wantCode int
	}{
		{
			name:     "ok",
			authz:    "Bearer " + token,
			sessions: sessions{open: map[string]bool{claims.ID: true}},
			wantCode: http.StatusOK,
		},
		{
			name:     "no header",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "not bearer",
			authz:    "Basic abc",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "bad token",
			authz:    "Bearer abc.def.ghi",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "revoked session",
			authz:    "Bearer " + token,
			sessions: sessions{open: map[string]bool{}},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "session store down",
			authz:    "Bearer " + token,
			sessions: sessions{err: errors.New("dial tcp: refused")},
			wantCode: http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				profile, err := auth.GetProfile(c.Request().Context())
				if err != nil {
					return err
				}
				return c.String(http.StatusOK, profile.Username)
			}, md.JwtAuthentication(tokens, tt.sessions))

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authz != "" {
				req.Header.Set(md.AuthorizationHeader, tt.authz)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				require.Equal(t, "jdoe", rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		profile  *auth.Profile
		wantCode int
	}{
		{name: "librarian", profile: &auth.Profile{UserID: 1, Role: "librarian"}, wantCode: http.StatusOK},
		{name: "member", profile: &auth.Profile{UserID: 2, Role: "member"}, wantCode: http.StatusForbidden},
		{name: "anonymous", wantCode: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			withProfile := func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					if tt.profile != nil {
						req := c.Request()
						c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), *tt.profile, "sid")))
					}
					return next(c)
				}
			}
			e.GET("/staff", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, withProfile, md.RequireRole("librarian", "admin"))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/staff", nil))
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
