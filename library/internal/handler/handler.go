package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/metrics"
	md "github.com/Astemirdum/library-circulation/pkg/middleware"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	_ "github.com/Astemirdum/library-circulation/swagger"
)

var staffRoles = []string{string(model.RoleLibrarian), string(model.RoleAdmin)}

type Handler struct {
	librarySvc LibraryService
	tokens     *auth.Manager
	sessions   md.SessionChecker
	log        *zap.Logger
}

func New(librarySvc LibraryService, tokens *auth.Manager, sessions md.SessionChecker, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		tokens:     tokens,
		sessions:   sessions,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.Metrics(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)

	user := api.Group("", md.JwtAuthentication(h.tokens, h.sessions))
	user.POST("/auth/logout", h.Logout)
	user.GET("/auth/me", h.Me)

	user.GET("/books", h.ListBooks)
	user.GET("/books/genres", h.ListGenres)
	user.GET("/books/:id", h.GetBook)
	user.GET("/members/types", h.MembershipTypes)
	user.GET("/members/:id", h.GetMember)
	user.GET("/members/:id/history", h.MemberHistory)
	user.GET("/loans/member/:id/current", h.CurrentLoans)
	user.GET("/fees/member/:id", h.MemberFines)
	user.GET("/fees/member/:id/summary", h.FineSummary)
	user.GET("/fees/:id", h.GetFine)
	user.GET("/search", h.Search)

	staff := user.Group("", md.RequireRole(staffRoles...))
	staff.POST("/auth/approve/:id", h.ApproveMember)

	staff.POST("/books", h.CreateBook)
	staff.PUT("/books/:id", h.UpdateBook)
	staff.DELETE("/books/:id", h.DeleteBook)
	staff.PUT("/books/:id/availability", h.SetAvailability)
	staff.GET("/books/:id/inventory", h.ListInventory)
	staff.GET("/openlibrary/search", h.SearchOpenLibrary)

	staff.GET("/members", h.ListMembers)
	staff.POST("/members", h.CreateMember)
	staff.PUT("/members/:id", h.UpdateMember)
	staff.POST("/members/:id/deactivate", h.DeactivateMember)
	staff.POST("/members/:id/reactivate", h.ReactivateMember)

	staff.GET("/loans", h.ListLoans)
	staff.GET("/loans/:id", h.GetLoan)
	staff.POST("/loans/issue", h.IssueLoan)
	staff.POST("/loans/return/:loanID", h.ReturnLoan)
	staff.POST("/loans/renew/:loanID", h.RenewLoan)

	staff.GET("/fees/pending", h.PendingFines)
	staff.POST("/fees/add", h.AddFine)
	staff.POST("/fees/:id/pay", h.PayFine)
	staff.PUT("/fees/:id", h.UpdateFine)
	staff.DELETE("/fees/:id", h.DeleteFine)

	staff.GET("/reports/dashboard", h.Dashboard)
	staff.GET("/reports/borrowing-trends", h.BorrowingTrends)
	staff.GET("/reports/popular-books", h.PopularBooks)
	staff.GET("/reports/active-members", h.ActiveMembers)
	staff.GET("/reports/fines", h.FinesReport)
	staff.GET("/reports/events", h.ListEvents)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// fail turns a service error into the HTTP error for its kind.
func (h *Handler) fail(err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrInvalidState):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrUnavailable):
		code = http.StatusServiceUnavailable
	default:
		h.log.Error("internal error", zap.Error(err))
	}
	return echo.NewHTTPError(code, err.Error())
}

// bind decodes and validates the request. A body of unknown length that turns out
// empty decodes as an empty request.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil && !emptyBody(err) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func emptyBody(err error) bool {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Internal != nil {
		err = he.Internal
	}
	return errors.Is(err, io.EOF)
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is invalid", name))
	}
	return id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is invalid", name))
	}
	return n, nil
}

func queryInt64(c echo.Context, name string) (int64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is invalid", name))
	}
	return n, nil
}

func paging(c echo.Context) (model.Paging, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return model.Paging{}, err
	}
	size, err := queryInt(c, "size")
	if err != nil {
		return model.Paging{}, err
	}
	return model.Paging{Page: page, PageSize: size}, nil
}

// dateRange reads from/to. A plain date in to covers that whole day.
func dateRange(c echo.Context) (model.DateRange, error) {
	var rng model.DateRange
	for _, p := range []struct {
		name string
		dst  *time.Time
		end  bool
	}{
		{name: "from", dst: &rng.From},
		{name: "to", dst: &rng.To, end: true},
	} {
		v := c.QueryParam(p.name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			if t, err = time.Parse(time.DateOnly, v); err != nil {
				return model.DateRange{}, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is invalid", p.name))
			}
			if p.end {
				t = t.AddDate(0, 0, 1)
			}
		}
		*p.dst = t
	}
	return rng, nil
}

// allowSelf lets members reach only their own records. Staff reach any.
func allowSelf(c echo.Context, memberID int64) error {
	p, err := auth.GetProfile(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if model.Role(p.Role).IsStaff() || p.UserID == memberID {
		return nil
	}
	return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
}

func requireStaff(c echo.Context) error {
	p, err := auth.GetProfile(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if !model.Role(p.Role).IsStaff() {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	}
	return nil
}
