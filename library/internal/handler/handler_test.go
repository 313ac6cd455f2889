package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/library/internal/errs"
	"github.com/Astemirdum/library-circulation/library/internal/handler"
	"github.com/Astemirdum/library-circulation/library/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"

	service_mocks "github.com/Astemirdum/library-circulation/library/internal/handler/mocks"
)

type openSessions struct{}

func (openSessions) Active(context.Context, string) (bool, error) { return true, nil }

var tokens = auth.NewManager(auth.Config{JWTSecret: "test", TokenTTL: time.Hour})

func bearer(t *testing.T, id int64, role model.Role) string {
	t.Helper()
	token, _, err := tokens.Issue(auth.Profile{UserID: id, Username: "user", Role: string(role)}, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

func newRouter(t *testing.T) (*echo.Echo, *service_mocks.MockLibraryService) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLibraryService(c)
	h := handler.New(svc, tokens, openSessions{}, zap.NewNop())
	return h.NewRouter(), svc
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func serve(e *echo.Echo, method, target, authorization, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		r.Header.Set(echo.HeaderAuthorization, authorization)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	w := serve(e, http.MethodGet, "/manage/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}

func TestHandler_IssueLoan(t *testing.T) {
	t.Parallel()
	borrow := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	due := borrow.AddDate(0, 0, 14)

	type input struct {
		body string
		role model.Role
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), model.IssueLoanRequest{MemberID: 1, BookID: 2}).
					Return(model.Loan{ID: 10, MemberID: 1, BookID: 2, BorrowDate: borrow, DueDate: due, Status: model.LoanActive}, nil)
			},
			input: input{body: `{"memberID":1,"bookID":2}`, role: model.RoleLibrarian},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"loanID":10,"borrowDate":"2024-03-15T10:00:00Z","dueDate":"2024-03-29T10:00:00Z"}`,
			},
		},
		{
			name:         "err. book required",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{body: `{"memberID":1}`, role: model.RoleAdmin},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'IssueLoanRequest.BookID' Error:Field validation for 'BookID' failed on the 'required' tag"}`,
			},
		},
		{
			name: "err. book unavailable",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), model.IssueLoanRequest{MemberID: 1, BookID: 2}).
					Return(model.Loan{}, errors.Wrap(errs.ErrConflict, "book 2 is checked_out"))
			},
			input: input{body: `{"memberID":1,"bookID":2}`, role: model.RoleLibrarian},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book 2 is checked_out: conflict"}`,
			},
		},
		{
			name: "err. member not approved",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), gomock.Any()).
					Return(model.Loan{}, errors.Wrap(errs.ErrInvalidState, "member 1 is pending"))
			},
			input: input{body: `{"memberID":1,"bookID":2}`, role: model.RoleLibrarian},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"member 1 is pending: invalid state"}`,
			},
		},
		{
			name:         "err. members cannot issue",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			input:        input{body: `{"memberID":1,"bookID":2}`, role: model.RoleMember},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"Forbidden"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					IssueLoan(gomock.Any(), gomock.Any()).
					Return(model.Loan{}, errors.New("db internal"))
			},
			input: input{body: `{"memberID":1,"bookID":2}`, role: model.RoleLibrarian},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			w := serve(e, http.MethodPost, "/api/v1/loans/issue", bearer(t, 5, tt.input.role), tt.input.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		authorization string
		expectedBody  string
	}{
		{name: "no header", expectedBody: `{"message":"No Authorization Header"}`},
		{name: "not bearer", authorization: "Basic abc", expectedBody: `{"message":"Invalid Authorization Header"}`},
		{name: "bad token", authorization: "Bearer abc", expectedBody: `{"message":"JwtAccessDenied"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _ := newRouter(t)
			w := serve(e, http.MethodGet, "/api/v1/books", tt.authorization, "")
			require.Equal(t, http.StatusUnauthorized, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ReturnLoan(t *testing.T) {
	t.Parallel()
	fineID := int64(33)

	t.Run("ok with fine", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		res := model.ReturnResult{IsOverdue: true, DaysOverdue: 10, FineAmount: decimal.RequireFromString("5.00"), FineID: &fineID}
		svc.EXPECT().ReturnLoan(gomock.Any(), int64(10)).Return(res, nil)

		w := serve(e, http.MethodPost, "/api/v1/loans/return/10", bearer(t, 5, model.RoleLibrarian), "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, mustJSON(t, res), strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("err. already returned", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().ReturnLoan(gomock.Any(), int64(10)).Return(model.ReturnResult{}, errors.Wrap(errs.ErrInvalidState, "loan 10 already returned"))

		w := serve(e, http.MethodPost, "/api/v1/loans/return/10", bearer(t, 5, model.RoleLibrarian), "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("err. bad id", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := serve(e, http.MethodPost, "/api/v1/loans/return/abc", bearer(t, 5, model.RoleLibrarian), "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, `{"message":"loanID is invalid"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_RenewLoan(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	due := time.Date(2024, 4, 12, 10, 0, 0, 0, time.UTC)
	svc.EXPECT().RenewLoan(gomock.Any(), int64(10)).Return(model.Loan{ID: 10, DueDate: due, RenewalCount: 1}, nil)

	w := serve(e, http.MethodPost, "/api/v1/loans/renew/10", bearer(t, 5, model.RoleAdmin), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"newDueDate":"2024-04-12T10:00:00Z","renewalCount":1}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_PayFine(t *testing.T) {
	t.Parallel()
	amount := decimal.RequireFromString("2.5")

	tests := []struct {
		name         string
		body         string
		mockBehavior func(r *service_mocks.MockLibraryService)
		expectedCode int
	}{
		{
			name: "partial",
			body: `{"amount":"2.5","reference":"cash"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().PayFine(gomock.Any(), int64(33), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, req model.PayFineRequest) (model.PayFineResponse, error) {
						if req.Amount == nil || !req.Amount.Equal(amount) || req.Reference != "cash" {
							return model.PayFineResponse{}, errors.New("unexpected request")
						}
						return model.PayFineResponse{PaymentID: 1, Status: model.FinePending, Balance: decimal.RequireFromString("2.5")}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "full balance",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().PayFine(gomock.Any(), int64(33), model.PayFineRequest{}).
					Return(model.PayFineResponse{PaymentID: 2, Status: model.FinePaid}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "err. overpayment",
			body: `{"amount":"100"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().PayFine(gomock.Any(), int64(33), gomock.Any()).
					Return(model.PayFineResponse{}, errors.Wrap(errs.ErrValidation, "payment 100 exceeds balance 5"))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "err. not found",
			body: `{}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().PayFine(gomock.Any(), int64(33), gomock.Any()).
					Return(model.PayFineResponse{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, "/api/v1/fees/33/pay", bearer(t, 5, model.RoleLibrarian), tt.body)
			require.Equal(t, tt.expectedCode, w.Code, w.Body.String())
		})
	}
}

func TestHandler_AddFine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		mockBehavior func(r *service_mocks.MockLibraryService)
		expectedCode int
	}{
		{
			name: "ok",
			body: `{"memberID":7,"amount":"3.00"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().AddManualFine(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req model.AddFineRequest) (model.Fine, error) {
						if req.MemberID != 7 || req.Amount == nil || !req.Amount.Equal(decimal.RequireFromString("3")) {
							return model.Fine{}, errors.New("unexpected request")
						}
						return model.Fine{ID: 9, MemberID: 7, Amount: *req.Amount, Status: model.FinePending}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "err. no amount",
			body:         `{"memberID":7}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "err. empty body",
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, "/api/v1/fees/add", bearer(t, 5, model.RoleLibrarian), tt.body)
			require.Equal(t, tt.expectedCode, w.Code, w.Body.String())
		})
	}
}

func TestHandler_MemberSelfAccess(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		callerID     int64
		role         model.Role
		expectedCode int
	}{
		{name: "own loans", callerID: 7, role: model.RoleMember, expectedCode: http.StatusOK},
		{name: "someone else", callerID: 8, role: model.RoleMember, expectedCode: http.StatusForbidden},
		{name: "staff", callerID: 1, role: model.RoleLibrarian, expectedCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			if tt.expectedCode == http.StatusOK {
				svc.EXPECT().CurrentLoans(gomock.Any(), int64(7)).Return([]model.LoanDetails{}, nil)
			}
			w := serve(e, http.MethodGet, "/api/v1/loans/member/7/current", bearer(t, tt.callerID, tt.role), "")
			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandler_BorrowingTrends(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	points := []model.TrendPoint{{Day: from, Checkouts: 3, Returns: 1}}
	svc.EXPECT().BorrowingTrends(gomock.Any(), model.DateRange{From: from, To: to}).Return(points, nil)

	w := serve(e, http.MethodGet, "/api/v1/reports/borrowing-trends?from=2024-03-01&to=2024-03-07", bearer(t, 1, model.RoleAdmin), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, mustJSON(t, points), strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodGet, "/api/v1/reports/borrowing-trends?from=yesterday", bearer(t, 1, model.RoleAdmin), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()

	t.Run("members search is staff only", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := serve(e, http.MethodGet, "/api/v1/search?type=members&q=ann", bearer(t, 7, model.RoleMember), "")
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("books", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().Search(gomock.Any(), model.SearchType(""), "dune", 5).
			Return(model.SearchResult{Type: model.SearchBooks, Books: []model.Book{{ID: 2, Title: "Dune"}}}, nil)
		w := serve(e, http.MethodGet, fmt.Sprintf("/api/v1/search?q=%s&limit=%d", "dune", 5), bearer(t, 7, model.RoleMember), "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}
