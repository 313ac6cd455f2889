package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

func (h *Handler) IssueLoan(c echo.Context) error {
	var req model.IssueLoanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	loan, err := h.librarySvc.IssueLoan(c.Request().Context(), req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, model.IssueLoanResponse{
		LoanID:     loan.ID,
		BorrowDate: loan.BorrowDate,
		DueDate:    loan.DueDate,
	})
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	id, err := paramID(c, "loanID")
	if err != nil {
		return err
	}
	res, err := h.librarySvc.ReturnLoan(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) RenewLoan(c echo.Context) error {
	id, err := paramID(c, "loanID")
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.RenewLoan(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, model.RenewLoanResponse{
		NewDueDate:   loan.DueDate,
		RenewalCount: loan.RenewalCount,
	})
}

func (h *Handler) GetLoan(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) ListLoans(c echo.Context) error {
	pg, err := paging(c)
	if err != nil {
		return err
	}
	memberID, err := queryInt64(c, "memberID")
	if err != nil {
		return err
	}
	bookID, err := queryInt64(c, "bookID")
	if err != nil {
		return err
	}
	loans, err := h.librarySvc.ListLoans(c.Request().Context(), model.LoanFilter{
		Search:   c.QueryParam("search"),
		Status:   model.LoanStatus(c.QueryParam("status")),
		MemberID: memberID,
		BookID:   bookID,
		Paging:   pg,
	})
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) CurrentLoans(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := allowSelf(c, id); err != nil {
		return err
	}
	loans, err := h.librarySvc.CurrentLoans(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, loans)
}
