package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

func (h *Handler) Dashboard(c echo.Context) error {
	days, err := queryInt(c, "days")
	if err != nil {
		return err
	}
	d, err := h.librarySvc.Dashboard(c.Request().Context(), days)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) BorrowingTrends(c echo.Context) error {
	rng, err := dateRange(c)
	if err != nil {
		return err
	}
	points, err := h.librarySvc.BorrowingTrends(c.Request().Context(), rng)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *Handler) PopularBooks(c echo.Context) error {
	rng, limit, err := rangeAndLimit(c)
	if err != nil {
		return err
	}
	books, err := h.librarySvc.PopularBooks(c.Request().Context(), rng, limit)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ActiveMembers(c echo.Context) error {
	rng, limit, err := rangeAndLimit(c)
	if err != nil {
		return err
	}
	members, err := h.librarySvc.ActiveMembers(c.Request().Context(), rng, limit)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) FinesReport(c echo.Context) error {
	rep, err := h.librarySvc.FinesReport(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *Handler) ListEvents(c echo.Context) error {
	rng, limit, err := rangeAndLimit(c)
	if err != nil {
		return err
	}
	events, err := h.librarySvc.ListEvents(c.Request().Context(), rng, limit)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, events)
}

// Search looks up books for everyone. Members and transactions are staff only.
func (h *Handler) Search(c echo.Context) error {
	typ := model.SearchType(c.QueryParam("type"))
	if typ != "" && typ != model.SearchBooks {
		if err := requireStaff(c); err != nil {
			return err
		}
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	res, err := h.librarySvc.Search(c.Request().Context(), typ, c.QueryParam("q"), limit)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, res)
}

func rangeAndLimit(c echo.Context) (model.DateRange, int, error) {
	rng, err := dateRange(c)
	if err != nil {
		return model.DateRange{}, 0, err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return model.DateRange{}, 0, err
	}
	return rng, limit, nil
}
