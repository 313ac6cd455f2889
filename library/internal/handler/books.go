package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	pg, err := paging(c)
	if err != nil {
		return err
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), model.BookFilter{
		Search:       c.QueryParam("search"),
		Genre:        c.QueryParam("genre"),
		Availability: model.AvailabilityStatus(c.QueryParam("availability")),
		Paging:       pg,
	})
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ListGenres(c echo.Context) error {
	genres, err := h.librarySvc.ListGenres(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, genres)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteBook(c.Request().Context(), id); err != nil {
		return h.fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SetAvailability(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Status model.AvailabilityStatus `json:"status" validate:"required"`
	}
	if err := bind(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.SetAvailability(c.Request().Context(), id, req.Status)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListInventory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	updates, err := h.librarySvc.ListInventory(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, updates)
}

func (h *Handler) SearchOpenLibrary(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}
	books, err := h.librarySvc.SearchOpenLibrary(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, books)
}
