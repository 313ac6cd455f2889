package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

func (h *Handler) PendingFines(c echo.Context) error {
	fines, err := h.librarySvc.PendingFines(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) MemberFines(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := allowSelf(c, id); err != nil {
		return err
	}
	fines, err := h.librarySvc.MemberFines(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) FineSummary(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := allowSelf(c, id); err != nil {
		return err
	}
	sum, err := h.librarySvc.FineSummary(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) GetFine(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	fine, err := h.librarySvc.GetFine(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	if err := allowSelf(c, fine.MemberID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) PayFine(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.PayFineRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resp, err := h.librarySvc.PayFine(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddFine(c echo.Context) error {
	var req model.AddFineRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	fine, err := h.librarySvc.AddManualFine(c.Request().Context(), req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, fine)
}

func (h *Handler) UpdateFine(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateFineRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	fine, err := h.librarySvc.UpdateFine(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) DeleteFine(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteFine(c.Request().Context(), id); err != nil {
		return h.fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}
