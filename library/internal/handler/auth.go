package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

// Register creates a pending member account awaiting staff approval.
func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	member, err := h.librarySvc.RegisterMember(c.Request().Context(), req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resp, err := h.librarySvc.Login(c.Request().Context(), req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.librarySvc.Logout(c.Request().Context()); err != nil {
		return h.fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	member, err := h.librarySvc.Me(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) ApproveMember(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	member, err := h.librarySvc.ApproveMember(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, member)
}
