package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/library/internal/model"
)

func (h *Handler) MembershipTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, model.MembershipTypes())
}

func (h *Handler) ListMembers(c echo.Context) error {
	pg, err := paging(c)
	if err != nil {
		return err
	}
	members, err := h.librarySvc.ListMembers(c.Request().Context(), model.MemberFilter{
		Search: c.QueryParam("search"),
		Status: model.MemberStatus(c.QueryParam("status")),
		Role:   model.Role(c.QueryParam("role")),
		Paging: pg,
	})
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) GetMember(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := allowSelf(c, id); err != nil {
		return err
	}
	member, err := h.librarySvc.GetMember(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, member)
}

// CreateMember registers a member at the desk. The account is approved at once.
func (h *Handler) CreateMember(c echo.Context) error {
	var req model.CreateMemberRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	member, err := h.librarySvc.CreateMemberDirect(c.Request().Context(), req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) UpdateMember(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateMemberRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	member, err := h.librarySvc.UpdateMember(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) DeactivateMember(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	member, err := h.librarySvc.DeactivateMember(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) ReactivateMember(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	member, err := h.librarySvc.ReactivateMember(c.Request().Context(), id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) MemberHistory(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := allowSelf(c, id); err != nil {
		return err
	}
	pg, err := paging(c)
	if err != nil {
		return err
	}
	loans, err := h.librarySvc.MemberHistory(c.Request().Context(), id, pg)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, loans)
}
