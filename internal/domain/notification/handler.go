package notification

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.PATCH("/read-all/:userId", h.MarkAllRead)
	g.PATCH("/read/:id", h.MarkRead)
	g.GET("/:userId", h.ListForPatient)
}

func (h *Handler) ListForPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false, "error": "Missing userId",
		})
	}

	views, err := h.svc.ListForPatient(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false, "error": err.Error(),
		})
	}
	if views == nil {
		views = []*View{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":       true,
		"notifications": views,
	})
}

func (h *Handler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false, "error": "Missing notification id",
		})
	}

	n, err := h.svc.MarkRead(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false, "error": err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		"notification": n,
	})
}

func (h *Handler) MarkAllRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"success": false, "error": "Missing userId",
		})
	}

	items, err := h.svc.MarkAllRead(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false, "error": err.Error(),
		})
	}
	if items == nil {
		items = []*Notification{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":       true,
		"notifications": items,
	})
}
