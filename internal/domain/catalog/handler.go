package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/getTherapy", h.GetTherapies)
	g.GET("/getDoctors", h.GetDoctors)
}

func (h *Handler) GetTherapies(c echo.Context) error {
	therapies, err := h.svc.ListTherapies(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if therapies == nil {
		therapies = []*Therapy{}
	}
	return c.JSON(http.StatusOK, therapies)
}

func (h *Handler) GetDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if doctors == nil {
		doctors = []*Doctor{}
	}
	return c.JSON(http.StatusOK, doctors)
}
