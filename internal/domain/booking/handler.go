package booking

import (
	"errors"
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

// RegisterRoutes mounts the create endpoint. The therapy and doctor listing
// routes on the same group are owned by the catalog handler.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/bookings", h.Create)
}

func (h *Handler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.PatientID == uuid.Nil || req.TherapyID == uuid.Nil || req.DoctorID == uuid.Nil ||
		req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "All fields are required"})
	}

	res, err := h.svc.Create(c.Request().Context(), &req)
	if errors.Is(err, ErrBookingNotCreated) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "Booking created",
		"booking":      res.Booking,
		"notification": res.Notification,
	})
}
