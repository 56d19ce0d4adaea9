package patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/userBookings/:userId", h.GetUserBookings)
	g.GET("/userRecords/:userId", h.GetUserRecords)
	g.PUT("/updatePatient/:id", h.UpdatePatient)
	g.GET("/:userId", h.GetPatientByID)
}

func (h *Handler) GetPatientByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	profile, err := h.svc.GetProfile(c.Request().Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "patient not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid patient id"})
	}

	var upd ProfileUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	p, err := h.svc.UpdateProfile(c.Request().Context(), id, upd)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) GetUserBookings(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	bookings, err := h.svc.Bookings(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if bookings == nil {
		bookings = []*BookingView{}
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetUserRecords(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "userId is required"})
	}

	records, err := h.svc.Records(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if records == nil {
		records = []*RecordView{}
	}
	return c.JSON(http.StatusOK, records)
}
