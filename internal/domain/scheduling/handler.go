package scheduling

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footcare/intake/internal/domain/intake"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.ListSlots)
	api.POST("/appointments", h.Book)
}

func (h *Handler) ListSlots(c echo.Context) error {
	slots, err := h.svc.AvailableSlots(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"slots": slots})
}

func (h *Handler) Book(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt, existing, err := h.svc.Book(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, intake.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Invalid session")
		}
		var bad invalidInput
		if errors.As(err, &bad) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"appointment": appt,
		"existing":    existing,
	})
}
