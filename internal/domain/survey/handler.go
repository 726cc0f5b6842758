package survey

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
	api.POST("/surveys", h.Submit)
}

type submitRequest struct {
	SessionID string `json:"sessionId"`
	Rating    int    `json:"rating"`
	Feedback  string `json:"feedback,omitempty"`
}

func (h *Handler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp, err := h.svc.Submit(c.Request().Context(), req.SessionID, req.Rating, req.Feedback)
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
	return c.JSON(http.StatusOK, map[string]interface{}{"survey": resp})
}
