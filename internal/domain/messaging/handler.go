package messaging

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/messages", h.ListMessages)
	api.POST("/messages", h.PostMessage)
}

func (h *Handler) ListMessages(c echo.Context) error {
	sessionID := c.QueryParam("sessionId")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing sessionId")
	}
	messages, err := h.svc.History(c.Request().Context(), sessionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"messages": messages})
}

type postMessageRequest struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

func (h *Handler) PostMessage(c echo.Context) error {
	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.PostClinicMessage(c.Request().Context(), req.SessionID, req.Text)
	if err != nil {
		var bad invalidInput
		if errors.As(err, &bad) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"message": m})
}
