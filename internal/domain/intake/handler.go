package intake

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/footcare/intake/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/triage", h.Triage)
	api.GET("/sessions", h.ListSessions)
}

func (h *Handler) Triage(c echo.Context) error {
	var req TriageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" || req.Patient == nil || req.Input == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	result, err := h.svc.Triage(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListSessions serves the staff tooling: all sessions, newest first,
// paginated with limit/offset.
func (h *Handler) ListSessions(c echo.Context) error {
	pg := pagination.FromContext(c)
	sessions, err := h.svc.ListSessions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	low, high := pg.Window(len(sessions))
	return c.JSON(http.StatusOK, pagination.NewResponse(sessions[low:high], len(sessions), pg.Limit, pg.Offset))
}
