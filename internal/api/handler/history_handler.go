package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parlevel/stocktake-api/internal/core/ports"
)

// HistoryHandler serves the rolling submission history grid.
type HistoryHandler struct {
	service ports.HistoryService
}

func NewHistoryHandler(service ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// View handles GET /v1/history.
func (h *HistoryHandler) View(c echo.Context) error {
	view, err := h.service.View(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
