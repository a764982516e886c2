package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parlevel/stocktake-api/internal/api/metrics"
	"github.com/parlevel/stocktake-api/internal/core/domain"
	"github.com/parlevel/stocktake-api/internal/core/ports"
)

// StockHandler handles the catalog view and stock count submissions.
type StockHandler struct {
	items   ports.ItemRepository
	service ports.StockService
}

func NewStockHandler(items ports.ItemRepository, service ports.StockService) *StockHandler {
	return &StockHandler{items: items, service: service}
}

type submitRequest struct {
	// Counts maps item name to the submitted stock figure, as entered.
	// Items missing from the map are not recorded this round.
	Counts map[string]string `json:"counts" validate:"required"`
}

// ListItems returns the current catalog, the data behind the count form.
func (h *StockHandler) ListItems(c echo.Context) error {
	items, err := h.items.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"items": items})
}

// Submit records a batch of stock counts and reports the generated artifact.
func (h *StockHandler) Submit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Submit(c.Request().Context(), req.Counts)
	if err != nil {
		metrics.SubmissionErrorsTotal.WithLabelValues(submissionErrorReason(err)).Inc()
		return err
	}

	metrics.SubmissionsTotal.Inc()
	metrics.SubmissionRecordsTotal.Add(float64(result.Records))

	return c.JSON(http.StatusCreated, result)
}

func submissionErrorReason(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return "validation"
	}
	return "storage"
}
