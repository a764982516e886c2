package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/parlevel/stocktake-api/internal/api/metrics"
	"github.com/parlevel/stocktake-api/internal/core/domain"
	"github.com/parlevel/stocktake-api/internal/core/ports"
)

// ImportHandler accepts catalog CSV uploads.
type ImportHandler struct {
	service ports.CatalogService
}

func NewImportHandler(service ports.CatalogService) *ImportHandler {
	return &ImportHandler{service: service}
}

// Import handles POST /v1/catalog/import: a multipart upload with the CSV
// in the "file" field. Only .csv filenames are accepted.
func (h *ImportHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return echo.NewHTTPError(http.StatusBadRequest, "only CSV files are allowed")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file upload")
	}
	defer f.Close()

	report, err := h.service.Import(c.Request().Context(), f)
	if err != nil {
		if errors.Is(err, domain.ErrMissingHeaders) {
			metrics.ImportsTotal.WithLabelValues("malformed").Inc()
		} else {
			metrics.ImportsTotal.WithLabelValues("failed").Inc()
		}
		return err
	}

	metrics.ImportsTotal.WithLabelValues("ok").Inc()
	for _, skipped := range report.Skipped {
		metrics.ImportRowsSkippedTotal.WithLabelValues(skipped.Reason).Inc()
	}

	return c.JSON(http.StatusOK, report)
}
