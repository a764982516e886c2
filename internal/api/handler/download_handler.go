package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/parlevel/stocktake-api/internal/core/ports"
)

// DownloadHandler lists and serves generated CSV artifacts.
type DownloadHandler struct {
	store ports.ArtifactStore
}

func NewDownloadHandler(store ports.ArtifactStore) *DownloadHandler {
	return &DownloadHandler{store: store}
}

// List handles GET /v1/downloads: stored artifacts, newest first.
func (h *DownloadHandler) List(c echo.Context) error {
	files, err := h.store.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"files": files})
}

// Fetch handles GET /v1/downloads/:filename, streaming the artifact as an
// attachment.
func (h *DownloadHandler) Fetch(c echo.Context) error {
	name := c.Param("filename")

	f, err := h.store.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Stream(http.StatusOK, "text/csv", f)
}
