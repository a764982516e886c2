package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/parlevel/stocktake-api/internal/core/ports"
)

type stubCatalogService struct {
	report  *ports.ImportReport
	err     error
	gotBody string
}

func (s *stubCatalogService) Import(_ context.Context, r io.Reader) (*ports.ImportReport, error) {
	data, _ := io.ReadAll(r)
	s.gotBody = string(data)
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

func multipartUpload(t *testing.T, filename, contents string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(contents)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestImportHandler_Import_Success(t *testing.T) {
	svc := &stubCatalogService{report: &ports.ImportReport{
		Created: []ports.ImportedItem{{Name: "Vodka", Par: 6}},
	}}
	h := NewImportHandler(svc)

	body, contentType := multipartUpload(t, "catalog.csv", "name,par\nVodka,6\n")
	req := httptest.NewRequest(http.MethodPost, "/v1/catalog/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.Import(c); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotBody != "name,par\nVodka,6\n" {
		t.Fatalf("service got wrong body: %q", svc.gotBody)
	}

	var report ports.ImportReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(report.Created) != 1 || report.Created[0].Name != "Vodka" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestImportHandler_Import_RejectsNonCSVFilename(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewImportHandler(svc)

	body, contentType := multipartUpload(t, "catalog.xlsx", "binary")
	req := httptest.NewRequest(http.MethodPost, "/v1/catalog/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.Import(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.gotBody != "" {
		t.Fatalf("service must not be called for a non-CSV upload")
	}
}

func TestImportHandler_Import_OversizedUploadRejected(t *testing.T) {
	svc := &stubCatalogService{}
	h := NewImportHandler(svc)

	body, contentType := multipartUpload(t, "catalog.csv", "name,par\n")
	req := httptest.NewRequest(http.MethodPost, "/v1/catalog/import", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.ContentLength = 17 << 20 // over the route's 16M cap
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := echomiddleware.BodyLimit("16M")(h.Import)(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %v", err)
	}
	if svc.gotBody != "" {
		t.Fatalf("service must not see an oversized upload")
	}
}

func TestImportHandler_Import_MissingFile(t *testing.T) {
	h := NewImportHandler(&stubCatalogService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/catalog/import", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := h.Import(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
