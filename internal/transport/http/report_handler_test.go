package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hrpulse/internal/services"
)

func newTestRouter(t *testing.T) (*chi.Mux, *services.ReportService) {
	t.Helper()
	logger := slog.Default()
	svc := services.NewReportService(logger, nil)
	handler := NewReportHandler(svc, 1<<20, logger)

	r := chi.NewRouter()
	r.Mount("/api/reports", handler.Routes())
	return r, svc
}

func consumablesWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	header := []interface{}{"Date", "Material", "Description", "Qty", "Unit", "Price", "Total", "Cost Center", "Dept"}
	row := []interface{}{"10/01/2025", "MAT-1", "Gloves", 5, "pair", 20, 100, "CC-1", "Packing"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReportHandlerIngestRawBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/consumablesReport", consumablesWorkbook(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "consumablesReport")
}

func TestReportHandlerIngestMultipart(t *testing.T) {
	router, _ := newTestRouter(t)

	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	part, err := mw.CreateFormFile("file", "consumables.xlsx")
	require.NoError(t, err)
	_, err = part.Write(consumablesWorkbook(t).Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/reports/consumablesReport", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestReportHandlerGetAfterIngest(t *testing.T) {
	router, _ := newTestRouter(t)

	post := httptest.NewRequest(http.MethodPost, "/api/reports/consumablesReport", consumablesWorkbook(t))
	postRec := httptest.NewRecorder()
	router.ServeHTTP(postRec, post)
	require.Equal(t, http.StatusCreated, postRec.Code)

	get := httptest.NewRequest(http.MethodGet, "/api/reports/consumablesReport", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, get)

	require.Equal(t, http.StatusOK, getRec.Code)
	assert.Contains(t, getRec.Body.String(), "kpiTotalCost")
}

func TestReportHandlerGetBeforeIngest(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/otReport", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "REPORT_NOT_INGESTED")
}

func TestReportHandlerUnknownKind(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/payrollReport", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_REPORT_KIND")
}

func TestReportHandlerSchemaViolation(t *testing.T) {
	router, _ := newTestRouter(t)

	// Valid workbook whose sheet does not match the manpower format.
	req := httptest.NewRequest(http.MethodPost, "/api/reports/manpowerReport", consumablesWorkbook(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "SCHEMA_VIOLATION")
}

func TestReportHandlerInvalidWorkbook(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/reports/consumablesReport", bytes.NewBufferString("not a workbook"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportHandlerList(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Reports []services.ReportStatus `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Reports, 12)
}
