package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "hrpulse/internal/errors"
	"hrpulse/internal/report"
	"hrpulse/internal/services"
)

type kindCtxKey struct{}

// ReportHandler handles report upload and retrieval requests
type ReportHandler struct {
	service        *services.ReportService
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *services.ReportService, maxUploadBytes int64, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service:        service,
		logger:         logger.With(slog.String("component", "report_handler")),
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the report routes
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", h.ListReports)

	r.Route("/{kind}", func(r chi.Router) {
		r.Use(h.KindCtx)
		r.Post("/", h.IngestReport)
		r.Get("/", h.GetReport)
	})

	return r
}

// KindCtx validates the kind URL parameter and loads it into context
func (h *ReportHandler) KindCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "kind")
		kind, err := report.ParseKind(raw)
		if err != nil {
			render.Render(w, r, apierrors.NewErrorResponse(apierrors.UnknownReportKindError(raw)))
			return
		}
		ctx := context.WithValue(r.Context(), kindCtxKey{}, kind)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func kindFromContext(ctx context.Context) report.Kind {
	kind, _ := ctx.Value(kindCtxKey{}).(report.Kind)
	return kind
}

// ListReports handles GET /api/reports
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"reports": h.service.List(),
	})
}

// IngestReport handles POST /api/reports/{kind}. The workbook arrives
// either as a multipart form field named "file" or as the raw body.
func (h *ReportHandler) IngestReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	kind := kindFromContext(ctx)

	body, err := h.workbookReader(r)
	if err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.InvalidRequestWithError(err)))
		return
	}
	defer body.Close()

	bundle, err := h.service.Ingest(ctx, kind, body)
	if err != nil {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.FromError(err)))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, bundle)
}

// GetReport handles GET /api/reports/{kind}
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	kind := kindFromContext(r.Context())

	bundle, ok := h.service.Get(kind)
	if !ok {
		render.Render(w, r, apierrors.NewErrorResponse(apierrors.ReportNotIngestedError(string(kind))))
		return
	}

	render.JSON(w, r, bundle)
}

// workbookReader extracts the workbook stream from the request,
// enforcing the configured upload cap either way.
func (h *ReportHandler) workbookReader(r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, h.maxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			return nil, err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return file, nil
	}

	return r.Body, nil
}
