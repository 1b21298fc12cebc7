package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"hrpulse/internal/metrics"
	"hrpulse/internal/report"
	"hrpulse/internal/xlsx"
	"hrpulse/pkg/contracts/domain"
)

// ReportService ingests uploaded workbooks and holds the latest decoded
// bundle per report kind. Each upload replaces the previous bundle for
// its kind; other kinds are untouched.
type ReportService struct {
	logger  *slog.Logger
	metrics *metrics.Registry

	mu      sync.RWMutex
	bundles map[report.Kind]*domain.ReportBundle
	updated map[report.Kind]time.Time
}

// NewReportService creates a report service with the given logger and
// metrics registry. Either may be nil.
func NewReportService(logger *slog.Logger, reg *metrics.Registry) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		logger:  logger.With("component", "report_service"),
		metrics: reg,
		bundles: make(map[report.Kind]*domain.ReportBundle),
		updated: make(map[report.Kind]time.Time),
	}
}

// ReportStatus describes one kind's ingestion state for listings.
type ReportStatus struct {
	Kind      string     `json:"kind"`
	Loaded    bool       `json:"loaded"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Ingest decodes a workbook stream into the bundle for kind and stores
// it. The returned bundle is what was stored.
func (s *ReportService) Ingest(ctx context.Context, kind report.Kind, r io.Reader) (*domain.ReportBundle, error) {
	start := time.Now()

	grid, err := xlsx.ExtractGrid(r)
	if err != nil {
		s.observeFailure(kind, "workbook")
		s.logger.ErrorContext(ctx, "workbook extraction failed",
			"kind", string(kind), "error", err)
		return nil, err
	}

	bundle, err := report.Ingest(grid, kind)
	if err != nil {
		s.observeFailure(kind, "schema")
		s.logger.WarnContext(ctx, "report ingestion rejected",
			"kind", string(kind), "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.bundles[kind] = bundle
	s.updated[kind] = time.Now()
	s.mu.Unlock()

	rows := len(grid) - 1
	if s.metrics != nil {
		s.metrics.ObserveSuccess(string(kind), time.Since(start).Seconds(), rows)
	}
	s.logger.InfoContext(ctx, "report ingested",
		"kind", string(kind),
		"rows", rows,
		"duration", time.Since(start).String(),
	)
	return bundle, nil
}

// Get returns the stored bundle for kind, or false when nothing has been
// ingested for it yet.
func (s *ReportService) Get(kind report.Kind) (*domain.ReportBundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bundle, ok := s.bundles[kind]
	return bundle, ok
}

// List reports the ingestion state of every supported kind in
// presentation order.
func (s *ReportService) List() []ReportStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make([]ReportStatus, 0, len(report.Kinds()))
	for _, kind := range report.Kinds() {
		status := ReportStatus{Kind: string(kind)}
		if _, ok := s.bundles[kind]; ok {
			status.Loaded = true
			t := s.updated[kind]
			status.UpdatedAt = &t
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func (s *ReportService) observeFailure(kind report.Kind, reason string) {
	if s.metrics != nil {
		s.metrics.ObserveFailure(string(kind), reason)
	}
}
