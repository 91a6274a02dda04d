package app

import (
	"context"
	"time"

	"habitlens/domain/core"
	"habitlens/domain/student"
	"habitlens/internal"
	"habitlens/internal/config"
	"habitlens/internal/errors"
	"habitlens/internal/pipeline"
)

// DashboardService answers filter changes with complete dashboard snapshots
type DashboardService struct {
	pipeline *pipeline.Pipeline
	logger   *internal.Logger
}

// Snapshot is one dashboard update. Dashboard holds everything the
// presentation layer draws; the other fields describe the computation.
type Snapshot struct {
	ID          core.SnapshotID   `json:"id"`
	Fingerprint core.Hash         `json:"fingerprint"`
	ComputedAt  time.Time         `json:"computed_at"`
	RuntimeMs   int64             `json:"runtime_ms"`
	Dashboard   student.Dashboard `json:"dashboard"`
}

// NewDashboardService creates a dashboard service over a loaded dataset
func NewDashboardService(ds *student.Dataset, opts pipeline.Options) *DashboardService {
	return &DashboardService{
		pipeline: pipeline.New(ds, opts),
		logger:   internal.NewDefaultLogger("Dashboard"),
	}
}

// PipelineOptions maps the analytics configuration onto pipeline options
func PipelineOptions(cfg *config.Config) pipeline.Options {
	opts := pipeline.Options{Parallel: cfg.Analytics.ParallelBuilders}
	if cfg.Analytics.DropoutDenominator == config.DropoutOverAll {
		opts.KPI.Denominator = pipeline.OverAll
	}
	return opts
}

// Options returns the values each filter control offers
func (s *DashboardService) Options() student.FilterOptions {
	return s.pipeline.Dataset().Options()
}

// RowCount returns the number of loaded records
func (s *DashboardService) RowCount() int {
	return s.pipeline.Dataset().Len()
}

// Update recomputes the KPI row and all charts for criteria
func (s *DashboardService) Update(ctx context.Context, criteria student.FilterCriteria) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "dashboard update cancelled")
	}

	startTime := time.Now()
	dashboard := s.pipeline.Run(criteria)

	fingerprint, err := core.Fingerprint(dashboard)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fingerprint dashboard")
	}

	snapshot := &Snapshot{
		ID:          core.NewSnapshotID(),
		Fingerprint: fingerprint,
		ComputedAt:  startTime.UTC(),
		RuntimeMs:   time.Since(startTime).Milliseconds(),
		Dashboard:   dashboard,
	}

	s.logger.Info("Snapshot %s: %d of %d rows match (fingerprint %.12s)",
		snapshot.ID, dashboard.Rows, s.RowCount(), fingerprint)
	return snapshot, nil
}
