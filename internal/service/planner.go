package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/17Trust09/Planner/internal/config"
	"github.com/17Trust09/Planner/internal/domain"
	"github.com/17Trust09/Planner/internal/evaluation"
	"github.com/17Trust09/Planner/internal/export"
	"github.com/17Trust09/Planner/internal/pricing"
	"github.com/17Trust09/Planner/internal/storage"
	"github.com/17Trust09/Planner/internal/validation"
)

// Report bundles every derived read-only view of a project for report
// consumers (CLI output, exporters).
type Report struct {
	Conflicts         map[string][]evaluation.Conflict  `json:"conflicts"`
	Scores            map[string]evaluation.RoomScore   `json:"scores"`
	Matrix            map[string]map[string][]string    `json:"matrix"`
	Metrics           map[string]evaluation.TopicMetric `json:"metrics"`
	Network           evaluation.NetworkRollup          `json:"network"`
	Costs             pricing.Estimate                  `json:"costs"`
	MissingRequired   []string                          `json:"missing_required"`
	RecommendedGlobal map[string][]string               `json:"recommended_global"`
	FloorPlanMarkers  map[string]map[string]int         `json:"floor_plan_markers,omitempty"`
}

// PlannerService orchestrates evaluation, pricing, persistence and export.
type PlannerService struct {
	config *config.Config
	store  *storage.Store
	logger *zap.Logger
}

// NewPlannerService creates the service with its storage backend.
func NewPlannerService(cfg *config.Config, logger *zap.Logger) *PlannerService {
	return &PlannerService{
		config: cfg,
		store:  storage.NewStore(cfg.Storage.ProjectsDir, cfg.Storage.IndexFile, logger),
		logger: logger,
	}
}

// Store exposes the project store.
func (s *PlannerService) Store() *storage.Store {
	return s.store
}

// Evaluate computes the full derived report for a project snapshot. All
// computations are pure; malformed data degrades to defaults instead of
// failing.
func (s *PlannerService) Evaluate(project *domain.Project) Report {
	report := Report{
		Conflicts:         evaluation.DetectConflicts(project),
		Scores:            evaluation.RoomScores(project),
		Matrix:            evaluation.BuildRoomMatrix(project),
		Metrics:           evaluation.TopicMetrics(project),
		Network:           evaluation.Rollup(project),
		Costs:             pricing.EstimateProjectCosts(project),
		MissingRequired:   validation.ValidateRequiredFields(project),
		RecommendedGlobal: evaluation.RecommendedGlobalNetworkTopics(project),
	}
	if len(project.FloorPlans) > 0 {
		report.FloorPlanMarkers = make(map[string]map[string]int, len(project.FloorPlans))
		for floor, plan := range project.FloorPlans {
			report.FloorPlanMarkers[floor] = plan.MarkerCounts()
		}
	}

	s.logger.Debug("Project evaluated",
		zap.String("project_id", project.Metadata.ProjectID),
		zap.Int("rooms", len(project.Rooms)),
		zap.Int("rooms_with_conflicts", len(report.Conflicts)),
		zap.Int("total_cables", report.Network.TotalCables),
		zap.Float64("cost_typical", report.Costs.Totals.Typical),
	)

	return report
}

// ExportExcel writes the planning workbook, forwarding per-room progress to
// the callback. The callers decide whether to run this on a worker
// goroutine; the export itself is synchronous.
func (s *PlannerService) ExportExcel(project *domain.Project, path string, progress export.ProgressFunc) error {
	s.logger.Info("Exporting project workbook",
		zap.String("project_id", project.Metadata.ProjectID),
		zap.String("path", path),
	)
	if err := export.WriteProjectExcel(project, path, progress); err != nil {
		return fmt.Errorf("excel export failed: %w", err)
	}
	s.logger.Info("Export finished", zap.String("path", path))
	return nil
}
