package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/config"
	"github.com/17Trust09/Planner/internal/domain"
)

func newTestService(t *testing.T) *PlannerService {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Storage.DataDir = dir
	cfg.Storage.ProjectsDir = filepath.Join(dir, "projects")
	cfg.Storage.IndexFile = filepath.Join(dir, "projects_index.json")
	cfg.Export.OutputDir = filepath.Join(dir, "export")
	cfg.Export.Currency = "EUR"
	return NewPlannerService(cfg, zap.NewNop())
}

func TestEvaluateEmptyProject(t *testing.T) {
	svc := newTestService(t)
	project := catalog.NewEmptyProject("Leer")

	report := svc.Evaluate(project)

	assert.Empty(t, report.Conflicts)
	assert.Len(t, report.Scores, len(project.Rooms)+1)
	assert.NotEmpty(t, report.Matrix)
	assert.NotEmpty(t, report.Metrics)
	assert.Zero(t, report.Network.TotalCables)
	assert.Empty(t, report.Costs.LineItems)
	assert.NotEmpty(t, report.MissingRequired)
	assert.Contains(t, report.RecommendedGlobal, "global_switch_size")
}

func TestEvaluatePlannedProject(t *testing.T) {
	svc := newTestService(t)
	project := catalog.NewEmptyProject("Test")
	for _, room := range project.Rooms {
		if room.Name != "Wohnzimmer" {
			continue
		}
		room.Topics["room_lan_socket_count"] = domain.TopicState{Selections: []string{"2 Dosen"}}
		room.Topics["room_lan_ports_per_socket"] = domain.TopicState{Selections: []string{"2 Ports je Dose"}}
		room.Topics["room_security"] = domain.TopicState{Selections: []string{"Kamera (lokal)"}}
	}

	project.FloorPlans = map[string]domain.FloorPlan{
		"EG": {Placements: []domain.Placement{{MarkerKind: "camera"}, {MarkerKind: "camera"}}},
	}

	report := svc.Evaluate(project)

	assert.Len(t, report.Conflicts, 1)
	assert.Equal(t, map[string]int{"camera": 2}, report.FloorPlanMarkers["EG"])
	assert.Equal(t, 4, report.Network.TotalCables)
	assert.NotEmpty(t, report.Costs.LineItems)
	assert.Equal(t, "EUR", report.Costs.Currency)
}

func TestExportExcelWritesWorkbook(t *testing.T) {
	svc := newTestService(t)
	project := catalog.NewEmptyProject("Test")
	path := filepath.Join(t.TempDir(), "out", "plan.xlsx")

	var finished bool
	err := svc.ExportExcel(project, path, func(percent int, message string) {
		if percent == 100 {
			finished = true
		}
	})
	require.NoError(t, err)
	assert.True(t, finished)
	assert.FileExists(t, path)
}

func TestServiceSaveLoadRoundTrip(t *testing.T) {
	svc := newTestService(t)
	project := catalog.NewEmptyProject("Persistenz")
	path := filepath.Join(svc.Store().ProjectsDir(), project.Metadata.ProjectID+".json")

	require.NoError(t, svc.Store().SaveProject(project, path))
	loaded, err := svc.Store().LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, "Persistenz", loaded.Metadata.ProjectName)
}
