package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/17Trust09/Planner/internal/catalog"
	"github.com/17Trust09/Planner/internal/config"
	"github.com/17Trust09/Planner/internal/domain"
	"github.com/17Trust09/Planner/internal/export"
	"github.com/17Trust09/Planner/internal/logger"
	"github.com/17Trust09/Planner/internal/service"
)

func main() {
	var (
		newName     = flag.String("new", "", "create a new project with this name and save it")
		projectPath = flag.String("project", "", "path of the project JSON file to load")
		importPath  = flag.String("import", "", "import a previously exported workbook as a new project")
		pricingPath = flag.String("pricing", "", "YAML file with pricing-band overrides")
		exportPath  = flag.String("export", "", "write the planning workbook to this path")
		summary     = flag.Bool("summary", false, "print the evaluation report as JSON")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "smartplan")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	svc := service.NewPlannerService(cfg, log)

	project, err := resolveProject(svc, cfg, *newName, *projectPath, *importPath)
	if err != nil {
		log.Fatal("Failed to resolve project", zap.Error(err))
	}
	if project == nil {
		flag.Usage()
		os.Exit(2)
	}

	if *pricingPath != "" {
		overrides, err := loadPricingOverrides(*pricingPath)
		if err != nil {
			log.Fatal("Failed to load pricing overrides", zap.Error(err))
		}
		project.PricingSettings = overrides
		log.Info("Pricing overrides applied", zap.String("path", *pricingPath))
	}

	if *summary {
		report := svc.Evaluate(project)
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			log.Fatal("Failed to encode report", zap.Error(err))
		}
	}

	if *exportPath != "" {
		progress := func(percent int, message string) {
			log.Info("Export progress", zap.Int("percent", percent), zap.String("step", message))
		}
		if err := svc.ExportExcel(project, *exportPath, progress); err != nil {
			log.Fatal("Export failed", zap.Error(err))
		}
	}
}

// resolveProject loads or creates the project the flags point at. Returns
// nil without error when no source flag was given.
func resolveProject(svc *service.PlannerService, cfg *config.Config, newName, projectPath, importPath string) (*domain.Project, error) {
	switch {
	case newName != "":
		project := catalog.NewEmptyProject(newName)
		path := filepath.Join(cfg.Storage.ProjectsDir, project.Metadata.ProjectID+".json")
		if err := svc.Store().SaveProject(project, path); err != nil {
			return nil, err
		}
		return project, nil
	case importPath != "":
		return importWorkbook(importPath)
	case projectPath != "":
		return svc.Store().LoadProject(projectPath)
	default:
		return nil, nil
	}
}

func importWorkbook(path string) (*domain.Project, error) {
	name := filepath.Base(path)
	name = name[:len(name)-len(filepath.Ext(name))]
	return export.ImportProjectExcel(path, name)
}

func loadPricingOverrides(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing file: %w", err)
	}
	var overrides map[string]any
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse pricing file: %w", err)
	}
	return overrides, nil
}
