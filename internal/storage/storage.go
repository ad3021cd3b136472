package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/17Trust09/Planner/internal/domain"
)

// Explicit failure kinds of the persistence layer. The planning engine
// itself never raises; these belong to file handling only.
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectCorrupt  = errors.New("project file corrupt")
)

// IndexEntry is one project reference in the index file.
type IndexEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Store persists projects as JSON documents plus a flat index file.
type Store struct {
	projectsDir string
	indexFile   string
	logger      *zap.Logger
}

// NewStore creates a store rooted at the given directories.
func NewStore(projectsDir, indexFile string, logger *zap.Logger) *Store {
	return &Store{
		projectsDir: projectsDir,
		indexFile:   indexFile,
		logger:      logger,
	}
}

// ProjectsDir returns the directory project files are stored in.
func (s *Store) ProjectsDir() string {
	return s.projectsDir
}

func (s *Store) ensureStorage() error {
	if err := os.MkdirAll(s.projectsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create projects directory: %w", err)
	}
	if _, err := os.Stat(s.indexFile); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(s.indexFile, []byte("[]"), 0o644); err != nil {
			return fmt.Errorf("failed to create index file: %w", err)
		}
	}
	return nil
}

// ListProjects reads the project index. A corrupt index is treated as
// empty, matching the recover-by-default policy for user-editable files.
func (s *Store) ListProjects() []IndexEntry {
	if err := s.ensureStorage(); err != nil {
		s.logger.Warn("Failed to ensure storage", zap.Error(err))
		return nil
	}
	data, err := os.ReadFile(s.indexFile)
	if err != nil {
		return nil
	}
	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("Project index unreadable, starting empty", zap.Error(err))
		return nil
	}
	return entries
}

func (s *Store) updateIndex(name, path string) error {
	entries := s.ListProjects()
	kept := entries[:0]
	for _, e := range entries {
		if e.Path != path {
			kept = append(kept, e)
		}
	}
	kept = append(kept, IndexEntry{Name: name, Path: path})
	data, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	if err := os.WriteFile(s.indexFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}

// SaveProject writes the project to path, touches its timestamp and
// updates the index.
func (s *Store) SaveProject(project *domain.Project, path string) error {
	if err := s.ensureStorage(); err != nil {
		return err
	}
	project.Touch()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	data, err := json.MarshalIndent(project, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	if err := s.updateIndex(project.Metadata.ProjectName, path); err != nil {
		return err
	}
	s.logger.Info("Project saved",
		zap.String("project_id", project.Metadata.ProjectID),
		zap.String("path", path),
	)
	return nil
}

// LoadProject reads a project file. Missing files map to
// ErrProjectNotFound, undecodable content to ErrProjectCorrupt.
func (s *Store) LoadProject(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, path)
		}
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	var project domain.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProjectCorrupt, err)
	}
	return &project, nil
}
