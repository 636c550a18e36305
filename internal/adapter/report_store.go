package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

const (
	reportDirPerm  = 0o750
	reportFilePerm = 0o600
)

// ReportStore persists the result of an analysis run.
type ReportStore interface {
	SaveReport(path string, export m.Export) error
	LoadReport(path string) (m.Export, error)
}

// YAMLReportStore writes reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs the default ReportStore.
func NewReportStore() ReportStore {
	return &YAMLReportStore{}
}

// SaveReport implements ReportStore. Parent directories are created as needed.
func (s *YAMLReportStore) SaveReport(path string, export m.Export) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, reportDirPerm); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	data, err := yaml.Marshal(export)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := os.WriteFile(path, data, reportFilePerm); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Info("report saved", "path", path, "run", export.RunID)

	return nil
}

// LoadReport implements ReportStore.
func (s *YAMLReportStore) LoadReport(path string) (m.Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Export{}, fmt.Errorf("read report: %w", err)
	}

	var export m.Export
	if err := yaml.Unmarshal(data, &export); err != nil {
		return m.Export{}, fmt.Errorf("decode report: %w", err)
	}

	return export, nil
}
