// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/patent-lens/pkg/types"
)

// ExportRecord holds one archived search with its records for export.
type ExportRecord struct {
	Entry   `yaml:",inline"`
	Records []types.PatentRecord `json:"records" yaml:"records"`
}

// ExportYAML writes the whole archive to dir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) (string, error) {
	entries, err := s.exportRecords(ctx)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.yaml")
	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the whole archive to dir/export.json.
func (s *Store) ExportJSON(ctx context.Context) (string, error) {
	entries, err := s.exportRecords(ctx)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, "export.json")
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportRecords(ctx context.Context) ([]ExportRecord, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing for export: %w", err)
	}

	out := make([]ExportRecord, len(entries))
	for i, e := range entries {
		_, records, err := s.Get(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		out[i] = ExportRecord{Entry: e, Records: records}
	}
	return out, nil
}
