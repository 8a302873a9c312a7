// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads, persists, and cleans work corpora. Cleaning is
// the exclusion filter followed by identity-based deduplication; the
// result feeds the trends aggregation.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// ReadFile loads a corpus from a JSON or YAML file holding a list of
// Work records. The format follows the file extension; anything that is
// not .yaml/.yml parses as JSON.
func ReadFile(path string) ([]types.Work, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}

	var works []types.Work
	if isYAMLPath(path) {
		if err := yaml.Unmarshal(data, &works); err != nil {
			return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &works); err != nil {
			return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
		}
	}
	return works, nil
}

// WriteFile saves works to path as JSON or YAML according to the file
// extension.
func WriteFile(path string, works []types.Work) error {
	var (
		data []byte
		err  error
	)
	if isYAMLPath(path) {
		data, err = yaml.Marshal(works)
	} else {
		data, err = json.MarshalIndent(works, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding corpus: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing corpus %s: %w", path, err)
	}
	return nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
