package snapshotio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/selfbiz/costplan/internal/models"
)

// LoadSnapshotFile reads a full snapshot from a single JSON file. Missing
// settings fall back to the defaults so the engine always sees a resolved
// value.
func LoadSnapshotFile(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	snapshot := &models.Snapshot{Settings: models.DefaultSettings()}
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file: %w", err)
	}
	fillSettingsDefaults(&snapshot.Settings)
	return snapshot, nil
}

// SaveSnapshotFile writes a snapshot as indented JSON, creating the parent
// directory if needed.
func SaveSnapshotFile(path string, snapshot *models.Snapshot) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func fillSettingsDefaults(settings *models.Settings) {
	if settings.RoundingUnit <= 0 {
		settings.RoundingUnit = 10
	}
	if settings.SalesMixPercent == nil {
		settings.SalesMixPercent = map[string]float64{}
	}
	if settings.OverheadMixPercent == nil {
		settings.OverheadMixPercent = map[string]float64{}
	}
}
