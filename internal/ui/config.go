package ui

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/platecad/platecad/pkg/drawing"
	"github.com/platecad/platecad/pkg/units"
)

// ViewSettings stores the persistent view configuration between
// sessions. Parameters themselves are not persisted here; they travel
// through explicit export/import only.
type ViewSettings struct {
	Metric         bool    `json:"metric"`
	Precision      int     `json:"precision"`
	Zoom           float64 `json:"zoom"`
	ShowDimensions bool    `json:"show_dimensions"`
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	var configDir string
	// Use platform-appropriate config directory
	if os.Getenv("APPDATA") != "" {
		configDir = filepath.Join(os.Getenv("APPDATA"), "platecad")
	} else {
		configDir = filepath.Join(homeDir, ".config", "platecad")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "config.json"), nil
}

// LoadViewConfig loads the persisted view configuration, falling back
// to the defaults when no config file exists yet.
func LoadViewConfig() drawing.ViewConfig {
	view := drawing.DefaultView()

	configPath, err := getConfigPath()
	if err != nil {
		return view
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return view
	}
	var settings ViewSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return view
	}

	if settings.Metric {
		view.Unit = units.Metric
	}
	view.Precision = settings.Precision
	view.Zoom = settings.Zoom
	view.ShowDimensions = settings.ShowDimensions
	return view.Normalized()
}

// SaveViewConfig persists the view configuration.
func SaveViewConfig(view drawing.ViewConfig) error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	settings := ViewSettings{
		Metric:         view.Unit == units.Metric,
		Precision:      view.Precision,
		Zoom:           view.Zoom,
		ShowDimensions: view.ShowDimensions,
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
