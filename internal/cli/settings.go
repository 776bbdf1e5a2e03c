// internal/cli/settings.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFile = ".catalogctl.yml"

// Settings is the catalogctl config file.
type Settings struct {
	BaseURL        string `yaml:"base_url"`
	RowsPerPage    int    `yaml:"rows_per_page"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Language       string `yaml:"language"`
}

func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return settingsFile
	}
	return filepath.Join(home, settingsFile)
}

// LoadSettings reads path; a missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Set defaults
	if settings.BaseURL == "" {
		settings.BaseURL = "http://localhost:3000"
	}
	if settings.RowsPerPage == 0 {
		settings.RowsPerPage = 5
	}
	if settings.TimeoutSeconds == 0 {
		settings.TimeoutSeconds = 30
	}

	return settings, nil
}

func (s *Settings) Validate() error {
	if s.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	switch s.RowsPerPage {
	case 5, 10, 15:
		return nil
	default:
		return fmt.Errorf("rows_per_page must be 5, 10 or 15")
	}
}
