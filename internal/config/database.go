// internal/config/database.go
package config

import (
	"strings"
)

// IsMemory reports whether the DSN points at an in-process SQLite database.
func (d *DatabaseConfig) IsMemory() bool {
	return d.DSN == ":memory:" || strings.Contains(d.DSN, "mode=memory")
}
