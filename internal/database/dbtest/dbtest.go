// internal/database/dbtest/dbtest.go
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/config"
	"github.com/javajoker/product-catalog/internal/database"
)

// Open opens a private migrated memory database that is closed when
// the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Initialize(config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() { database.Close(db) })
	return db
}
