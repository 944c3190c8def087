package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/aurorapdrrmo/sitrep-backend/internal/db"
	"github.com/aurorapdrrmo/sitrep-backend/internal/logger"
)

// DB opens an isolated in-memory database with the full schema migrated.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql.DB: %v", err)
	}
	// a single in-memory sqlite connection must not be shared across pool slots
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrateAll(gdb); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return gdb
}

func Logger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New("development")
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	return l
}
