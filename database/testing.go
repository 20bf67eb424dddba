package database

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GetTestDB opens the database named by DATABASE_TEST_URL and migrates the
// schema. Tests calling it are skipped when no test database is configured.
func GetTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DATABASE_TEST_URL")
	if dsn == "" {
		t.Skip("DATABASE_TEST_URL not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB removes every row so each test starts from an empty store.
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	tables := []string{
		"gallery_comments",
		"gallery",
		"projects",
		"certificates",
		"contact_messages",
		"comments",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}
}
