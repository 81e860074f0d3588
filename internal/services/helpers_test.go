package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Project{},
		&models.Loop{},
		&models.Task{},
		&models.ChangeOrder{},
		&models.TeamMember{},
		&models.TimeEntry{},
		&models.Expense{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}
