package database

import (
	"brainstorm-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database file (created if it doesn't
// exist) and runs migrations. Using glebarez/sqlite which is a pure Go
// implementation (no CGO required). TranslateError lets callers match
// unique-constraint violations as gorm.ErrDuplicatedKey.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate the schema (creates tables if they don't exist)
	if err := db.AutoMigrate(&models.Card{}, &models.User{}); err != nil {
		return nil, err
	}

	return db, nil
}
