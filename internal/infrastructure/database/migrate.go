package database

import (
	"fmt"

	"gorm.io/gorm"

	"propertyops-http-service/internal/domain/models"
	Logger "propertyops-http-service/pkg/logger"
)

// Migration modes.
const (
	MigrationAuto = "auto"
	MigrationDrop = "drop"
)

// Migrate brings the schema up to date. "auto" only adds tables, columns
// and indexes; "drop" recreates every table and loses all data.
func Migrate(db *gorm.DB, mode string) error {
	tables := models.All()

	switch mode {
	case MigrationAuto, "":
	case MigrationDrop:
		// Children first so foreign keys never dangle.
		for i := len(tables) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(tables[i]); err != nil {
				return fmt.Errorf("drop table %T: %w", tables[i], err)
			}
		}
		Logger.Warning("dropped %d tables", len(tables))
	default:
		return fmt.Errorf("unsupported migration mode %q", mode)
	}

	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	Logger.Info("database migrated (mode=%s)", mode)
	return nil
}
