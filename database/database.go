package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cartera-web/models"
)

// Open connects to the SQLite store at path. Foreign key enforcement is
// switched on so cartera rows cannot reference a missing tipocartera.
func Open(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return db, nil
}

// Seed values for tipocartera. The set is fixed; it is written once into an
// empty table and never touched again.
var tipoSeed = []string{"Andino", "Tradicional", "Selvático", "Costeño"}

// Demo credentials created when the usuario table is empty.
const (
	demoUsername = "joselyn"
	demoPassword = "1234"
)

// Init creates the three tables if they are absent and seeds reference and
// demo data. It probes row counts rather than table existence, so calling it
// on every process start is safe: existing data is never duplicated.
func Init(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Usuario{}, &models.TipoCartera{}, &models.Cartera{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	var tipos int64
	if err := db.Model(&models.TipoCartera{}).Count(&tipos).Error; err != nil {
		return fmt.Errorf("probe tipocartera: %w", err)
	}
	if tipos == 0 {
		for _, nombre := range tipoSeed {
			if err := db.Create(&models.TipoCartera{Nombre: nombre}).Error; err != nil {
				return fmt.Errorf("seed tipocartera %q: %w", nombre, err)
			}
		}
	}

	var usuarios int64
	if err := db.Model(&models.Usuario{}).Count(&usuarios).Error; err != nil {
		return fmt.Errorf("probe usuario: %w", err)
	}
	if usuarios == 0 {
		demo := models.Usuario{Username: demoUsername, Password: demoPassword}
		if err := db.Create(&demo).Error; err != nil {
			return fmt.Errorf("seed usuario: %w", err)
		}
	}

	return nil
}
