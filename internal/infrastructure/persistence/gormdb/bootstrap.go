package gormdb

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate crea las tablas users e items si no existen, con la clave foránea
// de items a users, el índice único de email y los defaults de timestamps.
// Es idempotente: seguro de llamar en cada arranque del proceso.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserModel{}, &ItemModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
