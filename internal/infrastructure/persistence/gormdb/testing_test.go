package gormdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB abre una base SQLite en memoria con el esquema migrado.
// Una sola conexión: cada conexión a :memory: sería una base distinta.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// Repetir la migración no debe fallar ni perder datos
	require.NoError(t, db.Create(&UserModel{
		Email:          "ana@example.com",
		HashedPassword: "hash",
		EsActivo:       true,
	}).Error)

	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&UserModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
