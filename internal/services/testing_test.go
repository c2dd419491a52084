package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jovanyvelez/ejemplos/internal/domain/ports"
	"github.com/jovanyvelez/ejemplos/internal/domain/repositories"
	"github.com/jovanyvelez/ejemplos/internal/infrastructure/persistence/gormdb"
)

// nopLogger descarta todo; los servicios no deben depender de la salida de log
type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger {
	return l
}

type testEnv struct {
	users repositories.UserRepository
	items repositories.ItemRepository
	user  *UserService
	item  *ItemService
}

// newTestEnv arma los servicios sobre una base SQLite en memoria.
// Una sola conexión: cada conexión a :memory: sería una base distinta.
func newTestEnv(t *testing.T) *testEnv {
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

	require.NoError(t, gormdb.Migrate(db))

	users := gormdb.NewUserRepository(db)
	items := gormdb.NewItemRepository(db)
	log := nopLogger{}

	return &testEnv{
		users: users,
		items: items,
		user:  NewUserService(users, items, log),
		item:  NewItemService(items, log),
	}
}
