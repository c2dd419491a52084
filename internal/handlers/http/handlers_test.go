package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jovanyvelez/ejemplos/internal/domain/errors"
	"github.com/jovanyvelez/ejemplos/internal/domain/ports"
	"github.com/jovanyvelez/ejemplos/internal/handlers/middleware"
	"github.com/jovanyvelez/ejemplos/internal/infrastructure/i18n"
	"github.com/jovanyvelez/ejemplos/internal/infrastructure/persistence/gormdb"
	"github.com/jovanyvelez/ejemplos/internal/services"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger {
	return l
}

// newTestRouter arma la API completa sobre una base SQLite en memoria
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormdb.Migrate(db))

	userRepo := gormdb.NewUserRepository(db)
	itemRepo := gormdb.NewItemRepository(db)

	log := nopLogger{}
	userService := services.NewUserService(userRepo, itemRepo, log)
	itemService := services.NewItemService(itemRepo, log)

	i18nService, err := i18n.NewService("en")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())
	RegisterRoutes(r, NewUserHandler(userService, log), NewItemHandler(itemService, log))

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAPI_UserItemLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// Crear usuario
	w := doJSON(t, r, http.MethodPost, "/users", gin.H{
		"email":    "ana@example.com",
		"password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	user := decodeBody(t, w)
	userID := user["id"].(float64)
	assert.Equal(t, "ana@example.com", user["email"])
	assert.Equal(t, true, user["es_activo"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "hashed_password")

	// Crear item para el usuario
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/users/%.0f/items", userID), gin.H{
		"nombre":      "Laptop",
		"descripcion": "de trabajo",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	item := decodeBody(t, w)
	itemID := item["id"].(float64)
	assert.Equal(t, "Laptop", item["nombre"])
	assert.Equal(t, userID, item["propietario_id"])

	// El usuario incluye el item al leerlo
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/users/%.0f", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	user = decodeBody(t, w)
	items := user["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].(map[string]any)["nombre"])

	// Eliminar el item
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/items/%.0f", itemID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["ok"])

	// Una lectura posterior da 404
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/items/%.0f", itemID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_CreateUser_Validation(t *testing.T) {
	r := newTestRouter(t)

	t.Run("contraseña corta responde 422 con error de campo", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users", gin.H{
			"email":    "ana@example.com",
			"password": "corta",
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		body := decodeBody(t, w)
		errs := body["errors"].([]any)
		require.Len(t, errs, 1)
		fieldErr := errs[0].(map[string]any)
		assert.Equal(t, "password", fieldErr["field"])
		assert.Equal(t, "password must be at least 8 characters", fieldErr["message"])
	})

	t.Run("email inválido responde 422", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users", gin.H{
			"email":    "no-es-un-email",
			"password": "secreto123",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("campos ausentes responden 422 con un error por campo", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/users", gin.H{})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		body := decodeBody(t, w)
		assert.Len(t, body["errors"].([]any), 2)
	})
}

func TestAPI_CreateUser_DuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{
		"email":    "ana@example.com",
		"password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/users", gin.H{
		"email":    "ana@example.com",
		"password": "otrosecreto",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "The email is already registered", body["detail"])
}

func TestAPI_ListUsers(t *testing.T) {
	r := newTestRouter(t)

	for i := 1; i <= 3; i++ {
		w := doJSON(t, r, http.MethodPost, "/users", gin.H{
			"email":    fmt.Sprintf("user%d@example.com", i),
			"password": "secreto123",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("lista completa en orden ascendente", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		require.Len(t, users, 3)
		assert.Equal(t, "user1@example.com", users[0]["email"])
	})

	t.Run("skip y limit recortan la ventana", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users?skip=1&limit=1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		require.Len(t, users, 1)
		assert.Equal(t, "user2@example.com", users[0]["email"])
	})

	t.Run("limit cero explícito retorna la lista vacía", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users?limit=0", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var users []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
		assert.Empty(t, users)
	})

	t.Run("paginación inválida responde 422", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users?skip=-1", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAPI_UpdateAndDeactivateUser(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{
		"email":    "ana@example.com",
		"password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := decodeBody(t, w)["id"].(float64)

	t.Run("PUT sobrescribe el email", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/users/%.0f", userID), gin.H{
			"email": "nueva@example.com",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nueva@example.com", decodeBody(t, w)["email"])
	})

	t.Run("deactivate apaga es_activo", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/users/%.0f/deactivate", userID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody(t, w)["es_activo"])
	})

	t.Run("usuario inexistente responde 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/users/999", gin.H{"email": "x@example.com"})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, r, http.MethodPost, "/users/999/deactivate", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("id no numérico responde 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/abc", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAPI_CreateItemForMissingUser(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users/999/items", gin.H{"nombre": "Laptop"})
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["detail"], "User")
}

func TestAPI_Items(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users", gin.H{
		"email":    "ana@example.com",
		"password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	userID := decodeBody(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/users/%.0f/items", userID), gin.H{
		"nombre": "Laptop",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := decodeBody(t, w)["id"].(float64)

	t.Run("lista de items", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/items", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, 1)
	})

	t.Run("PUT sobrescribe el item y descripcion ausente la borra", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/items/%.0f", itemID), gin.H{
			"nombre": "Laptop nueva",
		})
		require.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, "Laptop nueva", body["nombre"])
		assert.Nil(t, body["descripcion"])
	})

	t.Run("eliminar dos veces responde 404 la segunda", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/items/%.0f", itemID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/items/%.0f", itemID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("item sin nombre responde 422", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/users/%.0f/items", userID), gin.H{})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAPI_ErrorFormat(t *testing.T) {
	r := newTestRouter(t)

	t.Run("los errores usan el formato problem detail", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		body := decodeBody(t, w)
		assert.Contains(t, body["type"], errors.ProblemTypeNotFound)
		assert.Contains(t, body, "title")
		assert.Contains(t, body, "detail")
		assert.EqualValues(t, http.StatusNotFound, body["status"])
	})

	t.Run("los mensajes se traducen con ?lang=es", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/users/999?lang=es", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		body := decodeBody(t, w)
		assert.NotContains(t, body["detail"], "not found")
	})
}
