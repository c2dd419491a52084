package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/jovanyvelez/ejemplos/internal/infrastructure/i18n"
)

func newTestRouter(t *testing.T) (*gin.Engine, *i18n.Service) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	service, err := i18n.NewService("en")
	if err != nil {
		t.Fatalf("fallo al cargar locales embebidos: %v", err)
	}

	router := gin.New()
	m := NewI18nMiddleware(service)
	router.Use(m.DetectLanguage())
	router.GET("/", func(c *gin.Context) {
		lang, _ := c.Get(LanguageContextKey)
		c.String(http.StatusOK, lang.(string))
	})

	return router, service
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		acceptLanguage string
		expected       string
	}{
		{"query parameter tiene prioridad", "?lang=es", "en-US,en;q=0.9", "es"},
		{"query parameter no soportado se ignora", "?lang=fr", "es", "es"},
		{"Accept-Language con coincidencia exacta", "", "es", "es"},
		{"Accept-Language con región cae a la base", "", "es-CO,es;q=0.9", "es"},
		{"Accept-Language con pesos", "", "fr;q=0.9,es;q=0.8", "es"},
		{"sin preferencias usa el idioma por defecto", "", "", "en"},
		{"idioma desconocido usa el por defecto", "", "de-DE,de;q=0.9", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Body.String() != tt.expected {
				t.Errorf("esperaba idioma '%s', obtuve '%s'", tt.expected, w.Body.String())
			}
		})
	}
}

func TestI18nMiddleware_ServiceInContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service, err := i18n.NewService("en")
	if err != nil {
		t.Fatalf("fallo al cargar locales: %v", err)
	}

	router := gin.New()
	router.Use(NewI18nMiddleware(service).DetectLanguage())
	router.GET("/", func(c *gin.Context) {
		svc, exists := c.Get(I18nServiceContextKey)
		if !exists {
			c.Status(http.StatusInternalServerError)
			return
		}
		if _, ok := svc.(*i18n.Service); !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Errorf("esperaba el servicio i18n en el contexto, status %d", w.Code)
	}
}
