package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusfind/internal/config"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenString
}

func TestRequireAuth(t *testing.T) {
	cfg := &config.Config{JWTSecretKey: "test-secret"}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value("userID").(string)
		w.Header().Set("X-User-ID", userID)
		w.WriteHeader(http.StatusOK)
	})

	protected := RequireAuth(cfg)(next)

	t.Run("Валидный токен пропускается", func(t *testing.T) {
		tokenString := signTestToken(t, cfg.JWTSecretKey, jwt.MapClaims{
			"userId": "user-a",
			"email":  "student@example.com",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-a", rr.Header().Get("X-User-ID"))
	})

	t.Run("Без заголовка Authorization", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Не Bearer формат", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Чужой секрет", func(t *testing.T) {
		tokenString := signTestToken(t, "another-secret", jwt.MapClaims{
			"userId": "user-a",
			"email":  "student@example.com",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Просроченный токен", func(t *testing.T) {
		tokenString := signTestToken(t, cfg.JWTSecretKey, jwt.MapClaims{
			"userId": "user-a",
			"email":  "student@example.com",
			"exp":    time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rr := httptest.NewRecorder()

		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	cfg := &config.Config{JWTSecretKey: "test-secret"}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value("userID").(string)
		w.Header().Set("X-User-ID", userID)
		w.WriteHeader(http.StatusOK)
	})

	public := OptionalAuth(cfg)(next)

	t.Run("С токеном контекст заполняется", func(t *testing.T) {
		tokenString := signTestToken(t, cfg.JWTSecretKey, jwt.MapClaims{
			"userId": "user-a",
			"email":  "student@example.com",
			"exp":    time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/items/item-1", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		rr := httptest.NewRecorder()

		public.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-a", rr.Header().Get("X-User-ID"))
	})

	t.Run("Без токена запрос проходит как гость", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/items/item-1", nil)
		rr := httptest.NewRecorder()

		public.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("X-User-ID"))
	})

	t.Run("Битый токен не мешает гостевому доступу", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/items/item-1", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()

		public.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("X-User-ID"))
	})
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := CORSMiddleware(next)

	t.Run("Заголовки CORS выставляются", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight завершается сразу", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/items", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
