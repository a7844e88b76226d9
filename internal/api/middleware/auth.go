package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя
const HeaderUserID = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

const msgMissingUserID = "отсутствует заголовок X-User-ID"

// Auth middleware аутентификации по заголовку X-User-ID
// Сама проверка подлинности выполняется выше по цепочке (gateway),
// здесь заголовок обязателен и прокидывается в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MockAuth middleware аутентификации для локальной разработки
// Каждый запрос получает фиксированный ID пользователя из конфигурации,
// заголовок X-User-ID при наличии имеет приоритет
func MockAuth(mockUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			if userID == "" {
				userID = mockUserID
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
