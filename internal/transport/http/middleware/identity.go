package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog-platform/internal/models"
)

type ctxKey string

// ctxIdentity — ключ контекста с идентичностью запрашивающего.
const ctxIdentity ctxKey = "identity"

// Identity извлекает доверенную идентичность из заголовков X-User-Id и
// X-User-Login (их проставляет вышестоящий gateway после проверки токена)
// и кладёт её в контекст. Неполная или битая пара игнорируется: запрос
// продолжается анонимным, а обязательность идентичности решает хендлер.
func Identity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := strings.TrimSpace(r.Header.Get("X-User-Id"))
			login := strings.TrimSpace(r.Header.Get("X-User-Login"))

			if rawID != "" && login != "" {
				if id, err := uuid.Parse(rawID); err == nil {
					ident := models.Commentator{UserID: id, UserLogin: login}
					r = r.WithContext(context.WithValue(r.Context(), ctxIdentity, ident))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom возвращает идентичность запроса; нулевое значение — аноним.
func IdentityFrom(ctx context.Context) models.Commentator {
	if v, ok := ctx.Value(ctxIdentity).(models.Commentator); ok {
		return v
	}
	return models.Commentator{}
}
