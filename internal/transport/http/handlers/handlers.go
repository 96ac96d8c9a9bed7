// handlers — REST-хендлеры content-service поверх сервисного слоя.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// listQuery собирает списочный запрос из query-параметров.
// Термин поиска у каждой сущности свой, его вынимает вызывающий хендлер.
// Значения вне диапазона не считаются ошибкой: нормализация сервисного
// слоя приводит их к дефолтам.
func listQuery(r *http.Request) models.ListQuery {
	q := models.ListQuery{
		SortBy:        r.URL.Query().Get("sortBy"),
		SortDirection: models.SortDirection(r.URL.Query().Get("sortDirection")),
	}

	if v := r.URL.Query().Get("pageNumber"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			q.Page = int32(n)
		}
	}

	if v := r.URL.Query().Get("pageSize"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			q.PageSize = int32(n)
		}
	}

	return q
}
