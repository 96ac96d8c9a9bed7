// service содержит бизнес-логику content-сервиса.
package service

import (
	"errors"

	"github.com/pribylovaa/go-blog-platform/internal/config"
	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrForbidden — аутентифицированный пользователь не владеет ресурсом.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal — внутренняя ошибка (сторедж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Белые списки сортировки: закрывают сортировку по произвольным полям
// документа. Имена — внешние (camelCase), в поля хранилища их переводит
// слой mongo.
var (
	blogListSpec = models.ListSpec{
		SearchField: "name",
		SortFields: map[string]struct{}{
			"name":      {},
			"createdAt": {},
		},
		DefaultSort: "createdAt",
	}

	postListSpec = models.ListSpec{
		SearchField: "title",
		SortFields: map[string]struct{}{
			"title":     {},
			"blogName":  {},
			"createdAt": {},
		},
		DefaultSort: "createdAt",
	}
)

// Service — бизнес-логика content-service.
type Service struct {
	storage storage.Storage
	cfg     config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
	}
}

// normalize приводит списочный запрос к безопасному виду по лимитам конфигурации.
func (s *Service) normalize(spec models.ListSpec, q models.ListQuery) models.ListQuery {
	def := s.cfg.Paging.Default
	if def <= 0 {
		def = 10
	}

	return spec.Normalize(q, def, s.cfg.Paging.Max)
}
