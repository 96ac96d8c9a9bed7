package models

// Постраничная выдача: один обобщённый механизм обслуживает блоги, посты
// и любые будущие списочные ресурсы. Какое поле фильтруется и по каким
// полям можно сортировать — задаёт ListSpec конкретной сущности.

// SortDirection — направление сортировки.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ListQuery — параметры списочного запроса до нормализации.
type ListQuery struct {
	// SearchTerm — подстрока для регистронезависимого поиска по
	// фильтруемому полю сущности; пустая строка — без фильтра.
	SearchTerm    string
	SortBy        string
	SortDirection SortDirection
	Page          int32
	PageSize      int32
}

// Skip — смещение в хранилище для текущей страницы.
// Вызывается только после Normalize (Page/PageSize >= 1).
func (q ListQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.PageSize)
}

// ListSpec — описание списочных возможностей одной сущности:
// какое поле фильтруется и какие поля допустимы в сортировке.
// Белый список закрывает сортировку по произвольным полям.
type ListSpec struct {
	SearchField string
	SortFields  map[string]struct{}
	DefaultSort string
}

// Normalize приводит запрос к безопасному виду:
//   - Page<1 -> 1; PageSize<1 -> defaultSize; PageSize>maxSize -> maxSize;
//   - SortBy вне белого списка -> DefaultSort;
//   - направление, отличное от asc, -> desc.
func (s ListSpec) Normalize(q ListQuery, defaultSize, maxSize int32) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}

	if q.PageSize < 1 {
		q.PageSize = defaultSize
	}

	if maxSize > 0 && q.PageSize > maxSize {
		q.PageSize = maxSize
	}

	if _, ok := s.SortFields[q.SortBy]; !ok {
		q.SortBy = s.DefaultSort
	}

	if q.SortDirection != SortAsc {
		q.SortDirection = SortDesc
	}

	return q
}

// Page — единый конверт постраничной выдачи.
type Page[T any] struct {
	Items      []T
	TotalCount int64
	PagesCount int32
	PageNumber int32
	PageSize   int32
}

// NewPage собирает конверт из сырых элементов и общего количества.
// pagesCount = ceil(totalCount/pageSize); для totalCount=0 — ноль страниц
// и пустой (не nil) список элементов.
func NewPage[T any](items []T, totalCount int64, q ListQuery) Page[T] {
	if items == nil {
		items = []T{}
	}

	var pages int32
	if totalCount > 0 {
		pages = int32((totalCount + int64(q.PageSize) - 1) / int64(q.PageSize))
	}

	return Page[T]{
		Items:      items,
		TotalCount: totalCount,
		PagesCount: pages,
		PageNumber: q.Page,
		PageSize:   q.PageSize,
	}
}

// MapPage применяет проекцию к каждому элементу, сохраняя конверт.
func MapPage[T, V any](p Page[T], project func(T) V) Page[V] {
	items := make([]V, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, project(p.Items[i]))
	}

	return Page[V]{
		Items:      items,
		TotalCount: p.TotalCount,
		PagesCount: p.PagesCount,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
