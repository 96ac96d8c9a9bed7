package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var blogListSpec = ListSpec{
	SearchField: "name",
	SortFields:  map[string]struct{}{"name": {}, "createdAt": {}},
	DefaultSort: "createdAt",
}

// Дефолты: page=1, pageSize=default при нулевых/отрицательных значениях.
func TestListSpec_Normalize_Defaults(t *testing.T) {
	t.Parallel()

	q := blogListSpec.Normalize(ListQuery{}, 10, 100)
	require.EqualValues(t, 1, q.Page)
	require.EqualValues(t, 10, q.PageSize)
	require.Equal(t, "createdAt", q.SortBy)
	require.Equal(t, SortDesc, q.SortDirection)

	q = blogListSpec.Normalize(ListQuery{Page: -3, PageSize: -1}, 10, 100)
	require.EqualValues(t, 1, q.Page)
	require.EqualValues(t, 10, q.PageSize)
}

// PageSize ограничен сверху максимумом из конфигурации.
func TestListSpec_Normalize_MaxClamp(t *testing.T) {
	t.Parallel()

	q := blogListSpec.Normalize(ListQuery{PageSize: 5000}, 10, 100)
	require.EqualValues(t, 100, q.PageSize)
}

// Поле сортировки вне белого списка заменяется дефолтным — защита от
// сортировки по произвольным полям документа.
func TestListSpec_Normalize_SortAllowList(t *testing.T) {
	t.Parallel()

	q := blogListSpec.Normalize(ListQuery{SortBy: "passwordHash"}, 10, 100)
	require.Equal(t, "createdAt", q.SortBy)

	q = blogListSpec.Normalize(ListQuery{SortBy: "name", SortDirection: SortAsc}, 10, 100)
	require.Equal(t, "name", q.SortBy)
	require.Equal(t, SortAsc, q.SortDirection)
}

// skip = (page-1)*pageSize.
func TestListQuery_Skip(t *testing.T) {
	t.Parallel()

	require.EqualValues(t, 0, ListQuery{Page: 1, PageSize: 10}.Skip())
	require.EqualValues(t, 10, ListQuery{Page: 2, PageSize: 10}.Skip())
	require.EqualValues(t, 20, ListQuery{Page: 3, PageSize: 10}.Skip())
}

// totalCount=25, pageSize=10 -> pagesCount=3; конверт сохраняет page/pageSize.
func TestNewPage_Arithmetic(t *testing.T) {
	t.Parallel()

	q := ListQuery{Page: 3, PageSize: 10}
	p := NewPage([]string{"a", "b", "c", "d", "e"}, 25, q)

	require.EqualValues(t, 3, p.PagesCount)
	require.EqualValues(t, 25, p.TotalCount)
	require.EqualValues(t, 3, p.PageNumber)
	require.EqualValues(t, 10, p.PageSize)
	require.Len(t, p.Items, 5)
}

// totalCount=0 -> pagesCount=0 и пустой (не nil) items; деления на ноль нет.
func TestNewPage_Empty(t *testing.T) {
	t.Parallel()

	p := NewPage[string](nil, 0, ListQuery{Page: 1, PageSize: 10})

	require.EqualValues(t, 0, p.PagesCount)
	require.EqualValues(t, 0, p.TotalCount)
	require.NotNil(t, p.Items)
	require.Empty(t, p.Items)
}

// Граница деления: ровно полные страницы и одна неполная.
func TestNewPage_Ceil(t *testing.T) {
	t.Parallel()

	q := ListQuery{Page: 1, PageSize: 10}

	require.EqualValues(t, 1, NewPage([]int{1}, 10, q).PagesCount)
	require.EqualValues(t, 2, NewPage([]int{1}, 11, q).PagesCount)
	require.EqualValues(t, 1, NewPage([]int{1}, 1, q).PagesCount)
}

// MapPage сохраняет конверт и применяет проекцию к каждому элементу.
func TestMapPage(t *testing.T) {
	t.Parallel()

	src := NewPage([]int{1, 2, 3}, 3, ListQuery{Page: 1, PageSize: 10})
	dst := MapPage(src, func(v int) int { return v * 2 })

	require.Equal(t, []int{2, 4, 6}, dst.Items)
	require.Equal(t, src.TotalCount, dst.TotalCount)
	require.Equal(t, src.PagesCount, dst.PagesCount)
	require.Equal(t, src.PageNumber, dst.PageNumber)
	require.Equal(t, src.PageSize, dst.PageSize)
}
