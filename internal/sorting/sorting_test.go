package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type group struct {
	Name string
	Rank int
}

type item struct {
	ID    int
	Title string
	Score *float64
	Group group
}

type deepGroup struct {
	Inner group
}

type deepItem struct {
	Group deepGroup
}

func itemResolver() *Resolver[item] {
	groupResolver := NewResolver(
		StringField("Name", func(g group) string { return g.Name }),
		IntField("Rank", func(g group) int { return g.Rank }),
	)

	return NewResolver(
		IntField("Id", func(i item) int { return i.ID }),
		StringField("Title", func(i item) string { return i.Title }),
		Float64PtrField("Score", func(i item) *float64 { return i.Score }),
		Nested("Group", func(i item) group { return i.Group }, groupResolver),
	)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestApply_SortByDirectField(t *testing.T) {
	items := []item{
		{ID: 1, Title: "citrus"},
		{ID: 2, Title: "apple"},
		{ID: 3, Title: "banana"},
	}

	sorted := Apply(items, itemResolver(), BaseFilter{ColumnFilter: "title"}, false)

	require.Len(t, sorted, 3)
	assert.Equal(t, "apple", sorted[0].Title)
	assert.Equal(t, "banana", sorted[1].Title)
	assert.Equal(t, "citrus", sorted[2].Title)

	// Исходный срез не изменяется
	assert.Equal(t, "citrus", items[0].Title)
}

func TestApply_SortByNestedField(t *testing.T) {
	items := []item{
		{ID: 1, Group: group{Name: "zeta"}},
		{ID: 2, Group: group{Name: "alpha"}},
		{ID: 3, Group: group{Name: "mid"}},
	}

	sorted := Apply(items, itemResolver(), BaseFilter{ColumnFilter: "name"}, false)

	require.Len(t, sorted, 3)
	assert.Equal(t, "alpha", sorted[0].Group.Name)
	assert.Equal(t, "mid", sorted[1].Group.Name)
	assert.Equal(t, "zeta", sorted[2].Group.Name)
}

func TestApply_SortDescending(t *testing.T) {
	items := []item{
		{ID: 1},
		{ID: 3},
		{ID: 2},
	}

	sorted := Apply(items, itemResolver(), BaseFilter{ColumnFilter: "id", SortBy: DESC}, false)

	require.Len(t, sorted, 3)
	assert.Equal(t, 3, sorted[0].ID)
	assert.Equal(t, 2, sorted[1].ID)
	assert.Equal(t, 1, sorted[2].ID)
}

func TestApply_UnknownColumnKeepsOrder(t *testing.T) {
	items := []item{
		{ID: 3},
		{ID: 1},
		{ID: 2},
	}

	sorted := Apply(items, itemResolver(), BaseFilter{ColumnFilter: "no_such_column"}, false)

	require.Len(t, sorted, 3)
	assert.Equal(t, 3, sorted[0].ID)
	assert.Equal(t, 1, sorted[1].ID)
	assert.Equal(t, 2, sorted[2].ID)
}

func TestApply_UnknownColumnStillPaginates(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	page := Apply(items, itemResolver(), BaseFilter{
		ColumnFilter: "no_such_column",
		Skip:         intPtr(1),
		Limit:        intPtr(2),
	}, true)

	require.Len(t, page, 2)
	assert.Equal(t, 2, page[0].ID)
	assert.Equal(t, 3, page[1].ID)
}

func TestApply_PaginationDefaults(t *testing.T) {
	items := make([]item, 25)
	for i := range items {
		items[i] = item{ID: i + 1}
	}

	// Без skip и limit применяются значения по умолчанию: 0 и 10
	page := Apply(items, itemResolver(), BaseFilter{}, true)

	require.Len(t, page, DefaultLimit)
	assert.Equal(t, 1, page[0].ID)
	assert.Equal(t, 10, page[9].ID)
}

func TestApply_PaginationWindow(t *testing.T) {
	items := make([]item, 25)
	for i := range items {
		items[i] = item{ID: i + 1}
	}

	page := Apply(items, itemResolver(), BaseFilter{
		ColumnFilter: "id",
		Skip:         intPtr(10),
		Limit:        intPtr(5),
	}, true)

	require.Len(t, page, 5)
	assert.Equal(t, 11, page[0].ID)
	assert.Equal(t, 15, page[4].ID)
}

func TestApply_SkipBeyondLength(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}}

	page := Apply(items, itemResolver(), BaseFilter{Skip: intPtr(10)}, true)

	assert.Empty(t, page)
}

func TestApply_WithoutPagination(t *testing.T) {
	items := make([]item, 25)
	for i := range items {
		items[i] = item{ID: i + 1}
	}

	all := Apply(items, itemResolver(), BaseFilter{}, false)

	assert.Len(t, all, 25)
}

func TestApply_NilPointersSortFirst(t *testing.T) {
	items := []item{
		{ID: 1, Score: floatPtr(50)},
		{ID: 2},
		{ID: 3, Score: floatPtr(10)},
	}

	sorted := Apply(items, itemResolver(), BaseFilter{ColumnFilter: "score"}, false)

	require.Len(t, sorted, 3)
	assert.Equal(t, 2, sorted[0].ID)
	assert.Equal(t, 3, sorted[1].ID)
	assert.Equal(t, 1, sorted[2].ID)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	r := itemResolver()

	_, ok := r.Resolve("TITLE")
	assert.True(t, ok)

	_, ok = r.Resolve("tItLe")
	assert.True(t, ok)
}

func TestResolve_DirectFieldWinsOverNested(t *testing.T) {
	// Прямое поле Rank у элемента и поле Rank внутри группы
	type ranked struct {
		Rank  int
		Group group
	}

	groupResolver := NewResolver(
		IntField("Rank", func(g group) int { return g.Rank }),
	)
	r := NewResolver(
		Nested("Group", func(x ranked) group { return x.Group }, groupResolver),
		IntField("Rank", func(x ranked) int { return x.Rank }),
	)

	items := []ranked{
		{Rank: 2, Group: group{Rank: 1}},
		{Rank: 1, Group: group{Rank: 2}},
	}

	sorted := Apply(items, r, BaseFilter{ColumnFilter: "rank"}, false)

	// Сортировка идет по прямому полю, хотя вложенное объявлено раньше
	assert.Equal(t, 1, sorted[0].Rank)
	assert.Equal(t, 2, sorted[1].Rank)
}

func TestResolve_DepthLimit(t *testing.T) {
	// Поле третьего уровня недостижимо: глубина ограничена двумя
	innerResolver := NewResolver(
		StringField("Name", func(g group) string { return g.Name }),
	)
	deepResolver := NewResolver(
		Nested("Inner", func(d deepGroup) group { return d.Inner }, innerResolver),
	)
	r := NewResolver(
		Nested("Group", func(d deepItem) deepGroup { return d.Group }, deepResolver),
	)

	_, ok := r.Resolve("name")
	assert.False(t, ok)
}
