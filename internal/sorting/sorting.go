package sorting

import (
	"sort"
	"strings"
	"time"
)

// Направление сортировки. По умолчанию используется ASC.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// DefaultLimit задает размер страницы, если клиент не передал limit.
const DefaultLimit = 10

// maxDepth ограничивает глубину поиска поля (поле или поле-поля).
// Защищает от бесконечного обхода взаимно ссылающихся типов.
const maxDepth = 2

// BaseFilter описывает общие параметры сортировки и пагинации запроса.
type BaseFilter struct {
	ColumnFilter string    `json:"column_filter"`
	SortBy       Direction `json:"sort_by"`
	Skip         *int      `json:"skip"`
	Limit        *int      `json:"limit"`
}

// Field дает именованный типизированный доступ к полю T для сортировки.
// Компаратор строится один раз при регистрации, без рефлексии на каждый элемент.
type Field[T any] struct {
	name    string
	compare func(a, b T) int
	// lookup заполняется только для составных полей и ищет колонку уровнем ниже
	lookup func(column string, depth int) (func(a, b T) int, bool)
}

// Resolver хранит зарегистрированные поля T в порядке объявления.
type Resolver[T any] struct {
	fields []Field[T]
}

// NewResolver регистрирует поля. Порядок аргументов определяет порядок поиска.
func NewResolver[T any](fields ...Field[T]) *Resolver[T] {
	return &Resolver[T]{fields: fields}
}

// Resolve ищет компаратор по имени колонки без учета регистра.
// Сначала просматриваются прямые поля, затем поля составных полей (глубина 2).
// Первое совпадение выигрывает.
func (r *Resolver[T]) Resolve(column string) (func(a, b T) int, bool) {
	return r.resolve(column, 1)
}

func (r *Resolver[T]) resolve(column string, depth int) (func(a, b T) int, bool) {
	for _, f := range r.fields {
		if f.compare != nil && strings.EqualFold(f.name, column) {
			return f.compare, true
		}
	}

	if depth >= maxDepth {
		return nil, false
	}

	for _, f := range r.fields {
		if f.lookup == nil {
			continue
		}
		if compare, ok := f.lookup(column, depth+1); ok {
			return compare, true
		}
	}

	return nil, false
}

// Apply сортирует и, при необходимости, постранично ограничивает элементы.
// Неизвестная колонка не считается ошибкой: порядок остается исходным,
// пагинация при этом все равно применяется.
func Apply[T any](items []T, r *Resolver[T], filter BaseFilter, paginate bool) []T {
	if filter.ColumnFilter != "" && r != nil {
		if compare, ok := r.Resolve(filter.ColumnFilter); ok {
			sorted := make([]T, len(items))
			copy(sorted, items)

			sort.SliceStable(sorted, func(i, j int) bool {
				if filter.SortBy == DESC {
					return compare(sorted[j], sorted[i]) < 0
				}
				return compare(sorted[i], sorted[j]) < 0
			})

			items = sorted
		}
	}

	if !paginate {
		return items
	}

	skip := 0
	if filter.Skip != nil && *filter.Skip > 0 {
		skip = *filter.Skip
	}

	limit := DefaultLimit
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	if limit < 0 {
		limit = 0
	}

	if skip >= len(items) {
		return []T{}
	}

	end := skip + limit
	if end > len(items) {
		end = len(items)
	}

	return items[skip:end]
}

// StringField регистрирует строковое поле.
func StringField[T any](name string, get func(T) string) Field[T] {
	return Field[T]{name: name, compare: func(a, b T) int {
		return strings.Compare(get(a), get(b))
	}}
}

// StringPtrField регистрирует опциональное строковое поле. nil идет первым.
func StringPtrField[T any](name string, get func(T) *string) Field[T] {
	return Field[T]{name: name, compare: func(a, b T) int {
		av, bv := get(a), get(b)
		if cmp, done := compareNil(av == nil, bv == nil); done {
			return cmp
		}
		return strings.Compare(*av, *bv)
	}}
}

// IntField регистрирует целочисленное поле.
func IntField[T any](name string, get func(T) int) Field[T] {
	return Field[T]{name: name, compare: func(a, b T) int {
		return compareInt(get(a), get(b))
	}}
}

// IntPtrField регистрирует опциональное целочисленное поле. nil идет первым.
func IntPtrField[T any](name string, get func(T) *int) Field[T] {
	return Field[T]{name: name, compare: func(a, b T) int {
		av, bv := get(a), get(b)
		if cmp, done := compareNil(av == nil, bv == nil); done {
			return cmp
		}
		return compareInt(*av, *bv)
	}}
}

// Float64PtrField регистрирует опциональное числовое поле. nil идет первым.
func Float64PtrField[T any](name string, get func(T) *float64) Field[T] {
	return Field[T]{name: name, compare: func(a, b T) int {
		av, bv := get(a), get(b)
		if cmp, done := compareNil(av == nil, bv == nil); done {
			return cmp
		}
		switch {
		case *av < *bv:
			return -1
		case *av > *bv:
			return 1
		}
		return 0
	}}
}

// TimeField регистрирует поле даты/времени.
func TimeField[T any](name string, get func(T) time.Time) Field[T] {
	return Field[T]{name: name, compare: func(a, b T) int {
		return get(a).Compare(get(b))
	}}
}

// TimePtrField регистрирует опциональное поле даты/времени. nil идет первым.
func TimePtrField[T any](name string, get func(T) *time.Time) Field[T] {
	return Field[T]{name: name, compare: func(a, b T) int {
		av, bv := get(a), get(b)
		if cmp, done := compareNil(av == nil, bv == nil); done {
			return cmp
		}
		return av.Compare(*bv)
	}}
}

// Nested регистрирует составное поле: поиск колонки продолжается в полях C,
// но не глубже maxDepth. Само имя составного поля для сортировки не используется.
func Nested[T, C any](name string, get func(T) C, child *Resolver[C]) Field[T] {
	return Field[T]{
		name: name,
		lookup: func(column string, depth int) (func(a, b T) int, bool) {
			compare, ok := child.resolve(column, depth)
			if !ok {
				return nil, false
			}
			return func(a, b T) int {
				return compare(get(a), get(b))
			}, true
		},
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareNil упорядочивает nil раньше значения; done=false значит оба не nil.
func compareNil(aNil, bNil bool) (int, bool) {
	switch {
	case aNil && bNil:
		return 0, true
	case aNil:
		return -1, true
	case bNil:
		return 1, true
	}
	return 0, false
}
