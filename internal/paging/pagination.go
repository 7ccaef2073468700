package paging

// Page описывает одну страницу элементов.
type Page[T any] struct {
	Items    []T // элементы на текущей странице
	Page     int // номер страницы (с 1)
	PageSize int // количество элементов на странице
	HasNext  bool
	HasPrev  bool
	Total    int // общее количество элементов
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize приводит номер и размер страницы к допустимым значениям.
func Normalize(page, pageSize int) (int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page <= 0 {
		page = 1
	}
	return page, pageSize
}

// Offset возвращает смещение для запроса к хранилищу.
func Offset(page, pageSize int) int {
	page, pageSize = Normalize(page, pageSize)
	return (page - 1) * pageSize
}

// FromWindow собирает страницу из уже выбранного окна items и общего числа записей.
func FromWindow[T any](items []T, page, pageSize int, total int64) Page[T] {
	page, pageSize = Normalize(page, pageSize)
	if items == nil {
		items = []T{}
	}
	end := (page-1)*pageSize + len(items)
	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		HasNext:  int64(end) < total,
		HasPrev:  page > 1,
		Total:    int(total),
	}
}
