package listview

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the fixed number of rows per page on every entity page
const PageSize = 5

// Sort keys accepted by the engine. Each entity page wires a subset.
const (
	SortIDAsc   = "idAsc"
	SortIDDesc  = "idDesc"
	SortNameAZ  = "nameAZ"
	SortNameZA  = "nameZA"
	SortAgeAsc  = "ageAsc"
	SortAgeDesc = "ageDesc"
)

// Query holds the user-controlled list inputs for one entity page
type Query struct {
	Search string `json:"search"`
	Filter string `json:"filter"`
	Sort   string `json:"sort"`
	Page   int    `json:"page"` // 1-based
}

// Adapter tells the engine how to read an entity's fields. SearchText
// returns the display fields matched by the search term. Category, Surname
// and Age may be nil when the entity has no such field; sort keys or filters
// that need a missing accessor are ignored.
type Adapter[T any] struct {
	ID         func(T) uint
	SearchText func(T) []string
	Category   func(T) string
	Surname    func(T) string
	Age        func(T) int
}

// Result is one visible page plus its pagination metadata
type Result[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	Total      int  `json:"total"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// Apply computes the visible slice: search filter, then categorical filter,
// then a stable sort, then the page slice. The page number is clamped to
// [1, totalPages], so a page left dangling after a filter shrinks the
// collection lands on the last page instead of an empty one. No sort key
// means records keep the order they were fetched in.
func Apply[T any](items []T, q Query, a Adapter[T]) Result[T] {
	filtered := filter(items, q, a)
	sortItems(filtered, q.Sort, a)

	total := len(filtered)
	totalPages := TotalPages(total)

	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Items:      filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// TotalPages returns max(1, ceil(total/PageSize))
func TotalPages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}

func filter[T any](items []T, q Query, a Adapter[T]) []T {
	out := make([]T, 0, len(items))
	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, item := range items {
		if term != "" && a.SearchText != nil {
			matched := false
			for _, field := range a.SearchText(item) {
				if strings.Contains(strings.ToLower(field), term) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if q.Filter != "" && a.Category != nil && a.Category(item) != q.Filter {
			continue
		}
		out = append(out, item)
	}
	return out
}

func sortItems[T any](items []T, key string, a Adapter[T]) {
	switch key {
	case SortIDAsc:
		if a.ID == nil {
			return
		}
		slices.SortStableFunc(items, func(x, y T) int {
			return int(a.ID(x)) - int(a.ID(y))
		})
	case SortIDDesc:
		if a.ID == nil {
			return
		}
		slices.SortStableFunc(items, func(x, y T) int {
			return int(a.ID(y)) - int(a.ID(x))
		})
	case SortNameAZ:
		if a.Surname == nil {
			return
		}
		c := collate.New(language.English)
		slices.SortStableFunc(items, func(x, y T) int {
			return c.CompareString(a.Surname(x), a.Surname(y))
		})
	case SortNameZA:
		if a.Surname == nil {
			return
		}
		c := collate.New(language.English)
		slices.SortStableFunc(items, func(x, y T) int {
			return c.CompareString(a.Surname(y), a.Surname(x))
		})
	case SortAgeAsc:
		if a.Age == nil {
			return
		}
		slices.SortStableFunc(items, func(x, y T) int {
			return a.Age(x) - a.Age(y)
		})
	case SortAgeDesc:
		if a.Age == nil {
			return
		}
		slices.SortStableFunc(items, func(x, y T) int {
			return a.Age(y) - a.Age(x)
		})
	}
}
