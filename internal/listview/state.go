package listview

// State is the explicitly-owned view state for one entity page: the full
// fetched collection plus the current query. Changing the search term,
// categorical filter or sort key resets the page to 1; page navigation is
// bounded by the filtered page count. State holds no network or storage
// side effects, so it can be driven entirely from tests.
type State[T any] struct {
	items   []T
	query   Query
	adapter Adapter[T]
}

// NewState returns an empty view state starting on page 1
func NewState[T any](a Adapter[T]) *State[T] {
	return &State[T]{
		query:   Query{Page: 1},
		adapter: a,
	}
}

// SetItems replaces the collection after a re-fetch and resets to page 1
func (s *State[T]) SetItems(items []T) {
	s.items = items
	s.query.Page = 1
}

// SetSearch updates the search term and resets to page 1
func (s *State[T]) SetSearch(term string) {
	s.query.Search = term
	s.query.Page = 1
}

// SetFilter updates the categorical filter and resets to page 1
func (s *State[T]) SetFilter(value string) {
	s.query.Filter = value
	s.query.Page = 1
}

// SetSort updates the sort key and resets to page 1
func (s *State[T]) SetSort(key string) {
	s.query.Sort = key
	s.query.Page = 1
}

// NextPage advances one page unless already on the last
func (s *State[T]) NextPage() {
	if s.query.Page < s.totalPages() {
		s.query.Page++
	}
}

// PrevPage goes back one page unless already on the first
func (s *State[T]) PrevPage() {
	if s.query.Page > 1 {
		s.query.Page--
	}
}

// Current returns the query as it stands
func (s *State[T]) Current() Query {
	return s.query
}

// View computes the visible page for the current query
func (s *State[T]) View() Result[T] {
	return Apply(s.items, s.query, s.adapter)
}

func (s *State[T]) totalPages() int {
	return TotalPages(len(filter(s.items, s.query, s.adapter)))
}
