package listview

import "testing"

func newTestState(n int) *State[person] {
	s := NewState(personFields)
	s.SetItems(makePeople(n))
	return s
}

func TestStateStartsOnPageOne(t *testing.T) {
	s := newTestState(12)
	if got := s.View().Page; got != 1 {
		t.Errorf("initial page = %d, want 1", got)
	}
}

func TestQueryChangeResetsPage(t *testing.T) {
	cases := []struct {
		name   string
		change func(*State[person])
	}{
		{"search", func(s *State[person]) { s.SetSearch("last") }},
		{"filter", func(s *State[person]) { s.SetFilter("Male") }},
		{"sort", func(s *State[person]) { s.SetSort(SortIDDesc) }},
		{"refetch", func(s *State[person]) { s.SetItems(makePeople(12)) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(12)
			s.NextPage()
			s.NextPage()
			if s.Current().Page != 3 {
				t.Fatalf("setup page = %d, want 3", s.Current().Page)
			}

			tc.change(s)
			if s.Current().Page != 1 {
				t.Errorf("page after %s change = %d, want 1", tc.name, s.Current().Page)
			}
		})
	}
}

func TestNextPageStopsAtLast(t *testing.T) {
	s := newTestState(12)
	for i := 0; i < 10; i++ {
		s.NextPage()
	}
	if s.Current().Page != 3 {
		t.Errorf("page = %d, want 3 after repeated next", s.Current().Page)
	}
	if s.View().HasNext {
		t.Error("next should be disabled on the last page")
	}
}

func TestPrevPageStopsAtFirst(t *testing.T) {
	s := newTestState(12)
	s.PrevPage()
	if s.Current().Page != 1 {
		t.Errorf("page = %d, want 1 after prev on first page", s.Current().Page)
	}
}

func TestNextPageBoundedByFilteredCount(t *testing.T) {
	s := newTestState(12)
	s.SetFilter("Female") // 6 records, 2 pages
	s.NextPage()
	s.NextPage()
	s.NextPage()
	if s.Current().Page != 2 {
		t.Errorf("page = %d, want 2 with 6 filtered records", s.Current().Page)
	}
}

func TestViewMatchesApply(t *testing.T) {
	s := newTestState(12)
	s.SetSearch("last1")
	s.SetSort(SortIDDesc)

	direct := Apply(makePeople(12), s.Current(), personFields)
	view := s.View()

	if view.Total != direct.Total || view.Page != direct.Page || len(view.Items) != len(direct.Items) {
		t.Errorf("View() diverges from Apply(): %+v vs %+v", view, direct)
	}
}
