package listview

import (
	"fmt"
	"testing"

	"hospital-admin-backend/internal/models"
)

type person struct {
	id      uint
	first   string
	last    string
	age     int
	gender  string
}

var personFields = Adapter[person]{
	ID:         func(p person) uint { return p.id },
	SearchText: func(p person) []string { return []string{p.first + " " + p.last} },
	Category:   func(p person) string { return p.gender },
	Surname:    func(p person) string { return p.last },
	Age:        func(p person) int { return p.age },
}

func makePeople(n int) []person {
	people := make([]person, 0, n)
	for i := 1; i <= n; i++ {
		gender := "Male"
		if i%2 == 0 {
			gender = "Female"
		}
		people = append(people, person{
			id:     uint(i),
			first:  fmt.Sprintf("First%d", i),
			last:   fmt.Sprintf("Last%02d", i),
			age:    20 + i,
			gender: gender,
		})
	}
	return people
}

// collectAll walks every page of the filtered collection in order
func collectAll(items []person, q Query) []person {
	var out []person
	q.Page = 1
	for {
		r := Apply(items, q, personFields)
		out = append(out, r.Items...)
		if !r.HasNext {
			return out
		}
		q.Page++
	}
}

func TestTwelveRecordsPaginate(t *testing.T) {
	people := makePeople(12)

	r := Apply(people, Query{Page: 1}, personFields)
	if len(r.Items) != 5 {
		t.Fatalf("page 1 length = %d, want 5", len(r.Items))
	}
	if r.Items[0].id != 1 || r.Items[4].id != 5 {
		t.Errorf("page 1 ids = %d..%d, want 1..5", r.Items[0].id, r.Items[4].id)
	}
	if r.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", r.TotalPages)
	}
	if !r.HasNext || r.HasPrev {
		t.Errorf("page 1 navigation: HasNext=%v HasPrev=%v", r.HasNext, r.HasPrev)
	}

	r = Apply(people, Query{Page: 3}, personFields)
	if len(r.Items) != 2 {
		t.Fatalf("page 3 length = %d, want 2", len(r.Items))
	}
	if r.Items[0].id != 11 || r.Items[1].id != 12 {
		t.Errorf("page 3 ids = %d, %d, want 11, 12", r.Items[0].id, r.Items[1].id)
	}
	if r.HasNext {
		t.Error("next should be disabled on the last page")
	}
}

func TestEmptyCollection(t *testing.T) {
	r := Apply(nil, Query{Page: 1}, personFields)
	if r.TotalPages != 1 {
		t.Errorf("total pages = %d, want 1", r.TotalPages)
	}
	if len(r.Items) != 0 {
		t.Errorf("items = %d, want 0", len(r.Items))
	}
	if r.HasNext || r.HasPrev {
		t.Errorf("navigation on empty collection: HasNext=%v HasPrev=%v", r.HasNext, r.HasPrev)
	}
}

func TestSliceLengthFormula(t *testing.T) {
	for n := 0; n <= 13; n++ {
		people := makePeople(n)
		totalPages := TotalPages(n)
		for page := 1; page <= totalPages; page++ {
			r := Apply(people, Query{Page: page}, personFields)
			want := n - (page-1)*PageSize
			if want > PageSize {
				want = PageSize
			}
			if want < 0 {
				want = 0
			}
			if len(r.Items) != want {
				t.Errorf("n=%d page=%d: length = %d, want %d", n, page, len(r.Items), want)
			}
		}
	}
}

func TestFilteringIsIdempotent(t *testing.T) {
	people := makePeople(12)
	q := Query{Search: "last0", Filter: "Female", Sort: SortAgeDesc}

	once := collectAll(people, q)
	twice := collectAll(once, q)

	if len(once) != len(twice) {
		t.Fatalf("second application changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("item %d differs after second application: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestIDSortReversal(t *testing.T) {
	people := makePeople(12)

	asc := collectAll(people, Query{Sort: SortIDAsc})
	desc := collectAll(people, Query{Sort: SortIDDesc})

	if len(asc) != len(desc) {
		t.Fatalf("length mismatch: %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i].id != desc[len(desc)-1-i].id {
			t.Errorf("position %d: idAsc=%d, idDesc mirror=%d", i, asc[i].id, desc[len(desc)-1-i].id)
		}
	}
}

func TestSurnameSort(t *testing.T) {
	people := []person{
		{id: 1, first: "Ana", last: "Zimmer"},
		{id: 2, first: "Bob", last: "adams"},
		{id: 3, first: "Cruz", last: "Miller"},
	}

	r := Apply(people, Query{Sort: SortNameAZ, Page: 1}, personFields)
	got := [3]uint{r.Items[0].id, r.Items[1].id, r.Items[2].id}
	want := [3]uint{2, 3, 1}
	if got != want {
		t.Errorf("nameAZ order = %v, want %v", got, want)
	}

	r = Apply(people, Query{Sort: SortNameZA, Page: 1}, personFields)
	if r.Items[0].id != 1 || r.Items[2].id != 2 {
		t.Errorf("nameZA order = %v", r.Items)
	}
}

func TestSortIsStable(t *testing.T) {
	people := []person{
		{id: 3, last: "Same", age: 30},
		{id: 1, last: "Same", age: 30},
		{id: 2, last: "Same", age: 30},
	}

	r := Apply(people, Query{Sort: SortAgeAsc, Page: 1}, personFields)
	if r.Items[0].id != 3 || r.Items[1].id != 1 || r.Items[2].id != 2 {
		t.Errorf("tied records should keep fetched order, got %v", r.Items)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	people := []person{
		{id: 1, first: "John", last: "Doe"},
		{id: 2, first: "Jane", last: "Roe"},
	}

	r := Apply(people, Query{Search: "JOHN", Page: 1}, personFields)
	if len(r.Items) != 1 || r.Items[0].id != 1 {
		t.Errorf("search JOHN matched %v", r.Items)
	}

	r = Apply(people, Query{Search: "  doe ", Page: 1}, personFields)
	if len(r.Items) != 1 || r.Items[0].id != 1 {
		t.Errorf("search with surrounding spaces matched %v", r.Items)
	}
}

func TestCategoricalFilter(t *testing.T) {
	people := makePeople(10)
	r := Apply(people, Query{Filter: "Female", Page: 1}, personFields)
	if r.Total != 5 {
		t.Fatalf("filtered total = %d, want 5", r.Total)
	}
	for _, p := range r.Items {
		if p.gender != "Female" {
			t.Errorf("record %d leaked through gender filter", p.id)
		}
	}
}

func TestPageClampedAfterFilterShrink(t *testing.T) {
	people := makePeople(10)

	// Page 3 is valid unfiltered, but filtering to 5 records leaves one page
	r := Apply(people, Query{Filter: "Female", Page: 3}, personFields)
	if r.Page != 1 {
		t.Errorf("page = %d, want clamp to 1", r.Page)
	}
	if len(r.Items) != 5 {
		t.Errorf("clamped page length = %d, want 5", len(r.Items))
	}
}

var billingFields = Adapter[models.BillingWithPatient]{
	ID:         func(b models.BillingWithPatient) uint { return b.BillingID },
	SearchText: func(b models.BillingWithPatient) []string { return []string{b.PatientName, b.Notes} },
	Category:   func(b models.BillingWithPatient) string { return b.Status },
}

func TestBillingStatusAndSearchCombine(t *testing.T) {
	records := []models.BillingWithPatient{
		{BillingID: 1, PatientName: "John Smith", Status: "Paid"},
		{BillingID: 2, PatientName: "Mary Johnson", Status: "Paid", Notes: "follow-up"},
		{BillingID: 3, PatientName: "John Smith", Status: "Unpaid"},
		{BillingID: 4, PatientName: "Alice Brown", Status: "Paid", Notes: "paid by John's employer"},
		{BillingID: 5, PatientName: "Bob Ray", Status: "Pending", Notes: "john to confirm"},
	}

	r := Apply(records, Query{Search: "john", Filter: "Paid", Page: 1}, billingFields)

	want := map[uint]bool{1: true, 2: true, 4: true}
	if len(r.Items) != len(want) {
		t.Fatalf("matched %d records, want %d", len(r.Items), len(want))
	}
	for _, b := range r.Items {
		if !want[b.BillingID] {
			t.Errorf("unexpected record %d in result", b.BillingID)
		}
		if b.Status != "Paid" {
			t.Errorf("record %d has status %q, want Paid", b.BillingID, b.Status)
		}
	}
}
