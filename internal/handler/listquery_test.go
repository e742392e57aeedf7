package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/patients?"+rawQuery, nil)
	return c
}

func TestListQueryInactiveWithoutParams(t *testing.T) {
	if _, active := listQuery(queryContext(""), "gender"); active {
		t.Error("bare GET should not activate the list engine")
	}
}

func TestListQueryParams(t *testing.T) {
	q, active := listQuery(queryContext("search=smith&gender=Female&sort=nameAZ&page=2"), "gender")
	if !active {
		t.Fatal("query parameters should activate the list engine")
	}
	if q.Search != "smith" || q.Filter != "Female" || q.Sort != "nameAZ" || q.Page != 2 {
		t.Errorf("query = %+v", q)
	}
}

func TestListQueryIgnoresUnnamedFilter(t *testing.T) {
	q, active := listQuery(queryContext("gender=Female"), "")
	if active {
		t.Error("a filter the entity does not declare should not activate the engine")
	}
	if q.Filter != "" {
		t.Errorf("filter = %q, want empty", q.Filter)
	}
}

func TestListQueryBadPageDefaultsToOne(t *testing.T) {
	q, active := listQuery(queryContext("page=abc"), "")
	if !active {
		t.Error("a page parameter activates the engine even when malformed")
	}
	if q.Page != 1 {
		t.Errorf("page = %d, want 1", q.Page)
	}
}

func TestParseCheckInLayouts(t *testing.T) {
	want := time.Date(2026, 2, 5, 14, 30, 0, 0, time.Local)

	for _, value := range []string{
		"2026-02-05T14:30",
		"2026-02-05T14:30:00",
		"2026-02-05 14:30:00",
	} {
		got, err := parseCheckIn(value)
		if err != nil {
			t.Errorf("parseCheckIn(%q): %v", value, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("parseCheckIn(%q) = %v, want %v", value, got, want)
		}
	}

	if _, err := parseCheckIn("05/02/2026"); err == nil {
		t.Error("parseCheckIn should reject an unknown layout")
	}
}
