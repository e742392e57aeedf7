package handler

import (
	"strconv"

	"hospital-admin-backend/internal/listview"

	"github.com/gin-gonic/gin"
)

// listQuery builds a list engine query from the request's query string.
// filterParam names the entity's categorical parameter ("" when the entity
// has none). The second return value reports whether any list parameter was
// supplied; plain GETs without parameters return the full collection.
func listQuery(c *gin.Context, filterParam string) (listview.Query, bool) {
	q := listview.Query{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Page:   1,
	}
	if filterParam != "" {
		q.Filter = c.Query(filterParam)
	}

	pageParam := c.Query("page")
	if pageParam != "" {
		if n, err := strconv.Atoi(pageParam); err == nil {
			q.Page = n
		}
	}

	active := q.Search != "" || q.Filter != "" || q.Sort != "" || pageParam != ""
	return q, active
}
