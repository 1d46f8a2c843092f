package response

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxPageLimit caps the page size a client may ask for.
const MaxPageLimit = 100

// maxPage keeps (page-1)*limit inside int32 for every allowed limit.
const maxPage = math.MaxInt32 / MaxPageLimit

// NormalizePage clamps page to [1, maxPage] and limit to [1, MaxPageLimit],
// using defaultLimit when limit is not positive.
func NormalizePage(page, limit, defaultLimit int) (int, int) {
	switch {
	case page < 1:
		page = 1
	case page > maxPage:
		page = maxPage
	}
	switch {
	case limit < 1:
		limit = defaultLimit
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	return page, limit
}

// PageQuery reads ?page= and ?limit= and normalizes them. Malformed values
// fall back to the defaults.
func PageQuery(c *gin.Context, defaultLimit int) (int, int) {
	return NormalizePage(queryInt(c, "page"), queryInt(c, "limit"), defaultLimit)
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
