package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// ceil(total / limit)
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   limit,
	}
}

type ApiEnvelope struct {
	Ok    bool `json:"ok"`
	Data  any  `json:"data,omitempty"`
	Error any  `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
	})
}

// Page writes a list envelope of the form
// {"ok":true,"data":[...],"currentPage":1,"totalPages":2,"<totalKey>":7}.
func Page(c *gin.Context, status int, data interface{}, meta PaginationMeta, totalKey string) {
	c.JSON(status, gin.H{
		"ok":          true,
		"data":        data,
		"currentPage": meta.Page,
		"totalPages":  meta.TotalPages,
		totalKey:      meta.Total,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
