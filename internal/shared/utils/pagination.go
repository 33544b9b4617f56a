package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"seedfund/internal/shared/constants"
)

// Pagination holds normalized page parameters parsed from the query string.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination reads page/page_size query parameters and clamps them
// to sane bounds.
func ParsePagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil || page < 1 {
		page = constants.DefaultPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}
