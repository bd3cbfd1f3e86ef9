package persistence

import (
	"fmt"
	"strings"

	"github.com/shoplite/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPaging applies ordering and pagination from the filter. The order
// column is matched against the allowed set to keep user input out of the
// ORDER BY clause.
func applyPaging(query *gorm.DB, filter shared.Filter, allowedOrderColumns ...string) *gorm.DB {
	orderBy := "created_at"
	for _, col := range allowedOrderColumns {
		if filter.OrderBy == col {
			orderBy = col
			break
		}
	}
	orderDir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		orderDir = "ASC"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}
