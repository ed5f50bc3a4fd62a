package persistence

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// listQuery describes how a repository maps a shared.Filter onto its table
type listQuery struct {
	// searchColumns are matched case-insensitively against Filter.Search
	searchColumns []string
	// filterColumns whitelists Filter.Filters keys
	filterColumns map[string]bool
	// sortFields whitelists Filter.OrderBy
	sortFields   map[string]bool
	defaultOrder string
	// rangeFilters maps Filter.Filters keys to comparison conditions such as "week_start >= ?"
	rangeFilters map[string]string
}

// applyFilterWithoutPagination applies search and equality filters
func (q listQuery) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if search := strings.TrimSpace(filter.Search); search != "" && len(q.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(search) + "%"
		conds := make([]string, len(q.searchColumns))
		args := make([]interface{}, len(q.searchColumns))
		for i, col := range q.searchColumns {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}

	for key, value := range filter.Filters {
		if cond, ok := q.rangeFilters[key]; ok {
			query = query.Where(cond, value)
			continue
		}
		if !q.filterColumns[key] {
			continue
		}
		query = query.Where(clause.Eq{Column: clause.Column{Name: key}, Value: value})
	}
	return query
}

// applyFilter applies filters, ordering and pagination
func (q listQuery) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = q.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	field := ValidateSortField(filter.OrderBy, q.sortFields, "")
	if field == "" {
		return query.Order(q.defaultOrder)
	}
	return query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
}

// translateError maps gorm sentinel errors to domain errors
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrAlreadyExists
	}
	return err
}

// deleteByID deletes a row of model's table and reports ErrNotFound when nothing matched
func deleteByID(db *gorm.DB, model interface{}, id interface{}) error {
	result := db.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// pruneChildren deletes rows of model whose fkColumn is parentID and whose id is not in keep
func pruneChildren(tx *gorm.DB, model interface{}, fkColumn string, parentID interface{}, keep []uuid.UUID) error {
	query := tx.Where(fkColumn+" = ?", parentID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	return query.Delete(model).Error
}
