package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// crudRepository implements the shared.Repository operations of a single-table entity.
// Repositories embed it and add their own finders.
type crudRepository[T any] struct {
	db    *gorm.DB
	query listQuery
}

func newCRUDRepository[T any](db *gorm.DB, query listQuery) crudRepository[T] {
	return crudRepository[T]{db: db, query: query}
}

// FindByID finds an entity by ID
func (r crudRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := conn(ctx, r.db).First(&entity, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &entity, nil
}

// FindByIDs finds the entities with the given IDs
func (r crudRepository[T]) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]T, error) {
	var list []T
	if len(ids) == 0 {
		return list, nil
	}
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindAll finds entities matching the filter
func (r crudRepository[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	var list []T
	if err := r.query.applyFilter(conn(ctx, r.db), filter).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Count counts entities matching the filter
func (r crudRepository[T]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.query.applyFilterWithoutPagination(conn(ctx, r.db).Model(new(T)), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an entity
func (r crudRepository[T]) Save(ctx context.Context, entity *T) error {
	return translateError(conn(ctx, r.db).Save(entity).Error)
}

// Delete deletes an entity by ID
func (r crudRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), new(T), id)
}
