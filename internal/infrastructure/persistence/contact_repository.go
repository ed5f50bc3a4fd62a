package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/contacts"
	"github.com/precast-erp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormContactRepository implements ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

// NewGormContactRepository creates a new GormContactRepository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

var contactQuery = listQuery{
	searchColumns: []string{"first_name", "last_name", "company_name", "email", "phone", "city"},
	filterColumns: filterColumns("type", "status"),
	sortFields:    sortFields("company_name", "last_name", "type", "status", "city"),
	defaultOrder:  "created_at DESC",
}

// FindByID finds a contact by ID
func (r *GormContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*contacts.Contact, error) {
	var c contacts.Contact
	if err := conn(ctx, r.db).First(&c, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

// FindByIDs finds contacts by their IDs
func (r *GormContactRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]contacts.Contact, error) {
	var list []contacts.Contact
	if len(ids) == 0 {
		return list, nil
	}
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// FindAll finds contacts matching the filter
func (r *GormContactRepository) FindAll(ctx context.Context, filter shared.Filter) ([]contacts.Contact, error) {
	var list []contacts.Contact
	query := contactQuery.applyFilter(r.withTag(conn(ctx, r.db), filter), filter)
	if err := query.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// Count counts contacts matching the filter
func (r *GormContactRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := conn(ctx, r.db).Model(&contacts.Contact{})
	query = contactQuery.applyFilterWithoutPagination(r.withTag(query, filter), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a contact
func (r *GormContactRepository) Save(ctx context.Context, c *contacts.Contact) error {
	return translateError(conn(ctx, r.db).Save(c).Error)
}

// Delete deletes a contact
func (r *GormContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(conn(ctx, r.db), &contacts.Contact{}, id)
}

// withTag matches the quoted tag inside the JSON array column
func (r *GormContactRepository) withTag(query *gorm.DB, filter shared.Filter) *gorm.DB {
	tag, _ := filter.Filters[contacts.FilterTag].(string)
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return query
	}
	return query.Where("LOWER(CAST(tags AS TEXT)) LIKE ?", `%"`+strings.ToLower(tag)+`"%`)
}

var _ contacts.ContactRepository = (*GormContactRepository)(nil)
