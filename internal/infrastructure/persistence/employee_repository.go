package persistence

import (
	"github.com/precast-erp/backend/internal/domain/hr"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements EmployeeRepository using GORM
type GormEmployeeRepository struct {
	crudRepository[hr.Employee]
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{newCRUDRepository[hr.Employee](db, employeeQuery)}
}

var employeeQuery = listQuery{
	searchColumns: []string{"employee_number", "first_name", "last_name", "email", "position"},
	filterColumns: filterColumns("status", "department"),
	sortFields:    sortFields("employee_number", "first_name", "last_name", "department", "hire_date", "status"),
	defaultOrder:  "last_name ASC, first_name ASC",
}

var _ hr.EmployeeRepository = (*GormEmployeeRepository)(nil)
