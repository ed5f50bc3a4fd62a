package hr

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/hr"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// EmployeeService handles employee records
type EmployeeService struct {
	repo hr.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(repo hr.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// ListEmployees returns a page of employees matching the filter
func (s *EmployeeService) ListEmployees(ctx context.Context, filter EmployeeListFilter) ([]EmployeeResponse, int64, error) {
	f := filter.Filter().
		With("status", filter.Status).
		With("department", filter.Department)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch employees", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch employees", err)
	}
	responses := make([]EmployeeResponse, len(list))
	for i := range list {
		responses[i] = ToEmployeeResponse(&list[i])
	}
	return responses, total, nil
}

// GetEmployee returns an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch employee", err)
	}
	resp := ToEmployeeResponse(e)
	return &resp, nil
}

// CreateEmployee records a new active employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	e, err := hr.NewEmployee(req.EmployeeNumber, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	if err := e.SetEmail(req.Email); err != nil {
		return nil, err
	}
	e.Department = req.Department
	e.Position = req.Position
	e.HireDate = req.HireDate
	if req.HourlyRate != nil {
		if err := e.SetHourlyRate(*req.HourlyRate); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, e); err != nil {
		return nil, common.Fail(ctx, "create employee", err)
	}
	logger.L(ctx).Info("Employee created", zap.String("employee_id", e.ID.String()), zap.String("employee_number", e.EmployeeNumber))
	resp := ToEmployeeResponse(e)
	return &resp, nil
}

// UpdateEmployee applies a partial update to an employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "update employee", err)
	}

	if req.FirstName != nil || req.LastName != nil {
		first, last := e.FirstName, e.LastName
		if req.FirstName != nil {
			first = *req.FirstName
		}
		if req.LastName != nil {
			last = *req.LastName
		}
		if err := e.Rename(first, last); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		if err := e.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.HireDate != nil {
		e.HireDate = req.HireDate
	}
	if req.HourlyRate != nil {
		if err := e.SetHourlyRate(*req.HourlyRate); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := e.ChangeStatus(hr.EmployeeStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	e.IncrementVersion()

	if err := s.repo.Save(ctx, e); err != nil {
		return nil, common.Fail(ctx, "update employee", err)
	}
	resp := ToEmployeeResponse(e)
	return &resp, nil
}

// DeleteEmployee deletes an employee
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete employee", err)
	}
	return nil
}

// DisplayNames resolves employee IDs to full names
func (s *EmployeeService) DisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	list, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, common.Fail(ctx, "fetch employees", err)
	}
	for i := range list {
		names[list[i].ID] = list[i].FullName()
	}
	return names, nil
}
