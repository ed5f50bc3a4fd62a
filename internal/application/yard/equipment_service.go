package yard

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/yard"
)

// EquipmentService manages yard equipment
type EquipmentService struct {
	repo yard.EquipmentRepository
}

// NewEquipmentService creates a new EquipmentService
func NewEquipmentService(repo yard.EquipmentRepository) *EquipmentService {
	return &EquipmentService{repo: repo}
}

// ListEquipment returns a page of equipment matching the filter
func (s *EquipmentService) ListEquipment(ctx context.Context, filter EquipmentListFilter) ([]EquipmentResponse, int64, error) {
	f := filter.Filter().
		With("type", filter.Type).
		With("status", filter.Status)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch equipment", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch equipment", err)
	}
	responses := make([]EquipmentResponse, len(list))
	for i := range list {
		responses[i] = ToEquipmentResponse(&list[i])
	}
	return responses, total, nil
}

// GetEquipment returns equipment by ID
func (s *EquipmentService) GetEquipment(ctx context.Context, id uuid.UUID) (*EquipmentResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch equipment", err)
	}
	resp := ToEquipmentResponse(e)
	return &resp, nil
}

// CreateEquipment registers equipment
func (s *EquipmentService) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*EquipmentResponse, error) {
	e, err := yard.NewEquipment(req.Name, yard.EquipmentType(req.Type), req.CapacityTons)
	if err != nil {
		return nil, err
	}
	e.Notes = req.Notes
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, common.Fail(ctx, "create equipment", err)
	}
	resp := ToEquipmentResponse(e)
	return &resp, nil
}

// UpdateEquipment applies a partial update to equipment
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, req UpdateEquipmentRequest) (*EquipmentResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "update equipment", err)
	}
	if req.Name != nil && *req.Name != "" {
		e.Name = *req.Name
	}
	if req.Type != nil {
		e.Type = yard.EquipmentType(*req.Type)
	}
	if req.CapacityTons != nil {
		if req.CapacityTons.IsNegative() {
			return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity cannot be negative")
		}
		e.CapacityTons = *req.CapacityTons
	}
	if req.Status != nil {
		if err := e.SetStatus(yard.EquipmentStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}
	e.IncrementVersion()
	if err := s.repo.Save(ctx, e); err != nil {
		return nil, common.Fail(ctx, "update equipment", err)
	}
	resp := ToEquipmentResponse(e)
	return &resp, nil
}

// DeleteEquipment deletes equipment that is not in use
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete equipment", err)
	}
	if e.Status == yard.EquipmentStatusInUse {
		return shared.NewDomainError(shared.CodeInvalidState, "Cannot delete equipment that is in use")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete equipment", err)
	}
	return nil
}
