package purchasing

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// MaterialService handles the material catalog
type MaterialService struct {
	repo purchasing.MaterialRepository
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(repo purchasing.MaterialRepository) *MaterialService {
	return &MaterialService{repo: repo}
}

// ListMaterials returns a page of materials matching the filter
func (s *MaterialService) ListMaterials(ctx context.Context, filter MaterialListFilter) ([]MaterialResponse, int64, error) {
	f := filter.Filter().With("status", filter.Status)
	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch materials", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch materials", err)
	}
	responses := make([]MaterialResponse, len(list))
	for i := range list {
		responses[i] = ToMaterialResponse(&list[i])
	}
	return responses, total, nil
}

// GetMaterial returns a material by ID
func (s *MaterialService) GetMaterial(ctx context.Context, id uuid.UUID) (*MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch material", err)
	}
	resp := ToMaterialResponse(m)
	return &resp, nil
}

// CreateMaterial adds a material to the catalog
func (s *MaterialService) CreateMaterial(ctx context.Context, req CreateMaterialRequest) (*MaterialResponse, error) {
	m, err := purchasing.NewMaterial(req.Code, req.Name, req.Unit)
	if err != nil {
		return nil, err
	}
	if req.UnitCost != nil {
		if err := m.SetUnitCost(*req.UnitCost); err != nil {
			return nil, err
		}
	}
	if req.ReorderPoint != nil {
		if err := m.SetReorderPoint(*req.ReorderPoint); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, m); err != nil {
		if shared.IsDomainErrorCode(err, shared.CodeAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Material code "+m.Code+" is already in use")
		}
		return nil, common.Fail(ctx, "create material", err)
	}
	resp := ToMaterialResponse(m)
	return &resp, nil
}

// UpdateMaterial applies a partial update to a material. Stock changes only through receiving.
func (s *MaterialService) UpdateMaterial(ctx context.Context, id uuid.UUID, req UpdateMaterialRequest) (*MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "update material", err)
	}
	if req.Name != nil {
		if err := m.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Unit != nil && *req.Unit != "" {
		m.Unit = *req.Unit
	}
	if req.UnitCost != nil {
		if err := m.SetUnitCost(*req.UnitCost); err != nil {
			return nil, err
		}
	}
	if req.ReorderPoint != nil {
		if err := m.SetReorderPoint(*req.ReorderPoint); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		m.Status = purchasing.MaterialStatus(*req.Status)
	}
	m.IncrementVersion()
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, common.Fail(ctx, "update material", err)
	}
	resp := ToMaterialResponse(m)
	return &resp, nil
}

// DeleteMaterial deletes a material
func (s *MaterialService) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete material", err)
	}
	return nil
}

const reorderScanPageSize = 100

// ListReorderCandidates returns every active material at or below its reorder point
func (s *MaterialService) ListReorderCandidates(ctx context.Context) ([]MaterialResponse, error) {
	f := shared.DefaultFilter().With("status", string(purchasing.MaterialStatusActive))
	f.PageSize, f.OrderBy, f.OrderDir = reorderScanPageSize, "code", "asc"

	out := []MaterialResponse{}
	for page := 1; ; page++ {
		f.Page = page
		list, err := s.repo.FindAll(ctx, f)
		if err != nil {
			return nil, common.Fail(ctx, "fetch reorder candidates", err)
		}
		for i := range list {
			if list[i].NeedsReorder() {
				out = append(out, ToMaterialResponse(&list[i]))
			}
		}
		if len(list) < reorderScanPageSize {
			return out, nil
		}
	}
}

// CheckReorderPoints logs a warning for each material that needs reordering
// and returns how many were found.
func (s *MaterialService) CheckReorderPoints(ctx context.Context) (int, error) {
	list, err := s.ListReorderCandidates(ctx)
	if err != nil {
		return 0, err
	}
	log := logger.L(ctx)
	for _, m := range list {
		log.Warn("Material at reorder point",
			zap.String("material_id", m.ID.String()),
			zap.String("code", m.Code),
			zap.String("quantity_on_hand", m.QuantityOnHand.String()),
			zap.String("reorder_point", m.ReorderPoint.String()),
		)
	}
	return len(list), nil
}
