package yard

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/yard"
)

// LocationService manages yard locations and reports occupancy
type LocationService struct {
	repo yard.LocationRepository
}

// NewLocationService creates a new LocationService
func NewLocationService(repo yard.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// ListLocations returns a page of locations matching the filter
func (s *LocationService) ListLocations(ctx context.Context, filter LocationListFilter) ([]LocationResponse, int64, error) {
	f := filter.Filter().
		With("zone", filter.Zone).
		With("status", filter.Status)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch locations", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch locations", err)
	}
	return toLocationResponses(list), total, nil
}

// ListAvailableLocations returns locations that can take at least minFree more pieces
func (s *LocationService) ListAvailableLocations(ctx context.Context, minFree int) ([]LocationResponse, error) {
	if minFree < 1 {
		minFree = 1
	}
	list, err := s.repo.FindAvailable(ctx, minFree)
	if err != nil {
		return nil, common.Fail(ctx, "fetch available locations", err)
	}
	return toLocationResponses(list), nil
}

// GetYardSummary totals capacity and occupancy by zone
func (s *LocationService) GetYardSummary(ctx context.Context) (*yard.Summary, error) {
	list, err := s.repo.FindAll(ctx, shared.Filter{OrderBy: "zone", OrderDir: "asc"})
	if err != nil {
		return nil, common.Fail(ctx, "fetch yard summary", err)
	}
	summary := yard.Summarize(list)
	return &summary, nil
}

// GetLocation returns a location by ID
func (s *LocationService) GetLocation(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch location", err)
	}
	resp := ToLocationResponse(l)
	return &resp, nil
}

// CreateLocation adds an empty location
func (s *LocationService) CreateLocation(ctx context.Context, req CreateLocationRequest) (*LocationResponse, error) {
	l, err := yard.NewLocation(req.Code, req.Zone, req.Capacity)
	if err != nil {
		return nil, err
	}
	l.Row = req.Row
	l.Bay = req.Bay
	l.Notes = req.Notes
	if err := s.repo.Save(ctx, l); err != nil {
		if shared.IsDomainErrorCode(err, shared.CodeAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Location code "+l.Code+" is already in use")
		}
		return nil, common.Fail(ctx, "create location", err)
	}
	resp := ToLocationResponse(l)
	return &resp, nil
}

// UpdateLocation applies a partial update. Occupancy only changes through pieces and movements.
func (s *LocationService) UpdateLocation(ctx context.Context, id uuid.UUID, req UpdateLocationRequest) (*LocationResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "update location", err)
	}
	if req.Zone != nil && *req.Zone != "" {
		l.Zone = *req.Zone
	}
	if req.Row != nil {
		l.Row = *req.Row
	}
	if req.Bay != nil {
		l.Bay = *req.Bay
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}
	if req.Capacity != nil {
		if err := l.SetCapacity(*req.Capacity); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := l.SetStatus(yard.LocationStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	l.IncrementVersion()
	if err := s.repo.Save(ctx, l); err != nil {
		return nil, common.Fail(ctx, "update location", err)
	}
	resp := ToLocationResponse(l)
	return &resp, nil
}

// DeleteLocation deletes an empty location
func (s *LocationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete location", err)
	}
	if l.Occupied > 0 {
		return shared.NewDomainError(shared.CodeInvalidState, "Cannot delete a location that holds pieces")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete location", err)
	}
	return nil
}

func toLocationResponses(list []yard.Location) []LocationResponse {
	responses := make([]LocationResponse, len(list))
	for i := range list {
		responses[i] = ToLocationResponse(&list[i])
	}
	return responses
}
