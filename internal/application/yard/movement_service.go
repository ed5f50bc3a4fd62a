package yard

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/yard"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// MovementService plans and executes piece moves. Executing a movement updates the
// piece, both locations and the equipment in one transaction.
type MovementService struct {
	movements yard.MovementRepository
	pieces    yard.PieceRepository
	locations yard.LocationRepository
	equipment yard.EquipmentRepository
	tx        shared.TransactionManager
	events    shared.EventPublisher
}

// NewMovementService creates a new MovementService
func NewMovementService(
	movements yard.MovementRepository,
	pieces yard.PieceRepository,
	locations yard.LocationRepository,
	equipment yard.EquipmentRepository,
	tx shared.TransactionManager,
	events shared.EventPublisher,
) *MovementService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &MovementService{
		movements: movements,
		pieces:    pieces,
		locations: locations,
		equipment: equipment,
		tx:        tx,
		events:    events,
	}
}

// ListMovements returns a page of movements matching the filter
func (s *MovementService) ListMovements(ctx context.Context, filter MovementListFilter) ([]MovementResponse, int64, error) {
	f := filter.Filter().
		With("piece_id", filter.PieceID).
		With("equipment_id", filter.EquipmentID).
		With("status", filter.Status)

	list, err := s.movements.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch movements", err)
	}
	total, err := s.movements.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch movements", err)
	}
	responses := make([]MovementResponse, len(list))
	for i := range list {
		responses[i] = ToMovementResponse(&list[i])
	}
	return responses, total, nil
}

// GetMovement returns a movement by ID
func (s *MovementService) GetMovement(ctx context.Context, id uuid.UUID) (*MovementResponse, error) {
	m, err := s.movements.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch movement", err)
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// CreateMovement plans a move from the piece's current location
func (s *MovementService) CreateMovement(ctx context.Context, req CreateMovementRequest) (*MovementResponse, error) {
	piece, err := s.pieces.FindByID(ctx, req.PieceID)
	if err != nil {
		return nil, common.Fail(ctx, "create movement", err)
	}
	if _, err := s.locations.FindByID(ctx, req.ToLocationID); err != nil {
		return nil, common.Fail(ctx, "create movement", err)
	}
	if req.EquipmentID != nil {
		eq, err := s.equipment.FindByID(ctx, *req.EquipmentID)
		if err != nil {
			return nil, common.Fail(ctx, "create movement", err)
		}
		if !eq.CanLift(piece.Weight) {
			return nil, shared.NewDomainError("EQUIPMENT_CAPACITY_EXCEEDED",
				eq.Name+" is rated for "+eq.CapacityTons.String()+" t but "+piece.PieceMark+" weighs "+piece.Weight.String()+" t")
		}
	}

	m, err := yard.NewMovement(piece, req.ToLocationID, req.EquipmentID, req.RequestedBy)
	if err != nil {
		return nil, err
	}
	m.ScheduledAt = req.ScheduledAt
	m.Notes = req.Notes
	if err := s.movements.Save(ctx, m); err != nil {
		return nil, common.Fail(ctx, "create movement", err)
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// DeleteMovement deletes a movement that never started or was cancelled
func (s *MovementService) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	m, err := s.movements.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete movement", err)
	}
	if m.Status != yard.MovementStatusPlanned && m.Status != yard.MovementStatusCancelled {
		return shared.NewDomainError(shared.CodeInvalidState, "Only planned or cancelled movements can be deleted")
	}
	if err := s.movements.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete movement", err)
	}
	return nil
}

// StartMovement puts the movement under way and takes its equipment
func (s *MovementService) StartMovement(ctx context.Context, id uuid.UUID) (*MovementResponse, error) {
	return s.run(ctx, id, "start movement", func(ctx context.Context, m *yard.Movement) error {
		if err := m.Start(); err != nil {
			return err
		}
		return s.withEquipment(ctx, m, (*yard.Equipment).Assign)
	})
}

// ExecuteMovement completes the move: the target must have room, occupancy moves from the
// piece's current location to the target, the piece is placed and the equipment is released
func (s *MovementService) ExecuteMovement(ctx context.Context, id uuid.UUID) (*MovementResponse, error) {
	return s.run(ctx, id, "execute movement", func(ctx context.Context, m *yard.Movement) error {
		if !m.IsOpen() {
			return shared.InvalidTransition("movement", string(m.Status), string(yard.MovementStatusCompleted))
		}
		piece, err := s.pieces.FindForUpdate(ctx, m.PieceID)
		if err != nil {
			return err
		}
		from := piece.LocationID
		if from != nil && *from == m.ToLocationID {
			return shared.NewDomainError("SAME_LOCATION", "Piece is already at the target location")
		}
		if err := piece.PlaceAt(m.ToLocationID); err != nil {
			return err
		}

		target, err := s.locations.FindForUpdate(ctx, m.ToLocationID)
		if err != nil {
			return err
		}
		if err := target.Occupy(); err != nil {
			return err
		}
		if from != nil {
			source, err := s.locations.FindForUpdate(ctx, *from)
			switch {
			case err == nil:
				source.Release()
				if err := s.locations.Save(ctx, source); err != nil {
					return err
				}
			case !shared.IsDomainErrorCode(err, shared.CodeNotFound):
				return err
			}
		}
		if err := s.locations.Save(ctx, target); err != nil {
			return err
		}
		if err := s.pieces.Save(ctx, piece); err != nil {
			return err
		}
		if err := m.Complete(from); err != nil {
			return err
		}
		return s.withEquipment(ctx, m, release)
	})
}

// CancelMovement abandons the movement and releases its equipment
func (s *MovementService) CancelMovement(ctx context.Context, id uuid.UUID) (*MovementResponse, error) {
	return s.run(ctx, id, "cancel movement", func(ctx context.Context, m *yard.Movement) error {
		if err := m.Cancel(); err != nil {
			return err
		}
		return s.withEquipment(ctx, m, release)
	})
}

func release(e *yard.Equipment) error {
	e.Release()
	return nil
}

// withEquipment applies fn to the movement's equipment, if any, and saves it
func (s *MovementService) withEquipment(ctx context.Context, m *yard.Movement, fn func(*yard.Equipment) error) error {
	if m.EquipmentID == nil {
		return nil
	}
	eq, err := s.equipment.FindForUpdate(ctx, *m.EquipmentID)
	if err != nil {
		return err
	}
	if err := fn(eq); err != nil {
		return err
	}
	return s.equipment.Save(ctx, eq)
}

// run loads the movement, applies fn and saves it in one transaction, then publishes its events
func (s *MovementService) run(ctx context.Context, id uuid.UUID, verb string, fn func(context.Context, *yard.Movement) error) (*MovementResponse, error) {
	var m *yard.Movement
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.movements.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, m); err != nil {
			return err
		}
		return s.movements.Save(ctx, m)
	})
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, m)
	logger.L(ctx).Info("Movement updated",
		zap.String("movement_id", m.ID.String()),
		zap.String("piece_id", m.PieceID.String()),
		zap.String("status", string(m.Status)),
	)
	resp := ToMovementResponse(m)
	return &resp, nil
}
