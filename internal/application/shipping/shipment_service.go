package shipping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/shipping"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ShipmentService plans, dispatches and delivers shipments
type ShipmentService struct {
	repo     shipping.ShipmentRepository
	projects common.NameResolver
	renderer common.DocumentRenderer
	events   shared.EventPublisher
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(
	repo shipping.ShipmentRepository,
	projects common.NameResolver,
	renderer common.DocumentRenderer,
	events shared.EventPublisher,
) *ShipmentService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &ShipmentService{repo: repo, projects: projects, renderer: renderer, events: events}
}

// ListShipments returns a page of shipments matching the filter
func (s *ShipmentService) ListShipments(ctx context.Context, filter ShipmentListFilter) ([]ShipmentResponse, int64, error) {
	f := filter.Filter().
		With("project_id", filter.ProjectID).
		With("status", filter.Status).
		With("scheduled_from", filter.ScheduledFrom).
		With("scheduled_to", filter.ScheduledTo)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch shipments", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch shipments", err)
	}

	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].ProjectID
	}
	names := common.ResolveNames(ctx, s.projects, ids...)
	responses := make([]ShipmentResponse, len(list))
	for i := range list {
		responses[i] = ToShipmentResponse(&list[i], names[list[i].ProjectID])
	}
	return responses, total, nil
}

// GetShipment returns a shipment by ID
func (s *ShipmentService) GetShipment(ctx context.Context, id uuid.UUID) (*ShipmentResponse, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch shipment", err)
	}
	return s.respond(ctx, sh), nil
}

// CreateShipment plans a shipment with its initial load
func (s *ShipmentService) CreateShipment(ctx context.Context, req CreateShipmentRequest) (*ShipmentResponse, error) {
	sh, err := shipping.NewShipment(req.ProjectID, req.DeliveryAddress)
	if err != nil {
		return nil, err
	}
	sh.ScheduledDate = req.ScheduledDate
	sh.Carrier = req.Carrier
	sh.TruckNumber = req.TruckNumber
	sh.DriverName = req.DriverName
	sh.Notes = req.Notes
	limit := sh.MaxWeight
	if req.MaxWeight != nil {
		limit = *req.MaxWeight
	}
	if err := sh.SetLoad(limit, toItemInputs(req.Items)); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sh); err != nil {
		return nil, common.Fail(ctx, "create shipment", err)
	}
	logger.L(ctx).Info("Shipment planned",
		zap.String("shipment_number", sh.ShipmentNumber),
		zap.Int("items", len(sh.Items)),
		zap.String("total_weight", sh.TotalWeight.String()),
	)
	return s.respond(ctx, sh), nil
}

// UpdateShipment applies a partial update to a shipment still in the yard.
// New items are checked against the new max weight when both are given.
func (s *ShipmentService) UpdateShipment(ctx context.Context, id uuid.UUID, req UpdateShipmentRequest) (*ShipmentResponse, error) {
	return s.mutate(ctx, id, "update shipment", func(sh *shipping.Shipment) error {
		if !sh.IsEditable() {
			return shared.NewDomainError(shared.CodeInvalidState, "Only planned or loading shipments can be edited")
		}
		switch {
		case req.Items != nil:
			limit := sh.MaxWeight
			if req.MaxWeight != nil {
				limit = *req.MaxWeight
			}
			if err := sh.SetLoad(limit, toItemInputs(*req.Items)); err != nil {
				return err
			}
		case req.MaxWeight != nil:
			if err := sh.SetMaxWeight(*req.MaxWeight); err != nil {
				return err
			}
		}
		if req.DeliveryAddress != nil {
			sh.DeliveryAddress = *req.DeliveryAddress
		}
		if req.ScheduledDate != nil {
			sh.ScheduledDate = req.ScheduledDate
		}
		if req.Carrier != nil {
			sh.Carrier = *req.Carrier
		}
		if req.TruckNumber != nil {
			sh.TruckNumber = *req.TruckNumber
		}
		if req.DriverName != nil {
			sh.DriverName = *req.DriverName
		}
		if req.Notes != nil {
			sh.Notes = *req.Notes
		}
		sh.IncrementVersion()
		return nil
	})
}

// DeleteShipment deletes a planned or cancelled shipment
func (s *ShipmentService) DeleteShipment(ctx context.Context, id uuid.UUID) error {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete shipment", err)
	}
	if !sh.CanDelete() {
		return shared.NewDomainError(shared.CodeInvalidState, "Only planned or cancelled shipments can be deleted")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete shipment", err)
	}
	return nil
}

// StartLoading moves a planned shipment onto the loading bay
func (s *ShipmentService) StartLoading(ctx context.Context, id uuid.UUID) (*ShipmentResponse, error) {
	return s.mutate(ctx, id, "start loading", (*shipping.Shipment).StartLoading)
}

// ReturnToPlanning takes a loading shipment back to planning
func (s *ShipmentService) ReturnToPlanning(ctx context.Context, id uuid.UUID) (*ShipmentResponse, error) {
	return s.mutate(ctx, id, "return shipment to planning", (*shipping.Shipment).ReturnToPlanning)
}

// Dispatch sends a loaded shipment on its way
func (s *ShipmentService) Dispatch(ctx context.Context, id uuid.UUID) (*ShipmentResponse, error) {
	resp, err := s.mutate(ctx, id, "dispatch shipment", func(sh *shipping.Shipment) error {
		return sh.Dispatch(time.Now())
	})
	if err == nil {
		logger.L(ctx).Info("Shipment dispatched",
			zap.String("shipment_number", resp.ShipmentNumber),
			zap.String("truck_number", resp.TruckNumber),
		)
	}
	return resp, err
}

// ConfirmDelivery records the delivery of a shipment on site
func (s *ShipmentService) ConfirmDelivery(ctx context.Context, id uuid.UUID, receivedBy string) (*ShipmentResponse, error) {
	return s.mutate(ctx, id, "confirm delivery", func(sh *shipping.Shipment) error {
		return sh.ConfirmDelivery(receivedBy, time.Now())
	})
}

// CancelShipment cancels a shipment that has not left the yard
func (s *ShipmentService) CancelShipment(ctx context.Context, id uuid.UUID) (*ShipmentResponse, error) {
	return s.mutate(ctx, id, "cancel shipment", (*shipping.Shipment).Cancel)
}

// BillOfLading renders the shipment's bill of lading as a PDF
func (s *ShipmentService) BillOfLading(ctx context.Context, id uuid.UUID) ([]byte, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "generate bill of lading", err)
	}
	resp := s.respond(ctx, sh)

	project := resp.ProjectName
	if project == "" {
		project = resp.ProjectID.String()
	}
	scheduled := ""
	if resp.ScheduledDate != nil {
		scheduled = resp.ScheduledDate.Format("2006-01-02")
	}
	doc := common.Document{
		Title:  "Bill of Lading",
		Number: resp.ShipmentNumber,
		Fields: []common.Field{
			{Label: "Project", Value: project},
			{Label: "Deliver To", Value: resp.DeliveryAddress},
			{Label: "Scheduled", Value: scheduled},
			{Label: "Carrier", Value: resp.Carrier},
			{Label: "Truck", Value: resp.TruckNumber},
			{Label: "Driver", Value: resp.DriverName},
			{Label: "Status", Value: resp.Status},
		},
		Table: common.Table{
			Headers: []string{"#", "Piece Mark", "Weight (t)"},
			Rows:    make([][]any, 0, len(resp.Items)),
		},
		Totals: []common.Field{
			{Label: "Pieces", Value: fmt.Sprintf("%d", len(resp.Items))},
			{Label: "Total Weight (t)", Value: resp.TotalWeight.StringFixed(2)},
			{Label: "Max Weight (t)", Value: resp.MaxWeight.StringFixed(2)},
		},
		Signatures: []string{"Shipped by", "Driver", "Received by"},
		Footer:     resp.ShipmentNumber,
	}
	for i, it := range resp.Items {
		doc.Table.Rows = append(doc.Table.Rows, []any{i + 1, it.PieceMark, it.Weight.StringFixed(2)})
	}
	if resp.ReceivedBy != "" {
		doc.Fields = append(doc.Fields, common.Field{Label: "Received By", Value: resp.ReceivedBy})
	}

	data, err := s.renderer.RenderDocument(doc)
	if err != nil {
		return nil, common.Fail(ctx, "generate bill of lading", err)
	}
	return data, nil
}

func (s *ShipmentService) mutate(ctx context.Context, id uuid.UUID, verb string, fn func(*shipping.Shipment) error) (*ShipmentResponse, error) {
	sh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	if err := fn(sh); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sh); err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, sh)
	return s.respond(ctx, sh), nil
}

func (s *ShipmentService) respond(ctx context.Context, sh *shipping.Shipment) *ShipmentResponse {
	names := common.ResolveNames(ctx, s.projects, sh.ProjectID)
	resp := ToShipmentResponse(sh, names[sh.ProjectID])
	return &resp
}
