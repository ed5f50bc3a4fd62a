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

// PurchaseOrderService handles purchase orders up to the point goods arrive
type PurchaseOrderService struct {
	repo    purchasing.PurchaseOrderRepository
	vendors common.NameResolver
	events  shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(repo purchasing.PurchaseOrderRepository, vendors common.NameResolver, events shared.EventPublisher) *PurchaseOrderService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &PurchaseOrderService{repo: repo, vendors: vendors, events: events}
}

// ListPurchaseOrders returns a page of purchase orders matching the filter
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	f := filter.Filter().
		With("status", filter.Status).
		With("vendor_id", filter.VendorID)

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch purchase orders", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch purchase orders", err)
	}

	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].VendorID
	}
	names := common.ResolveNames(ctx, s.vendors, ids...)

	responses := make([]PurchaseOrderResponse, len(list))
	for i := range list {
		responses[i] = ToPurchaseOrderResponse(&list[i], names[list[i].VendorID])
	}
	return responses, total, nil
}

// GetPurchaseOrder returns a purchase order with its items
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*PurchaseOrderResponse, error) {
	po, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch purchase order", err)
	}
	return s.respond(ctx, po), nil
}

// CreatePurchaseOrder creates a draft purchase order
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	po, err := purchasing.NewPurchaseOrder(req.VendorID)
	if err != nil {
		return nil, err
	}
	if err := po.SetExpectedDate(req.ExpectedDate); err != nil {
		return nil, err
	}
	if err := po.SetItems(toItemInputs(req.Items)); err != nil {
		return nil, err
	}
	po.Notes = req.Notes

	if err := s.repo.Save(ctx, po); err != nil {
		return nil, common.Fail(ctx, "create purchase order", err)
	}
	logger.L(ctx).Info("Purchase order created",
		zap.String("purchase_order_id", po.ID.String()),
		zap.String("po_number", po.PONumber),
		zap.String("total", po.TotalAmount.String()),
	)
	return s.respond(ctx, po), nil
}

// UpdatePurchaseOrder applies a partial update to a draft purchase order
func (s *PurchaseOrderService) UpdatePurchaseOrder(ctx context.Context, id uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	return s.mutate(ctx, id, "update purchase order", func(po *purchasing.PurchaseOrder) error {
		if !po.IsEditable() {
			return shared.NewDomainError(shared.CodeInvalidState, "Only draft purchase orders can be edited")
		}
		if req.VendorID != nil && *req.VendorID != uuid.Nil {
			po.VendorID = *req.VendorID
		}
		if req.ExpectedDate != nil {
			if err := po.SetExpectedDate(req.ExpectedDate); err != nil {
				return err
			}
		}
		if req.Notes != nil {
			po.Notes = *req.Notes
		}
		if req.Items != nil {
			return po.SetItems(toItemInputs(*req.Items))
		}
		po.IncrementVersion()
		return nil
	})
}

// DeletePurchaseOrder deletes a draft or cancelled purchase order
func (s *PurchaseOrderService) DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error {
	po, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete purchase order", err)
	}
	if !po.CanDelete() {
		return shared.NewDomainError(shared.CodeInvalidState, "Only draft or cancelled purchase orders can be deleted")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete purchase order", err)
	}
	return nil
}

// UpdatePurchaseOrderStatus moves a purchase order through its lifecycle
func (s *PurchaseOrderService) UpdatePurchaseOrderStatus(ctx context.Context, id uuid.UUID, status string) (*PurchaseOrderResponse, error) {
	return s.mutate(ctx, id, "update purchase order status", func(po *purchasing.PurchaseOrder) error {
		return po.UpdateStatus(purchasing.PurchaseOrderStatus(status))
	})
}

func (s *PurchaseOrderService) mutate(ctx context.Context, id uuid.UUID, verb string, fn func(*purchasing.PurchaseOrder) error) (*PurchaseOrderResponse, error) {
	po, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	if err := fn(po); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, po); err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, po)
	return s.respond(ctx, po), nil
}

func (s *PurchaseOrderService) respond(ctx context.Context, po *purchasing.PurchaseOrder) *PurchaseOrderResponse {
	names := common.ResolveNames(ctx, s.vendors, po.VendorID)
	resp := ToPurchaseOrderResponse(po, names[po.VendorID])
	return &resp
}
