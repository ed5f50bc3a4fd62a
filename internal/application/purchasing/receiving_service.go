package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReceivingService records deliveries and rolls them up into purchase orders and stock.
// A receipt, the order rollup and the stock change commit together.
type ReceivingService struct {
	records   purchasing.ReceivingRecordRepository
	orders    purchasing.PurchaseOrderRepository
	materials purchasing.MaterialRepository
	tx        shared.TransactionManager
	events    shared.EventPublisher
}

// NewReceivingService creates a new ReceivingService
func NewReceivingService(
	records purchasing.ReceivingRecordRepository,
	orders purchasing.PurchaseOrderRepository,
	materials purchasing.MaterialRepository,
	tx shared.TransactionManager,
	events shared.EventPublisher,
) *ReceivingService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &ReceivingService{records: records, orders: orders, materials: materials, tx: tx, events: events}
}

// ListReceivingRecords returns the receipts of a purchase order, newest first
func (s *ReceivingService) ListReceivingRecords(ctx context.Context, purchaseOrderID uuid.UUID) ([]ReceivingRecordResponse, error) {
	if _, err := s.orders.FindByID(ctx, purchaseOrderID); err != nil {
		return nil, common.Fail(ctx, "fetch receiving records", err)
	}
	list, err := s.records.FindByPurchaseOrder(ctx, purchaseOrderID)
	if err != nil {
		return nil, common.Fail(ctx, "fetch receiving records", err)
	}
	responses := make([]ReceivingRecordResponse, len(list))
	for i := range list {
		responses[i] = ToReceivingRecordResponse(&list[i])
	}
	return responses, nil
}

// GetReceivingRecord returns a receiving record by ID
func (s *ReceivingService) GetReceivingRecord(ctx context.Context, id uuid.UUID) (*ReceivingRecordResponse, error) {
	r, err := s.records.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch receiving record", err)
	}
	resp := ToReceivingRecordResponse(r)
	return &resp, nil
}

// CreateReceivingRecord receives goods against a sent or partially received order
func (s *ReceivingService) CreateReceivingRecord(ctx context.Context, purchaseOrderID uuid.UUID, req CreateReceivingRecordRequest) (*ReceivingRecordResponse, error) {
	inputs := make([]purchasing.ReceivingInput, len(req.Items))
	for i, item := range req.Items {
		inputs[i] = purchasing.ReceivingInput{
			PurchaseOrderItemID: item.PurchaseOrderItemID,
			QuantityReceived:    item.QuantityReceived,
			QuantityRejected:    item.QuantityRejected,
			RejectionReason:     item.RejectionReason,
		}
	}
	receivedDate := time.Now()
	if req.ReceivedDate != nil {
		receivedDate = *req.ReceivedDate
	}
	record, err := purchasing.NewReceivingRecord(purchaseOrderID, req.ReceivedBy, receivedDate, inputs)
	if err != nil {
		return nil, err
	}
	record.Notes = req.Notes

	var po *purchasing.PurchaseOrder
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		po, err = s.orders.FindForUpdate(ctx, purchaseOrderID)
		if err != nil {
			return err
		}
		for _, item := range record.Items {
			line, err := po.Receive(item.PurchaseOrderItemID, item.QuantityReceived)
			if err != nil {
				return err
			}
			if err := s.adjustStock(ctx, line, item.QuantityReceived); err != nil {
				return err
			}
		}
		po.Rollup()
		if err := s.orders.Save(ctx, po); err != nil {
			return err
		}
		return s.records.Save(ctx, record)
	})
	if err != nil {
		return nil, common.Fail(ctx, "create receiving record", err)
	}

	common.Publish(ctx, s.events, record)
	common.Publish(ctx, s.events, po)
	logger.L(ctx).Info("Goods received",
		zap.String("receiving_number", record.ReceivingNumber),
		zap.String("po_number", po.PONumber),
		zap.String("po_status", string(po.Status)),
	)
	resp := ToReceivingRecordResponse(record)
	return &resp, nil
}

// RejectReceivingRecord voids a completed receipt and reverses its quantities.
// The order may fall back to PARTIALLY_RECEIVED or SENT.
func (s *ReceivingService) RejectReceivingRecord(ctx context.Context, id uuid.UUID, reason string) (*ReceivingRecordResponse, error) {
	var (
		record *purchasing.ReceivingRecord
		po     *purchasing.PurchaseOrder
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		record, err = s.records.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := record.Reject(reason); err != nil {
			return err
		}
		po, err = s.orders.FindForUpdate(ctx, record.PurchaseOrderID)
		if err != nil {
			return err
		}
		for _, item := range record.Items {
			line, err := po.ReverseReceipt(item.PurchaseOrderItemID, item.QuantityReceived)
			if err != nil {
				return err
			}
			if err := s.adjustStock(ctx, line, item.QuantityReceived.Neg()); err != nil {
				return err
			}
		}
		po.Rollup()
		if err := s.orders.Save(ctx, po); err != nil {
			return err
		}
		return s.records.Save(ctx, record)
	})
	if err != nil {
		return nil, common.Fail(ctx, "reject receiving record", err)
	}

	common.Publish(ctx, s.events, record)
	common.Publish(ctx, s.events, po)
	logger.L(ctx).Info("Receiving record rejected",
		zap.String("receiving_number", record.ReceivingNumber),
		zap.String("po_status", string(po.Status)),
	)
	resp := ToReceivingRecordResponse(record)
	return &resp, nil
}

func (s *ReceivingService) adjustStock(ctx context.Context, line *purchasing.PurchaseOrderItem, delta decimal.Decimal) error {
	if line.MaterialID == nil || delta.IsZero() {
		return nil
	}
	m, err := s.materials.FindForUpdate(ctx, *line.MaterialID)
	if err != nil {
		return err
	}
	if err := m.AdjustStock(delta); err != nil {
		return err
	}
	return s.materials.Save(ctx, m)
}
