package purchasing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memMaterials is an in-memory MaterialRepository
type memMaterials struct {
	items map[uuid.UUID]purchasing.Material
}

func newMemMaterials() *memMaterials {
	return &memMaterials{items: map[uuid.UUID]purchasing.Material{}}
}

func (m *memMaterials) FindByID(_ context.Context, id uuid.UUID) (*purchasing.Material, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &v, nil
}

func (m *memMaterials) FindForUpdate(ctx context.Context, id uuid.UUID) (*purchasing.Material, error) {
	return m.FindByID(ctx, id)
}

func (m *memMaterials) FindAll(_ context.Context, f shared.Filter) ([]purchasing.Material, error) {
	list := make([]purchasing.Material, 0, len(m.items))
	for _, v := range m.items {
		if status, ok := f.Filters["status"]; ok && string(v.Status) != status {
			continue
		}
		list = append(list, v)
	}
	return list, nil
}

func (m *memMaterials) Save(_ context.Context, v *purchasing.Material) error {
	for id, existing := range m.items {
		if id != v.ID && existing.Code == v.Code {
			return shared.ErrAlreadyExists
		}
	}
	stored := *v
	stored.ClearDomainEvents()
	m.items[v.ID] = stored
	return nil
}

func (m *memMaterials) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memMaterials) Count(context.Context, shared.Filter) (int64, error) {
	return int64(len(m.items)), nil
}

// memOrders is an in-memory PurchaseOrderRepository. Items are copied on every
// read and write so unsaved changes never leak into the store.
type memOrders struct {
	items map[uuid.UUID]purchasing.PurchaseOrder
}

func newMemOrders() *memOrders {
	return &memOrders{items: map[uuid.UUID]purchasing.PurchaseOrder{}}
}

func cloneOrder(po purchasing.PurchaseOrder) purchasing.PurchaseOrder {
	po.Items = append([]purchasing.PurchaseOrderItem(nil), po.Items...)
	po.ClearDomainEvents()
	return po
}

func (m *memOrders) FindByID(_ context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	v = cloneOrder(v)
	return &v, nil
}

func (m *memOrders) FindForUpdate(ctx context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	return m.FindByID(ctx, id)
}

func (m *memOrders) FindAll(context.Context, shared.Filter) ([]purchasing.PurchaseOrder, error) {
	list := make([]purchasing.PurchaseOrder, 0, len(m.items))
	for _, v := range m.items {
		list = append(list, cloneOrder(v))
	}
	return list, nil
}

func (m *memOrders) Save(_ context.Context, po *purchasing.PurchaseOrder) error {
	m.items[po.ID] = cloneOrder(*po)
	return nil
}

func (m *memOrders) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

func (m *memOrders) Count(context.Context, shared.Filter) (int64, error) {
	return int64(len(m.items)), nil
}

// memReceipts is an in-memory ReceivingRecordRepository
type memReceipts struct {
	items map[uuid.UUID]purchasing.ReceivingRecord
}

func newMemReceipts() *memReceipts {
	return &memReceipts{items: map[uuid.UUID]purchasing.ReceivingRecord{}}
}

func (m *memReceipts) FindByID(_ context.Context, id uuid.UUID) (*purchasing.ReceivingRecord, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &v, nil
}

func (m *memReceipts) FindByPurchaseOrder(_ context.Context, poID uuid.UUID) ([]purchasing.ReceivingRecord, error) {
	var list []purchasing.ReceivingRecord
	for _, v := range m.items {
		if v.PurchaseOrderID == poID {
			list = append(list, v)
		}
	}
	return list, nil
}

func (m *memReceipts) Save(_ context.Context, r *purchasing.ReceivingRecord) error {
	stored := *r
	stored.ClearDomainEvents()
	m.items[r.ID] = stored
	return nil
}

type stubNames map[uuid.UUID]string

func (s stubNames) DisplayNames(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	for _, id := range ids {
		if name, ok := s[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type directTx struct{}

func (directTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) types() []string {
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMaterialService(t *testing.T) {
	ctx := context.Background()
	repo := newMemMaterials()
	svc := NewMaterialService(repo)

	cost := dec("120.50")
	created, err := svc.CreateMaterial(ctx, CreateMaterialRequest{Code: "rebar-12", Name: "Rebar 12mm", Unit: "T", UnitCost: &cost})
	require.NoError(t, err)
	assert.Equal(t, "REBAR-12", created.Code)
	assert.True(t, created.UnitCost.Equal(cost))
	assert.Equal(t, "ACTIVE", created.Status)

	_, err = svc.CreateMaterial(ctx, CreateMaterialRequest{Code: "REBAR-12", Name: "Duplicate"})
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeAlreadyExists))

	negative := dec("-1")
	_, err = svc.CreateMaterial(ctx, CreateMaterialRequest{Code: "X", Name: "Bad", UnitCost: &negative})
	assert.Error(t, err)

	point := dec("5")
	inactive := "INACTIVE"
	updated, err := svc.UpdateMaterial(ctx, created.ID, UpdateMaterialRequest{ReorderPoint: &point, Status: &inactive})
	require.NoError(t, err)
	assert.True(t, updated.NeedsReorder)
	assert.Equal(t, "INACTIVE", updated.Status)
	assert.Equal(t, created.Version+1, updated.Version)

	list, total, err := svc.ListMaterials(ctx, MaterialListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.EqualValues(t, 1, total)

	require.NoError(t, svc.DeleteMaterial(ctx, created.ID))
	_, err = svc.GetMaterial(ctx, created.ID)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeNotFound))
}

func TestMaterialService_ReorderCandidates(t *testing.T) {
	ctx := context.Background()
	repo := newMemMaterials()
	svc := NewMaterialService(repo)

	seed := func(code, onHand, point string, status purchasing.MaterialStatus) {
		m, err := purchasing.NewMaterial(code, code, "T")
		require.NoError(t, err)
		require.NoError(t, m.SetReorderPoint(dec(point)))
		require.NoError(t, m.AdjustStock(dec(onHand)))
		m.Status = status
		require.NoError(t, repo.Save(ctx, m))
	}
	seed("CEM-1", "4", "5", purchasing.MaterialStatusActive)
	seed("AGG-1", "5", "5", purchasing.MaterialStatusActive)
	seed("REB-1", "50", "5", purchasing.MaterialStatusActive)
	seed("OLD-1", "0", "5", purchasing.MaterialStatusInactive)
	seed("SAN-1", "0", "0", purchasing.MaterialStatusActive)

	list, err := svc.ListReorderCandidates(ctx)
	require.NoError(t, err)
	codes := make([]string, len(list))
	for i, m := range list {
		codes[i] = m.Code
		assert.True(t, m.NeedsReorder)
	}
	assert.ElementsMatch(t, []string{"CEM-1", "AGG-1"}, codes)

	n, err := svc.CheckReorderPoints(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

type purchasingFixture struct {
	materials *memMaterials
	orders    *memOrders
	receipts  *memReceipts
	events    *recordingPublisher
	poSvc     *PurchaseOrderService
	rcvSvc    *ReceivingService
	vendorID  uuid.UUID
	cement    *purchasing.Material
}

func newPurchasingFixture(t *testing.T) *purchasingFixture {
	f := &purchasingFixture{
		materials: newMemMaterials(),
		orders:    newMemOrders(),
		receipts:  newMemReceipts(),
		events:    &recordingPublisher{},
		vendorID:  uuid.New(),
	}
	cement, err := purchasing.NewMaterial("CEM-1", "Cement", "T")
	require.NoError(t, err)
	require.NoError(t, f.materials.Save(context.Background(), cement))
	f.cement = cement
	f.poSvc = NewPurchaseOrderService(f.orders, stubNames{f.vendorID: "Cement Co"}, f.events)
	f.rcvSvc = NewReceivingService(f.receipts, f.orders, f.materials, directTx{}, f.events)
	return f
}

// sentOrder creates an order with a cement line of 10 and a free-text line of 4 and sends it
func (f *purchasingFixture) sentOrder(t *testing.T) *PurchaseOrderResponse {
	t.Helper()
	ctx := context.Background()
	po, err := f.poSvc.CreatePurchaseOrder(ctx, CreatePurchaseOrderRequest{
		VendorID: f.vendorID,
		Items: []PurchaseOrderItemRequest{
			{MaterialID: &f.cement.ID, Description: "Cement", Unit: "T", Quantity: dec("10"), UnitPrice: dec("95")},
			{Description: "Lifting anchors", Quantity: dec("4"), UnitPrice: dec("12.5")},
		},
	})
	require.NoError(t, err)
	for _, status := range []string{"PENDING_APPROVAL", "APPROVED", "SENT"} {
		po, err = f.poSvc.UpdatePurchaseOrderStatus(ctx, po.ID, status)
		require.NoError(t, err)
	}
	return po
}

func (f *purchasingFixture) onHand(t *testing.T) decimal.Decimal {
	t.Helper()
	m, err := f.materials.FindByID(context.Background(), f.cement.ID)
	require.NoError(t, err)
	return m.QuantityOnHand
}

func TestPurchaseOrderService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	f := newPurchasingFixture(t)

	po, err := f.poSvc.CreatePurchaseOrder(ctx, CreatePurchaseOrderRequest{
		VendorID: f.vendorID,
		Items:    []PurchaseOrderItemRequest{{Description: "Cement", Quantity: dec("3"), UnitPrice: dec("10.005")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "DRAFT", po.Status)
	assert.Equal(t, "Cement Co", po.VendorName)
	assert.Contains(t, po.PONumber, "PO-")
	assert.True(t, po.TotalAmount.Equal(dec("30.02")), po.TotalAmount.String())

	notes := "Deliver to gate 2"
	items := []PurchaseOrderItemRequest{{Description: "Sand", Quantity: dec("2"), UnitPrice: dec("40")}}
	po, err = f.poSvc.UpdatePurchaseOrder(ctx, po.ID, UpdatePurchaseOrderRequest{Notes: &notes, Items: &items})
	require.NoError(t, err)
	assert.Equal(t, notes, po.Notes)
	assert.True(t, po.TotalAmount.Equal(dec("80")))

	_, err = f.poSvc.UpdatePurchaseOrderStatus(ctx, po.ID, "PENDING_APPROVAL")
	require.NoError(t, err)
	_, err = f.poSvc.UpdatePurchaseOrder(ctx, po.ID, UpdatePurchaseOrderRequest{Notes: &notes})
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))

	err = f.poSvc.DeletePurchaseOrder(ctx, po.ID)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))

	_, err = f.poSvc.UpdatePurchaseOrderStatus(ctx, po.ID, "CANCELLED")
	require.NoError(t, err)
	require.NoError(t, f.poSvc.DeletePurchaseOrder(ctx, po.ID))
}

func TestPurchaseOrderService_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	f := newPurchasingFixture(t)

	empty, err := f.poSvc.CreatePurchaseOrder(ctx, CreatePurchaseOrderRequest{VendorID: f.vendorID})
	require.NoError(t, err)
	_, err = f.poSvc.UpdatePurchaseOrderStatus(ctx, empty.ID, "PENDING_APPROVAL")
	assert.True(t, shared.IsDomainErrorCode(err, "EMPTY_ORDER"))

	_, err = f.poSvc.UpdatePurchaseOrderStatus(ctx, empty.ID, "SENT")
	require.Error(t, err)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
	assert.Equal(t, "Cannot change purchase order status from DRAFT to SENT", err.Error())

	po := f.sentOrder(t)
	assert.Equal(t, "SENT", po.Status)
	assert.Contains(t, f.events.types(), purchasing.EventTypePurchaseOrderStatusChanged)
}

func TestReceivingService_PartialThenFull(t *testing.T) {
	ctx := context.Background()
	f := newPurchasingFixture(t)
	po := f.sentOrder(t)
	cementLine, anchorLine := po.Items[0].ID, po.Items[1].ID

	first, err := f.rcvSvc.CreateReceivingRecord(ctx, po.ID, CreateReceivingRecordRequest{
		ReceivedBy: "yard.lead",
		Items: []ReceivingItemRequest{
			{PurchaseOrderItemID: cementLine, QuantityReceived: dec("6"), QuantityRejected: dec("1"), RejectionReason: "Torn bags"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", first.Status)
	assert.Equal(t, "yard.lead", first.ReceivedBy)
	assert.Contains(t, first.ReceivingNumber, "RCV-")

	got, err := f.poSvc.GetPurchaseOrder(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, "PARTIALLY_RECEIVED", got.Status)
	assert.True(t, got.Items[0].ReceivedQuantity.Equal(dec("6")))
	assert.Equal(t, "PARTIALLY_RECEIVED", got.Items[0].Status)
	assert.Equal(t, "PENDING", got.Items[1].Status)
	assert.True(t, f.onHand(t).Equal(dec("6")))

	_, err = f.rcvSvc.CreateReceivingRecord(ctx, po.ID, CreateReceivingRecordRequest{
		Items: []ReceivingItemRequest{
			{PurchaseOrderItemID: cementLine, QuantityReceived: dec("4")},
			{PurchaseOrderItemID: anchorLine, QuantityReceived: dec("4")},
		},
	})
	require.NoError(t, err)

	got, err = f.poSvc.GetPurchaseOrder(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, "RECEIVED", got.Status)
	assert.True(t, f.onHand(t).Equal(dec("10")))

	records, err := f.rcvSvc.ListReceivingRecords(ctx, po.ID)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Contains(t, f.events.types(), purchasing.EventTypeGoodsReceived)

	closed, err := f.poSvc.UpdatePurchaseOrderStatus(ctx, po.ID, "CLOSED")
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", closed.Status)
	_, err = f.poSvc.UpdatePurchaseOrderStatus(ctx, po.ID, "RECEIVED")
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
}

func TestReceivingService_RejectsInvalidReceipts(t *testing.T) {
	ctx := context.Background()
	f := newPurchasingFixture(t)
	po := f.sentOrder(t)
	cementLine := po.Items[0].ID

	t.Run("over receipt leaves order and stock untouched", func(t *testing.T) {
		_, err := f.rcvSvc.CreateReceivingRecord(ctx, po.ID, CreateReceivingRecordRequest{
			Items: []ReceivingItemRequest{{PurchaseOrderItemID: cementLine, QuantityReceived: dec("11")}},
		})
		assert.True(t, shared.IsDomainErrorCode(err, "OVER_RECEIPT"))
		got, err := f.poSvc.GetPurchaseOrder(ctx, po.ID)
		require.NoError(t, err)
		assert.Equal(t, "SENT", got.Status)
		assert.True(t, f.onHand(t).IsZero())
		assert.Empty(t, f.receipts.items)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := f.rcvSvc.CreateReceivingRecord(ctx, po.ID, CreateReceivingRecordRequest{
			Items: []ReceivingItemRequest{{PurchaseOrderItemID: cementLine, QuantityReceived: dec("-1")}},
		})
		assert.True(t, shared.IsDomainErrorCode(err, "INVALID_QUANTITY"))
	})

	t.Run("unknown line", func(t *testing.T) {
		_, err := f.rcvSvc.CreateReceivingRecord(ctx, po.ID, CreateReceivingRecordRequest{
			Items: []ReceivingItemRequest{{PurchaseOrderItemID: uuid.New(), QuantityReceived: dec("1")}},
		})
		assert.True(t, shared.IsDomainErrorCode(err, "ITEM_NOT_FOUND"))
	})

	t.Run("draft order cannot receive", func(t *testing.T) {
		draft, err := f.poSvc.CreatePurchaseOrder(ctx, CreatePurchaseOrderRequest{
			VendorID: f.vendorID,
			Items:    []PurchaseOrderItemRequest{{Description: "Grout", Quantity: dec("1"), UnitPrice: dec("1")}},
		})
		require.NoError(t, err)
		_, err = f.rcvSvc.CreateReceivingRecord(ctx, draft.ID, CreateReceivingRecordRequest{
			Items: []ReceivingItemRequest{{PurchaseOrderItemID: draft.Items[0].ID, QuantityReceived: dec("1")}},
		})
		assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := f.rcvSvc.CreateReceivingRecord(ctx, uuid.New(), CreateReceivingRecordRequest{
			Items: []ReceivingItemRequest{{PurchaseOrderItemID: cementLine, QuantityReceived: dec("1")}},
		})
		assert.True(t, shared.IsDomainErrorCode(err, shared.CodeNotFound))
	})
}

func TestReceivingService_RejectReceivingRecord(t *testing.T) {
	ctx := context.Background()
	f := newPurchasingFixture(t)
	po := f.sentOrder(t)

	rcv, err := f.rcvSvc.CreateReceivingRecord(ctx, po.ID, CreateReceivingRecordRequest{
		Items: []ReceivingItemRequest{{PurchaseOrderItemID: po.Items[0].ID, QuantityReceived: dec("10")}},
	})
	require.NoError(t, err)
	assert.True(t, f.onHand(t).Equal(dec("10")))

	voided, err := f.rcvSvc.RejectReceivingRecord(ctx, rcv.ID, "Wrong grade delivered")
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", voided.Status)
	assert.Equal(t, "Wrong grade delivered", voided.VoidReason)

	got, err := f.poSvc.GetPurchaseOrder(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, "SENT", got.Status)
	assert.True(t, got.Items[0].ReceivedQuantity.IsZero())
	assert.Equal(t, "PENDING", got.Items[0].Status)
	assert.True(t, f.onHand(t).IsZero())
	assert.Contains(t, f.events.types(), purchasing.EventTypeReceivingRejected)

	_, err = f.rcvSvc.RejectReceivingRecord(ctx, rcv.ID, "again")
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
}
