package purchasing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sentOrder(t *testing.T, quantities ...string) *PurchaseOrder {
	t.Helper()
	po, err := NewPurchaseOrder(uuid.New())
	require.NoError(t, err)
	inputs := make([]ItemInput, len(quantities))
	for i, q := range quantities {
		inputs[i] = ItemInput{Description: "Strand 0.6in", Quantity: dec(q), UnitPrice: dec("2.5")}
	}
	require.NoError(t, po.SetItems(inputs))
	for _, next := range []PurchaseOrderStatus{PurchaseOrderStatusPendingApproval, PurchaseOrderStatusApproved, PurchaseOrderStatusSent} {
		require.NoError(t, po.UpdateStatus(next))
	}
	po.ClearDomainEvents()
	return po
}

func TestNewPurchaseOrder(t *testing.T) {
	po, err := NewPurchaseOrder(uuid.New())
	require.NoError(t, err)
	assert.Regexp(t, `^PO-\d{8}-[0-9A-F]{6}$`, po.PONumber)
	assert.Equal(t, PurchaseOrderStatusDraft, po.Status)
	assert.Equal(t, shared.TruncateToDay(po.CreatedAt), po.OrderDate)

	_, err = NewPurchaseOrder(uuid.Nil)
	assert.Error(t, err)

	assert.Error(t, po.SetExpectedDate(ptr(po.OrderDate.AddDate(0, 0, -1))))
	assert.NoError(t, po.SetExpectedDate(ptr(po.OrderDate.AddDate(0, 0, 7))))
}

func ptr(t time.Time) *time.Time { return &t }

func TestPurchaseOrder_SetItems(t *testing.T) {
	po, err := NewPurchaseOrder(uuid.New())
	require.NoError(t, err)

	require.NoError(t, po.SetItems([]ItemInput{
		{Description: "Cement Type III", Unit: "TON", Quantity: dec("20"), UnitPrice: dec("145.50")},
		{Description: "Lifting inserts", Quantity: dec("40"), UnitPrice: dec("3.125")},
	}))
	assert.True(t, po.TotalAmount.Equal(dec("3035")))
	assert.Equal(t, "EA", po.Items[1].Unit)
	assert.Equal(t, ItemStatusPending, po.Items[0].Status)

	assert.Error(t, po.SetItems([]ItemInput{{Description: "x", Quantity: dec("0"), UnitPrice: dec("1")}}))
	assert.Error(t, po.SetItems([]ItemInput{{Description: " ", Quantity: dec("1"), UnitPrice: dec("1")}}))

	require.NoError(t, po.UpdateStatus(PurchaseOrderStatusPendingApproval))
	err = po.SetItems(nil)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))
}

func TestPurchaseOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		from PurchaseOrderStatus
		to   PurchaseOrderStatus
		ok   bool
	}{
		{PurchaseOrderStatusDraft, PurchaseOrderStatusPendingApproval, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusApproved, false},
		{PurchaseOrderStatusPendingApproval, PurchaseOrderStatusDraft, true},
		{PurchaseOrderStatusApproved, PurchaseOrderStatusSent, true},
		{PurchaseOrderStatusSent, PurchaseOrderStatusReceived, true},
		{PurchaseOrderStatusPartiallyReceived, PurchaseOrderStatusClosed, true},
		{PurchaseOrderStatusPartiallyReceived, PurchaseOrderStatusCancelled, false},
		{PurchaseOrderStatusReceived, PurchaseOrderStatusClosed, true},
		{PurchaseOrderStatusClosed, PurchaseOrderStatusReceived, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusDraft, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPurchaseOrder_UpdateStatus(t *testing.T) {
	po, err := NewPurchaseOrder(uuid.New())
	require.NoError(t, err)

	err = po.UpdateStatus(PurchaseOrderStatusPendingApproval)
	assert.True(t, shared.IsDomainErrorCode(err, "EMPTY_ORDER"))

	po = sentOrder(t, "10")
	require.NoError(t, po.UpdateStatus(PurchaseOrderStatusReceived))
	require.NoError(t, po.UpdateStatus(PurchaseOrderStatusClosed))
	err = po.UpdateStatus(PurchaseOrderStatusReceived)
	assert.EqualError(t, err, "Cannot change purchase order status from CLOSED to RECEIVED")

	assert.Error(t, po.UpdateStatus(PurchaseOrderStatus("LOST")))
}

func TestPurchaseOrder_ReceiveRollup(t *testing.T) {
	po := sentOrder(t, "10", "5")
	first, second := po.Items[0].ID, po.Items[1].ID

	_, err := po.Receive(first, dec("4"))
	require.NoError(t, err)
	po.Rollup()
	assert.Equal(t, ItemStatusPartiallyReceived, po.Items[0].Status)
	assert.Equal(t, ItemStatusPending, po.Items[1].Status)
	assert.Equal(t, PurchaseOrderStatusPartiallyReceived, po.Status)

	_, err = po.Receive(first, dec("7"))
	assert.True(t, shared.IsDomainErrorCode(err, "OVER_RECEIPT"))
	_, err = po.Receive(first, dec("-1"))
	assert.True(t, shared.IsDomainErrorCode(err, "INVALID_QUANTITY"))
	_, err = po.Receive(uuid.New(), dec("1"))
	assert.True(t, shared.IsDomainErrorCode(err, "ITEM_NOT_FOUND"))

	_, err = po.Receive(first, dec("6"))
	require.NoError(t, err)
	_, err = po.Receive(second, dec("5"))
	require.NoError(t, err)
	po.Rollup()
	assert.Equal(t, PurchaseOrderStatusReceived, po.Status)
	assert.True(t, po.Items[0].Outstanding().IsZero())

	_, err = po.Receive(first, dec("1"))
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState), "received orders accept no more goods")

	types := make([]string, 0)
	for _, e := range po.GetDomainEvents() {
		types = append(types, string(e.(*PurchaseOrderStatusChangedEvent).ToStatus))
	}
	assert.Equal(t, []string{"PARTIALLY_RECEIVED", "RECEIVED"}, types)
}

func TestPurchaseOrder_ReverseReceipt(t *testing.T) {
	po := sentOrder(t, "10")
	id := po.Items[0].ID

	_, err := po.Receive(id, dec("10"))
	require.NoError(t, err)
	po.Rollup()
	require.Equal(t, PurchaseOrderStatusReceived, po.Status)

	_, err = po.ReverseReceipt(id, dec("4"))
	require.NoError(t, err)
	po.Rollup()
	assert.Equal(t, PurchaseOrderStatusPartiallyReceived, po.Status)

	_, err = po.ReverseReceipt(id, dec("6"))
	require.NoError(t, err)
	po.Rollup()
	assert.Equal(t, PurchaseOrderStatusSent, po.Status, "nothing received moves the order back to sent")
	assert.Equal(t, ItemStatusPending, po.Items[0].Status)

	po.Status = PurchaseOrderStatusClosed
	_, err = po.ReverseReceipt(id, dec("1"))
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))
}

func TestNewReceivingRecord(t *testing.T) {
	poID := uuid.New()

	r, err := NewReceivingRecord(poID, "", time.Time{}, []ReceivingInput{
		{PurchaseOrderItemID: uuid.New(), QuantityReceived: dec("3"), QuantityRejected: dec("1"), RejectionReason: " cracked "},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^RCV-\d{8}-[0-9A-F]{6}$`, r.ReceivingNumber)
	assert.Equal(t, "system", r.ReceivedBy)
	assert.False(t, r.ReceivedDate.IsZero())
	assert.Equal(t, "cracked", r.Items[0].RejectionReason)
	assert.Equal(t, ReceivingStatusCompleted, r.Status)

	_, err = NewReceivingRecord(poID, "dock", time.Now(), nil)
	assert.Error(t, err)
	_, err = NewReceivingRecord(poID, "dock", time.Now(), []ReceivingInput{{PurchaseOrderItemID: uuid.New()}})
	assert.True(t, shared.IsDomainErrorCode(err, "EMPTY_RECEIPT"))
	_, err = NewReceivingRecord(poID, "dock", time.Now(), []ReceivingInput{{PurchaseOrderItemID: uuid.New(), QuantityReceived: dec("-1")}})
	assert.True(t, shared.IsDomainErrorCode(err, "INVALID_QUANTITY"))

	require.NoError(t, r.Reject("wrong mix"))
	assert.Equal(t, "wrong mix", r.VoidReason)
	assert.Error(t, r.Reject("again"))
}

func TestMaterial(t *testing.T) {
	m, err := NewMaterial(" cem-3 ", "Cement Type III", "TON")
	require.NoError(t, err)
	assert.Equal(t, "CEM-3", m.Code)
	assert.Equal(t, MaterialStatusActive, m.Status)

	require.NoError(t, m.SetReorderPoint(dec("10")))
	assert.True(t, m.NeedsReorder())
	require.NoError(t, m.AdjustStock(dec("25")))
	assert.False(t, m.NeedsReorder())

	err = m.AdjustStock(dec("-30"))
	assert.True(t, shared.IsDomainErrorCode(err, "INSUFFICIENT_STOCK"))
	assert.True(t, m.QuantityOnHand.Equal(dec("25")))

	_, err = NewMaterial("", "x", "")
	assert.Error(t, err)
}
