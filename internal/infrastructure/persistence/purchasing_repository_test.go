package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSentOrder(t *testing.T, materialID *uuid.UUID) *purchasing.PurchaseOrder {
	t.Helper()
	po, err := purchasing.NewPurchaseOrder(uuid.New())
	require.NoError(t, err)
	require.NoError(t, po.SetItems([]purchasing.ItemInput{
		{MaterialID: materialID, Description: "Cement", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(95)},
		{Description: "Anchors", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(12)},
	}))
	for _, s := range []purchasing.PurchaseOrderStatus{
		purchasing.PurchaseOrderStatusPendingApproval,
		purchasing.PurchaseOrderStatusApproved,
		purchasing.PurchaseOrderStatusSent,
	} {
		require.NoError(t, po.UpdateStatus(s))
	}
	return po
}

func TestGormMaterialRepository(t *testing.T) {
	repo := NewGormMaterialRepository(newTestDB(t))
	ctx := context.Background()

	cement, err := purchasing.NewMaterial("CEM-1", "Cement", "T")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, cement))

	dup, err := purchasing.NewMaterial("cem-1", "Other cement", "T")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)

	locked, err := repo.FindForUpdate(ctx, cement.ID)
	require.NoError(t, err)
	require.NoError(t, locked.AdjustStock(decimal.NewFromInt(7)))
	require.NoError(t, repo.Save(ctx, locked))

	got, err := repo.FindByID(ctx, cement.ID)
	require.NoError(t, err)
	assert.True(t, got.QuantityOnHand.Equal(decimal.NewFromInt(7)))

	active, err := repo.Count(ctx, shared.DefaultFilter().With("status", "ACTIVE"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
}

func TestGormPurchaseOrderRepository(t *testing.T) {
	repo := NewGormPurchaseOrderRepository(newTestDB(t))
	ctx := context.Background()

	po := newSentOrder(t, nil)
	require.NoError(t, repo.Save(ctx, po))

	got, err := repo.FindByID(ctx, po.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Cement", got.Items[0].Description, "items keep their order")
	assert.Equal(t, purchasing.PurchaseOrderStatusSent, got.Status)
	assert.True(t, got.TotalAmount.Equal(decimal.NewFromInt(998)))

	_, err = got.Receive(got.Items[0].ID, decimal.NewFromInt(10))
	require.NoError(t, err)
	got.Rollup()
	require.NoError(t, repo.Save(ctx, got))

	locked, err := repo.FindForUpdate(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, purchasing.PurchaseOrderStatusPartiallyReceived, locked.Status)
	assert.Equal(t, purchasing.ItemStatusReceived, locked.Items[0].Status)

	byVendor, err := repo.FindAll(ctx, shared.DefaultFilter().With("vendor_id", po.VendorID))
	require.NoError(t, err)
	assert.Len(t, byVendor, 1)
	none, err := repo.Count(ctx, shared.DefaultFilter().With("status", "DRAFT"))
	require.NoError(t, err)
	assert.Zero(t, none)

	require.NoError(t, repo.Delete(ctx, po.ID))
	_, err = repo.FindByID(ctx, po.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormReceivingRecordRepository_RollupRollsBack(t *testing.T) {
	db := newTestDB(t)
	orders := NewGormPurchaseOrderRepository(db)
	materials := NewGormMaterialRepository(db)
	records := NewGormReceivingRecordRepository(db)
	tx := NewGormTransactionManager(db)
	ctx := context.Background()

	cement, err := purchasing.NewMaterial("CEM-1", "Cement", "T")
	require.NoError(t, err)
	require.NoError(t, materials.Save(ctx, cement))
	po := newSentOrder(t, &cement.ID)
	require.NoError(t, orders.Save(ctx, po))
	lineID := po.Items[0].ID

	receive := func(qty int64, fail error) error {
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			rec, err := purchasing.NewReceivingRecord(po.ID, "yard", time.Now(), []purchasing.ReceivingInput{
				{PurchaseOrderItemID: lineID, QuantityReceived: decimal.NewFromInt(qty)},
			})
			if err != nil {
				return err
			}
			order, err := orders.FindForUpdate(ctx, po.ID)
			if err != nil {
				return err
			}
			if _, err := order.Receive(lineID, decimal.NewFromInt(qty)); err != nil {
				return err
			}
			order.Rollup()
			m, err := materials.FindForUpdate(ctx, cement.ID)
			if err != nil {
				return err
			}
			if err := m.AdjustStock(decimal.NewFromInt(qty)); err != nil {
				return err
			}
			if err := materials.Save(ctx, m); err != nil {
				return err
			}
			if err := orders.Save(ctx, order); err != nil {
				return err
			}
			if err := records.Save(ctx, rec); err != nil {
				return err
			}
			return fail
		})
	}

	boom := errors.New("boom")
	assert.ErrorIs(t, receive(3, boom), boom)

	order, err := orders.FindByID(ctx, po.ID)
	require.NoError(t, err)
	assert.Equal(t, purchasing.PurchaseOrderStatusSent, order.Status)
	assert.True(t, order.Items[0].ReceivedQuantity.IsZero())
	list, err := records.FindByPurchaseOrder(ctx, po.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, receive(3, nil))

	list, err = records.FindByPurchaseOrder(ctx, po.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Items, 1)
	assert.True(t, list[0].Items[0].QuantityReceived.Equal(decimal.NewFromInt(3)))

	m, err := materials.FindByID(ctx, cement.ID)
	require.NoError(t, err)
	assert.True(t, m.QuantityOnHand.Equal(decimal.NewFromInt(3)))

	require.NoError(t, list[0].Reject("damaged"))
	require.NoError(t, records.Save(ctx, &list[0]))
	got, err := records.FindByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, purchasing.ReceivingStatusRejected, got.Status)
	assert.Equal(t, "damaged", got.VoidReason)
}
