package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/hr"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGormEmployeeRepository(t *testing.T) {
	repo := NewGormEmployeeRepository(newTestDB(t))
	ctx := context.Background()

	dana, err := hr.NewEmployee("E-1", "Dana", "Ruiz")
	require.NoError(t, err)
	dana.Department = "Yard"
	require.NoError(t, repo.Save(ctx, dana))
	lee, err := hr.NewEmployee("E-2", "Lee", "Park")
	require.NoError(t, err)
	lee.Department = "Production"
	require.NoError(t, repo.Save(ctx, lee))

	dup, err := hr.NewEmployee("E-1", "Sam", "Cole")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)

	list, err := repo.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Park", list[0].LastName, "ordered by last name")

	yard, err := repo.Count(ctx, shared.DefaultFilter().With("department", "Yard"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), yard)

	found, err := repo.FindByIDs(ctx, []uuid.UUID{dana.ID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Dana Ruiz", found[0].FullName())
}

func TestGormLeaveBalanceRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormLeaveBalanceRepository(db)
	tx := NewGormTransactionManager(db)
	ctx := context.Background()
	employeeID := uuid.New()

	_, err := repo.FindForUpdate(ctx, employeeID, 2026, hr.LeaveTypeVacation)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		b := hr.NewLeaveBalance(employeeID, 2026, hr.LeaveTypeVacation)
		if err := b.Reserve(3); err != nil {
			return err
		}
		return repo.Save(ctx, b)
	})
	require.NoError(t, err)

	b, err := repo.FindForUpdate(ctx, employeeID, 2026, hr.LeaveTypeVacation)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Pending)
	assert.Equal(t, 12, b.Remaining)

	b.Commit(3)
	require.NoError(t, repo.Save(ctx, b))

	dup := hr.NewLeaveBalance(employeeID, 2026, hr.LeaveTypeVacation)
	assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)

	list, err := repo.FindByEmployeeYear(ctx, employeeID, 2026)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].Used)
}

func TestGormLeaveBalanceRepository_RollbackKeepsBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormLeaveBalanceRepository(db)
	tx := NewGormTransactionManager(db)
	ctx := context.Background()
	employeeID := uuid.New()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		b := hr.NewLeaveBalance(employeeID, 2026, hr.LeaveTypeSick)
		if err := b.Reserve(2); err != nil {
			return err
		}
		if err := repo.Save(ctx, b); err != nil {
			return err
		}
		return shared.ErrInvalidState
	})
	assert.ErrorIs(t, err, shared.ErrInvalidState)

	_, err = repo.FindForUpdate(ctx, employeeID, 2026, hr.LeaveTypeSick)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormTimesheetRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormTimesheetRepository(db)
	ctx := context.Background()
	employeeID := uuid.New()

	first, err := hr.NewTimesheet(employeeID, day(2026, 3, 4))
	require.NoError(t, err)
	require.NoError(t, first.SetEntries([]hr.EntryInput{
		{Date: day(2026, 3, 3), Hours: decimal.NewFromInt(8)},
		{Date: day(2026, 3, 2), Hours: decimal.NewFromInt(9)},
	}))
	require.NoError(t, repo.Save(ctx, first))

	second, err := hr.NewTimesheet(employeeID, day(2026, 3, 10))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	dup, err := hr.NewTimesheet(employeeID, day(2026, 3, 6))
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Save(ctx, dup), shared.ErrAlreadyExists)

	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)
	assert.True(t, got.Entries[0].Hours.Equal(decimal.NewFromInt(9)), "entries ordered by date")

	require.NoError(t, got.SetEntries([]hr.EntryInput{{Date: day(2026, 3, 5), Hours: decimal.NewFromInt(4)}}))
	require.NoError(t, repo.Save(ctx, got))
	var rows int64
	require.NoError(t, db.Model(&hr.TimesheetEntry{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	from := shared.DefaultFilter().With("week_from", day(2026, 3, 9))
	list, err := repo.FindAll(ctx, from)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	count, err := repo.Count(ctx, shared.DefaultFilter().With("employee_id", employeeID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, db.Model(&hr.TimesheetEntry{}).Count(&rows).Error)
	assert.Zero(t, rows)
}
