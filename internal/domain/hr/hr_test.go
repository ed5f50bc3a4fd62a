package hr

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateBusinessDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"single weekday", date(2026, 3, 2), date(2026, 3, 2), 1},
		{"monday to friday", date(2026, 3, 2), date(2026, 3, 6), 5},
		{"across a weekend", date(2026, 3, 5), date(2026, 3, 10), 4},
		{"weekend only", date(2026, 3, 7), date(2026, 3, 8), 0},
		{"two full weeks", date(2026, 3, 2), date(2026, 3, 15), 10},
		{"end before start", date(2026, 3, 6), date(2026, 3, 2), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateBusinessDays(tt.start, tt.end))
		})
	}
}

func TestNewEmployee(t *testing.T) {
	e, err := NewEmployee("", "Dana", "Ruiz")
	require.NoError(t, err)
	assert.Regexp(t, `^EMP-\d{8}-[0-9A-F]{6}$`, e.EmployeeNumber)
	assert.Equal(t, EmployeeStatusActive, e.Status)
	assert.Equal(t, "Dana Ruiz", e.FullName())

	_, err = NewEmployee("E-1", "Dana", " ")
	assert.Error(t, err)

	assert.Error(t, e.SetEmail("not-an-email"))
	assert.NoError(t, e.SetEmail("dana@plant.example"))
	assert.Error(t, e.SetHourlyRate(decimal.NewFromInt(-1)))
}

func TestEmployee_ChangeStatus(t *testing.T) {
	e, err := NewEmployee("E-1", "Dana", "Ruiz")
	require.NoError(t, err)

	require.NoError(t, e.ChangeStatus(EmployeeStatusOnLeave))
	require.NoError(t, e.ChangeStatus(EmployeeStatusTerminated))
	assert.False(t, e.CanRequestLeave())

	err = e.ChangeStatus(EmployeeStatusActive)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
}

func TestNewLeaveRequest(t *testing.T) {
	employeeID := uuid.New()

	t.Run("counts business days", func(t *testing.T) {
		r, err := NewLeaveRequest(employeeID, LeaveTypeVacation, date(2026, 3, 5), date(2026, 3, 10), " beach ")
		require.NoError(t, err)
		assert.Equal(t, 4, r.TotalDays)
		assert.Equal(t, LeaveStatusPending, r.Status)
		assert.Equal(t, "beach", r.Reason)
		assert.Equal(t, 2026, r.Year())
		require.Len(t, r.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeLeaveRequested, r.GetDomainEvents()[0].EventType())
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		_, err := NewLeaveRequest(employeeID, LeaveTypeSick, date(2026, 3, 6), date(2026, 3, 2), "")
		assert.True(t, shared.IsDomainErrorCode(err, "INVALID_DATE_RANGE"))
	})

	t.Run("rejects a weekend-only period", func(t *testing.T) {
		_, err := NewLeaveRequest(employeeID, LeaveTypeSick, date(2026, 3, 7), date(2026, 3, 8), "")
		assert.True(t, shared.IsDomainErrorCode(err, "INVALID_LEAVE_PERIOD"))
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		_, err := NewLeaveRequest(employeeID, LeaveType("SABBATICAL"), date(2026, 3, 2), date(2026, 3, 2), "")
		assert.Error(t, err)
	})
}

func TestLeaveRequest_Decisions(t *testing.T) {
	r, err := NewLeaveRequest(uuid.New(), LeaveTypePersonal, date(2026, 3, 2), date(2026, 3, 2), "")
	require.NoError(t, err)

	require.NoError(t, r.Approve("manager"))
	assert.Equal(t, "manager", r.ApprovedBy)
	assert.NotNil(t, r.DecidedAt)

	err = r.Cancel()
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
	assert.EqualError(t, err, "Cannot change leave request status from APPROVED to CANCELLED")
}

func TestLeaveBalance(t *testing.T) {
	t.Run("default entitlements", func(t *testing.T) {
		assert.Equal(t, 15, NewLeaveBalance(uuid.New(), 2026, LeaveTypeVacation).Remaining)
		assert.Equal(t, 10, NewLeaveBalance(uuid.New(), 2026, LeaveTypeSick).Entitled)
		assert.Equal(t, 3, NewLeaveBalance(uuid.New(), 2026, LeaveTypePersonal).Entitled)
		assert.Equal(t, 0, NewLeaveBalance(uuid.New(), 2026, LeaveTypeUnpaid).Entitled)
	})

	t.Run("reserve commit release keep the invariant", func(t *testing.T) {
		b := NewLeaveBalance(uuid.New(), 2026, LeaveTypeVacation)
		require.NoError(t, b.Reserve(5))
		assert.Equal(t, 5, b.Pending)
		assert.Equal(t, 10, b.Remaining)

		b.Commit(3)
		assert.Equal(t, 2, b.Pending)
		assert.Equal(t, 3, b.Used)
		assert.Equal(t, 10, b.Remaining)

		b.Release(2)
		assert.Equal(t, 0, b.Pending)
		assert.Equal(t, 12, b.Remaining)
		assert.Equal(t, b.Entitled-b.Used-b.Pending, b.Remaining)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		b := NewLeaveBalance(uuid.New(), 2026, LeaveTypePersonal)
		err := b.Reserve(4)
		assert.ErrorIs(t, err, shared.ErrInsufficientBalance)
		assert.Equal(t, 3, b.Remaining)
	})

	t.Run("unpaid leave may go negative", func(t *testing.T) {
		b := NewLeaveBalance(uuid.New(), 2026, LeaveTypeUnpaid)
		require.NoError(t, b.Reserve(4))
		assert.Equal(t, -4, b.Remaining)
	})
}

func TestWeekStart(t *testing.T) {
	assert.Equal(t, date(2026, 3, 2), WeekStart(date(2026, 3, 2)))
	assert.Equal(t, date(2026, 3, 2), WeekStart(date(2026, 3, 5)))
	assert.Equal(t, date(2026, 3, 2), WeekStart(date(2026, 3, 8)), "sunday belongs to the previous monday")
}

func TestTimesheet(t *testing.T) {
	ts, err := NewTimesheet(uuid.New(), date(2026, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 2), ts.WeekStart)
	assert.Equal(t, date(2026, 3, 8), ts.WeekEnd())

	assert.True(t, shared.IsDomainErrorCode(ts.Submit(), "EMPTY_TIMESHEET"))

	err = ts.SetEntries([]EntryInput{{Date: date(2026, 3, 2), Hours: decimal.NewFromInt(25)}})
	assert.True(t, shared.IsDomainErrorCode(err, "INVALID_HOURS"))
	err = ts.SetEntries([]EntryInput{{Date: date(2026, 3, 9), Hours: decimal.NewFromInt(8)}})
	assert.True(t, shared.IsDomainErrorCode(err, "INVALID_ENTRY_DATE"))

	require.NoError(t, ts.SetEntries([]EntryInput{
		{Date: date(2026, 3, 2), Hours: decimal.NewFromInt(8)},
		{Date: date(2026, 3, 3), Hours: decimal.RequireFromString("7.5")},
	}))
	assert.True(t, ts.TotalHours.Equal(decimal.RequireFromString("15.5")))

	require.NoError(t, ts.Submit())
	assert.Error(t, ts.SetEntries(nil), "submitted timesheets are locked")
	assert.Error(t, ts.Reopen())

	require.NoError(t, ts.Reject("supervisor"))
	require.NoError(t, ts.Reopen())
	assert.Equal(t, TimesheetStatusDraft, ts.Status)
	assert.Empty(t, ts.ApprovedBy)

	require.NoError(t, ts.Submit())
	require.NoError(t, ts.Approve("supervisor"))
	assert.False(t, ts.Status.CanTransitionTo(TimesheetStatusDraft))
}
