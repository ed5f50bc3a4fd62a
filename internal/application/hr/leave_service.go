package hr

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/hr"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LeaveService handles leave requests and the balances they draw on.
// Every request and its balance change commit in one transaction.
type LeaveService struct {
	requests  hr.LeaveRequestRepository
	balances  hr.LeaveBalanceRepository
	employees hr.EmployeeRepository
	tx        shared.TransactionManager
	events    shared.EventPublisher
}

// NewLeaveService creates a new LeaveService
func NewLeaveService(
	requests hr.LeaveRequestRepository,
	balances hr.LeaveBalanceRepository,
	employees hr.EmployeeRepository,
	tx shared.TransactionManager,
	events shared.EventPublisher,
) *LeaveService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &LeaveService{requests: requests, balances: balances, employees: employees, tx: tx, events: events}
}

// ListLeaveRequests returns a page of leave requests matching the filter
func (s *LeaveService) ListLeaveRequests(ctx context.Context, filter LeaveRequestListFilter) ([]LeaveRequestResponse, int64, error) {
	f := filter.Filter().
		With("employee_id", filter.EmployeeID).
		With("status", filter.Status).
		With("leave_type", filter.LeaveType)

	list, err := s.requests.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch leave requests", err)
	}
	total, err := s.requests.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch leave requests", err)
	}

	ids := make([]uuid.UUID, len(list))
	for i := range list {
		ids[i] = list[i].EmployeeID
	}
	names := s.employeeNames(ctx, ids...)

	responses := make([]LeaveRequestResponse, len(list))
	for i := range list {
		responses[i] = ToLeaveRequestResponse(&list[i], names[list[i].EmployeeID])
	}
	return responses, total, nil
}

// GetLeaveRequest returns a leave request by ID
func (s *LeaveService) GetLeaveRequest(ctx context.Context, id uuid.UUID) (*LeaveRequestResponse, error) {
	r, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch leave request", err)
	}
	return s.respond(ctx, r), nil
}

// RequestLeave files a pending request and reserves its days.
// Paid leave fails with INSUFFICIENT_BALANCE when the remaining allowance is too small.
func (s *LeaveService) RequestLeave(ctx context.Context, req CreateLeaveRequest) (*LeaveRequestResponse, error) {
	r, err := hr.NewLeaveRequest(req.EmployeeID, hr.LeaveType(req.LeaveType), req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		employee, err := s.employees.FindByID(ctx, r.EmployeeID)
		if err != nil {
			return err
		}
		if !employee.CanRequestLeave() {
			return shared.NewDomainError(shared.CodeInvalidState, "Terminated employees cannot request leave")
		}
		balance, err := s.balanceFor(ctx, r)
		if err != nil {
			return err
		}
		if err := balance.Reserve(r.TotalDays); err != nil {
			return err
		}
		if err := s.balances.Save(ctx, balance); err != nil {
			return err
		}
		return s.requests.Save(ctx, r)
	})
	if err != nil {
		return nil, common.Fail(ctx, "create leave request", err)
	}

	common.Publish(ctx, s.events, r)
	logger.L(ctx).Info("Leave requested",
		zap.String("leave_request_id", r.ID.String()),
		zap.String("employee_id", r.EmployeeID.String()),
		zap.Int("days", r.TotalDays),
	)
	return s.respond(ctx, r), nil
}

// ApproveLeaveRequest grants a pending request and moves its days from pending to used
func (s *LeaveService) ApproveLeaveRequest(ctx context.Context, id uuid.UUID, approver string) (*LeaveRequestResponse, error) {
	return s.decide(ctx, id, "approve leave request", func(r *hr.LeaveRequest, b *hr.LeaveBalance) error {
		if err := r.Approve(approver); err != nil {
			return err
		}
		b.Commit(r.TotalDays)
		return nil
	})
}

// RejectLeaveRequest declines a pending request and returns its days
func (s *LeaveService) RejectLeaveRequest(ctx context.Context, id uuid.UUID, approver, reason string) (*LeaveRequestResponse, error) {
	return s.decide(ctx, id, "reject leave request", func(r *hr.LeaveRequest, b *hr.LeaveBalance) error {
		if err := r.Reject(approver, reason); err != nil {
			return err
		}
		b.Release(r.TotalDays)
		return nil
	})
}

// CancelLeaveRequest withdraws a pending request and returns its days
func (s *LeaveService) CancelLeaveRequest(ctx context.Context, id uuid.UUID) (*LeaveRequestResponse, error) {
	return s.decide(ctx, id, "cancel leave request", func(r *hr.LeaveRequest, b *hr.LeaveBalance) error {
		if err := r.Cancel(); err != nil {
			return err
		}
		b.Release(r.TotalDays)
		return nil
	})
}

// GetLeaveBalances returns one balance per leave type for the year.
// Types with no stored balance report the default entitlement. A zero year means the current year.
func (s *LeaveService) GetLeaveBalances(ctx context.Context, employeeID uuid.UUID, year int) ([]LeaveBalanceResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, common.Fail(ctx, "fetch leave balances", err)
	}
	stored, err := s.balances.FindByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, common.Fail(ctx, "fetch leave balances", err)
	}

	byType := make(map[hr.LeaveType]*hr.LeaveBalance, len(stored))
	for i := range stored {
		byType[stored[i].LeaveType] = &stored[i]
	}
	responses := make([]LeaveBalanceResponse, 0, len(hr.LeaveTypes))
	for _, t := range hr.LeaveTypes {
		b, ok := byType[t]
		if !ok {
			b = hr.NewLeaveBalance(employeeID, year, t)
		}
		responses = append(responses, ToLeaveBalanceResponse(b))
	}
	return responses, nil
}

func (s *LeaveService) decide(ctx context.Context, id uuid.UUID, verb string, fn func(*hr.LeaveRequest, *hr.LeaveBalance) error) (*LeaveRequestResponse, error) {
	var r *hr.LeaveRequest
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		r, err = s.requests.FindByID(ctx, id)
		if err != nil {
			return err
		}
		balance, err := s.balanceFor(ctx, r)
		if err != nil {
			return err
		}
		if err := fn(r, balance); err != nil {
			return err
		}
		if err := s.balances.Save(ctx, balance); err != nil {
			return err
		}
		return s.requests.Save(ctx, r)
	})
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, r)
	return s.respond(ctx, r), nil
}

// balanceFor loads the balance charged by r, opening one with the default entitlement if needed
func (s *LeaveService) balanceFor(ctx context.Context, r *hr.LeaveRequest) (*hr.LeaveBalance, error) {
	balance, err := s.balances.FindForUpdate(ctx, r.EmployeeID, r.Year(), r.LeaveType)
	if errors.Is(err, shared.ErrNotFound) {
		return hr.NewLeaveBalance(r.EmployeeID, r.Year(), r.LeaveType), nil
	}
	return balance, err
}

func (s *LeaveService) employeeNames(ctx context.Context, ids ...uuid.UUID) map[uuid.UUID]string {
	list, err := s.employees.FindByIDs(ctx, ids)
	names := make(map[uuid.UUID]string, len(list))
	if err != nil {
		logger.L(ctx).Warn("Failed to resolve employee names", zap.Error(err))
		return names
	}
	for i := range list {
		names[list[i].ID] = list[i].FullName()
	}
	return names
}

func (s *LeaveService) respond(ctx context.Context, r *hr.LeaveRequest) *LeaveRequestResponse {
	names := s.employeeNames(ctx, r.EmployeeID)
	resp := ToLeaveRequestResponse(r, names[r.EmployeeID])
	return &resp
}
