package hr

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/hr"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// TimesheetService handles weekly timesheets
type TimesheetService struct {
	repo      hr.TimesheetRepository
	employees hr.EmployeeRepository
	exporter  common.TableExporter
	events    shared.EventPublisher
}

// NewTimesheetService creates a new TimesheetService
func NewTimesheetService(repo hr.TimesheetRepository, employees hr.EmployeeRepository, exporter common.TableExporter, events shared.EventPublisher) *TimesheetService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &TimesheetService{repo: repo, employees: employees, exporter: exporter, events: events}
}

func (s *TimesheetService) filter(filter TimesheetListFilter) shared.Filter {
	f := filter.Filter().
		With("employee_id", filter.EmployeeID).
		With("status", filter.Status)
	if filter.WeekFrom != nil {
		f = f.With("week_from", hr.WeekStart(*filter.WeekFrom))
	}
	if filter.WeekTo != nil {
		f = f.With("week_to", hr.WeekStart(*filter.WeekTo))
	}
	return f
}

// ListTimesheets returns a page of timesheets matching the filter
func (s *TimesheetService) ListTimesheets(ctx context.Context, filter TimesheetListFilter) ([]TimesheetResponse, int64, error) {
	f := s.filter(filter)
	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch timesheets", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch timesheets", err)
	}
	names := s.names(ctx, list)
	responses := make([]TimesheetResponse, len(list))
	for i := range list {
		responses[i] = ToTimesheetResponse(&list[i], names[list[i].EmployeeID])
	}
	return responses, total, nil
}

// GetTimesheet returns a timesheet with its entries
func (s *TimesheetService) GetTimesheet(ctx context.Context, id uuid.UUID) (*TimesheetResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch timesheet", err)
	}
	return s.respond(ctx, t), nil
}

// CreateTimesheet opens a draft timesheet for the week containing req.WeekStart
func (s *TimesheetService) CreateTimesheet(ctx context.Context, req CreateTimesheetRequest) (*TimesheetResponse, error) {
	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		return nil, common.Fail(ctx, "create timesheet", err)
	}
	t, err := hr.NewTimesheet(req.EmployeeID, req.WeekStart)
	if err != nil {
		return nil, err
	}
	if err := t.SetEntries(toEntryInputs(req.Entries)); err != nil {
		return nil, err
	}
	t.Notes = req.Notes

	if err := s.repo.Save(ctx, t); err != nil {
		if shared.IsDomainErrorCode(err, shared.CodeAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "A timesheet already exists for this employee and week")
		}
		return nil, common.Fail(ctx, "create timesheet", err)
	}
	logger.L(ctx).Info("Timesheet created",
		zap.String("timesheet_id", t.ID.String()),
		zap.String("week_start", t.WeekStart.Format(dateLayout)),
	)
	return s.respond(ctx, t), nil
}

// UpdateTimesheet replaces the entries or notes of a draft timesheet
func (s *TimesheetService) UpdateTimesheet(ctx context.Context, id uuid.UUID, req UpdateTimesheetRequest) (*TimesheetResponse, error) {
	return s.mutate(ctx, id, "update timesheet", func(t *hr.Timesheet) error {
		if !t.IsEditable() {
			return shared.NewDomainError(shared.CodeInvalidState, "Only draft timesheets can be edited")
		}
		if req.Entries != nil {
			if err := t.SetEntries(toEntryInputs(*req.Entries)); err != nil {
				return err
			}
		}
		if req.Notes != nil {
			t.Notes = *req.Notes
		}
		return nil
	})
}

// DeleteTimesheet deletes a timesheet that has not been approved
func (s *TimesheetService) DeleteTimesheet(ctx context.Context, id uuid.UUID) error {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return common.Fail(ctx, "delete timesheet", err)
	}
	if t.Status == hr.TimesheetStatusApproved {
		return shared.NewDomainError(shared.CodeInvalidState, "Approved timesheets cannot be deleted")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete timesheet", err)
	}
	return nil
}

// SubmitTimesheet sends a draft timesheet for approval
func (s *TimesheetService) SubmitTimesheet(ctx context.Context, id uuid.UUID) (*TimesheetResponse, error) {
	return s.mutate(ctx, id, "submit timesheet", func(t *hr.Timesheet) error {
		return t.Submit()
	})
}

// ApproveTimesheet accepts a submitted timesheet
func (s *TimesheetService) ApproveTimesheet(ctx context.Context, id uuid.UUID, approver string) (*TimesheetResponse, error) {
	return s.mutate(ctx, id, "approve timesheet", func(t *hr.Timesheet) error {
		return t.Approve(approver)
	})
}

// RejectTimesheet returns a submitted timesheet to the employee
func (s *TimesheetService) RejectTimesheet(ctx context.Context, id uuid.UUID, approver string) (*TimesheetResponse, error) {
	return s.mutate(ctx, id, "reject timesheet", func(t *hr.Timesheet) error {
		return t.Reject(approver)
	})
}

// ReopenTimesheet makes a rejected timesheet editable again
func (s *TimesheetService) ReopenTimesheet(ctx context.Context, id uuid.UUID) (*TimesheetResponse, error) {
	return s.mutate(ctx, id, "reopen timesheet", func(t *hr.Timesheet) error {
		return t.Reopen()
	})
}

// ExportTimesheets renders every timesheet matching the filter to an XLSX workbook
// with a summary sheet and an entries sheet.
func (s *TimesheetService) ExportTimesheets(ctx context.Context, filter TimesheetListFilter) ([]byte, error) {
	f := s.filter(filter)
	f.Page, f.PageSize = 0, 0

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, common.Fail(ctx, "export timesheets", err)
	}
	names := s.names(ctx, list)

	summary := common.Table{
		Title:   "Timesheets",
		Headers: []string{"Employee", "Week Start", "Status", "Total Hours", "Approved By", "Notes"},
	}
	entries := common.Table{
		Title:   "Entries",
		Headers: []string{"Employee", "Date", "Project", "Hours", "Description"},
	}
	for i := range list {
		t := &list[i]
		name := names[t.EmployeeID]
		summary.Rows = append(summary.Rows, []any{
			name, t.WeekStart.Format(dateLayout), string(t.Status), t.TotalHours.InexactFloat64(), t.ApprovedBy, t.Notes,
		})
		for _, e := range t.Entries {
			project := ""
			if e.ProjectID != nil {
				project = e.ProjectID.String()
			}
			entries.Rows = append(entries.Rows, []any{
				name, e.Date.Format(dateLayout), project, e.Hours.InexactFloat64(), e.Description,
			})
		}
	}

	data, err := s.exporter.ExportXLSX(summary, entries)
	if err != nil {
		return nil, common.Fail(ctx, "export timesheets", err)
	}
	logger.L(ctx).Info("Timesheets exported", zap.Int("count", len(list)))
	return data, nil
}

func (s *TimesheetService) mutate(ctx context.Context, id uuid.UUID, verb string, fn func(*hr.Timesheet) error) (*TimesheetResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	if err := fn(t); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	common.Publish(ctx, s.events, t)
	return s.respond(ctx, t), nil
}

func (s *TimesheetService) names(ctx context.Context, list []hr.Timesheet) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0, len(list))
	seen := make(map[uuid.UUID]bool, len(list))
	for i := range list {
		if !seen[list[i].EmployeeID] {
			seen[list[i].EmployeeID] = true
			ids = append(ids, list[i].EmployeeID)
		}
	}
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names
	}
	employees, err := s.employees.FindByIDs(ctx, ids)
	if err != nil {
		logger.L(ctx).Warn("Failed to resolve employee names", zap.Error(err))
		return names
	}
	for i := range employees {
		names[employees[i].ID] = employees[i].FullName()
	}
	return names
}

func (s *TimesheetService) respond(ctx context.Context, t *hr.Timesheet) *TimesheetResponse {
	names := s.names(ctx, []hr.Timesheet{*t})
	resp := ToTimesheetResponse(t, names[t.EmployeeID])
	return &resp
}
