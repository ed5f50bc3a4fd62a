package persistence

import (
	"github.com/precast-erp/backend/internal/domain/contacts"
	"github.com/precast-erp/backend/internal/domain/drafting"
	"github.com/precast-erp/backend/internal/domain/estimating"
	"github.com/precast-erp/backend/internal/domain/hr"
	"github.com/precast-erp/backend/internal/domain/projects"
	"github.com/precast-erp/backend/internal/domain/purchasing"
	"github.com/precast-erp/backend/internal/domain/quality"
	"github.com/precast-erp/backend/internal/domain/sales"
	"github.com/precast-erp/backend/internal/domain/shipping"
	"github.com/precast-erp/backend/internal/domain/yard"
)

// Models returns every persisted entity, in dependency order, for AutoMigrate
func Models() []interface{} {
	return []interface{}{
		&contacts.Contact{},
		&estimating.Estimate{},
		&estimating.EstimateItem{},
		&projects.Project{},
		&drafting.Drawing{},
		&drafting.DrawingWorkflowEntry{},
		&hr.Employee{},
		&hr.LeaveRequest{},
		&hr.LeaveBalance{},
		&hr.Timesheet{},
		&hr.TimesheetEntry{},
		&purchasing.Material{},
		&purchasing.PurchaseOrder{},
		&purchasing.PurchaseOrderItem{},
		&purchasing.ReceivingRecord{},
		&purchasing.ReceivingItem{},
		&yard.Location{},
		&yard.Piece{},
		&yard.Equipment{},
		&yard.Movement{},
		&quality.Inspection{},
		&quality.NonConformance{},
		&shipping.Shipment{},
		&shipping.ShipmentItem{},
		&sales.Opportunity{},
	}
}
