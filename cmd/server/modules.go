package main

import (
	"context"
	"time"

	contactsapp "github.com/precast-erp/backend/internal/application/contacts"
	draftingapp "github.com/precast-erp/backend/internal/application/drafting"
	estimatingapp "github.com/precast-erp/backend/internal/application/estimating"
	hrapp "github.com/precast-erp/backend/internal/application/hr"
	projectsapp "github.com/precast-erp/backend/internal/application/projects"
	purchasingapp "github.com/precast-erp/backend/internal/application/purchasing"
	qualityapp "github.com/precast-erp/backend/internal/application/quality"
	salesapp "github.com/precast-erp/backend/internal/application/sales"
	shippingapp "github.com/precast-erp/backend/internal/application/shipping"
	yardapp "github.com/precast-erp/backend/internal/application/yard"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/document"
	"github.com/precast-erp/backend/internal/infrastructure/export"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"github.com/precast-erp/backend/internal/infrastructure/persistence"
	"github.com/precast-erp/backend/internal/infrastructure/scheduler"
	"github.com/precast-erp/backend/internal/infrastructure/telemetry"
	"github.com/precast-erp/backend/internal/interfaces/http/handler"
	"github.com/precast-erp/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// modules holds the wired HTTP handlers and background tasks
type modules struct {
	registrars []router.RouteRegistrar
	tasks      []scheduler.Task
}

// taskOptions configures the background tasks
type taskOptions struct {
	reorderCheckInterval time.Duration
	log                  *zap.Logger
}

// buildModules wires repositories, services and handlers of every business module
func buildModules(db *gorm.DB, ai shared.AIClient, events shared.EventPublisher, opts taskOptions) modules {
	tx := persistence.NewGormTransactionManager(db)
	renderer := document.NewRenderer()
	exporter := export.NewXLSXExporter()

	contactRepo := persistence.NewGormContactRepository(db)
	projectRepo := persistence.NewGormProjectRepository(db)
	estimateRepo := persistence.NewGormEstimateRepository(db)
	drawingRepo := persistence.NewGormDrawingRepository(db)
	employeeRepo := persistence.NewGormEmployeeRepository(db)
	leaveRequestRepo := persistence.NewGormLeaveRequestRepository(db)
	leaveBalanceRepo := persistence.NewGormLeaveBalanceRepository(db)
	timesheetRepo := persistence.NewGormTimesheetRepository(db)
	materialRepo := persistence.NewGormMaterialRepository(db)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db)
	receivingRepo := persistence.NewGormReceivingRecordRepository(db)
	locationRepo := persistence.NewGormLocationRepository(db)
	pieceRepo := persistence.NewGormPieceRepository(db)
	equipmentRepo := persistence.NewGormEquipmentRepository(db)
	movementRepo := persistence.NewGormMovementRepository(db)
	inspectionRepo := persistence.NewGormInspectionRepository(db)
	ncrRepo := persistence.NewGormNonConformanceRepository(db)
	shipmentRepo := persistence.NewGormShipmentRepository(db)
	opportunityRepo := persistence.NewGormOpportunityRepository(db)

	// Contacts and projects resolve display names for the other modules
	contactService := contactsapp.NewContactService(contactRepo, events)
	projectService := projectsapp.NewProjectService(projectRepo, contactService, events)

	estimateService := estimatingapp.NewEstimateService(estimateRepo, contactService, projectService, events)
	drawingService := draftingapp.NewDrawingService(drawingRepo, projectService)
	workflowService := draftingapp.NewWorkflowService(drawingRepo, tx, events)

	employeeService := hrapp.NewEmployeeService(employeeRepo)
	leaveService := hrapp.NewLeaveService(leaveRequestRepo, leaveBalanceRepo, employeeRepo, tx, events)
	timesheetService := hrapp.NewTimesheetService(timesheetRepo, employeeRepo, exporter, events)

	materialService := purchasingapp.NewMaterialService(materialRepo)
	orderService := purchasingapp.NewPurchaseOrderService(orderRepo, contactService, events)
	receivingService := purchasingapp.NewReceivingService(receivingRepo, orderRepo, materialRepo, tx, events)

	locationService := yardapp.NewLocationService(locationRepo)
	pieceService := yardapp.NewPieceService(pieceRepo, locationRepo, projectService, tx, exporter, renderer)
	equipmentService := yardapp.NewEquipmentService(equipmentRepo)
	movementService := yardapp.NewMovementService(movementRepo, pieceRepo, locationRepo, equipmentRepo, tx, events)

	inspectionService := qualityapp.NewInspectionService(inspectionRepo, ncrRepo, projectService, tx, events)
	ncrService := qualityapp.NewNonConformanceService(ncrRepo, inspectionRepo, projectService, events)

	shipmentService := shippingapp.NewShipmentService(shipmentRepo, projectService, renderer, events)
	opportunityService := salesapp.NewOpportunityService(opportunityRepo, contactService, events)

	reorderCheck := scheduler.Task{
		Name:     "material-reorder-check",
		Interval: opts.reorderCheckInterval,
		Run: func(ctx context.Context) (err error) {
			telemetry.Profiled(logger.WithContext(ctx, opts.log), func(ctx context.Context) {
				var n int
				n, err = materialService.CheckReorderPoints(ctx)
				if err == nil && n > 0 {
					opts.log.Info("Reorder check found materials to restock", zap.Int("count", n))
				}
			}, telemetry.ProfilingLabelOperation, "material-reorder-check")
			return err
		},
	}

	return modules{tasks: []scheduler.Task{reorderCheck}, registrars: []router.RouteRegistrar{
		handler.NewContactHandler(contactService, contactsapp.NewContactsAIService(ai)),
		handler.NewEstimateHandler(estimateService, estimatingapp.NewEstimatingAIService(ai)),
		handler.NewProjectHandler(projectService, projectsapp.NewProjectsAIService(ai)),
		handler.NewDrawingHandler(drawingService, workflowService, draftingapp.NewDraftingAIService(ai)),
		handler.NewHRHandler(employeeService, leaveService, timesheetService, hrapp.NewHRAIService(ai)),
		handler.NewPurchasingHandler(materialService, orderService, receivingService, purchasingapp.NewPurchasingAIService(ai)),
		handler.NewYardHandler(locationService, pieceService, equipmentService, movementService,
			yardapp.NewYardAIService(ai, locationRepo, pieceRepo)),
		handler.NewQualityHandler(inspectionService, ncrService, qualityapp.NewQualityAIService(ai, ncrRepo, inspectionRepo)),
		handler.NewShippingHandler(shipmentService, shippingapp.NewShippingAIService(ai, shipmentRepo)),
		handler.NewSalesHandler(opportunityService, salesapp.NewSalesAIService(ai, opportunityRepo, contactService)),
	}}
}
