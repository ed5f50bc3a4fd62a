package shipping

import "github.com/precast-erp/backend/internal/domain/shared"

// ShipmentRepository defines persistence operations for shipments.
// Shipments are loaded with their items. FindAll and Count accept the
// "project_id" and "status" filter keys and the "scheduled_from"/"scheduled_to" date range.
type ShipmentRepository interface {
	shared.Repository[Shipment]
}
