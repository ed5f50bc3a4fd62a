package quality

import "github.com/precast-erp/backend/internal/domain/shared"

// InspectionRepository defines persistence operations for inspections.
// FindAll and Count accept the "project_id", "piece_id", "inspection_type" and "status" filter keys.
type InspectionRepository interface {
	shared.Repository[Inspection]
}

// NonConformanceRepository defines persistence operations for non-conformance reports.
// FindAll and Count accept the "project_id", "inspection_id", "severity" and "status" filter keys.
type NonConformanceRepository interface {
	shared.Repository[NonConformance]
}
