package yard

import (
	"strings"

	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EquipmentType is the kind of lifting or hauling equipment
type EquipmentType string

const (
	EquipmentTypeCrane    EquipmentType = "CRANE"
	EquipmentTypeForklift EquipmentType = "FORKLIFT"
	EquipmentTypeGantry   EquipmentType = "GANTRY"
	EquipmentTypeTruck    EquipmentType = "TRUCK"
	EquipmentTypeOther    EquipmentType = "OTHER"
)

// IsValid checks if the type is valid
func (t EquipmentType) IsValid() bool {
	switch t {
	case EquipmentTypeCrane, EquipmentTypeForklift, EquipmentTypeGantry, EquipmentTypeTruck, EquipmentTypeOther:
		return true
	}
	return false
}

// EquipmentStatus is the availability of equipment
type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusInUse       EquipmentStatus = "IN_USE"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// IsValid checks if the status is valid
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusInUse, EquipmentStatusMaintenance:
		return true
	}
	return false
}

// Equipment moves pieces around the yard
type Equipment struct {
	shared.BaseAggregateRoot
	Name         string          `gorm:"type:varchar(100);not null"`
	Type         EquipmentType   `gorm:"type:varchar(20);not null;default:'OTHER';index"`
	Status       EquipmentStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	CapacityTons decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0"`
	Notes        string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Equipment) TableName() string {
	return "yard_equipment"
}

// NewEquipment creates available equipment. A zero capacity means unrated.
func NewEquipment(name string, equipmentType EquipmentType, capacityTons decimal.Decimal) (*Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Equipment name cannot be empty")
	}
	if equipmentType == "" {
		equipmentType = EquipmentTypeOther
	}
	if !equipmentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_EQUIPMENT_TYPE", "Invalid equipment type")
	}
	if capacityTons.IsNegative() {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity cannot be negative")
	}
	return &Equipment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              equipmentType,
		Status:            EquipmentStatusAvailable,
		CapacityTons:      capacityTons,
	}, nil
}

// CanLift reports whether the equipment is rated for weight
func (e *Equipment) CanLift(weight decimal.Decimal) bool {
	return e.CapacityTons.IsZero() || weight.LessThanOrEqual(e.CapacityTons)
}

// Assign puts available equipment to work
func (e *Equipment) Assign() error {
	if e.Status != EquipmentStatusAvailable {
		return shared.NewDomainError("EQUIPMENT_UNAVAILABLE", e.Name+" is "+strings.ToLower(strings.ReplaceAll(string(e.Status), "_", " ")))
	}
	e.Status = EquipmentStatusInUse
	e.IncrementVersion()
	return nil
}

// Release frees equipment that is in use. Other statuses are left alone.
func (e *Equipment) Release() {
	if e.Status == EquipmentStatusInUse {
		e.Status = EquipmentStatusAvailable
		e.IncrementVersion()
	}
}

// SetStatus changes the status by hand
func (e *Equipment) SetStatus(status EquipmentStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Invalid equipment status")
	}
	e.Status = status
	return nil
}
