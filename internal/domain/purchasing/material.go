package purchasing

import (
	"strings"

	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaterialStatus represents whether a material can be ordered
type MaterialStatus string

const (
	MaterialStatusActive   MaterialStatus = "ACTIVE"
	MaterialStatusInactive MaterialStatus = "INACTIVE"
)

// IsValid checks if the status is valid
func (s MaterialStatus) IsValid() bool {
	return s == MaterialStatusActive || s == MaterialStatusInactive
}

// Material is a raw material stocked by the plant: cement, aggregate, strand, inserts
type Material struct {
	shared.BaseAggregateRoot
	Code           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string          `gorm:"type:varchar(200);not null;index"`
	Unit           string          `gorm:"type:varchar(20);not null;default:'EA'"`
	UnitCost       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	QuantityOnHand decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReorderPoint   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status         MaterialStatus  `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (Material) TableName() string {
	return "materials"
}

// NewMaterial creates an active material with no stock
func NewMaterial(code, name, unit string) (*Material, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Material code cannot be empty")
	}
	m := &Material{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Unit:              "EA",
		UnitCost:          decimal.Zero,
		QuantityOnHand:    decimal.Zero,
		ReorderPoint:      decimal.Zero,
		Status:            MaterialStatusActive,
	}
	if unit = strings.TrimSpace(unit); unit != "" {
		m.Unit = unit
	}
	if err := m.Rename(name); err != nil {
		return nil, err
	}
	return m, nil
}

// Rename changes the material name
func (m *Material) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Material name cannot be empty")
	}
	m.Name = name
	return nil
}

// SetUnitCost sets the standard cost per unit
func (m *Material) SetUnitCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}
	m.UnitCost = cost
	return nil
}

// SetReorderPoint sets the stock level that triggers reordering
func (m *Material) SetReorderPoint(point decimal.Decimal) error {
	if point.IsNegative() {
		return shared.NewDomainError("INVALID_REORDER_POINT", "Reorder point cannot be negative")
	}
	m.ReorderPoint = point
	return nil
}

// AdjustStock adds delta to the quantity on hand. Stock may not go negative.
func (m *Material) AdjustStock(delta decimal.Decimal) error {
	next := m.QuantityOnHand.Add(delta)
	if next.IsNegative() {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Not enough "+m.Code+" on hand to reverse the receipt")
	}
	m.QuantityOnHand = next
	m.IncrementVersion()
	return nil
}

// NeedsReorder reports whether stock is at or below the reorder point
func (m *Material) NeedsReorder() bool {
	return m.ReorderPoint.IsPositive() && m.QuantityOnHand.LessThanOrEqual(m.ReorderPoint)
}
