package yard

import (
	"strings"

	"github.com/precast-erp/backend/internal/domain/shared"
)

// LocationStatus is the availability of a yard location
type LocationStatus string

const (
	LocationStatusAvailable   LocationStatus = "AVAILABLE"
	LocationStatusFull        LocationStatus = "FULL"
	LocationStatusReserved    LocationStatus = "RESERVED"
	LocationStatusMaintenance LocationStatus = "MAINTENANCE"
)

// IsValid checks if the status is valid
func (s LocationStatus) IsValid() bool {
	switch s {
	case LocationStatusAvailable, LocationStatusFull, LocationStatusReserved, LocationStatusMaintenance:
		return true
	}
	return false
}

// held reports whether the status was set by hand and survives occupancy changes
func (s LocationStatus) held() bool {
	return s == LocationStatusReserved || s == LocationStatusMaintenance
}

// Location is a storage slot in the precast yard
type Location struct {
	shared.BaseAggregateRoot
	Code     string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	Zone     string         `gorm:"type:varchar(50);not null;index"`
	Row      string         `gorm:"column:yard_row;type:varchar(20)"`
	Bay      string         `gorm:"column:yard_bay;type:varchar(20)"`
	Capacity int            `gorm:"not null;default:1"`
	Occupied int            `gorm:"not null;default:0"`
	Status   LocationStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	Notes    string         `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Location) TableName() string {
	return "yard_locations"
}

// NewLocation creates an empty location. A capacity below one defaults to one.
func NewLocation(code, zone string, capacity int) (*Location, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Location code cannot be empty")
	}
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return nil, shared.NewDomainError("INVALID_ZONE", "Location zone cannot be empty")
	}
	if capacity < 1 {
		capacity = 1
	}
	return &Location{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Zone:              zone,
		Capacity:          capacity,
		Status:            LocationStatusAvailable,
	}, nil
}

// Free returns the number of pieces the location can still take
func (l *Location) Free() int {
	if free := l.Capacity - l.Occupied; free > 0 {
		return free
	}
	return 0
}

// SetCapacity changes the capacity. It may not drop below the current occupancy.
func (l *Location) SetCapacity(capacity int) error {
	if capacity < 1 {
		return shared.NewDomainError("INVALID_CAPACITY", "Capacity must be at least 1")
	}
	if capacity < l.Occupied {
		return shared.NewDomainError("INVALID_CAPACITY", "Capacity cannot be below the current occupancy")
	}
	l.Capacity = capacity
	l.refresh()
	return nil
}

// SetStatus reserves a location, takes it out for maintenance or returns it to service.
// FULL is derived from occupancy and cannot be set.
func (l *Location) SetStatus(status LocationStatus) error {
	if !status.IsValid() || status == LocationStatusFull {
		return shared.NewDomainError(shared.CodeInvalidInput, "Location status must be AVAILABLE, RESERVED or MAINTENANCE")
	}
	l.Status = status
	l.refresh()
	return nil
}

// Occupy places one piece in the location
func (l *Location) Occupy() error {
	if l.Status == LocationStatusMaintenance {
		return shared.NewDomainError("LOCATION_UNAVAILABLE", "Location "+l.Code+" is under maintenance")
	}
	if l.Occupied >= l.Capacity {
		return shared.NewDomainError(shared.ErrCapacityExceeded.Code, "Location "+l.Code+" is full")
	}
	l.Occupied++
	l.refresh()
	return nil
}

// Release removes one piece from the location
func (l *Location) Release() {
	if l.Occupied > 0 {
		l.Occupied--
	}
	l.refresh()
}

func (l *Location) refresh() {
	if l.Status.held() {
		return
	}
	if l.Occupied >= l.Capacity {
		l.Status = LocationStatusFull
	} else {
		l.Status = LocationStatusAvailable
	}
}

// ZoneSummary is the occupancy of one yard zone
type ZoneSummary struct {
	Zone        string  `json:"zone"`
	Locations   int     `json:"locations"`
	Capacity    int     `json:"capacity"`
	Occupied    int     `json:"occupied"`
	Free        int     `json:"free"`
	Utilization float64 `json:"utilization"`
	Maintenance int     `json:"maintenance"`
	Reserved    int     `json:"reserved"`
}

// Summary is the occupancy of the whole yard, broken down by zone
type Summary struct {
	Zones []ZoneSummary `json:"zones"`
	Total ZoneSummary   `json:"total"`
}

// Summarize totals locations by zone. Zones keep the order they first appear in.
func Summarize(locations []Location) Summary {
	index := map[string]int{}
	zones := []ZoneSummary{}
	total := ZoneSummary{Zone: "ALL"}
	for i := range locations {
		l := &locations[i]
		pos, ok := index[l.Zone]
		if !ok {
			pos = len(zones)
			index[l.Zone] = pos
			zones = append(zones, ZoneSummary{Zone: l.Zone})
		}
		zones[pos].add(l)
		total.add(l)
	}
	for i := range zones {
		zones[i].finish()
	}
	total.finish()
	return Summary{Zones: zones, Total: total}
}

func (z *ZoneSummary) add(l *Location) {
	z.Locations++
	z.Capacity += l.Capacity
	z.Occupied += l.Occupied
	z.Free += l.Free()
	switch l.Status {
	case LocationStatusMaintenance:
		z.Maintenance++
	case LocationStatusReserved:
		z.Reserved++
	}
}

func (z *ZoneSummary) finish() {
	if z.Capacity > 0 {
		z.Utilization = float64(z.Occupied) / float64(z.Capacity)
	}
}
