package yard

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/yard"
	"github.com/precast-erp/backend/internal/infrastructure/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// memStore is a tiny in-memory table keyed by ID
type memStore[T any] struct {
	items map[uuid.UUID]T
	order []uuid.UUID
	id    func(*T) uuid.UUID
	match func(*T, shared.Filter) bool
}

func newMemStore[T any](id func(*T) uuid.UUID) *memStore[T] {
	return &memStore[T]{items: map[uuid.UUID]T{}, id: id}
}

func (m *memStore[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &v, nil
}

func (m *memStore[T]) FindForUpdate(ctx context.Context, id uuid.UUID) (*T, error) {
	return m.FindByID(ctx, id)
}

func (m *memStore[T]) FindByIDs(_ context.Context, ids []uuid.UUID) ([]T, error) {
	var list []T
	for _, id := range ids {
		if v, ok := m.items[id]; ok {
			list = append(list, v)
		}
	}
	return list, nil
}

func (m *memStore[T]) FindAll(_ context.Context, f shared.Filter) ([]T, error) {
	list := make([]T, 0, len(m.order))
	for _, id := range m.order {
		v, ok := m.items[id]
		if !ok || (m.match != nil && !m.match(&v, f)) {
			continue
		}
		list = append(list, v)
	}
	return list, nil
}

func (m *memStore[T]) Save(_ context.Context, v *T) error {
	id := m.id(v)
	if _, ok := m.items[id]; !ok {
		m.order = append(m.order, id)
	}
	stored := *v
	// reloaded aggregates carry no pending events, as with the gorm repositories
	if agg, ok := any(&stored).(interface{ ClearDomainEvents() }); ok {
		agg.ClearDomainEvents()
	}
	m.items[id] = stored
	return nil
}

func (m *memStore[T]) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memStore[T]) Count(ctx context.Context, f shared.Filter) (int64, error) {
	list, _ := m.FindAll(ctx, f)
	return int64(len(list)), nil
}

func (m *memStore[T]) get(t *testing.T, id uuid.UUID) T {
	t.Helper()
	v, ok := m.items[id]
	require.True(t, ok)
	return v
}

type memLocations struct {
	*memStore[yard.Location]
}

func (m memLocations) FindAvailable(_ context.Context, minFree int) ([]yard.Location, error) {
	var list []yard.Location
	for _, id := range m.order {
		l := m.items[id]
		if l.Status == yard.LocationStatusAvailable && l.Free() >= minFree {
			list = append(list, l)
		}
	}
	return list, nil
}

type memMovements struct {
	*memStore[yard.Movement]
}

type directTx struct{}

func (directTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

type stubNames map[uuid.UUID]string

func (s stubNames) DisplayNames(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := map[uuid.UUID]string{}
	for _, id := range ids {
		if n, ok := s[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

// stubRenderer records the labels it was asked to print
type stubRenderer struct {
	title  string
	labels []common.Label
}

func (r *stubRenderer) RenderLabels(title string, labels []common.Label) ([]byte, error) {
	r.title, r.labels = title, labels
	return []byte("%PDF-stub"), nil
}

func (r *stubRenderer) RenderDocument(common.Document) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type yardFixture struct {
	locations memLocations
	pieces    *memStore[yard.Piece]
	equipment *memStore[yard.Equipment]
	movements memMovements
	events    *recordingPublisher
	renderer  *stubRenderer
	projectID uuid.UUID

	locationSvc  *LocationService
	pieceSvc     *PieceService
	equipmentSvc *EquipmentService
	movementSvc  *MovementService
}

func newYardFixture() *yardFixture {
	f := &yardFixture{
		locations: memLocations{newMemStore(func(l *yard.Location) uuid.UUID { return l.ID })},
		pieces:    newMemStore(func(p *yard.Piece) uuid.UUID { return p.ID }),
		equipment: newMemStore(func(e *yard.Equipment) uuid.UUID { return e.ID }),
		movements: memMovements{newMemStore(func(m *yard.Movement) uuid.UUID { return m.ID })},
		events:    &recordingPublisher{},
		renderer:  &stubRenderer{},
		projectID: uuid.New(),
	}
	f.locations.match = func(l *yard.Location, flt shared.Filter) bool {
		zone, ok := flt.Filters["zone"]
		return !ok || zone == l.Zone
	}
	f.pieces.match = func(p *yard.Piece, flt shared.Filter) bool {
		status, ok := flt.Filters["status"]
		return !ok || status == string(p.Status)
	}
	f.locationSvc = NewLocationService(f.locations)
	f.pieceSvc = NewPieceService(f.pieces, f.locations, stubNames{f.projectID: "Harbour Bridge"}, directTx{}, export.NewXLSXExporter(), f.renderer)
	f.equipmentSvc = NewEquipmentService(f.equipment)
	f.movementSvc = NewMovementService(f.movements, f.pieces, f.locations, f.equipment, directTx{}, f.events)
	return f
}

func (f *yardFixture) location(t *testing.T, code, zone string, capacity int) *LocationResponse {
	t.Helper()
	l, err := f.locationSvc.CreateLocation(context.Background(), CreateLocationRequest{Code: code, Zone: zone, Capacity: capacity})
	require.NoError(t, err)
	return l
}

func (f *yardFixture) piece(t *testing.T, mark string, at *uuid.UUID) *PieceResponse {
	t.Helper()
	p, err := f.pieceSvc.CreatePiece(context.Background(), CreatePieceRequest{
		PieceMark:   mark,
		ProjectID:   f.projectID,
		ElementType: "Wall Panel",
		Weight:      decimal.RequireFromString("12.5"),
		LocationID:  at,
	})
	require.NoError(t, err)
	return p
}

func TestLocationService(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()

	a := f.location(t, "n-01", "North", 2)
	assert.Equal(t, "N-01", a.Code)
	assert.Equal(t, 2, a.Free)
	b := f.location(t, "S-01", "South", 1)

	f.piece(t, "WP-1", &b.ID)

	available, err := f.locationSvc.ListAvailableLocations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "N-01", available[0].Code)

	summary, err := f.locationSvc.GetYardSummary(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.Zones, 2)
	assert.Equal(t, 3, summary.Total.Capacity)
	assert.Equal(t, 1, summary.Total.Occupied)

	err = f.locationSvc.DeleteLocation(ctx, b.ID)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))

	one := 1
	_, err = f.locationSvc.UpdateLocation(ctx, b.ID, UpdateLocationRequest{Capacity: &one})
	require.NoError(t, err)
	zero := 0
	_, err = f.locationSvc.UpdateLocation(ctx, b.ID, UpdateLocationRequest{Capacity: &zero})
	assert.Error(t, err)

	maintenance := "MAINTENANCE"
	updated, err := f.locationSvc.UpdateLocation(ctx, a.ID, UpdateLocationRequest{Status: &maintenance})
	require.NoError(t, err)
	assert.Equal(t, "MAINTENANCE", updated.Status)

	require.NoError(t, f.locationSvc.DeleteLocation(ctx, a.ID))
}

func TestPieceService_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	loc := f.location(t, "A-01", "North", 1)

	p := f.piece(t, "wp-1", &loc.ID)
	assert.Equal(t, "WP-1", p.PieceMark)
	assert.Equal(t, "IN_YARD", p.Status)
	assert.Equal(t, "A-01", p.LocationCode)
	assert.Equal(t, "Harbour Bridge", p.ProjectName)
	assert.Equal(t, 1, f.locations.get(t, loc.ID).Occupied)

	_, err := f.pieceSvc.CreatePiece(ctx, CreatePieceRequest{
		PieceMark: "WP-2", ProjectID: f.projectID, ElementType: "WALL", LocationID: &loc.ID,
	})
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)

	curing := f.piece(t, "WP-3", nil)
	assert.Equal(t, "CURING", curing.Status)
	assert.Nil(t, curing.LocationID)

	require.NoError(t, f.pieceSvc.DeletePiece(ctx, p.ID))
	assert.Zero(t, f.locations.get(t, loc.ID).Occupied)
	assert.Equal(t, yard.LocationStatusAvailable, f.locations.get(t, loc.ID).Status)
}

func TestPieceService_ExportInventory(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	loc := f.location(t, "A-01", "North", 3)
	f.piece(t, "WP-1", &loc.ID)
	f.piece(t, "WP-2", nil)

	data, err := f.pieceSvc.ExportInventory(ctx, PieceListFilter{})
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, []string{"Pieces", "Locations"}, wb.GetSheetList())

	rows, err := wb.GetRows("Pieces")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Piece Mark", rows[0][0])
	assert.Equal(t, "WP-1", rows[1][0])
	assert.Equal(t, "Harbour Bridge", rows[1][1])
	assert.Equal(t, "A-01", rows[1][5])

	locRows, err := wb.GetRows("Locations")
	require.NoError(t, err)
	require.Len(t, locRows, 2)
	assert.Equal(t, "1", locRows[1][5])
}

func TestPieceService_PieceTags(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	loc := f.location(t, "A-01", "North", 3)
	first := f.piece(t, "WP-1", &loc.ID)
	second := f.piece(t, "WP-2", nil)

	out, err := f.pieceSvc.PieceTags(ctx, []uuid.UUID{second.ID, first.ID})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(out))
	require.Len(t, f.renderer.labels, 2)
	assert.Equal(t, "WP-2", f.renderer.labels[0].Title, "tags keep the requested order")
	assert.Equal(t, PieceTagPrefix+first.ID.String(), f.renderer.labels[1].Code)
	assert.Contains(t, f.renderer.labels[1].Lines, "Location A-01")
	assert.Contains(t, f.renderer.labels[1].Lines, "12.50 t")

	_, err = f.pieceSvc.PieceTags(ctx, []uuid.UUID{uuid.New()})
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeNotFound))
	_, err = f.pieceSvc.PieceTags(ctx, nil)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidInput))
}

func TestMovementService_Execute(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	from := f.location(t, "A-01", "North", 1)
	to := f.location(t, "B-01", "South", 1)
	p := f.piece(t, "WP-1", &from.ID)

	crane, err := f.equipmentSvc.CreateEquipment(ctx, CreateEquipmentRequest{Name: "Crane 1", Type: "CRANE", CapacityTons: decimal.NewFromInt(20)})
	require.NoError(t, err)

	m, err := f.movementSvc.CreateMovement(ctx, CreateMovementRequest{PieceID: p.ID, ToLocationID: to.ID, EquipmentID: &crane.ID, RequestedBy: "lee"})
	require.NoError(t, err)
	assert.Equal(t, "PLANNED", m.Status)
	require.NotNil(t, m.FromLocationID)
	assert.Equal(t, from.ID, *m.FromLocationID)

	started, err := f.movementSvc.StartMovement(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", started.Status)
	assert.Equal(t, yard.EquipmentStatusInUse, f.equipment.get(t, crane.ID).Status)

	done, err := f.movementSvc.ExecuteMovement(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", done.Status)
	assert.NotNil(t, done.CompletedAt)

	assert.Zero(t, f.locations.get(t, from.ID).Occupied)
	assert.Equal(t, yard.LocationStatusAvailable, f.locations.get(t, from.ID).Status)
	assert.Equal(t, 1, f.locations.get(t, to.ID).Occupied)
	assert.Equal(t, yard.LocationStatusFull, f.locations.get(t, to.ID).Status)
	piece := f.pieces.get(t, p.ID)
	assert.Equal(t, to.ID, *piece.LocationID)
	assert.Equal(t, yard.EquipmentStatusAvailable, f.equipment.get(t, crane.ID).Status)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, yard.EventTypeMovementCompleted, f.events.events[0].EventType())

	_, err = f.movementSvc.ExecuteMovement(ctx, m.ID)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidTransition))
	err = f.movementSvc.DeleteMovement(ctx, m.ID)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))
}

func TestMovementService_ExecuteCuringPiece(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	to := f.location(t, "B-01", "South", 2)
	p := f.piece(t, "WP-1", nil)

	m, err := f.movementSvc.CreateMovement(ctx, CreateMovementRequest{PieceID: p.ID, ToLocationID: to.ID})
	require.NoError(t, err)
	assert.Nil(t, m.FromLocationID)

	_, err = f.movementSvc.ExecuteMovement(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, yard.PieceStatusInYard, f.pieces.get(t, p.ID).Status)
	assert.Equal(t, 1, f.locations.get(t, to.ID).Occupied)
}

func TestMovementService_TargetFull(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	from := f.location(t, "A-01", "North", 1)
	to := f.location(t, "B-01", "South", 1)
	p := f.piece(t, "WP-1", &from.ID)

	m, err := f.movementSvc.CreateMovement(ctx, CreateMovementRequest{PieceID: p.ID, ToLocationID: to.ID})
	require.NoError(t, err)
	f.piece(t, "WP-2", &to.ID)

	_, err = f.movementSvc.ExecuteMovement(ctx, m.ID)
	assert.ErrorIs(t, err, shared.ErrCapacityExceeded)
	assert.Equal(t, 1, f.locations.get(t, from.ID).Occupied, "source untouched")
	assert.Equal(t, from.ID, *f.pieces.get(t, p.ID).LocationID)
	assert.Equal(t, yard.MovementStatusPlanned, f.movements.get(t, m.ID).Status)
}

func TestMovementService_Create(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	loc := f.location(t, "A-01", "North", 1)
	p := f.piece(t, "WP-1", &loc.ID)

	_, err := f.movementSvc.CreateMovement(ctx, CreateMovementRequest{PieceID: p.ID, ToLocationID: loc.ID})
	assert.True(t, shared.IsDomainErrorCode(err, "SAME_LOCATION"))

	_, err = f.movementSvc.CreateMovement(ctx, CreateMovementRequest{PieceID: p.ID, ToLocationID: uuid.New()})
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeNotFound))

	other := f.location(t, "B-01", "South", 1)
	forklift, err := f.equipmentSvc.CreateEquipment(ctx, CreateEquipmentRequest{Name: "Forklift", Type: "FORKLIFT", CapacityTons: decimal.NewFromInt(5)})
	require.NoError(t, err)
	_, err = f.movementSvc.CreateMovement(ctx, CreateMovementRequest{PieceID: p.ID, ToLocationID: other.ID, EquipmentID: &forklift.ID})
	assert.True(t, shared.IsDomainErrorCode(err, "EQUIPMENT_CAPACITY_EXCEEDED"))
}

func TestMovementService_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()
	from := f.location(t, "A-01", "North", 1)
	to := f.location(t, "B-01", "South", 1)
	p := f.piece(t, "WP-1", &from.ID)
	crane, err := f.equipmentSvc.CreateEquipment(ctx, CreateEquipmentRequest{Name: "Crane"})
	require.NoError(t, err)

	m, err := f.movementSvc.CreateMovement(ctx, CreateMovementRequest{PieceID: p.ID, ToLocationID: to.ID, EquipmentID: &crane.ID})
	require.NoError(t, err)
	_, err = f.movementSvc.StartMovement(ctx, m.ID)
	require.NoError(t, err)

	second, err := f.movementSvc.CreateMovement(ctx, CreateMovementRequest{PieceID: p.ID, ToLocationID: to.ID, EquipmentID: &crane.ID})
	require.NoError(t, err)
	_, err = f.movementSvc.StartMovement(ctx, second.ID)
	assert.True(t, shared.IsDomainErrorCode(err, "EQUIPMENT_UNAVAILABLE"))

	cancelled, err := f.movementSvc.CancelMovement(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", cancelled.Status)
	assert.Equal(t, yard.EquipmentStatusAvailable, f.equipment.get(t, crane.ID).Status)
	assert.Equal(t, 1, f.locations.get(t, from.ID).Occupied)

	require.NoError(t, f.movementSvc.DeleteMovement(ctx, m.ID))
}

func TestEquipmentService(t *testing.T) {
	ctx := context.Background()
	f := newYardFixture()

	gantry, err := f.equipmentSvc.CreateEquipment(ctx, CreateEquipmentRequest{Name: "Gantry A", Type: "GANTRY", CapacityTons: decimal.NewFromInt(60)})
	require.NoError(t, err)
	assert.Equal(t, "AVAILABLE", gantry.Status)

	inUse := "IN_USE"
	_, err = f.equipmentSvc.UpdateEquipment(ctx, gantry.ID, UpdateEquipmentRequest{Status: &inUse})
	require.NoError(t, err)
	err = f.equipmentSvc.DeleteEquipment(ctx, gantry.ID)
	assert.True(t, shared.IsDomainErrorCode(err, shared.CodeInvalidState))

	list, total, err := f.equipmentSvc.ListEquipment(ctx, EquipmentListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.EqualValues(t, 1, total)
}
