package yard

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/domain/yard"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PieceTagPrefix prefixes the QR payload printed on piece tags
const PieceTagPrefix = "PIECE:"

// PieceService tracks precast pieces in the yard and prints their paperwork
type PieceService struct {
	pieces    yard.PieceRepository
	locations yard.LocationRepository
	projects  common.NameResolver
	tx        shared.TransactionManager
	exporter  common.TableExporter
	renderer  common.DocumentRenderer
}

// NewPieceService creates a new PieceService
func NewPieceService(
	pieces yard.PieceRepository,
	locations yard.LocationRepository,
	projects common.NameResolver,
	tx shared.TransactionManager,
	exporter common.TableExporter,
	renderer common.DocumentRenderer,
) *PieceService {
	return &PieceService{
		pieces:    pieces,
		locations: locations,
		projects:  projects,
		tx:        tx,
		exporter:  exporter,
		renderer:  renderer,
	}
}

func (f PieceListFilter) repoFilter() shared.Filter {
	return f.Filter().
		With("project_id", f.ProjectID).
		With("location_id", f.LocationID).
		With("status", f.Status).
		With("element_type", strings.ToUpper(f.ElementType))
}

// ListPieces returns a page of pieces matching the filter
func (s *PieceService) ListPieces(ctx context.Context, filter PieceListFilter) ([]PieceResponse, int64, error) {
	f := filter.repoFilter()
	list, err := s.pieces.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch pieces", err)
	}
	total, err := s.pieces.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch pieces", err)
	}
	return s.respond(ctx, list), total, nil
}

// GetPiece returns a piece by ID
func (s *PieceService) GetPiece(ctx context.Context, id uuid.UUID) (*PieceResponse, error) {
	p, err := s.pieces.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch piece", err)
	}
	return &s.respond(ctx, []yard.Piece{*p})[0], nil
}

// CreatePiece registers a piece. When a location is given the piece is placed there
// and the location's occupancy is taken in the same transaction.
func (s *PieceService) CreatePiece(ctx context.Context, req CreatePieceRequest) (*PieceResponse, error) {
	p, err := yard.NewPiece(req.PieceMark, req.ProjectID, req.ElementType, req.Weight)
	if err != nil {
		return nil, err
	}
	p.PourDate = req.PourDate
	p.Notes = req.Notes

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if req.LocationID != nil {
			loc, err := s.locations.FindForUpdate(ctx, *req.LocationID)
			if err != nil {
				return err
			}
			if err := loc.Occupy(); err != nil {
				return err
			}
			if err := p.PlaceAt(loc.ID); err != nil {
				return err
			}
			if err := s.locations.Save(ctx, loc); err != nil {
				return err
			}
		}
		return s.pieces.Save(ctx, p)
	})
	if err != nil {
		if shared.IsDomainErrorCode(err, shared.CodeAlreadyExists) {
			return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Piece mark "+p.PieceMark+" is already in use")
		}
		return nil, common.Fail(ctx, "create piece", err)
	}
	return &s.respond(ctx, []yard.Piece{*p})[0], nil
}

// UpdatePiece applies a partial update to a piece
func (s *PieceService) UpdatePiece(ctx context.Context, id uuid.UUID, req UpdatePieceRequest) (*PieceResponse, error) {
	p, err := s.pieces.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "update piece", err)
	}
	if req.ElementType != nil && *req.ElementType != "" {
		p.ElementType = strings.ToUpper(strings.TrimSpace(*req.ElementType))
	}
	if req.Weight != nil {
		if err := p.SetWeight(*req.Weight); err != nil {
			return nil, err
		}
	}
	if req.PourDate != nil {
		p.PourDate = req.PourDate
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.Status != nil {
		if err := p.ChangeStatus(yard.PieceStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	p.IncrementVersion()
	if err := s.pieces.Save(ctx, p); err != nil {
		return nil, common.Fail(ctx, "update piece", err)
	}
	return &s.respond(ctx, []yard.Piece{*p})[0], nil
}

// DeletePiece removes a piece and frees its location
func (s *PieceService) DeletePiece(ctx context.Context, id uuid.UUID) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.pieces.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p.LocationID != nil {
			loc, err := s.locations.FindForUpdate(ctx, *p.LocationID)
			if err != nil && !shared.IsDomainErrorCode(err, shared.CodeNotFound) {
				return err
			}
			if loc != nil {
				loc.Release()
				if err := s.locations.Save(ctx, loc); err != nil {
					return err
				}
			}
		}
		return s.pieces.Delete(ctx, id)
	})
	if err != nil {
		return common.Fail(ctx, "delete piece", err)
	}
	return nil
}

// ExportInventory writes the pieces matching filter and every location to a workbook
func (s *PieceService) ExportInventory(ctx context.Context, filter PieceListFilter) ([]byte, error) {
	f := filter.repoFilter()
	f.Page, f.PageSize = 0, 0
	pieces, err := s.pieces.FindAll(ctx, f)
	if err != nil {
		return nil, common.Fail(ctx, "export inventory", err)
	}
	locations, err := s.locations.FindAll(ctx, shared.Filter{OrderBy: "code", OrderDir: "asc"})
	if err != nil {
		return nil, common.Fail(ctx, "export inventory", err)
	}

	pieceTable := common.Table{
		Title:   "Pieces",
		Headers: []string{"Piece Mark", "Project", "Element Type", "Weight (t)", "Pour Date", "Location", "Status"},
	}
	for _, p := range s.respond(ctx, pieces) {
		pour := ""
		if p.PourDate != nil {
			pour = p.PourDate.Format("2006-01-02")
		}
		weight, _ := p.Weight.Float64()
		pieceTable.Rows = append(pieceTable.Rows, []any{
			p.PieceMark, p.ProjectName, p.ElementType, weight, pour, p.LocationCode, p.Status,
		})
	}

	locationTable := common.Table{
		Title:   "Locations",
		Headers: []string{"Code", "Zone", "Row", "Bay", "Capacity", "Occupied", "Free", "Status"},
	}
	for i := range locations {
		l := &locations[i]
		locationTable.Rows = append(locationTable.Rows, []any{
			l.Code, l.Zone, l.Row, l.Bay, l.Capacity, l.Occupied, l.Free(), string(l.Status),
		})
	}

	data, err := s.exporter.ExportXLSX(pieceTable, locationTable)
	if err != nil {
		return nil, common.Fail(ctx, "export inventory", err)
	}
	logger.L(ctx).Info("Yard inventory exported", zap.Int("pieces", len(pieces)), zap.Int("locations", len(locations)))
	return data, nil
}

// PieceTags renders a sheet of QR tags for the given pieces, in the order requested
func (s *PieceService) PieceTags(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	if len(ids) == 0 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "At least one piece is required")
	}
	pieces, err := s.pieces.FindByIDs(ctx, ids)
	if err != nil {
		return nil, common.Fail(ctx, "print piece tags", err)
	}
	byID := make(map[uuid.UUID]yard.Piece, len(pieces))
	for _, p := range pieces {
		byID[p.ID] = p
	}
	ordered := make([]yard.Piece, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, shared.NewDomainError(shared.CodeNotFound, "Piece "+id.String()+" not found")
		}
		ordered = append(ordered, p)
	}

	labels := make([]common.Label, len(ordered))
	for i, p := range s.respond(ctx, ordered) {
		lines := []string{p.ElementType, p.Weight.StringFixed(2) + " t"}
		if p.ProjectName != "" {
			lines = append(lines, p.ProjectName)
		}
		if p.LocationCode != "" {
			lines = append(lines, "Location "+p.LocationCode)
		}
		if p.PourDate != nil {
			lines = append(lines, "Poured "+p.PourDate.Format("2006-01-02"))
		}
		labels[i] = common.Label{
			Code:  PieceTagPrefix + p.ID.String(),
			Title: p.PieceMark,
			Lines: lines,
		}
	}

	data, err := s.renderer.RenderLabels(fmt.Sprintf("Piece tags (%d)", len(labels)), labels)
	if err != nil {
		return nil, common.Fail(ctx, "print piece tags", err)
	}
	return data, nil
}

// respond resolves project names and location codes for a batch of pieces
func (s *PieceService) respond(ctx context.Context, pieces []yard.Piece) []PieceResponse {
	projectIDs := make([]uuid.UUID, 0, len(pieces))
	locationIDs := make([]uuid.UUID, 0, len(pieces))
	for i := range pieces {
		projectIDs = append(projectIDs, pieces[i].ProjectID)
		if pieces[i].LocationID != nil {
			locationIDs = append(locationIDs, *pieces[i].LocationID)
		}
	}
	projectNames := common.ResolveNames(ctx, s.projects, projectIDs...)
	codes := map[uuid.UUID]string{}
	if len(locationIDs) > 0 {
		locations, err := s.locations.FindByIDs(ctx, locationIDs)
		if err != nil {
			logger.L(ctx).Warn("Failed to resolve location codes", zap.Error(err))
		}
		for _, l := range locations {
			codes[l.ID] = l.Code
		}
	}

	responses := make([]PieceResponse, len(pieces))
	for i := range pieces {
		var code string
		if pieces[i].LocationID != nil {
			code = codes[*pieces[i].LocationID]
		}
		responses[i] = ToPieceResponse(&pieces[i], projectNames[pieces[i].ProjectID], code)
	}
	return responses
}
