package drafting

import (
	"context"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/drafting"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// WorkflowService moves drawings through review and release.
// Each step saves the drawing and appends its history entry in one transaction.
type WorkflowService struct {
	repo   drafting.DrawingRepository
	tx     shared.TransactionManager
	events shared.EventPublisher
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(repo drafting.DrawingRepository, tx shared.TransactionManager, events shared.EventPublisher) *WorkflowService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &WorkflowService{repo: repo, tx: tx, events: events}
}

type step func(d *drafting.Drawing) (*drafting.DrawingWorkflowEntry, error)

// SubmitForReview sends a draft drawing to review
func (s *WorkflowService) SubmitForReview(ctx context.Context, id uuid.UUID, actor string) (*DrawingResponse, error) {
	return s.run(ctx, id, "submit drawing", func(d *drafting.Drawing) (*drafting.DrawingWorkflowEntry, error) {
		return d.SubmitForReview(actor)
	})
}

// Approve approves a drawing under review
func (s *WorkflowService) Approve(ctx context.Context, id uuid.UUID, reviewer, comment string) (*DrawingResponse, error) {
	return s.run(ctx, id, "approve drawing", func(d *drafting.Drawing) (*drafting.DrawingWorkflowEntry, error) {
		return d.Approve(reviewer, comment)
	})
}

// Reject returns a drawing under review to the drafter; a comment is required
func (s *WorkflowService) Reject(ctx context.Context, id uuid.UUID, reviewer, comment string) (*DrawingResponse, error) {
	return s.run(ctx, id, "reject drawing", func(d *drafting.Drawing) (*drafting.DrawingWorkflowEntry, error) {
		return d.Reject(reviewer, comment)
	})
}

// Revise opens the next revision of a drawing
func (s *WorkflowService) Revise(ctx context.Context, id uuid.UUID, actor string) (*DrawingResponse, error) {
	return s.run(ctx, id, "revise drawing", func(d *drafting.Drawing) (*drafting.DrawingWorkflowEntry, error) {
		return d.Revise(actor)
	})
}

// Release issues an approved drawing for production
func (s *WorkflowService) Release(ctx context.Context, id uuid.UUID, actor string) (*DrawingResponse, error) {
	return s.run(ctx, id, "release drawing", func(d *drafting.Drawing) (*drafting.DrawingWorkflowEntry, error) {
		return d.Release(actor)
	})
}

// GetHistory returns the workflow history of a drawing, oldest first
func (s *WorkflowService) GetHistory(ctx context.Context, id uuid.UUID) ([]WorkflowEntryResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, common.Fail(ctx, "fetch drawing history", err)
	}
	entries, err := s.repo.FindHistory(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch drawing history", err)
	}
	return ToWorkflowEntryResponses(entries), nil
}

func (s *WorkflowService) run(ctx context.Context, id uuid.UUID, verb string, fn step) (*DrawingResponse, error) {
	var drawing *drafting.Drawing
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		d, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		entry, err := fn(d)
		if err != nil {
			return err
		}
		if err := s.repo.Save(ctx, d); err != nil {
			return err
		}
		if err := s.repo.AppendHistory(ctx, entry); err != nil {
			return err
		}
		drawing = d
		return nil
	})
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}

	common.Publish(ctx, s.events, drawing)
	logger.L(ctx).Info("Drawing workflow step",
		zap.String("drawing_id", drawing.ID.String()),
		zap.String("status", string(drawing.Status)),
		zap.Int("revision", drawing.Revision))
	resp := ToDrawingResponse(drawing, "")
	return &resp, nil
}
