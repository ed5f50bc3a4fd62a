// Package common holds helpers shared by the application services of every module.
package common

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Default paging values for list endpoints
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListParams are the paging, search and ordering query parameters accepted by every list endpoint
type ListParams struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ApplyDefaults fills in missing paging values
func (p *ListParams) ApplyDefaults() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.OrderDir == "" {
		p.OrderDir = "desc"
	}
}

// Filter converts the params to a repository filter
func (p ListParams) Filter() shared.Filter {
	p.ApplyDefaults()
	return shared.Filter{
		Page:     p.Page,
		PageSize: p.PageSize,
		OrderBy:  p.OrderBy,
		OrderDir: p.OrderDir,
		Search:   p.Search,
		Filters:  make(map[string]interface{}),
	}
}

// Fail logs an unexpected failure and returns it as a "Failed to <verb>" internal error.
// Domain errors meant for the caller (not found, invalid state, ...) are returned unchanged.
func Fail(ctx context.Context, verb string, err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) && de.Code != shared.CodeInternal {
		return err
	}
	logger.L(ctx).Error("Failed to "+verb, zap.Error(err))
	return shared.Internal(verb, err)
}

// AIFail logs a failed call to the AI service and returns a "Failed to <verb>" error
func AIFail(ctx context.Context, verb string, err error) error {
	logger.L(ctx).Error("AI request failed", zap.String("operation", verb), zap.Error(err))
	return shared.AIFailure(verb, err)
}

// Publish sends the aggregate's pending events and clears them.
// Publishing failures are logged and never fail the calling operation.
func Publish(ctx context.Context, publisher shared.EventPublisher, agg interface {
	GetDomainEvents() []shared.DomainEvent
	ClearDomainEvents()
}) {
	events := agg.GetDomainEvents()
	agg.ClearDomainEvents()
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.L(ctx).Warn("Failed to publish domain events", zap.Int("count", len(events)), zap.Error(err))
	}
}

// NameResolver resolves the IDs of another module's records to display names
type NameResolver interface {
	DisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// ResolveNames looks up display names for ids, skipping nil IDs.
// Lookup failures are logged and yield an empty map: names are decoration only.
func ResolveNames(ctx context.Context, resolver NameResolver, ids ...uuid.UUID) map[uuid.UUID]string {
	if resolver == nil {
		return map[uuid.UUID]string{}
	}
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if len(unique) == 0 {
		return map[uuid.UUID]string{}
	}
	names, err := resolver.DisplayNames(ctx, unique)
	if err != nil {
		logger.L(ctx).Warn("Failed to resolve display names", zap.Int("count", len(unique)), zap.Error(err))
		return map[uuid.UUID]string{}
	}
	return names
}
