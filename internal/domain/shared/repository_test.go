package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFilter_With(t *testing.T) {
	id := uuid.New()
	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	var nilID *uuid.UUID
	var nilTime *time.Time

	base := DefaultFilter()
	f := base.
		With("status", "OPEN").
		With("empty", "").
		With("nothing", nil).
		With("project_id", &id).
		With("unset_id", nilID).
		With("from", &day).
		With("unset_from", nilTime).
		With("count", 3)

	assert.Equal(t, map[string]interface{}{
		"status":     "OPEN",
		"project_id": id,
		"from":       day,
		"count":      3,
	}, f.Filters)
	assert.Empty(t, base.Filters, "With must not modify the receiver's map")
}
