package projects

import (
	"testing"
	"time"

	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject("  Harbor Parking Structure ")
	require.NoError(t, err)

	assert.Equal(t, "Harbor Parking Structure", p.Name)
	assert.Equal(t, ProjectStatusPlanning, p.Status)
	assert.Zero(t, p.Progress)
	assert.True(t, p.Budget.IsZero())
	assert.Regexp(t, `^PRJ-\d{8}-`, p.ProjectNumber)

	_, err = NewProject("")
	assert.Error(t, err)
}

func TestProject_UpdateStatus(t *testing.T) {
	tests := []struct {
		name  string
		path  []ProjectStatus
		valid bool
	}{
		{"start", []ProjectStatus{ProjectStatusActive}, true},
		{"hold and resume", []ProjectStatus{ProjectStatusActive, ProjectStatusOnHold, ProjectStatusActive}, true},
		{"cancel from planning", []ProjectStatus{ProjectStatusCancelled}, true},
		{"complete from planning", []ProjectStatus{ProjectStatusCompleted}, false},
		{"reactivate completed", []ProjectStatus{ProjectStatusActive, ProjectStatusCompleted, ProjectStatusActive}, false},
		{"reactivate cancelled", []ProjectStatus{ProjectStatusCancelled, ProjectStatusPlanning}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProject("Depot")
			require.NoError(t, err)
			var last error
			for _, s := range tt.path {
				if last = p.UpdateStatus(s); last != nil {
					break
				}
			}
			if tt.valid {
				assert.NoError(t, last)
			} else {
				assert.ErrorIs(t, last, shared.NewDomainError(shared.CodeInvalidTransition, ""))
			}
		})
	}
}

func TestProject_CompleteSetsProgress(t *testing.T) {
	p, err := NewProject("Depot")
	require.NoError(t, err)
	require.NoError(t, p.UpdateStatus(ProjectStatusActive))
	require.NoError(t, p.UpdateProgress(40))
	require.NoError(t, p.UpdateStatus(ProjectStatusCompleted))

	assert.Equal(t, 100, p.Progress)
	assert.Len(t, p.GetDomainEvents(), 2)
	assert.Error(t, p.UpdateProgress(50), "closed projects keep their progress")
}

func TestProject_UpdateProgress(t *testing.T) {
	p, err := NewProject("Depot")
	require.NoError(t, err)

	assert.NoError(t, p.UpdateProgress(0))
	assert.NoError(t, p.UpdateProgress(100))
	assert.Error(t, p.UpdateProgress(-1))
	assert.Error(t, p.UpdateProgress(101))
	assert.Equal(t, 100, p.Progress)
}

func TestProject_ScheduleAndBudget(t *testing.T) {
	p, err := NewProject("Depot")
	require.NoError(t, err)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)
	require.NoError(t, p.SetSchedule(&start, &end))
	assert.Error(t, p.SetSchedule(&end, &start))

	assert.Error(t, p.SetBudget(decimal.NewFromInt(-5)))
	require.NoError(t, p.SetBudget(decimal.NewFromInt(250000)))
	assert.Equal(t, "250000", p.Budget.String())
}
