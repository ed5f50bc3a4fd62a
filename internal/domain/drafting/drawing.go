package drafting

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/domain/shared"
)

// Discipline is the engineering discipline a drawing belongs to
type Discipline string

const (
	DisciplineArchitectural Discipline = "ARCHITECTURAL"
	DisciplineStructural    Discipline = "STRUCTURAL"
	DisciplineShop          Discipline = "SHOP"
	DisciplineErection      Discipline = "ERECTION"
)

// IsValid checks if the discipline is valid
func (d Discipline) IsValid() bool {
	switch d {
	case DisciplineArchitectural, DisciplineStructural, DisciplineShop, DisciplineErection:
		return true
	}
	return false
}

// DrawingStatus represents where a drawing is in the review workflow
type DrawingStatus string

const (
	DrawingStatusDraft    DrawingStatus = "DRAFT"
	DrawingStatusInReview DrawingStatus = "IN_REVIEW"
	DrawingStatusApproved DrawingStatus = "APPROVED"
	DrawingStatusRejected DrawingStatus = "REJECTED"
	DrawingStatusReleased DrawingStatus = "RELEASED"
)

// Moving back to DRAFT from REJECTED, APPROVED or RELEASED is a revision
var drawingTransitions = map[DrawingStatus][]DrawingStatus{
	DrawingStatusDraft:    {DrawingStatusInReview},
	DrawingStatusInReview: {DrawingStatusApproved, DrawingStatusRejected},
	DrawingStatusRejected: {DrawingStatusDraft},
	DrawingStatusApproved: {DrawingStatusReleased, DrawingStatusDraft},
	DrawingStatusReleased: {DrawingStatusDraft},
}

// IsValid checks if the status is valid
func (s DrawingStatus) IsValid() bool {
	_, ok := drawingTransitions[s]
	return ok
}

// CanTransitionTo reports whether the drawing may move to next
func (s DrawingStatus) CanTransitionTo(next DrawingStatus) bool {
	for _, allowed := range drawingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NumberPrefix prefixes generated drawing numbers
const NumberPrefix = "DWG"

// Drawing is an engineering or shop drawing under revision control
type Drawing struct {
	shared.BaseAggregateRoot
	ProjectID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_drawing_project_number"`
	DrawingNumber  string        `gorm:"type:varchar(50);not null;uniqueIndex:idx_drawing_project_number"`
	Title          string        `gorm:"type:varchar(200);not null"`
	Discipline     Discipline    `gorm:"type:varchar(20);not null;default:'SHOP';index"`
	Revision       int           `gorm:"not null;default:0"`
	Status         DrawingStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	AssignedTo     string        `gorm:"type:varchar(100)"`
	ReviewedBy     string        `gorm:"type:varchar(100)"`
	ReviewComments string        `gorm:"type:text"`
	ApprovedBy     string        `gorm:"type:varchar(100)"`
	ApprovedAt     *time.Time
	ReleasedAt     *time.Time
	Notes          string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Drawing) TableName() string {
	return "drawings"
}

// DrawingWorkflowEntry records one workflow transition of a drawing
type DrawingWorkflowEntry struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	DrawingID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	FromStatus DrawingStatus `gorm:"type:varchar(20);not null"`
	ToStatus   DrawingStatus `gorm:"type:varchar(20);not null"`
	Revision   int           `gorm:"not null"`
	Actor      string        `gorm:"type:varchar(100);not null"`
	Comment    string        `gorm:"type:text"`
	At         time.Time     `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (DrawingWorkflowEntry) TableName() string {
	return "drawing_workflow_entries"
}

// NewDrawing creates a draft drawing at revision 0. An empty discipline means SHOP.
func NewDrawing(projectID uuid.UUID, drawingNumber, title string, discipline Discipline) (*Drawing, error) {
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROJECT", "Drawing requires a project")
	}
	if discipline == "" {
		discipline = DisciplineShop
	}
	if !discipline.IsValid() {
		return nil, shared.NewDomainError("INVALID_DISCIPLINE", "Invalid drawing discipline")
	}
	drawingNumber = strings.TrimSpace(drawingNumber)
	if drawingNumber == "" {
		drawingNumber = shared.GenerateNumber(NumberPrefix)
	}

	d := &Drawing{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProjectID:         projectID,
		DrawingNumber:     drawingNumber,
		Discipline:        discipline,
		Status:            DrawingStatusDraft,
	}
	if err := d.SetTitle(title); err != nil {
		return nil, err
	}
	return d, nil
}

// SetTitle changes the drawing title
func (d *Drawing) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Drawing title cannot be empty")
	}
	d.Title = title
	return nil
}

// SetDiscipline changes the discipline of a draft drawing
func (d *Drawing) SetDiscipline(discipline Discipline) error {
	if !discipline.IsValid() {
		return shared.NewDomainError("INVALID_DISCIPLINE", "Invalid drawing discipline")
	}
	d.Discipline = discipline
	return nil
}

// IsEditable reports whether the drawing content may change
func (d *Drawing) IsEditable() bool {
	return d.Status == DrawingStatusDraft
}

// RevisionLabel returns the revision as shown in title blocks, e.g. "R2"
func (d *Drawing) RevisionLabel() string {
	return "R" + strconv.Itoa(d.Revision)
}

func (d *Drawing) transition(next DrawingStatus, actor, comment string) (*DrawingWorkflowEntry, error) {
	if !d.Status.CanTransitionTo(next) {
		return nil, shared.InvalidTransition("drawing", string(d.Status), string(next))
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = "system"
	}
	entry := &DrawingWorkflowEntry{
		ID:         uuid.New(),
		DrawingID:  d.ID,
		FromStatus: d.Status,
		ToStatus:   next,
		Actor:      actor,
		Comment:    strings.TrimSpace(comment),
		At:         time.Now(),
	}
	d.Status = next
	d.IncrementVersion()
	entry.Revision = d.Revision
	return entry, nil
}

// SubmitForReview sends a draft drawing to review
func (d *Drawing) SubmitForReview(actor string) (*DrawingWorkflowEntry, error) {
	entry, err := d.transition(DrawingStatusInReview, actor, "")
	if err != nil {
		return nil, err
	}
	d.ReviewedBy = ""
	d.ReviewComments = ""
	return entry, nil
}

// Approve approves a drawing under review
func (d *Drawing) Approve(reviewer, comment string) (*DrawingWorkflowEntry, error) {
	entry, err := d.transition(DrawingStatusApproved, reviewer, comment)
	if err != nil {
		return nil, err
	}
	now := entry.At
	d.ReviewedBy = entry.Actor
	d.ReviewComments = entry.Comment
	d.ApprovedBy = entry.Actor
	d.ApprovedAt = &now
	d.AddDomainEvent(NewDrawingEvent(EventTypeDrawingApproved, d, entry.Actor))
	return entry, nil
}

// Reject sends a drawing under review back with the reviewer's comments
func (d *Drawing) Reject(reviewer, comment string) (*DrawingWorkflowEntry, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, shared.NewDomainError("COMMENT_REQUIRED", "A comment is required to reject a drawing")
	}
	entry, err := d.transition(DrawingStatusRejected, reviewer, comment)
	if err != nil {
		return nil, err
	}
	d.ReviewedBy = entry.Actor
	d.ReviewComments = entry.Comment
	return entry, nil
}

// Revise opens a new revision of a rejected, approved or released drawing
func (d *Drawing) Revise(actor string) (*DrawingWorkflowEntry, error) {
	if d.Status == DrawingStatusDraft {
		return nil, shared.InvalidTransition("drawing", string(d.Status), string(DrawingStatusDraft))
	}
	d.Revision++
	entry, err := d.transition(DrawingStatusDraft, actor, "")
	if err != nil {
		d.Revision--
		return nil, err
	}
	d.ApprovedBy = ""
	d.ApprovedAt = nil
	d.ReleasedAt = nil
	return entry, nil
}

// Release issues an approved drawing for production
func (d *Drawing) Release(actor string) (*DrawingWorkflowEntry, error) {
	entry, err := d.transition(DrawingStatusReleased, actor, "")
	if err != nil {
		return nil, err
	}
	now := entry.At
	d.ReleasedAt = &now
	d.AddDomainEvent(NewDrawingEvent(EventTypeDrawingReleased, d, entry.Actor))
	return entry, nil
}
