package contacts

import (
	"time"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/contacts"
)

// CreateContactRequest represents a request to create a contact
type CreateContactRequest struct {
	Type         string         `json:"type" binding:"omitempty,oneof=CUSTOMER VENDOR SUBCONTRACTOR ARCHITECT ENGINEER OTHER"`
	FirstName    string         `json:"first_name" binding:"max=100"`
	LastName     string         `json:"last_name" binding:"max=100"`
	CompanyName  string         `json:"company_name" binding:"max=200"`
	Email        string         `json:"email" binding:"omitempty,email,max=200"`
	Phone        string         `json:"phone" binding:"max=50"`
	Address      string         `json:"address" binding:"max=500"`
	City         string         `json:"city" binding:"max=100"`
	State        string         `json:"state" binding:"max=100"`
	PostalCode   string         `json:"postal_code" binding:"max=20"`
	Country      string         `json:"country" binding:"max=100"`
	Tags         []string       `json:"tags"`
	CustomFields map[string]any `json:"custom_fields"`
	Notes        string         `json:"notes"`
}

// UpdateContactRequest represents a partial update of a contact
type UpdateContactRequest struct {
	Type         *string         `json:"type" binding:"omitempty,oneof=CUSTOMER VENDOR SUBCONTRACTOR ARCHITECT ENGINEER OTHER"`
	FirstName    *string         `json:"first_name" binding:"omitempty,max=100"`
	LastName     *string         `json:"last_name" binding:"omitempty,max=100"`
	CompanyName  *string         `json:"company_name" binding:"omitempty,max=200"`
	Email        *string         `json:"email" binding:"omitempty,email,max=200"`
	Phone        *string         `json:"phone" binding:"omitempty,max=50"`
	Address      *string         `json:"address" binding:"omitempty,max=500"`
	City         *string         `json:"city" binding:"omitempty,max=100"`
	State        *string         `json:"state" binding:"omitempty,max=100"`
	PostalCode   *string         `json:"postal_code" binding:"omitempty,max=20"`
	Country      *string         `json:"country" binding:"omitempty,max=100"`
	Tags         *[]string       `json:"tags"`
	CustomFields *map[string]any `json:"custom_fields"`
	Notes        *string         `json:"notes"`
}

// AddTagRequest adds a tag to a contact
type AddTagRequest struct {
	Tag string `json:"tag" binding:"required,max=50"`
}

// UpdateStatusRequest changes a contact's status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

// ContactListFilter represents the query parameters of the contact list
type ContactListFilter struct {
	common.ListParams
	Type   string `form:"type" binding:"omitempty,oneof=CUSTOMER VENDOR SUBCONTRACTOR ARCHITECT ENGINEER OTHER"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	Tag    string `form:"tag"`
}

// ContactResponse represents a contact in API responses
type ContactResponse struct {
	ID           uuid.UUID      `json:"id"`
	Type         string         `json:"type"`
	Status       string         `json:"status"`
	DisplayName  string         `json:"display_name"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	CompanyName  string         `json:"company_name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	State        string         `json:"state"`
	PostalCode   string         `json:"postal_code"`
	Country      string         `json:"country"`
	Tags         []string       `json:"tags"`
	CustomFields map[string]any `json:"custom_fields"`
	Notes        string         `json:"notes"`
	Version      int            `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ToContactResponse converts a domain contact to a response
func ToContactResponse(c *contacts.Contact) ContactResponse {
	tags := []string(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	fields := map[string]any(c.CustomFields)
	if fields == nil {
		fields = map[string]any{}
	}
	return ContactResponse{
		ID:           c.ID,
		Type:         string(c.Type),
		Status:       string(c.Status),
		DisplayName:  c.DisplayName(),
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		CompanyName:  c.CompanyName,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		Tags:         tags,
		CustomFields: fields,
		Notes:        c.Notes,
		Version:      c.Version,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToContactResponses converts a slice of contacts
func ToContactResponses(list []contacts.Contact) []ContactResponse {
	responses := make([]ContactResponse, len(list))
	for i := range list {
		responses[i] = ToContactResponse(&list[i])
	}
	return responses
}
