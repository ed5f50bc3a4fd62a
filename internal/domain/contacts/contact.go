package contacts

import (
	"strings"

	"github.com/precast-erp/backend/internal/domain/shared"
	"gorm.io/datatypes"
)

// ContactType classifies who the contact is to the business
type ContactType string

const (
	ContactTypeCustomer      ContactType = "CUSTOMER"
	ContactTypeVendor        ContactType = "VENDOR"
	ContactTypeSubcontractor ContactType = "SUBCONTRACTOR"
	ContactTypeArchitect     ContactType = "ARCHITECT"
	ContactTypeEngineer      ContactType = "ENGINEER"
	ContactTypeOther         ContactType = "OTHER"
)

// IsValid checks if the contact type is valid
func (t ContactType) IsValid() bool {
	switch t {
	case ContactTypeCustomer, ContactTypeVendor, ContactTypeSubcontractor,
		ContactTypeArchitect, ContactTypeEngineer, ContactTypeOther:
		return true
	}
	return false
}

// ContactStatus represents the status of a contact
type ContactStatus string

const (
	ContactStatusActive   ContactStatus = "ACTIVE"
	ContactStatusInactive ContactStatus = "INACTIVE"
)

// IsValid checks if the status is valid
func (s ContactStatus) IsValid() bool {
	return s == ContactStatusActive || s == ContactStatusInactive
}

// DefaultCountry is applied when no country is given
const DefaultCountry = "USA"

// Contact is a customer, vendor or other party the business deals with
type Contact struct {
	shared.BaseAggregateRoot
	Type         ContactType   `gorm:"type:varchar(20);not null;default:'CUSTOMER';index"`
	Status       ContactStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	FirstName    string        `gorm:"type:varchar(100)"`
	LastName     string        `gorm:"type:varchar(100)"`
	CompanyName  string        `gorm:"type:varchar(200);index"`
	Email        string        `gorm:"type:varchar(200)"`
	Phone        string        `gorm:"type:varchar(50)"`
	Address      string        `gorm:"type:text"`
	City         string        `gorm:"type:varchar(100)"`
	State        string        `gorm:"type:varchar(100)"`
	PostalCode   string        `gorm:"type:varchar(20)"`
	Country      string        `gorm:"type:varchar(100);default:'USA'"`
	Tags         datatypes.JSONSlice[string]
	CustomFields datatypes.JSONMap
	Notes        string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Contact) TableName() string {
	return "contacts"
}

// NewContact creates a contact. Either a company name or a person's name is required.
// An empty contact type defaults to CUSTOMER.
func NewContact(contactType ContactType, firstName, lastName, companyName string) (*Contact, error) {
	if contactType == "" {
		contactType = ContactTypeCustomer
	}
	if !contactType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTACT_TYPE", "Invalid contact type: "+string(contactType))
	}
	c := &Contact{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              contactType,
		Status:            ContactStatusActive,
		FirstName:         strings.TrimSpace(firstName),
		LastName:          strings.TrimSpace(lastName),
		CompanyName:       strings.TrimSpace(companyName),
		Country:           DefaultCountry,
		Tags:              datatypes.JSONSlice[string]{},
		CustomFields:      datatypes.JSONMap{},
	}
	if err := c.validateName(); err != nil {
		return nil, err
	}
	c.AddDomainEvent(NewContactCreatedEvent(c))
	return c, nil
}

func (c *Contact) validateName() error {
	if c.CompanyName == "" && c.FirstName == "" && c.LastName == "" {
		return shared.NewDomainError("INVALID_NAME", "Contact requires a company name or a first/last name")
	}
	return nil
}

// Rename changes the person and company names
func (c *Contact) Rename(firstName, lastName, companyName string) error {
	first, last, company := c.FirstName, c.LastName, c.CompanyName
	c.FirstName = strings.TrimSpace(firstName)
	c.LastName = strings.TrimSpace(lastName)
	c.CompanyName = strings.TrimSpace(companyName)
	if err := c.validateName(); err != nil {
		c.FirstName, c.LastName, c.CompanyName = first, last, company
		return err
	}
	c.IncrementVersion()
	return nil
}

// ChangeType reclassifies the contact
func (c *Contact) ChangeType(contactType ContactType) error {
	if !contactType.IsValid() {
		return shared.NewDomainError("INVALID_CONTACT_TYPE", "Invalid contact type: "+string(contactType))
	}
	c.Type = contactType
	c.IncrementVersion()
	return nil
}

// DisplayName returns the company name, or the person's full name
func (c *Contact) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// AddTag adds a tag once; blank tags are ignored
func (c *Contact) AddTag(tag string) *Contact {
	tag = strings.TrimSpace(tag)
	if tag == "" || c.HasTag(tag) {
		return c
	}
	c.Tags = append(c.Tags, tag)
	c.IncrementVersion()
	return c
}

// RemoveTag removes a tag if present
func (c *Contact) RemoveTag(tag string) *Contact {
	tag = strings.TrimSpace(tag)
	kept := make(datatypes.JSONSlice[string], 0, len(c.Tags))
	for _, t := range c.Tags {
		if !strings.EqualFold(t, tag) {
			kept = append(kept, t)
		}
	}
	if len(kept) != len(c.Tags) {
		c.Tags = kept
		c.IncrementVersion()
	}
	return c
}

// HasTag reports whether the contact carries tag (case-insensitive)
func (c *Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// UpdateStatus sets the contact status
func (c *Contact) UpdateStatus(status ContactStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invalid contact status: "+string(status))
	}
	c.Status = status
	c.IncrementVersion()
	return nil
}

// IsVendor reports whether purchase orders may be placed with this contact
func (c *Contact) IsVendor() bool {
	return c.Type == ContactTypeVendor || c.Type == ContactTypeSubcontractor
}
