package contacts

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/precast-erp/backend/internal/application/common"
	"github.com/precast-erp/backend/internal/domain/contacts"
	"github.com/precast-erp/backend/internal/domain/shared"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ContactService handles contact business operations
type ContactService struct {
	repo   contacts.ContactRepository
	events shared.EventPublisher
}

// NewContactService creates a new ContactService
func NewContactService(repo contacts.ContactRepository, events shared.EventPublisher) *ContactService {
	if events == nil {
		events = shared.NoopEventPublisher{}
	}
	return &ContactService{repo: repo, events: events}
}

// ListContacts returns a page of contacts matching the filter
func (s *ContactService) ListContacts(ctx context.Context, filter ContactListFilter) ([]ContactResponse, int64, error) {
	f := filter.Filter().
		With("type", filter.Type).
		With("status", filter.Status).
		With(contacts.FilterTag, strings.TrimSpace(filter.Tag))

	list, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch contacts", err)
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, 0, common.Fail(ctx, "fetch contacts", err)
	}
	return ToContactResponses(list), total, nil
}

// GetContact returns a contact by ID
func (s *ContactService) GetContact(ctx context.Context, id uuid.UUID) (*ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "fetch contact", err)
	}
	resp := ToContactResponse(c)
	return &resp, nil
}

// CreateContact creates a contact, applying defaults to every field not supplied
func (s *ContactService) CreateContact(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	c, err := contacts.NewContact(contacts.ContactType(req.Type), req.FirstName, req.LastName, req.CompanyName)
	if err != nil {
		return nil, err
	}

	c.Email = strings.TrimSpace(req.Email)
	c.Phone = req.Phone
	c.Address = req.Address
	c.City = req.City
	c.State = req.State
	c.PostalCode = req.PostalCode
	if req.Country != "" {
		c.Country = req.Country
	}
	for _, tag := range req.Tags {
		c.AddTag(tag)
	}
	if req.CustomFields != nil {
		c.CustomFields = datatypes.JSONMap(req.CustomFields)
	}
	c.Notes = req.Notes

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, common.Fail(ctx, "create contact", err)
	}
	common.Publish(ctx, s.events, c)

	logger.L(ctx).Info("Contact created", zap.String("contact_id", c.ID.String()), zap.String("type", string(c.Type)))
	resp := ToContactResponse(c)
	return &resp, nil
}

// UpdateContact applies a partial update to a contact
func (s *ContactService) UpdateContact(ctx context.Context, id uuid.UUID, req UpdateContactRequest) (*ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, "update contact", err)
	}

	if req.FirstName != nil || req.LastName != nil || req.CompanyName != nil {
		first, last, company := c.FirstName, c.LastName, c.CompanyName
		if req.FirstName != nil {
			first = *req.FirstName
		}
		if req.LastName != nil {
			last = *req.LastName
		}
		if req.CompanyName != nil {
			company = *req.CompanyName
		}
		if err := c.Rename(first, last, company); err != nil {
			return nil, err
		}
	}
	if req.Type != nil {
		if err := c.ChangeType(contacts.ContactType(*req.Type)); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.State != nil {
		c.State = *req.State
	}
	if req.PostalCode != nil {
		c.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		c.Country = *req.Country
	}
	if req.Tags != nil {
		c.Tags = datatypes.JSONSlice[string]{}
		for _, tag := range *req.Tags {
			c.AddTag(tag)
		}
	}
	if req.CustomFields != nil {
		c.CustomFields = datatypes.JSONMap(*req.CustomFields)
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	c.IncrementVersion()

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, common.Fail(ctx, "update contact", err)
	}
	resp := ToContactResponse(c)
	return &resp, nil
}

// DeleteContact deletes a contact
func (s *ContactService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return common.Fail(ctx, "delete contact", err)
	}
	return nil
}

// AddTag adds a tag to a contact
func (s *ContactService) AddTag(ctx context.Context, id uuid.UUID, tag string) (*ContactResponse, error) {
	return s.mutate(ctx, id, "add tag", func(c *contacts.Contact) error {
		c.AddTag(tag)
		return nil
	})
}

// RemoveTag removes a tag from a contact
func (s *ContactService) RemoveTag(ctx context.Context, id uuid.UUID, tag string) (*ContactResponse, error) {
	return s.mutate(ctx, id, "remove tag", func(c *contacts.Contact) error {
		c.RemoveTag(tag)
		return nil
	})
}

// UpdateStatus activates or deactivates a contact
func (s *ContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*ContactResponse, error) {
	return s.mutate(ctx, id, "update contact status", func(c *contacts.Contact) error {
		return c.UpdateStatus(contacts.ContactStatus(status))
	})
}

// DisplayNames resolves contact IDs to display names. Unknown IDs are left out.
func (s *ContactService) DisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	list, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, common.Fail(ctx, "fetch contacts", err)
	}
	for i := range list {
		names[list[i].ID] = list[i].DisplayName()
	}
	return names, nil
}

func (s *ContactService) mutate(ctx context.Context, id uuid.UUID, verb string, fn func(*contacts.Contact) error) (*ContactResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, common.Fail(ctx, verb, err)
	}
	resp := ToContactResponse(c)
	return &resp, nil
}
