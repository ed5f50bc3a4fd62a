package handler

import (
	"github.com/gin-gonic/gin"
	contactsapp "github.com/precast-erp/backend/internal/application/contacts"
)

// ContactHandler handles contact API endpoints
type ContactHandler struct {
	BaseHandler
	contactService *contactsapp.ContactService
	aiService      *contactsapp.ContactsAIService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *contactsapp.ContactService, aiService *contactsapp.ContactsAIService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		aiService:      aiService,
	}
}

// RegisterRoutes registers the contact routes
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/contacts")
	contacts.GET("", h.List)
	contacts.POST("", h.Create)
	contacts.POST("/ai/score-lead", h.ScoreLead)
	contacts.POST("/ai/follow-up", h.SuggestFollowUp)
	contacts.GET("/:id", h.GetByID)
	contacts.PUT("/:id", h.Update)
	contacts.DELETE("/:id", h.Delete)
	contacts.POST("/:id/tags", h.AddTag)
	contacts.DELETE("/:id/tags/:tag", h.RemoveTag)
	contacts.PATCH("/:id/status", h.UpdateStatus)
}

// List godoc
// @ID           listContact
//
//	@Summary		Return a page of contacts
//	@Description	Returns a page of contacts
//	@Tags			contacts
//	@Produce		json
//	@Param			filter	query	contactsapp.ContactListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	var filter contactsapp.ContactListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.contactService.ListContacts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getByIDContact
//
//	@Summary		Return a contact
//	@Description	Returns a contact
//	@Tags			contacts
//	@Produce		json
//	@Param			id	path	string	true	"Contact ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts/{id} [get]
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "contact")
	if !ok {
		return
	}
	contact, err := h.contactService.GetContact(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contact)
}

// Create godoc
// @ID           createContact
//
//	@Summary		Create a contact
//	@Description	Creates a contact
//	@Tags			contacts
//	@Accept			json
//	@Produce		json
//	@Param			request	body	contactsapp.CreateContactRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req contactsapp.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	contact, err := h.contactService.CreateContact(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, contact)
}

// Update godoc
// @ID           updateContact
//
//	@Summary		Apply a partial update to a contact
//	@Description	Applies a partial update to a contact
//	@Tags			contacts
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Contact ID"	format(uuid)
//	@Param			request	body	contactsapp.UpdateContactRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts/{id} [put]
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "contact")
	if !ok {
		return
	}
	var req contactsapp.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	contact, err := h.contactService.UpdateContact(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contact)
}

// Delete godoc
// @ID           deleteContact
//
//	@Summary		Delete a contact
//	@Description	Deletes a contact
//	@Tags			contacts
//	@Produce		json
//	@Param			id	path	string	true	"Contact ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "contact")
	if !ok {
		return
	}
	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddTag godoc
// @ID           addTagContact
//
//	@Summary		Add a tag to a contact
//	@Description	Adds a tag to a contact
//	@Tags			contacts
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Contact ID"	format(uuid)
//	@Param			request	body	contactsapp.AddTagRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts/{id}/tags [post]
func (h *ContactHandler) AddTag(c *gin.Context) {
	id, ok := h.ParseID(c, "contact")
	if !ok {
		return
	}
	var req contactsapp.AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	contact, err := h.contactService.AddTag(c.Request.Context(), id, req.Tag)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contact)
}

// RemoveTag godoc
// @ID           removeTagContact
//
//	@Summary		Remove a tag from a contact
//	@Description	Removes a tag from a contact
//	@Tags			contacts
//	@Produce		json
//	@Param			id	path	string	true	"Contact ID"	format(uuid)
//	@Param			tag	path	string	true	"Tag"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts/{id}/tags/{tag} [delete]
func (h *ContactHandler) RemoveTag(c *gin.Context) {
	id, ok := h.ParseID(c, "contact")
	if !ok {
		return
	}
	contact, err := h.contactService.RemoveTag(c.Request.Context(), id, c.Param("tag"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contact)
}

// UpdateStatus godoc
// @ID           updateStatusContact
//
//	@Summary		Activate or deactivate a contact
//	@Description	Activates or deactivates a contact
//	@Tags			contacts
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Contact ID"	format(uuid)
//	@Param			request	body	contactsapp.UpdateStatusRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseID(c, "contact")
	if !ok {
		return
	}
	var req contactsapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	contact, err := h.contactService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contact)
}

// ScoreLead godoc
// @ID           scoreLeadContact
//
//	@Summary		Score a lead through the prediction API
//	@Description	Scores a lead through the prediction API
//	@Tags			contacts-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	contactsapp.ScoreLeadRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts/ai/score-lead [post]
func (h *ContactHandler) ScoreLead(c *gin.Context) {
	var req contactsapp.ScoreLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	score, err := h.aiService.ScoreLead(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, score)
}

// SuggestFollowUp godoc
// @ID           suggestFollowUpContact
//
//	@Summary		Suggest next actions for a contact
//	@Description	Suggests next actions for a contact
//	@Tags			contacts-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	contactsapp.SuggestFollowUpRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/contacts/ai/follow-up [post]
func (h *ContactHandler) SuggestFollowUp(c *gin.Context) {
	var req contactsapp.SuggestFollowUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	plan, err := h.aiService.SuggestFollowUp(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}
