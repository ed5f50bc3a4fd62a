package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	draftingapp "github.com/precast-erp/backend/internal/application/drafting"
)

// DrawingHandler handles drawing and drawing workflow endpoints
type DrawingHandler struct {
	BaseHandler
	drawingService  *draftingapp.DrawingService
	workflowService *draftingapp.WorkflowService
	aiService       *draftingapp.DraftingAIService
}

// NewDrawingHandler creates a new DrawingHandler
func NewDrawingHandler(
	drawingService *draftingapp.DrawingService,
	workflowService *draftingapp.WorkflowService,
	aiService *draftingapp.DraftingAIService,
) *DrawingHandler {
	return &DrawingHandler{
		drawingService:  drawingService,
		workflowService: workflowService,
		aiService:       aiService,
	}
}

// RegisterRoutes registers the drawing routes
func (h *DrawingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	drawings := rg.Group("/drawings")
	drawings.GET("", h.List)
	drawings.POST("", h.Create)
	drawings.POST("/ai/check-design", h.CheckDesign)
	drawings.POST("/ai/generate-elements", h.GenerateElements)
	drawings.GET("/:id", h.GetByID)
	drawings.PUT("/:id", h.Update)
	drawings.DELETE("/:id", h.Delete)
	drawings.GET("/:id/history", h.History)
	drawings.POST("/:id/submit", h.Submit)
	drawings.POST("/:id/approve", h.Approve)
	drawings.POST("/:id/reject", h.Reject)
	drawings.POST("/:id/revise", h.Revise)
	drawings.POST("/:id/release", h.Release)
}

// List godoc
// @ID           listDrawing
//
//	@Summary		Return a page of drawings
//	@Description	Returns a page of drawings
//	@Tags			drawings
//	@Produce		json
//	@Param			filter	query	draftingapp.DrawingListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings [get]
func (h *DrawingHandler) List(c *gin.Context) {
	var filter draftingapp.DrawingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.drawingService.ListDrawings(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getByIDDrawing
//
//	@Summary		Return a drawing
//	@Description	Returns a drawing
//	@Tags			drawings
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id} [get]
func (h *DrawingHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "drawing")
	if !ok {
		return
	}
	drawing, err := h.drawingService.GetDrawing(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawing)
}

// Create godoc
// @ID           createDrawing
//
//	@Summary		Create a draft drawing
//	@Description	Creates a draft drawing
//	@Tags			drawings
//	@Accept			json
//	@Produce		json
//	@Param			request	body	draftingapp.CreateDrawingRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings [post]
func (h *DrawingHandler) Create(c *gin.Context) {
	var req draftingapp.CreateDrawingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	drawing, err := h.drawingService.CreateDrawing(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, drawing)
}

// Update godoc
// @ID           updateDrawing
//
//	@Summary		Update a drawing
//	@Description	Updates a drawing
//	@Tags			drawings
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Param			request	body	draftingapp.UpdateDrawingRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id} [put]
func (h *DrawingHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "drawing")
	if !ok {
		return
	}
	var req draftingapp.UpdateDrawingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	drawing, err := h.drawingService.UpdateDrawing(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawing)
}

// Delete godoc
// @ID           deleteDrawing
//
//	@Summary		Delete an unreleased drawing
//	@Description	Deletes an unreleased drawing
//	@Tags			drawings
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id} [delete]
func (h *DrawingHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "drawing")
	if !ok {
		return
	}
	if err := h.drawingService.DeleteDrawing(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// History godoc
// @ID           historyDrawing
//
//	@Summary		Return the workflow history of a drawing
//	@Description	Returns the workflow history of a drawing
//	@Tags			drawings
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id}/history [get]
func (h *DrawingHandler) History(c *gin.Context) {
	id, ok := h.ParseID(c, "drawing")
	if !ok {
		return
	}
	history, err := h.workflowService.GetHistory(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, history)
}

type workflowStep func(ctx context.Context, id uuid.UUID, actor, comment string) (*draftingapp.DrawingResponse, error)

func (h *DrawingHandler) runWorkflow(c *gin.Context, step workflowStep) {
	id, ok := h.ParseID(c, "drawing")
	if !ok {
		return
	}
	var req draftingapp.WorkflowRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	drawing, err := step(c.Request.Context(), id, actor(c, req.Actor), req.Comment)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, drawing)
}

// Submit godoc
// @ID           submitDrawing
//
//	@Summary		Send a draft drawing for review
//	@Description	Sends a draft drawing for review
//	@Tags			drawings
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Param			request	body	draftingapp.WorkflowRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id}/submit [post]
func (h *DrawingHandler) Submit(c *gin.Context) {
	h.runWorkflow(c, func(ctx context.Context, id uuid.UUID, who, _ string) (*draftingapp.DrawingResponse, error) {
		return h.workflowService.SubmitForReview(ctx, id, who)
	})
}

// Approve godoc
// @ID           approveDrawing
//
//	@Summary		Approve a drawing under review
//	@Description	Approves a drawing under review
//	@Tags			drawings
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Param			request	body	draftingapp.WorkflowRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id}/approve [post]
func (h *DrawingHandler) Approve(c *gin.Context) {
	h.runWorkflow(c, h.workflowService.Approve)
}

// Reject godoc
// @ID           rejectDrawing
//
//	@Summary		Send a drawing back with review comments
//	@Description	Sends a drawing back with review comments
//	@Tags			drawings
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Param			request	body	draftingapp.WorkflowRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id}/reject [post]
func (h *DrawingHandler) Reject(c *gin.Context) {
	h.runWorkflow(c, h.workflowService.Reject)
}

// Revise godoc
// @ID           reviseDrawing
//
//	@Summary		Reopen an approved or rejected drawing as the next revision
//	@Description	Reopens an approved or rejected drawing as the next revision
//	@Tags			drawings
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Param			request	body	draftingapp.WorkflowRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id}/revise [post]
func (h *DrawingHandler) Revise(c *gin.Context) {
	h.runWorkflow(c, func(ctx context.Context, id uuid.UUID, who, _ string) (*draftingapp.DrawingResponse, error) {
		return h.workflowService.Revise(ctx, id, who)
	})
}

// Release godoc
// @ID           releaseDrawing
//
//	@Summary		Release an approved drawing for production
//	@Description	Releases an approved drawing for production
//	@Tags			drawings
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Drawing ID"	format(uuid)
//	@Param			request	body	draftingapp.WorkflowRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/{id}/release [post]
func (h *DrawingHandler) Release(c *gin.Context) {
	h.runWorkflow(c, func(ctx context.Context, id uuid.UUID, who, _ string) (*draftingapp.DrawingResponse, error) {
		return h.workflowService.Release(ctx, id, who)
	})
}

// CheckDesign godoc
// @ID           checkDesignDrawing
//
//	@Summary		Review a drawing against design rules
//	@Description	Reviews a drawing against design rules
//	@Tags			drawings-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	draftingapp.CheckDesignRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/ai/check-design [post]
func (h *DrawingHandler) CheckDesign(c *gin.Context) {
	var req draftingapp.CheckDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	check, err := h.aiService.CheckDesign(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, check)
}

// GenerateElements godoc
// @ID           generateElementsDrawing
//
//	@Summary		Propose precast elements for a structure
//	@Description	Proposes precast elements for a structure
//	@Tags			drawings-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	draftingapp.GenerateElementsRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/drawings/ai/generate-elements [post]
func (h *DrawingHandler) GenerateElements(c *gin.Context) {
	var req draftingapp.GenerateElementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	elements, err := h.aiService.GenerateElements(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, elements)
}
