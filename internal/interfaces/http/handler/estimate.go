package handler

import (
	"github.com/gin-gonic/gin"
	estimatingapp "github.com/precast-erp/backend/internal/application/estimating"
)

// EstimateHandler handles estimate API endpoints
type EstimateHandler struct {
	BaseHandler
	estimateService *estimatingapp.EstimateService
	aiService       *estimatingapp.EstimatingAIService
}

// NewEstimateHandler creates a new EstimateHandler
func NewEstimateHandler(estimateService *estimatingapp.EstimateService, aiService *estimatingapp.EstimatingAIService) *EstimateHandler {
	return &EstimateHandler{
		estimateService: estimateService,
		aiService:       aiService,
	}
}

// RegisterRoutes registers the estimate routes
func (h *EstimateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	estimates := rg.Group("/estimates")
	estimates.GET("", h.List)
	estimates.POST("", h.Create)
	estimates.POST("/ai/predict-cost", h.PredictCost)
	estimates.POST("/ai/analyze-bid", h.AnalyzeBid)
	estimates.GET("/:id", h.GetByID)
	estimates.PUT("/:id", h.Update)
	estimates.DELETE("/:id", h.Delete)
	estimates.POST("/:id/submit", h.Submit)
	estimates.POST("/:id/approve", h.Approve)
	estimates.POST("/:id/reject", h.Reject)
	estimates.POST("/:id/revise", h.Revise)
	estimates.POST("/:id/convert", h.Convert)
}

// List godoc
// @ID           listEstimate
//
//	@Summary		Return a page of estimates
//	@Description	Returns a page of estimates
//	@Tags			estimates
//	@Produce		json
//	@Param			filter	query	estimatingapp.EstimateListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates [get]
func (h *EstimateHandler) List(c *gin.Context) {
	var filter estimatingapp.EstimateListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.estimateService.ListEstimates(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getByIDEstimate
//
//	@Summary		Return an estimate with its items
//	@Description	Returns an estimate with its items
//	@Tags			estimates
//	@Produce		json
//	@Param			id	path	string	true	"Estimate ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/{id} [get]
func (h *EstimateHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "estimate")
	if !ok {
		return
	}
	estimate, err := h.estimateService.GetEstimate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, estimate)
}

// Create godoc
// @ID           createEstimate
//
//	@Summary		Create a draft estimate
//	@Description	Creates a draft estimate
//	@Tags			estimates
//	@Accept			json
//	@Produce		json
//	@Param			request	body	estimatingapp.CreateEstimateRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates [post]
func (h *EstimateHandler) Create(c *gin.Context) {
	var req estimatingapp.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	estimate, err := h.estimateService.CreateEstimate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, estimate)
}

// Update godoc
// @ID           updateEstimate
//
//	@Summary		Update a draft estimate
//	@Description	Updates a draft estimate
//	@Tags			estimates
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Estimate ID"	format(uuid)
//	@Param			request	body	estimatingapp.UpdateEstimateRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/{id} [put]
func (h *EstimateHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "estimate")
	if !ok {
		return
	}
	var req estimatingapp.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	estimate, err := h.estimateService.UpdateEstimate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, estimate)
}

// Delete godoc
// @ID           deleteEstimate
//
//	@Summary		Delete a draft or rejected estimate
//	@Description	Deletes a draft or rejected estimate
//	@Tags			estimates
//	@Produce		json
//	@Param			id	path	string	true	"Estimate ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/{id} [delete]
func (h *EstimateHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "estimate")
	if !ok {
		return
	}
	if err := h.estimateService.DeleteEstimate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Submit godoc
// @ID           submitEstimate
//
//	@Summary		Send an estimate for approval
//	@Description	Sends an estimate for approval
//	@Tags			estimates
//	@Produce		json
//	@Param			id	path	string	true	"Estimate ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/{id}/submit [post]
func (h *EstimateHandler) Submit(c *gin.Context) {
	id, ok := h.ParseID(c, "estimate")
	if !ok {
		return
	}
	estimate, err := h.estimateService.SubmitEstimate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, estimate)
}

// Approve godoc
// @ID           approveEstimate
//
//	@Summary		Approve a submitted estimate
//	@Description	Approves a submitted estimate
//	@Tags			estimates
//	@Produce		json
//	@Param			id	path	string	true	"Estimate ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/{id}/approve [post]
func (h *EstimateHandler) Approve(c *gin.Context) {
	id, ok := h.ParseID(c, "estimate")
	if !ok {
		return
	}
	estimate, err := h.estimateService.ApproveEstimate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, estimate)
}

// Reject godoc
// @ID           rejectEstimate
//
//	@Summary		Reject a submitted estimate
//	@Description	Rejects a submitted estimate
//	@Tags			estimates
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Estimate ID"	format(uuid)
//	@Param			request	body	estimatingapp.RejectEstimateRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/{id}/reject [post]
func (h *EstimateHandler) Reject(c *gin.Context) {
	id, ok := h.ParseID(c, "estimate")
	if !ok {
		return
	}
	var req estimatingapp.RejectEstimateRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	estimate, err := h.estimateService.RejectEstimate(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, estimate)
}

// Revise godoc
// @ID           reviseEstimate
//
//	@Summary		Return a rejected estimate to draft
//	@Description	Returns a rejected estimate to draft
//	@Tags			estimates
//	@Produce		json
//	@Param			id	path	string	true	"Estimate ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/{id}/revise [post]
func (h *EstimateHandler) Revise(c *gin.Context) {
	id, ok := h.ParseID(c, "estimate")
	if !ok {
		return
	}
	estimate, err := h.estimateService.ReviseEstimate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, estimate)
}

// Convert godoc
// @ID           convertEstimate
//
//	@Summary		Turn an approved estimate into a project
//	@Description	Turns an approved estimate into a project
//	@Tags			estimates
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Estimate ID"	format(uuid)
//	@Param			request	body	estimatingapp.ConvertEstimateRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/{id}/convert [post]
func (h *EstimateHandler) Convert(c *gin.Context) {
	id, ok := h.ParseID(c, "estimate")
	if !ok {
		return
	}
	var req estimatingapp.ConvertEstimateRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	estimate, err := h.estimateService.ConvertEstimate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, estimate)
}

// PredictCost godoc
// @ID           predictCostEstimate
//
//	@Summary		Predict the cost of precast work
//	@Description	Predicts the cost of precast work
//	@Tags			estimates-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	estimatingapp.PredictCostRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/ai/predict-cost [post]
func (h *EstimateHandler) PredictCost(c *gin.Context) {
	var req estimatingapp.PredictCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	prediction, err := h.aiService.PredictCost(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prediction)
}

// AnalyzeBid godoc
// @ID           analyzeBidEstimate
//
//	@Summary		Assess how competitive a bid is
//	@Description	Assesses how competitive a bid is
//	@Tags			estimates-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	estimatingapp.AnalyzeBidRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/estimates/ai/analyze-bid [post]
func (h *EstimateHandler) AnalyzeBid(c *gin.Context) {
	var req estimatingapp.AnalyzeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	analysis, err := h.aiService.AnalyzeBid(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, analysis)
}
