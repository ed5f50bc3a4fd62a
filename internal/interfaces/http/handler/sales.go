package handler

import (
	"github.com/gin-gonic/gin"
	salesapp "github.com/precast-erp/backend/internal/application/sales"
)

// SalesHandler handles opportunity and pipeline endpoints
type SalesHandler struct {
	BaseHandler
	opportunityService *salesapp.OpportunityService
	aiService          *salesapp.SalesAIService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(opportunityService *salesapp.OpportunityService, aiService *salesapp.SalesAIService) *SalesHandler {
	return &SalesHandler{opportunityService: opportunityService, aiService: aiService}
}

// RegisterRoutes registers the sales routes
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	opportunities := rg.Group("/opportunities")
	opportunities.GET("", h.ListOpportunities)
	opportunities.POST("", h.CreateOpportunity)
	opportunities.GET("/pipeline", h.GetPipelineSummary)
	opportunities.GET("/:id", h.GetOpportunity)
	opportunities.PUT("/:id", h.UpdateOpportunity)
	opportunities.DELETE("/:id", h.DeleteOpportunity)
	opportunities.POST("/:id/advance", h.AdvanceStage)
	opportunities.POST("/:id/won", h.MarkWon)
	opportunities.POST("/:id/lost", h.MarkLost)

	ai := rg.Group("/sales/ai")
	ai.POST("/forecast", h.ForecastSales)
	ai.POST("/score-opportunity", h.ScoreOpportunity)
}

// ListOpportunities godoc
// @ID           listOpportunities
//
//	@Summary		Return a page of opportunities
//	@Description	Returns a page of opportunities
//	@Tags			opportunities
//	@Produce		json
//	@Param			filter	query	salesapp.OpportunityListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities [get]
func (h *SalesHandler) ListOpportunities(c *gin.Context) {
	var filter salesapp.OpportunityListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.opportunityService.ListOpportunities(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetOpportunity godoc
// @ID           getOpportunity
//
//	@Summary		Return an opportunity
//	@Description	Returns an opportunity
//	@Tags			opportunities
//	@Produce		json
//	@Param			id	path	string	true	"Opportunity ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities/{id} [get]
func (h *SalesHandler) GetOpportunity(c *gin.Context) {
	id, ok := h.ParseID(c, "opportunity")
	if !ok {
		return
	}
	o, err := h.opportunityService.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

// CreateOpportunity godoc
// @ID           createOpportunity
//
//	@Summary		Open a lead
//	@Description	Opens a lead
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			request	body	salesapp.CreateOpportunityRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities [post]
func (h *SalesHandler) CreateOpportunity(c *gin.Context) {
	var req salesapp.CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	o, err := h.opportunityService.CreateOpportunity(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, o)
}

// UpdateOpportunity godoc
// @ID           updateOpportunity
//
//	@Summary		Update an open opportunity
//	@Description	Updates an open opportunity
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Opportunity ID"	format(uuid)
//	@Param			request	body	salesapp.UpdateOpportunityRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities/{id} [put]
func (h *SalesHandler) UpdateOpportunity(c *gin.Context) {
	id, ok := h.ParseID(c, "opportunity")
	if !ok {
		return
	}
	var req salesapp.UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	o, err := h.opportunityService.UpdateOpportunity(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

// DeleteOpportunity godoc
// @ID           deleteOpportunity
//
//	@Summary		Delete an opportunity
//	@Description	Deletes an opportunity
//	@Tags			opportunities
//	@Produce		json
//	@Param			id	path	string	true	"Opportunity ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities/{id} [delete]
func (h *SalesHandler) DeleteOpportunity(c *gin.Context) {
	id, ok := h.ParseID(c, "opportunity")
	if !ok {
		return
	}
	if err := h.opportunityService.DeleteOpportunity(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AdvanceStage godoc
// @ID           advanceStageSales
//
//	@Summary		Move an opportunity to another stage
//	@Description	Moves an opportunity to another stage
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Opportunity ID"	format(uuid)
//	@Param			request	body	salesapp.AdvanceStageRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities/{id}/advance [post]
func (h *SalesHandler) AdvanceStage(c *gin.Context) {
	id, ok := h.ParseID(c, "opportunity")
	if !ok {
		return
	}
	var req salesapp.AdvanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	o, err := h.opportunityService.AdvanceStage(c.Request.Context(), id, req.Stage)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

// MarkWon godoc
// @ID           markWonSales
//
//	@Summary		Close an opportunity as won
//	@Description	Closes an opportunity as won
//	@Tags			opportunities
//	@Produce		json
//	@Param			id	path	string	true	"Opportunity ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities/{id}/won [post]
func (h *SalesHandler) MarkWon(c *gin.Context) {
	id, ok := h.ParseID(c, "opportunity")
	if !ok {
		return
	}
	o, err := h.opportunityService.MarkWon(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

// MarkLost godoc
// @ID           markLostSales
//
//	@Summary		Close an opportunity as lost
//	@Description	Closes an opportunity as lost
//	@Tags			opportunities
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Opportunity ID"	format(uuid)
//	@Param			request	body	salesapp.MarkLostRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities/{id}/lost [post]
func (h *SalesHandler) MarkLost(c *gin.Context) {
	id, ok := h.ParseID(c, "opportunity")
	if !ok {
		return
	}
	var req salesapp.MarkLostRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	o, err := h.opportunityService.MarkLost(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

// GetPipelineSummary godoc
// @ID           getPipelineSummarySales
//
//	@Summary		Return the pipeline totals per stage
//	@Description	Returns the pipeline totals per stage
//	@Tags			opportunities
//	@Produce		json
//	@Param			filter	query	salesapp.PipelineFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/opportunities/pipeline [get]
func (h *SalesHandler) GetPipelineSummary(c *gin.Context) {
	var filter salesapp.PipelineFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	summary, err := h.opportunityService.GetPipelineSummary(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// ForecastSales godoc
// @ID           forecastSales
//
//	@Summary		Predict revenue from the pipeline
//	@Description	Predicts revenue from the pipeline
//	@Tags			sales-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	salesapp.ForecastSalesRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/sales/ai/forecast [post]
func (h *SalesHandler) ForecastSales(c *gin.Context) {
	var req salesapp.ForecastSalesRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	forecast, err := h.aiService.ForecastSales(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, forecast)
}

// ScoreOpportunity godoc
// @ID           scoreOpportunity
//
//	@Summary		Rate an opportunity's chance of closing
//	@Description	Rates an opportunity's chance of closing
//	@Tags			sales-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	salesapp.ScoreOpportunityRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/sales/ai/score-opportunity [post]
func (h *SalesHandler) ScoreOpportunity(c *gin.Context) {
	var req salesapp.ScoreOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	score, err := h.aiService.ScoreOpportunity(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, score)
}
