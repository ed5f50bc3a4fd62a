package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qualityapp "github.com/precast-erp/backend/internal/application/quality"
)

// QualityHandler handles inspection and non-conformance endpoints
type QualityHandler struct {
	BaseHandler
	inspectionService *qualityapp.InspectionService
	ncrService        *qualityapp.NonConformanceService
	aiService         *qualityapp.QualityAIService
}

// NewQualityHandler creates a new QualityHandler
func NewQualityHandler(
	inspectionService *qualityapp.InspectionService,
	ncrService *qualityapp.NonConformanceService,
	aiService *qualityapp.QualityAIService,
) *QualityHandler {
	return &QualityHandler{
		inspectionService: inspectionService,
		ncrService:        ncrService,
		aiService:         aiService,
	}
}

// RegisterRoutes registers the quality routes
func (h *QualityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inspections := rg.Group("/inspections")
	inspections.GET("", h.ListInspections)
	inspections.POST("", h.CreateInspection)
	inspections.GET("/:id", h.GetInspection)
	inspections.PUT("/:id", h.UpdateInspection)
	inspections.DELETE("/:id", h.DeleteInspection)
	inspections.POST("/:id/complete", h.CompleteInspection)

	ncrs := rg.Group("/non-conformances")
	ncrs.GET("", h.ListNonConformances)
	ncrs.POST("", h.CreateNonConformance)
	ncrs.GET("/:id", h.GetNonConformance)
	ncrs.PUT("/:id", h.UpdateNonConformance)
	ncrs.DELETE("/:id", h.DeleteNonConformance)
	ncrs.POST("/:id/review", h.ReviewNonConformance)
	ncrs.POST("/:id/resolve", h.ResolveNonConformance)
	ncrs.POST("/:id/close", h.CloseNonConformance)
	ncrs.POST("/:id/reopen", h.ReopenNonConformance)

	ai := rg.Group("/quality/ai")
	ai.POST("/predict-defects", h.PredictDefects)
	ai.POST("/root-cause", h.AnalyzeRootCause)
}

// ListInspections godoc
// @ID           listInspections
//
//	@Summary		Return a page of inspections
//	@Description	Returns a page of inspections
//	@Tags			inspections
//	@Produce		json
//	@Param			filter	query	qualityapp.InspectionListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/inspections [get]
func (h *QualityHandler) ListInspections(c *gin.Context) {
	var filter qualityapp.InspectionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.inspectionService.ListInspections(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetInspection godoc
// @ID           getInspection
//
//	@Summary		Return an inspection
//	@Description	Returns an inspection
//	@Tags			inspections
//	@Produce		json
//	@Param			id	path	string	true	"Inspection ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/inspections/{id} [get]
func (h *QualityHandler) GetInspection(c *gin.Context) {
	id, ok := h.ParseID(c, "inspection")
	if !ok {
		return
	}
	insp, err := h.inspectionService.GetInspection(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, insp)
}

// CreateInspection godoc
// @ID           createInspection
//
//	@Summary		Schedule an inspection
//	@Description	Schedules an inspection
//	@Tags			inspections
//	@Accept			json
//	@Produce		json
//	@Param			request	body	qualityapp.CreateInspectionRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/inspections [post]
func (h *QualityHandler) CreateInspection(c *gin.Context) {
	var req qualityapp.CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	insp, err := h.inspectionService.CreateInspection(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, insp)
}

// UpdateInspection godoc
// @ID           updateInspection
//
//	@Summary		Update a scheduled inspection
//	@Description	Updates a scheduled inspection
//	@Tags			inspections
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Inspection ID"	format(uuid)
//	@Param			request	body	qualityapp.UpdateInspectionRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/inspections/{id} [put]
func (h *QualityHandler) UpdateInspection(c *gin.Context) {
	id, ok := h.ParseID(c, "inspection")
	if !ok {
		return
	}
	var req qualityapp.UpdateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	insp, err := h.inspectionService.UpdateInspection(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, insp)
}

// DeleteInspection godoc
// @ID           deleteInspection
//
//	@Summary		Delete a scheduled inspection
//	@Description	Deletes a scheduled inspection
//	@Tags			inspections
//	@Produce		json
//	@Param			id	path	string	true	"Inspection ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/inspections/{id} [delete]
func (h *QualityHandler) DeleteInspection(c *gin.Context) {
	id, ok := h.ParseID(c, "inspection")
	if !ok {
		return
	}
	if err := h.inspectionService.DeleteInspection(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CompleteInspection godoc
// @ID           completeInspection
//
//	@Summary		Record an inspection result
//	@Description	Records an inspection result
//	@Tags			inspections
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Inspection ID"	format(uuid)
//	@Param			request	body	qualityapp.CompleteInspectionRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/inspections/{id}/complete [post]
func (h *QualityHandler) CompleteInspection(c *gin.Context) {
	id, ok := h.ParseID(c, "inspection")
	if !ok {
		return
	}
	var req qualityapp.CompleteInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.Inspector = actor(c, req.Inspector)
	insp, err := h.inspectionService.CompleteInspection(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, insp)
}

// ListNonConformances godoc
// @ID           listNonConformances
//
//	@Summary		Return a page of non-conformance reports
//	@Description	Returns a page of non-conformance reports
//	@Tags			non-conformances
//	@Produce		json
//	@Param			filter	query	qualityapp.NonConformanceListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances [get]
func (h *QualityHandler) ListNonConformances(c *gin.Context) {
	var filter qualityapp.NonConformanceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.ncrService.ListNonConformances(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetNonConformance godoc
// @ID           getNonConformance
//
//	@Summary		Return a report
//	@Description	Returns a report
//	@Tags			non-conformances
//	@Produce		json
//	@Param			id	path	string	true	"Non-conformance ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances/{id} [get]
func (h *QualityHandler) GetNonConformance(c *gin.Context) {
	id, ok := h.ParseID(c, "non-conformance")
	if !ok {
		return
	}
	ncr, err := h.ncrService.GetNonConformance(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ncr)
}

// CreateNonConformance godoc
// @ID           createNonConformance
//
//	@Summary		Open a report
//	@Description	Opens a report
//	@Tags			non-conformances
//	@Accept			json
//	@Produce		json
//	@Param			request	body	qualityapp.CreateNonConformanceRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances [post]
func (h *QualityHandler) CreateNonConformance(c *gin.Context) {
	var req qualityapp.CreateNonConformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	ncr, err := h.ncrService.CreateNonConformance(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, ncr)
}

// UpdateNonConformance godoc
// @ID           updateNonConformance
//
//	@Summary		Update a report
//	@Description	Updates a report
//	@Tags			non-conformances
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Non-conformance ID"	format(uuid)
//	@Param			request	body	qualityapp.UpdateNonConformanceRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances/{id} [put]
func (h *QualityHandler) UpdateNonConformance(c *gin.Context) {
	id, ok := h.ParseID(c, "non-conformance")
	if !ok {
		return
	}
	var req qualityapp.UpdateNonConformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	ncr, err := h.ncrService.UpdateNonConformance(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ncr)
}

// DeleteNonConformance godoc
// @ID           deleteNonConformance
//
//	@Summary		Delete a report
//	@Description	Deletes a report
//	@Tags			non-conformances
//	@Produce		json
//	@Param			id	path	string	true	"Non-conformance ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances/{id} [delete]
func (h *QualityHandler) DeleteNonConformance(c *gin.Context) {
	id, ok := h.ParseID(c, "non-conformance")
	if !ok {
		return
	}
	if err := h.ncrService.DeleteNonConformance(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ReviewNonConformance godoc
// @ID           reviewNonConformance
//
//	@Summary		Put a report under review
//	@Description	Puts a report under review
//	@Tags			non-conformances
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances/{id}/review [post]
func (h *QualityHandler) ReviewNonConformance(c *gin.Context) {
	h.ncrStep(c, h.ncrService.ReviewNonConformance)
}

// ResolveNonConformance godoc
// @ID           resolveNonConformance
//
//	@Summary		Resolve a report
//	@Description	Resolves a report
//	@Tags			non-conformances
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Non-conformance ID"	format(uuid)
//	@Param			request	body	qualityapp.ResolveNonConformanceRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances/{id}/resolve [post]
func (h *QualityHandler) ResolveNonConformance(c *gin.Context) {
	id, ok := h.ParseID(c, "non-conformance")
	if !ok {
		return
	}
	var req qualityapp.ResolveNonConformanceRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	ncr, err := h.ncrService.ResolveNonConformance(c.Request.Context(), id, req.CorrectiveAction)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ncr)
}

// CloseNonConformance godoc
// @ID           closeNonConformance
//
//	@Summary		Close a resolved report
//	@Description	Closes a resolved report
//	@Tags			non-conformances
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances/{id}/close [post]
func (h *QualityHandler) CloseNonConformance(c *gin.Context) {
	h.ncrStep(c, h.ncrService.CloseNonConformance)
}

// ReopenNonConformance godoc
// @ID           reopenNonConformance
//
//	@Summary		Reopen a report
//	@Description	Reopens a report
//	@Tags			non-conformances
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/non-conformances/{id}/reopen [post]
func (h *QualityHandler) ReopenNonConformance(c *gin.Context) {
	h.ncrStep(c, h.ncrService.ReopenNonConformance)
}

func (h *QualityHandler) ncrStep(c *gin.Context, fn func(context.Context, uuid.UUID) (*qualityapp.NonConformanceResponse, error)) {
	id, ok := h.ParseID(c, "non-conformance")
	if !ok {
		return
	}
	ncr, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ncr)
}

// PredictDefects godoc
// @ID           predictDefectsQuality
//
//	@Summary		Predict the defects of a pour
//	@Description	Predicts the defects of a pour
//	@Tags			quality-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	qualityapp.PredictDefectsRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/quality/ai/predict-defects [post]
func (h *QualityHandler) PredictDefects(c *gin.Context) {
	var req qualityapp.PredictDefectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	prediction, err := h.aiService.PredictDefects(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prediction)
}

// AnalyzeRootCause godoc
// @ID           analyzeRootCauseQuality
//
//	@Summary		Analyze a non-conformance
//	@Description	Analyzes a non-conformance
//	@Tags			quality-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	qualityapp.AnalyzeRootCauseRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/quality/ai/root-cause [post]
func (h *QualityHandler) AnalyzeRootCause(c *gin.Context) {
	var req qualityapp.AnalyzeRootCauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	analysis, err := h.aiService.AnalyzeRootCause(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, analysis)
}
