package handler

import (
	"github.com/gin-gonic/gin"
	projectsapp "github.com/precast-erp/backend/internal/application/projects"
)

// ProjectHandler handles project API endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *projectsapp.ProjectService
	aiService      *projectsapp.ProjectsAIService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *projectsapp.ProjectService, aiService *projectsapp.ProjectsAIService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		aiService:      aiService,
	}
}

// RegisterRoutes registers the project routes
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	projects.GET("", h.List)
	projects.POST("", h.Create)
	projects.POST("/ai/predict-timeline", h.PredictTimeline)
	projects.POST("/ai/assess-risks", h.AssessRisks)
	projects.GET("/:id", h.GetByID)
	projects.PUT("/:id", h.Update)
	projects.DELETE("/:id", h.Delete)
	projects.PATCH("/:id/status", h.UpdateStatus)
	projects.PATCH("/:id/progress", h.UpdateProgress)
}

// List godoc
// @ID           listProject
//
//	@Summary		Return a page of projects
//	@Description	Returns a page of projects
//	@Tags			projects
//	@Produce		json
//	@Param			filter	query	projectsapp.ProjectListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var filter projectsapp.ProjectListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.projectService.ListProjects(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getByIDProject
//
//	@Summary		Return a project
//	@Description	Returns a project
//	@Tags			projects
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := h.ParseID(c, "project")
	if !ok {
		return
	}
	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

// Create godoc
// @ID           createProject
//
//	@Summary		Create a project
//	@Description	Creates a project
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body	projectsapp.CreateProjectRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectsapp.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, project)
}

// Update godoc
// @ID           updateProject
//
//	@Summary		Apply a partial update to a project
//	@Description	Applies a partial update to a project
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"	format(uuid)
//	@Param			request	body	projectsapp.UpdateProjectRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "project")
	if !ok {
		return
	}
	var req projectsapp.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	project, err := h.projectService.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

// Delete godoc
// @ID           deleteProject
//
//	@Summary		Delete a project
//	@Description	Deletes a project
//	@Tags			projects
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "project")
	if !ok {
		return
	}
	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UpdateStatus godoc
// @ID           updateStatusProject
//
//	@Summary		Move a project through its lifecycle
//	@Description	Moves a project through its lifecycle
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"	format(uuid)
//	@Param			request	body	projectsapp.UpdateStatusRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects/{id}/status [patch]
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseID(c, "project")
	if !ok {
		return
	}
	var req projectsapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	project, err := h.projectService.UpdateProjectStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

// UpdateProgress godoc
// @ID           updateProgressProject
//
//	@Summary		Record percent complete
//	@Description	Records percent complete
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"	format(uuid)
//	@Param			request	body	projectsapp.UpdateProgressRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects/{id}/progress [patch]
func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	id, ok := h.ParseID(c, "project")
	if !ok {
		return
	}
	var req projectsapp.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	project, err := h.projectService.UpdateProgress(c.Request.Context(), id, *req.Progress)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, project)
}

// PredictTimeline godoc
// @ID           predictTimelineProject
//
//	@Summary		Predict a project's schedule
//	@Description	Predicts a project's schedule
//	@Tags			projects-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	projectsapp.PredictTimelineRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects/ai/predict-timeline [post]
func (h *ProjectHandler) PredictTimeline(c *gin.Context) {
	var req projectsapp.PredictTimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	prediction, err := h.aiService.PredictTimeline(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prediction)
}

// AssessRisks godoc
// @ID           assessRisksProject
//
//	@Summary		Identify project risks
//	@Description	Identifies project risks
//	@Tags			projects-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	projectsapp.AssessRisksRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/projects/ai/assess-risks [post]
func (h *ProjectHandler) AssessRisks(c *gin.Context) {
	var req projectsapp.AssessRisksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	assessment, err := h.aiService.AssessRisks(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assessment)
}
