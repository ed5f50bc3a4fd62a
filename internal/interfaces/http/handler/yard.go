package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	yardapp "github.com/precast-erp/backend/internal/application/yard"
	"github.com/precast-erp/backend/internal/infrastructure/document"
	"github.com/precast-erp/backend/internal/infrastructure/export"
)

// YardHandler handles yard location, piece, equipment and movement endpoints
type YardHandler struct {
	BaseHandler
	locationService  *yardapp.LocationService
	pieceService     *yardapp.PieceService
	equipmentService *yardapp.EquipmentService
	movementService  *yardapp.MovementService
	aiService        *yardapp.YardAIService
}

// NewYardHandler creates a new YardHandler
func NewYardHandler(
	locationService *yardapp.LocationService,
	pieceService *yardapp.PieceService,
	equipmentService *yardapp.EquipmentService,
	movementService *yardapp.MovementService,
	aiService *yardapp.YardAIService,
) *YardHandler {
	return &YardHandler{
		locationService:  locationService,
		pieceService:     pieceService,
		equipmentService: equipmentService,
		movementService:  movementService,
		aiService:        aiService,
	}
}

// RegisterRoutes registers the yard routes
func (h *YardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	y := rg.Group("/yard")
	y.GET("/summary", h.GetYardSummary)

	locations := y.Group("/locations")
	locations.GET("", h.ListLocations)
	locations.GET("/available", h.ListAvailableLocations)
	locations.POST("", h.CreateLocation)
	locations.GET("/:id", h.GetLocation)
	locations.PUT("/:id", h.UpdateLocation)
	locations.DELETE("/:id", h.DeleteLocation)

	pieces := y.Group("/pieces")
	pieces.GET("", h.ListPieces)
	pieces.GET("/export", h.ExportInventory)
	pieces.GET("/tags", h.PieceTags)
	pieces.POST("", h.CreatePiece)
	pieces.GET("/:id", h.GetPiece)
	pieces.PUT("/:id", h.UpdatePiece)
	pieces.DELETE("/:id", h.DeletePiece)

	movements := y.Group("/movements")
	movements.GET("", h.ListMovements)
	movements.POST("", h.CreateMovement)
	movements.GET("/:id", h.GetMovement)
	movements.DELETE("/:id", h.DeleteMovement)
	movements.POST("/:id/start", h.StartMovement)
	movements.POST("/:id/execute", h.ExecuteMovement)
	movements.POST("/:id/cancel", h.CancelMovement)

	ai := y.Group("/ai")
	ai.POST("/optimize-layout", h.OptimizeYardLayout)
	ai.POST("/suggest-location", h.SuggestLocation)

	equipment := rg.Group("/equipment")
	equipment.GET("", h.ListEquipment)
	equipment.POST("", h.CreateEquipment)
	equipment.GET("/:id", h.GetEquipment)
	equipment.PUT("/:id", h.UpdateEquipment)
	equipment.DELETE("/:id", h.DeleteEquipment)
}

// GetYardSummary godoc
// @ID           getYardSummary
//
//	@Summary		Return occupancy by zone
//	@Description	Returns occupancy by zone
//	@Tags			yard
//	@Produce		json
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/summary [get]
func (h *YardHandler) GetYardSummary(c *gin.Context) {
	summary, err := h.locationService.GetYardSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// ListLocations godoc
// @ID           listLocations
//
//	@Summary		Return a page of locations
//	@Description	Returns a page of locations
//	@Tags			yard
//	@Produce		json
//	@Param			filter	query	yardapp.LocationListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/locations [get]
func (h *YardHandler) ListLocations(c *gin.Context) {
	var filter yardapp.LocationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.locationService.ListLocations(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// ListAvailableLocations godoc
// @ID           listAvailableLocations
//
//	@Summary		Return locations with free capacity
//	@Description	Returns locations with room for min_free more pieces
//	@Tags			yard
//	@Produce		json
//	@Param			min_free	query	int	false	"Min_free"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/locations/available [get]
func (h *YardHandler) ListAvailableLocations(c *gin.Context) {
	minFree, ok := h.QueryInt(c, "min_free", 1)
	if !ok {
		return
	}
	list, err := h.locationService.ListAvailableLocations(c.Request.Context(), minFree)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// GetLocation godoc
// @ID           getLocation
//
//	@Summary		Return a location
//	@Description	Returns a location
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Location ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/locations/{id} [get]
func (h *YardHandler) GetLocation(c *gin.Context) {
	id, ok := h.ParseID(c, "location")
	if !ok {
		return
	}
	loc, err := h.locationService.GetLocation(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, loc)
}

// CreateLocation godoc
// @ID           createLocation
//
//	@Summary		Add a location
//	@Description	Adds a location
//	@Tags			yard
//	@Accept			json
//	@Produce		json
//	@Param			request	body	yardapp.CreateLocationRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/locations [post]
func (h *YardHandler) CreateLocation(c *gin.Context) {
	var req yardapp.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	loc, err := h.locationService.CreateLocation(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, loc)
}

// UpdateLocation godoc
// @ID           updateLocation
//
//	@Summary		Update a location
//	@Description	Updates a location
//	@Tags			yard
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Location ID"	format(uuid)
//	@Param			request	body	yardapp.UpdateLocationRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/locations/{id} [put]
func (h *YardHandler) UpdateLocation(c *gin.Context) {
	id, ok := h.ParseID(c, "location")
	if !ok {
		return
	}
	var req yardapp.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	loc, err := h.locationService.UpdateLocation(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, loc)
}

// DeleteLocation godoc
// @ID           deleteLocation
//
//	@Summary		Delete an empty location
//	@Description	Deletes an empty location
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Location ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/locations/{id} [delete]
func (h *YardHandler) DeleteLocation(c *gin.Context) {
	id, ok := h.ParseID(c, "location")
	if !ok {
		return
	}
	if err := h.locationService.DeleteLocation(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPieces godoc
// @ID           listPieces
//
//	@Summary		Return a page of pieces
//	@Description	Returns a page of pieces
//	@Tags			yard
//	@Produce		json
//	@Param			filter	query	yardapp.PieceListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/pieces [get]
func (h *YardHandler) ListPieces(c *gin.Context) {
	var filter yardapp.PieceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.pieceService.ListPieces(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// ExportInventory godoc
// @ID           exportInventoryYard
//
//	@Summary		Download the yard inventory as a workbook
//	@Description	Downloads the yard inventory as a workbook
//	@Tags			yard
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			filter	query	yardapp.PieceListFilter	false	"List filter"
//	@Success		200	{file}	binary
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/pieces/export [get]
func (h *YardHandler) ExportInventory(c *gin.Context) {
	var filter yardapp.PieceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	data, err := h.pieceService.ExportInventory(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, exportFilename("yard-inventory", "xlsx"), export.ContentTypeXLSX, data)
}

// PieceTags godoc
// @ID           pieceTags
//
//	@Summary		Print QR tags for pieces
//	@Description	Prints one QR tag per piece listed in the ids query parameter
//	@Tags			yard
//	@Produce		application/pdf
//	@Param			ids	query	string	true	"Comma separated piece IDs"
//	@Success		200	{file}	binary
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/pieces/tags [get]
func (h *YardHandler) PieceTags(c *gin.Context) {
	var ids []uuid.UUID
	for _, raw := range c.QueryArray("ids") {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				h.BadRequest(c, "Invalid piece ID format")
				return
			}
			ids = append(ids, id)
		}
	}
	data, err := h.pieceService.PieceTags(c.Request.Context(), ids)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, exportFilename("piece-tags", "pdf"), document.ContentTypePDF, data)
}

// GetPiece godoc
// @ID           getPiece
//
//	@Summary		Return a piece
//	@Description	Returns a piece
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Piece ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/pieces/{id} [get]
func (h *YardHandler) GetPiece(c *gin.Context) {
	id, ok := h.ParseID(c, "piece")
	if !ok {
		return
	}
	piece, err := h.pieceService.GetPiece(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, piece)
}

// CreatePiece godoc
// @ID           createPiece
//
//	@Summary		Register a piece
//	@Description	Registers a piece
//	@Tags			yard
//	@Accept			json
//	@Produce		json
//	@Param			request	body	yardapp.CreatePieceRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/pieces [post]
func (h *YardHandler) CreatePiece(c *gin.Context) {
	var req yardapp.CreatePieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	piece, err := h.pieceService.CreatePiece(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, piece)
}

// UpdatePiece godoc
// @ID           updatePiece
//
//	@Summary		Update a piece
//	@Description	Updates a piece
//	@Tags			yard
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Piece ID"	format(uuid)
//	@Param			request	body	yardapp.UpdatePieceRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/pieces/{id} [put]
func (h *YardHandler) UpdatePiece(c *gin.Context) {
	id, ok := h.ParseID(c, "piece")
	if !ok {
		return
	}
	var req yardapp.UpdatePieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	piece, err := h.pieceService.UpdatePiece(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, piece)
}

// DeletePiece godoc
// @ID           deletePiece
//
//	@Summary		Delete a piece
//	@Description	Deletes a piece and frees its location
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Piece ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/pieces/{id} [delete]
func (h *YardHandler) DeletePiece(c *gin.Context) {
	id, ok := h.ParseID(c, "piece")
	if !ok {
		return
	}
	if err := h.pieceService.DeletePiece(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListEquipment godoc
// @ID           listEquipment
//
//	@Summary		Return a page of equipment
//	@Description	Returns a page of equipment
//	@Tags			equipment
//	@Produce		json
//	@Param			filter	query	yardapp.EquipmentListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/equipment [get]
func (h *YardHandler) ListEquipment(c *gin.Context) {
	var filter yardapp.EquipmentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.equipmentService.ListEquipment(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetEquipment godoc
// @ID           getEquipment
//
//	@Summary		Return equipment
//	@Description	Returns equipment
//	@Tags			equipment
//	@Produce		json
//	@Param			id	path	string	true	"Equipment ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/equipment/{id} [get]
func (h *YardHandler) GetEquipment(c *gin.Context) {
	id, ok := h.ParseID(c, "equipment")
	if !ok {
		return
	}
	eq, err := h.equipmentService.GetEquipment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, eq)
}

// CreateEquipment godoc
// @ID           createEquipment
//
//	@Summary		Register equipment
//	@Description	Registers equipment
//	@Tags			equipment
//	@Accept			json
//	@Produce		json
//	@Param			request	body	yardapp.CreateEquipmentRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/equipment [post]
func (h *YardHandler) CreateEquipment(c *gin.Context) {
	var req yardapp.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	eq, err := h.equipmentService.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, eq)
}

// UpdateEquipment godoc
// @ID           updateEquipment
//
//	@Summary		Update equipment
//	@Description	Updates equipment
//	@Tags			equipment
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Equipment ID"	format(uuid)
//	@Param			request	body	yardapp.UpdateEquipmentRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/equipment/{id} [put]
func (h *YardHandler) UpdateEquipment(c *gin.Context) {
	id, ok := h.ParseID(c, "equipment")
	if !ok {
		return
	}
	var req yardapp.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	eq, err := h.equipmentService.UpdateEquipment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, eq)
}

// DeleteEquipment godoc
// @ID           deleteEquipment
//
//	@Summary		Delete equipment
//	@Description	Deletes equipment
//	@Tags			equipment
//	@Produce		json
//	@Param			id	path	string	true	"Equipment ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/equipment/{id} [delete]
func (h *YardHandler) DeleteEquipment(c *gin.Context) {
	id, ok := h.ParseID(c, "equipment")
	if !ok {
		return
	}
	if err := h.equipmentService.DeleteEquipment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListMovements godoc
// @ID           listMovements
//
//	@Summary		Return a page of movements
//	@Description	Returns a page of movements
//	@Tags			yard
//	@Produce		json
//	@Param			filter	query	yardapp.MovementListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/movements [get]
func (h *YardHandler) ListMovements(c *gin.Context) {
	var filter yardapp.MovementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.movementService.ListMovements(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetMovement godoc
// @ID           getMovement
//
//	@Summary		Return a movement
//	@Description	Returns a movement
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Movement ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/movements/{id} [get]
func (h *YardHandler) GetMovement(c *gin.Context) {
	id, ok := h.ParseID(c, "movement")
	if !ok {
		return
	}
	m, err := h.movementService.GetMovement(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}

// CreateMovement godoc
// @ID           createMovement
//
//	@Summary		Plan a movement
//	@Description	Plans a movement
//	@Tags			yard
//	@Accept			json
//	@Produce		json
//	@Param			request	body	yardapp.CreateMovementRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/movements [post]
func (h *YardHandler) CreateMovement(c *gin.Context) {
	var req yardapp.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.RequestedBy = actor(c, req.RequestedBy)
	m, err := h.movementService.CreateMovement(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, m)
}

// DeleteMovement godoc
// @ID           deleteMovement
//
//	@Summary		Delete a planned or cancelled movement
//	@Description	Deletes a planned or cancelled movement
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Movement ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/movements/{id} [delete]
func (h *YardHandler) DeleteMovement(c *gin.Context) {
	id, ok := h.ParseID(c, "movement")
	if !ok {
		return
	}
	if err := h.movementService.DeleteMovement(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// StartMovement godoc
// @ID           startMovement
//
//	@Summary		Start a movement
//	@Description	Starts a movement
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/movements/{id}/start [post]
func (h *YardHandler) StartMovement(c *gin.Context) {
	h.transition(c, h.movementService.StartMovement)
}

// ExecuteMovement godoc
// @ID           executeMovement
//
//	@Summary		Complete a movement
//	@Description	Completes a movement and relocates the piece
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/movements/{id}/execute [post]
func (h *YardHandler) ExecuteMovement(c *gin.Context) {
	h.transition(c, h.movementService.ExecuteMovement)
}

// CancelMovement godoc
// @ID           cancelMovement
//
//	@Summary		Cancel a movement
//	@Description	Cancels a movement
//	@Tags			yard
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/movements/{id}/cancel [post]
func (h *YardHandler) CancelMovement(c *gin.Context) {
	h.transition(c, h.movementService.CancelMovement)
}

func (h *YardHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) (*yardapp.MovementResponse, error)) {
	id, ok := h.ParseID(c, "movement")
	if !ok {
		return
	}
	m, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, m)
}

// OptimizeYardLayout godoc
// @ID           optimizeYardLayout
//
//	@Summary		Propose piece relocations
//	@Description	Proposes piece relocations
//	@Tags			yard-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	yardapp.OptimizeYardLayoutRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/ai/optimize-layout [post]
func (h *YardHandler) OptimizeYardLayout(c *gin.Context) {
	var req yardapp.OptimizeYardLayoutRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	plan, err := h.aiService.OptimizeYardLayout(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}

// SuggestLocation godoc
// @ID           suggestLocation
//
//	@Summary		Rank locations for a piece
//	@Description	Ranks locations for a piece
//	@Tags			yard-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	yardapp.SuggestLocationRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/yard/ai/suggest-location [post]
func (h *YardHandler) SuggestLocation(c *gin.Context) {
	var req yardapp.SuggestLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	suggestions, err := h.aiService.SuggestLocation(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, suggestions)
}
