package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	shippingapp "github.com/precast-erp/backend/internal/application/shipping"
	"github.com/precast-erp/backend/internal/infrastructure/document"
)

// ShippingHandler handles shipment endpoints
type ShippingHandler struct {
	BaseHandler
	shipmentService *shippingapp.ShipmentService
	aiService       *shippingapp.ShippingAIService
}

// NewShippingHandler creates a new ShippingHandler
func NewShippingHandler(shipmentService *shippingapp.ShipmentService, aiService *shippingapp.ShippingAIService) *ShippingHandler {
	return &ShippingHandler{shipmentService: shipmentService, aiService: aiService}
}

// RegisterRoutes registers the shipping routes
func (h *ShippingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	shipments := rg.Group("/shipments")
	shipments.GET("", h.ListShipments)
	shipments.POST("", h.CreateShipment)
	shipments.GET("/:id", h.GetShipment)
	shipments.PUT("/:id", h.UpdateShipment)
	shipments.DELETE("/:id", h.DeleteShipment)
	shipments.POST("/:id/load", h.StartLoading)
	shipments.POST("/:id/unload", h.ReturnToPlanning)
	shipments.POST("/:id/dispatch", h.Dispatch)
	shipments.POST("/:id/deliver", h.ConfirmDelivery)
	shipments.POST("/:id/cancel", h.CancelShipment)
	shipments.GET("/:id/bill-of-lading", h.BillOfLading)

	ai := rg.Group("/shipping/ai")
	ai.POST("/optimize-route", h.OptimizeRoute)
	ai.POST("/predict-delivery-time", h.PredictDeliveryTime)
	ai.POST("/optimize-load", h.OptimizeLoad)
}

// ListShipments godoc
// @ID           listShipments
//
//	@Summary		Return a page of shipments
//	@Description	Returns a page of shipments
//	@Tags			shipments
//	@Produce		json
//	@Param			filter	query	shippingapp.ShipmentListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments [get]
func (h *ShippingHandler) ListShipments(c *gin.Context) {
	var filter shippingapp.ShipmentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.shipmentService.ListShipments(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetShipment godoc
// @ID           getShipment
//
//	@Summary		Return a shipment
//	@Description	Returns a shipment
//	@Tags			shipments
//	@Produce		json
//	@Param			id	path	string	true	"Shipment ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id} [get]
func (h *ShippingHandler) GetShipment(c *gin.Context) {
	id, ok := h.ParseID(c, "shipment")
	if !ok {
		return
	}
	sh, err := h.shipmentService.GetShipment(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sh)
}

// CreateShipment godoc
// @ID           createShipment
//
//	@Summary		Plan a shipment
//	@Description	Plans a shipment
//	@Tags			shipments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	shippingapp.CreateShipmentRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments [post]
func (h *ShippingHandler) CreateShipment(c *gin.Context) {
	var req shippingapp.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	sh, err := h.shipmentService.CreateShipment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sh)
}

// UpdateShipment godoc
// @ID           updateShipment
//
//	@Summary		Update a shipment that has not been dispatched
//	@Description	Updates a shipment that has not been dispatched
//	@Tags			shipments
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Shipment ID"	format(uuid)
//	@Param			request	body	shippingapp.UpdateShipmentRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id} [put]
func (h *ShippingHandler) UpdateShipment(c *gin.Context) {
	id, ok := h.ParseID(c, "shipment")
	if !ok {
		return
	}
	var req shippingapp.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	sh, err := h.shipmentService.UpdateShipment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sh)
}

// DeleteShipment godoc
// @ID           deleteShipment
//
//	@Summary		Delete a planned or cancelled shipment
//	@Description	Deletes a planned or cancelled shipment
//	@Tags			shipments
//	@Produce		json
//	@Param			id	path	string	true	"Shipment ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id} [delete]
func (h *ShippingHandler) DeleteShipment(c *gin.Context) {
	id, ok := h.ParseID(c, "shipment")
	if !ok {
		return
	}
	if err := h.shipmentService.DeleteShipment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// StartLoading godoc
// @ID           startLoadingShipping
//
//	@Summary		Start loading a shipment
//	@Description	Starts loading a shipment
//	@Tags			shipments
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id}/load [post]
func (h *ShippingHandler) StartLoading(c *gin.Context) {
	h.step(c, h.shipmentService.StartLoading)
}

// ReturnToPlanning godoc
// @ID           returnToPlanningShipping
//
//	@Summary		Take a loading shipment back to planning
//	@Description	Takes a loading shipment back to planning
//	@Tags			shipments
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id}/unload [post]
func (h *ShippingHandler) ReturnToPlanning(c *gin.Context) {
	h.step(c, h.shipmentService.ReturnToPlanning)
}

// Dispatch godoc
// @ID           dispatchShipping
//
//	@Summary		Dispatch a loaded shipment
//	@Description	Dispatches a loaded shipment
//	@Tags			shipments
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id}/dispatch [post]
func (h *ShippingHandler) Dispatch(c *gin.Context) {
	h.step(c, h.shipmentService.Dispatch)
}

// CancelShipment godoc
// @ID           cancelShipment
//
//	@Summary		Cancel a shipment
//	@Description	Cancels a shipment
//	@Tags			shipments
//	@Produce		json
//	@Param			id	path	string	true	"Resource ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id}/cancel [post]
func (h *ShippingHandler) CancelShipment(c *gin.Context) {
	h.step(c, h.shipmentService.CancelShipment)
}

// ConfirmDelivery godoc
// @ID           confirmDeliveryShipping
//
//	@Summary		Confirm delivery of a shipment
//	@Description	Confirms delivery of a shipment
//	@Tags			shipments
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Shipment ID"	format(uuid)
//	@Param			request	body	shippingapp.ConfirmDeliveryRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id}/deliver [post]
func (h *ShippingHandler) ConfirmDelivery(c *gin.Context) {
	id, ok := h.ParseID(c, "shipment")
	if !ok {
		return
	}
	var req shippingapp.ConfirmDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	sh, err := h.shipmentService.ConfirmDelivery(c.Request.Context(), id, req.ReceivedBy)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sh)
}

func (h *ShippingHandler) step(c *gin.Context, fn func(context.Context, uuid.UUID) (*shippingapp.ShipmentResponse, error)) {
	id, ok := h.ParseID(c, "shipment")
	if !ok {
		return
	}
	sh, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sh)
}

// BillOfLading godoc
// @ID           billOfLadingShipping
//
//	@Summary		Download the shipment's bill of lading
//	@Description	Downloads the shipment's bill of lading
//	@Tags			shipments
//	@Produce		application/pdf
//	@Param			id	path	string	true	"Shipment ID"	format(uuid)
//	@Success		200	{file}	binary
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipments/{id}/bill-of-lading [get]
func (h *ShippingHandler) BillOfLading(c *gin.Context) {
	id, ok := h.ParseID(c, "shipment")
	if !ok {
		return
	}
	data, err := h.shipmentService.BillOfLading(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, exportFilename("bill-of-lading", "pdf"), document.ContentTypePDF, data)
}

// OptimizeRoute godoc
// @ID           optimizeRouteShipping
//
//	@Summary		Sequence deliveries
//	@Description	Sequences deliveries
//	@Tags			shipping-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	shippingapp.OptimizeRouteRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipping/ai/optimize-route [post]
func (h *ShippingHandler) OptimizeRoute(c *gin.Context) {
	var req shippingapp.OptimizeRouteRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	plan, err := h.aiService.OptimizeRoute(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}

// PredictDeliveryTime godoc
// @ID           predictDeliveryTimeShipping
//
//	@Summary		Estimate a shipment's arrival
//	@Description	Estimates a shipment's arrival
//	@Tags			shipping-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	shippingapp.PredictDeliveryTimeRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipping/ai/predict-delivery-time [post]
func (h *ShippingHandler) PredictDeliveryTime(c *gin.Context) {
	var req shippingapp.PredictDeliveryTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	estimate, err := h.aiService.PredictDeliveryTime(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, estimate)
}

// OptimizeLoad godoc
// @ID           optimizeLoadShipping
//
//	@Summary		Arrange a shipment's load
//	@Description	Arranges a shipment's load
//	@Tags			shipping-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	shippingapp.OptimizeLoadRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/shipping/ai/optimize-load [post]
func (h *ShippingHandler) OptimizeLoad(c *gin.Context) {
	var req shippingapp.OptimizeLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	plan, err := h.aiService.OptimizeLoad(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}
