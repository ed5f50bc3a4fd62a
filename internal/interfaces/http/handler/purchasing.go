package handler

import (
	"github.com/gin-gonic/gin"
	purchasingapp "github.com/precast-erp/backend/internal/application/purchasing"
)

// PurchasingHandler handles material, purchase order and receiving endpoints
type PurchasingHandler struct {
	BaseHandler
	materialService  *purchasingapp.MaterialService
	orderService     *purchasingapp.PurchaseOrderService
	receivingService *purchasingapp.ReceivingService
	aiService        *purchasingapp.PurchasingAIService
}

// NewPurchasingHandler creates a new PurchasingHandler
func NewPurchasingHandler(
	materialService *purchasingapp.MaterialService,
	orderService *purchasingapp.PurchaseOrderService,
	receivingService *purchasingapp.ReceivingService,
	aiService *purchasingapp.PurchasingAIService,
) *PurchasingHandler {
	return &PurchasingHandler{
		materialService:  materialService,
		orderService:     orderService,
		receivingService: receivingService,
		aiService:        aiService,
	}
}

// RegisterRoutes registers the purchasing routes
func (h *PurchasingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	materials := rg.Group("/materials")
	materials.GET("", h.ListMaterials)
	materials.POST("", h.CreateMaterial)
	materials.GET("/reorder-candidates", h.ListReorderCandidates)
	materials.GET("/:id", h.GetMaterial)
	materials.PUT("/:id", h.UpdateMaterial)
	materials.DELETE("/:id", h.DeleteMaterial)

	orders := rg.Group("/purchase-orders")
	orders.GET("", h.ListPurchaseOrders)
	orders.POST("", h.CreatePurchaseOrder)
	orders.GET("/:id", h.GetPurchaseOrder)
	orders.PUT("/:id", h.UpdatePurchaseOrder)
	orders.DELETE("/:id", h.DeletePurchaseOrder)
	orders.PATCH("/:id/status", h.UpdatePurchaseOrderStatus)
	orders.GET("/:id/receiving-records", h.ListReceivingRecords)
	orders.POST("/:id/receiving-records", h.CreateReceivingRecord)

	receiving := rg.Group("/receiving-records")
	receiving.GET("/:id", h.GetReceivingRecord)
	receiving.POST("/:id/reject", h.RejectReceivingRecord)

	ai := rg.Group("/purchasing/ai")
	ai.POST("/recommend-vendors", h.RecommendVendors)
	ai.POST("/forecast-demand", h.ForecastMaterialDemand)
	ai.POST("/optimize-quantities", h.OptimizeOrderQuantities)
}

// ListMaterials godoc
// @ID           listMaterials
//
//	@Summary		Return a page of materials
//	@Description	Returns a page of materials
//	@Tags			materials
//	@Produce		json
//	@Param			filter	query	purchasingapp.MaterialListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/materials [get]
func (h *PurchasingHandler) ListMaterials(c *gin.Context) {
	var filter purchasingapp.MaterialListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.materialService.ListMaterials(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// ListReorderCandidates godoc
// @ID           listReorderCandidatesPurchasing
//
//	@Summary		Return active materials at or below their reorder point
//	@Description	Returns active materials at or below their reorder point
//	@Tags			materials
//	@Produce		json
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/materials/reorder-candidates [get]
func (h *PurchasingHandler) ListReorderCandidates(c *gin.Context) {
	list, err := h.materialService.ListReorderCandidates(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// GetMaterial godoc
// @ID           getMaterial
//
//	@Summary		Return a material
//	@Description	Returns a material
//	@Tags			materials
//	@Produce		json
//	@Param			id	path	string	true	"Material ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/materials/{id} [get]
func (h *PurchasingHandler) GetMaterial(c *gin.Context) {
	id, ok := h.ParseID(c, "material")
	if !ok {
		return
	}
	material, err := h.materialService.GetMaterial(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, material)
}

// CreateMaterial godoc
// @ID           createMaterial
//
//	@Summary		Add a material
//	@Description	Adds a material
//	@Tags			materials
//	@Accept			json
//	@Produce		json
//	@Param			request	body	purchasingapp.CreateMaterialRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/materials [post]
func (h *PurchasingHandler) CreateMaterial(c *gin.Context) {
	var req purchasingapp.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	material, err := h.materialService.CreateMaterial(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, material)
}

// UpdateMaterial godoc
// @ID           updateMaterial
//
//	@Summary		Update a material
//	@Description	Updates a material
//	@Tags			materials
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Material ID"	format(uuid)
//	@Param			request	body	purchasingapp.UpdateMaterialRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/materials/{id} [put]
func (h *PurchasingHandler) UpdateMaterial(c *gin.Context) {
	id, ok := h.ParseID(c, "material")
	if !ok {
		return
	}
	var req purchasingapp.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	material, err := h.materialService.UpdateMaterial(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, material)
}

// DeleteMaterial godoc
// @ID           deleteMaterial
//
//	@Summary		Delete a material
//	@Description	Deletes a material
//	@Tags			materials
//	@Produce		json
//	@Param			id	path	string	true	"Material ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/materials/{id} [delete]
func (h *PurchasingHandler) DeleteMaterial(c *gin.Context) {
	id, ok := h.ParseID(c, "material")
	if !ok {
		return
	}
	if err := h.materialService.DeleteMaterial(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPurchaseOrders godoc
// @ID           listPurchaseOrders
//
//	@Summary		Return a page of purchase orders
//	@Description	Returns a page of purchase orders
//	@Tags			purchase-orders
//	@Produce		json
//	@Param			filter	query	purchasingapp.PurchaseOrderListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchase-orders [get]
func (h *PurchasingHandler) ListPurchaseOrders(c *gin.Context) {
	var filter purchasingapp.PurchaseOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.orderService.ListPurchaseOrders(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetPurchaseOrder godoc
// @ID           getPurchaseOrder
//
//	@Summary		Return a purchase order with its items
//	@Description	Returns a purchase order with its items
//	@Tags			purchase-orders
//	@Produce		json
//	@Param			id	path	string	true	"Purchase order ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchase-orders/{id} [get]
func (h *PurchasingHandler) GetPurchaseOrder(c *gin.Context) {
	id, ok := h.ParseID(c, "purchase order")
	if !ok {
		return
	}
	po, err := h.orderService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, po)
}

// CreatePurchaseOrder godoc
// @ID           createPurchaseOrder
//
//	@Summary		Create a draft purchase order
//	@Description	Creates a draft purchase order
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body	purchasingapp.CreatePurchaseOrderRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchase-orders [post]
func (h *PurchasingHandler) CreatePurchaseOrder(c *gin.Context) {
	var req purchasingapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	po, err := h.orderService.CreatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, po)
}

// UpdatePurchaseOrder godoc
// @ID           updatePurchaseOrder
//
//	@Summary		Update a draft purchase order
//	@Description	Updates a draft purchase order
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Purchase order ID"	format(uuid)
//	@Param			request	body	purchasingapp.UpdatePurchaseOrderRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchase-orders/{id} [put]
func (h *PurchasingHandler) UpdatePurchaseOrder(c *gin.Context) {
	id, ok := h.ParseID(c, "purchase order")
	if !ok {
		return
	}
	var req purchasingapp.UpdatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	po, err := h.orderService.UpdatePurchaseOrder(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, po)
}

// DeletePurchaseOrder godoc
// @ID           deletePurchaseOrder
//
//	@Summary		Delete a draft or cancelled purchase order
//	@Description	Deletes a draft or cancelled purchase order
//	@Tags			purchase-orders
//	@Produce		json
//	@Param			id	path	string	true	"Purchase order ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchase-orders/{id} [delete]
func (h *PurchasingHandler) DeletePurchaseOrder(c *gin.Context) {
	id, ok := h.ParseID(c, "purchase order")
	if !ok {
		return
	}
	if err := h.orderService.DeletePurchaseOrder(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UpdatePurchaseOrderStatus godoc
// @ID           updatePurchaseOrderStatus
//
//	@Summary		Move a purchase order to a new status
//	@Description	Moves a purchase order to a new status
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Purchase order ID"	format(uuid)
//	@Param			request	body	purchasingapp.UpdatePurchaseOrderStatusRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchase-orders/{id}/status [patch]
func (h *PurchasingHandler) UpdatePurchaseOrderStatus(c *gin.Context) {
	id, ok := h.ParseID(c, "purchase order")
	if !ok {
		return
	}
	var req purchasingapp.UpdatePurchaseOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	po, err := h.orderService.UpdatePurchaseOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, po)
}

// ListReceivingRecords godoc
// @ID           listReceivingRecords
//
//	@Summary		Return the receipts of a purchase order
//	@Description	Returns the receipts of a purchase order
//	@Tags			purchase-orders
//	@Produce		json
//	@Param			id	path	string	true	"Purchase order ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchase-orders/{id}/receiving-records [get]
func (h *PurchasingHandler) ListReceivingRecords(c *gin.Context) {
	id, ok := h.ParseID(c, "purchase order")
	if !ok {
		return
	}
	records, err := h.receivingService.ListReceivingRecords(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// CreateReceivingRecord godoc
// @ID           createReceivingRecord
//
//	@Summary		Receive goods against a purchase order
//	@Description	Receives goods against a purchase order
//	@Tags			purchase-orders
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Purchase order ID"	format(uuid)
//	@Param			request	body	purchasingapp.CreateReceivingRecordRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchase-orders/{id}/receiving-records [post]
func (h *PurchasingHandler) CreateReceivingRecord(c *gin.Context) {
	id, ok := h.ParseID(c, "purchase order")
	if !ok {
		return
	}
	var req purchasingapp.CreateReceivingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.ReceivedBy = actor(c, req.ReceivedBy)
	record, err := h.receivingService.CreateReceivingRecord(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// GetReceivingRecord godoc
// @ID           getReceivingRecord
//
//	@Summary		Return a receiving record
//	@Description	Returns a receiving record
//	@Tags			receiving-records
//	@Produce		json
//	@Param			id	path	string	true	"Receiving record ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/receiving-records/{id} [get]
func (h *PurchasingHandler) GetReceivingRecord(c *gin.Context) {
	id, ok := h.ParseID(c, "receiving record")
	if !ok {
		return
	}
	record, err := h.receivingService.GetReceivingRecord(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// RejectReceivingRecord godoc
// @ID           rejectReceivingRecord
//
//	@Summary		Void a receipt
//	@Description	Voids a receipt and reverses its quantities
//	@Tags			receiving-records
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Receiving record ID"	format(uuid)
//	@Param			request	body	purchasingapp.RejectReceivingRecordRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/receiving-records/{id}/reject [post]
func (h *PurchasingHandler) RejectReceivingRecord(c *gin.Context) {
	id, ok := h.ParseID(c, "receiving record")
	if !ok {
		return
	}
	var req purchasingapp.RejectReceivingRecordRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	record, err := h.receivingService.RejectReceivingRecord(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, record)
}

// RecommendVendors godoc
// @ID           recommendVendorsPurchasing
//
//	@Summary		Rank vendors for a set of materials
//	@Description	Ranks vendors for a set of materials
//	@Tags			purchasing-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	purchasingapp.RecommendVendorsRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchasing/ai/recommend-vendors [post]
func (h *PurchasingHandler) RecommendVendors(c *gin.Context) {
	var req purchasingapp.RecommendVendorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	vendors, err := h.aiService.RecommendVendors(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendors)
}

// ForecastMaterialDemand godoc
// @ID           forecastMaterialDemand
//
//	@Summary		Predict material consumption
//	@Description	Predicts material consumption
//	@Tags			purchasing-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	purchasingapp.ForecastMaterialDemandRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchasing/ai/forecast-demand [post]
func (h *PurchasingHandler) ForecastMaterialDemand(c *gin.Context) {
	var req purchasingapp.ForecastMaterialDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	forecast, err := h.aiService.ForecastMaterialDemand(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, forecast)
}

// OptimizeOrderQuantities godoc
// @ID           optimizeOrderQuantitiesPurchasing
//
//	@Summary		Suggest order sizes
//	@Description	Suggests order sizes
//	@Tags			purchasing-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	purchasingapp.OptimizeOrderQuantitiesRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/purchasing/ai/optimize-quantities [post]
func (h *PurchasingHandler) OptimizeOrderQuantities(c *gin.Context) {
	var req purchasingapp.OptimizeOrderQuantitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	plan, err := h.aiService.OptimizeOrderQuantities(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}
