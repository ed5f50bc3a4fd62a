package handler

import (
	"github.com/gin-gonic/gin"
	hrapp "github.com/precast-erp/backend/internal/application/hr"
	"github.com/precast-erp/backend/internal/infrastructure/export"
)

// HRHandler handles employee, leave, timesheet and HR analysis endpoints
type HRHandler struct {
	BaseHandler
	employeeService  *hrapp.EmployeeService
	leaveService     *hrapp.LeaveService
	timesheetService *hrapp.TimesheetService
	aiService        *hrapp.HRAIService
}

// NewHRHandler creates a new HRHandler
func NewHRHandler(
	employeeService *hrapp.EmployeeService,
	leaveService *hrapp.LeaveService,
	timesheetService *hrapp.TimesheetService,
	aiService *hrapp.HRAIService,
) *HRHandler {
	return &HRHandler{
		employeeService:  employeeService,
		leaveService:     leaveService,
		timesheetService: timesheetService,
		aiService:        aiService,
	}
}

// RegisterRoutes registers the HR routes
func (h *HRHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	employees.GET("", h.ListEmployees)
	employees.POST("", h.CreateEmployee)
	employees.GET("/:id", h.GetEmployee)
	employees.PUT("/:id", h.UpdateEmployee)
	employees.DELETE("/:id", h.DeleteEmployee)
	employees.GET("/:id/leave-balances", h.GetLeaveBalances)

	leave := rg.Group("/leave-requests")
	leave.GET("", h.ListLeaveRequests)
	leave.POST("", h.RequestLeave)
	leave.GET("/:id", h.GetLeaveRequest)
	leave.POST("/:id/approve", h.ApproveLeave)
	leave.POST("/:id/reject", h.RejectLeave)
	leave.POST("/:id/cancel", h.CancelLeave)

	timesheets := rg.Group("/timesheets")
	timesheets.GET("", h.ListTimesheets)
	timesheets.POST("", h.CreateTimesheet)
	timesheets.GET("/export", h.ExportTimesheets)
	timesheets.GET("/:id", h.GetTimesheet)
	timesheets.PUT("/:id", h.UpdateTimesheet)
	timesheets.DELETE("/:id", h.DeleteTimesheet)
	timesheets.POST("/:id/submit", h.SubmitTimesheet)
	timesheets.POST("/:id/approve", h.ApproveTimesheet)
	timesheets.POST("/:id/reject", h.RejectTimesheet)
	timesheets.POST("/:id/reopen", h.ReopenTimesheet)

	ai := rg.Group("/hr/ai")
	ai.POST("/predict-staffing", h.PredictStaffing)
	ai.POST("/analyze-attendance", h.AnalyzeAttendance)
}

// ListEmployees godoc
// @ID           listEmployees
//
//	@Summary		Return a page of employees
//	@Description	Returns a page of employees
//	@Tags			employees
//	@Produce		json
//	@Param			filter	query	hrapp.EmployeeListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/employees [get]
func (h *HRHandler) ListEmployees(c *gin.Context) {
	var filter hrapp.EmployeeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.employeeService.ListEmployees(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetEmployee godoc
// @ID           getEmployee
//
//	@Summary		Return an employee
//	@Description	Returns an employee
//	@Tags			employees
//	@Produce		json
//	@Param			id	path	string	true	"Employee ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/employees/{id} [get]
func (h *HRHandler) GetEmployee(c *gin.Context) {
	id, ok := h.ParseID(c, "employee")
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// CreateEmployee godoc
// @ID           createEmployee
//
//	@Summary		Record a new employee
//	@Description	Records a new employee
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body	hrapp.CreateEmployeeRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/employees [post]
func (h *HRHandler) CreateEmployee(c *gin.Context) {
	var req hrapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// UpdateEmployee godoc
// @ID           updateEmployee
//
//	@Summary		Update an employee
//	@Description	Updates an employee
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Employee ID"	format(uuid)
//	@Param			request	body	hrapp.UpdateEmployeeRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/employees/{id} [put]
func (h *HRHandler) UpdateEmployee(c *gin.Context) {
	id, ok := h.ParseID(c, "employee")
	if !ok {
		return
	}
	var req hrapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// DeleteEmployee godoc
// @ID           deleteEmployee
//
//	@Summary		Delete an employee
//	@Description	Deletes an employee
//	@Tags			employees
//	@Produce		json
//	@Param			id	path	string	true	"Employee ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/employees/{id} [delete]
func (h *HRHandler) DeleteEmployee(c *gin.Context) {
	id, ok := h.ParseID(c, "employee")
	if !ok {
		return
	}
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetLeaveBalances godoc
// @ID           getLeaveBalances
//
//	@Summary		Return an employee's leave balances
//	@Description	Returns an employee's leave balances for a year, the current year by default
//	@Tags			employees
//	@Produce		json
//	@Param			id	path	string	true	"Employee ID"	format(uuid)
//	@Param			year	query	int	false	"Year"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/employees/{id}/leave-balances [get]
func (h *HRHandler) GetLeaveBalances(c *gin.Context) {
	id, ok := h.ParseID(c, "employee")
	if !ok {
		return
	}
	year, ok := h.QueryInt(c, "year", 0)
	if !ok {
		return
	}
	balances, err := h.leaveService.GetLeaveBalances(c.Request.Context(), id, year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, balances)
}

// ListLeaveRequests godoc
// @ID           listLeaveRequests
//
//	@Summary		Return a page of leave requests
//	@Description	Returns a page of leave requests
//	@Tags			leave-requests
//	@Produce		json
//	@Param			filter	query	hrapp.LeaveRequestListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/leave-requests [get]
func (h *HRHandler) ListLeaveRequests(c *gin.Context) {
	var filter hrapp.LeaveRequestListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.leaveService.ListLeaveRequests(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetLeaveRequest godoc
// @ID           getLeaveRequest
//
//	@Summary		Return a leave request
//	@Description	Returns a leave request
//	@Tags			leave-requests
//	@Produce		json
//	@Param			id	path	string	true	"Leave request ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/leave-requests/{id} [get]
func (h *HRHandler) GetLeaveRequest(c *gin.Context) {
	id, ok := h.ParseID(c, "leave request")
	if !ok {
		return
	}
	request, err := h.leaveService.GetLeaveRequest(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// RequestLeave godoc
// @ID           requestLeave
//
//	@Summary		File a leave request
//	@Description	Files a leave request
//	@Tags			leave-requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body	hrapp.CreateLeaveRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/leave-requests [post]
func (h *HRHandler) RequestLeave(c *gin.Context) {
	var req hrapp.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	request, err := h.leaveService.RequestLeave(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, request)
}

// ApproveLeave godoc
// @ID           approveLeave
//
//	@Summary		Grant a pending leave request
//	@Description	Grants a pending leave request
//	@Tags			leave-requests
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Leave request ID"	format(uuid)
//	@Param			request	body	hrapp.LeaveDecisionRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/leave-requests/{id}/approve [post]
func (h *HRHandler) ApproveLeave(c *gin.Context) {
	id, ok := h.ParseID(c, "leave request")
	if !ok {
		return
	}
	var req hrapp.LeaveDecisionRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	request, err := h.leaveService.ApproveLeaveRequest(c.Request.Context(), id, actor(c, req.ApprovedBy))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// RejectLeave godoc
// @ID           rejectLeave
//
//	@Summary		Decline a pending leave request
//	@Description	Declines a pending leave request
//	@Tags			leave-requests
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Leave request ID"	format(uuid)
//	@Param			request	body	hrapp.LeaveDecisionRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/leave-requests/{id}/reject [post]
func (h *HRHandler) RejectLeave(c *gin.Context) {
	id, ok := h.ParseID(c, "leave request")
	if !ok {
		return
	}
	var req hrapp.LeaveDecisionRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	request, err := h.leaveService.RejectLeaveRequest(c.Request.Context(), id, actor(c, req.ApprovedBy), req.Reason)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// CancelLeave godoc
// @ID           cancelLeave
//
//	@Summary		Withdraw a pending leave request
//	@Description	Withdraws a pending leave request
//	@Tags			leave-requests
//	@Produce		json
//	@Param			id	path	string	true	"Leave request ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/leave-requests/{id}/cancel [post]
func (h *HRHandler) CancelLeave(c *gin.Context) {
	id, ok := h.ParseID(c, "leave request")
	if !ok {
		return
	}
	request, err := h.leaveService.CancelLeaveRequest(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, request)
}

// ListTimesheets godoc
// @ID           listTimesheets
//
//	@Summary		Return a page of timesheets
//	@Description	Returns a page of timesheets
//	@Tags			timesheets
//	@Produce		json
//	@Param			filter	query	hrapp.TimesheetListFilter	false	"List filter"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets [get]
func (h *HRHandler) ListTimesheets(c *gin.Context) {
	var filter hrapp.TimesheetListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.ApplyDefaults()

	list, total, err := h.timesheetService.ListTimesheets(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetTimesheet godoc
// @ID           getTimesheet
//
//	@Summary		Return a timesheet
//	@Description	Returns a timesheet
//	@Tags			timesheets
//	@Produce		json
//	@Param			id	path	string	true	"Timesheet ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets/{id} [get]
func (h *HRHandler) GetTimesheet(c *gin.Context) {
	id, ok := h.ParseID(c, "timesheet")
	if !ok {
		return
	}
	timesheet, err := h.timesheetService.GetTimesheet(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, timesheet)
}

// CreateTimesheet godoc
// @ID           createTimesheet
//
//	@Summary		Open a timesheet
//	@Description	Opens a timesheet
//	@Tags			timesheets
//	@Accept			json
//	@Produce		json
//	@Param			request	body	hrapp.CreateTimesheetRequest	true	"Request body"
//	@Success		201	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets [post]
func (h *HRHandler) CreateTimesheet(c *gin.Context) {
	var req hrapp.CreateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	timesheet, err := h.timesheetService.CreateTimesheet(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, timesheet)
}

// UpdateTimesheet godoc
// @ID           updateTimesheet
//
//	@Summary		Update a draft timesheet
//	@Description	Updates a draft timesheet
//	@Tags			timesheets
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Timesheet ID"	format(uuid)
//	@Param			request	body	hrapp.UpdateTimesheetRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets/{id} [put]
func (h *HRHandler) UpdateTimesheet(c *gin.Context) {
	id, ok := h.ParseID(c, "timesheet")
	if !ok {
		return
	}
	var req hrapp.UpdateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	timesheet, err := h.timesheetService.UpdateTimesheet(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, timesheet)
}

// DeleteTimesheet godoc
// @ID           deleteTimesheet
//
//	@Summary		Delete a timesheet
//	@Description	Deletes a timesheet
//	@Tags			timesheets
//	@Produce		json
//	@Param			id	path	string	true	"Timesheet ID"	format(uuid)
//	@Success		204
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets/{id} [delete]
func (h *HRHandler) DeleteTimesheet(c *gin.Context) {
	id, ok := h.ParseID(c, "timesheet")
	if !ok {
		return
	}
	if err := h.timesheetService.DeleteTimesheet(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SubmitTimesheet godoc
// @ID           submitTimesheet
//
//	@Summary		Send a timesheet for approval
//	@Description	Sends a timesheet for approval
//	@Tags			timesheets
//	@Produce		json
//	@Param			id	path	string	true	"Timesheet ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets/{id}/submit [post]
func (h *HRHandler) SubmitTimesheet(c *gin.Context) {
	id, ok := h.ParseID(c, "timesheet")
	if !ok {
		return
	}
	timesheet, err := h.timesheetService.SubmitTimesheet(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, timesheet)
}

// ApproveTimesheet godoc
// @ID           approveTimesheet
//
//	@Summary		Approve a submitted timesheet
//	@Description	Approves a submitted timesheet
//	@Tags			timesheets
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Timesheet ID"	format(uuid)
//	@Param			request	body	hrapp.TimesheetDecisionRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets/{id}/approve [post]
func (h *HRHandler) ApproveTimesheet(c *gin.Context) {
	id, ok := h.ParseID(c, "timesheet")
	if !ok {
		return
	}
	var req hrapp.TimesheetDecisionRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	timesheet, err := h.timesheetService.ApproveTimesheet(c.Request.Context(), id, actor(c, req.ApprovedBy))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, timesheet)
}

// RejectTimesheet godoc
// @ID           rejectTimesheet
//
//	@Summary		Reject a submitted timesheet
//	@Description	Rejects a submitted timesheet
//	@Tags			timesheets
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Timesheet ID"	format(uuid)
//	@Param			request	body	hrapp.TimesheetDecisionRequest	false	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets/{id}/reject [post]
func (h *HRHandler) RejectTimesheet(c *gin.Context) {
	id, ok := h.ParseID(c, "timesheet")
	if !ok {
		return
	}
	var req hrapp.TimesheetDecisionRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}
	timesheet, err := h.timesheetService.RejectTimesheet(c.Request.Context(), id, actor(c, req.ApprovedBy))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, timesheet)
}

// ReopenTimesheet godoc
// @ID           reopenTimesheet
//
//	@Summary		Return a rejected timesheet to draft
//	@Description	Returns a rejected timesheet to draft
//	@Tags			timesheets
//	@Produce		json
//	@Param			id	path	string	true	"Timesheet ID"	format(uuid)
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		404	{object}	dto.Response
//	@Failure		422	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets/{id}/reopen [post]
func (h *HRHandler) ReopenTimesheet(c *gin.Context) {
	id, ok := h.ParseID(c, "timesheet")
	if !ok {
		return
	}
	timesheet, err := h.timesheetService.ReopenTimesheet(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, timesheet)
}

// ExportTimesheets godoc
// @ID           exportTimesheets
//
//	@Summary		Download the filtered timesheets as XLSX
//	@Description	Downloads the filtered timesheets as XLSX
//	@Tags			timesheets
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			filter	query	hrapp.TimesheetListFilter	false	"List filter"
//	@Success		200	{file}	binary
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/timesheets/export [get]
func (h *HRHandler) ExportTimesheets(c *gin.Context) {
	var filter hrapp.TimesheetListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	data, err := h.timesheetService.ExportTimesheets(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Attachment(c, exportFilename("timesheets", "xlsx"), export.ContentTypeXLSX, data)
}

// PredictStaffing godoc
// @ID           predictStaffingHR
//
//	@Summary		Forecast department headcount
//	@Description	Forecasts department headcount
//	@Tags			hr-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	hrapp.PredictStaffingRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/hr/ai/predict-staffing [post]
func (h *HRHandler) PredictStaffing(c *gin.Context) {
	var req hrapp.PredictStaffingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	forecast, err := h.aiService.PredictStaffing(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, forecast)
}

// AnalyzeAttendance godoc
// @ID           analyzeAttendanceHR
//
//	@Summary		Find attendance patterns
//	@Description	Finds attendance patterns
//	@Tags			hr-ai
//	@Accept			json
//	@Produce		json
//	@Param			request	body	hrapp.AnalyzeAttendanceRequest	true	"Request body"
//	@Success		200	{object}	dto.Response
//	@Failure		400	{object}	dto.Response
//	@Failure		401	{object}	dto.Response
//	@Failure		500	{object}	dto.Response
//	@Failure		502	{object}	dto.Response
//	@Security		BearerAuth
//	@Router			/hr/ai/analyze-attendance [post]
func (h *HRHandler) AnalyzeAttendance(c *gin.Context) {
	var req hrapp.AnalyzeAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	analysis, err := h.aiService.AnalyzeAttendance(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, analysis)
}
