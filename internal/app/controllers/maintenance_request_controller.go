package controllers

import (
	"github.com/gin-gonic/gin"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/error/response"
)

// InterfaceMaintenanceRequestController defines the maintenance request controller interface
type InterfaceMaintenanceRequestController interface {
	GetMaintenanceRequests()
	GetMaintenanceRequest()
	CreateMaintenanceRequest()
	UpdateMaintenanceRequest()
	DeleteMaintenanceRequest()
}

// MaintenanceRequestController handles maintenance request requests
type MaintenanceRequestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// MaintenanceRequestRequest is the create/update body
type MaintenanceRequestRequest struct {
	MaintenanceRequest models.MaintenanceRequestParams `json:"maintenance_request"`
}

// NewMaintenanceRequestController creates a maintenance request controller
func NewMaintenanceRequestController(ctx *gin.Context, container *container.ServiceContainer) *MaintenanceRequestController {
	return &MaintenanceRequestController{
		Ctx:       ctx,
		Container: container,
	}
}

func (c *MaintenanceRequestController) service() services.InterfaceMaintenanceRequestService {
	return c.Container.GetService("maintenance_request").(services.InterfaceMaintenanceRequestService)
}

// 1. GetMaintenanceRequests lists requests with their tenant and unit
// @Summary      List maintenance requests
// @Description  Newest first, optionally filtered by exact status and priority.
// @Tags         MaintenanceRequests
// @Produce      json
// @Param        status query string false "Status" Enums(new, in_progress, resolved, closed)
// @Param        priority query string false "Priority" Enums(low, medium, high, urgent)
// @Success      200  {array}   models.MaintenanceRequest
// @Failure      500  {object}  response.ErrorResponse
// @Router       /maintenance_requests [get]
func (c *MaintenanceRequestController) GetMaintenanceRequests() {
	filter := services.MaintenanceRequestFilter{
		Status:   c.Ctx.Query("status"),
		Priority: c.Ctx.Query("priority"),
	}

	requests, err := c.service().GetMaintenanceRequests(c.Ctx.Request.Context(), filter)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, requests)
}

// 2. GetMaintenanceRequest returns one request
// @Summary      Get a maintenance request
// @Tags         MaintenanceRequests
// @Produce      json
// @Param        id path int true "Request ID" example:"1"
// @Success      200  {object}  models.MaintenanceRequest
// @Failure      404  {object}  response.ErrorResponse
// @Router       /maintenance_requests/{id} [get]
func (c *MaintenanceRequestController) GetMaintenanceRequest() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	request, err := c.service().GetMaintenanceRequestByID(c.Ctx.Request.Context(), id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, request)
}

// 3. CreateMaintenanceRequest opens a request. Status defaults to "new".
// @Summary      Create a maintenance request
// @Tags         MaintenanceRequests
// @Accept       json
// @Produce      json
// @Param        request body MaintenanceRequestRequest true "Request attributes"
// @Success      201  {object}  models.MaintenanceRequest
// @Failure      400  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Router       /maintenance_requests [post]
func (c *MaintenanceRequestController) CreateMaintenanceRequest() {
	attrs, ok := bindRoot(c.Ctx, "maintenance_request")
	if !ok {
		return
	}

	var params models.MaintenanceRequestParams
	if !decodeParams(c.Ctx, attrs, &params) {
		return
	}

	request, err := c.service().CreateMaintenanceRequest(c.Ctx.Request.Context(), params)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, request)
}

// 4. UpdateMaintenanceRequest changes the attributes present in the body
// @Summary      Update a maintenance request
// @Tags         MaintenanceRequests
// @Accept       json
// @Produce      json
// @Param        id path int true "Request ID" example:"1"
// @Param        request body MaintenanceRequestRequest true "Request attributes"
// @Success      200  {object}  models.MaintenanceRequest
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Router       /maintenance_requests/{id} [patch]
func (c *MaintenanceRequestController) UpdateMaintenanceRequest() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	attrs, ok := bindRoot(c.Ctx, "maintenance_request")
	if !ok {
		return
	}

	request, err := c.service().UpdateMaintenanceRequest(c.Ctx.Request.Context(), id, attrs)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, request)
}

// 5. DeleteMaintenanceRequest deletes a request
// @Summary      Delete a maintenance request
// @Tags         MaintenanceRequests
// @Param        id path int true "Request ID" example:"1"
// @Success      204
// @Failure      404  {object}  response.ErrorResponse
// @Router       /maintenance_requests/{id} [delete]
func (c *MaintenanceRequestController) DeleteMaintenanceRequest() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	if err := c.service().DeleteMaintenanceRequest(c.Ctx.Request.Context(), id); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.NoContent(c.Ctx)
}

// HandleMaintenanceRequestFunc returns a gin.HandlerFunc for the specified method
func HandleMaintenanceRequestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMaintenanceRequestController(ctx, container)

		switch method {
		case "getMaintenanceRequests":
			controller.GetMaintenanceRequests()
		case "getMaintenanceRequest":
			controller.GetMaintenanceRequest()
		case "createMaintenanceRequest":
			controller.CreateMaintenanceRequest()
		case "updateMaintenanceRequest":
			controller.UpdateMaintenanceRequest()
		case "deleteMaintenanceRequest":
			controller.DeleteMaintenanceRequest()
		default:
			invalidMethod(ctx, method)
		}
	}
}
