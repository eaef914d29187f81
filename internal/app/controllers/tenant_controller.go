package controllers

import (
	"github.com/gin-gonic/gin"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/error/response"
)

// InterfaceTenantController defines the tenant controller interface
type InterfaceTenantController interface {
	GetTenants()
	GetTenant()
	CreateTenant()
	UpdateTenant()
	DeleteTenant()
}

// TenantController handles tenant requests
type TenantController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// TenantRequest is the create/update body
type TenantRequest struct {
	Tenant models.TenantParams `json:"tenant"`
}

// NewTenantController creates a tenant controller
func NewTenantController(ctx *gin.Context, container *container.ServiceContainer) *TenantController {
	return &TenantController{
		Ctx:       ctx,
		Container: container,
	}
}

func (c *TenantController) service() services.InterfaceTenantService {
	return c.Container.GetService("tenant").(services.InterfaceTenantService)
}

// 1. GetTenants lists tenants
// @Summary      List tenants
// @Description  Newest first. q matches first name, last name or email.
// @Tags         Tenants
// @Produce      json
// @Param        q query string false "Search text" example:"Patel"
// @Success      200  {array}   models.Tenant
// @Failure      500  {object}  response.ErrorResponse
// @Router       /tenants [get]
func (c *TenantController) GetTenants() {
	tenants, err := c.service().GetTenants(c.Ctx.Request.Context(), c.Ctx.Query("q"))
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenants)
}

// 2. GetTenant returns one tenant
// @Summary      Get a tenant
// @Tags         Tenants
// @Produce      json
// @Param        id path int true "Tenant ID" example:"1"
// @Success      200  {object}  models.Tenant
// @Failure      404  {object}  response.ErrorResponse
// @Router       /tenants/{id} [get]
func (c *TenantController) GetTenant() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	tenant, err := c.service().GetTenantByID(c.Ctx.Request.Context(), id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// 3. CreateTenant creates a tenant
// @Summary      Create a tenant
// @Tags         Tenants
// @Accept       json
// @Produce      json
// @Param        request body TenantRequest true "Tenant attributes"
// @Success      201  {object}  models.Tenant
// @Failure      400  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Router       /tenants [post]
func (c *TenantController) CreateTenant() {
	attrs, ok := bindRoot(c.Ctx, "tenant")
	if !ok {
		return
	}

	var params models.TenantParams
	if !decodeParams(c.Ctx, attrs, &params) {
		return
	}

	tenant, err := c.service().CreateTenant(c.Ctx.Request.Context(), params)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, tenant)
}

// 4. UpdateTenant changes the attributes present in the body
// @Summary      Update a tenant
// @Description  Only the attributes present are changed; null clears one.
// @Tags         Tenants
// @Accept       json
// @Produce      json
// @Param        id path int true "Tenant ID" example:"1"
// @Param        request body TenantRequest true "Tenant attributes"
// @Success      200  {object}  models.Tenant
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Router       /tenants/{id} [patch]
func (c *TenantController) UpdateTenant() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	attrs, ok := bindRoot(c.Ctx, "tenant")
	if !ok {
		return
	}

	tenant, err := c.service().UpdateTenant(c.Ctx.Request.Context(), id, attrs)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, tenant)
}

// 5. DeleteTenant deletes a tenant with its requests and payments
// @Summary      Delete a tenant
// @Tags         Tenants
// @Param        id path int true "Tenant ID" example:"1"
// @Success      204
// @Failure      404  {object}  response.ErrorResponse
// @Router       /tenants/{id} [delete]
func (c *TenantController) DeleteTenant() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	if err := c.service().DeleteTenant(c.Ctx.Request.Context(), id); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.NoContent(c.Ctx)
}

// HandleTenantFunc returns a gin.HandlerFunc for the specified method
func HandleTenantFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenantController(ctx, container)

		switch method {
		case "getTenants":
			controller.GetTenants()
		case "getTenant":
			controller.GetTenant()
		case "createTenant":
			controller.CreateTenant()
		case "updateTenant":
			controller.UpdateTenant()
		case "deleteTenant":
			controller.DeleteTenant()
		default:
			invalidMethod(ctx, method)
		}
	}
}
