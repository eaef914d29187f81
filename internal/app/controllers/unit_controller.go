package controllers

import (
	"github.com/gin-gonic/gin"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/error/response"
)

// InterfaceUnitController defines the unit controller interface
type InterfaceUnitController interface {
	GetUnits()
	GetUnit()
	CreateUnit()
	UpdateUnit()
	DeleteUnit()
}

// UnitController handles unit requests
type UnitController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// UnitRequest is the create/update body
type UnitRequest struct {
	Unit models.UnitParams `json:"unit"`
}

// NewUnitController creates a unit controller
func NewUnitController(ctx *gin.Context, container *container.ServiceContainer) *UnitController {
	return &UnitController{
		Ctx:       ctx,
		Container: container,
	}
}

func (c *UnitController) service() services.InterfaceUnitService {
	return c.Container.GetService("unit").(services.InterfaceUnitService)
}

// 1. GetUnits lists units
// @Summary      List units
// @Description  Newest first. q matches property name or unit number.
// @Tags         Units
// @Produce      json
// @Param        q query string false "Search text" example:"Maple"
// @Success      200  {array}   models.Unit
// @Failure      500  {object}  response.ErrorResponse
// @Router       /units [get]
func (c *UnitController) GetUnits() {
	units, err := c.service().GetUnits(c.Ctx.Request.Context(), c.Ctx.Query("q"))
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, units)
}

// 2. GetUnit returns one unit
// @Summary      Get a unit
// @Tags         Units
// @Produce      json
// @Param        id path int true "Unit ID" example:"1"
// @Success      200  {object}  models.Unit
// @Failure      404  {object}  response.ErrorResponse
// @Router       /units/{id} [get]
func (c *UnitController) GetUnit() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	unit, err := c.service().GetUnitByID(c.Ctx.Request.Context(), id)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, unit)
}

// 3. CreateUnit creates a unit
// @Summary      Create a unit
// @Tags         Units
// @Accept       json
// @Produce      json
// @Param        request body UnitRequest true "Unit attributes"
// @Success      201  {object}  models.Unit
// @Failure      400  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Router       /units [post]
func (c *UnitController) CreateUnit() {
	attrs, ok := bindRoot(c.Ctx, "unit")
	if !ok {
		return
	}

	var params models.UnitParams
	if !decodeParams(c.Ctx, attrs, &params) {
		return
	}

	unit, err := c.service().CreateUnit(c.Ctx.Request.Context(), params)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, unit)
}

// 4. UpdateUnit changes the attributes present in the body
// @Summary      Update a unit
// @Tags         Units
// @Accept       json
// @Produce      json
// @Param        id path int true "Unit ID" example:"1"
// @Param        request body UnitRequest true "Unit attributes"
// @Success      200  {object}  models.Unit
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Router       /units/{id} [patch]
func (c *UnitController) UpdateUnit() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}
	attrs, ok := bindRoot(c.Ctx, "unit")
	if !ok {
		return
	}

	unit, err := c.service().UpdateUnit(c.Ctx.Request.Context(), id, attrs)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, unit)
}

// 5. DeleteUnit deletes a unit with its requests and payments
// @Summary      Delete a unit
// @Tags         Units
// @Param        id path int true "Unit ID" example:"1"
// @Success      204
// @Failure      404  {object}  response.ErrorResponse
// @Router       /units/{id} [delete]
func (c *UnitController) DeleteUnit() {
	id, ok := parseID(c.Ctx)
	if !ok {
		return
	}

	if err := c.service().DeleteUnit(c.Ctx.Request.Context(), id); err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.NoContent(c.Ctx)
}

// HandleUnitFunc returns a gin.HandlerFunc for the specified method
func HandleUnitFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUnitController(ctx, container)

		switch method {
		case "getUnits":
			controller.GetUnits()
		case "getUnit":
			controller.GetUnit()
		case "createUnit":
			controller.CreateUnit()
		case "updateUnit":
			controller.UpdateUnit()
		case "deleteUnit":
			controller.DeleteUnit()
		default:
			invalidMethod(ctx, method)
		}
	}
}
