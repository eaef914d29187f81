package controllers

import (
	"github.com/gin-gonic/gin"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/error/response"
)

// InterfacePaymentController defines the payment controller interface
type InterfacePaymentController interface {
	GetPayments()
	CreatePayment()
}

// PaymentController handles payment requests. Payments cannot be edited
// or deleted once recorded.
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// PaymentRequest is the create body
type PaymentRequest struct {
	Payment models.PaymentParams `json:"payment"`
}

// NewPaymentController creates a payment controller
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

func (c *PaymentController) service() services.InterfacePaymentService {
	return c.Container.GetService("payment").(services.InterfacePaymentService)
}

// 1. GetPayments lists payments with their tenant and unit
// @Summary      List payments
// @Description  Most recent paid_on first, optionally filtered by tenant and unit.
// @Tags         Payments
// @Produce      json
// @Param        tenant_id query int false "Tenant ID" example:"1"
// @Param        unit_id query int false "Unit ID" example:"1"
// @Success      200  {array}   models.Payment
// @Failure      500  {object}  response.ErrorResponse
// @Router       /payments [get]
func (c *PaymentController) GetPayments() {
	filter := services.PaymentFilter{
		TenantID: c.Ctx.Query("tenant_id"),
		UnitID:   c.Ctx.Query("unit_id"),
	}

	payments, err := c.service().GetPayments(c.Ctx.Request.Context(), filter)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Success(c.Ctx, payments)
}

// 2. CreatePayment records a payment
// @Summary      Record a payment
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        request body PaymentRequest true "Payment attributes"
// @Success      201  {object}  models.Payment
// @Failure      400  {object}  response.ErrorResponse
// @Failure      422  {object}  response.ErrorResponse
// @Router       /payments [post]
func (c *PaymentController) CreatePayment() {
	attrs, ok := bindRoot(c.Ctx, "payment")
	if !ok {
		return
	}

	var params models.PaymentParams
	if !decodeParams(c.Ctx, attrs, &params) {
		return
	}

	payment, err := c.service().CreatePayment(c.Ctx.Request.Context(), params)
	if err != nil {
		handleServiceError(c.Ctx, err)
		return
	}
	response.Created(c.Ctx, payment)
}

// HandlePaymentFunc returns a gin.HandlerFunc for the specified method
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "createPayment":
			controller.CreatePayment()
		default:
			invalidMethod(ctx, method)
		}
	}
}
