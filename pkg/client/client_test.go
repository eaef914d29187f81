package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyops-http-service/internal/app/routes"
	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/infrastructure/metrics"
	"propertyops-http-service/internal/testutil"
	"propertyops-http-service/pkg/client"
)

func ptr[T any](v T) *T { return &v }

func newServer(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pool, cfg := testutil.NewPool(t)
	srv := httptest.NewServer(routes.SetupRouter(container.NewServiceContainer(pool, cfg, metrics.New())))
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/api/")
}

func TestClient_EndToEnd(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	tenant, err := c.Tenants.Create(ctx, models.TenantParams{
		FirstName: ptr("Ava"),
		LastName:  ptr("Patel"),
		Email:     ptr("ava.patel@example.com"),
		Status:    ptr(models.TenantStatusActive),
	})
	require.NoError(t, err)

	unit, err := c.Units.Create(ctx, models.UnitParams{
		PropertyName: ptr("Maple Grove"),
		UnitNumber:   ptr("2B"),
		RentCents:    ptr[int64](215000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(215000), *unit.RentCents)

	request, err := c.MaintenanceRequests.Create(ctx, models.MaintenanceRequestParams{
		TenantID: ptr(tenant.ID),
		UnitID:   ptr(unit.ID),
		Title:    ptr("Leaky kitchen faucet"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusNew, request.Status)

	request, err = c.MaintenanceRequests.Update(ctx, request.ID, map[string]interface{}{"status": "resolved"})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusResolved, request.Status)

	resolved, err := c.MaintenanceRequests.List(ctx, client.RequestFilter{Status: "resolved"})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Patel", resolved[0].Tenant.LastName)

	payment, err := c.Payments.Create(ctx, models.PaymentParams{
		TenantID:    ptr(tenant.ID),
		UnitID:      ptr(unit.ID),
		AmountCents: ptr[int64](215000),
		PaidOn:      ptr(models.NewDate(2026, 10, 7)),
		Method:      ptr(models.PaymentMethodACH),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-07", payment.PaidOn.String())

	payments, err := c.Payments.List(ctx, client.PaymentFilter{TenantID: tenant.ID})
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	tenant, err = c.Tenants.Update(ctx, tenant.ID, map[string]interface{}{"phone": "555-0101", "status": nil})
	require.NoError(t, err)
	assert.Equal(t, "555-0101", *tenant.Phone)
	assert.Nil(t, tenant.Status)

	require.NoError(t, c.Tenants.Remove(ctx, tenant.ID))

	payments, err = c.Payments.List(ctx, client.PaymentFilter{})
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestClient_Errors(t *testing.T) {
	c := newServer(t)
	ctx := context.Background()

	_, err := c.Units.Get(ctx, 404)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not found", apiErr.Error())

	_, err = c.Tenants.Create(ctx, models.TenantParams{FirstName: ptr("Ava")})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "Validation failed", apiErr.Message)
	assert.Equal(t, []string{"can't be blank"}, apiErr.Details["email"])
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.New(srv.URL).Tenants.List(context.Background(), "")
	assert.EqualError(t, err, "Request failed (502)")
}
