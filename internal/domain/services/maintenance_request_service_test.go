package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyops-http-service/internal/domain/models"
)

func TestMaintenanceRequestService_CreateDefaultsStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tenant := f.tenant(t, "Ava", "Patel", "ava.patel@example.com")
	unit := f.unit(t, "Maple Grove", "2B")

	request, err := f.requests.CreateMaintenanceRequest(ctx, models.MaintenanceRequestParams{
		TenantID: ptr(tenant.ID),
		UnitID:   ptr(unit.ID),
		Title:    ptr("Leaky kitchen faucet"),
		Priority: ptr(models.RequestPriorityMedium),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusNew, request.Status)
	require.NotNil(t, request.Tenant)
	require.NotNil(t, request.Unit)
	assert.Equal(t, "ava.patel@example.com", request.Tenant.Email)
	assert.Equal(t, "2B", request.Unit.UnitNumber)
}

func TestMaintenanceRequestService_CreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.requests.CreateMaintenanceRequest(ctx, models.MaintenanceRequestParams{
		TenantID: ptr[uint](404),
		Status:   ptr("open"),
		Priority: ptr("whenever"),
	})
	errs := requireValidation(t, err)
	assert.Equal(t, []string{models.MessageMissing}, errs["tenant"])
	assert.Equal(t, []string{models.MessageMissing}, errs["unit"])
	assert.Equal(t, []string{models.MessageBlank}, errs["title"])
	assert.Equal(t, []string{"must be new, in_progress, resolved, or closed"}, errs["status"])
	assert.Equal(t, []string{"must be low, medium, high, or urgent"}, errs["priority"])

	_, err = f.requests.CreateMaintenanceRequest(ctx, models.MaintenanceRequestParams{Status: ptr("")})
	assert.Equal(t, []string{models.MessageBlank}, requireValidation(t, err)["status"])
}

func TestMaintenanceRequestService_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tenant := f.tenant(t, "Ava", "Patel", "ava.patel@example.com")
	unit := f.unit(t, "Maple Grove", "2B")

	create := func(title, status, priority string) *models.MaintenanceRequest {
		request, err := f.requests.CreateMaintenanceRequest(ctx, models.MaintenanceRequestParams{
			TenantID: ptr(tenant.ID),
			UnitID:   ptr(unit.ID),
			Title:    ptr(title),
			Status:   ptr(status),
			Priority: ptr(priority),
		})
		require.NoError(t, err)
		return request
	}
	create("Leaky faucet", models.RequestStatusNew, models.RequestPriorityLow)
	fixed := create("AC not cooling", models.RequestStatusResolved, models.RequestPriorityHigh)
	create("Door sticks", models.RequestStatusInProgress, models.RequestPriorityHigh)

	requests, err := f.requests.GetMaintenanceRequests(ctx, MaintenanceRequestFilter{Status: models.RequestStatusResolved})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, fixed.ID, requests[0].ID)
	assert.NotNil(t, requests[0].Tenant)

	requests, err = f.requests.GetMaintenanceRequests(ctx, MaintenanceRequestFilter{Priority: models.RequestPriorityHigh})
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "Door sticks", requests[0].Title)

	requests, err = f.requests.GetMaintenanceRequests(ctx, MaintenanceRequestFilter{Status: models.RequestStatusResolved, Priority: models.RequestPriorityLow})
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestMaintenanceRequestService_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ava := f.tenant(t, "Ava", "Patel", "ava.patel@example.com")
	noah := f.tenant(t, "Noah", "Kim", "noah.kim@example.com")
	unit := f.unit(t, "Maple Grove", "2B")

	request, err := f.requests.CreateMaintenanceRequest(ctx, models.MaintenanceRequestParams{
		TenantID:    ptr(ava.ID),
		UnitID:      ptr(unit.ID),
		Title:       ptr("Leaky kitchen faucet"),
		Description: ptr("Slow drip under the sink."),
	})
	require.NoError(t, err)

	updated, err := f.requests.UpdateMaintenanceRequest(ctx, request.ID, []byte(`{"status":"in_progress","tenant_id":`+uintJSON(noah.ID)+`}`))
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusInProgress, updated.Status)
	assert.Equal(t, "Leaky kitchen faucet", updated.Title)
	require.NotNil(t, updated.Tenant)
	assert.Equal(t, noah.ID, updated.Tenant.ID)

	_, err = f.requests.UpdateMaintenanceRequest(ctx, request.ID, []byte(`{"unit_id":777}`))
	assert.Equal(t, []string{models.MessageMissing}, requireValidation(t, err)["unit"])

	_, err = f.requests.UpdateMaintenanceRequest(ctx, request.ID, []byte(`{"status":null}`))
	assert.Equal(t, []string{models.MessageBlank}, requireValidation(t, err)["status"])

	require.NoError(t, f.requests.DeleteMaintenanceRequest(ctx, request.ID))
	_, err = f.requests.GetMaintenanceRequestByID(ctx, request.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.requests.DeleteMaintenanceRequest(ctx, request.ID), ErrNotFound)
}
