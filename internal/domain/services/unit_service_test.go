package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyops-http-service/internal/domain/models"
)

func TestUnitService_RentRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.units.CreateUnit(ctx, models.UnitParams{
		PropertyName: ptr("Maple Grove"),
		UnitNumber:   ptr("2B"),
		Beds:         ptr(2),
		Baths:        ptr(1.5),
		RentCents:    ptr[int64](215000),
		Status:       ptr(models.UnitStatusOccupied),
	})
	require.NoError(t, err)

	unit, err := f.units.GetUnitByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, unit.RentCents)
	assert.Equal(t, int64(215000), *unit.RentCents)
	assert.Equal(t, 1.5, *unit.Baths)
	assert.Equal(t, 2, *unit.Beds)
}

func TestUnitService_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.units.CreateUnit(ctx, models.UnitParams{
		PropertyName: ptr("Oak Plaza"),
		RentCents:    ptr[int64](-1),
		Status:       ptr("demolished"),
	})
	errs := requireValidation(t, err)
	assert.Equal(t, []string{models.MessageBlank}, errs["unit_number"])
	assert.Equal(t, []string{"must be greater than or equal to 0"}, errs["rent_cents"])
	assert.Equal(t, []string{"must be occupied, vacant, or maintenance"}, errs["status"])
	assert.NotContains(t, errs, "property_name")

	unit, err := f.units.CreateUnit(ctx, models.UnitParams{
		PropertyName: ptr("Oak Plaza"),
		UnitNumber:   ptr("11C"),
		RentCents:    ptr[int64](0),
	})
	require.NoError(t, err)
	assert.Nil(t, unit.Status)
}

func TestUnitService_ListUpdateDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	maple := f.unit(t, "Maple Grove", "2B")
	oak := f.unit(t, "Oak Plaza", "11C")

	units, err := f.units.GetUnits(ctx, "Maple")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, maple.ID, units[0].ID)

	units, err = f.units.GetUnits(ctx, "11")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, oak.ID, units[0].ID)

	updated, err := f.units.UpdateUnit(ctx, maple.ID, []byte(`{"status":"vacant","rent_cents":175000}`))
	require.NoError(t, err)
	assert.Equal(t, "Maple Grove", updated.PropertyName)
	assert.Equal(t, "vacant", *updated.Status)
	assert.Equal(t, int64(175000), *updated.RentCents)

	tenant := f.tenant(t, "Ava", "Patel", "ava.patel@example.com")
	_, err = f.requests.CreateMaintenanceRequest(ctx, models.MaintenanceRequestParams{
		TenantID: ptr(tenant.ID),
		UnitID:   ptr(maple.ID),
		Title:    ptr("Broken window"),
	})
	require.NoError(t, err)

	require.NoError(t, f.units.DeleteUnit(ctx, maple.ID))

	requests, err := f.requests.GetMaintenanceRequests(ctx, MaintenanceRequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, requests)

	units, err = f.units.GetUnits(ctx, "")
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, oak.ID, units[0].ID)

	assert.ErrorIs(t, f.units.DeleteUnit(ctx, maple.ID), ErrNotFound)
}
