package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/infrastructure/metrics"
	"propertyops-http-service/internal/testutil"

	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	metrics  *metrics.Metrics
	tenants  InterfaceTenantService
	units    InterfaceUnitService
	requests InterfaceMaintenanceRequestService
	payments InterfacePaymentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	pool, cfg := testutil.NewPool(t)
	m := metrics.New()
	return &fixture{
		db:       pool.DB,
		metrics:  m,
		tenants:  NewTenantService(pool.DB, cfg, m),
		units:    NewUnitService(pool.DB, cfg, m),
		requests: NewMaintenanceRequestService(pool.DB, cfg, m),
		payments: NewPaymentService(pool.DB, cfg, m),
	}
}

func (f *fixture) tenant(t *testing.T, first, last, email string) *models.Tenant {
	t.Helper()

	tenant, err := f.tenants.CreateTenant(context.Background(), models.TenantParams{
		FirstName: ptr(first),
		LastName:  ptr(last),
		Email:     ptr(email),
		Status:    ptr(models.TenantStatusActive),
	})
	require.NoError(t, err)
	return tenant
}

func (f *fixture) unit(t *testing.T, property, number string) *models.Unit {
	t.Helper()

	unit, err := f.units.CreateUnit(context.Background(), models.UnitParams{
		PropertyName: ptr(property),
		UnitNumber:   ptr(number),
		RentCents:    ptr[int64](150000),
	})
	require.NoError(t, err)
	return unit
}

// requireValidation asserts err is a validation failure and returns its messages.
func requireValidation(t *testing.T, err error) models.ValidationErrors {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Errors
}
