package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyops-http-service/internal/domain/models"
)

func uintJSON(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestPaymentService_AmountBoundary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tenant := f.tenant(t, "Ava", "Patel", "ava.patel@example.com")
	unit := f.unit(t, "Maple Grove", "2B")

	params := func(amount *int64) models.PaymentParams {
		return models.PaymentParams{
			TenantID:    ptr(tenant.ID),
			UnitID:      ptr(unit.ID),
			AmountCents: amount,
			PaidOn:      ptr(models.NewDate(2026, 10, 7)),
			Method:      ptr(models.PaymentMethodACH),
		}
	}

	for _, amount := range []int64{0, -5} {
		_, err := f.payments.CreatePayment(ctx, params(ptr(amount)))
		assert.Equal(t, []string{"must be greater than 0"}, requireValidation(t, err)["amount_cents"])
	}

	_, err := f.payments.CreatePayment(ctx, params(nil))
	assert.Equal(t, []string{models.MessageNotANumber}, requireValidation(t, err)["amount_cents"])

	payment, err := f.payments.CreatePayment(ctx, params(ptr[int64](1)))
	require.NoError(t, err)
	assert.Equal(t, int64(1), *payment.AmountCents)
	assert.Equal(t, "2026-10-07", payment.PaidOn.String())
	require.NotNil(t, payment.Tenant)
	assert.Equal(t, tenant.ID, payment.Tenant.ID)
}

func TestPaymentService_CreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.payments.CreatePayment(context.Background(), models.PaymentParams{
		AmountCents: ptr[int64](100),
		Method:      ptr("bitcoin"),
	})
	errs := requireValidation(t, err)
	assert.Equal(t, []string{models.MessageMissing}, errs["tenant"])
	assert.Equal(t, []string{models.MessageMissing}, errs["unit"])
	assert.Equal(t, []string{models.MessageBlank}, errs["paid_on"])
	assert.Equal(t, []string{"must be cash, card, ach, or check"}, errs["method"])
}

func TestPaymentService_GetPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ava := f.tenant(t, "Ava", "Patel", "ava.patel@example.com")
	noah := f.tenant(t, "Noah", "Kim", "noah.kim@example.com")
	unit := f.unit(t, "Maple Grove", "2B")

	pay := func(tenant *models.Tenant, day int) *models.Payment {
		payment, err := f.payments.CreatePayment(ctx, models.PaymentParams{
			TenantID:    ptr(tenant.ID),
			UnitID:      ptr(unit.ID),
			AmountCents: ptr[int64](215000),
			PaidOn:      ptr(models.NewDate(2026, 10, day)),
		})
		require.NoError(t, err)
		return payment
	}
	late := pay(ava, 9)
	early := pay(ava, 1)
	middle := pay(noah, 5)

	payments, err := f.payments.GetPayments(ctx, PaymentFilter{})
	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.Equal(t, []uint{late.ID, middle.ID, early.ID}, []uint{payments[0].ID, payments[1].ID, payments[2].ID})
	assert.NotNil(t, payments[0].Unit)

	payments, err = f.payments.GetPayments(ctx, PaymentFilter{TenantID: uintJSON(ava.ID)})
	require.NoError(t, err)
	assert.Len(t, payments, 2)

	payments, err = f.payments.GetPayments(ctx, PaymentFilter{TenantID: uintJSON(noah.ID), UnitID: uintJSON(unit.ID)})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, middle.ID, payments[0].ID)

	payments, err = f.payments.GetPayments(ctx, PaymentFilter{TenantID: "abc"})
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}
