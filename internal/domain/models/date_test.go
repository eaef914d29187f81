package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var params PaymentParams
	require.NoError(t, json.Unmarshal([]byte(`{"paid_on":"2026-10-07"}`), &params))
	require.NotNil(t, params.PaidOn)
	assert.Equal(t, "2026-10-07", params.PaidOn.String())

	out, err := json.Marshal(params.PaidOn)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-07"`, string(out))

	params = PaymentParams{}
	require.NoError(t, json.Unmarshal([]byte(`{"paid_on":"2026-10-07T23:30:00Z"}`), &params))
	assert.Equal(t, "2026-10-07", params.PaidOn.String())

	params = PaymentParams{}
	require.NoError(t, json.Unmarshal([]byte(`{"paid_on":"not a date"}`), &params))
	require.NotNil(t, params.PaidOn)
	assert.True(t, params.PaidOn.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"paid_on":20261007}`), &params))
}

func TestDateScanAndValue(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-09", d.String())

	require.NoError(t, d.Scan("2026-04-01"))
	assert.Equal(t, "2026-04-01", d.String())

	require.NoError(t, d.Scan([]byte("2026-05-02 00:00:00+00:00")))
	assert.Equal(t, "2026-05-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("yesterday"))

	value, err := NewDate(2026, 10, 7).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-07", value)

	value, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestDateAddDays(t *testing.T) {
	assert.Equal(t, "2026-09-27", NewDate(2026, 10, 7).AddDays(-10).String())
}
