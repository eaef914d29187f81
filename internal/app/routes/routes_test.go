package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/infrastructure/metrics"
	"propertyops-http-service/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	pool, cfg := testutil.NewPool(t)
	return SetupRouter(container.NewServiceContainer(pool, cfg, metrics.New()))
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func createTenant(t *testing.T, r http.Handler, email string) uint {
	t.Helper()

	w := do(r, http.MethodPost, "/api/tenants",
		fmt.Sprintf(`{"tenant":{"first_name":"Ava","last_name":"Patel","email":%q,"status":"active"}}`, email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}

func createUnit(t *testing.T, r http.Handler) uint {
	t.Helper()

	w := do(r, http.MethodPost, "/api/units",
		`{"unit":{"property_name":"Maple Grove","unit_number":"2B","beds":2,"baths":1.5,"rent_cents":215000,"status":"occupied"}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(decode(t, w)["id"].(float64))
}

func TestTenantRoutes(t *testing.T) {
	r := newTestRouter(t)
	id := createTenant(t, r, "ava.patel@example.com")

	w := do(r, http.MethodGet, "/api/tenants", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "ava.patel@example.com", list[0]["email"])
	assert.Contains(t, list[0], "created_at")
	assert.Contains(t, list[0], "phone")

	w = do(r, http.MethodGet, "/api/tenants?q=nobody", "")
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	w = do(r, http.MethodPatch, fmt.Sprintf("/api/tenants/%d", id), `{"tenant":{"phone":"555-0101"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "555-0101", decode(t, w)["phone"])

	w = do(r, http.MethodPut, fmt.Sprintf("/api/tenants/%d", id), `{"tenant":{"status":"inactive"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "inactive", body["status"])
	assert.Equal(t, "555-0101", body["phone"])

	w = do(r, http.MethodPost, "/api/tenants", `{"tenant":{"first_name":"Dup","last_name":"Licate","email":"ava.patel@example.com"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":{"email":["has already been taken"]}}`, w.Body.String())

	w = do(r, http.MethodDelete, fmt.Sprintf("/api/tenants/%d", id), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodGet, fmt.Sprintf("/api/tenants/%d", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestRequestErrors(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{"unknown id", http.MethodGet, "/api/units/999", "", 404, `{"error":"Not found"}`},
		{"non-numeric id", http.MethodGet, "/api/units/abc", "", 404, `{"error":"Not found"}`},
		{"delete unknown", http.MethodDelete, "/api/maintenance_requests/5", "", 404, `{"error":"Not found"}`},
		{"missing root key", http.MethodPost, "/api/units", `{"property_name":"Oak"}`, 400,
			`{"error":"param is missing or the value is empty: unit"}`},
		{"empty root key", http.MethodPost, "/api/payments", `{"payment":{}}`, 400,
			`{"error":"param is missing or the value is empty: payment"}`},
		{"empty body", http.MethodPost, "/api/tenants", "", 400,
			`{"error":"param is missing or the value is empty: tenant"}`},
		{"update unknown before body", http.MethodPatch, "/api/tenants/42", `{"tenant":{"phone":"1"}}`, 404, `{"error":"Not found"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.want, w.Body.String())
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/tenants", `{"tenant":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotEmpty(t, decode(t, w)["error"])
	})

	t.Run("wrong type", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/units", `{"unit":{"property_name":"Oak","unit_number":"1","rent_cents":"lots"}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no payment update route", func(t *testing.T) {
		w := do(r, http.MethodDelete, "/api/payments/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMaintenanceRequestRoutes(t *testing.T) {
	r := newTestRouter(t)
	tenantID := createTenant(t, r, "ava.patel@example.com")
	unitID := createUnit(t, r)

	w := do(r, http.MethodPost, "/api/maintenance_requests",
		fmt.Sprintf(`{"maintenance_request":{"tenant_id":%d,"unit_id":%d,"title":"Leaky kitchen faucet","priority":"medium"}}`, tenantID, unitID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "new", created["status"])
	assert.Equal(t, "Ava", created["tenant"].(map[string]interface{})["first_name"])
	assert.Equal(t, "2B", created["unit"].(map[string]interface{})["unit_number"])

	w = do(r, http.MethodPost, "/api/maintenance_requests",
		`{"maintenance_request":{"tenant_id":999,"unit_id":998,"title":""}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":{"tenant":["must exist"],"unit":["must exist"],"title":["can't be blank"]}}`, w.Body.String())

	id := uint(created["id"].(float64))
	w = do(r, http.MethodPatch, fmt.Sprintf("/api/maintenance_requests/%d", id), `{"maintenance_request":{"status":"resolved"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/maintenance_requests?status=resolved", "")
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "resolved", list[0]["status"])

	w = do(r, http.MethodGet, "/api/maintenance_requests?status=new", "")
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestPaymentRoutes(t *testing.T) {
	r := newTestRouter(t)
	tenantID := createTenant(t, r, "ava.patel@example.com")
	unitID := createUnit(t, r)

	payment := func(amount int) *httptest.ResponseRecorder {
		return do(r, http.MethodPost, "/api/payments", fmt.Sprintf(
			`{"payment":{"tenant_id":%d,"unit_id":%d,"amount_cents":%d,"paid_on":"2026-10-07","method":"ach","reference":"ACH-10422"}}`,
			tenantID, unitID, amount))
	}

	w := payment(0)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":{"amount_cents":["must be greater than 0"]}}`, w.Body.String())

	w = payment(1)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "2026-10-07", body["paid_on"])
	assert.Equal(t, float64(1), body["amount_cents"])

	w = do(r, http.MethodGet, fmt.Sprintf("/api/payments?tenant_id=%d", tenantID), "")
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = do(r, http.MethodGet, "/api/payments?tenant_id=abc", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestUnitRentRoundTrip(t *testing.T) {
	r := newTestRouter(t)
	id := createUnit(t, r)

	w := do(r, http.MethodGet, fmt.Sprintf("/api/units/%d", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rent_cents":215000`)
}

func TestCascadeDeleteOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	tenantID := createTenant(t, r, "ava.patel@example.com")
	unitID := createUnit(t, r)

	w := do(r, http.MethodPost, "/api/maintenance_requests",
		fmt.Sprintf(`{"maintenance_request":{"tenant_id":%d,"unit_id":%d,"title":"AC not cooling"}}`, tenantID, unitID))
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(r, http.MethodPost, "/api/payments", fmt.Sprintf(
		`{"payment":{"tenant_id":%d,"unit_id":%d,"amount_cents":100,"paid_on":"2026-10-01"}}`, tenantID, unitID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodDelete, fmt.Sprintf("/api/units/%d", unitID), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	for _, path := range []string{"/api/maintenance_requests", "/api/payments"} {
		w = do(r, http.MethodGet, path, "")
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()), path)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/tenants/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestOperationalRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode(t, w)["message"])

	w = do(r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	health := decode(t, w)
	assert.Equal(t, "up", health["database"])
	assert.Equal(t, "disabled", health["redis"])
	assert.Contains(t, health, "pool")

	w = do(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `propertyops_http_requests_total{method="GET",route="/api/health",status="200"} 1`)

	w = do(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>PropertyOps</title>")

	w = do(r, http.MethodGet, "/assets/app.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte("maintenance_requests")))

	w = do(r, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/maintenance_requests/{id}")
}
