// Package client calls the PropertyOps HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"propertyops-http-service/internal/domain/models"
)

// DefaultBaseURL is the API root of a locally running server.
const DefaultBaseURL = "http://localhost:3000/api"

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Details    map[string][]string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is safe for concurrent use.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	Tenants             *TenantsAPI
	Units               *UnitsAPI
	MaintenanceRequests *MaintenanceRequestsAPI
	Payments            *PaymentsAPI
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:3000/api".
func New(baseURL string) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
	c.Tenants = &TenantsAPI{c: c}
	c.Units = &UnitsAPI{c: c}
	c.MaintenanceRequests = &MaintenanceRequestsAPI{c: c}
	c.Payments = &PaymentsAPI{c: c}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("Request failed (%d)", resp.StatusCode),
	}

	var payload struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Details = payload.Details
	}
	return apiErr
}

func idPath(base string, id uint) string {
	return base + "/" + strconv.FormatUint(uint64(id), 10)
}

// TenantsAPI covers /tenants.
type TenantsAPI struct{ c *Client }

// List returns tenants matching q, or all of them when q is empty.
func (a *TenantsAPI) List(ctx context.Context, q string) ([]models.Tenant, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	var out []models.Tenant
	return out, a.c.do(ctx, http.MethodGet, "/tenants", query, nil, &out)
}

func (a *TenantsAPI) Get(ctx context.Context, id uint) (*models.Tenant, error) {
	var out models.Tenant
	if err := a.c.do(ctx, http.MethodGet, idPath("/tenants", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TenantsAPI) Create(ctx context.Context, params models.TenantParams) (*models.Tenant, error) {
	var out models.Tenant
	body := map[string]interface{}{"tenant": params}
	if err := a.c.do(ctx, http.MethodPost, "/tenants", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update sends only the given attributes; a nil value clears the field.
func (a *TenantsAPI) Update(ctx context.Context, id uint, attrs map[string]interface{}) (*models.Tenant, error) {
	var out models.Tenant
	body := map[string]interface{}{"tenant": attrs}
	if err := a.c.do(ctx, http.MethodPatch, idPath("/tenants", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *TenantsAPI) Remove(ctx context.Context, id uint) error {
	return a.c.do(ctx, http.MethodDelete, idPath("/tenants", id), nil, nil, nil)
}

// UnitsAPI covers /units.
type UnitsAPI struct{ c *Client }

func (a *UnitsAPI) List(ctx context.Context, q string) ([]models.Unit, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	var out []models.Unit
	return out, a.c.do(ctx, http.MethodGet, "/units", query, nil, &out)
}

func (a *UnitsAPI) Get(ctx context.Context, id uint) (*models.Unit, error) {
	var out models.Unit
	if err := a.c.do(ctx, http.MethodGet, idPath("/units", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UnitsAPI) Create(ctx context.Context, params models.UnitParams) (*models.Unit, error) {
	var out models.Unit
	body := map[string]interface{}{"unit": params}
	if err := a.c.do(ctx, http.MethodPost, "/units", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UnitsAPI) Update(ctx context.Context, id uint, attrs map[string]interface{}) (*models.Unit, error) {
	var out models.Unit
	body := map[string]interface{}{"unit": attrs}
	if err := a.c.do(ctx, http.MethodPatch, idPath("/units", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UnitsAPI) Remove(ctx context.Context, id uint) error {
	return a.c.do(ctx, http.MethodDelete, idPath("/units", id), nil, nil, nil)
}

// RequestFilter narrows MaintenanceRequestsAPI.List. Empty fields are not sent.
type RequestFilter struct {
	Status   string
	Priority string
}

// MaintenanceRequestsAPI covers /maintenance_requests.
type MaintenanceRequestsAPI struct{ c *Client }

func (a *MaintenanceRequestsAPI) List(ctx context.Context, filter RequestFilter) ([]models.MaintenanceRequest, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		query.Set("priority", filter.Priority)
	}
	var out []models.MaintenanceRequest
	return out, a.c.do(ctx, http.MethodGet, "/maintenance_requests", query, nil, &out)
}

func (a *MaintenanceRequestsAPI) Get(ctx context.Context, id uint) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	if err := a.c.do(ctx, http.MethodGet, idPath("/maintenance_requests", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *MaintenanceRequestsAPI) Create(ctx context.Context, params models.MaintenanceRequestParams) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	body := map[string]interface{}{"maintenance_request": params}
	if err := a.c.do(ctx, http.MethodPost, "/maintenance_requests", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *MaintenanceRequestsAPI) Update(ctx context.Context, id uint, attrs map[string]interface{}) (*models.MaintenanceRequest, error) {
	var out models.MaintenanceRequest
	body := map[string]interface{}{"maintenance_request": attrs}
	if err := a.c.do(ctx, http.MethodPatch, idPath("/maintenance_requests", id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *MaintenanceRequestsAPI) Remove(ctx context.Context, id uint) error {
	return a.c.do(ctx, http.MethodDelete, idPath("/maintenance_requests", id), nil, nil, nil)
}

// PaymentFilter narrows PaymentsAPI.List. Zero ids are not sent.
type PaymentFilter struct {
	TenantID uint
	UnitID   uint
}

// PaymentsAPI covers /payments. Payments can only be listed and created.
type PaymentsAPI struct{ c *Client }

func (a *PaymentsAPI) List(ctx context.Context, filter PaymentFilter) ([]models.Payment, error) {
	query := url.Values{}
	if filter.TenantID != 0 {
		query.Set("tenant_id", strconv.FormatUint(uint64(filter.TenantID), 10))
	}
	if filter.UnitID != 0 {
		query.Set("unit_id", strconv.FormatUint(uint64(filter.UnitID), 10))
	}
	var out []models.Payment
	return out, a.c.do(ctx, http.MethodGet, "/payments", query, nil, &out)
}

func (a *PaymentsAPI) Create(ctx context.Context, params models.PaymentParams) (*models.Payment, error) {
	var out models.Payment
	body := map[string]interface{}{"payment": params}
	if err := a.c.do(ctx, http.MethodPost, "/payments", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
