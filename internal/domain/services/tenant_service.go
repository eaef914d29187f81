package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/infrastructure/config"
	"propertyops-http-service/internal/infrastructure/metrics"
)

// InterfaceTenantService defines the tenant service interface
type InterfaceTenantService interface {
	GetTenants(ctx context.Context, query string) ([]models.Tenant, error)
	GetTenantByID(ctx context.Context, id uint) (*models.Tenant, error)
	CreateTenant(ctx context.Context, params models.TenantParams) (*models.Tenant, error)
	UpdateTenant(ctx context.Context, id uint, patch []byte) (*models.Tenant, error)
	DeleteTenant(ctx context.Context, id uint) error
}

// TenantService persists tenants.
type TenantService struct {
	DB      *gorm.DB
	Config  *config.Config
	Metrics *metrics.Metrics
}

// NewTenantService creates a tenant service
func NewTenantService(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) InterfaceTenantService {
	return &TenantService{
		DB:      db,
		Config:  cfg,
		Metrics: m,
	}
}

// 1 GetTenants lists tenants newest first, optionally filtered by a
// substring of first name, last name or email.
func (s *TenantService) GetTenants(ctx context.Context, query string) ([]models.Tenant, error) {
	tenants := make([]models.Tenant, 0)

	db := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if strings.TrimSpace(query) != "" {
		like := "%" + query + "%"
		db = db.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}

	if err := db.Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return tenants, nil
}

// 2 GetTenantByID fetches one tenant
func (s *TenantService) GetTenantByID(ctx context.Context, id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.DB.WithContext(ctx).First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tenant %d: %w", id, err)
	}
	return &tenant, nil
}

// 3 CreateTenant validates and inserts a tenant
func (s *TenantService) CreateTenant(ctx context.Context, params models.TenantParams) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	params.Apply(tenant)

	if err := s.validate(ctx, tenant); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, translateTenantError("create tenant", err)
	}

	s.Metrics.RecordChange("tenant", "created")
	return tenant, nil
}

// 4 UpdateTenant merges the attributes present in patch into the tenant
func (s *TenantService) UpdateTenant(ctx context.Context, id uint, patch []byte) (*models.Tenant, error) {
	tenant, err := s.GetTenantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	params := tenant.Params()
	if err := json.Unmarshal(patch, &params); err != nil {
		return nil, &DecodeError{Err: err}
	}
	params.Apply(tenant)

	if err := s.validate(ctx, tenant); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Save(tenant).Error; err != nil {
		return nil, translateTenantError("update tenant", err)
	}

	s.Metrics.RecordChange("tenant", "updated")
	return tenant, nil
}

// 5 DeleteTenant removes a tenant with its maintenance requests and payments
func (s *TenantService) DeleteTenant(ctx context.Context, id uint) error {
	if _, err := s.GetTenantByID(ctx, id); err != nil {
		return err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteDependents(tx, "tenant_id", id); err != nil {
			return err
		}
		return tx.Delete(&models.Tenant{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete tenant %d: %w", id, err)
	}

	s.Metrics.RecordChange("tenant", "deleted")
	return nil
}

func (s *TenantService) validate(ctx context.Context, tenant *models.Tenant) error {
	errs := tenant.Validate()

	if strings.TrimSpace(tenant.Email) != "" {
		var count int64
		db := s.DB.WithContext(ctx).Model(&models.Tenant{}).Where("email = ?", tenant.Email)
		if tenant.ID != 0 {
			db = db.Where("id <> ?", tenant.ID)
		}
		if err := db.Count(&count).Error; err != nil {
			return fmt.Errorf("check tenant email: %w", err)
		}
		if count > 0 {
			errs.Add("email", models.MessageTaken)
		}
	}

	return validationFailed(errs)
}

// translateTenantError turns a unique-index race on email into the same
// validation error the pre-check produces.
func translateTenantError(action string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ValidationError{Errors: models.ValidationErrors{"email": {models.MessageTaken}}}
	}
	return fmt.Errorf("%s: %w", action, err)
}
