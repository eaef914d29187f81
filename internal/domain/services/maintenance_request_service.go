package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/infrastructure/config"
	"propertyops-http-service/internal/infrastructure/metrics"
)

// MaintenanceRequestFilter narrows the request list by exact match.
type MaintenanceRequestFilter struct {
	Status   string
	Priority string
}

// InterfaceMaintenanceRequestService defines the maintenance request service interface
type InterfaceMaintenanceRequestService interface {
	GetMaintenanceRequests(ctx context.Context, filter MaintenanceRequestFilter) ([]models.MaintenanceRequest, error)
	GetMaintenanceRequestByID(ctx context.Context, id uint) (*models.MaintenanceRequest, error)
	CreateMaintenanceRequest(ctx context.Context, params models.MaintenanceRequestParams) (*models.MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, id uint, patch []byte) (*models.MaintenanceRequest, error)
	DeleteMaintenanceRequest(ctx context.Context, id uint) error
}

// MaintenanceRequestService persists maintenance requests.
type MaintenanceRequestService struct {
	DB      *gorm.DB
	Config  *config.Config
	Metrics *metrics.Metrics
}

// NewMaintenanceRequestService creates a maintenance request service
func NewMaintenanceRequestService(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) InterfaceMaintenanceRequestService {
	return &MaintenanceRequestService{
		DB:      db,
		Config:  cfg,
		Metrics: m,
	}
}

// 1 GetMaintenanceRequests lists requests newest first with their tenant and unit
func (s *MaintenanceRequestService) GetMaintenanceRequests(ctx context.Context, filter MaintenanceRequestFilter) ([]models.MaintenanceRequest, error) {
	requests := make([]models.MaintenanceRequest, 0)

	db := s.DB.WithContext(ctx).
		Preload("Tenant").
		Preload("Unit").
		Order("created_at DESC").
		Order("id DESC")
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		db = db.Where("priority = ?", filter.Priority)
	}

	if err := db.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	return requests, nil
}

// 2 GetMaintenanceRequestByID fetches one request with its tenant and unit
func (s *MaintenanceRequestService) GetMaintenanceRequestByID(ctx context.Context, id uint) (*models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest
	err := s.DB.WithContext(ctx).Preload("Tenant").Preload("Unit").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get maintenance request %d: %w", id, err)
	}
	return &request, nil
}

// 3 CreateMaintenanceRequest validates and inserts a request. A request
// without a status starts as "new".
func (s *MaintenanceRequestService) CreateMaintenanceRequest(ctx context.Context, params models.MaintenanceRequestParams) (*models.MaintenanceRequest, error) {
	if params.Status == nil {
		status := models.RequestStatusNew
		params.Status = &status
	}

	request := &models.MaintenanceRequest{}
	params.Apply(request)

	if err := s.validate(ctx, request); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(request).Error; err != nil {
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}

	s.Metrics.RecordChange("maintenance_request", "created")
	return s.GetMaintenanceRequestByID(ctx, request.ID)
}

// 4 UpdateMaintenanceRequest merges the attributes present in patch into the request
func (s *MaintenanceRequestService) UpdateMaintenanceRequest(ctx context.Context, id uint, patch []byte) (*models.MaintenanceRequest, error) {
	request, err := s.GetMaintenanceRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	params := request.Params()
	if err := json.Unmarshal(patch, &params); err != nil {
		return nil, &DecodeError{Err: err}
	}
	params.Apply(request)

	if err := s.validate(ctx, request); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Save(request).Error; err != nil {
		return nil, fmt.Errorf("update maintenance request %d: %w", id, err)
	}

	s.Metrics.RecordChange("maintenance_request", "updated")
	return s.GetMaintenanceRequestByID(ctx, id)
}

// 5 DeleteMaintenanceRequest removes one request
func (s *MaintenanceRequestService) DeleteMaintenanceRequest(ctx context.Context, id uint) error {
	result := s.DB.WithContext(ctx).Delete(&models.MaintenanceRequest{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete maintenance request %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	s.Metrics.RecordChange("maintenance_request", "deleted")
	return nil
}

func (s *MaintenanceRequestService) validate(ctx context.Context, request *models.MaintenanceRequest) error {
	errs := request.Validate()
	if err := checkParents(ctx, s.DB, request.TenantID, request.UnitID, errs); err != nil {
		return fmt.Errorf("check maintenance request parents: %w", err)
	}
	return validationFailed(errs)
}
