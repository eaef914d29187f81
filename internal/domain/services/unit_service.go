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

// InterfaceUnitService defines the unit service interface
type InterfaceUnitService interface {
	GetUnits(ctx context.Context, query string) ([]models.Unit, error)
	GetUnitByID(ctx context.Context, id uint) (*models.Unit, error)
	CreateUnit(ctx context.Context, params models.UnitParams) (*models.Unit, error)
	UpdateUnit(ctx context.Context, id uint, patch []byte) (*models.Unit, error)
	DeleteUnit(ctx context.Context, id uint) error
}

// UnitService persists units.
type UnitService struct {
	DB      *gorm.DB
	Config  *config.Config
	Metrics *metrics.Metrics
}

// NewUnitService creates a unit service
func NewUnitService(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) InterfaceUnitService {
	return &UnitService{
		DB:      db,
		Config:  cfg,
		Metrics: m,
	}
}

// 1 GetUnits lists units newest first, optionally filtered by a substring
// of property name or unit number.
func (s *UnitService) GetUnits(ctx context.Context, query string) ([]models.Unit, error) {
	units := make([]models.Unit, 0)

	db := s.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if strings.TrimSpace(query) != "" {
		like := "%" + query + "%"
		db = db.Where("property_name LIKE ? OR unit_number LIKE ?", like, like)
	}

	if err := db.Find(&units).Error; err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return units, nil
}

// 2 GetUnitByID fetches one unit
func (s *UnitService) GetUnitByID(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit
	if err := s.DB.WithContext(ctx).First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get unit %d: %w", id, err)
	}
	return &unit, nil
}

// 3 CreateUnit validates and inserts a unit
func (s *UnitService) CreateUnit(ctx context.Context, params models.UnitParams) (*models.Unit, error) {
	unit := &models.Unit{}
	params.Apply(unit)

	if err := validationFailed(unit.Validate()); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(unit).Error; err != nil {
		return nil, fmt.Errorf("create unit: %w", err)
	}

	s.Metrics.RecordChange("unit", "created")
	return unit, nil
}

// 4 UpdateUnit merges the attributes present in patch into the unit
func (s *UnitService) UpdateUnit(ctx context.Context, id uint, patch []byte) (*models.Unit, error) {
	unit, err := s.GetUnitByID(ctx, id)
	if err != nil {
		return nil, err
	}

	params := unit.Params()
	if err := json.Unmarshal(patch, &params); err != nil {
		return nil, &DecodeError{Err: err}
	}
	params.Apply(unit)

	if err := validationFailed(unit.Validate()); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Save(unit).Error; err != nil {
		return nil, fmt.Errorf("update unit %d: %w", id, err)
	}

	s.Metrics.RecordChange("unit", "updated")
	return unit, nil
}

// 5 DeleteUnit removes a unit with its maintenance requests and payments
func (s *UnitService) DeleteUnit(ctx context.Context, id uint) error {
	if _, err := s.GetUnitByID(ctx, id); err != nil {
		return err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteDependents(tx, "unit_id", id); err != nil {
			return err
		}
		return tx.Delete(&models.Unit{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete unit %d: %w", id, err)
	}

	s.Metrics.RecordChange("unit", "deleted")
	return nil
}
