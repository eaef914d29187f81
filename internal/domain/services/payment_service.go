package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/infrastructure/config"
	"propertyops-http-service/internal/infrastructure/metrics"
)

// PaymentFilter narrows the payment list. Ids arrive as raw query values;
// one that is not a valid id matches nothing.
type PaymentFilter struct {
	TenantID string
	UnitID   string
}

// InterfacePaymentService defines the payment service interface
type InterfacePaymentService interface {
	GetPayments(ctx context.Context, filter PaymentFilter) ([]models.Payment, error)
	CreatePayment(ctx context.Context, params models.PaymentParams) (*models.Payment, error)
}

// PaymentService records payments. There is no update or delete.
type PaymentService struct {
	DB      *gorm.DB
	Config  *config.Config
	Metrics *metrics.Metrics
}

// NewPaymentService creates a payment service
func NewPaymentService(db *gorm.DB, cfg *config.Config, m *metrics.Metrics) InterfacePaymentService {
	return &PaymentService{
		DB:      db,
		Config:  cfg,
		Metrics: m,
	}
}

// 1 GetPayments lists payments by most recent paid_on with their tenant and unit
func (s *PaymentService) GetPayments(ctx context.Context, filter PaymentFilter) ([]models.Payment, error) {
	payments := make([]models.Payment, 0)

	db := s.DB.WithContext(ctx).
		Preload("Tenant").
		Preload("Unit").
		Order("paid_on DESC").
		Order("id DESC")

	for column, raw := range map[string]string{"tenant_id": filter.TenantID, "unit_id": filter.UnitID} {
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return payments, nil
		}
		db = db.Where(column+" = ?", id)
	}

	if err := db.Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// 2 CreatePayment validates and inserts a payment
func (s *PaymentService) CreatePayment(ctx context.Context, params models.PaymentParams) (*models.Payment, error) {
	payment := &models.Payment{}
	params.Apply(payment)

	errs := payment.Validate()
	if err := checkParents(ctx, s.DB, payment.TenantID, payment.UnitID, errs); err != nil {
		return nil, fmt.Errorf("check payment parents: %w", err)
	}
	if err := validationFailed(errs); err != nil {
		return nil, err
	}

	db := s.DB.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(payment).Error; err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	if err := db.Preload("Tenant").Preload("Unit").First(payment, payment.ID).Error; err != nil {
		return nil, fmt.Errorf("reload payment %d: %w", payment.ID, err)
	}

	s.Metrics.RecordChange("payment", "created")
	return payment, nil
}
