package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"propertyops-http-service/internal/domain/models"
	"propertyops-http-service/internal/infrastructure/config"
)

// SeedCounts reports how many rows of each kind exist after seeding.
type SeedCounts struct {
	Tenants             int64
	Units               int64
	MaintenanceRequests int64
	Payments            int64
}

func (c SeedCounts) String() string {
	return fmt.Sprintf("Seeded: %d tenants, %d units, %d requests, %d payments",
		c.Tenants, c.Units, c.MaintenanceRequests, c.Payments)
}

// InterfaceSeedService defines the demo data loader interface
type InterfaceSeedService interface {
	Seed(ctx context.Context) (SeedCounts, error)
}

// SeedService replaces every table's contents with a small demo data set.
type SeedService struct {
	DB     *gorm.DB
	Config *config.Config
	Now    func() time.Time
}

// NewSeedService creates a seed service
func NewSeedService(db *gorm.DB, cfg *config.Config) InterfaceSeedService {
	return &SeedService{
		DB:     db,
		Config: cfg,
		Now:    time.Now,
	}
}

// Seed clears all tables and inserts the demo records in one transaction.
func (s *SeedService) Seed(ctx context.Context) (SeedCounts, error) {
	var counts SeedCounts
	today := models.DateOf(s.Now())

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.Payment{}, &models.MaintenanceRequest{}, &models.Unit{}, &models.Tenant{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}

		tenants := []*models.Tenant{
			{FirstName: "Ava", LastName: "Patel", Email: "ava.patel@example.com", Phone: ptr("555-0101"), Status: ptr(models.TenantStatusActive)},
			{FirstName: "Noah", LastName: "Kim", Email: "noah.kim@example.com", Phone: ptr("555-0102"), Status: ptr(models.TenantStatusActive)},
			{FirstName: "Mia", LastName: "Lopez", Email: "mia.lopez@example.com", Phone: ptr("555-0103"), Status: ptr(models.TenantStatusApplicant)},
		}
		if err := tx.Create(&tenants).Error; err != nil {
			return fmt.Errorf("seed tenants: %w", err)
		}

		units := []*models.Unit{
			{PropertyName: "Maple Grove", UnitNumber: "2B", Beds: ptr(2), Baths: ptr(1.5), RentCents: ptr[int64](215000), Status: ptr(models.UnitStatusOccupied)},
			{PropertyName: "Maple Grove", UnitNumber: "5A", Beds: ptr(1), Baths: ptr(1.0), RentCents: ptr[int64](175000), Status: ptr(models.UnitStatusVacant)},
			{PropertyName: "Oak Plaza", UnitNumber: "11C", Beds: ptr(3), Baths: ptr(2.0), RentCents: ptr[int64](285000), Status: ptr(models.UnitStatusOccupied)},
		}
		if err := tx.Create(&units).Error; err != nil {
			return fmt.Errorf("seed units: %w", err)
		}

		requests := []*models.MaintenanceRequest{
			{TenantID: tenants[0].ID, UnitID: units[0].ID, Title: "Leaky kitchen faucet", Description: ptr("Slow drip under the sink."),
				Status: models.RequestStatusNew, Priority: ptr(models.RequestPriorityMedium)},
			{TenantID: tenants[1].ID, UnitID: units[2].ID, Title: "AC not cooling", Description: ptr("Air blows but not cold."),
				Status: models.RequestStatusInProgress, Priority: ptr(models.RequestPriorityHigh)},
		}
		if err := tx.Create(&requests).Error; err != nil {
			return fmt.Errorf("seed maintenance requests: %w", err)
		}

		payments := []*models.Payment{
			{TenantID: tenants[0].ID, UnitID: units[0].ID, AmountCents: ptr[int64](215000), PaidOn: ptr(today.AddDays(-10)),
				Method: ptr(models.PaymentMethodACH), Reference: ptr("ACH-10422")},
			{TenantID: tenants[1].ID, UnitID: units[2].ID, AmountCents: ptr[int64](285000), PaidOn: ptr(today.AddDays(-8)),
				Method: ptr(models.PaymentMethodCard), Reference: ptr("CC-88431")},
		}
		if err := tx.Create(&payments).Error; err != nil {
			return fmt.Errorf("seed payments: %w", err)
		}

		for model, count := range map[interface{}]*int64{
			&models.Tenant{}:             &counts.Tenants,
			&models.Unit{}:               &counts.Units,
			&models.MaintenanceRequest{}: &counts.MaintenanceRequests,
			&models.Payment{}:            &counts.Payments,
		} {
			if err := tx.Model(model).Count(count).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return SeedCounts{}, err
	}
	return counts, nil
}

func ptr[T any](v T) *T {
	return &v
}
