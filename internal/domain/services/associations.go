package services

import (
	"context"

	"gorm.io/gorm"

	"propertyops-http-service/internal/domain/models"
)

// checkParents records "must exist" for a tenant or unit id that does not
// resolve to a row.
func checkParents(ctx context.Context, db *gorm.DB, tenantID, unitID uint, errs models.ValidationErrors) error {
	ok, err := exists(ctx, db, &models.Tenant{}, tenantID)
	if err != nil {
		return err
	}
	if !ok {
		errs.Add("tenant", models.MessageMissing)
	}

	ok, err = exists(ctx, db, &models.Unit{}, unitID)
	if err != nil {
		return err
	}
	if !ok {
		errs.Add("unit", models.MessageMissing)
	}
	return nil
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// deleteDependents removes the requests and payments that reference a
// tenant or unit, inside the caller's transaction.
func deleteDependents(tx *gorm.DB, column string, id uint) error {
	if err := tx.Where(column+" = ?", id).Delete(&models.MaintenanceRequest{}).Error; err != nil {
		return err
	}
	return tx.Where(column+" = ?", id).Delete(&models.Payment{}).Error
}
