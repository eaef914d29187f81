package models

import "time"

// BaseModel carries the columns every table has.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All returns every model in dependency order, for migrations.
func All() []interface{} {
	return []interface{}{
		&Tenant{},
		&Unit{},
		&MaintenanceRequest{},
		&Payment{},
	}
}

func stringPtr(s string) *string {
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
