package models

// Tenant statuses.
const (
	TenantStatusActive    = "active"
	TenantStatusInactive  = "inactive"
	TenantStatusApplicant = "applicant"
)

// Tenant is a person renting, or applying to rent, a unit.
type Tenant struct {
	BaseModel
	FirstName string  `gorm:"type:varchar(255)" json:"first_name" validate:"present"`
	LastName  string  `gorm:"type:varchar(255)" json:"last_name" validate:"present"`
	Email     string  `gorm:"type:varchar(255);uniqueIndex" json:"email" validate:"present"`
	Phone     *string `gorm:"type:varchar(255)" json:"phone"`
	Status    *string `gorm:"type:varchar(255)" json:"status" validate:"omitnil,oneof=active inactive applicant"`
}

// TenantParams are the attributes a client may assign. A nil field in a
// decoded body means the key was absent or null.
type TenantParams struct {
	FirstName *string `json:"first_name" example:"Ava"`
	LastName  *string `json:"last_name" example:"Patel"`
	Email     *string `json:"email" example:"ava.patel@example.com"`
	Phone     *string `json:"phone" example:"555-0101"`
	Status    *string `json:"status" example:"active" enums:"active,inactive,applicant"`
}

// Params returns the tenant's current assignable attributes.
func (t *Tenant) Params() TenantParams {
	return TenantParams{
		FirstName: stringPtr(t.FirstName),
		LastName:  stringPtr(t.LastName),
		Email:     stringPtr(t.Email),
		Phone:     t.Phone,
		Status:    t.Status,
	}
}

// Apply copies p onto t.
func (p TenantParams) Apply(t *Tenant) {
	t.FirstName = derefString(p.FirstName)
	t.LastName = derefString(p.LastName)
	t.Email = derefString(p.Email)
	t.Phone = p.Phone
	t.Status = p.Status
}

// Validate checks the tenant's own fields. Email uniqueness needs the
// database and is checked by the service.
func (t *Tenant) Validate() ValidationErrors {
	return validateStruct(t)
}
