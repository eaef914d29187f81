package models

// Payment methods.
const (
	PaymentMethodCash  = "cash"
	PaymentMethodCard  = "card"
	PaymentMethodACH   = "ach"
	PaymentMethodCheck = "check"
)

// Payment records money received from a tenant for a unit. Payments are
// append-only.
type Payment struct {
	BaseModel
	TenantID    uint    `gorm:"not null;index" json:"tenant_id"`
	UnitID      uint    `gorm:"not null;index" json:"unit_id"`
	AmountCents *int64  `json:"amount_cents" validate:"isnumber,gt=0"`
	PaidOn      *Date   `gorm:"type:date;index" json:"paid_on" validate:"-"`
	Method      *string `gorm:"type:varchar(255)" json:"method" validate:"omitnil,oneof=cash card ach check"`
	Reference   *string `gorm:"type:varchar(255)" json:"reference"`

	Tenant *Tenant `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"tenant,omitempty" validate:"-"`
	Unit   *Unit   `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE" json:"unit,omitempty" validate:"-"`
}

// PaymentParams are the attributes a client may assign.
type PaymentParams struct {
	TenantID    *uint   `json:"tenant_id" example:"1"`
	UnitID      *uint   `json:"unit_id" example:"1"`
	AmountCents *int64  `json:"amount_cents" example:"215000"`
	PaidOn      *Date   `json:"paid_on" swaggertype:"string" example:"2026-10-07"`
	Method      *string `json:"method" example:"ach" enums:"cash,card,ach,check"`
	Reference   *string `json:"reference" example:"ACH-10422"`
}

// Apply copies p onto m.
func (p PaymentParams) Apply(m *Payment) {
	if p.TenantID != nil {
		m.TenantID = *p.TenantID
	}
	if p.UnitID != nil {
		m.UnitID = *p.UnitID
	}
	m.AmountCents = p.AmountCents
	m.PaidOn = p.PaidOn
	if m.PaidOn != nil && m.PaidOn.IsZero() {
		m.PaidOn = nil
	}
	m.Method = p.Method
	m.Reference = p.Reference
}

func (m *Payment) Validate() ValidationErrors {
	errs := validateStruct(m)
	if m.PaidOn == nil {
		errs.Add("paid_on", MessageBlank)
	}
	return errs
}
