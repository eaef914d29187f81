package models

// Unit statuses.
const (
	UnitStatusOccupied    = "occupied"
	UnitStatusVacant      = "vacant"
	UnitStatusMaintenance = "maintenance"
)

// Unit is a rentable space inside a property. Rent is in cents.
type Unit struct {
	BaseModel
	PropertyName string   `gorm:"type:varchar(255)" json:"property_name" validate:"present"`
	UnitNumber   string   `gorm:"type:varchar(255)" json:"unit_number" validate:"present"`
	Beds         *int     `json:"beds"`
	Baths        *float64 `gorm:"type:decimal(4,1)" json:"baths"`
	RentCents    *int64   `json:"rent_cents" validate:"omitnil,gte=0"`
	Status       *string  `gorm:"type:varchar(255)" json:"status" validate:"omitnil,oneof=occupied vacant maintenance"`
}

// UnitParams are the attributes a client may assign.
type UnitParams struct {
	PropertyName *string  `json:"property_name" example:"Maple Grove"`
	UnitNumber   *string  `json:"unit_number" example:"2B"`
	Beds         *int     `json:"beds" example:"2"`
	Baths        *float64 `json:"baths" example:"1.5"`
	RentCents    *int64   `json:"rent_cents" example:"215000"`
	Status       *string  `json:"status" example:"occupied" enums:"occupied,vacant,maintenance"`
}

// Params returns the unit's current assignable attributes.
func (u *Unit) Params() UnitParams {
	return UnitParams{
		PropertyName: stringPtr(u.PropertyName),
		UnitNumber:   stringPtr(u.UnitNumber),
		Beds:         u.Beds,
		Baths:        u.Baths,
		RentCents:    u.RentCents,
		Status:       u.Status,
	}
}

// Apply copies p onto u.
func (p UnitParams) Apply(u *Unit) {
	u.PropertyName = derefString(p.PropertyName)
	u.UnitNumber = derefString(p.UnitNumber)
	u.Beds = p.Beds
	u.Baths = p.Baths
	u.RentCents = p.RentCents
	u.Status = p.Status
}

func (u *Unit) Validate() ValidationErrors {
	return validateStruct(u)
}
