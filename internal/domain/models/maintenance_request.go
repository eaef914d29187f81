package models

// Maintenance request statuses.
const (
	RequestStatusNew        = "new"
	RequestStatusInProgress = "in_progress"
	RequestStatusResolved   = "resolved"
	RequestStatusClosed     = "closed"
)

// Maintenance request priorities.
const (
	RequestPriorityLow    = "low"
	RequestPriorityMedium = "medium"
	RequestPriorityHigh   = "high"
	RequestPriorityUrgent = "urgent"
)

// MaintenanceRequest is a repair ticket raised by a tenant for a unit.
type MaintenanceRequest struct {
	BaseModel
	TenantID    uint    `gorm:"not null;index" json:"tenant_id"`
	UnitID      uint    `gorm:"not null;index" json:"unit_id"`
	Title       string  `gorm:"type:varchar(255)" json:"title" validate:"present"`
	Description *string `gorm:"type:text" json:"description"`
	Status      string  `gorm:"type:varchar(255);index" json:"status" validate:"present,oneof=new in_progress resolved closed"`
	Priority    *string `gorm:"type:varchar(255)" json:"priority" validate:"omitnil,oneof=low medium high urgent"`

	Tenant *Tenant `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"tenant,omitempty" validate:"-"`
	Unit   *Unit   `gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE" json:"unit,omitempty" validate:"-"`
}

// MaintenanceRequestParams are the attributes a client may assign.
type MaintenanceRequestParams struct {
	TenantID    *uint   `json:"tenant_id" example:"1"`
	UnitID      *uint   `json:"unit_id" example:"1"`
	Title       *string `json:"title" example:"Leaky kitchen faucet"`
	Description *string `json:"description" example:"Slow drip under the sink."`
	Status      *string `json:"status" example:"new" enums:"new,in_progress,resolved,closed"`
	Priority    *string `json:"priority" example:"medium" enums:"low,medium,high,urgent"`
}

// Params returns the request's current assignable attributes.
func (m *MaintenanceRequest) Params() MaintenanceRequestParams {
	tenantID, unitID := m.TenantID, m.UnitID
	return MaintenanceRequestParams{
		TenantID:    &tenantID,
		UnitID:      &unitID,
		Title:       stringPtr(m.Title),
		Description: m.Description,
		Status:      stringPtr(m.Status),
		Priority:    m.Priority,
	}
}

// Apply copies p onto m. Associations are dropped when their id changes.
func (p MaintenanceRequestParams) Apply(m *MaintenanceRequest) {
	var tenantID, unitID uint
	if p.TenantID != nil {
		tenantID = *p.TenantID
	}
	if p.UnitID != nil {
		unitID = *p.UnitID
	}
	if tenantID != m.TenantID {
		m.Tenant = nil
	}
	if unitID != m.UnitID {
		m.Unit = nil
	}
	m.TenantID = tenantID
	m.UnitID = unitID
	m.Title = derefString(p.Title)
	m.Description = p.Description
	m.Status = derefString(p.Status)
	m.Priority = p.Priority
}

func (m *MaintenanceRequest) Validate() ValidationErrors {
	return validateStruct(m)
}
