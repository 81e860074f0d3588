package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Change order status values. A change order transitions to approved or
// rejected exactly once and is never re-opened.
const (
	ChangeOrderPending  = "pending"
	ChangeOrderApproved = "approved"
	ChangeOrderRejected = "rejected"
)

// Change order types.
const (
	ChangeOrderCustomer   = "customer"
	ChangeOrderContractor = "contractor"
	ChangeOrderNoCost     = "no_cost"
)

// ChangeOrder is an approved exception permitting edits to otherwise
// locked project scope. AffectsLoops holds the loop IDs the order covers
// as a JSON array, queried with the portable JSON column type.
type ChangeOrder struct {
	ID        string `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectID string `gorm:"type:char(36);not null;index" json:"project_id"`

	Status      string `gorm:"size:32;not null;default:pending;index" json:"status"`
	Type        string `gorm:"size:32;not null;default:customer" json:"type"`
	Description string `gorm:"size:1024" json:"description"`
	AmountCents int64  `gorm:"not null;default:0" json:"amount_cents"`

	AffectsLoops JSON `gorm:"type:json" json:"affects_loops"`

	ResolvedAt *time.Time `json:"resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when none was supplied.
func (co *ChangeOrder) BeforeCreate(tx *gorm.DB) error {
	if co.ID == "" {
		co.ID = uuid.NewString()
	}
	return nil
}

// LoopIDs decodes the AffectsLoops column. A malformed or empty column
// decodes to nil.
func (co *ChangeOrder) LoopIDs() []string {
	if len(co.AffectsLoops.JSON) == 0 {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(co.AffectsLoops.JSON, &ids); err != nil {
		return nil
	}
	return ids
}

// SetLoopIDs encodes ids into the AffectsLoops column.
func (co *ChangeOrder) SetLoopIDs(ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	co.AffectsLoops.JSON = raw
	return nil
}

// ValidChangeOrderType reports whether s is a recognized change order type.
func ValidChangeOrderType(s string) bool {
	switch s {
	case ChangeOrderCustomer, ChangeOrderContractor, ChangeOrderNoCost:
		return true
	}
	return false
}

// TableName overrides the table name for ChangeOrder
func (ChangeOrder) TableName() string {
	return "change_orders"
}
