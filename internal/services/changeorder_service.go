// changeorder_service.go
//
// Hooomz OS — back-office data service for the Hooomz construction management application
// Copyright (c) 2026 Hooomz
//
// This file is part of hooomz-os.
// hooomz-os is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// hooomz-os is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with hooomz-os.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"gorm.io/gorm"
)

// ErrNotPending reports a lifecycle violation: approve, reject, and delete
// only apply to a pending change order.
var ErrNotPending = errors.New("change order is not pending")

// ChangeOrderInput carries the writable change order fields.
type ChangeOrderInput struct {
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	AmountCents  int64    `json:"amount_cents"`
	AffectsLoops []string `json:"affects_loops"`
}

// CreateChangeOrder creates a pending change order against a project.
func CreateChangeOrder(db *gorm.DB, projectID string, input ChangeOrderInput) (*models.ChangeOrder, error) {
	if _, err := GetProject(db, projectID); err != nil {
		return nil, err
	}

	coType := input.Type
	if coType == "" {
		coType = models.ChangeOrderCustomer
	}
	if !models.ValidChangeOrderType(coType) {
		return nil, fmt.Errorf("invalid change order type: %s", coType)
	}

	order := &models.ChangeOrder{
		ProjectID:   projectID,
		Status:      models.ChangeOrderPending,
		Type:        coType,
		Description: input.Description,
		AmountCents: input.AmountCents,
	}
	if err := order.SetLoopIDs(input.AffectsLoops); err != nil {
		return nil, err
	}
	if err := db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// GetChangeOrder fetches a change order.
func GetChangeOrder(db *gorm.DB, id string) (*models.ChangeOrder, error) {
	var order models.ChangeOrder
	if err := db.Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListChangeOrders returns a project's change orders.
func ListChangeOrders(db *gorm.DB, projectID string) ([]models.ChangeOrder, error) {
	var orders []models.ChangeOrder
	err := db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ResolveChangeOrder moves a pending change order to approved or rejected.
// The transition happens exactly once; a resolved order is terminal. The
// status predicate in the update guards against a concurrent resolution.
func ResolveChangeOrder(db *gorm.DB, id string, approve bool) (*models.ChangeOrder, error) {
	order, err := GetChangeOrder(db, id)
	if err != nil {
		return nil, err
	}
	if order.Status != models.ChangeOrderPending {
		return nil, ErrNotPending
	}

	status := models.ChangeOrderRejected
	if approve {
		status = models.ChangeOrderApproved
	}
	now := time.Now().UTC()

	result := db.Model(order).
		Where("status = ?", models.ChangeOrderPending).
		Updates(map[string]interface{}{
			"status":      status,
			"resolved_at": &now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotPending
	}

	order.Status = status
	order.ResolvedAt = &now
	return order, nil
}

// DeleteChangeOrder removes a change order. Only a pending order may be
// deleted.
func DeleteChangeOrder(db *gorm.DB, id string) error {
	order, err := GetChangeOrder(db, id)
	if err != nil {
		return err
	}
	if order.Status != models.ChangeOrderPending {
		return ErrNotPending
	}
	return db.Delete(order).Error
}
