// project_service.go
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
	"time"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/models"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/phases"
	"gorm.io/gorm"
)

// ErrNotFound reports an absent record. Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// ProjectInput carries the writable project fields.
type ProjectInput struct {
	Name       string `json:"name"`
	ClientName string `json:"client_name"`
	Address    string `json:"address"`
	Phase      string `json:"phase,omitempty"`
}

// PhaseMetadata carries caller-supplied transition timestamps. An explicit
// value always wins over the default stamp for the phase being entered.
type PhaseMetadata struct {
	QuoteSentAt      *time.Time `json:"quote_sent_at,omitempty"`
	QuoteAcceptedAt  *time.Time `json:"quote_accepted_at,omitempty"`
	ContractSignedAt *time.Time `json:"contract_signed_at,omitempty"`
	ActualStart      *time.Time `json:"actual_start,omitempty"`
	ActualCompletion *time.Time `json:"actual_completion,omitempty"`
}

// CreateProject creates a project. The phase defaults to intake; any
// supplied phase value is normalized and the group derived from it.
func CreateProject(db *gorm.DB, input ProjectInput) (*models.Project, error) {
	phase := phases.Normalize(input.Phase)
	project := &models.Project{
		Name:       input.Name,
		ClientName: input.ClientName,
		Address:    input.Address,
		Phase:      string(phase),
		PhaseGroup: string(phases.GroupOf(phase)),
	}
	if err := db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject fetches a project with its loops.
func GetProject(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	err := db.Preload("Loops").Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// ListProjects returns all projects. Soft-deleted projects are excluded by
// the tombstone column.
func ListProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateProject updates the descriptive project fields. Phase changes go
// through TransitionPhase only, so phase and group can never drift apart.
func UpdateProject(db *gorm.DB, id string, input ProjectInput) (*models.Project, error) {
	project, err := GetProject(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.ClientName != "" {
		updates["client_name"] = input.ClientName
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if len(updates) > 0 {
		if err := db.Model(project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return project, nil
}

// DeleteProject tombstones a project. The row is never hard-removed.
func DeleteProject(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TransitionPhase moves a project to newPhase. Phase and the derived group
// are always written together. The timestamp for the phase being entered
// is stamped once: an existing value is never overwritten, and an explicit
// metadata value wins over the default stamp. Any phase is reachable from
// any phase; the business workflow's ordering is not enforced here.
func TransitionPhase(db *gorm.DB, id string, rawPhase string, meta PhaseMetadata) (*models.Project, error) {
	var project models.Project
	if err := db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	phase := phases.Normalize(rawPhase)
	now := time.Now().UTC()

	project.Phase = string(phase)
	project.PhaseGroup = string(phases.GroupOf(phase))

	applyStamp := func(field **time.Time, explicit *time.Time) {
		if explicit != nil {
			*field = explicit
			return
		}
		if *field == nil {
			t := now
			*field = &t
		}
	}

	switch phase {
	case phases.Estimating:
		applyStamp(&project.QuoteSentAt, meta.QuoteSentAt)
	case phases.Approval:
		applyStamp(&project.QuoteAcceptedAt, meta.QuoteAcceptedAt)
	case phases.Contract:
		applyStamp(&project.ContractSignedAt, meta.ContractSignedAt)
	case phases.Active:
		applyStamp(&project.ActualStart, meta.ActualStart)
	case phases.Complete:
		applyStamp(&project.ActualCompletion, meta.ActualCompletion)
	}

	err := db.Model(&project).
		Select("phase", "phase_group", "quote_sent_at", "quote_accepted_at",
			"contract_signed_at", "actual_start", "actual_completion").
		Updates(&project).Error
	if err != nil {
		return nil, err
	}

	return &project, nil
}
