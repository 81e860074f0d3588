// project.go
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

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a construction job tracked from intake through completion.
// Phase and PhaseGroup always change together; PhaseGroup is the derived
// bucket of the current phase and must never disagree with it. Projects
// are tombstoned via DeletedAt, never hard-removed.
type Project struct {
	ID         string `gorm:"type:char(36);primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	ClientName string `gorm:"size:255" json:"client_name"`
	Address    string `gorm:"size:512" json:"address"`

	Phase      string `gorm:"size:32;not null;default:intake;index" json:"phase"`
	PhaseGroup string `gorm:"size:32;not null;default:pre_contract" json:"phase_group"`

	// Phase transition stamps. Each is written once, on first entry into
	// the corresponding phase.
	QuoteSentAt      *time.Time `json:"quote_sent_at,omitempty"`
	QuoteAcceptedAt  *time.Time `json:"quote_accepted_at,omitempty"`
	ContractSignedAt *time.Time `json:"contract_signed_at,omitempty"`
	ActualStart      *time.Time `json:"actual_start,omitempty"`
	ActualCompletion *time.Time `json:"actual_completion,omitempty"`

	Loops []Loop `gorm:"foreignKey:ProjectID" json:"loops,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a UUID when none was supplied.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}
