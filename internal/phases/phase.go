// phase.go
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

// Package phases defines the project lifecycle: the canonical phase
// progression, legacy alias normalization, phase groups, and the set of
// phases that lock downstream editing.
package phases

import "strings"

// Phase is a project's position in its lifecycle.
type Phase string

// Canonical phases, in progression order.
const (
	Intake     Phase = "intake"
	Estimating Phase = "estimating"
	Approval   Phase = "approval"
	Contract   Phase = "contract"
	Active     Phase = "active"
	PunchList  Phase = "punch_list"
	Complete   Phase = "complete"
	Maintained Phase = "maintained"
)

// Group is the coarse lifecycle bucket derived from a phase.
type Group string

const (
	PreContract  Group = "pre_contract"
	PostContract Group = "post_contract"
	Terminal     Group = "terminal"
)

// aliases maps legacy phase names, accumulated over schema revisions of the
// original application, to their canonical phase.
var aliases = map[string]Phase{
	"quote":           Estimating,
	"quoted":          Estimating,
	"estimate":        Estimating,
	"quote_sent":      Estimating,
	"quote_accepted":  Approval,
	"accepted":        Approval,
	"contracted":      Contract,
	"contract_signed": Contract,
	"signed":          Contract,
	"in_progress":     Active,
	"construction":    Active,
	"punchlist":       PunchList,
	"punch-list":      PunchList,
	"completed":       Complete,
	"done":            Complete,
	"closed":          Complete,
	"warranty":        Maintained,
}

var canonical = map[Phase]Group{
	Intake:     PreContract,
	Estimating: PreContract,
	Approval:   PreContract,
	Contract:   PostContract,
	Active:     PostContract,
	PunchList:  PostContract,
	Complete:   Terminal,
	Maintained: Terminal,
}

// locked is the set of phases in which project scope is frozen and loop
// edits require an approved change order. punch_list is deliberately not
// locked: closing-out touch-ups are expected there.
var locked = map[Phase]bool{
	Contract:   true,
	Active:     true,
	Complete:   true,
	Maintained: true,
}

// Normalize resolves a raw phase value (possibly a legacy alias, mixed
// case, or padded) to its canonical phase. Unknown or empty input
// normalizes to intake.
func Normalize(raw string) Phase {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Intake
	}
	if p, ok := aliases[s]; ok {
		return p
	}
	if _, ok := canonical[Phase(s)]; ok {
		return Phase(s)
	}
	return Intake
}

// Valid reports whether p is a canonical phase.
func Valid(p Phase) bool {
	_, ok := canonical[p]
	return ok
}

// GroupOf returns the phase group for p. Inputs are normalized first, so
// legacy aliases group correctly.
func GroupOf(p Phase) Group {
	return canonical[Normalize(string(p))]
}

// Locked reports whether p freezes downstream loop editing.
func Locked(p Phase) bool {
	return locked[Normalize(string(p))]
}

// All returns the canonical phases in progression order.
func All() []Phase {
	return []Phase{Intake, Estimating, Approval, Contract, Active, PunchList, Complete, Maintained}
}
