// roles.go
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

package roles

// ID identifies one of the fixed Hooomz roles.
type ID string

// The full set of Hooomz roles. Roles are defined at build time and are
// never created or destroyed at runtime.
const (
	Administrator ID = "administrator"
	Manager       ID = "manager"
	Foreman       ID = "foreman"
	Carpenter     ID = "carpenter"
	Apprentice    ID = "apprentice"
	Labourer      ID = "labourer"
	Homeowner     ID = "homeowner"
	Subcontractor ID = "subcontractor"
)

// Role carries the display metadata and authority level for a role.
type Role struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	ShortLabel  string `json:"short_label"`
	Color       string `json:"color"`
	Level       int    `json:"level"` // authority level, 0-100
	Description string `json:"description"`
}

// registry is the build-time role table. Order matters for All().
var registry = []Role{
	{Administrator, "Administrator", "Admin", "#7c3aed", 100, "Full access to every screen including settings"},
	{Manager, "Manager", "Mgr", "#2563eb", 80, "Runs the office: pipeline, estimates, contracts, team"},
	{Foreman, "Foreman", "Fore", "#0d9488", 60, "Runs job sites: production schedule, crews, daily logs"},
	{Carpenter, "Carpenter", "Carp", "#d97706", 40, "Skilled trade: assigned tasks, time tracking"},
	{Apprentice, "Apprentice", "Appr", "#ca8a04", 30, "Trade in training: assigned tasks, time tracking"},
	{Labourer, "Labourer", "Lab", "#65a30d", 20, "General site work: assigned tasks, time tracking"},
	{Homeowner, "Homeowner", "Owner", "#db2777", 20, "Client view: their project status and selections"},
	{Subcontractor, "Subcontractor", "Sub", "#64748b", 20, "External trade partner: their scoped work only"},
}

var byID = func() map[ID]Role {
	m := make(map[ID]Role, len(registry))
	for _, r := range registry {
		m[r.ID] = r
	}
	return m
}()

// Get returns the role for an id.
func Get(id ID) (Role, bool) {
	r, ok := byID[id]
	return r, ok
}

// Valid reports whether id names a registered role.
func Valid(id ID) bool {
	_, ok := byID[id]
	return ok
}

// Level returns the authority level for id, or 0 for an unknown id.
func Level(id ID) int {
	return byID[id].Level
}

// All returns every role in registry order.
func All() []Role {
	out := make([]Role, len(registry))
	copy(out, registry)
	return out
}
