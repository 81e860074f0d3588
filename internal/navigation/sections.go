// sections.go
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

// Package navigation defines the UI section registry, resolves routes to
// owning sections, and maps project phases to their default navigation
// target.
package navigation

// SectionID identifies a top-level navigation section of the client.
type SectionID string

const (
	Dashboard  SectionID = "dashboard"
	Field      SectionID = "field"
	Schedule   SectionID = "schedule"
	Pipeline   SectionID = "pipeline"
	Production SectionID = "production"
	Team       SectionID = "team"
	Costs      SectionID = "costs"
	Time       SectionID = "time"
	Settings   SectionID = "settings"
)

// Section describes a navigation section and the routes it governs.
type Section struct {
	ID          SectionID `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Routes      []string  `json:"routes"`   // route prefixes this section owns
	MinLevel    int       `json:"min_level"` // default visibility threshold
}

// registry is the static section table. Order matters for All() and for
// the client's nav rendering order.
var registry = []Section{
	{Dashboard, "Dashboard", "Company overview and today's numbers", []string{"/", "/dashboard"}, 0},
	{Field, "Field", "Daily logs, punch items, site photos", []string{"/field", "/daily-logs", "/punch"}, 20},
	{Schedule, "Schedule", "Crew calendar and look-ahead", []string{"/schedule", "/calendar"}, 20},
	{Pipeline, "Pipeline", "Leads, estimates, and contracts", []string{"/pipeline", "/leads", "/estimates", "/contracts"}, 60},
	{Production, "Production", "Active jobs, loops, and tasks", []string{"/production"}, 40},
	{Team, "Team", "Employees, roles, and assignments", []string{"/team", "/employees"}, 60},
	{Costs, "Cost Catalogue", "Unit costs and assemblies", []string{"/costs", "/catalogue"}, 60},
	{Time, "Time & Budget", "Time tracking and budget burn", []string{"/time", "/budget", "/expenses"}, 60},
	{Settings, "Settings", "Company settings and visibility controls", []string{"/settings"}, 100},
}

var byID = func() map[SectionID]Section {
	m := make(map[SectionID]Section, len(registry))
	for _, s := range registry {
		m[s.ID] = s
	}
	return m
}()

// Get returns the section for an id.
func Get(id SectionID) (Section, bool) {
	s, ok := byID[id]
	return s, ok
}

// Valid reports whether id names a registered section.
func Valid(id SectionID) bool {
	_, ok := byID[id]
	return ok
}

// All returns every section in registry order.
func All() []Section {
	out := make([]Section, len(registry))
	copy(out, registry)
	return out
}
