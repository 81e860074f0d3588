// resolver.go
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

// Package visibility computes which navigation sections a role may see.
// Defaults derive from role authority levels; an administrator can
// override them per role and section, and the overrides persist through
// an injected Store. The resolver never fails a read: if the store is
// unreachable it degrades to the computed defaults for the session.
package visibility

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/navigation"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/roles"
)

// ErrPolicyViolation reports a refused settings mutation, such as hiding
// the settings section from the administrator role.
var ErrPolicyViolation = errors.New("visibility policy violation")

// Resolver owns the visibility settings for all roles. Construct with New
// and share by reference; there is no package-level instance.
type Resolver struct {
	store Store

	mu       sync.RWMutex
	settings Settings
	loaded   bool
	degraded bool
}

// New creates a Resolver backed by store. Settings load lazily on first
// read.
func New(store Store) *Resolver {
	return &Resolver{store: store}
}

// Defaults computes the level-based default settings: a section is visible
// to a role when the role's authority level meets the section's minimum.
func Defaults() Settings {
	s := make(Settings, len(roles.All()))
	for _, r := range roles.All() {
		m := make(map[navigation.SectionID]bool, len(navigation.All()))
		for _, sec := range navigation.All() {
			m[sec.ID] = r.Level >= sec.MinLevel
		}
		s[r.ID] = m
	}
	return s
}

// merge lays persisted values over fresh defaults, so roles and sections
// added after the blob was written still get a sane default.
func merge(persisted Settings) Settings {
	s := Defaults()
	for role, sections := range persisted {
		if _, ok := s[role]; !ok {
			continue
		}
		for sec, visible := range sections {
			if _, ok := s[role][sec]; !ok {
				continue
			}
			s[role][sec] = visible
		}
	}
	return s
}

// ensure lazily initializes settings from the store. Store failures are
// logged once and swallowed; the session continues on defaults.
func (v *Resolver) ensure(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loaded {
		return
	}

	persisted, err := v.store.Load(ctx)
	if err != nil {
		if !v.degraded {
			log.Printf("visibility: settings store unavailable, using defaults: %v", err)
			v.degraded = true
		}
		v.settings = Defaults()
		v.loaded = true
		return
	}

	v.settings = merge(persisted)
	v.loaded = true
}

// CanSee reports whether role may see section. The administrator role is a
// hard override: always true, regardless of stored settings. For other
// roles an unset entry reads as hidden.
func (v *Resolver) CanSee(ctx context.Context, role roles.ID, section navigation.SectionID) bool {
	if role == roles.Administrator {
		return true
	}

	v.ensure(ctx)
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.settings[role][section]
}

// CanAccessRoute reports whether role may access route. Routes no section
// claims are accessible: unmodeled routes fail open.
func (v *Resolver) CanAccessRoute(ctx context.Context, role roles.ID, route string) bool {
	m := navigation.MatchRoute(route)
	if m.Unmatched {
		return true
	}
	return v.CanSee(ctx, role, m.Section)
}

// VisibleSections returns the sections role may see, in registry order.
func (v *Resolver) VisibleSections(ctx context.Context, role roles.ID) []navigation.Section {
	var out []navigation.Section
	for _, sec := range navigation.All() {
		if v.CanSee(ctx, role, sec.ID) {
			out = append(out, sec)
		}
	}
	return out
}

// Matrix returns a copy of the full settings map.
func (v *Resolver) Matrix(ctx context.Context) Settings {
	v.ensure(ctx)
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.settings.clone()
}

func (s Settings) clone() Settings {
	out := make(Settings, len(s))
	for role, sections := range s {
		m := make(map[navigation.SectionID]bool, len(sections))
		for sec, visible := range sections {
			m[sec] = visible
		}
		out[role] = m
	}
	return out
}

// Update sets the visibility of section for targetRole. The acting role is
// validated by the handler layer; this method only enforces the invariant
// that the administrator can never lose the settings section, returning
// ErrPolicyViolation so the refusal is observable. The whole map persists
// on every accepted mutation; the in-memory state updates first, so this
// session's reads always see the write even if persistence fails.
func (v *Resolver) Update(ctx context.Context, targetRole roles.ID, section navigation.SectionID, visible bool) error {
	if !roles.Valid(targetRole) {
		return fmt.Errorf("unknown role: %s", targetRole)
	}
	if !navigation.Valid(section) {
		return fmt.Errorf("unknown section: %s", section)
	}
	if targetRole == roles.Administrator && section == navigation.Settings && !visible {
		return fmt.Errorf("%w: settings cannot be hidden from the administrator role", ErrPolicyViolation)
	}

	v.ensure(ctx)
	v.mu.Lock()
	v.settings[targetRole][section] = visible
	snapshot := v.settings.clone()
	v.mu.Unlock()

	v.persist(ctx, snapshot)
	return nil
}

// ResetToDefaults recomputes every role's visibility from the level rule
// and persists it, discarding all manual overrides.
func (v *Resolver) ResetToDefaults(ctx context.Context) {
	v.mu.Lock()
	v.settings = Defaults()
	v.loaded = true
	snapshot := v.settings.clone()
	v.mu.Unlock()

	v.persist(ctx, snapshot)
}

func (v *Resolver) persist(ctx context.Context, s Settings) {
	if err := v.store.Save(ctx, s); err != nil {
		v.mu.Lock()
		if !v.degraded {
			log.Printf("visibility: failed to persist settings, continuing in memory: %v", err)
			v.degraded = true
		}
		v.mu.Unlock()
	}
}
