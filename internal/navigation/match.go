package navigation

import (
	"strings"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/phases"
)

// RouteMatch is the result of resolving a route to its owning section.
// Unmatched is an explicit case rather than an implicit fallthrough so the
// fail-open default can be audited by callers.
type RouteMatch struct {
	Section   SectionID `json:"section,omitempty"`
	Unmatched bool      `json:"unmatched"`
}

// MatchRoute resolves a route to the section that governs it using
// longest-prefix matching. Routes under /projects/ belong to production:
// project detail pages have no prefix of their own in the section table.
// A route no section claims yields Unmatched, which callers treat as
// accessible.
func MatchRoute(route string) RouteMatch {
	route = normalizeRoute(route)

	if route == "/projects" || strings.HasPrefix(route, "/projects/") {
		return RouteMatch{Section: Production}
	}

	var best SectionID
	bestLen := -1
	for _, s := range registry {
		for _, prefix := range s.Routes {
			if !routeCovered(route, prefix) {
				continue
			}
			if len(prefix) > bestLen {
				best = s.ID
				bestLen = len(prefix)
			}
		}
	}

	if bestLen < 0 {
		return RouteMatch{Unmatched: true}
	}
	return RouteMatch{Section: best}
}

// routeCovered reports whether route is the prefix itself or a sub-path of
// it. "/" only matches exactly, otherwise it would own every route.
func routeCovered(route, prefix string) bool {
	if prefix == "/" {
		return route == "/"
	}
	return route == prefix || strings.HasPrefix(route, prefix+"/")
}

func normalizeRoute(route string) string {
	route = strings.TrimSpace(route)
	if route == "" {
		return "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
	}
	return route
}

// phaseTargets maps a project's lifecycle phase to the route the nav
// highlights when a project-scoped page has no more specific indicator.
var phaseTargets = map[phases.Phase]string{
	phases.Intake:     "/pipeline",
	phases.Estimating: "/estimates",
	phases.Approval:   "/estimates",
	phases.Contract:   "/contracts",
	phases.Active:     "/production",
	phases.PunchList:  "/field",
	phases.Complete:   "/production",
	phases.Maintained: "/production",
}

// TargetForPhase returns the default navigation route for a phase.
// Estimate sub-pages always map to the pipeline's estimates route
// regardless of phase; only the top-level project page falls back here.
func TargetForPhase(p phases.Phase) string {
	if target, ok := phaseTargets[phases.Normalize(string(p))]; ok {
		return target
	}
	return "/pipeline"
}
