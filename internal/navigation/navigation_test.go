package navigation_test

import (
	"testing"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/navigation"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/phases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRouteExactAndPrefix(t *testing.T) {
	cases := map[string]navigation.SectionID{
		"/":                     navigation.Dashboard,
		"/dashboard":            navigation.Dashboard,
		"/settings":             navigation.Settings,
		"/settings/visibility":  navigation.Settings,
		"/pipeline":             navigation.Pipeline,
		"/estimates/42":         navigation.Pipeline,
		"/contracts":            navigation.Pipeline,
		"/production":           navigation.Production,
		"/team/member/7":        navigation.Team,
		"/time":                 navigation.Time,
		"/expenses/new":         navigation.Time,
		"/field":                navigation.Field,
		"/daily-logs/2026-08-01": navigation.Field,
		"/schedule":             navigation.Schedule,
	}

	for route, want := range cases {
		m := navigation.MatchRoute(route)
		require.False(t, m.Unmatched, "route %q should match", route)
		assert.Equal(t, want, m.Section, "route %q", route)
	}
}

func TestMatchRouteProjectsSpecialCase(t *testing.T) {
	for _, route := range []string{"/projects", "/projects/abc", "/projects/abc/loops/def"} {
		m := navigation.MatchRoute(route)
		require.False(t, m.Unmatched)
		assert.Equal(t, navigation.Production, m.Section, "route %q", route)
	}
}

func TestMatchRouteUnmatchedIsExplicit(t *testing.T) {
	m := navigation.MatchRoute("/totally/unmodeled")
	assert.True(t, m.Unmatched)
	assert.Empty(t, m.Section)

	// prefix matching must not treat /teamster as /team
	m = navigation.MatchRoute("/teamster")
	assert.True(t, m.Unmatched)
}

func TestMatchRouteNormalization(t *testing.T) {
	m := navigation.MatchRoute("settings/")
	require.False(t, m.Unmatched)
	assert.Equal(t, navigation.Settings, m.Section)

	m = navigation.MatchRoute("")
	require.False(t, m.Unmatched)
	assert.Equal(t, navigation.Dashboard, m.Section)
}

func TestTargetForPhase(t *testing.T) {
	assert.Equal(t, "/pipeline", navigation.TargetForPhase(phases.Intake))
	assert.Equal(t, "/estimates", navigation.TargetForPhase(phases.Estimating))
	assert.Equal(t, "/estimates", navigation.TargetForPhase(phases.Approval))
	assert.Equal(t, "/contracts", navigation.TargetForPhase(phases.Contract))
	assert.Equal(t, "/production", navigation.TargetForPhase(phases.Active))
	assert.Equal(t, "/field", navigation.TargetForPhase(phases.PunchList))
	assert.Equal(t, "/production", navigation.TargetForPhase(phases.Complete))

	// legacy aliases resolve before lookup
	assert.Equal(t, "/estimates", navigation.TargetForPhase(phases.Phase("quoted")))
}

func TestSectionMinLevels(t *testing.T) {
	expected := map[navigation.SectionID]int{
		navigation.Dashboard:  0,
		navigation.Field:      20,
		navigation.Schedule:   20,
		navigation.Pipeline:   60,
		navigation.Production: 40,
		navigation.Team:       60,
		navigation.Costs:      60,
		navigation.Time:       60,
		navigation.Settings:   100,
	}

	all := navigation.All()
	require.Len(t, all, len(expected))
	for id, level := range expected {
		s, ok := navigation.Get(id)
		require.True(t, ok)
		assert.Equal(t, level, s.MinLevel, "section %s", id)
	}
}
