package phases_test

import (
	"testing"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/phases"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeAliases(t *testing.T) {
	cases := map[string]phases.Phase{
		"quote":           phases.Estimating,
		"quoted":          phases.Estimating,
		"estimate":        phases.Estimating,
		"quote_sent":      phases.Estimating,
		"quote_accepted":  phases.Approval,
		"accepted":        phases.Approval,
		"contracted":      phases.Contract,
		"contract_signed": phases.Contract,
		"signed":          phases.Contract,
		"in_progress":     phases.Active,
		"construction":    phases.Active,
		"punchlist":       phases.PunchList,
		"punch-list":      phases.PunchList,
		"completed":       phases.Complete,
		"done":            phases.Complete,
		"closed":          phases.Complete,
		"warranty":        phases.Maintained,
	}

	for raw, want := range cases {
		assert.Equal(t, want, phases.Normalize(raw), "alias %q", raw)
	}
}

func TestNormalizeCanonicalRoundTrip(t *testing.T) {
	for _, p := range phases.All() {
		assert.Equal(t, p, phases.Normalize(string(p)))
	}
}

func TestNormalizeUnknownAndEmpty(t *testing.T) {
	assert.Equal(t, phases.Intake, phases.Normalize(""))
	assert.Equal(t, phases.Intake, phases.Normalize("   "))
	assert.Equal(t, phases.Intake, phases.Normalize("demolition_derby"))
	assert.Equal(t, phases.Active, phases.Normalize("  ACTIVE "))
}

func TestGroups(t *testing.T) {
	assert.Equal(t, phases.PreContract, phases.GroupOf(phases.Intake))
	assert.Equal(t, phases.PreContract, phases.GroupOf(phases.Estimating))
	assert.Equal(t, phases.PreContract, phases.GroupOf(phases.Approval))
	assert.Equal(t, phases.PostContract, phases.GroupOf(phases.Contract))
	assert.Equal(t, phases.PostContract, phases.GroupOf(phases.Active))
	assert.Equal(t, phases.PostContract, phases.GroupOf(phases.PunchList))
	assert.Equal(t, phases.Terminal, phases.GroupOf(phases.Complete))
	assert.Equal(t, phases.Terminal, phases.GroupOf(phases.Maintained))

	// legacy alias groups through normalization
	assert.Equal(t, phases.PostContract, phases.GroupOf(phases.Phase("contracted")))
}

func TestLockedSet(t *testing.T) {
	lockedSet := map[phases.Phase]bool{
		phases.Contract:   true,
		phases.Active:     true,
		phases.Complete:   true,
		phases.Maintained: true,
	}
	for _, p := range phases.All() {
		assert.Equal(t, lockedSet[p], phases.Locked(p), "phase %s", p)
	}
}
