package visibility_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/navigation"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/roles"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore simulates unavailable durable storage.
type failingStore struct{}

func (failingStore) Load(ctx context.Context) (visibility.Settings, error) {
	return nil, errors.New("storage disabled")
}

func (failingStore) Save(ctx context.Context, s visibility.Settings) error {
	return errors.New("storage disabled")
}

func newResolver() *visibility.Resolver {
	return visibility.New(&visibility.MemoryStore{})
}

func TestDefaultsFollowLevelRule(t *testing.T) {
	v := newResolver()
	v.ResetToDefaults(context.Background())

	for _, r := range roles.All() {
		if r.ID == roles.Administrator {
			continue
		}
		for _, sec := range navigation.All() {
			want := r.Level >= sec.MinLevel
			got := v.CanSee(context.Background(), r.ID, sec.ID)
			assert.Equal(t, want, got, "role %s section %s", r.ID, sec.ID)
		}
	}
}

func TestAdministratorHardOverride(t *testing.T) {
	v := newResolver()
	ctx := context.Background()

	// The refusal is observable, and the stored value cannot change.
	err := v.Update(ctx, roles.Administrator, navigation.Settings, false)
	require.ErrorIs(t, err, visibility.ErrPolicyViolation)
	assert.True(t, v.CanSee(ctx, roles.Administrator, navigation.Settings))

	// Hard override, not a generous default: even stored false values for
	// other sections do not hide anything from the administrator.
	for _, sec := range navigation.All() {
		if sec.ID != navigation.Settings {
			require.NoError(t, v.Update(ctx, roles.Administrator, sec.ID, false))
		}
		assert.True(t, v.CanSee(ctx, roles.Administrator, sec.ID))
	}
}

func TestUpdatePersistsAndMerges(t *testing.T) {
	store := &visibility.MemoryStore{}
	ctx := context.Background()

	v := visibility.New(store)
	require.NoError(t, v.Update(ctx, roles.Labourer, navigation.Production, true))
	assert.True(t, v.CanSee(ctx, roles.Labourer, navigation.Production))

	// A fresh resolver over the same store observes the override merged
	// over freshly computed defaults.
	v2 := visibility.New(store)
	assert.True(t, v2.CanSee(ctx, roles.Labourer, navigation.Production))
	assert.False(t, v2.CanSee(ctx, roles.Labourer, navigation.Settings))
}

func TestUpdateRejectsUnknownIDs(t *testing.T) {
	v := newResolver()
	ctx := context.Background()

	err := v.Update(ctx, "plumber", navigation.Production, true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, visibility.ErrPolicyViolation)

	err = v.Update(ctx, roles.Manager, "warehouse", true)
	require.Error(t, err)
}

func TestResetDiscardsOverrides(t *testing.T) {
	v := newResolver()
	ctx := context.Background()

	require.NoError(t, v.Update(ctx, roles.Subcontractor, navigation.Pipeline, true))
	assert.True(t, v.CanSee(ctx, roles.Subcontractor, navigation.Pipeline))

	v.ResetToDefaults(ctx)
	assert.False(t, v.CanSee(ctx, roles.Subcontractor, navigation.Pipeline))
}

func TestStorageUnavailableDegradesToDefaults(t *testing.T) {
	v := visibility.New(failingStore{})
	ctx := context.Background()

	// Reads fall back to level-based defaults.
	assert.True(t, v.CanSee(ctx, roles.Manager, navigation.Pipeline))
	assert.False(t, v.CanSee(ctx, roles.Labourer, navigation.Settings))

	// A mutation still takes effect in memory for this session.
	require.NoError(t, v.Update(ctx, roles.Labourer, navigation.Pipeline, true))
	assert.True(t, v.CanSee(ctx, roles.Labourer, navigation.Pipeline))
}

func TestCanAccessRoute(t *testing.T) {
	v := newResolver()
	ctx := context.Background()

	// subcontractor level 20 < settings 100
	assert.False(t, v.CanAccessRoute(ctx, roles.Subcontractor, "/settings"))
	assert.True(t, v.CanAccessRoute(ctx, roles.Administrator, "/settings"))

	// /projects/... is governed by production (min level 40)
	assert.True(t, v.CanAccessRoute(ctx, roles.Foreman, "/projects/123"))
	assert.False(t, v.CanAccessRoute(ctx, roles.Labourer, "/projects/123"))

	// unmodeled routes fail open
	assert.True(t, v.CanAccessRoute(ctx, roles.Subcontractor, "/whatever"))
}

func TestMergeHandlesStaleBlob(t *testing.T) {
	store := &visibility.MemoryStore{}
	ctx := context.Background()

	// Persist a blob with an unknown role and section, as if written by an
	// older build, plus one real override.
	stale := visibility.Settings{
		"gone_role":   {navigation.Dashboard: true},
		roles.Foreman: {"gone_section": true, navigation.Team: true},
	}
	require.NoError(t, store.Save(ctx, stale))

	v := visibility.New(store)
	assert.True(t, v.CanSee(ctx, roles.Foreman, navigation.Team))
	// Everything else keeps its computed default.
	assert.True(t, v.CanSee(ctx, roles.Foreman, navigation.Production))
	assert.False(t, v.CanSee(ctx, roles.Foreman, navigation.Settings))
}

func TestVisibleSectionsOrdered(t *testing.T) {
	v := newResolver()
	ctx := context.Background()

	secs := v.VisibleSections(ctx, roles.Labourer)
	require.NotEmpty(t, secs)
	assert.Equal(t, navigation.Dashboard, secs[0].ID)
	for _, s := range secs {
		assert.NotEqual(t, navigation.Settings, s.ID)
	}
}
