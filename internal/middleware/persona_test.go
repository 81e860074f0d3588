package middleware_test

import (
	"testing"

	"github.com/nrmontgomery1984-cell/hooomz-os/internal/middleware"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/roles"
	"github.com/nrmontgomery1984-cell/hooomz-os/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePersonaNoHeader(t *testing.T) {
	role, err := middleware.ResolvePersona(roles.Foreman, "")
	require.NoError(t, err)
	assert.Equal(t, roles.Foreman, role)
}

func TestResolvePersonaAdminAssumesRole(t *testing.T) {
	role, err := middleware.ResolvePersona(roles.Administrator, "homeowner")
	require.NoError(t, err)
	assert.Equal(t, roles.Homeowner, role)
}

func TestResolvePersonaNonAdminRefused(t *testing.T) {
	_, err := middleware.ResolvePersona(roles.Manager, "homeowner")
	require.Error(t, err)
	ce, ok := err.(*types.CustomError)
	require.True(t, ok)
	assert.Equal(t, 403, ce.Code)
}

func TestResolvePersonaUnknownRole(t *testing.T) {
	_, err := middleware.ResolvePersona(roles.Administrator, "plumber")
	require.Error(t, err)
	ce, ok := err.(*types.CustomError)
	require.True(t, ok)
	assert.Equal(t, 400, ce.Code)
}
