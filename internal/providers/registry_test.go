package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
)

type stubAdapter struct {
	Adapter
	name string
}

func (s stubAdapter) Name() string { return s.name }

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(stubAdapter{name: "vezgo"}, stubAdapter{name: "saltedge"})
	require.NoError(t, err)

	a, err := r.Get("saltedge")
	require.NoError(t, err)
	assert.Equal(t, "saltedge", a.Name())

	_, err = r.Get("plaid")
	assert.ErrorIs(t, err, common.ErrUnknownProvider)

	assert.Equal(t, []string{"saltedge", "vezgo"}, r.Names())
	require.Len(t, r.All(), 2)
	assert.Equal(t, "saltedge", r.All()[0].Name())
}

func TestNewRegistry_DuplicateAdapter(t *testing.T) {
	_, err := NewRegistry(stubAdapter{name: "vezgo"}, stubAdapter{name: "vezgo"})
	assert.Error(t, err)
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(NewError("saltedge", "GetAccounts", 401, assert.AnError)))
	assert.True(t, IsAuthError(NewError("vezgo", "GetAccounts", 403, assert.AnError)))
	assert.False(t, IsAuthError(NewError("vezgo", "GetAccounts", 500, assert.AnError)))
	assert.False(t, IsAuthError(assert.AnError))
	assert.True(t, IsNotFound(NewError("snaptrade", "Deregister", 404, assert.AnError)))
}
