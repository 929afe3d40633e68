package lint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupOrder_Default(t *testing.T) {
	order, err := NewGroupOrder(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOrder, order.Groups())

	rank, ok := order.Rank(GroupPublicFields)
	assert.True(t, ok)
	assert.Equal(t, 0, rank)

	rank, ok = order.Rank(GroupPrivateMethods)
	assert.True(t, ok)
	assert.Equal(t, 8, rank)

	assert.False(t, order.Contains(GroupInputs), "framework groups are absent from the default order")
}

func TestNewGroupOrder_Custom(t *testing.T) {
	order, err := NewGroupOrder([]string{"inputs", "outputs", "constructors", "public-methods"})
	require.NoError(t, err)

	rank, ok := order.Rank(GroupInputs)
	assert.True(t, ok)
	assert.Equal(t, 0, rank)

	assert.True(t, order.Contains(GroupOutputs))
	assert.False(t, order.Contains(GroupPublicFields), "omitted groups are excluded from checking")
}

func TestNewGroupOrder_UnknownGroup(t *testing.T) {
	_, err := NewGroupOrder([]string{"public-fields", "static-fields"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "static-fields", cfgErr.Key)
	assert.Contains(t, err.Error(), "unknown group")
}

func TestNewGroupOrder_DuplicateGroup(t *testing.T) {
	_, err := NewGroupOrder([]string{"public-fields", "constructors", "public-fields"})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "public-fields", cfgErr.Key)
	assert.Contains(t, err.Error(), "duplicate group")
}

func TestKnownGroup(t *testing.T) {
	g, ok := KnownGroup("host-listeners")
	assert.True(t, ok)
	assert.Equal(t, GroupHostListeners, g)

	_, ok = KnownGroup("protected-fields")
	assert.False(t, ok)
}

func TestMemberGroup_DisplayName(t *testing.T) {
	assert.Equal(t, "public fields", GroupPublicFields.DisplayName())
	assert.Equal(t, "constructors", GroupConstructors.DisplayName())
	assert.Equal(t, "view children", GroupViewChildren.DisplayName())
}
