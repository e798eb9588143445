package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMap(t *testing.T) {
	m := NewHashMap[string, string]()
	require.Nil(t, m.Put("owner", "alice", false))
	require.Nil(t, m.Put("tier", "gold", false))
	require.ErrorIs(t, m.Put("owner", "bob", false), ErrValueExisted)
	v, err := m.Get("owner")
	require.Nil(t, err)
	require.Equal(t, "alice", v)

	require.Nil(t, m.Put("owner", "bob", true))
	v, err = m.Get("owner")
	require.Nil(t, err)
	require.Equal(t, "bob", v)

	require.Equal(t, 2, m.Size())
	require.ElementsMatch(t, []string{"owner", "tier"}, m.Keys())

	require.Nil(t, m.Delete("tier"))
	require.ErrorIs(t, m.Delete("tier"), ErrValueNotExisted)
	_, err = m.Get("tier")
	require.ErrorIs(t, err, ErrValueNotExisted)
	require.Equal(t, false, m.Contains("tier"))
	require.Equal(t, 1, m.Size())
}
