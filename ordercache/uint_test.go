package ordercache

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintArithmetic(t *testing.T) {
	a, b := NewUint(1000), NewUint(300)

	require.True(t, a.Add(b).Equals64(1300))
	require.True(t, a.Sub(b).Equals64(700))

	require.Equal(t, 1, a.Cmp(b))
	require.Equal(t, -1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(NewUint(1000)))

	require.True(t, a.GreaterThan(b))
	require.True(t, a.GreaterThanOrEqualTo(a))
	require.True(t, b.LessThan(a))
	require.True(t, b.LessThanOrEqualTo(b))

	require.True(t, Min(a, b).Equals(b))
	require.True(t, Max(a, b).Equals(a))

	require.True(t, NewZeroUint().IsZero())
	require.False(t, a.IsZero())
}

func TestUintFromStr(t *testing.T) {
	u, err := NewUintFromStr("12345")
	require.NoError(t, err)
	require.True(t, u.Equals64(12345))

	u, err = NewUintFromStr("")
	require.NoError(t, err)
	require.True(t, u.IsZero())

	_, err = NewUintFromStr("not a number")
	require.Error(t, err)
}

func TestUintJSON(t *testing.T) {
	data, err := json.Marshal(NewUint(2700))
	require.NoError(t, err)
	require.Equal(t, "2700", string(data))

	var u Uint
	require.NoError(t, json.Unmarshal([]byte("2700"), &u))
	require.True(t, u.Equals64(2700))
}
