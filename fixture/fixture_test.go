// Copyright (C) 2025 Cohera Authors.

package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDsDeterministic(t *testing.T) {
	f1, f2 := New(1), New(1)
	assert.Equal(t, f1.IDs(20), f2.IDs(20))
}

func TestIDRange(t *testing.T) {
	f := New(99)
	for i := 0; i < 1000; i++ {
		id := f.ID()
		require.GreaterOrEqual(t, id, int64(idMin))
		require.Less(t, id, int64(idMax))
	}
}

func TestCount(t *testing.T) {
	f := New(5)
	for i := 0; i < 100; i++ {
		n, err := f.Count(10)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, int64(0))
		require.Less(t, n, int64(10))
	}

	_, err := f.Count(0)
	require.Error(t, err)
}

func TestPick(t *testing.T) {
	items := []string{"alpha", "beta", "gamma"}

	f1, f2 := New(8), New(8)
	for i := 0; i < 50; i++ {
		p1, err := f1.Pick(items)
		require.NoError(t, err)
		p2, err := f2.Pick(items)
		require.NoError(t, err)
		assert.Equal(t, p1, p2)
		assert.Contains(t, items, p1)
	}

	_, err := f1.Pick(nil)
	require.Error(t, err)
	assert.True(t, NoItems.Contains(err))
}

func TestPerm(t *testing.T) {
	f := New(4)
	perm := f.Perm(30)
	require.Len(t, perm, 30)

	seen := make([]bool, 30)
	for _, v := range perm {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 30)
		require.False(t, seen[v], "duplicate element %d", v)
		seen[v] = true
	}

	assert.Equal(t, perm, New(4).Perm(30))
}

func TestNames(t *testing.T) {
	f := New(11)
	assert.NotEmpty(t, f.Username())
	assert.Regexp(t, `^The .+ .+$`, f.CommunityName())
	assert.NotEmpty(t, f.TopicTitle())

	// same seed, same sequence of names
	g, h := New(12), New(12)
	for i := 0; i < 20; i++ {
		assert.Equal(t, g.Username(), h.Username())
		assert.Equal(t, g.CommunityName(), h.CommunityName())
	}
}
