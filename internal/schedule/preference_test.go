package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	weekends := []string{"2024-07-06", "2024-07-07"}

	sets := Normalize(
		[]string{"doi", "ogawa"},
		map[string][]string{"ogawa": {"2024-07-02"}, "ghost": {"2024-07-03"}},
		map[string][]string{"doi": {"2024-07-06", "2024-07-09"}, "ghost": {"2024-07-03"}},
		[]string{"doi"},
		weekends,
	)

	require.Len(t, sets, 2)
	assert.NotContains(t, sets, "ghost")

	doi := sets["doi"]
	assert.True(t, doi.IsOff("2024-07-06"))
	assert.True(t, doi.IsOff("2024-07-07"))
	assert.True(t, doi.IsOff("2024-07-09"))
	assert.True(t, doi.Declared("2024-07-06"), "declared weekend keeps its off marker")
	assert.False(t, doi.Declared("2024-07-07"))
	assert.True(t, doi.Structural["2024-07-07"])

	ogawa := sets["ogawa"]
	assert.True(t, ogawa.Preferred["2024-07-02"])
	assert.False(t, ogawa.IsOff("2024-07-06"))
	assert.Empty(t, ogawa.Structural)
}

func TestPreferenceSet_NilIsNeverOff(t *testing.T) {
	var p *PreferenceSet
	assert.False(t, p.IsOff("2024-07-01"))
	assert.False(t, p.Declared("2024-07-01"))
}

func TestPick(t *testing.T) {
	_, err := Pick[string](firstSource{}, nil)
	require.ErrorIs(t, err, ErrEmptyCandidateSet)

	_, err = PickIndex(firstSource{}, 0)
	require.ErrorIs(t, err, ErrEmptyCandidateSet)

	got, err := Pick(firstSource{}, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", got)

	counts := map[int]int{}
	src := NewSource(1)
	for i := 0; i < 3000; i++ {
		v, err := Pick(src, []int{0, 1, 2})
		require.NoError(t, err)
		counts[v]++
	}
	for v := 0; v < 3; v++ {
		assert.InDelta(t, 1000, counts[v], 150, "candidate %d", v)
	}
}
