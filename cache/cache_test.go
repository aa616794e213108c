package cache_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/resample/cache"
	"github.com/katalvlaran/resample/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		p, err := cache.New(size)
		assert.ErrorIs(t, err, cache.ErrInvalidSize)
		assert.Nil(t, p)
	}
}

// TestSplit_HitReturnsEqualIndependentCopies checks memoization and copy
// semantics.
func TestSplit_HitReturnsEqualIndependentCopies(t *testing.T) {
	p, err := cache.New(4)
	require.NoError(t, err)
	s := split.KFoldStrategy{K: 5, Seed: 7}

	first, err := p.Split(s, 50)
	require.NoError(t, err)
	second, err := p.Split(s, 50)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	direct, err := s.Split(50)
	require.NoError(t, err)
	assert.Equal(t, direct, second)

	// mutating a returned result must not leak into the cache
	first[0].Test[0] = -1
	second[1].Train[0] = -1
	third, err := p.Split(s, 50)
	require.NoError(t, err)
	assert.Equal(t, direct, third)

	assert.Equal(t, cache.Stats{Hits: 2, Misses: 1, Entries: 1}, p.Stats())
}

// TestSplit_KeyIncludesSizeAndParameters checks that distinct recipes do
// not share an entry.
func TestSplit_KeyIncludesSizeAndParameters(t *testing.T) {
	p, err := cache.New(8)
	require.NoError(t, err)

	_, err = p.Split(split.KFoldStrategy{K: 5, Seed: 7}, 50)
	require.NoError(t, err)
	_, err = p.Split(split.KFoldStrategy{K: 5, Seed: 7}, 60)
	require.NoError(t, err)
	_, err = p.Split(split.KFoldStrategy{K: 5, Seed: 8}, 50)
	require.NoError(t, err)
	_, err = p.Split(split.KFoldStrategy{K: 5, Seed: 7, NoShuffle: true}, 50)
	require.NoError(t, err)

	st := p.Stats()
	assert.Equal(t, uint64(0), st.Hits)
	assert.Equal(t, uint64(4), st.Misses)
	assert.Equal(t, 4, p.Len())
}

// TestSplit_ErrorsAreNotCached checks validation passthrough.
func TestSplit_ErrorsAreNotCached(t *testing.T) {
	p, err := cache.New(2)
	require.NoError(t, err)

	_, err = p.Split(split.KFoldStrategy{K: 10}, 5)
	assert.ErrorIs(t, err, split.ErrInvalidK)
	assert.Zero(t, p.Len())

	_, err = p.Split(nil, 5)
	assert.Error(t, err)
}

// TestSplit_EvictionAndPurge checks LRU capacity and Purge.
func TestSplit_EvictionAndPurge(t *testing.T) {
	p, err := cache.New(2)
	require.NoError(t, err)

	for _, n := range []int{10, 20, 30} {
		_, err := p.Split(split.LeaveOneOutStrategy{}, n)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, p.Len())

	// n=10 was evicted
	_, err = p.Split(split.LeaveOneOutStrategy{}, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), p.Stats().Misses)

	p.Purge()
	assert.Zero(t, p.Len())
}

// TestSplit_Concurrent exercises concurrent hits on one entry.
func TestSplit_Concurrent(t *testing.T) {
	p, err := cache.New(4)
	require.NoError(t, err)
	s := split.RepeatedSplitStrategy{Repeats: 5, TestFraction: 0.2, Seed: 3}
	want, err := s.Split(40)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Split(s, 40)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
	st := p.Stats()
	assert.Equal(t, uint64(8), st.Hits+st.Misses)
}
