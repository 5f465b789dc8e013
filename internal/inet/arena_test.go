package inet

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaAllocDisjoint(t *testing.T) {
	a := NewArena(1024)
	var wg sync.WaitGroup
	locs := make(chan Loc, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loc, err := a.Alloc(3)
			require.NoError(t, err)
			locs <- loc
		}()
	}
	wg.Wait()
	close(locs)

	seen := make(map[Loc]bool)
	for loc := range locs {
		for w := loc; w < loc+3; w++ {
			require.False(t, seen[w], "word %d double-allocated", w)
			seen[w] = true
		}
	}
}

func TestArenaExhaustion(t *testing.T) {
	a := NewArena(4)
	_, err := a.Alloc(3)
	require.NoError(t, err)
	_, err = a.Alloc(3)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrArenaExhausted)
}

func TestArenaSwap(t *testing.T) {
	a := NewArena(4)
	loc, err := a.Alloc(1)
	require.NoError(t, err)
	a.Set(loc, MustPack(SUB, 7))
	prev := a.Swap(loc, MustPack(VAR, 9))
	require.Equal(t, SUB, prev.Tag())
	require.Equal(t, uint64(7), prev.Target())
	require.Equal(t, MustPack(VAR, 9), a.Get(loc))
}
