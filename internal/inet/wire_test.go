package inet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveIntoVacantSubCompletesImmediately(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 64, Workers: 1})
	loc, err := n.NewSub(0)
	require.NoError(t, err)
	require.NoError(t, n.Move(0, loc, NUL_()))
	require.Equal(t, NUL_(), n.Get(loc))
	require.Equal(t, 0, n.queue.Len())
}

func TestLinkToVarParksAtTarget(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 64, Workers: 1})
	subLoc, err := n.NewSub(0)
	require.NoError(t, err)
	era := ERA_()
	require.NoError(t, n.Link(0, era, MustPack(VAR, uint64(subLoc))))
	require.Equal(t, era, n.Get(subLoc))
	require.Equal(t, 0, n.queue.Len())
}

func TestLinkToConcreteValueEnqueuesRedex(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 64, Workers: 1})
	lamLoc, err := n.NewLam(0, NUL_())
	require.NoError(t, err)
	appLoc, err := n.NewApp(NUL_(), 0)
	require.NoError(t, err)
	require.NoError(t, n.Link(0, MustPack(APP, uint64(appLoc)), MustPack(LAM, uint64(lamLoc))))
	require.Equal(t, 1, n.queue.Len())
}

func TestMoveCollisionRecursesIntoLink(t *testing.T) {
	// Park a DUP consumer at a binder slot, then move a concrete LAM in:
	// the collision must recurse into a genuine DUP-LAM redex.
	n := NewNet(Config{ArenaCapacity: 64, Workers: 1})
	binderLoc, err := n.NewSub(0)
	require.NoError(t, err)
	dLoc, err := n.NewDupRaw()
	require.NoError(t, err)
	n.Set(dLoc+1, MustPack(SUB, 1))
	n.Set(dLoc+2, MustPack(SUB, 2))
	require.NoError(t, n.Move(0, binderLoc, MustPack(DUP, uint64(dLoc))))
	require.Equal(t, 0, n.queue.Len())

	lamLoc, err := n.NewLam(0, NUL_())
	require.NoError(t, err)
	require.NoError(t, n.Move(0, binderLoc, MustPack(LAM, uint64(lamLoc))))
	require.Equal(t, 1, n.queue.Len())
	r, ok := n.queue.Pop(0)
	require.True(t, ok)
	require.Equal(t, DUP, r.Neg.Tag())
	require.Equal(t, LAM, r.Pos.Tag())
}

func TestWiringOverflow(t *testing.T) {
	// A MaxWiringDepth of 1 leaves no room for the second trampoline step a
	// genuine collision requires (Move into an occupied slot, then Link the
	// displaced occupant onward), so it must report WiringOverflow.
	n := NewNet(Config{ArenaCapacity: 64, Workers: 1, MaxWiringDepth: 1})
	binderLoc, err := n.NewSub(0)
	require.NoError(t, err)
	dLoc, err := n.NewDupRaw()
	require.NoError(t, err)
	n.Set(dLoc+1, MustPack(SUB, 1))
	n.Set(dLoc+2, MustPack(SUB, 2))
	require.NoError(t, n.Move(0, binderLoc, MustPack(DUP, uint64(dLoc))))

	lamLoc, err := n.NewLam(0, NUL_())
	require.NoError(t, err)
	err = n.Move(0, binderLoc, MustPack(LAM, uint64(lamLoc)))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWiringOverflow)
}
