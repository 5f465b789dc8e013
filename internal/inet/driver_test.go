package inet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// buildDoubleApp constructs (\x. x) ((\y. y) NUL), one beta redex nested
// inside another, so a single-step budget stops mid-reduction.
func buildDoubleApp(t *testing.T, n *Net) Term {
	t.Helper()
	innerLam, err := n.NewLam(0, MustPack(VAR, 0))
	require.NoError(t, err)
	n.Set(innerLam+2, MustPack(VAR, uint64(innerLam+1)))
	innerApp, err := n.NewApp(NUL_(), 0)
	require.NoError(t, err)
	require.NoError(t, n.Link(0, MustPack(APP, uint64(innerApp)), MustPack(LAM, uint64(innerLam))))

	outerLam, err := n.NewLam(0, MustPack(VAR, 0))
	require.NoError(t, err)
	n.Set(outerLam+2, MustPack(VAR, uint64(outerLam+1)))
	outerApp, err := n.NewApp(MustPack(VAR, uint64(innerApp+2)), 0)
	require.NoError(t, err)
	require.NoError(t, n.Link(0, MustPack(APP, uint64(outerApp)), MustPack(LAM, uint64(outerLam))))
	return MustPack(VAR, uint64(outerApp+2))
}

func TestEvaluateDrainsToCompletion(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 4096, Workers: 2})
	buildDoubleApp(t, n)
	stats, err := n.Evaluate(context.Background(), Budget{})
	require.NoError(t, err)
	require.Equal(t, uint64(2), stats.BetaReductions)
}

func TestEvaluateStepLimitReached(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 4096, Workers: 1})
	buildDoubleApp(t, n)
	_, err := n.Evaluate(context.Background(), Budget{MaxSteps: 1})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrStepLimitReached)
}

func TestEvaluateContextCancellation(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 4096, Workers: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := n.Evaluate(ctx, Budget{})
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateEmptyNetReturnsImmediately(t *testing.T) {
	n := NewNet(Config{ArenaCapacity: 64, Workers: 4})
	done := make(chan struct{})
	go func() {
		_, _ = n.Evaluate(context.Background(), Budget{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Evaluate on an empty queue did not quiesce")
	}
}
