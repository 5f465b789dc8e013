package church

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inetvm/inet/internal/inet"
)

func run(t *testing.T, build Scenario) (inet.Value, inet.Statistics) {
	t.Helper()
	n := inet.NewNet(inet.Config{ArenaCapacity: 1 << 20, Workers: 4})
	root, err := build(n)
	require.NoError(t, err)
	v, stats, err := Run(context.Background(), n, root, inet.Budget{})
	require.NoError(t, err)
	return v, stats
}

func TestIdentityScenarioReadsBackThree(t *testing.T) {
	v, _ := run(t, IdentityScenario)
	require.Equal(t, inet.KindNumber, v.Kind)
	require.Equal(t, uint64(3), v.Number)
}

func TestDoubleThreeScenarioReadsBackSix(t *testing.T) {
	v, stats := run(t, DoubleThreeScenario)
	require.Equal(t, inet.KindNumber, v.Kind)
	require.Equal(t, uint64(6), v.Number)
	require.Greater(t, stats.Duplications, uint64(0))
}

func TestFourTimesThreeScenarioReadsBackTwelve(t *testing.T) {
	v, _ := run(t, FourTimesThreeScenario)
	require.Equal(t, inet.KindNumber, v.Kind)
	require.Equal(t, uint64(12), v.Number)
}

func TestKErasureScenarioDiscardsSecondArgument(t *testing.T) {
	v, stats := run(t, KErasureScenario)
	require.Equal(t, inet.KindNumber, v.Kind)
	require.Equal(t, uint64(5), v.Number)
	require.Greater(t, stats.Erasures, uint64(0))
}

func TestDuplicationScenarioResolvesToFreeReference(t *testing.T) {
	n := inet.NewNet(inet.Config{ArenaCapacity: 1 << 20, Workers: 2})
	root, zLoc, err := DuplicationScenario(n)
	require.NoError(t, err)
	stats, err := n.Evaluate(context.Background(), inet.Budget{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.Duplications, uint64(1))
	resolved := Resolve(n, root)
	require.Equal(t, inet.VAR, resolved.Tag())
	require.Equal(t, zLoc, resolved.Loc())
}

func TestIfTrueScenarioReadsBackOne(t *testing.T) {
	v, _ := run(t, IfTrueScenario)
	require.Equal(t, inet.KindNumber, v.Kind)
	require.Equal(t, uint64(1), v.Number)
}
