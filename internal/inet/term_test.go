package inet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		tag    Tag
		target uint64
	}{
		{VAR, 0},
		{DUP, 1},
		{SUP, targetMax - 1},
		{LAM, 12345},
	}
	for _, c := range cases {
		term, err := Pack(c.tag, c.target)
		require.NoError(t, err)
		require.Equal(t, c.tag, term.Tag())
		require.Equal(t, c.target, term.Target())
		require.Equal(t, Loc(c.target), term.Loc())
	}
}

func TestPackRejectsOversizedTarget(t *testing.T) {
	_, err := Pack(VAR, targetMax)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidTerm)
}

func TestTagPolarity(t *testing.T) {
	for _, tag := range []Tag{VAR, NUL, LAM, SUP} {
		require.True(t, tag.Positive(), tag.String())
		require.False(t, tag.Negative(), tag.String())
	}
	for _, tag := range []Tag{SUB, ERA, APP, DUP} {
		require.True(t, tag.Negative(), tag.String())
		require.False(t, tag.Positive(), tag.String())
	}
}
