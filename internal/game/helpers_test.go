package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func lineupOf(t *testing.T, prefix string, n int, avg, obp float64) []Player {
	t.Helper()
	out := make([]Player, 0, n)
	for i := 0; i < n; i++ {
		p, err := NewPlayer(fmt.Sprintf("%s%d", prefix, i+1), avg, obp, avg*1.5)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func teamOf(t *testing.T, name string, avg, obp float64) *Team {
	t.Helper()
	tm, err := NewTeam(name, lineupOf(t, name+"-", 9, avg, obp))
	require.NoError(t, err)
	return tm
}
