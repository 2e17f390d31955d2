package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchDeterministic(t *testing.T) {
	teams := func() (*Team, *Team, error) {
		return teamOf(t, "A", .28, .36), teamOf(t, "B", .25, .32), nil
	}
	a, err := RunBatch(40, 77, 4, DefaultRules(), teams)
	require.NoError(t, err)
	b, err := RunBatch(40, 77, 8, DefaultRules(), teams)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 40, a.Team1Wins+a.Team2Wins+a.Ties)
	assert.Equal(t, "A", a.Team1)
	assert.GreaterOrEqual(t, a.AvgAtBats, 54.0)
}

func TestRunBatchPropagatesErrors(t *testing.T) {
	boom := errors.New("no roster")
	_, err := RunBatch(3, 1, 2, DefaultRules(), func() (*Team, *Team, error) { return nil, nil, boom })
	require.ErrorIs(t, err, boom)
}

func TestRunBatchRejectsEmpty(t *testing.T) {
	_, err := RunBatch(0, 1, 2, DefaultRules(), nil)
	assert.Error(t, err)
}
