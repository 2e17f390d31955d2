package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func runner(name string) *Player { return &Player{Name: name} }

// basesOf builds a base state from an X/O pattern ordered first, second, third.
func basesOf(pattern string) Bases {
	var b Bases
	names := []string{"r1", "r2", "r3"}
	for i, c := range pattern {
		if c == 'X' {
			b[i] = runner(names[i])
		}
	}
	return b
}

func TestBasesApply(t *testing.T) {
	tests := []struct {
		name     string
		before   string
		outcome  Outcome
		wantRuns int
		wantOuts int
		after    string
	}{
		{"single empty", "OOO", Single, 0, 0, "XOO"},
		{"single runner on first", "XOO", Single, 0, 0, "XXO"},
		{"single runner on third scores", "OOX", Single, 1, 0, "XOX"},
		{"single loaded", "XXX", Single, 1, 0, "XXX"},
		{"double empty", "OOO", Double, 0, 0, "OXO"},
		{"double runner on first", "XOO", Double, 0, 0, "OXX"},
		{"double second and third score", "OXX", Double, 2, 0, "OXX"},
		{"double loaded", "XXX", Double, 2, 0, "OXX"},
		{"triple empty", "OOO", Triple, 0, 0, "OOX"},
		{"triple loaded", "XXX", Triple, 3, 0, "OOX"},
		{"triple first and second", "XXO", Triple, 2, 0, "OOX"},
		{"home run empty", "OOO", HomeRun, 1, 0, "OOO"},
		{"grand slam", "XXX", HomeRun, 4, 0, "OOO"},
		{"home run runner on second", "OXO", HomeRun, 2, 0, "OOO"},
		{"walk empty", "OOO", Walk, 0, 0, "XOO"},
		{"walk runner on first", "XOO", Walk, 0, 0, "XXO"},
		{"walk first and second", "XXO", Walk, 0, 0, "XXX"},
		{"walk runner on third only", "OOX", Walk, 0, 0, "XOX"},
		{"walk second and third", "OXX", Walk, 0, 0, "XXX"},
		{"walk loaded", "XXX", Walk, 1, 0, "XXX"},
		{"out keeps runners", "XOX", Out, 0, 1, "XOX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := basesOf(tt.before)
			batter := runner("batter")
			runs, outs := b.Apply(tt.outcome, batter)
			assert.Equal(t, tt.wantRuns, runs)
			assert.Equal(t, tt.wantOuts, outs)
			assert.Equal(t, tt.after, b.String())
		})
	}
}

func TestBasesLoadedWalkForcesRunnersAlong(t *testing.T) {
	b := basesOf("XXX")
	r1, r2 := b[First], b[Second]
	batter := runner("batter")

	runs, _ := b.Apply(Walk, batter)

	assert.Equal(t, 1, runs)
	assert.Same(t, batter, b[First])
	assert.Same(t, r1, b[Second])
	assert.Same(t, r2, b[Third])
}

func TestWalkWithFirstOpenOnlyPlacesBatter(t *testing.T) {
	for _, before := range []string{"OOO", "OXO", "OOX", "OXX"} {
		b := basesOf(before)
		second, third := b[Second], b[Third]
		batter := runner("batter")

		runs, outs := b.Apply(Walk, batter)

		assert.Zero(t, runs, before)
		assert.Zero(t, outs, before)
		assert.Same(t, batter, b[First], before)
		assert.Equal(t, second, b[Second], before)
		assert.Equal(t, third, b[Third], before)
	}
}

func TestGrandSlamClearsBases(t *testing.T) {
	b := basesOf("XXX")
	runs, _ := b.Apply(HomeRun, runner("batter"))
	assert.Equal(t, 4, runs)
	assert.Zero(t, b.Count())
}

func TestBatterPlacement(t *testing.T) {
	cases := map[Outcome]int{Single: First, Double: Second, Triple: Third, Walk: First}
	for o, base := range cases {
		var b Bases
		batter := runner("batter")
		b.Apply(o, batter)
		assert.Same(t, batter, b[base], o.String())
	}
}

func TestBasesString(t *testing.T) {
	assert.Equal(t, "OOO", Bases{}.String())
	assert.Equal(t, "XOX", basesOf("XOX").String())
	assert.Len(t, basesOf("XXX").String(), 3)
}
