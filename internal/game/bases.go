package game

import "fmt"

const (
	First = iota
	Second
	Third
)

// Bases tracks runners on first, second and third. A nil slot is empty.
// Runner pointers live only for the current half-inning.
type Bases [3]*Player

func (b *Bases) Clear() { *b = Bases{} }

func (b Bases) Occupied(base int) bool { return b[base] != nil }

func (b Bases) Loaded() bool { return b[First] != nil && b[Second] != nil && b[Third] != nil }

func (b Bases) Count() int {
	n := 0
	for _, r := range b {
		if r != nil {
			n++
		}
	}
	return n
}

// String renders occupancy as X/O ordered first, second, third.
func (b Bases) String() string {
	out := []byte("OOO")
	for i, r := range b {
		if r != nil {
			out[i] = 'X'
		}
	}
	return string(out)
}

// Apply moves runners for outcome o with batter at the plate and returns the
// runs that scored and the outs recorded. Scoring is read from the state
// before any runner moves.
func (b *Bases) Apply(o Outcome, batter *Player) (runs, outs int) {
	switch o {
	case Single:
		return b.single(batter), 0
	case Double:
		return b.double(batter), 0
	case Triple:
		return b.triple(batter), 0
	case HomeRun:
		return b.homeRun(), 0
	case Walk:
		return b.walk(batter), 0
	case Out:
		return 0, 1
	default:
		panic(fmt.Sprintf("bases: unhandled outcome %v", o))
	}
}

func (b *Bases) single(batter *Player) int {
	runs := 0
	if b[Third] != nil {
		runs++
	}
	if b[Second] != nil {
		b[Third] = b[Second]
	}
	if b[First] != nil {
		b[Second] = b[First]
	}
	b[First] = batter
	return runs
}

func (b *Bases) double(batter *Player) int {
	runs := 0
	if b[Third] != nil {
		runs++
	}
	if b[Second] != nil {
		runs++
	}
	if b[First] != nil {
		b[Third] = b[First]
	}
	b[Second] = batter
	b[First] = nil
	return runs
}

func (b *Bases) triple(batter *Player) int {
	runs := b.Count()
	b[Third] = batter
	b[Second] = nil
	b[First] = nil
	return runs
}

func (b *Bases) homeRun() int {
	runs := b.Count() + 1
	b.Clear()
	return runs
}

func (b *Bases) walk(batter *Player) int {
	runs := 0
	if b.Loaded() {
		runs++
	}
	if b[Second] != nil && b[First] != nil {
		b[Third] = b[Second]
	}
	if b[First] != nil {
		b[Second] = b[First]
	}
	b[First] = batter
	return runs
}
