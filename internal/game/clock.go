package game

import "fmt"

type Half int

const (
	Top Half = iota
	Bottom
)

func (h Half) String() string {
	if h == Bottom {
		return "bottom"
	}
	return "top"
}

func (h Half) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Half) UnmarshalText(b []byte) error {
	switch string(b) {
	case "top":
		*h = Top
	case "bottom":
		*h = Bottom
	default:
		return fmt.Errorf("unknown half %q", string(b))
	}
	return nil
}

const OutsPerHalf = 3

// Clock is the inning, half and out count of a game in progress.
type Clock struct {
	Inning int
	Half   Half
	Outs   int
}

func NewClock() Clock { return Clock{Inning: 1, Half: Top} }

// EndHalf resets the outs and flips the half, moving to the next inning after
// the bottom half.
func (c *Clock) EndHalf() {
	c.Outs = 0
	if c.Half == Top {
		c.Half = Bottom
		return
	}
	c.Half = Top
	c.Inning++
}
