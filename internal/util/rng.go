package util

import (
	"math/rand"
	"time"
)

// ResolveSeed returns seed unchanged unless it is zero, in which case a
// time-derived seed is picked so unseeded runs differ from each other.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := time.Now().UnixNano()
	if s == 0 {
		s = 1
	}
	return s
}

func New(seed int64) *rand.Rand {
	src := rand.NewSource(ResolveSeed(seed))
	return rand.New(src)
}
