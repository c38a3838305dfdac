package registry

import (
	"cmp"
	"fmt"
)

// Days and parts the registry accepts.
const (
	FirstDay = 1
	LastDay  = 25
	MaxPart  = 2
)

// Key identifies one part of one day.
type Key struct {
	Day  int
	Part int
}

// Validate reports whether k names a possible puzzle.
func (k Key) Validate() error {
	if k.Day < FirstDay || k.Day > LastDay {
		return fmt.Errorf("day %d out of range %d..%d", k.Day, FirstDay, LastDay)
	}
	if k.Part < 1 || k.Part > MaxPart {
		return fmt.Errorf("part %d out of range 1..%d", k.Part, MaxPart)
	}
	return nil
}

// Compare orders keys by day, then part.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Day, o.Day); c != 0 {
		return c
	}
	return cmp.Compare(k.Part, o.Part)
}

func (k Key) String() string {
	return fmt.Sprintf("day%02d/part%d", k.Day, k.Part)
}
