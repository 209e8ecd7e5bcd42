package undolist

import (
	"fmt"
	"strings"
)

// Direction is the way a row was swiped open.
// SwipeRight reveals the row's leading actions, SwipeLeft its trailing ones.
type Direction int

const (
	SwipeNone Direction = iota
	SwipeLeft
	SwipeRight
)

func (d Direction) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection accepts "left" or "right", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return SwipeLeft, nil
	case "right":
		return SwipeRight, nil
	}
	return SwipeNone, fmt.Errorf("unknown swipe direction %q (want left or right)", s)
}
