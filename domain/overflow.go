package domain

import (
	"fmt"
	"strings"

	"scouting-bot/errors"
)

// OverflowPolicy decides what happens to the members left over when the
// population isn't a multiple of the group size.
type OverflowPolicy int

const (
	// NewGroup puts the leftover members in their own, smaller group.
	NewGroup OverflowPolicy = iota
	// Spread puts the leftover members round-robin into the existing groups.
	Spread
	// Error refuses to distribute anyone.
	Error
)

func (p OverflowPolicy) String() string {
	switch p {
	case NewGroup:
		return "newgroup"
	case Spread:
		return "spread"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newgroup", "new-group", "new_group":
		return NewGroup, nil
	case "spread":
		return Spread, nil
	case "error":
		return Error, nil
	default:
		return 0, fmt.Errorf("%w: unknown overflow handling %q", errors.ErrValidation, s)
	}
}
