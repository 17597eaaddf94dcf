package verlet

import "errors"

// Domain errors for simulation state.
var (
	// ErrInvalidState indicates a position became NaN or Inf.
	ErrInvalidState = errors.New("verlet: invalid state (NaN or Inf detected)")

	// ErrExhausted indicates a body has no sticks left and is eligible
	// for removal by its container.
	ErrExhausted = errors.New("verlet: body exhausted (no sticks remain)")

	// ErrResolveOverflow indicates a collider push-out hit its iteration
	// cap and left a point unresolved.
	ErrResolveOverflow = errors.New("verlet: collision resolve iteration cap exceeded")
)
