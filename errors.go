package quadtree

import (
	"github.com/pkg/errors"
)

// MaxDepth bounds the recursion of New.
const MaxDepth = 32

var (
	// ErrEmptyInput is returned when no points and no bounds are given, so
	// there is nothing to derive a bounding box from.
	ErrEmptyInput = errors.New("quadtree: no points and no bounds")
	// ErrInvalidDepth is returned for a max depth outside [1, MaxDepth].
	ErrInvalidDepth = errors.New("quadtree: invalid depth")
	// ErrDegenerateBounds is returned for non-finite or inverted bounds.
	ErrDegenerateBounds = errors.New("quadtree: degenerate bounds")
	// ErrInvalidPoint is returned for a point with a NaN or infinite coordinate.
	ErrInvalidPoint = errors.New("quadtree: invalid point")
)
