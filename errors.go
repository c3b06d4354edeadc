package tilegrid

import (
	"errors"
)

var (
	// ErrNoLayer is returned when the level has no tile container where we
	// expect one.
	ErrNoLayer = errors.New("tile layer not found")

	// ErrTrailingData is returned when the file has more than one document
	// element, or junk after it.
	ErrTrailingData = errors.New("junk after document element")

	// ErrMissingAttr is returned when a placement lacks x, y or id.
	ErrMissingAttr = errors.New("missing attribute")

	// ErrBadCoordinate is returned when x or y isn't an integer.
	ErrBadCoordinate = errors.New("bad coordinate")

	// ErrOutOfRange is returned when a placement lands outside the grid.
	// We never clamp or drop these.
	ErrOutOfRange = errors.New("placement out of range")
)
