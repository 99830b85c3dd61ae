package gg

import "errors"

// Sentinel errors for the argument-error taxonomy of spec §7. Each is
// raised at the entry point that receives the bad value, leaving the
// surface and drawing state unchanged.
var (
	ErrInvalidSurfaceDimensions = errors.New("gg: surface dimensions must be positive")
	ErrSurfaceTooLarge          = errors.New("gg: surface area exceeds 2^28 pixels")
	ErrNonFiniteCoordinate      = errors.New("gg: path coordinate is not finite")
	ErrNonInvertibleTransform   = errors.New("gg: transform is not invertible")
	ErrInvalidCompositeMode     = errors.New("gg: unknown composite operation")
	ErrInvalidLineJoin          = errors.New("gg: unknown line join")
	ErrInvalidLineCap           = errors.New("gg: unknown line cap")
	ErrColorComponentOutOfRange = errors.New("gg: color component out of [0,255]")
	ErrSourceRectOutOfBounds    = errors.New("gg: source rectangle outside image bounds")
	ErrNonPositiveLineWidth     = errors.New("gg: line width must be positive")
	ErrNonPositiveMiterLimit    = errors.New("gg: miter limit must be positive")
)
