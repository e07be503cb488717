package model

import "errors"

var (
	ErrInvalidDimension   = errors.New("invalid dimension")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrUnknownUnit        = errors.New("unknown unit")
	ErrUnknownColor       = errors.New("unknown color")
)
