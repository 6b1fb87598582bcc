package models

import "errors"

// ErrInvalidInput indicates a numeric input outside its valid domain. Calls
// returning it produce no partial result.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnsupportedFormat indicates an unknown export format string.
var ErrUnsupportedFormat = errors.New("unsupported format")
