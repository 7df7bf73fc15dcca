package core

import "errors"

// Configuration and I/O failures surfaced by the pipeline. Size, pixel size
// and rule are fixed at startup, so the first three abort the process
// during validation; ErrFileWrite is reported per save and retryable.
var (
	ErrInvalidSize      = errors.New("invalid grid size")
	ErrSizeMismatch     = errors.New("wedge does not fit target size")
	ErrInvalidPixelSize = errors.New("invalid pixel size")
	ErrFileWrite        = errors.New("image file write failed")
)
