package convert

import "errors"

var (
	// ErrOutputExists indicates the output directory is already present.
	ErrOutputExists = errors.New("output directory already exists")

	// ErrOutputCreateFailed indicates the output directory could not be created.
	ErrOutputCreateFailed = errors.New("output directory creation failed")

	// ErrWriteFailed indicates an entity document could not be written.
	ErrWriteFailed = errors.New("output file write failed")

	// ErrParseFailed indicates a source page could not be parsed as HTML.
	ErrParseFailed = errors.New("html parse failed")

	// ErrCanceled indicates the run stopped because its context ended.
	ErrCanceled = errors.New("conversion canceled")
)
