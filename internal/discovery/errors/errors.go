package errors

// Package errors provides sentinel errors for input discovery.
// They let callers classify discovery failures with errors.Is.

import "errors"

var (
	// ErrInputDirNotFound indicates the input directory does not exist.
	ErrInputDirNotFound = errors.New("input directory not found")

	// ErrInputNotDirectory indicates the input path exists but is not a directory.
	ErrInputNotDirectory = errors.New("input path is not a directory")

	// ErrDirWalkFailed indicates filesystem traversal of the input directory failed.
	ErrDirWalkFailed = errors.New("input directory walk failed")

	// ErrFileReadFailed indicates reading a discovered page failed.
	ErrFileReadFailed = errors.New("source file read failed")

	// ErrInvalidRelativePath indicates calculating a path relative to the input root failed.
	ErrInvalidRelativePath = errors.New("invalid relative path calculation")
)
