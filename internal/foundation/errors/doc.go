// Package errors provides the classified error type used across refdoc.
//
// Every failure that ends a conversion run is a ClassifiedError carrying a
// category (what kind of problem), a severity and structured context such as
// the offending file path or the selector that matched nothing. The CLI
// adapter turns those into a one-line diagnostic and an exit code.
//
// Example usage:
//
//	err := errors.ExtractionError("missing required element").
//		WithContext("element", "entity name").
//		WithContext("selector", ".typeNameLabel").
//		Build()
package errors
