package foundation

import "fmt"

// Option represents a value that may or may not be present.
// The data model uses it for optional strings (types, descriptions, package paths)
// so that "absent" and "empty" stay distinguishable.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option with a value.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value:   value,
		present: true,
	}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{
		present: false,
	}
}

// NonEmpty returns Some(s) unless s is the empty string.
func NonEmpty(s string) Option[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Unwrap returns the value if present, panics if None.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("called Unwrap on None option")
	}
	return o.value
}

// UnwrapOr returns the value if present, otherwise returns the fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Or returns o when it holds a value and other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// String provides a string representation of the Option.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
