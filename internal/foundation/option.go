package foundation

import "fmt"

// Option holds a value that may be absent. Decoders return None for settings
// the input omitted so callers never confuse "not configured" with a zero value.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it was set.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap panics on None.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic("foundation: Unwrap on None")
	}
	return o.value
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
