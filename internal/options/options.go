// Package options implements the generic functional-option pattern used by
// the bi5 constructors.
package options

import "fmt"

// Option configures a target of type T and may reject invalid settings.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that can fail.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first failure.
//
// Nil options are skipped. The returned error wraps the option's own error
// and names its position in opts.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option #%d: %w", i, err)
		}
	}

	return nil
}
