// Package batch invokes a function once per combination of its argument
// ranges and collects the results into an ordered sequence that supports
// mapping, filtering and extremum selection without explicit iteration.
package batch

import (
	"errors"
)

// ErrEmpty is returned when an extremum is requested over an empty sequence.
var ErrEmpty = errors.New("batch: empty result")

type options struct {
	continueOnError bool
}

type Option func(*options)

// ContinueOnError makes Apply skip combinations whose call fails instead of
// aborting at the first error. Failing combinations are omitted from the
// result, not retried.
func ContinueOnError() Option {
	return func(o *options) { o.continueOnError = true }
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply calls fn once per element of args, in order, and collects the
// results. The first error aborts the remaining calls and propagates, unless
// ContinueOnError is given.
func Apply[A, R any](args []A, fn func(A) (R, error), opts ...Option) (Result[R], error) {
	o := resolveOptions(opts)

	items := make([]R, 0, len(args))
	for _, a := range args {
		r, err := fn(a)
		if err != nil {
			if o.continueOnError {
				continue
			}
			return Result[R]{}, err
		}
		items = append(items, r)
	}
	return Result[R]{items: items}, nil
}

// Apply2 calls fn once per combination of as and bs in lexicographic product
// order: the leftmost argument varies slowest.
func Apply2[A, B, R any](as []A, bs []B, fn func(A, B) (R, error), opts ...Option) (Result[R], error) {
	o := resolveOptions(opts)

	items := make([]R, 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			r, err := fn(a, b)
			if err != nil {
				if o.continueOnError {
					continue
				}
				return Result[R]{}, err
			}
			items = append(items, r)
		}
	}
	return Result[R]{items: items}, nil
}

// Collect is Apply for functions that return a sequence per call; the
// per-call sequences are flattened one level, preserving call order.
func Collect[A, R any](args []A, fn func(A) ([]R, error), opts ...Option) (Result[R], error) {
	o := resolveOptions(opts)

	var items []R
	for _, a := range args {
		rs, err := fn(a)
		if err != nil {
			if o.continueOnError {
				continue
			}
			return Result[R]{}, err
		}
		items = append(items, rs...)
	}
	return Result[R]{items: items}, nil
}

// Collect2 is Apply2 with one level of flattening.
func Collect2[A, B, R any](as []A, bs []B, fn func(A, B) ([]R, error), opts ...Option) (Result[R], error) {
	o := resolveOptions(opts)

	var items []R
	for _, a := range as {
		for _, b := range bs {
			rs, err := fn(a, b)
			if err != nil {
				if o.continueOnError {
					continue
				}
				return Result[R]{}, err
			}
			items = append(items, rs...)
		}
	}
	return Result[R]{items: items}, nil
}

// Result is an ordered sequence of per-combination results.
type Result[T any] struct {
	items []T
}

// Of wraps an existing slice.
func Of[T any](items []T) Result[T] {
	return Result[T]{items: items}
}

func (r Result[T]) Items() []T { return r.items }

func (r Result[T]) Len() int { return len(r.items) }

func (r Result[T]) At(i int) T { return r.items[i] }

func (r Result[T]) First() (T, error) {
	var zero T
	if len(r.items) == 0 {
		return zero, ErrEmpty
	}
	return r.items[0], nil
}

func (r Result[T]) ForEach(fn func(T)) {
	for _, item := range r.items {
		fn(item)
	}
}

func (r Result[T]) Filter(keep func(T) bool) Result[T] {
	var items []T
	for _, item := range r.items {
		if keep(item) {
			items = append(items, item)
		}
	}
	return Result[T]{items: items}
}

// Map transforms every element, rewrapping the results in order.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	items := make([]U, len(r.items))
	for i, item := range r.items {
		items[i] = fn(item)
	}
	return Result[U]{items: items}
}

// MaxBy returns the element with the greatest metric value. Ties break to the
// first such element in sequence order. An empty sequence returns ErrEmpty.
func MaxBy[T any](items []T, metric func(T) float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}

	best := items[0]
	bestValue := metric(best)
	for _, item := range items[1:] {
		if v := metric(item); v > bestValue {
			best = item
			bestValue = v
		}
	}
	return best, nil
}

// MinBy is MaxBy under the smallest metric value.
func MinBy[T any](items []T, metric func(T) float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmpty
	}

	best := items[0]
	bestValue := metric(best)
	for _, item := range items[1:] {
		if v := metric(item); v < bestValue {
			best = item
			bestValue = v
		}
	}
	return best, nil
}

// MeanBy returns the mean metric value across the sequence.
func MeanBy[T any](items []T, metric func(T) float64) (float64, error) {
	if len(items) == 0 {
		return 0, ErrEmpty
	}

	var sum float64
	for _, item := range items {
		sum += metric(item)
	}
	return sum / float64(len(items)), nil
}
