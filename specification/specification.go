package specification

// Specification interface.
// Use NewSpecification as base for creating specifications, and
// only the predicate func(T) bool must be supplied.
//
// A specification is immutable after construction and pure: IsSatisfiedBy
// has no side effects and is deterministic for a given item state. Distinct
// goroutines may evaluate the same specification concurrently.
type Specification[T any] interface {
	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]
}

type specification[T any] struct {
	isSatisfiedBy func(t T) bool
}

// NewSpecification wraps a predicate func into a Specification.
// The predicate must be pure; specifications inspecting mutable item
// state delegate the concurrency discipline to the caller.
func NewSpecification[T any](isSatisfiedBy func(t T) bool) Specification[T] {
	return &specification[T]{isSatisfiedBy: isSatisfiedBy}
}

func (spec *specification[T]) IsSatisfiedBy(t T) bool {
	return spec.isSatisfiedBy(t)
}

func (spec *specification[T]) And(another Specification[T]) Specification[T] {
	return NewAndSpecification[T](spec, another)
}

func (spec *specification[T]) Or(another Specification[T]) Specification[T] {
	return NewOrSpecification[T](spec, another)
}

func (spec *specification[T]) Not() Specification[T] {
	return NewNotSpecification[T](spec)
}

// True returns a specification satisfied by every item.
func True[T any]() Specification[T] {
	return NewSpecification[T](func(T) bool { return true })
}

// False returns a specification satisfied by no item.
func False[T any]() Specification[T] {
	return NewSpecification[T](func(T) bool { return false })
}
