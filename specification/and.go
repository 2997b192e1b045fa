package specification

// AndSpecification used to create a new specification that is the AND of two other specifications.
//
// The operands are held as-is, not copied. Evaluation short-circuits:
// when the left operand is unsatisfied the right operand is never
// evaluated, so callers may order a cheap guard before an expensive test.
type AndSpecification[T any] struct {
	left  Specification[T]
	right Specification[T]
}

func NewAndSpecification[T any](left Specification[T], right Specification[T]) *AndSpecification[T] {
	return &AndSpecification[T]{left: left, right: right}
}

func (spec *AndSpecification[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) && spec.right.IsSatisfiedBy(t)
}

func (spec *AndSpecification[T]) And(another Specification[T]) Specification[T] {
	return NewAndSpecification[T](spec, another)
}

func (spec *AndSpecification[T]) Or(another Specification[T]) Specification[T] {
	return NewOrSpecification[T](spec, another)
}

func (spec *AndSpecification[T]) Not() Specification[T] {
	return NewNotSpecification[T](spec)
}
