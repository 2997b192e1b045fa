package specification

// OrSpecification used to create a new specification that is the OR of two other specifications.
//
// Short-circuits: the right operand is not evaluated when the left is satisfied.
type OrSpecification[T any] struct {
	left  Specification[T]
	right Specification[T]
}

func NewOrSpecification[T any](left Specification[T], right Specification[T]) *OrSpecification[T] {
	return &OrSpecification[T]{left: left, right: right}
}

func (spec *OrSpecification[T]) IsSatisfiedBy(t T) bool {
	return spec.left.IsSatisfiedBy(t) || spec.right.IsSatisfiedBy(t)
}

func (spec *OrSpecification[T]) And(another Specification[T]) Specification[T] {
	return NewAndSpecification[T](spec, another)
}

func (spec *OrSpecification[T]) Or(another Specification[T]) Specification[T] {
	return NewOrSpecification[T](spec, another)
}

func (spec *OrSpecification[T]) Not() Specification[T] {
	return NewNotSpecification[T](spec)
}
