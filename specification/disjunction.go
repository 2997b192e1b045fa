package specification

// DisjunctionSpecification used to create a new specification that is the OR of any
// number of other specifications. An empty disjunction is satisfied by no item.
//
// Evaluation stops at the first satisfied operand.
type DisjunctionSpecification[T any] struct {
	specs []Specification[T]
}

func NewDisjunctionSpecification[T any](specs ...Specification[T]) *DisjunctionSpecification[T] {
	return &DisjunctionSpecification[T]{specs: append([]Specification[T](nil), specs...)}
}

func (spec *DisjunctionSpecification[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.specs {
		if s.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}

func (spec *DisjunctionSpecification[T]) And(another Specification[T]) Specification[T] {
	return NewAndSpecification[T](spec, another)
}

func (spec *DisjunctionSpecification[T]) Or(another Specification[T]) Specification[T] {
	return NewOrSpecification[T](spec, another)
}

func (spec *DisjunctionSpecification[T]) Not() Specification[T] {
	return NewNotSpecification[T](spec)
}
