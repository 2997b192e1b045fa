package specification

// ConjunctionSpecification used to create a new specification that is the AND of any
// number of other specifications. An empty conjunction is satisfied by every item.
//
// Evaluation stops at the first unsatisfied operand.
type ConjunctionSpecification[T any] struct {
	specs []Specification[T]
}

func NewConjunctionSpecification[T any](specs ...Specification[T]) *ConjunctionSpecification[T] {
	// copy so later mutation of the caller's slice cannot alter the specification
	return &ConjunctionSpecification[T]{specs: append([]Specification[T](nil), specs...)}
}

func (spec *ConjunctionSpecification[T]) IsSatisfiedBy(t T) bool {
	for _, s := range spec.specs {
		if !s.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}

func (spec *ConjunctionSpecification[T]) And(another Specification[T]) Specification[T] {
	return NewAndSpecification[T](spec, another)
}

func (spec *ConjunctionSpecification[T]) Or(another Specification[T]) Specification[T] {
	return NewOrSpecification[T](spec, another)
}

func (spec *ConjunctionSpecification[T]) Not() Specification[T] {
	return NewNotSpecification[T](spec)
}
