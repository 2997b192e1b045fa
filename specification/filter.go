package specification

// Filter selects the items satisfying a specification.
//
// Implementations must be open for extension through new Specification
// kinds and closed for modification: a Filter never inspects which
// concrete specification it is given.
type Filter[T any] interface {
	// Filter returns the ordered sub-sequence of items satisfied by spec.
	Filter(items []T, spec Specification[T]) []T
}

// SpecificationFilter is the default Filter. It preserves the relative
// order of items, never mutates the input slice, and always returns a
// freshly allocated result.
type SpecificationFilter[T any] struct{}

func NewSpecificationFilter[T any]() *SpecificationFilter[T] {
	return &SpecificationFilter[T]{}
}

func (f *SpecificationFilter[T]) Filter(items []T, spec Specification[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if spec.IsSatisfiedBy(item) {
			result = append(result, item)
		}
	}
	return result
}

// FilterBy filters items with the default Filter.
func FilterBy[T any](items []T, spec Specification[T]) []T {
	return NewSpecificationFilter[T]().Filter(items, spec)
}
