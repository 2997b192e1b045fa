package product

import (
	"github.com/go-leo/solid/specification"
)

// ColorSpecification is satisfied by products of a given color.
//
// New product attributes get their own specification kind like this one;
// the filter in the specification package never changes for them.
type ColorSpecification struct {
	color Color
}

func NewColorSpecification(color Color) *ColorSpecification {
	return &ColorSpecification{color: color}
}

func (spec *ColorSpecification) IsSatisfiedBy(p Product) bool {
	return p.Color == spec.color
}

func (spec *ColorSpecification) And(another specification.Specification[Product]) specification.Specification[Product] {
	return specification.NewAndSpecification[Product](spec, another)
}

func (spec *ColorSpecification) Or(another specification.Specification[Product]) specification.Specification[Product] {
	return specification.NewOrSpecification[Product](spec, another)
}

func (spec *ColorSpecification) Not() specification.Specification[Product] {
	return specification.NewNotSpecification[Product](spec)
}

// SizeSpecification is satisfied by products of a given size.
type SizeSpecification struct {
	size Size
}

func NewSizeSpecification(size Size) *SizeSpecification {
	return &SizeSpecification{size: size}
}

func (spec *SizeSpecification) IsSatisfiedBy(p Product) bool {
	return p.Size == spec.size
}

func (spec *SizeSpecification) And(another specification.Specification[Product]) specification.Specification[Product] {
	return specification.NewAndSpecification[Product](spec, another)
}

func (spec *SizeSpecification) Or(another specification.Specification[Product]) specification.Specification[Product] {
	return specification.NewOrSpecification[Product](spec, another)
}

func (spec *SizeSpecification) Not() specification.Specification[Product] {
	return specification.NewNotSpecification[Product](spec)
}
