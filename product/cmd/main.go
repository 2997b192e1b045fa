package main

import (
	"fmt"
	"log"

	"github.com/go-leo/solid/product"
	"github.com/go-leo/solid/specification"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("product: ")
}

func main() {
	apple := product.Product{Name: "Apple", Color: product.Green, Size: product.Small}
	tree := product.Product{Name: "Tree", Color: product.Green, Size: product.Large}
	house := product.Product{Name: "House", Color: product.Blue, Size: product.Large}
	all := []product.Product{apple, tree, house}

	green := product.NewColorSpecification(product.Green)
	for _, p := range specification.FilterBy[product.Product](all, green) {
		fmt.Printf("%s is green\n", p.Name)
	}

	large := product.NewSizeSpecification(product.Large)
	greenAndLarge := green.And(large)
	for _, p := range specification.FilterBy[product.Product](all, greenAndLarge) {
		fmt.Printf("%s is green and large\n", p.Name)
	}
}
