package main

import (
	"fmt"
	"log"

	"github.com/go-leo/solid/relationship"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("relationship: ")
}

func main() {
	parent := relationship.Person{Name: "John"}
	child1 := relationship.Person{Name: "Chris"}
	child2 := relationship.Person{Name: "Matt"}

	relationships := relationship.NewRelationships()
	relationships.AddParentAndChild(parent, child1)
	relationships.AddParentAndChild(parent, child2)

	research := relationship.NewResearch(relationships)
	for _, name := range research.ChildrenOf("John") {
		fmt.Printf("John has a child called %s\n", name)
	}
}
