package relationship

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRelationships(t *testing.T) {
	Convey("Given recorded parent/child relations", t, func() {
		john := Person{Name: "John"}
		chris := Person{Name: "Chris"}
		matt := Person{Name: "Matt"}

		relationships := NewRelationships()
		relationships.AddParentAndChild(john, chris)
		relationships.AddParentAndChild(john, matt)

		Convey("Each AddParentAndChild records both directions", func() {
			So(relationships.Relations(), ShouldHaveLength, 4)
		})

		Convey("FindAllChildrenOf returns the children in insertion order", func() {
			So(relationships.FindAllChildrenOf("John"), ShouldResemble, []Person{chris, matt})
		})

		Convey("A person without children yields no results", func() {
			So(relationships.FindAllChildrenOf("Chris"), ShouldBeEmpty)
		})
	})
}

func TestResearch(t *testing.T) {
	Convey("Given a research module over the browser abstraction", t, func() {
		john := Person{Name: "John"}
		relationships := NewRelationships()
		relationships.AddParentAndChild(john, Person{Name: "Chris"})
		relationships.AddParentAndChild(john, Person{Name: "Matt"})

		research := NewResearch(relationships)

		Convey("It reports children through the abstraction", func() {
			So(research.ChildrenOf("John"), ShouldResemble, []string{"Chris", "Matt"})
		})

		Convey("It works against any Browser implementation", func() {
			research := NewResearch(stubBrowser{})
			So(research.ChildrenOf("Anyone"), ShouldResemble, []string{"Stub"})
		})
	})
}

type stubBrowser struct{}

func (stubBrowser) FindAllChildrenOf(name string) []Person {
	return []Person{{Name: "Stub"}}
}
