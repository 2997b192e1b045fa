package relationship

import (
	"github.com/go-leo/gox/slicex"
)

// Research is a high-level module. It depends on the Browser
// abstraction only, never on a concrete store.
type Research struct {
	browser Browser
}

func NewResearch(browser Browser) *Research {
	return &Research{browser: browser}
}

// ChildrenOf reports the names of all children of the given parent,
// in the order the store returns them.
func (r *Research) ChildrenOf(parent string) []string {
	return slicex.Map[[]Person, []string](r.browser.FindAllChildrenOf(parent), func(i int, p Person) string {
		return p.Name
	})
}
