package relationship

type Person struct {
	Name string
}

type Relationship int

const (
	Parent Relationship = iota
	Child
	Sibling
)

func (r Relationship) String() string {
	switch r {
	case Parent:
		return "parent"
	case Child:
		return "child"
	case Sibling:
		return "sibling"
	default:
		return "unknown"
	}
}

// Relation is a directed edge: From is Kind of To.
type Relation struct {
	From Person
	Kind Relationship
	To   Person
}

// Browser is the abstraction high-level modules depend on. Low-level
// stores implement it; swapping the store never touches the consumers.
type Browser interface {
	FindAllChildrenOf(name string) []Person
}

// Relationships is the in-memory low-level store.
type Relationships struct {
	relations []Relation
}

func NewRelationships() *Relationships {
	return &Relationships{}
}

// AddParentAndChild records the edge in both directions.
func (r *Relationships) AddParentAndChild(parent, child Person) {
	r.relations = append(r.relations,
		Relation{From: parent, Kind: Parent, To: child},
		Relation{From: child, Kind: Child, To: parent},
	)
}

func (r *Relationships) FindAllChildrenOf(name string) []Person {
	var children []Person
	for _, rel := range r.relations {
		if rel.From.Name == name && rel.Kind == Parent {
			children = append(children, rel.To)
		}
	}
	return children
}

// Relations returns a copy of all recorded edges.
func (r *Relationships) Relations() []Relation {
	return append([]Relation(nil), r.relations...)
}
