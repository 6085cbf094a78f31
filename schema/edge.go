package schema

// RelationType is the closed set of relationship kinds an edge can carry.
type RelationType string

// Relationship kinds.
const (
	OneToOne       RelationType = "one-to-one"
	OneToMany      RelationType = "one-to-many"
	ManyToOne      RelationType = "many-to-one"
	ManyToMany     RelationType = "many-to-many"
	Composition    RelationType = "composition"
	Aggregation    RelationType = "aggregation"
	Inheritance    RelationType = "inheritance"
	Implementation RelationType = "implementation"
	Dependency     RelationType = "dependency"
)

// Valid reports whether t is one of the known relationship kinds.
func (t RelationType) Valid() bool {
	switch t {
	case OneToOne, OneToMany, ManyToOne, ManyToMany,
		Composition, Aggregation, Inheritance, Implementation, Dependency:
		return true
	}
	return false
}

// String returns the relation name.
func (t RelationType) String() string { return string(t) }

// FetchType controls relation loading. Lazy is the implicit default and is
// never emitted in generated options.
type FetchType string

// Fetch types.
const (
	FetchLazy  FetchType = "lazy"
	FetchEager FetchType = "eager"
)

// RelationshipEdge connects two diagram nodes. Only the source side of an
// edge renders code; TargetProperty marks the relation bidirectional.
type RelationshipEdge struct {
	ID             string       `json:"id"`
	Source         string       `json:"source"`
	Target         string       `json:"target"`
	Type           RelationType `json:"relationType"`
	SourceProperty string       `json:"sourceProperty"`
	TargetProperty string       `json:"targetProperty,omitempty"`
	Nullable       bool         `json:"isNullable,omitempty"`
	Cascade        bool         `json:"cascade,omitempty"`
	OrphanRemoval  bool         `json:"orphanRemoval,omitempty"`
	Fetch          FetchType    `json:"fetchType,omitempty"`
	DeleteRule     string       `json:"deleteRule,omitempty"`
}

// Bidirectional reports whether the edge declares an inverse field on the
// target type.
func (e *RelationshipEdge) Bidirectional() bool {
	return e.TargetProperty != ""
}
