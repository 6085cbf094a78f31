package gen

import (
	"strings"

	"github.com/diagramkit/ormgen/schema"
)

// relationDecorator maps a relationship kind onto its decorator name. The
// collection result reports whether the source-side field is collection-typed.
// Structural kinds (inheritance, implementation, dependency) carry no
// decorator and report ok == false; composition and aggregation are stricter
// UML semantics layered on the one-to-many persistence shape.
func relationDecorator(t schema.RelationType) (name string, collection, ok bool) {
	switch t {
	case schema.OneToOne:
		return "OneToOne", false, true
	case schema.OneToMany, schema.Composition, schema.Aggregation:
		return "OneToMany", true, true
	case schema.ManyToOne:
		return "ManyToOne", false, true
	case schema.ManyToMany:
		return "ManyToMany", true, true
	case schema.Inheritance, schema.Implementation, schema.Dependency:
		return "", false, false
	}
	return "", false, false
}

// renderRelationship renders the decorator and field declaration for one
// outgoing edge, prefixed with the given indent. It returns false when the
// edge produces no code: an unresolvable endpoint or a structural kind.
// An edge renders exactly once, from the entity that is its source.
func (g *Graph) renderRelationship(e *schema.RelationshipEdge, indent string) (string, bool) {
	target := g.snapshot.NodeByID(e.Target)
	if target == nil || g.snapshot.NodeByID(e.Source) == nil {
		return "", false
	}
	name, collection, ok := relationDecorator(e.Type)
	if !ok {
		return "", false
	}
	tname := Sanitize(target.Name())

	args := []string{"() => " + tname}
	if e.Bidirectional() {
		recv := accessor(tname)
		args = append(args, "("+recv+") => "+recv+"."+e.TargetProperty)
	}

	var b strings.Builder
	b.WriteString(indent + "@" + name + "(" + strings.Join(args, ", "))
	if opts := relationOptions(e); len(opts) > 0 {
		b.WriteString(", {\n")
		inner := indent + g.indent()
		for _, o := range opts {
			b.WriteString(inner + o + ",\n")
		}
		b.WriteString(indent + "})")
	} else {
		b.WriteString(")")
	}
	b.WriteString("\n")

	if collection {
		b.WriteString(indent + e.SourceProperty + ": Collection<" + tname + "> = new Collection<" + tname + ">(this);")
	} else {
		b.WriteString(indent + e.SourceProperty + nullMarker(e.Nullable) + ": " + tname + ";")
	}
	return b.String(), true
}

// relationOptions composes the decorator options in fixed order:
// cascade, nullable, orphanRemoval, eager, deleteRule. Composition forces
// orphanRemoval; lazy fetching is the implicit default and is never emitted.
func relationOptions(e *schema.RelationshipEdge) []string {
	var opts []string
	if e.Cascade {
		opts = append(opts, "cascade: [Cascade.ALL]")
	}
	if e.Nullable {
		opts = append(opts, "nullable: true")
	}
	if e.OrphanRemoval || e.Type == schema.Composition {
		opts = append(opts, "orphanRemoval: true")
	}
	if e.Fetch == schema.FetchEager {
		opts = append(opts, "eager: true")
	}
	if e.DeleteRule != "" {
		opts = append(opts, "deleteRule: "+quoteSingle(e.DeleteRule))
	}
	return opts
}
