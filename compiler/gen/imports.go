package gen

import (
	"sort"
	"strings"

	"github.com/diagramkit/ormgen/schema"
)

// importSet accumulates everything one entity or embeddable header needs:
// the decorator set, the related type names, the referenced external enum
// and interface names, and the Collection/Cascade utility flags.
type importSet struct {
	decorators map[string]struct{}
	related    map[string]struct{}
	enums      map[string]struct{}
	interfaces map[string]struct{}
	collection bool
	cascade    bool
}

func newImportSet(classDecorator string) importSet {
	s := importSet{
		decorators: make(map[string]struct{}),
		related:    make(map[string]struct{}),
		enums:      make(map[string]struct{}),
		interfaces: make(map[string]struct{}),
	}
	s.decorators[classDecorator] = struct{}{}
	return s
}

// collectImports folds one node's properties, indexes, and outgoing edges
// into its import set. Only entities and embeddables have imports; an
// embeddable contributes no index or relationship decorators.
func (g *Graph) collectImports(n *schema.DiagramNode) importSet {
	var (
		s         importSet
		props     []schema.Property
		indexes   []schema.Index
		ownsEdges bool
	)
	switch n.Kind {
	case schema.KindEntity:
		s = newImportSet("Entity")
		props = n.Entity.Properties
		indexes = n.Entity.Indexes
		ownsEdges = true
	case schema.KindEmbeddable:
		s = newImportSet("Embeddable")
		props = withoutPrimaryKeys(n.Embeddable.Properties)
	default:
		return newImportSet("")
	}

	for _, p := range props {
		switch {
		case p.PrimaryKey:
			s.decorators["PrimaryKey"] = struct{}{}
		case p.IsEnum() && p.Enum != nil:
			s.decorators["Enum"] = struct{}{}
		case g.enums[p.Type] != nil:
			s.decorators["Enum"] = struct{}{}
			s.enums[Sanitize(p.Type)] = struct{}{}
		default:
			s.decorators["Property"] = struct{}{}
		}
	}

	for _, idx := range indexes {
		if idx.Unique {
			s.decorators["Unique"] = struct{}{}
		} else {
			s.decorators["Index"] = struct{}{}
		}
	}

	if !ownsEdges {
		return s
	}
	own := Sanitize(n.Name())
	for _, e := range g.outgoing[n.ID] {
		target := g.snapshot.NodeByID(e.Target)
		if target == nil {
			continue
		}
		tname := Sanitize(target.Name())
		// A self-reference must not produce a self-import.
		self := tname == own
		name, collection, ok := relationDecorator(e.Type)
		if ok {
			s.decorators[name] = struct{}{}
			if collection {
				s.collection = true
			}
			if e.Cascade {
				s.cascade = true
			}
			if !self {
				s.related[tname] = struct{}{}
			}
			continue
		}
		// Structural edges emit no decorator but still bring the target
		// type into scope.
		if self {
			continue
		}
		if e.Type == schema.Implementation {
			s.interfaces[tname] = struct{}{}
		} else {
			s.related[tname] = struct{}{}
		}
	}
	return s
}

// renderImports renders the import statements for the given set. The core
// import merges the decorator set with Collection and Cascade when their
// flags are set; every set is sorted for determinism.
func (g *Graph) renderImports(s importSet) string {
	core := make([]string, 0, len(s.decorators)+2)
	for d := range s.decorators {
		core = append(core, d)
	}
	if s.collection {
		core = append(core, "Collection")
	}
	if s.cascade {
		core = append(core, "Cascade")
	}
	sort.Strings(core)

	lines := []string{
		"import { " + strings.Join(core, ", ") + " } from " + quoteSingle(g.CollectionImportPath) + ";",
	}
	for _, name := range sortedNames(s.related, s.enums, s.interfaces) {
		lines = append(lines, "import { "+name+" } from "+quoteSingle("./"+name)+";")
	}
	return strings.Join(lines, "\n")
}

// sortedNames merges the given name sets into one sorted, deduplicated slice.
func sortedNames(sets ...map[string]struct{}) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range sets {
		for name := range set {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// withoutPrimaryKeys filters out primary-key properties. Embeddables never
// carry one, but the generator stays permissive over whatever it is handed.
func withoutPrimaryKeys(props []schema.Property) []schema.Property {
	out := make([]schema.Property, 0, len(props))
	for _, p := range props {
		if !p.PrimaryKey {
			out = append(out, p)
		}
	}
	return out
}
