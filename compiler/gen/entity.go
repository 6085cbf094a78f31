package gen

import (
	"strings"

	"github.com/diagramkit/ormgen/schema"
)

// generateEntity assembles the full source for one entity node: imports,
// inline enum declarations, index decorators, the class decorator, and the
// class body with property and relationship members. Sections that would
// render empty are skipped rather than leaving stray blank lines.
func (g *Graph) generateEntity(n *schema.DiagramNode) string {
	data := n.Entity
	sections := []string{g.renderImports(g.collectImports(n))}
	if enums := g.renderEnums(inlineEnums(data.Properties)); enums != "" {
		sections = append(sections, enums)
	}

	var cls strings.Builder
	for _, idx := range data.Indexes {
		cls.WriteString(g.renderIndex(idx) + "\n")
	}
	if data.TableName != "" {
		cls.WriteString("@Entity({ tableName: " + quoteSingle(data.TableName) + " })\n")
	} else {
		cls.WriteString("@Entity()\n")
	}

	members := make([]string, 0, len(data.Properties))
	for _, p := range data.Properties {
		members = append(members, g.renderProperty(p, g.indent()))
	}
	for _, e := range g.outgoing[n.ID] {
		if line, ok := g.renderRelationship(e, g.indent()); ok {
			members = append(members, line)
		}
	}
	cls.WriteString(classBody(Sanitize(data.Name), members))

	sections = append(sections, cls.String())
	return strings.Join(sections, "\n\n") + "\n"
}

// generateEmbeddable assembles the source for one embeddable node. It
// defensively drops primary-key properties and owns no indexes or
// relationships.
func (g *Graph) generateEmbeddable(n *schema.DiagramNode) string {
	data := n.Embeddable
	props := withoutPrimaryKeys(data.Properties)
	sections := []string{g.renderImports(g.collectImports(n))}
	if enums := g.renderEnums(inlineEnums(props)); enums != "" {
		sections = append(sections, enums)
	}

	members := make([]string, 0, len(props))
	for _, p := range props {
		members = append(members, g.renderProperty(p, g.indent()))
	}
	cls := "@Embeddable()\n" + classBody(Sanitize(data.Name), members)

	sections = append(sections, cls)
	return strings.Join(sections, "\n\n") + "\n"
}

// renderIndex renders one index decorator line above the class.
func (g *Graph) renderIndex(idx schema.Index) string {
	props := make([]string, len(idx.Properties))
	for i, p := range idx.Properties {
		props[i] = quoteSingle(p)
	}
	var opts []string
	if idx.Name != "" {
		opts = append(opts, "name: "+quoteSingle(idx.Name))
	}
	opts = append(opts, "properties: ["+strings.Join(props, ", ")+"]")
	decorator := "Index"
	if idx.Unique {
		decorator = "Unique"
	}
	return "@" + decorator + "({ " + strings.Join(opts, ", ") + " })"
}

// classBody renders the class header, the members separated by one blank
// line, and the closing brace.
func classBody(name string, members []string) string {
	if len(members) == 0 {
		return "export class " + name + " {}"
	}
	return "export class " + name + " {\n" + strings.Join(members, "\n\n") + "\n}"
}
