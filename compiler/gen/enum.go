package gen

import (
	"strings"

	"github.com/diagramkit/ormgen/schema"
)

// inlineEnums collects the inline enum definitions declared by the given
// properties, in declaration order, deduplicated by MergeEnumDefs.
func inlineEnums(props []schema.Property) []schema.EnumDef {
	var defs []schema.EnumDef
	for _, p := range props {
		if p.IsEnum() && p.Enum != nil {
			defs = append(defs, *p.Enum)
		}
	}
	return MergeEnumDefs(defs)
}

// MergeEnumDefs deduplicates enum definitions by name. When two definitions
// share a name, the most recent one wins; the merged definition keeps the
// position of the first occurrence. This is the documented merge policy for
// inline enums, not a conflict error.
func MergeEnumDefs(defs []schema.EnumDef) []schema.EnumDef {
	var (
		out []schema.EnumDef
		pos = make(map[string]int)
	)
	for _, d := range defs {
		if i, ok := pos[d.Name]; ok {
			out[i] = d
			continue
		}
		pos[d.Name] = len(out)
		out = append(out, d)
	}
	return out
}

// renderEnum renders one enum declaration.
func (g *Graph) renderEnum(def schema.EnumDef) string {
	name := Sanitize(def.Name)
	if len(def.Values) == 0 {
		return "export enum " + name + " {}"
	}
	var b strings.Builder
	b.WriteString("export enum " + name + " {\n")
	ind := g.indent()
	for _, v := range def.Values {
		b.WriteString(ind + v.Key + " = " + enumLiteral(v.Value) + ",\n")
	}
	b.WriteString("}")
	return b.String()
}

// renderEnums renders the given definitions separated by one blank line.
// An empty input yields an empty string.
func (g *Graph) renderEnums(defs []schema.EnumDef) string {
	if len(defs) == 0 {
		return ""
	}
	parts := make([]string, len(defs))
	for i, d := range defs {
		parts[i] = g.renderEnum(d)
	}
	return strings.Join(parts, "\n\n")
}

// enumLiteral renders an enum member value: unquoted when it parses as a
// number, double-quoted otherwise.
func enumLiteral(v string) string {
	if isNumeric(v) {
		return v
	}
	return quoteDouble(v)
}
