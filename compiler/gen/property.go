package gen

import (
	"strconv"
	"strings"

	"github.com/diagramkit/ormgen/schema"
)

// renderProperty renders one property as a decorator line followed by a
// field declaration, both prefixed with the given indent.
func (g *Graph) renderProperty(p schema.Property, indent string) string {
	var (
		decorator string
		typ       = p.Type
	)
	switch {
	case p.PrimaryKey:
		decorator = "@PrimaryKey()"
	case p.IsEnum() && p.Enum != nil:
		typ = Sanitize(p.Enum.Name)
		decorator = enumDecorator(typ, p)
	case g.enums[p.Type] != nil:
		typ = Sanitize(p.Type)
		decorator = enumDecorator(typ, p)
	default:
		opts := propertyOptions(p)
		if len(opts) == 0 {
			decorator = "@Property()"
		} else {
			decorator = "@Property({ " + strings.Join(opts, ", ") + " })"
		}
	}
	return indent + decorator + "\n" + indent + p.Name + nullMarker(p.Nullable) + ": " + typ + ";"
}

// enumDecorator renders the enum decorator referencing the named enum,
// merged with the property's own options.
func enumDecorator(name string, p schema.Property) string {
	opts := append([]string{"items: () => " + name}, propertyOptions(p)...)
	return "@Enum({ " + strings.Join(opts, ", ") + " })"
}

// propertyOptions builds the option entries shared by the generic property
// and enum decorators. Falsy or absent values are omitted.
func propertyOptions(p schema.Property) []string {
	var opts []string
	if p.Unique {
		opts = append(opts, "unique: true")
	}
	if p.Nullable {
		opts = append(opts, "nullable: true")
	}
	if p.HasDefault() {
		opts = append(opts, "default: "+defaultLiteral(p.DefaultValue))
	}
	return opts
}

// defaultLiteral classifies a raw default value: numbers, booleans, and
// expressions starting with "new " or "() =>" pass through as-is; anything
// else is conservatively emitted as a quoted string literal.
func defaultLiteral(v string) string {
	switch {
	case isNumeric(v), v == "true", v == "false":
		return v
	case strings.HasPrefix(v, "new "), strings.HasPrefix(v, "() =>"):
		return v
	default:
		return quoteSingle(v)
	}
}

// nullMarker returns the declaration marker: "?" for nullable fields, the
// non-null assertion otherwise.
func nullMarker(nullable bool) string {
	if nullable {
		return "?"
	}
	return "!"
}

// isNumeric reports whether s parses as a number. The empty string is not
// numeric.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// quoteSingle renders a single-quoted string literal, escaping backslashes
// and single quotes.
func quoteSingle(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// quoteDouble renders a double-quoted string literal, escaping backslashes
// and double quotes.
func quoteDouble(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
