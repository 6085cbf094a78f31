package schema

// TypeEnum is the sentinel property type marking an inline enum definition.
// A property with this type carries its definition in Property.Enum.
const TypeEnum = "enum"

// Property is one typed field of an entity, embeddable, or interface.
// Type is either a primitive token (e.g. "string", "number"), the TypeEnum
// sentinel, or the name of a standalone Enum node.
type Property struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	PrimaryKey   bool     `json:"isPrimaryKey,omitempty"`
	Unique       bool     `json:"isUnique,omitempty"`
	Nullable     bool     `json:"isNullable,omitempty"`
	DefaultValue string   `json:"defaultValue,omitempty"`
	Enum         *EnumDef `json:"enumDef,omitempty"`
}

// EnumDef is a property-level inline enum definition, present only when the
// property type is TypeEnum.
type EnumDef struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values"`
}

// IsEnum reports whether the property declares an inline enum.
func (p Property) IsEnum() bool {
	return p.Type == TypeEnum
}

// HasDefault reports whether a default value was supplied.
func (p Property) HasDefault() bool {
	return p.DefaultValue != ""
}

// Index is a table index over one or more property names.
type Index struct {
	ID         string   `json:"id"`
	Name       string   `json:"name,omitempty"`
	Properties []string `json:"properties"`
	Unique     bool     `json:"isUnique,omitempty"`
}
