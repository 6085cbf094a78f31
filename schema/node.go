package schema

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NodeKind is the discriminant of the DiagramNode tagged union.
type NodeKind string

// Node kinds.
const (
	KindEntity     NodeKind = "entity"
	KindEmbeddable NodeKind = "embeddable"
	KindEnum       NodeKind = "enum"
	KindInterface  NodeKind = "interface"
)

// Valid reports whether k is one of the known node kinds.
func (k NodeKind) Valid() bool {
	switch k {
	case KindEntity, KindEmbeddable, KindEnum, KindInterface:
		return true
	}
	return false
}

// String returns the kind name.
func (k NodeKind) String() string { return string(k) }

// Position is the node's location on the canvas. It has no effect on
// generation and is carried only so snapshots round-trip losslessly.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DiagramNode is one node of the diagram: a tagged union over NodeKind.
// Exactly one of the kind-specific data fields is non-nil, matching Kind.
type DiagramNode struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Position Position `json:"position"`

	Entity     *EntityData     `json:"-"`
	Embeddable *EmbeddableData `json:"-"`
	Enum       *EnumData       `json:"-"`
	Interface  *InterfaceData  `json:"-"`
}

// EntityData describes a node mapped to a persisted table.
type EntityData struct {
	Name          string     `json:"name"`
	TableName     string     `json:"tableName,omitempty"`
	Properties    []Property `json:"properties"`
	Indexes       []Index    `json:"indexes,omitempty"`
	AggregateRoot bool       `json:"isAggregateRoot,omitempty"`
}

// EmbeddableData describes a value-object node. Embeddables carry no primary
// key and own no relationships.
type EmbeddableData struct {
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

// EnumData describes a standalone enumeration node.
type EnumData struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values"`
}

// EnumValue is one member of an enumeration.
type EnumValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// InterfaceData describes a plain interface node.
type InterfaceData struct {
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
	Methods    []Method   `json:"methods,omitempty"`
}

// Method is an interface method signature.
type Method struct {
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters,omitempty"`
	ReturnType string      `json:"returnType"`
}

// Parameter is one method parameter.
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Name returns the user-facing name of the node's payload,
// or the empty string if the payload is missing.
func (n *DiagramNode) Name() string {
	switch n.Kind {
	case KindEntity:
		if n.Entity != nil {
			return n.Entity.Name
		}
	case KindEmbeddable:
		if n.Embeddable != nil {
			return n.Embeddable.Name
		}
	case KindEnum:
		if n.Enum != nil {
			return n.Enum.Name
		}
	case KindInterface:
		if n.Interface != nil {
			return n.Interface.Name
		}
	}
	return ""
}

// nodeEnvelope is the wire form of DiagramNode: the kind tag plus a single
// "data" object holding the kind-specific payload.
type nodeEnvelope struct {
	ID       string          `json:"id"`
	Kind     NodeKind        `json:"kind"`
	Position Position        `json:"position"`
	Data     json.RawMessage `json:"data"`
}

// UnmarshalJSON decodes the tagged-union wire form, dispatching the "data"
// payload on the "kind" tag. Unknown kinds are rejected.
func (n *DiagramNode) UnmarshalJSON(b []byte) error {
	var env nodeEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	env.Kind = NodeKind(strings.ToLower(string(env.Kind)))
	n.ID = env.ID
	n.Kind = env.Kind
	n.Position = env.Position
	data := env.Data
	if len(data) == 0 {
		data = []byte("{}")
	}
	switch env.Kind {
	case KindEntity:
		n.Entity = new(EntityData)
		return json.Unmarshal(data, n.Entity)
	case KindEmbeddable:
		n.Embeddable = new(EmbeddableData)
		return json.Unmarshal(data, n.Embeddable)
	case KindEnum:
		n.Enum = new(EnumData)
		return json.Unmarshal(data, n.Enum)
	case KindInterface:
		n.Interface = new(InterfaceData)
		return json.Unmarshal(data, n.Interface)
	default:
		return fmt.Errorf("schema: unknown node kind %q", env.Kind)
	}
}

// MarshalJSON encodes the node back into its tagged-union wire form.
func (n DiagramNode) MarshalJSON() ([]byte, error) {
	var payload any
	switch n.Kind {
	case KindEntity:
		payload = n.Entity
	case KindEmbeddable:
		payload = n.Embeddable
	case KindEnum:
		payload = n.Enum
	case KindInterface:
		payload = n.Interface
	default:
		return nil, fmt.Errorf("schema: unknown node kind %q", n.Kind)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(nodeEnvelope{
		ID:       n.ID,
		Kind:     n.Kind,
		Position: n.Position,
		Data:     data,
	})
}
