// Package load decodes diagram snapshots from their JSON wire form (or YAML
// for hand-authored fixtures) and normalizes them for generation: missing
// node and edge ids are backfilled with UUIDs and relationship/fetch kind
// spellings are canonicalized.
package load

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/diagramkit/ormgen/schema"
)

// Parse decodes a JSON snapshot and normalizes it.
func Parse(data []byte) (*schema.Snapshot, error) {
	var snap schema.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("load: decode snapshot: %w", err)
	}
	if err := normalize(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ParseYAML decodes a YAML snapshot. The document is converted to JSON first
// so node payload dispatch shares one code path with Parse.
func ParseYAML(data []byte) (*schema.Snapshot, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("load: decode yaml: %w", err)
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("load: convert yaml: %w", err)
	}
	return Parse(buf)
}

// FromFile loads a snapshot from a .json, .yaml, or .yml file.
func FromFile(path string) (*schema.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// normalize backfills missing ids and canonicalizes enum-like string fields.
func normalize(s *schema.Snapshot) error {
	for _, n := range s.Nodes {
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
	}
	for _, e := range s.Edges {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		rt, err := canonicalRelation(string(e.Type))
		if err != nil {
			return fmt.Errorf("load: edge %s: %w", e.ID, err)
		}
		e.Type = rt
		ft, err := canonicalFetch(string(e.Fetch))
		if err != nil {
			return fmt.Errorf("load: edge %s: %w", e.ID, err)
		}
		e.Fetch = ft
	}
	return nil
}

// relationSpellings maps collapsed spellings ("OneToMany", "one_to_many",
// "one-to-many") to the canonical relation kind.
var relationSpellings = map[string]schema.RelationType{
	"onetoone":       schema.OneToOne,
	"onetomany":      schema.OneToMany,
	"manytoone":      schema.ManyToOne,
	"manytomany":     schema.ManyToMany,
	"composition":    schema.Composition,
	"aggregation":    schema.Aggregation,
	"inheritance":    schema.Inheritance,
	"implementation": schema.Implementation,
	"dependency":     schema.Dependency,
}

func canonicalRelation(s string) (schema.RelationType, error) {
	if t, ok := relationSpellings[collapse(s)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown relation type %q", s)
}

func canonicalFetch(s string) (schema.FetchType, error) {
	switch collapse(s) {
	case "":
		return "", nil
	case "lazy":
		return schema.FetchLazy, nil
	case "eager":
		return schema.FetchEager, nil
	}
	return "", fmt.Errorf("unknown fetch type %q", s)
}

// collapse lowercases s and strips separators, so "ONE_TO_MANY" and
// "OneToMany" collapse to "onetomany".
func collapse(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case '-', '_', ' ':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
