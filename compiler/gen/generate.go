package gen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/diagramkit/ormgen/schema"
)

// Graph is the orchestrator: a read-only snapshot plus the configuration and
// the lookup tables shared by every per-node generation. A Graph never
// mutates its snapshot and may be used from multiple goroutines.
type Graph struct {
	*Config
	snapshot *schema.Snapshot
	// enums indexes the standalone enum nodes by their declared name.
	// A later node with the same name overwrites an earlier one (last
	// write wins), matching the merge policy of the result maps.
	enums map[string]*schema.EnumData
	// outgoing indexes the edges by source node id, in snapshot order.
	outgoing map[string][]*schema.RelationshipEdge
}

// NewGraph creates a Graph over the given snapshot.
func NewGraph(s *schema.Snapshot, opts ...Option) (*Graph, error) {
	if s == nil {
		return nil, NewSnapshotError("", "nil snapshot", nil)
	}
	c, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		Config:   c,
		snapshot: s,
		enums:    make(map[string]*schema.EnumData),
		outgoing: make(map[string][]*schema.RelationshipEdge),
	}
	for _, n := range s.Nodes {
		if n.Kind == schema.KindEnum && n.Enum != nil {
			g.enums[n.Enum.Name] = n.Enum
		}
	}
	for _, e := range s.Edges {
		g.outgoing[e.Source] = append(g.outgoing[e.Source], e)
	}
	return g, nil
}

// Snapshot returns the snapshot this graph was built over.
func (g *Graph) Snapshot() *schema.Snapshot {
	return g.snapshot
}

// Files holds the generated sources partitioned by node kind, keyed by
// sanitized type name. Callers that lay files out by directory consume this
// form; everyone else uses Merge.
type Files struct {
	Entities    map[string]string
	Embeddables map[string]string
	Enums       map[string]string
	Interfaces  map[string]string
}

// Merge flattens the categorized maps into a single name-to-source map.
// Nodes of different kinds sharing a sanitized name are not deduplicated:
// later kinds overwrite earlier ones (last write wins).
func (f *Files) Merge() map[string]string {
	out := make(map[string]string, len(f.Entities)+len(f.Embeddables)+len(f.Enums)+len(f.Interfaces))
	for _, m := range []map[string]string{f.Entities, f.Embeddables, f.Enums, f.Interfaces} {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// generateNode generates the source for one node. It returns false for
// nodes with a missing payload, which produce no output.
func (g *Graph) generateNode(n *schema.DiagramNode) (name, src string, ok bool) {
	switch n.Kind {
	case schema.KindEntity:
		if n.Entity == nil {
			return "", "", false
		}
		return Sanitize(n.Entity.Name), g.generateEntity(n), true
	case schema.KindEmbeddable:
		if n.Embeddable == nil {
			return "", "", false
		}
		return Sanitize(n.Embeddable.Name), g.generateEmbeddable(n), true
	case schema.KindEnum:
		if n.Enum == nil {
			return "", "", false
		}
		def := schema.EnumDef{Name: n.Enum.Name, Values: n.Enum.Values}
		return Sanitize(n.Enum.Name), g.renderEnum(def) + "\n", true
	case schema.KindInterface:
		if n.Interface == nil {
			return "", "", false
		}
		return Sanitize(n.Interface.Name), g.generateInterface(n.Interface) + "\n", true
	}
	return "", "", false
}

// Files generates every node and partitions the output by kind.
func (g *Graph) Files() *Files {
	f := &Files{
		Entities:    make(map[string]string),
		Embeddables: make(map[string]string),
		Enums:       make(map[string]string),
		Interfaces:  make(map[string]string),
	}
	for _, n := range g.snapshot.Nodes {
		name, src, ok := g.generateNode(n)
		if !ok {
			continue
		}
		switch n.Kind {
		case schema.KindEntity:
			f.Entities[name] = src
		case schema.KindEmbeddable:
			f.Embeddables[name] = src
		case schema.KindEnum:
			f.Enums[name] = src
		case schema.KindInterface:
			f.Interfaces[name] = src
		}
	}
	return f
}

// Generate generates every node and returns one flat name-to-source map.
// Generation is pure and deterministic: the same snapshot and options yield
// byte-identical output.
func (g *Graph) Generate() map[string]string {
	return g.Files().Merge()
}

// GenerateContext generates all nodes in parallel, bounded by the configured
// worker count. Per-node generation is independent; the results are folded
// back in snapshot order so the merge is byte-identical to Generate.
func (g *Graph) GenerateContext(ctx context.Context) (map[string]string, error) {
	type result struct {
		kind schema.NodeKind
		name string
		src  string
		ok   bool
	}
	results := make([]result, len(g.snapshot.Nodes))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Workers)
	for i, n := range g.snapshot.Nodes {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			name, src, ok := g.generateNode(n)
			results[i] = result{kind: n.Kind, name: name, src: src, ok: ok}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Same fold order as Files().Merge(): per kind, then snapshot order.
	out := make(map[string]string, len(results))
	for _, kind := range []schema.NodeKind{schema.KindEntity, schema.KindEmbeddable, schema.KindEnum, schema.KindInterface} {
		for _, r := range results {
			if r.ok && r.kind == kind {
				out[r.name] = r.src
			}
		}
	}
	return out, nil
}
