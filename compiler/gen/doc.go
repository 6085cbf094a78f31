// Package gen generates MikroORM-style TypeScript source from a diagram
// snapshot.
//
// The pipeline mirrors the shape of the diagram: the orchestrator (Graph)
// partitions nodes by kind, the import collector computes each node's
// decorator and cross-type import sets, and the per-construct renderers emit
// enum declarations, property lines, and relationship lines. Assemblers
// concatenate those pieces into one source string per node.
//
// Generation is total over well-formed input and never fails: unresolvable
// edges are skipped, structural relationship kinds (inheritance,
// implementation, dependency) render no decorator, and unrecognized default
// values degrade to quoted string literals. Errors in this package surface
// only from configuration, caching, and file writing.
//
// Determinism is a hard requirement: generating twice from the same
// (nodes, edges, options) triple yields byte-identical output. Every set
// that becomes an import list is sorted before rendering, and the only
// order-sensitive merges are the documented last-definition-wins rules for
// enum names and colliding node names.
//
// Basic usage:
//
//	g, err := gen.NewGraph(snapshot, gen.WithIndentSize(4))
//	if err != nil { ... }
//	files := g.Generate() // map[sanitized name]source
package gen
