// Package schema defines the diagram data model the generator consumes: nodes
// (entities, embeddables, enums, interfaces), typed relationship edges, and
// the immutable Snapshot that bundles them for one generation call.
//
// All values here are owned and mutated by the external editor layer. The
// generator receives a snapshot per invocation and never mutates it.
package schema
