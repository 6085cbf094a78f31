package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diagramkit/ormgen/schema"
)

func TestCollectImports_Decorators(t *testing.T) {
	snap := &schema.Snapshot{Nodes: []*schema.DiagramNode{
		entityNode("u", "User",
			schema.Property{Name: "id", Type: "number", PrimaryKey: true},
			schema.Property{Name: "name", Type: "string"},
			schema.Property{Name: "role", Type: schema.TypeEnum, Enum: &schema.EnumDef{Name: "Role"}},
		),
	}}
	snap.Nodes[0].Entity.Indexes = []schema.Index{
		{ID: "i1", Properties: []string{"name"}},
		{ID: "i2", Properties: []string{"name"}, Unique: true},
	}
	g := testGraph(t, snap)
	s := g.collectImports(snap.Nodes[0])
	for _, d := range []string{"Entity", "PrimaryKey", "Property", "Enum", "Index", "Unique"} {
		require.Contains(t, s.decorators, d)
	}
	require.False(t, s.collection)
	require.False(t, s.cascade)
}

func TestCollectImports_Relationships(t *testing.T) {
	snap := &schema.Snapshot{
		Nodes: []*schema.DiagramNode{
			entityNode("u", "User", schema.Property{Name: "id", Type: "number", PrimaryKey: true}),
			entityNode("p", "Post", schema.Property{Name: "id", Type: "number", PrimaryKey: true}),
		},
		Edges: []*schema.RelationshipEdge{
			{ID: "e1", Source: "u", Target: "p", Type: schema.OneToMany, SourceProperty: "posts", Cascade: true},
		},
	}
	g := testGraph(t, snap)
	s := g.collectImports(snap.Nodes[0])
	require.Contains(t, s.decorators, "OneToMany")
	require.Contains(t, s.related, "Post")
	require.True(t, s.collection)
	require.True(t, s.cascade)
}

func TestCollectImports_NoSelfImport(t *testing.T) {
	snap := &schema.Snapshot{
		Nodes: []*schema.DiagramNode{
			entityNode("u", "User", schema.Property{Name: "id", Type: "number", PrimaryKey: true}),
		},
		Edges: []*schema.RelationshipEdge{
			{ID: "e1", Source: "u", Target: "u", Type: schema.ManyToOne, SourceProperty: "manager"},
		},
	}
	g := testGraph(t, snap)
	s := g.collectImports(snap.Nodes[0])
	require.Contains(t, s.decorators, "ManyToOne")
	require.NotContains(t, s.related, "User")
}

func TestCollectImports_StructuralEdgesStillImport(t *testing.T) {
	snap := &schema.Snapshot{
		Nodes: []*schema.DiagramNode{
			entityNode("u", "User", schema.Property{Name: "id", Type: "number", PrimaryKey: true}),
			entityNode("a", "AuditLog", schema.Property{Name: "id", Type: "number", PrimaryKey: true}),
			interfaceNode("i", "Timestamped"),
		},
		Edges: []*schema.RelationshipEdge{
			{ID: "e1", Source: "u", Target: "a", Type: schema.Dependency, SourceProperty: ""},
			{ID: "e2", Source: "u", Target: "i", Type: schema.Implementation, SourceProperty: ""},
		},
	}
	g := testGraph(t, snap)
	s := g.collectImports(snap.Nodes[0])
	require.Contains(t, s.related, "AuditLog")
	require.Contains(t, s.interfaces, "Timestamped")
	// Structural edges never pull in relation decorators.
	require.NotContains(t, s.decorators, "OneToMany")
}

func TestCollectImports_UnresolvableEdgeSkipped(t *testing.T) {
	snap := &schema.Snapshot{
		Nodes: []*schema.DiagramNode{
			entityNode("u", "User", schema.Property{Name: "id", Type: "number", PrimaryKey: true}),
		},
		Edges: []*schema.RelationshipEdge{
			{ID: "e1", Source: "u", Target: "ghost", Type: schema.OneToMany, SourceProperty: "items"},
		},
	}
	g := testGraph(t, snap)
	s := g.collectImports(snap.Nodes[0])
	require.Empty(t, s.related)
	require.NotContains(t, s.decorators, "OneToMany")
}

func TestRenderImports_SortedAndMerged(t *testing.T) {
	g := testGraph(t, &schema.Snapshot{})
	s := newImportSet("Entity")
	s.decorators["PrimaryKey"] = struct{}{}
	s.decorators["OneToMany"] = struct{}{}
	s.collection = true
	s.cascade = true
	s.related["Post"] = struct{}{}
	s.enums["Role"] = struct{}{}
	s.interfaces["Auditable"] = struct{}{}

	want := "import { Cascade, Collection, Entity, OneToMany, PrimaryKey } from '@mikro-orm/core';\n" +
		"import { Auditable } from './Auditable';\n" +
		"import { Post } from './Post';\n" +
		"import { Role } from './Role';"
	require.Equal(t, want, g.renderImports(s))
}

func TestRenderImports_CustomImportPath(t *testing.T) {
	g := testGraph(t, &schema.Snapshot{}, WithCollectionImportPath("@mikro-orm/postgresql"))
	got := g.renderImports(newImportSet("Entity"))
	require.Equal(t, "import { Entity } from '@mikro-orm/postgresql';", got)
}
