package gen

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/diagramkit/ormgen/schema"
)

// Subdirectory names used by WriteSplit, one per node kind.
var kindDirs = map[schema.NodeKind]string{
	schema.KindEntity:     "entities",
	schema.KindEmbeddable: "embeddables",
	schema.KindEnum:       "enums",
	schema.KindInterface:  "interfaces",
}

// Write generates all nodes and writes one .ts file per node into outDir.
// File names are the snake_case form of the sanitized type name.
func (g *Graph) Write(ctx context.Context, outDir string) error {
	return g.writeFiles(ctx, outDir, g.Generate())
}

// WriteSplit generates all nodes and lays them out in per-kind
// subdirectories under outDir (entities/, embeddables/, enums/, interfaces/).
// Empty kinds produce no directory.
func (g *Graph) WriteSplit(ctx context.Context, outDir string) error {
	f := g.Files()
	for kind, files := range map[schema.NodeKind]map[string]string{
		schema.KindEntity:     f.Entities,
		schema.KindEmbeddable: f.Embeddables,
		schema.KindEnum:       f.Enums,
		schema.KindInterface:  f.Interfaces,
	} {
		if len(files) == 0 {
			continue
		}
		if err := g.writeFiles(ctx, filepath.Join(outDir, kindDirs[kind]), files); err != nil {
			return err
		}
	}
	return nil
}

// writeFiles writes the given name-to-source map under dir in parallel.
func (g *Graph) writeFiles(ctx context.Context, dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return NewGenerationError("write", dir, "create output directory", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Workers)
	for name, src := range files {
		path := filepath.Join(dir, FileName(name))
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
				return NewGenerationError("write", path, "write file", err)
			}
			return nil
		})
	}
	return eg.Wait()
}
