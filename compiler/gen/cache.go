package gen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/diagramkit/ormgen"
	"github.com/diagramkit/ormgen/schema"
)

// cacheKeyPrefix namespaces generation entries in a shared cache.
const cacheKeyPrefix = "ormgen:gen:"

// fingerprintPayload is the canonical encoding input for the cache key.
// Snapshot and option fields are structs and slices only, so the msgpack
// encoding is deterministic.
type fingerprintPayload struct {
	Snapshot             *schema.Snapshot `msgpack:"snapshot"`
	IndentSize           int              `msgpack:"indent_size"`
	CollectionImportPath string           `msgpack:"collection_import_path"`
}

// Fingerprint returns the cache key identifying this graph's snapshot and
// the options that affect its output. Two graphs with equal fingerprints
// generate byte-identical results.
func (g *Graph) Fingerprint() (string, error) {
	b, err := msgpack.Marshal(fingerprintPayload{
		Snapshot:             g.snapshot,
		IndentSize:           g.IndentSize,
		CollectionImportPath: g.CollectionImportPath,
	})
	if err != nil {
		return "", NewGenerationError("cache", "", "encode fingerprint", err)
	}
	sum := sha256.Sum256(b)
	return cacheKeyPrefix + hex.EncodeToString(sum[:]), nil
}

// GenerateCached returns the generation result for this graph, serving it
// from the cache when an entry for the snapshot fingerprint exists and
// storing it otherwise. A corrupt cache entry falls back to regeneration.
func (g *Graph) GenerateCached(ctx context.Context, cache ormgen.Cache) (map[string]string, error) {
	if cache == nil {
		return g.Generate(), nil
	}
	key, err := g.Fingerprint()
	if err != nil {
		return nil, err
	}
	if buf, err := cache.Get(ctx, key); err == nil && buf != nil {
		var out map[string]string
		if err := msgpack.Unmarshal(buf, &out); err == nil {
			return out, nil
		}
	}
	out := g.Generate()
	buf, err := msgpack.Marshal(out)
	if err != nil {
		return nil, NewGenerationError("cache", "", "encode result", err)
	}
	if err := cache.Set(ctx, key, buf, 0); err != nil {
		return nil, NewGenerationError("cache", "", "store result", err)
	}
	return out, nil
}
