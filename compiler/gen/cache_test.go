package gen

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/diagramkit/ormgen"
)

func TestFingerprint_Stable(t *testing.T) {
	a := testGraph(t, blogSnapshot())
	b := testGraph(t, blogSnapshot())
	ka, err := a.Fingerprint()
	require.NoError(t, err)
	kb, err := b.Fingerprint()
	require.NoError(t, err)
	require.Equal(t, ka, kb)
	require.True(t, strings.HasPrefix(ka, cacheKeyPrefix))
}

func TestFingerprint_SensitiveToOptions(t *testing.T) {
	base := testGraph(t, blogSnapshot())
	wide := testGraph(t, blogSnapshot(), WithIndentSize(4))
	kBase, err := base.Fingerprint()
	require.NoError(t, err)
	kWide, err := wide.Fingerprint()
	require.NoError(t, err)
	require.NotEqual(t, kBase, kWide)

	// Workers does not affect output, so it must not affect the key.
	parallel := testGraph(t, blogSnapshot(), WithWorkers(8))
	kParallel, err := parallel.Fingerprint()
	require.NoError(t, err)
	require.Equal(t, kBase, kParallel)
}

func TestGenerateCached(t *testing.T) {
	ctx := context.Background()
	g := testGraph(t, blogSnapshot())
	cache := ormgen.NewMemoryCache()

	first, err := g.GenerateCached(ctx, cache)
	require.NoError(t, err)
	require.Equal(t, g.Generate(), first)

	// Second call is a hit and returns the same result.
	second, err := g.GenerateCached(ctx, cache)
	require.NoError(t, err)
	require.Equal(t, first, second)

	key, err := g.Fingerprint()
	require.NoError(t, err)
	buf, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, buf)
}

func TestGenerateCached_NilCache(t *testing.T) {
	g := testGraph(t, blogSnapshot())
	out, err := g.GenerateCached(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, g.Generate(), out)
}

func TestGenerateCached_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	g := testGraph(t, blogSnapshot())
	cache := ormgen.NewMemoryCache()

	key, err := g.Fingerprint()
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, key, []byte("not msgpack"), 0))

	out, err := g.GenerateCached(ctx, cache)
	require.NoError(t, err)
	require.Equal(t, g.Generate(), out)

	// The corrupt entry has been overwritten with a decodable one.
	again, err := g.GenerateCached(ctx, cache)
	require.NoError(t, err)
	require.Equal(t, out, again)
}
