package gen

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	c, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultIndentSize, c.IndentSize)
	require.Equal(t, DefaultCollectionImportPath, c.CollectionImportPath)
	require.Equal(t, runtime.GOMAXPROCS(0), c.Workers)
	require.Equal(t, "  ", c.indent())
}

func TestNewConfig_Options(t *testing.T) {
	c, err := NewConfig(
		WithIndentSize(4),
		WithCollectionImportPath("@mikro-orm/postgresql"),
		WithWorkers(2),
	)
	require.NoError(t, err)
	require.Equal(t, 4, c.IndentSize)
	require.Equal(t, "@mikro-orm/postgresql", c.CollectionImportPath)
	require.Equal(t, 2, c.Workers)
	require.Equal(t, "    ", c.indent())
}

func TestNewConfig_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero indent", WithIndentSize(0)},
		{"negative indent", WithIndentSize(-1)},
		{"empty import path", WithCollectionImportPath("")},
		{"zero workers", WithWorkers(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.opt)
			require.Error(t, err)
			require.True(t, IsConfigError(err))
			require.ErrorIs(t, err, ErrMissingConfig)
		})
	}
}

func TestApply_StopsAtFirstError(t *testing.T) {
	c := &Config{}
	err := c.Apply(WithIndentSize(8), WithWorkers(-1), WithIndentSize(4))
	require.Error(t, err)
	require.Equal(t, 8, c.IndentSize)
}

func TestMustNewConfig_Panics(t *testing.T) {
	require.NotPanics(t, func() { MustNewConfig(WithIndentSize(2)) })
	require.Panics(t, func() { MustNewConfig(WithIndentSize(0)) })
}
