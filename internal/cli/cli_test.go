package cli

import (
	"bytes"
	"testing"

	"github.com/aloncha/Kelas-Alpro/internal/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("positional grid path", func(t *testing.T) {
		cfg, exit, err := Parse([]string{"grids/"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "grids/", cfg.GridPath)
		assert.Equal(t, compare.FormatTable, cfg.ReportFormat)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("flags win over positional", func(t *testing.T) {
		cfg, _, err := Parse([]string{"-g", "short.hcl", "-format", "YAML", "-log-level", "debug", "other.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "short.hcl", cfg.GridPath)
		assert.Equal(t, compare.FormatYAML, cfg.ReportFormat)
		assert.Equal(t, "debug", cfg.LogLevel)

		cfg, _, err = Parse([]string{"-grid", "long.hcl", "-g", "short.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "long.hcl", cfg.GridPath)
	})

	t.Run("help", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse([]string{"-h"}, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("no grid path prints usage", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, exit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Contains(t, out.String(), "GRID_PATH")
	})

	t.Run("invalid values exit with code 2", func(t *testing.T) {
		for _, args := range [][]string{
			{"-format", "csv", "g.hcl"},
			{"-log-format", "xml", "g.hcl"},
			{"-log-level", "loud", "g.hcl"},
			{"-unknown"},
		} {
			_, _, err := Parse(args, &bytes.Buffer{})
			require.Error(t, err, "args=%v", args)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		}
	})
}
