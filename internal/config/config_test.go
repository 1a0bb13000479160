package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/j-convey/Permission-Set-Comparator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		input := []byte(`descriptions_csv: /srv/exports/Permission Sets.csv
no_color: true
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "/srv/exports/Permission Sets.csv", cfg.DescriptionsCSV)
		assert.True(t, cfg.NoColor)
	})

	t.Run("empty config", func(t *testing.T) {
		cfg, err := config.Parse(nil)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestMarshal(t *testing.T) {
	cfg := config.Config{DescriptionsCSV: "ref.csv", NoColor: true}
	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	parsed, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("reads existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("no_color: true\n"), 0644))
		cfg, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.True(t, cfg.NoColor)
	})
}
