package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nxc/galaxy-portfolio/internal/starfield"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starfield.gcfg")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadStarfieldMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadStarfield(filepath.Join(t.TempDir(), "absent.gcfg"))
	require.NoError(t, err)
	assert.Equal(t, starfield.DefaultConfig(), cfg)
}

func TestLoadStarfieldOverridesOnlyGivenValues(t *testing.T) {
	path := writeFile(t, `
[starfield]
count = 80
linkDistance = 140
glowColor = "#ff0000"
`)
	cfg, err := LoadStarfield(path)
	require.NoError(t, err)

	want := starfield.DefaultConfig()
	want.Count = 80
	want.LinkDistance = 140
	want.GlowColor = starfield.Color{R: 255}
	assert.Equal(t, want, cfg)
}

func TestLoadStarfieldShippedFile(t *testing.T) {
	cfg, err := LoadStarfield("../../starfield.gcfg")
	require.NoError(t, err)
	assert.Equal(t, starfield.DefaultConfig(), cfg)
}

func TestLoadStarfieldRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"unbounded count": "[starfield]\ncount = 50000\n",
		"bad color":       "[starfield]\nstarColor = \"white\"\n",
		"not a number":    "[starfield]\nspeed = fast\n",
		"unknown section": "[stars]\ncount = 3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadStarfield(writeFile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("STARFIELD_CONFIG", filepath.Join(t.TempDir(), "none.gcfg"))
	t.Setenv("STARFIELD_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "./content", cfg.ContentDir)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, starfield.DefaultConfig(), cfg.Starfield)
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("STARFIELD_SEED", "-1")
	t.Setenv("STARFIELD_CONFIG", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseStarfieldJSONCarriesTuning(t *testing.T) {
	want := starfield.DefaultConfig()
	want.Count = 120
	want.LinkDistance = 140
	want.GlowColor = starfield.Color{R: 0xff, G: 0x88, B: 0x00}

	data, err := json.Marshal(SectionFrom(want))
	require.NoError(t, err)
	got, err := ParseStarfieldJSON(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseStarfieldJSONKeepsDefaults(t *testing.T) {
	got, err := ParseStarfieldJSON([]byte(`{"speed": 0.5}`))
	require.NoError(t, err)

	want := starfield.DefaultConfig()
	want.Speed = 0.5
	assert.Equal(t, want, got)
}

func TestParseStarfieldJSONRejectsBadValues(t *testing.T) {
	for name, body := range map[string]string{
		"not json":    `{"count":`,
		"bad color":   `{"starColor": "white"}`,
		"count above": `{"count": 5000}`,
	} {
		_, err := ParseStarfieldJSON([]byte(body))
		assert.Error(t, err, name)
	}
}
