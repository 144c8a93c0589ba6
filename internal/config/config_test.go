package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.False(t, cfg.Record)
	assert.Empty(t, cfg.DBPath)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFrom(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "empty env keeps defaults",
			env:  nil,
			want: DefaultConfig(),
		},
		{
			name: "all set",
			env: map[string]string{
				"WOUNDCHECK_DB":     "/tmp/w.db",
				"WOUNDCHECK_ADDR":   ":9090",
				"WOUNDCHECK_COLOR":  "NEVER",
				"WOUNDCHECK_RECORD": "true",
			},
			want: Config{DBPath: "/tmp/w.db", Addr: ":9090", Color: ColorNever, Record: true},
		},
		{
			name: "bad record flag ignored",
			env:  map[string]string{"WOUNDCHECK_RECORD": "sometimes"},
			want: DefaultConfig(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configFrom(envMap(tt.env)))
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("WOUNDCHECK_ADDR", "127.0.0.1:7000")
	t.Setenv("WOUNDCHECK_RECORD", "1")
	cfg := ConfigFromEnv()
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
	assert.True(t, cfg.Record)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = "rainbow"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Addr = ""
	assert.Error(t, cfg.Validate())
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.DBPath = filepath.Join(dir, "nested", "w.db")
	p, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, cfg.DBPath, p)
	assert.DirExists(t, filepath.Join(dir, "nested"))

	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultConfig().ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "woundcheck", "woundcheck.db"), p)
}

func TestUseColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	cfg := DefaultConfig()
	assert.False(t, cfg.UseColor(f), "regular file is not a terminal")

	cfg.Color = ColorAlways
	assert.True(t, cfg.UseColor(f))

	cfg.Color = ColorNever
	assert.False(t, cfg.UseColor(os.Stdout))
}
