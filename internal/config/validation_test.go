package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty cxx", func(c *Config) { c.Toolchain.CXX = nil }, "toolchain.cxx must not be empty"},
		{"blank name", func(c *Config) { c.Toolchain.CC = []string{"clang", " "} }, "must not be blank"},
		{"bad convention", func(c *Config) { c.Toolchain.Convention = "dos" }, "toolchain.convention"},
		{"bad version", func(c *Config) { c.Toolchain.MinVersion.Clang = "latest" }, "toolchain.min_version.clang"},
		{"empty build dir", func(c *Config) { c.Dirs.Build = "" }, "dirs.build"},
		{"empty lib dir", func(c *Config) { c.Dirs.Lib = "" }, "dirs.lib"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCanonical(t *testing.T) {
	for in, want := range map[string]string{
		"14":      "v14.0.0",
		"4.9":     "v4.9.0",
		"v15.0.7": "v15.0.7",
		" 12.2.0": "v12.2.0",
		"":        "",
		"latest":  "",
	} {
		assert.Equal(t, want, Canonical(in), "Canonical(%q)", in)
	}
}
