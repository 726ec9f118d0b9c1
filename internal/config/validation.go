package config

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/goplus/ccenv/pkgs/which"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if len(c.Toolchain.CC) == 0 {
		errs = append(errs, "toolchain.cc must not be empty")
	}
	if len(c.Toolchain.CXX) == 0 {
		errs = append(errs, "toolchain.cxx must not be empty")
	}
	for _, name := range append(append([]string{}, c.Toolchain.CC...), c.Toolchain.CXX...) {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, "toolchain compiler names must not be blank")
			break
		}
	}
	if _, err := which.ParseConvention(c.Toolchain.Convention); err != nil {
		errs = append(errs, "toolchain.convention must be auto, plain or pathext")
	}
	for brand, v := range map[string]string{
		"clang": c.Toolchain.MinVersion.Clang,
		"gcc":   c.Toolchain.MinVersion.GCC,
	} {
		if v != "" && !semver.IsValid(Canonical(v)) {
			errs = append(errs, fmt.Sprintf("toolchain.min_version.%s: invalid version %q", brand, v))
		}
	}

	if c.Dirs.Build == "" {
		errs = append(errs, "dirs.build must not be empty")
	}
	if c.Dirs.Lib == "" {
		errs = append(errs, "dirs.lib must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}
	return nil
}

// Canonical turns a compiler-style version ("14", "4.9.2", "v15.0")
// into a semver string understood by golang.org/x/mod/semver.
func Canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
