package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"

	"golang.org/x/mod/semver"

	"github.com/goplus/ccenv/internal/config"
)

var versionRE = regexp.MustCompile(`\b(\d+)\.(\d+)(?:\.(\d+))?\b`)

var execCommandContext = exec.CommandContext

// Probe runs "<compiler> --version" and records the reported version.
func Probe(ctx context.Context, c *Compiler) error {
	out, err := execCommandContext(ctx, c.Path, "--version").Output()
	if err != nil {
		return fmt.Errorf("probe %s: %w", c.Path, err)
	}
	v := ParseVersion(string(out))
	if v == "" {
		return fmt.Errorf("probe %s: no version in output", c.Path)
	}
	c.Version = v
	return nil
}

// ParseVersion extracts the first X.Y[.Z] token of out as a canonical semver.
func ParseVersion(out string) string {
	m := versionRE.FindString(out)
	if m == "" {
		return ""
	}
	return config.Canonical(m)
}

// CheckVersion fails with ErrTooOld if c is older than min.
// An empty min, or an unprobed compiler, passes.
func CheckVersion(c Compiler, min string) error {
	want := config.Canonical(min)
	if want == "" || c.Version == "" {
		return nil
	}
	if semver.Compare(c.Version, want) < 0 {
		return fmt.Errorf("%s %s < %s: %w", c.Path, c.Version, want, ErrTooOld)
	}
	return nil
}

// MinVersionFor returns the configured minimum for the brand of c.
func MinVersionFor(c Compiler, mv config.MinVersion) string {
	switch c.Brand {
	case Clang:
		return mv.Clang
	case GCC:
		return mv.GCC
	}
	return ""
}
