// Package toolchain selects the host C and C++ compilers and derives the
// per-mode build environments from them.
package toolchain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qiniu/x/log"

	"github.com/goplus/ccenv/internal/config"
	"github.com/goplus/ccenv/pkgs/which"
)

var (
	// ErrNoCompiler is returned when none of the candidate compilers resolves.
	ErrNoCompiler = errors.New("no compiler found")
	// ErrTooOld is returned when a compiler is older than the configured minimum.
	ErrTooOld = errors.New("compiler too old")
)

// Brand identifies a compiler family.
type Brand int

const (
	Unknown Brand = iota
	Clang
	GCC
)

func (b Brand) String() string {
	switch b {
	case Clang:
		return "clang"
	case GCC:
		return "gcc"
	}
	return "unknown"
}

// BrandOf classifies a compiler by the base name of its path.
func BrandOf(path string) Brand {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, ".exe")
	switch {
	case strings.HasPrefix(name, "clang"):
		return Clang
	case strings.HasPrefix(name, "gcc"), strings.HasPrefix(name, "g++"), name == "cc", name == "c++":
		return GCC
	}
	return Unknown
}

// Compiler is a resolved compiler executable.
type Compiler struct {
	Path    string
	Brand   Brand
	Version string // canonical semver, empty until probed
}

func newCompiler(path string) Compiler {
	return Compiler{Path: path, Brand: BrandOf(path)}
}

// Toolchain is the pair of compilers used for a build.
type Toolchain struct {
	CC  Compiler
	CXX Compiler
}

// HasClang reports whether either compiler is clang.
func (tc *Toolchain) HasClang() bool {
	return tc.CC.Brand == Clang || tc.CXX.Brand == Clang
}

// Select picks the C and C++ compilers. $CC and $CXX (read through getenv)
// take precedence over the configured candidates.
func Select(r *which.Resolver, getenv func(string) string, cfg config.Toolchain) (*Toolchain, error) {
	cc, err := pick(r, "C", candidates(getenv, "CC", cfg.CC))
	if err != nil {
		return nil, err
	}
	cxx, err := pick(r, "C++", candidates(getenv, "CXX", cfg.CXX))
	if err != nil {
		return nil, err
	}
	return &Toolchain{CC: newCompiler(cc), CXX: newCompiler(cxx)}, nil
}

func candidates(getenv func(string) string, key string, configured []string) []string {
	var out []string
	if getenv != nil {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			out = append(out, v)
		}
	}
	return append(out, configured...)
}

func pick(r *which.Resolver, lang string, names []string) (string, error) {
	path, ok := r.First(names)
	if !ok {
		return "", fmt.Errorf("%s compiler: %w (tried %s)", lang, ErrNoCompiler, strings.Join(names, ", "))
	}
	log.Debugf("toolchain: %s compiler %s", lang, path)
	return path, nil
}
