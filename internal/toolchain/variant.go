package toolchain

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goplus/ccenv/internal/config"
)

// Mode names a build variant.
type Mode string

const (
	Debug   Mode = "debug"
	Release Mode = "release"
)

// Modes lists every known mode.
var Modes = []Mode{Debug, Release}

// ErrUnknownMode is returned by ParseModes for names outside Modes.
var ErrUnknownMode = errors.New("unknown mode")

// ParseModes parses a comma separated mode list. Duplicates are dropped and
// the first-seen order kept; an empty list means debug only.
func ParseModes(s string) ([]Mode, error) {
	var modes []Mode
	for _, part := range strings.Split(s, ",") {
		m := Mode(strings.TrimSpace(part))
		if m == "" {
			continue
		}
		if !slices.Contains(Modes, m) {
			return nil, fmt.Errorf("%w %q: choose from %s", ErrUnknownMode, m, ModeNames())
		}
		if !slices.Contains(modes, m) {
			modes = append(modes, m)
		}
	}
	if len(modes) == 0 {
		modes = []Mode{Debug}
	}
	return modes, nil
}

// ModeNames returns the known modes as "debug, release".
func ModeNames() string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// Env is a complete compiler environment: which compilers to run and with
// which flags.
type Env struct {
	Mode       Mode // empty for the shared base
	CC         string
	CXX        string
	CCFlags    []string // C and C++
	CFlags     []string
	CXXFlags   []string
	CPPDefines []string
}

// Base returns the environment shared by every mode.
func Base(tc *Toolchain, flags config.Flags) *Env {
	e := &Env{
		CC:       tc.CC.Path,
		CXX:      tc.CXX.Path,
		CCFlags:  slices.Clone(flags.CC),
		CFlags:   slices.Clone(flags.C),
		CXXFlags: slices.Clone(flags.CXX),
	}
	if tc.HasClang() {
		// only clang understands it
		e.CCFlags = append(e.CCFlags, "-fcolor-diagnostics")
	}
	return e
}

// Clone returns a deep copy of e.
func (e *Env) Clone() *Env {
	return &Env{
		Mode:       e.Mode,
		CC:         e.CC,
		CXX:        e.CXX,
		CCFlags:    slices.Clone(e.CCFlags),
		CFlags:     slices.Clone(e.CFlags),
		CXXFlags:   slices.Clone(e.CXXFlags),
		CPPDefines: slices.Clone(e.CPPDefines),
	}
}

// Variant returns a copy of e specialized for mode.
func (e *Env) Variant(mode Mode, mc config.Mode) *Env {
	v := e.Clone()
	v.Mode = mode
	v.CCFlags = append(v.CCFlags, mc.CCFlags...)
	v.CPPDefines = append(v.CPPDefines, mc.Defines...)
	return v
}

// Variants builds one environment per requested mode.
func Variants(base *Env, modes []Mode, cfg config.Modes) []*Env {
	out := make([]*Env, 0, len(modes))
	for _, m := range modes {
		out = append(out, base.Variant(m, ModeConfig(cfg, m)))
	}
	return out
}

// ModeConfig returns the configured additions for m.
func ModeConfig(cfg config.Modes, m Mode) config.Mode {
	if m == Release {
		return cfg.Release
	}
	return cfg.Debug
}

// Lang selects the compiler and language flags.
type Lang int

const (
	C Lang = iota
	CXX
)

// Compiler returns the compiler for lang.
func (e *Env) Compiler(lang Lang) string {
	if lang == CXX {
		return e.CXX
	}
	return e.CC
}

// Flags returns all compile flags for lang, defines included.
func (e *Env) Flags(lang Lang) []string {
	args := slices.Clone(e.CCFlags)
	if lang == CXX {
		args = append(args, e.CXXFlags...)
	} else {
		args = append(args, e.CFlags...)
	}
	for _, d := range e.CPPDefines {
		args = append(args, "-D"+d)
	}
	return args
}

// CompileArgs renders the command line compiling src into obj.
func (e *Env) CompileArgs(lang Lang, src, obj string) []string {
	args := []string{e.Compiler(lang)}
	args = append(args, e.Flags(lang)...)
	return append(args, "-c", "-o", obj, src)
}

// Vars returns the environment as NAME=value pairs in the conventional
// make/configure variable names.
func (e *Env) Vars() []string {
	cflags := append(slices.Clone(e.CCFlags), e.CFlags...)
	cxxflags := append(slices.Clone(e.CCFlags), e.CXXFlags...)
	var cppflags []string
	for _, d := range e.CPPDefines {
		cppflags = append(cppflags, "-D"+d)
	}
	return []string{
		"CC=" + e.CC,
		"CXX=" + e.CXX,
		"CFLAGS=" + strings.Join(cflags, " "),
		"CXXFLAGS=" + strings.Join(cxxflags, " "),
		"CPPFLAGS=" + strings.Join(cppflags, " "),
	}
}
