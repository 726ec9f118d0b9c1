package toolchain

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/goplus/ccenv/internal/config"
)

func TestParseModes(t *testing.T) {
	tests := []struct {
		in   string
		want []Mode
	}{
		{"", []Mode{Debug}},
		{"debug", []Mode{Debug}},
		{"release", []Mode{Release}},
		{"release,debug", []Mode{Release, Debug}},
		{"debug, release ,debug", []Mode{Debug, Release}},
		{",,", []Mode{Debug}},
	}
	for _, tt := range tests {
		got, err := ParseModes(tt.in)
		if err != nil {
			t.Errorf("ParseModes(%q): %v", tt.in, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("ParseModes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	_, err := ParseModes("debug,profile")
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("err = %v, want ErrUnknownMode", err)
	}
	if !strings.Contains(err.Error(), "debug, release") {
		t.Errorf("error %q does not list the modes", err)
	}
}

func clangToolchain() *Toolchain {
	return &Toolchain{
		CC:  newCompiler("/usr/bin/clang"),
		CXX: newCompiler("/usr/bin/clang++"),
	}
}

func gccToolchain() *Toolchain {
	return &Toolchain{
		CC:  newCompiler("/usr/bin/gcc"),
		CXX: newCompiler("/usr/bin/g++"),
	}
}

func TestBaseColorDiagnostics(t *testing.T) {
	flags := config.DefaultConfig().Flags

	base := Base(clangToolchain(), flags)
	if want := "-Wall -Wextra -pedantic -fcolor-diagnostics"; strings.Join(base.CCFlags, " ") != want {
		t.Errorf("clang CCFlags = %v, want %q", base.CCFlags, want)
	}
	base = Base(gccToolchain(), flags)
	if slices.Contains(base.CCFlags, "-fcolor-diagnostics") {
		t.Errorf("gcc CCFlags = %v, want no color flag", base.CCFlags)
	}
	mixed := &Toolchain{CC: newCompiler("/usr/bin/gcc"), CXX: newCompiler("/usr/bin/clang++")}
	if !slices.Contains(Base(mixed, flags).CCFlags, "-fcolor-diagnostics") {
		t.Error("clang C++ compiler should enable color diagnostics")
	}
	if base.CFlags[0] != "-std=c99" || base.CXXFlags[0] != "-std=c++11" {
		t.Errorf("CFlags=%v CXXFlags=%v", base.CFlags, base.CXXFlags)
	}
}

func TestVariants(t *testing.T) {
	cfg := config.DefaultConfig()
	base := Base(gccToolchain(), cfg.Flags)
	before := strings.Join(base.CCFlags, " ")

	vs := Variants(base, []Mode{Debug, Release}, cfg.Modes)
	if len(vs) != 2 {
		t.Fatalf("got %d variants", len(vs))
	}
	debug, release := vs[0], vs[1]

	if debug.Mode != Debug || strings.Join(debug.CCFlags, " ") != "-Wall -Wextra -pedantic -O0 -g" {
		t.Errorf("debug = %+v", debug)
	}
	if !slices.Equal(debug.CPPDefines, []string{"DEBUG"}) {
		t.Errorf("debug defines = %v", debug.CPPDefines)
	}
	if release.Mode != Release || strings.Join(release.CCFlags, " ") != "-Wall -Wextra -pedantic -O2" {
		t.Errorf("release = %+v", release)
	}
	if !slices.Equal(release.CPPDefines, []string{"RELEASE"}) {
		t.Errorf("release defines = %v", release.CPPDefines)
	}
	if got := strings.Join(base.CCFlags, " "); got != before {
		t.Errorf("base mutated: %q -> %q", before, got)
	}

	debug.CFlags[0] = "-std=c11"
	if release.CFlags[0] != "-std=c99" || base.CFlags[0] != "-std=c99" {
		t.Error("variants share flag slices")
	}
}

func TestCompileArgsAndVars(t *testing.T) {
	cfg := config.DefaultConfig()
	v := Base(gccToolchain(), cfg.Flags).Variant(Release, cfg.Modes.Release)

	got := strings.Join(v.CompileArgs(CXX, "a.cc", "a.o"), " ")
	want := "/usr/bin/g++ -Wall -Wextra -pedantic -O2 -std=c++11 -DRELEASE -c -o a.o a.cc"
	if got != want {
		t.Errorf("CompileArgs(CXX) =\n %q\nwant\n %q", got, want)
	}
	got = strings.Join(v.CompileArgs(C, "a.c", "a.o"), " ")
	want = "/usr/bin/gcc -Wall -Wextra -pedantic -O2 -std=c99 -DRELEASE -c -o a.o a.c"
	if got != want {
		t.Errorf("CompileArgs(C) =\n %q\nwant\n %q", got, want)
	}

	vars := v.Vars()
	for _, want := range []string{
		"CC=/usr/bin/gcc",
		"CXX=/usr/bin/g++",
		"CFLAGS=-Wall -Wextra -pedantic -O2 -std=c99",
		"CXXFLAGS=-Wall -Wextra -pedantic -O2 -std=c++11",
		"CPPFLAGS=-DRELEASE",
	} {
		if !slices.Contains(vars, want) {
			t.Errorf("Vars() = %v, missing %q", vars, want)
		}
	}
}
