// Package gtest assembles test programs linked against the googletest
// library found in the project's lib directory.
package gtest

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/qiniu/x/log"

	"github.com/goplus/ccenv/internal/toolchain"
)

// Program describes a googletest program.
type Program struct {
	Target  string   // output executable
	Sources []string // test sources, without gtest_main.cc
	LibDir  string   // project lib dir holding gtest/
}

// MainSource returns the path of gtest_main.cc under libDir.
func MainSource(libDir string) string {
	return filepath.Join(libDir, "gtest", "gtest_main.cc")
}

// StaticLib returns the path of the static gtest archive under libDir.
func StaticLib(libDir string) string {
	name := "libgtest.a"
	if runtime.GOOS == "windows" {
		name = "gtest.lib"
	}
	return filepath.Join(libDir, "gtest", name)
}

// Available reports whether the static gtest archive has been built.
func Available(libDir string) bool {
	fi, err := os.Stat(StaticLib(libDir))
	return err == nil && !fi.IsDir()
}

// Inputs returns the program inputs: gtest_main.cc, the sources, then the
// static gtest archive.
func (p *Program) Inputs() []string {
	in := make([]string, 0, len(p.Sources)+2)
	in = append(in, MainSource(p.LibDir))
	in = append(in, p.Sources...)
	return append(in, StaticLib(p.LibDir))
}

// Command returns the compile-and-link command line for v.
func (p *Program) Command(v *toolchain.Env) []string {
	args := []string{v.Compiler(toolchain.CXX)}
	args = append(args, v.Flags(toolchain.CXX)...)
	args = append(args, "-I"+filepath.Join(p.LibDir, "gtest", "include"))
	args = append(args, "-o", p.Target)
	args = append(args, p.Inputs()...)
	if runtime.GOOS != "windows" {
		args = append(args, "-lpthread")
	}
	return args
}

// Build runs Command with v's variables exported to the compiler.
func (p *Program) Build(ctx context.Context, v *toolchain.Env, stdout, stderr io.Writer) error {
	if !Available(p.LibDir) {
		return fmt.Errorf("gtest: %s not found", StaticLib(p.LibDir))
	}
	if err := os.MkdirAll(filepath.Dir(p.Target), 0o755); err != nil {
		return err
	}
	args := p.Command(v)
	log.Debugf("gtest: %s", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = mergeEnv(os.Environ(), v.Vars())
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build %s: %w", p.Target, err)
	}
	return nil
}

func mergeEnv(base, override []string) []string {
	envMap := make(map[string]string, len(base))
	for _, kv := range base {
		if k, v, ok := strings.Cut(kv, "="); ok {
			envMap[k] = v
		}
	}
	for _, kv := range override {
		if k, v, ok := strings.Cut(kv, "="); ok {
			envMap[k] = v
		}
	}
	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+envMap[k])
	}
	return out
}
