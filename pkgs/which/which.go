// Copyright 2024 The ccenv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package which locates executables the way a shell does: path-qualified
// names are checked directly, bare names are searched for along PATH.
package which

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Convention names how a platform marks files as runnable programs.
type Convention int

const (
	// Plain platforms rely on permission bits; only the bare name is tried.
	Plain Convention = iota
	// PathExt platforms require a suffix listed in PATHEXT (Windows).
	PathExt
)

// DefaultConvention returns the convention of the running platform.
func DefaultConvention() Convention {
	if runtime.GOOS == "windows" {
		return PathExt
	}
	return Plain
}

// ParseConvention parses "auto", "plain" or "pathext".
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DefaultConvention(), nil
	case "plain":
		return Plain, nil
	case "pathext":
		return PathExt, nil
	}
	return Plain, fmt.Errorf("unknown executable convention: %q", s)
}

func (c Convention) String() string {
	if c == PathExt {
		return "pathext"
	}
	return "plain"
}

// SearchPath is the input of a bare-name search: directories in priority
// order and the suffixes tried in each, the empty suffix first.
type SearchPath struct {
	Dirs []string
	Exts []string
}

// FromEnv builds a SearchPath from PATH and, under PathExt, PATHEXT.
// A nil getenv means os.Getenv.
func FromEnv(getenv func(string) string, conv Convention) SearchPath {
	if getenv == nil {
		getenv = os.Getenv
	}
	sp := SearchPath{Exts: []string{""}}
	if path := getenv("PATH"); path != "" {
		sp.Dirs = strings.Split(path, string(os.PathListSeparator))
	}
	if conv == PathExt {
		for _, ext := range strings.Split(getenv("PATHEXT"), string(os.PathListSeparator)) {
			if ext != "" {
				sp.Exts = append(sp.Exts, ext)
			}
		}
	}
	return sp
}

// Resolver resolves program names against a fixed SearchPath.
type Resolver struct {
	Path SearchPath

	// IsExecutable reports whether path names a runnable file.
	// Defaults to the check of the host OS.
	IsExecutable func(path string) bool
}

// New returns a Resolver for sp using the host executable check.
func New(sp SearchPath) *Resolver {
	return &Resolver{Path: sp, IsExecutable: isExecutable}
}

// NewFromEnv returns a Resolver for the current process environment.
func NewFromEnv(conv Convention) *Resolver {
	return New(FromEnv(os.Getenv, conv))
}

// Resolve returns the executable that spec names, if any.
//
// A spec containing a directory separator is returned unchanged when it
// names an executable; it is never searched for. A bare name is looked up in
// every directory in order, trying each extension in order, and the first
// executable candidate wins.
func (r *Resolver) Resolve(spec string) (string, bool) {
	check := r.IsExecutable
	if check == nil {
		check = isExecutable
	}
	if spec == "" {
		return "", false
	}
	if hasDir(spec) {
		if check(spec) {
			return spec, true
		}
		return "", false
	}
	exts := r.Path.Exts
	if len(exts) == 0 {
		exts = []string{""}
	}
	for _, dir := range r.Path.Dirs {
		exe := filepath.Join(dir, spec)
		for _, ext := range exts {
			if candidate := exe + ext; check(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// First returns the resolved path of the first candidate that resolves.
func (r *Resolver) First(candidates []string) (string, bool) {
	for _, c := range candidates {
		if path, ok := r.Resolve(c); ok {
			return path, true
		}
	}
	return "", false
}

// Resolve resolves spec against the current process environment.
func Resolve(spec string) (string, bool) {
	return NewFromEnv(DefaultConvention()).Resolve(spec)
}

// First returns the first of candidates that resolves against the current
// process environment.
func First(candidates ...string) (string, bool) {
	return NewFromEnv(DefaultConvention()).First(candidates)
}

func hasDir(spec string) bool {
	for i := 0; i < len(spec); i++ {
		if os.IsPathSeparator(spec[i]) || spec[i] == '/' {
			return true
		}
	}
	return false
}
