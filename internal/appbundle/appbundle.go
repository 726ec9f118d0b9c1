// Package appbundle lays out the directory skeleton of a macOS application
// bundle. Copying the binary and resources into it, and signing, are left
// to the caller.
package appbundle

import (
	"os"
	"path/filepath"
	"strings"
)

// Suffix is the extension of a bundle directory.
const Suffix = ".app"

// Bundle holds the directories of an application bundle.
type Bundle struct {
	Root      string // Foo.app
	Contents  string // Foo.app/Contents
	MacOS     string // Foo.app/Contents/MacOS
	Resources string // Foo.app/Contents/Resources
}

// LayoutOf returns the layout of bundle name under dir, adding Suffix to
// name when missing.
func LayoutOf(dir, name string) *Bundle {
	if !strings.HasSuffix(name, Suffix) {
		name += Suffix
	}
	root := filepath.Join(dir, name)
	contents := filepath.Join(root, "Contents")
	return &Bundle{
		Root:      root,
		Contents:  contents,
		MacOS:     filepath.Join(contents, "MacOS"),
		Resources: filepath.Join(contents, "Resources"),
	}
}

// Executable returns where the bundle's binary named bin belongs.
func (b *Bundle) Executable(bin string) string {
	return filepath.Join(b.MacOS, filepath.Base(bin))
}

// InfoPlist returns the path of the bundle's Info.plist.
func (b *Bundle) InfoPlist() string {
	return filepath.Join(b.Contents, "Info.plist")
}

// Create makes the bundle directories. It is a no-op for those that exist.
func (b *Bundle) Create() error {
	for _, dir := range []string{b.MacOS, b.Resources} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
