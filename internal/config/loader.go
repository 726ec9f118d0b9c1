package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/qiniu/x/log"
	"gopkg.in/yaml.v3"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// osFS implements FileSystem using the real OS
type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: osFS{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads the first existing file of paths and merges it over the
// defaults. Returns the defaults if none exists.
// Returns error only for read errors other than not-exist, parse errors,
// unknown keys, or validation failures.
func (l *Loader) Load(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		data, err := l.fs.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debugf("config: %s not found", path)
				continue
			}
			return nil, err
		}
		log.Debugf("config: loading %s", path)
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		break
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode unmarshals YAML over cfg. Present keys overwrite defaults (even
// with zero values); missing keys leave them untouched.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Load is a convenience function using the default loader
func Load(paths ...string) (*Config, error) {
	return NewLoader().Load(paths...)
}
