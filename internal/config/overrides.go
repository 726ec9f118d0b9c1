package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Apply applies dotted key=value overrides (for example
// "toolchain.cc=gcc,clang" or "dirs.build=out") on top of c.
// List values are comma separated. Unknown keys are rejected.
func (c *Config) Apply(sets map[string]string) error {
	if len(sets) == 0 {
		return nil
	}
	tree := make(map[string]any)
	for key, val := range sets {
		if err := insert(tree, strings.Split(key, "."), val); err != nil {
			return fmt.Errorf("override %s: %w", key, err)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		TagName:          "yaml",
		ErrorUnused:      true,
		ZeroFields:       true,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(tree); err != nil {
		return fmt.Errorf("apply overrides: %w", err)
	}
	return c.Validate()
}

func insert(tree map[string]any, path []string, val string) error {
	key := path[0]
	if key == "" {
		return fmt.Errorf("empty key segment")
	}
	if len(path) == 1 {
		if _, ok := tree[key].(map[string]any); ok {
			return fmt.Errorf("%s is a section", key)
		}
		tree[key] = val
		return nil
	}
	sub, ok := tree[key].(map[string]any)
	if !ok {
		if _, isLeaf := tree[key]; isLeaf {
			return fmt.Errorf("%s is not a section", key)
		}
		sub = make(map[string]any)
		tree[key] = sub
	}
	return insert(sub, path[1:], val)
}
