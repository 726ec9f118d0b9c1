package internal

import (
	"context"
	"fmt"
	"os"

	"github.com/qiniu/x/log"

	"github.com/goplus/ccenv/internal/config"
	"github.com/goplus/ccenv/internal/env"
	"github.com/goplus/ccenv/internal/toolchain"
	"github.com/goplus/ccenv/pkgs/which"
)

// getenv is replaced in tests.
var getenv = os.Getenv

// loadConfig reads the configuration selected by --config and applies --set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(env.ConfigPaths(configPath, ".")...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Apply(configSets); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newResolver returns a resolver over the current PATH using the configured
// executable convention.
func newResolver(cfg *config.Config) (*which.Resolver, error) {
	conv, err := which.ParseConvention(cfg.Toolchain.Convention)
	if err != nil {
		return nil, err
	}
	return which.New(which.FromEnv(getenv, conv)), nil
}

// buildEnv is the fully configured environment of one invocation.
type buildEnv struct {
	cfg       *config.Config
	toolchain *toolchain.Toolchain
	base      *toolchain.Env
	variants  []*toolchain.Env
}

// setup selects the toolchain and derives the variants for --modes.
// Compilers are probed for their version when probe is set or a minimum
// version is configured for their brand.
func setup(ctx context.Context, probe bool) (*buildEnv, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	r, err := newResolver(cfg)
	if err != nil {
		return nil, err
	}
	tc, err := toolchain.Select(r, getenv, cfg.Toolchain)
	if err != nil {
		return nil, err
	}
	for _, c := range []*toolchain.Compiler{&tc.CC, &tc.CXX} {
		minVer := toolchain.MinVersionFor(*c, cfg.Toolchain.MinVersion)
		if !probe && minVer == "" {
			continue
		}
		if err := toolchain.Probe(ctx, c); err != nil {
			if minVer != "" {
				return nil, err
			}
			log.Warnf("%v", err)
			continue
		}
		if err := toolchain.CheckVersion(*c, minVer); err != nil {
			return nil, err
		}
	}
	base := toolchain.Base(tc, cfg.Flags)
	return &buildEnv{
		cfg:       cfg,
		toolchain: tc,
		base:      base,
		variants:  toolchain.Variants(base, modes, cfg.Modes),
	}, nil
}
