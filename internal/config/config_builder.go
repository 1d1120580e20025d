package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. mergo only fills zero fields, so
// configs added earlier take precedence.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) with(cfg *StructuredConfig) *configBuilder {
	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.with(envCfg)
}

func (b *configBuilder) withFlags() *configBuilder {
	flagsCfg, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.with(flagsCfg)
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			path = cfg.FilePath
			break
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.with(fileCfg)
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.with(defaults())
}
