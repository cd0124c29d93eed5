// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error loading config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for i, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging config source %d: %w", i, err)
		}
	}
	merged.applyDefaults()

	return merged, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("env: %w", err))
		return b
	}
	b.configs = append(b.configs, envCfg)

	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	// the last source naming a file decides which one is read
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	jsonCfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("json file %s: %w", path, err))
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
