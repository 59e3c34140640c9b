// Copyright (c) 2024 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/aristanetworks/verset/hashmap"
)

// config is wordfreq's YAML-file-backed tuning surface.
type config struct {
	// MaxLoad overrides hashmap.DefaultMaxLoad for the word-count table.
	MaxLoad float64 `yaml:"max-load"`

	// InitialCapacity is passed to Table.Reserve before any word is
	// counted, to avoid early rehashes when the input size is known
	// ahead of time.
	InitialCapacity int `yaml:"initial-capacity"`

	// MetricsAddr, if non-empty, is the address the monitor HTTP server
	// (exposing /debug, /debug/loglevel and /metrics) listens on.
	MetricsAddr string `yaml:"metrics-addr"`

	// Top is how many of the most frequent words to print.
	Top int `yaml:"top"`
}

func defaultConfig() config {
	return config{
		MaxLoad:         hashmap.DefaultMaxLoad,
		InitialCapacity: 0,
		MetricsAddr:     "",
		Top:             20,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
