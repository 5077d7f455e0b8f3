// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A PlotConfig is the YAML plot description accepted by `vcd plot --config`:
//
//	signals: [clk, m_data, m_valid, m_ready]
//	max_time: 100000
//	columns: 100
//
type PlotConfig struct {
	Signals []string `yaml:"signals"`
	MaxTime uint64   `yaml:"max_time"`
	Columns int      `yaml:"columns"`
}

func loadPlotConfig(path string) (*PlotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read plot config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg PlotConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return &cfg, nil
}
