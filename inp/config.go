// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// RunConfig is the argument-parser's output record (spec.md section 6):
// input path, trajectory output path, copy count, thermodynamic targets,
// integration timestep and horizon, frame-skip stride, and force-evaluation
// mode flag.
type RunConfig struct {
	Path          string
	OutPath       string
	Copies        int
	Temperature   float64
	Pressure      float64
	Timestep      float64
	MaxTime       float64
	FrameSkip     int
	Numerical     bool // true selects the central-difference force evaluator
	RunMonteCarlo bool // supplemental: run the Monte-Carlo pre-stage before integrating
	ReportEnergy  bool // supplemental: print total energy alongside each written frame
}

// ParseArgs resolves a RunConfig from positional command-line arguments,
// in the same io.ArgTo*-with-defaults idiom main.go uses for gofem's own
// CLI: argument 0 is the input path, 1 the output path, and so on.
func ParseArgs() (cfg RunConfig, err error) {
	path, ferr := io.ArgToFilename(0, "", "", true)
	if ferr != nil {
		return cfg, chk.Err("IOOpenError: %v", ferr)
	}
	cfg.Path = path
	cfg.OutPath = io.ArgToString(1, "out.xyz")
	cfg.Copies = io.ArgToInt(2, 1)
	cfg.Temperature = io.ArgToFloat(3, 300.0)
	cfg.Pressure = io.ArgToFloat(4, 1.0e5)
	cfg.Timestep = io.ArgToFloat(5, 1.0e-15)
	cfg.MaxTime = io.ArgToFloat(6, 1.0e-12)
	cfg.FrameSkip = io.ArgToInt(7, 0)
	cfg.Numerical = io.ArgToBool(8, false)
	cfg.RunMonteCarlo = io.ArgToBool(9, false)
	cfg.ReportEnergy = io.ArgToBool(10, false)

	if cfg.Copies < 1 {
		return cfg, chk.Err("ParseError: copies must be >= 1, got %d", cfg.Copies)
	}
	if cfg.Temperature <= 0 {
		return cfg, chk.Err("ParseError: temperature must be > 0, got %g", cfg.Temperature)
	}
	if cfg.Pressure <= 0 {
		return cfg, chk.Err("ParseError: pressure must be > 0, got %g", cfg.Pressure)
	}
	if cfg.Timestep <= 0 {
		return cfg, chk.Err("ParseError: timestep must be > 0, got %g", cfg.Timestep)
	}
	if cfg.MaxTime <= 0 {
		return cfg, chk.Err("ParseError: max_time must be > 0, got %g", cfg.MaxTime)
	}
	if cfg.FrameSkip < 0 {
		return cfg, chk.Err("ParseError: frameskip must be >= 0, got %d", cfg.FrameSkip)
	}
	return cfg, nil
}

// PrintTable echoes the resolved configuration, in main.go's own
// io.ArgsTable banner style.
func (cfg RunConfig) PrintTable() {
	io.Pf("\n%v\n", io.ArgsTable(
		"input molecule path", "path", cfg.Path,
		"trajectory output path", "out_path", cfg.OutPath,
		"copies", "copies", cfg.Copies,
		"temperature (K)", "temperature", cfg.Temperature,
		"pressure (Pa)", "pressure", cfg.Pressure,
		"timestep (s)", "timestep", cfg.Timestep,
		"max_time (s)", "max_time", cfg.MaxTime,
		"frameskip", "frameskip", cfg.FrameSkip,
		"numerical force mode", "numerical", cfg.Numerical,
		"run Monte-Carlo pre-stage", "montecarlo", cfg.RunMonteCarlo,
		"report total energy per frame", "report_energy", cfg.ReportEnergy,
	))
}
