// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/mdsim/genesis"
	"github.com/cpmech/mdsim/inp"
	"github.com/cpmech/mdsim/integrator"
	"github.com/cpmech/mdsim/montecarlo"
	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/potential"
	"github.com/cpmech/mdsim/universe"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	cfg, err := inp.ParseArgs()
	if err != nil {
		chk.Panic("%v", err)
	}

	io.PfWhite("\nmdsim -- a small molecular dynamics kernel\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")
	cfg.PrintTable()

	consts := phys.DefaultConstants()
	mode := phys.Analytical()
	if cfg.Numerical {
		mode = phys.Numeric(consts.FDStep)
	}

	rng := rand.New(rand.NewSource(1))

	u, err := genesis.Init(cfg, consts, rng)
	if err != nil {
		chk.Panic("genesis failed:\n%v", err)
	}
	defer u.Close()

	if cfg.RunMonteCarlo {
		io.Pf("\nrunning Monte-Carlo pre-minimization ...\n")
		montecarlo.Run(u, rng, consts)
	}

	io.PfGreen("\n>>> simulation start <<<\n")
	io.Pf("running %d copies for %g s at dt = %g s ...\n", cfg.Copies, cfg.MaxTime, cfg.Timestep)

	runLoop(u, cfg, consts, mode)

	io.PfGreen(">>> simulation end <<<\n")
	io.Pf("%d iterations, t = %g s\n", u.Iter, u.Time)
}

// runLoop is the write/integrate/advance loop of component I (spec.md
// section 4.I): a frame is emitted whenever iter mod (frameskip+1) == 0,
// evaluated before that iteration's integration step — the
// {0,5,10,15,20}-for-frameskip=4 convention documented as SPEC_FULL.md
// section 11's decision 6, matching universe_simulate's own frame_nb
// countdown in original_source/sources/universe.c.
func runLoop(u *universe.Universe, cfg inp.RunConfig, consts phys.Constants, mode phys.ForceMode) {
	for u.Time < cfg.MaxTime {
		if cfg.FrameSkip == 0 || u.Iter%(cfg.FrameSkip+1) == 0 {
			if err := u.WriteFrame(); err != nil {
				chk.Panic("%v", err)
			}
			if cfg.ReportEnergy {
				total := u.TotalEnergy(potential.TotalSystem(u, consts))
				io.Pf("iter=%d t=%g  E_total=%g J\n", u.Iter, u.Time, total)
			}
		}
		integrator.Step(u, cfg.Timestep, consts, mode)
		u.Time += cfg.Timestep
		u.Iter++
	}
}
