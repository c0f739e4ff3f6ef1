// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/subedinaresh/gosdof/dyn"
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
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveSummary := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nGosdof -- Nonlinear SDOF Structural Dynamics\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save summary", "saveSummary", saveSummary,
		))
	}

	// analysis data
	analysis, err := dyn.NewAnalysis(fnamepath, verbose)
	if err != nil {
		chk.Panic("cannot allocate analysis:\n%v", err)
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// save summary
	if saveSummary {
		err = analysis.Summary.Save(analysis.Sim.Data.DirOut, analysis.Sim.Key)
		if err != nil {
			chk.Panic("cannot save summary:\n%v", err)
		}
	}
}
