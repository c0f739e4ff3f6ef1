// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dyn solves the transient response of nonlinear single-degree-of-
// freedom structural systems using Newmark's time integration method and
// Newton-Raphson equilibrium iterations
package dyn

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/subedinaresh/gosdof/inp"
)

// Solver implements the actual solver (time loop)
type Solver interface {
	Run(tf float64, dtFunc, dtoFunc fun.Func, verbose bool) (err error)
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(dom *Domain, dc *DynCoefs) Solver)

// Analysis holds all data for the dynamic analysis of one simulation. Each
// material case runs on its own freshly-built Domain.
type Analysis struct {
	Sim     *inp.Simulation // simulation data
	DynCfs  *DynCoefs       // coefficients for dynamics
	Summary *Summary        // results of all cases
	Verbose bool            // show messages
}

// NewAnalysis returns a new Analysis structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
func NewAnalysis(simfilepath string, verbose bool) (o *Analysis, err error) {

	// new Analysis object
	o = new(Analysis)
	o.Verbose = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath)
	if err != nil {
		return nil, err
	}

	// auxiliary structures
	o.DynCfs = new(DynCoefs)
	err = o.DynCfs.Init(&o.Sim.Solver)
	if err != nil {
		return nil, err
	}

	// summary
	o.Summary = &Summary{Key: o.Sim.Key}
	return
}

// Run runs all material cases, one fresh Domain each. The first failing
// case aborts the loop and its error is returned; the results recorded up
// to the failure, including complete earlier cases, remain in Summary.
func (o *Analysis) Run() (err error) {
	cputime := time.Now()
	for _, mdat := range o.Sim.Materials {
		err = o.RunCase(mdat.Name)
		if err != nil {
			return
		}
	}
	if o.Verbose {
		io.Pf("\n\nfinal time = %v\n", o.Sim.Control.Tf)
		io.Pflmag("cpu time   = %v\n", time.Now().Sub(cputime))
	}
	return
}

// RunCase runs the analysis of one material case
func (o *Analysis) RunCase(matname string) (err error) {

	// material data
	mdat := o.Sim.GetMaterial(matname)
	if mdat == nil {
		return chk.Err("cannot find material named %q", matname)
	}

	// message
	if o.Verbose {
		io.Pfyel("\nrunning case %q (model=%q)\n", mdat.Name, mdat.Model)
	}

	// fresh domain for this case
	dom, err := NewDomain(o.Sim, mdat, o.DynCfs)
	if err != nil {
		return
	}
	err = dom.SetIniVals()
	if err != nil {
		return
	}

	// allocate solver
	alloc, ok := solverallocators[o.Sim.Solver.Type]
	if !ok {
		return chk.Err("cannot find solver type=%q. e.g. {imp} => implicit", o.Sim.Solver.Type)
	}
	solver := alloc(dom, o.DynCfs)

	// time loop; results are kept in Summary even on failure
	err = solver.Run(o.Sim.Control.Tf, o.Sim.Control.DtFunc, o.Sim.Control.DtoFunc, o.Verbose)
	o.Summary.OutTimes = dom.Rec.Times
	o.Summary.Cases = append(o.Summary.Cases, dom.Rec)
	return
}
