// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// ConvergenceError indicates that the equilibrium iterations failed to
// converge within the iteration budget at some time step. The run is
// aborted at that step; everything recorded before it remains available.
type ConvergenceError struct {
	Step  int     // index of the failing time step
	T     float64 // time of the failing step
	It    int     // number of iterations performed
	Resid float64 // last out-of-balance force
}

// Error returns the error message
func (e *ConvergenceError) Error() string {
	return io.Sf("equilibrium iterations did not converge @ step %d (t=%g): it=%d, residual=%g", e.Step, e.T, e.It, e.Resid)
}

// SolverImplicit solves the dynamic problem using an implicit procedure
// (with Newton-Raphson method)
type SolverImplicit struct {
	dom *Domain
	dc  *DynCoefs
}

// set factory
func init() {
	solverallocators["imp"] = func(dom *Domain, dc *DynCoefs) Solver {
		solver := new(SolverImplicit)
		solver.dom = dom
		solver.dc = dc
		return solver
	}
}

// Run solves the problem from t=0 to tf. A *ConvergenceError from any step
// is returned unmodified; results recorded before the failing step are kept.
func (o *SolverImplicit) Run(tf float64, dtFunc, dtoFunc fun.Func, verbose bool) (err error) {

	// time control
	d := o.dom
	t := d.Sol.T
	tout := t + dtoFunc.F(t, nil)

	// first output
	d.Out()

	// time loop
	var Δt float64
	var step int
	var lasttimestep bool
	for t < tf {

		// time increment
		Δt = dtFunc.F(t, nil)
		if t+Δt >= tf {
			Δt = tf - t
			lasttimestep = true
		}
		if Δt < d.Sim.Solver.DtMin {
			break
		}

		// dynamic coefficients
		err = o.dc.CalcBoth(Δt)
		if err != nil {
			return
		}

		// time update
		t += Δt
		step += 1
		d.Sol.T = t

		// message
		if verbose && !d.Sim.Solver.ShowR {
			io.PfWhite("%30.15f\r", t)
		}

		// run iterations
		err = o.run_iterations(t, Δt, step)
		if err != nil {
			return
		}

		// perform output
		if t >= tout || lasttimestep {
			d.Out()
			tout += dtoFunc.F(t, nil)
		}
	}

	// success
	return
}

// run_iterations solves the nonlinear problem of one time step
func (o *SolverImplicit) run_iterations(t, Δt float64, step int) (err error) {

	// auxiliary
	d := o.dom
	dc := o.dc

	// zero accumulated increments and compute starred variables
	d.Sol.ΔU = 0
	err = d.star_vars(Δt)
	if err != nil {
		return
	}

	// auxiliary variables
	var it int
	var fb, Kb, D, δu float64

	// message
	if d.Sim.Solver.ShowR {
		io.Pf("\n%13s%4s%23s\n", "t", "it", "fb")
	}

	// iterations
	converged := false
	for it = 0; it < d.Sim.Solver.NmaxIt; it++ {

		// out-of-balance force; i.e. negative of the residual
		fb = d.Load.F(t, nil) - d.M*(dc.α1*d.Sol.U-d.Sol.Zet) - d.C*(dc.α4*d.Sol.U-d.Sol.Chi) - d.Sta.Sig

		// message
		if d.Sim.Solver.ShowR {
			io.Pf("%13.6e%4d%23.15e\n", t, it, fb)
		}

		// check convergence
		if math.Abs(fb) < d.Sim.Solver.FbTol {
			converged = true
			break
		}

		// tangent operator
		D, err = d.Mdl.CalcD(d.Sta, it == 0)
		if err != nil {
			return
		}

		// effective dynamic stiffness
		Kb = dc.α1*d.M + dc.α4*d.C + D

		// solve for δu
		δu = fb / Kb

		// update primary variables
		d.Sol.U += δu
		d.Sol.ΔU += δu
		d.Sol.V = dc.α4*d.Sol.U - d.Sol.Chi
		d.Sol.A = dc.α1*d.Sol.U - d.Sol.Zet

		// backup / restore
		if it == 0 {
			// create backup copy of internal variables
			d.backup()
		} else {
			// recover last converged state from backup copy
			d.restore()
		}

		// update secondary variables
		err = d.Mdl.Update(d.Sta, d.Sol.U, d.Sol.ΔU)
		if err != nil {
			return
		}
	}

	// check if iterations diverged; the reported residual accounts for the
	// last correction, which fb (computed at the top of the loop) does not
	if !converged {
		fb = d.Load.F(t, nil) - d.M*(dc.α1*d.Sol.U-d.Sol.Zet) - d.C*(dc.α4*d.Sol.U-d.Sol.Chi) - d.Sta.Sig
		return &ConvergenceError{Step: step, T: t, It: it, Resid: fb}
	}

	// make velocity and acceleration consistent with the converged
	// displacement, also when no correction was needed
	d.Sol.V = dc.α4*d.Sol.U - d.Sol.Chi
	d.Sol.A = dc.α1*d.Sol.U - d.Sol.Zet
	return
}
