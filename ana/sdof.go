// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/subedinaresh/gosdof/inp"
)

// LinSDOF implements closed-form solutions of the underdamped linear
// single-degree-of-freedom system
//  m·ü + c·u̇ + k·u = p(t)
// Piecewise-linear load histories are propagated segment-wise with the
// exact solution of each linear-in-time segment, hence the results carry
// no time-discretisation error.
type LinSDOF struct {

	// input
	m float64 // mass
	c float64 // viscous damping coefficient
	k float64 // stiffness

	// derived
	ωn float64 // natural frequency
	ξ  float64 // damping ratio
	ωd float64 // damped natural frequency
}

// Init initialises this structure
func (o *LinSDOF) Init(prms fun.Prms) (err error) {

	// default values
	o.m = 1.0
	o.c = 0.0
	o.k = 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "m":
			o.m = p.V
		case "c":
			o.c = p.V
		case "k":
			o.k = p.V
		}
	}

	// derived
	if o.m <= 0 || o.k <= 0 {
		return chk.Err("LinSDOF: m=%g and k=%g must be positive", o.m, o.k)
	}
	o.ωn = math.Sqrt(o.k / o.m)
	o.ξ = o.c / (2.0 * o.m * o.ωn)
	if o.ξ >= 1 {
		return chk.Err("LinSDOF: solution requires an underdamped system. ξ=%g is incorrect", o.ξ)
	}
	o.ωd = o.ωn * math.Sqrt(1.0-o.ξ*o.ξ)
	return
}

// FreeVib returns the free-vibration response for initial conditions u0, v0
func (o *LinSDOF) FreeVib(u0, v0, t float64) (u, v float64) {
	return o.Step(u0, v0, 0, 0, t)
}

// StepResp returns the displacement response to a suddenly applied constant
// force p0 with the system initially at rest
func (o *LinSDOF) StepResp(p0, t float64) (u float64) {
	u, _ = o.Step(0, 0, p0, 0, t)
	return
}

// Step advances the exact solution by τ over one load segment
//  Input:
//   u0, v0 -- state at the beginning of the segment
//   p0     -- load value at the beginning of the segment
//   slope  -- rate of change of the load within the segment
//   τ      -- elapsed time within the segment
func (o *LinSDOF) Step(u0, v0, p0, slope, τ float64) (u, v float64) {

	// particular solution (static response to the linear-in-time load)
	ust0 := p0/o.k - o.c*slope/(o.k*o.k)
	vst := slope / o.k

	// homogeneous part from the residual initial conditions
	A := u0 - ust0
	B := (v0 - vst + o.ξ*o.ωn*A) / o.ωd

	// response
	e := math.Exp(-o.ξ * o.ωn * τ)
	s, c := math.Sin(o.ωd*τ), math.Cos(o.ωd*τ)
	u = e*(A*c+B*s) + ust0 + vst*τ
	v = e*((B*o.ωd-A*o.ξ*o.ωn)*c-(A*o.ωd+B*o.ξ*o.ωn)*s) + vst
	return
}

// Solve computes the response under a tabulated load history by exact
// segment-wise propagation over a uniform grid with step dt. The result is
// exact whenever the grid does not straddle the control points of the table
// (e.g. when dt divides the table spacing evenly).
func (o *LinSDOF) Solve(lh *inp.LoadHistory, dt, tf float64) (T, U, V []float64) {
	n := int(math.Ceil(tf/dt)) + 1
	T = utl.LinSpace(0, tf, n)
	U = make([]float64, n)
	V = make([]float64, n)
	var u, v float64
	for i := 1; i < n; i++ {
		h := T[i] - T[i-1]
		p0 := lh.F(T[i-1], nil)
		slope := (lh.F(T[i], nil) - p0) / h
		u, v = o.Step(u, v, p0, slope, h)
		U[i] = u
		V[i] = v
	}
	return
}

// CompareDisp compares a computed displacement series against the
// analytical solution and returns the largest absolute difference
func (o *LinSDOF) CompareDisp(times, disp []float64, lh *inp.LoadHistory, tol float64, verbose bool) (maxdiff float64) {
	var u, v float64
	tprev := 0.0
	for i, t := range times {
		if t > tprev {
			p0 := lh.F(tprev, nil)
			slope := (lh.F(t, nil) - p0) / (t - tprev)
			u, v = o.Step(u, v, p0, slope, t-tprev)
		}
		diff := math.Abs(disp[i] - u)
		if verbose {
			chk.PrintAnaNum(io.Sf("u @ t=%23.15e", t), tol, u, disp[i], false)
		}
		if diff > maxdiff {
			maxdiff = diff
		}
		tprev = t
	}
	return
}
