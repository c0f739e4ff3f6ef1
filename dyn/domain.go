// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/subedinaresh/gosdof/inp"
	"github.com/subedinaresh/gosdof/mat"
)

// Solution holds the dynamic state of the single degree of freedom
type Solution struct {

	// current state
	T float64 // current time
	U float64 // displacement
	V float64 // du/dt
	A float64 // d²u/dt²

	// auxiliary
	ΔU  float64 // total increment (for nonlinear solver)
	Zet float64 // t2 star var: ζ* = α1.u + α2.v + α3.a
	Chi float64 // t2 star var: χ* = α4.u + α5.v + α6.a

	// constants
	DynCfs *DynCoefs // [from Analysis] coefficients for dynamics
}

// Reset clears values
func (o *Solution) Reset() {
	o.T = 0
	o.U, o.V, o.A = 0, 0, 0
	o.ΔU = 0
	o.Zet, o.Chi = 0, 0
}

// Domain holds the exclusively-owned context of one analysis run: one
// material model with its internal state, the dynamic solution and the
// recorded response. A fresh Domain is built per run; there is no shared
// mutable state between runs.
type Domain struct {

	// init: auxiliary variables
	Sim *inp.Simulation // [from Analysis] input data

	// system
	M    float64  // mass
	C    float64  // viscous damping coefficient
	Load fun.Func // external load function p(t)

	// material
	MatName string     // material/case name
	Mdl     mat.Model  // constitutive model
	Sta     *mat.State // internal state
	bkpSta  *mat.State // backup of internal state for equilibrium iterations

	// solution and results
	Sol *Solution // current dynamic state
	Rec *Results  // recorded response
}

// NewDomain returns a new domain for one material case
func NewDomain(sim *inp.Simulation, mdat *inp.MatData, dc *DynCoefs) (o *Domain, err error) {

	// essential
	o = new(Domain)
	o.Sim = sim
	o.M = sim.System.M
	o.C = sim.System.C
	o.Load = sim.Load.Hist

	// material model
	o.MatName = mdat.Name
	o.Mdl, err = mat.New(mdat.Model)
	if err != nil {
		return nil, chk.Err("cannot allocate model for material %q:\n%v", mdat.Name, err)
	}
	// model parameter errors keep their type so that callers can tell bad
	// input apart from solver failures
	err = o.Mdl.Init(mdat.Prms)
	if err != nil {
		return nil, err
	}

	// solution and results
	o.Sol = &Solution{DynCfs: dc}
	nsteps := int(sim.Control.Tf/sim.Control.Dt) + 2
	o.Rec = NewResults(o.MatName, nsteps)
	return
}

// SetIniVals resets the dynamic state and internal variables, and seeds the
// initial acceleration from dynamic equilibrium at t = 0:
//  a₀ = (p(0) − c·v₀ − f_int(u₀)) / m
func (o *Domain) SetIniVals() (err error) {
	o.Sol.Reset()
	o.Sta, err = o.Mdl.InitIntVars()
	if err != nil {
		return chk.Err("cannot initialise internal variables of material %q:\n%v", o.MatName, err)
	}
	o.bkpSta = o.Sta.GetCopy()
	o.Sol.A = (o.Load.F(0, nil) - o.C*o.Sol.V - o.Sta.Sig) / o.M
	return
}

// star_vars computes starred variables for the current time increment
func (o *Domain) star_vars(Δt float64) (err error) {
	dc := o.Sol.DynCfs
	o.Sol.Zet = dc.α1*o.Sol.U + dc.α2*o.Sol.V + dc.α3*o.Sol.A
	o.Sol.Chi = dc.α4*o.Sol.U + dc.α5*o.Sol.V + dc.α6*o.Sol.A
	return
}

// backup saves a copy of the internal variables
func (o *Domain) backup() {
	o.bkpSta.Set(o.Sta)
}

// restore recovers the last converged internal variables from backup
func (o *Domain) restore() {
	o.Sta.Set(o.bkpSta)
}

// Out records the current state in the response series
func (o *Domain) Out() {
	o.Rec.Append(o.Sol.T, o.Sol.U, o.Sol.V, o.Sol.A)
}
