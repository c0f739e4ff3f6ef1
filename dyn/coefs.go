// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"github.com/cpmech/gosl/chk"

	"github.com/subedinaresh/gosdof/inp"
)

// DynCoefs calculates coefficients for Newmark's time integration method.
// θ1 and θ2 correspond to the classical Newmark parameters via θ1 = γ and
// θ2 = 2β; the defaults θ1 = θ2 = 0.5 give the unconditionally stable
// average-acceleration (trapezoidal) variant.
//
// With u₀, v₀, a₀ fixed at the previous converged step, the new velocity and
// acceleration are affine functions of the new displacement u:
//  a = α1·u − ζ*   with  ζ* = α1·u₀ + α2·v₀ + α3·a₀
//  v = α4·u − χ*   with  χ* = α4·u₀ + α5·v₀ + α6·a₀
type DynCoefs struct {

	// input
	θ1, θ2, HHTα float64
	HHT          bool

	// derived
	α1, α2, α3, α4, α5, α6 float64
}

// Init initialises this structure
func (o *DynCoefs) Init(dat *inp.SolverData) (err error) {

	// hht
	o.HHT = dat.HHT

	// θ1
	o.θ1 = dat.Theta1
	if o.θ1 < 0.0001 || o.θ1 > 1.0 {
		return chk.Err("θ1 parameter must be between 0.0001 and 1.0. θ1=%g is incorrect", o.θ1)
	}

	// θ2
	o.θ2 = dat.Theta2
	if o.θ2 < 0.0001 || o.θ2 > 1.0 {
		return chk.Err("θ2 parameter must be between 0.0001 and 1.0. θ2=%g is incorrect", o.θ2)
	}

	// HHT α
	if o.HHT {
		o.HHTα = dat.HHTalp
		if o.HHTα < -1.0/3.0 || o.HHTα > 0.0 {
			return chk.Err("HHT α parameter must be between -1/3 and 0. α=%g is incorrect", o.HHTα)
		}
		o.θ1 = (1.0 - 2.0*o.HHTα) / 2.0
		o.θ2 = (1.0 - o.HHTα) * (1.0 - o.HHTα) / 2.0
	}
	return
}

// CalcBoth computes the coefficients for a given time increment
func (o *DynCoefs) CalcBoth(Δt float64) (err error) {
	if Δt < 1e-14 {
		return chk.Err("time increment is too small: Δt=%g", Δt)
	}
	h := Δt
	o.α1 = 2.0 / (o.θ2 * h * h)
	o.α2 = 2.0 / (o.θ2 * h)
	o.α3 = 1.0/o.θ2 - 1.0
	o.α4 = 2.0 * o.θ1 / (o.θ2 * h)
	o.α5 = 2.0*o.θ1/o.θ2 - 1.0
	o.α6 = (o.θ1/o.θ2 - 1.0) * h
	return
}
