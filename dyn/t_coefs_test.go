// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/subedinaresh/gosdof/inp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_coefs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coefs01. average acceleration variant")

	dat := inp.SolverData{Theta1: 0.5, Theta2: 0.5}
	var dc DynCoefs
	err := dc.Init(&dat)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	Δt := 0.1
	err = dc.CalcBoth(Δt)
	if err != nil {
		tst.Errorf("CalcBoth failed:\n%v", err)
		return
	}

	// average acceleration: β=0.25, γ=0.5
	chk.Scalar(tst, "α1", 1e-13, dc.α1, 4.0/(Δt*Δt))
	chk.Scalar(tst, "α2", 1e-13, dc.α2, 4.0/Δt)
	chk.Scalar(tst, "α3", 1e-15, dc.α3, 1.0)
	chk.Scalar(tst, "α4", 1e-13, dc.α4, 2.0/Δt)
	chk.Scalar(tst, "α5", 1e-15, dc.α5, 1.0)
	chk.Scalar(tst, "α6", 1e-15, dc.α6, 0.0)
}

func Test_coefs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coefs02. parameter ranges")

	var dc DynCoefs
	if dc.Init(&inp.SolverData{Theta1: 0, Theta2: 0.5}) == nil {
		tst.Errorf("θ1 out of range was not detected\n")
		return
	}
	if dc.Init(&inp.SolverData{Theta1: 0.5, Theta2: 2}) == nil {
		tst.Errorf("θ2 out of range was not detected\n")
		return
	}
	if dc.Init(&inp.SolverData{Theta1: 0.5, Theta2: 0.5, HHT: true, HHTalp: 0.5}) == nil {
		tst.Errorf("HHT α out of range was not detected\n")
		return
	}
	if dc.CalcBoth(0) == nil {
		tst.Errorf("too small Δt was not detected\n")
		return
	}
}
