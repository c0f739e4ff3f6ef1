// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
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

// newmdl allocates and initialises a model for testing
func newmdl(tst *testing.T, name string, prms fun.Prms) (Model, *State) {
	mdl, err := New(name)
	if err != nil {
		tst.Fatalf("cannot allocate %q: %v", name, err)
	}
	err = mdl.Init(prms)
	if err != nil {
		tst.Fatalf("cannot initialise %q: %v", name, err)
	}
	s, err := mdl.InitIntVars()
	if err != nil {
		tst.Fatalf("cannot initialise internal variables of %q: %v", name, err)
	}
	return mdl, s
}

func Test_prms01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms01. non-positive parameters rejected at setup")

	checkInvalid := func(msg string, name string, prms fun.Prms) {
		mdl, err := New(name)
		if err != nil {
			tst.Fatalf("cannot allocate %q: %v", name, err)
		}
		err = mdl.Init(prms)
		if err == nil {
			tst.Errorf("%s: error was not detected\n", msg)
			return
		}
		if _, ok := err.(*inp.InvalidInputError); !ok {
			tst.Errorf("%s: error has wrong type: %v\n", msg, err)
			return
		}
		io.Pfgrey("%s: %v\n", msg, err)
	}

	checkInvalid("k=0", "lin-elast", []*fun.Prm{&fun.Prm{N: "k", V: 0}})
	checkInvalid("k<0", "lin-elast", []*fun.Prm{&fun.Prm{N: "k", V: -5}})
	checkInvalid("epp k=0", "epp", []*fun.Prm{&fun.Prm{N: "k", V: 0}, &fun.Prm{N: "dy", V: 1.2}})
	checkInvalid("dy=0", "epp", []*fun.Prm{&fun.Prm{N: "k", V: 5}, &fun.Prm{N: "dy", V: 0}})
}

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01")

	mdl, s := newmdl(tst, "lin-elast", []*fun.Prm{
		&fun.Prm{N: "k", V: 5.0},
	})

	for _, u := range []float64{0, 0.5, -1.3, 2.0, 0} {
		err := mdl.Update(s, u, 0)
		if err != nil {
			tst.Errorf("Update failed: %v", err)
			return
		}
		chk.Scalar(tst, io.Sf("f(%g)", u), 1e-15, s.Sig, 5.0*u)
		D, _ := mdl.CalcD(s, false)
		chk.Scalar(tst, "D", 1e-17, D, 5.0)
	}

	// no internal variables
	chk.IntAssert(len(s.Alp), 0)
}

func Test_epp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("epp01. yield surface and consistent tangent")

	k, dy := 5.0, 1.2
	σy := k * dy
	mdl, s := newmdl(tst, "epp", []*fun.Prm{
		&fun.Prm{N: "k", V: k},
		&fun.Prm{N: "dy", V: dy},
	})

	// elastic within the yield surface
	mdl.Update(s, 0.5, 0.5)
	chk.Scalar(tst, "f(0.5)", 1e-15, s.Sig, 2.5)
	D, _ := mdl.CalcD(s, false)
	chk.Scalar(tst, "D elastic", 1e-17, D, k)

	// exactly at the yield surface: still elastic
	mdl.Update(s, dy, dy-0.5)
	chk.Scalar(tst, "f(dy)", 1e-15, s.Sig, σy)
	D, _ = mdl.CalcD(s, false)
	chk.Scalar(tst, "D at surface", 1e-17, D, k)

	// plastic plateau
	mdl.Update(s, 2*dy, dy)
	chk.Scalar(tst, "f(2dy)", 1e-15, s.Sig, σy)
	chk.Scalar(tst, "dp", 1e-15, s.Alp[0], dy)
	D, _ = mdl.CalcD(s, false)
	chk.Scalar(tst, "D plastic", 1e-17, D, 0.0)

	// the committed force never exceeds the yield force
	for _, u := range []float64{-10, -2.4, -1, 0, 3, 7.7, 100} {
		mdl.Update(s, u, 0)
		if math.Abs(s.Sig) > σy+1e-14 {
			tst.Errorf("yield force exceeded: |f(%g)|=%g > %g\n", u, math.Abs(s.Sig), σy)
			return
		}
	}
}

func Test_epp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("epp02. hysteresis and path dependence")

	k, dy := 5.0, 1.2
	prms := []*fun.Prm{
		&fun.Prm{N: "k", V: k},
		&fun.Prm{N: "dy", V: dy},
	}
	mdl, s := newmdl(tst, "epp", prms)

	// displacement cycle 0 → 2·dy → 0 leaves a permanent offset
	mdl.Update(s, 0, 0)
	chk.Scalar(tst, "f(0)", 1e-17, s.Sig, 0.0)
	mdl.Update(s, 2*dy, 2*dy)
	chk.Scalar(tst, "f(2dy)", 1e-15, s.Sig, k*dy)
	mdl.Update(s, 0, -2*dy)
	chk.Scalar(tst, "f(0) after cycle", 1e-15, s.Sig, -k*dy)
	if s.Alp[0] <= 0 {
		tst.Errorf("plastic offset must be positive after the cycle. dp=%g is incorrect\n", s.Alp[0])
		return
	}
	chk.Scalar(tst, "dp after cycle", 1e-15, s.Alp[0], dy)

	// the elastic model has no offset to accumulate
	emdl, es := newmdl(tst, "lin-elast", []*fun.Prm{&fun.Prm{N: "k", V: k}})
	emdl.Update(es, 2*dy, 2*dy)
	emdl.Update(es, 0, -2*dy)
	chk.Scalar(tst, "elastic f(0) after cycle", 1e-17, es.Sig, 0.0)
	chk.IntAssert(len(es.Alp), 0)
}

func Test_epp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("epp03. determinism and state copies")

	prms := []*fun.Prm{
		&fun.Prm{N: "k", V: 5.0},
		&fun.Prm{N: "dy", V: 1.2},
	}
	path := []float64{0, 0.5, 1.5, 2.8, -1.0, 0.3, -3.3, 0}

	// reapplying the same displacement history from reset reproduces
	// identical forces at every step
	runpath := func() (res []float64) {
		mdl, s := newmdl(tst, "epp", prms)
		for _, u := range path {
			mdl.Update(s, u, 0)
			res = append(res, s.Sig)
		}
		return
	}
	chk.Vector(tst, "replayed forces", 1e-17, runpath(), runpath())

	// backup / restore round trip
	mdl, s := newmdl(tst, "epp", prms)
	mdl.Update(s, 2.8, 2.8)
	bkp := s.GetCopy()
	mdl.Update(s, -3.0, -5.8)
	s.Set(bkp)
	chk.Scalar(tst, "restored f", 1e-17, s.Sig, bkp.Sig)
	chk.Scalar(tst, "restored dp", 1e-17, s.Alp[0], bkp.Alp[0])
	if s.Loading != bkp.Loading {
		tst.Errorf("restored Loading flag is incorrect\n")
	}
}
