// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/subedinaresh/gosdof/dyn"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. summary round trip and curve selection")

	// build and save a summary
	sum := &dyn.Summary{Key: "out01"}
	res := dyn.NewResults("elastic", 4)
	res.Append(0.0, 0.0, 0.0, 1.0)
	res.Append(0.1, 0.3, 0.5, 0.8)
	res.Append(0.2, 0.8, 0.2, -0.3)
	sum.Cases = append(sum.Cases, res)
	err := sum.Save("/tmp/gosdof", "out01")
	if err != nil {
		tst.Errorf("cannot save summary:\n%v", err)
		return
	}

	// read back
	plo, err := LoadResults("/tmp/gosdof", "out01")
	if err != nil {
		tst.Errorf("cannot load results:\n%v", err)
		return
	}
	back := plo.Sum.GetCase("elastic")
	if back == nil {
		tst.Errorf("case %q is missing after round trip\n", "elastic")
		return
	}
	chk.Vector(tst, "times", 1e-17, back.Times, res.Times)
	chk.Vector(tst, "disp", 1e-17, back.Disp, res.Disp)

	// curve selection
	err = plo.Disp("elastic", plt.Fmt{C: "b", L: ""})
	if err != nil {
		tst.Errorf("cannot select displacement history:\n%v", err)
		return
	}
	chk.IntAssert(len(plo.Entities), 1)
	chk.StrAssert(plo.Entities[0].Style.L, "elastic")
	if plo.Disp("unknown", plt.Fmt{}) == nil {
		tst.Errorf("missing case was not detected\n")
		return
	}

	// plot
	if chk.Verbose {
		plt.SetForEps(0.75, 355)
		plo.Draw("/tmp/gosdof", "out01.eps", false)
	}
}
