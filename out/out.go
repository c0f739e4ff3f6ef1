// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reading and plotting of analysis results
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"

	"github.com/subedinaresh/gosdof/dyn"
)

// Entity stores the data and style of one response curve
type Entity struct {
	Alias string    // label; e.g. material name
	X     []float64 // times
	Y     []float64 // response values
	Style plt.Fmt   // style
}

// Plotter collects response curves of one or more analysis cases
type Plotter struct {
	Sum      *dyn.Summary // results to plot
	Entities []*Entity    // curves
}

// LoadResults reads a summary saved by dyn.Summary.Save
func LoadResults(dirout, fnkey string) (o *Plotter, err error) {
	o = new(Plotter)
	o.Sum, err = dyn.ReadSummary(dirout, fnkey)
	if err != nil {
		return nil, err
	}
	return
}

// Disp selects the displacement history of one case for plotting
func (o *Plotter) Disp(matname string, style plt.Fmt) (err error) {
	res := o.Sum.GetCase(matname)
	if res == nil {
		return chk.Err("cannot find results of case %q", matname)
	}
	if style.L == "" {
		style.L = res.Name
	}
	o.Entities = append(o.Entities, &Entity{
		Alias: res.Name,
		X:     res.Times,
		Y:     res.Disp,
		Style: style,
	})
	return
}

// Draw plots all selected curves
//  Input:
//   dirout -- directory to save figure; used if fname != ""
//   fname  -- filename; e.g. "disp-histories.eps"
//   show   -- show figure instead of saving
func (o *Plotter) Draw(dirout, fname string, show bool) {
	for _, e := range o.Entities {
		plt.Plot(e.X, e.Y, e.Style.GetArgs("clip_on=0"))
	}
	plt.Gll("$t$", "$u$", "")
	if fname != "" {
		plt.SaveD(dirout, fname)
	}
	if show {
		plt.Show()
	}
}
