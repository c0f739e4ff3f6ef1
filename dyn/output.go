// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Results holds the recorded response series of one analysis run. The
// series are append-only: they grow monotonically during a run and are not
// modified afterwards. On a non-converged run the series retain everything
// recorded before the failing step.
type Results struct {
	Name  string    `json:"name"`  // material/case name
	Times []float64 `json:"times"` // output times
	Disp  []float64 `json:"disp"`  // displacements
	Vel   []float64 `json:"vel"`   // velocities
	Acc   []float64 `json:"acc"`   // accelerations
}

// NewResults returns a new Results structure with pre-sized series
func NewResults(name string, nsteps int) *Results {
	return &Results{
		Name:  name,
		Times: make([]float64, 0, nsteps),
		Disp:  make([]float64, 0, nsteps),
		Vel:   make([]float64, 0, nsteps),
		Acc:   make([]float64, 0, nsteps),
	}
}

// Append records one (t, u, v, a) sample
func (o *Results) Append(t, u, v, a float64) {
	o.Times = append(o.Times, t)
	o.Disp = append(o.Disp, u)
	o.Vel = append(o.Vel, v)
	o.Acc = append(o.Acc, a)
}

// Nrec returns the number of recorded samples
func (o *Results) Nrec() int {
	return len(o.Times)
}

// PeakDisp returns the largest absolute displacement and its time
func (o *Results) PeakDisp() (upeak, tpeak float64) {
	for i, u := range o.Disp {
		if u > upeak || -u > upeak {
			if u < 0 {
				upeak = -u
			} else {
				upeak = u
			}
			tpeak = o.Times[i]
		}
	}
	return
}

// Summary holds the results of all analysis cases of one simulation
type Summary struct {
	Key      string     `json:"key"`      // simulation key
	OutTimes []float64  `json:"outtimes"` // output times of the last run
	Cases    []*Results `json:"cases"`    // results per material case
}

// GetCase returns the results of the case named matname or nil
func (o *Summary) GetCase(matname string) *Results {
	for _, res := range o.Cases {
		if res.Name == matname {
			return res
		}
	}
	return nil
}

// Save saves the summary as a JSON file in dirout
func (o *Summary) Save(dirout, fnkey string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal summary:\n%v", err)
	}
	io.WriteFileVD(dirout, fnkey+".res", bytes.NewBuffer(b))
	return
}

// ReadSummary reads a summary saved by Save
func ReadSummary(dirout, fnkey string) (o *Summary, err error) {
	b, err := io.ReadFile(io.Sf("%s/%s.res", dirout, fnkey))
	if err != nil {
		return nil, chk.Err("cannot read summary file:\n%v", err)
	}
	o = new(Summary)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal summary:\n%v", err)
	}
	return
}
