// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "github.com/cpmech/gosl/fun"

// OnedLinElast implements a linear elastic restoring-force model
type OnedLinElast struct {
	K float64 // stiffness
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(OnedLinElast) }
}

// Init initialises model
func (o *OnedLinElast) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "k":
			o.K = p.V
		}
	}
	if o.K <= 0 {
		return invalidPrm("lin-elast", "k", o.K)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "k", V: 5.0},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o OnedLinElast) InitIntVars() (s *State, err error) {
	s = NewState(0)
	return
}

// Update updates the restoring force for given total displacement
func (o OnedLinElast) Update(s *State, u, Δu float64) (err error) {
	s.Sig = o.K * u
	return
}

// CalcD computes D = df_new/du_new consistent with Update
func (o OnedLinElast) CalcD(s *State, firstIt bool) (float64, error) {
	return o.K, nil
}
