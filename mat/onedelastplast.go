// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// OnedElastPlast implements an elastic-perfectly-plastic restoring-force
// model: linear elastic below the yield force fy = k·dy and a constant-force
// plateau beyond it, with permanent offset upon unloading
type OnedElastPlast struct {
	K  float64 // elastic stiffness
	Dy float64 // yield displacement
	σy float64 // yield force = K·Dy
}

// add model to factory
func init() {
	allocators["epp"] = func() Model { return new(OnedElastPlast) }
}

// Init initialises model
func (o *OnedElastPlast) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "k":
			o.K = p.V
		case "dy":
			o.Dy = p.V
		}
	}
	if o.K <= 0 {
		return invalidPrm("epp", "k", o.K)
	}
	if o.Dy <= 0 {
		return invalidPrm("epp", "dy", o.Dy)
	}
	o.σy = o.K * o.Dy
	return
}

// GetPrms gets (an example) of parameters
func (o OnedElastPlast) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "k", V: 5.0},
		&fun.Prm{N: "dy", V: 1.2},
	}
}

// InitIntVars initialises internal (secondary) variables
func (o OnedElastPlast) InitIntVars() (s *State, err error) {
	s = NewState(1) // 1:{dp}
	return
}

// Update updates the restoring force for given total displacement.
// The plastic offset Alp[0] is moved only when the trial force lies outside
// the yield surface; thus callers restoring s before every iteration obtain
// trial evaluations that never permanently mutate the plastic state.
func (o OnedElastPlast) Update(s *State, u, Δu float64) (err error) {

	// internal values
	dp := &s.Alp[0]

	// trial force
	σtr := o.K * (u - (*dp))
	ftr := math.Abs(σtr) - o.σy

	// elastic update
	if ftr <= 0.0 {
		s.Sig = σtr
		s.Loading = false
		return
	}

	// plastic update
	sign := fun.Sign(σtr)
	s.Sig = sign * o.σy
	*dp = u - sign*o.Dy
	s.Loading = true
	return
}

// CalcD computes D = df_new/du_new consistent with Update: the elastic
// stiffness within the yield surface and exactly zero on the plateau
func (o OnedElastPlast) CalcD(s *State, firstIt bool) (float64, error) {
	if s.Loading {
		return 0, nil
	}
	return o.K, nil
}
