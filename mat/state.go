// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

// State holds the restoring-force state of a 1D model, including the
// internal variables needed for updating the state. The state is a pure
// function of the displacement history applied from reset; reapplying the
// same history reproduces identical force and stiffness at every step.
type State struct {

	// essential
	Sig float64 // current restoring force

	// for plasticity (if len(Alp) > 0)
	Alp     []float64 // α: internal variables; e.g. Alp[0] = plastic displacement offset
	Loading bool      // plastic loading flag
}

// NewState allocates a state structure
//  nalp -- number of internal variables (0 for elastic models)
func NewState(nalp int) *State {
	var state State
	if nalp > 0 {
		state.Alp = make([]float64, nalp)
	}
	return &state
}

// Set copies states
//  Note: 1) this and other states must have been pre-allocated with the same sizes
//        2) this method does not check for errors
func (o *State) Set(other *State) {
	o.Sig = other.Sig
	if len(o.Alp) > 0 {
		copy(o.Alp, other.Alp)
		o.Loading = other.Loading
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.Alp))
	other.Set(o)
	return other
}
