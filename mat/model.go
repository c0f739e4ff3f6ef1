// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements one-dimensional constitutive models for the
// restoring force of single-degree-of-freedom structural systems
package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/subedinaresh/gosdof/inp"
)

// Model defines the interface for 1D restoring-force models
type Model interface {

	// Init initialises the model with given parameters
	Init(prms fun.Prms) error

	// GetPrms gets (an example) of parameters
	GetPrms() fun.Prms

	// InitIntVars initialises AND allocates internal (secondary) variables
	InitIntVars() (*State, error)

	// Update updates the restoring force in s for a trial displacement u,
	// where Δu is the total increment accumulated since the last converged
	// state. Callers performing equilibrium iterations must restore s to
	// the converged state before re-invoking Update, so that only the final
	// converged call persists.
	Update(s *State, u, Δu float64) error

	// CalcD computes D = df_new/du_new consistent with Update
	CalcD(s *State, firstIt bool) (float64, error)
}

// New returns a new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mat' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}

// invalidPrm returns an error for an out-of-range model parameter
func invalidPrm(model, name string, val float64) error {
	return &inp.InvalidInputError{Msg: io.Sf("%s: parameter %q must be positive. %g is incorrect", model, name, val)}
}
