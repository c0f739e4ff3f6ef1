// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// InvalidInputError indicates malformed configuration data. It is always
// detected eagerly, before any time stepping takes place.
type InvalidInputError struct {
	Msg string // description of the offending input
}

// Error returns the error message
func (e *InvalidInputError) Error() string {
	return io.Sf("invalid input: %s", e.Msg)
}

// invalidInput returns a new InvalidInputError with formatted message
func invalidInput(msg string, prm ...interface{}) *InvalidInputError {
	return &InvalidInputError{io.Sf(msg, prm...)}
}

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gosdof
	Encoder string `json:"encoder"` // encoder name; e.g. "json"
	ShowR   bool   `json:"showr"`   // show residuals during iterations
	Debug   bool   `json:"debug"`   // activate debugging
}

// SysData holds the dynamic system data
type SysData struct {
	M float64 `json:"m"` // mass
	C float64 `json:"c"` // viscous damping coefficient
}

// MatData holds material data defining one analysis case
type MatData struct {
	Name  string   `json:"name"`  // name of material; e.g. "steel-epp"
	Model string   `json:"model"` // model name; e.g. "lin-elast", "epp"
	Prms  fun.Prms `json:"prms"`  // model parameters
}

// LoadData holds the tabulated external load history
type LoadData struct {
	Name  string      `json:"name"`  // name of load history
	Table [][]float64 `json:"table"` // (time, force) control points

	// derived
	Hist *LoadHistory // interpolator over Table
}

// SolverData holds nonlinear and dynamics solver data
type SolverData struct {

	// nonlinear solver
	Type   string  `json:"type"`   // nonlinear solver type: {imp} => implicit
	NmaxIt int     `json:"nmaxit"` // number of max iterations
	FbTol  float64 `json:"fbtol"`  // absolute tolerance on out-of-balance force
	ShowR  bool    `json:"showr"`  // show residual

	// transient analyses
	DtMin float64 `json:"dtmin"` // minimum value of Dt

	// dynamics
	Theta1 float64 `json:"theta1"` // Newmark's method parameter γ
	Theta2 float64 `json:"theta2"` // Newmark's method parameter 2β
	HHT    bool    `json:"hht"`    // use Hilber-Hughes-Taylor method
	HHTalp float64 `json:"hhtalp"` // HHT α parameter
}

// Control holds time control data
type Control struct {
	Tf    float64 `json:"tf"`    // final time
	Dt    float64 `json:"dt"`    // time step size
	DtOut float64 `json:"dtout"` // time step size for output

	// derived
	DtFunc  fun.Func // time step function
	DtoFunc fun.Func // output time step function
}

// Simulation holds all simulation data read from a .sim file
type Simulation struct {

	// input
	Data      Data       `json:"data"`      // stores global simulation data
	System    SysData    `json:"system"`    // stores dynamic system data
	Materials []*MatData `json:"materials"` // all materials/cases to run
	Load      LoadData   `json:"load"`      // load history data
	Solver    SolverData `json:"solver"`    // solver data
	Control   Control    `json:"control"`   // time control data

	// derived
	Key string // simulation key; e.g. mysim01.sim => mysim01
}

// SetDefaults sets default values for unset data
func (o *Simulation) SetDefaults() {
	if o.Data.DirOut == "" {
		o.Data.DirOut = "/tmp/gosdof"
	}
	if o.Data.Encoder == "" {
		o.Data.Encoder = "json"
	}
	if o.Solver.Type == "" {
		o.Solver.Type = "imp"
	}
	if o.Solver.NmaxIt < 1 {
		o.Solver.NmaxIt = 100
	}
	if o.Solver.FbTol <= 0 {
		o.Solver.FbTol = 1e-7
	}
	if o.Solver.DtMin <= 0 {
		o.Solver.DtMin = 1e-10
	}
	if o.Solver.Theta1 < 1e-5 {
		o.Solver.Theta1 = 0.5
	}
	if o.Solver.Theta2 < 1e-5 {
		o.Solver.Theta2 = 0.5
	}
	if o.Control.DtOut <= 0 {
		o.Control.DtOut = o.Control.Dt
	}
}

// Validate checks simulation data eagerly; it returns *InvalidInputError
// on the first problem found, before any stepping can take place
func (o *Simulation) Validate() (err error) {
	if o.System.M <= 0 {
		return invalidInput("mass must be positive. m=%g is incorrect", o.System.M)
	}
	if o.System.C < 0 {
		return invalidInput("damping coefficient cannot be negative. c=%g is incorrect", o.System.C)
	}
	if o.Control.Dt <= 0 {
		return invalidInput("time step must be positive. dt=%g is incorrect", o.Control.Dt)
	}
	if o.Control.Tf <= 0 {
		return invalidInput("final time must be positive. tf=%g is incorrect", o.Control.Tf)
	}
	if len(o.Materials) < 1 {
		return invalidInput("at least one material must be given")
	}
	for _, mat := range o.Materials {
		if mat.Model == "" {
			return invalidInput("material %q has no model name", mat.Name)
		}
	}
	o.Load.Hist = new(LoadHistory)
	err = o.Load.Hist.SetTable(o.Load.Table)
	if err != nil {
		return
	}
	return
}

// GetMaterial returns the material data corresponding to matname or nil
func (o *Simulation) GetMaterial(matname string) *MatData {
	for _, mat := range o.Materials {
		if mat.Name == matname {
			return mat
		}
	}
	return nil
}

// ReadSim reads a simulation input file (.sim), sets defaults and validates data
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// simulation key
	fn := filepath.Base(simfilepath)
	o.Key = io.FnKey(fn)

	// defaults and validation
	o.SetDefaults()
	err = o.Validate()
	if err != nil {
		return nil, err
	}

	// derived time functions
	o.Control.DtFunc = &fun.Cte{C: o.Control.Dt}
	o.Control.DtoFunc = &fun.Cte{C: o.Control.DtOut}
	return
}
