// Copyright 2016 The Gosdof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"sort"
	"strconv"

	"github.com/cpmech/gosl/fun"
)

// LoadHistory implements a piecewise-linear interpolation over a table of
// (time, force) control points. It satisfies gosl's fun.Func interface so it
// can be handed directly to the dynamics solver as the forcing function.
//
// Extrapolation policy: queries before the first control point return the
// first ordinate and queries after the last control point return the last
// ordinate (hold-boundary-value). The time integrator samples the load at
// arbitrary times between and beyond the table entries, thus this policy is
// part of the contract and must not change silently.
type LoadHistory struct {
	T []float64 // times of control points (strictly increasing)
	P []float64 // force ordinates
}

// Init initialises the function with pairs of parameters named "t0","f0",
// "t1","f1", etc. It returns *InvalidInputError on malformed tables.
func (o *LoadHistory) Init(prms fun.Prms) (err error) {
	tvals := map[int]float64{}
	fvals := map[int]float64{}
	for _, p := range prms {
		if len(p.N) < 2 {
			continue
		}
		idx, e := strconv.Atoi(p.N[1:])
		if e != nil {
			continue
		}
		switch p.N[0] {
		case 't':
			tvals[idx] = p.V
		case 'f':
			fvals[idx] = p.V
		}
	}
	if len(tvals) != len(fvals) {
		return invalidInput("load history needs matching t# and f# parameters. %d times and %d forces were given", len(tvals), len(fvals))
	}
	n := len(tvals)
	T := make([]float64, n)
	P := make([]float64, n)
	for i := 0; i < n; i++ {
		t, okt := tvals[i]
		f, okf := fvals[i]
		if !okt || !okf {
			return invalidInput("load history parameters t%d/f%d are missing", i, i)
		}
		T[i] = t
		P[i] = f
	}
	return o.Set(T, P)
}

// Set sets the control points directly
func (o *LoadHistory) Set(T, P []float64) (err error) {
	if len(T) < 2 {
		return invalidInput("load history needs at least 2 control points. %d is incorrect", len(T))
	}
	if len(T) != len(P) {
		return invalidInput("load history times and forces must have the same length. %d != %d", len(T), len(P))
	}
	for i := 1; i < len(T); i++ {
		if T[i] <= T[i-1] {
			return invalidInput("load history times must be strictly increasing. t[%d]=%g ≤ t[%d]=%g", i, T[i], i-1, T[i-1])
		}
	}
	o.T = T
	o.P = P
	return
}

// SetTable sets the control points from a [[t,f], ...] table
func (o *LoadHistory) SetTable(table [][]float64) (err error) {
	if len(table) < 2 {
		return invalidInput("load table needs at least 2 rows. %d is incorrect", len(table))
	}
	T := make([]float64, len(table))
	P := make([]float64, len(table))
	for i, row := range table {
		if len(row) != 2 {
			return invalidInput("load table row %d must have 2 columns (time, force). %d is incorrect", i, len(row))
		}
		T[i] = row[0]
		P[i] = row[1]
	}
	return o.Set(T, P)
}

// F returns the interpolated force @ t. Queries outside the table are
// clamped to the boundary ordinates.
func (o LoadHistory) F(t float64, x []float64) float64 {
	n := len(o.T)
	if t <= o.T[0] {
		return o.P[0]
	}
	if t >= o.T[n-1] {
		return o.P[n-1]
	}
	i := o.segment(t)
	m := (o.P[i+1] - o.P[i]) / (o.T[i+1] - o.T[i])
	return o.P[i] + m*(t-o.T[i])
}

// G returns the slope of the active segment @ t; zero outside the table
func (o LoadHistory) G(t float64, x []float64) float64 {
	n := len(o.T)
	if t < o.T[0] || t > o.T[n-1] {
		return 0
	}
	i := o.segment(t)
	return (o.P[i+1] - o.P[i]) / (o.T[i+1] - o.T[i])
}

// H returns the second derivative, identically zero for piecewise-linear data
func (o LoadHistory) H(t float64, x []float64) float64 {
	return 0
}

// Grad returns ∇F = ∂y/∂x, identically zero since the load depends on t only
func (o LoadHistory) Grad(v []float64, t float64, x []float64) {
	for i := range v {
		v[i] = 0
	}
}

// segment finds i such that T[i] ≤ t < T[i+1], assuming t is inside the table
func (o LoadHistory) segment(t float64) int {
	i := sort.SearchFloat64s(o.T, t)
	if i > 0 && (i == len(o.T) || o.T[i] != t) {
		i--
	}
	if i == len(o.T)-1 {
		i--
	}
	return i
}
