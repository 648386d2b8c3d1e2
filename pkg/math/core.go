// pkg/math/core.go
// Copyright(c) 2025 route-plotter contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Radians converts an angle expressed in degrees to radians
func Radians(d float32) float32 {
	return d / 180 * gomath.Pi
}

// We work almost entirely in float32, so it's handy to have versions of
// the transcendentals that don't require casts at every call site.

func Sin(a float32) float32 {
	return float32(gomath.Sin(float64(a)))
}

func Cos(a float32) float32 {
	return float32(gomath.Cos(float64(a)))
}

func Floor(v float32) float32 {
	return float32(gomath.Floor(float64(v)))
}

func NaN() float32 {
	return float32(gomath.NaN())
}

func IsNaN[V constraints.Float](v V) bool {
	return v != v
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

///////////////////////////////////////////////////////////////////////////
// 2d vectors

func Add2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] + b[0], a[1] + b[1]}
}

func Sub2f(a [2]float32, b [2]float32) [2]float32 {
	return [2]float32{a[0] - b[0], a[1] - b[1]}
}

func Scale2f(v [2]float32, s float32) [2]float32 {
	return [2]float32{s * v[0], s * v[1]}
}
