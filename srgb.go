// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// SRGB is a gamma-encoded, display-ready color with red, green, and blue
// components nominally in 0-1. It is the variant of [LinearRGB] produced
// by the standard sRGB transfer function; it is not a core space, so it
// converts by hopping to LinearRGB with [SRGB.Linear] first.
type SRGB struct {
	R, G, B float32
}

// Black and white points of the sRGB space.
var (
	SRGBBlack = SRGB{}
	SRGBWhite = SRGB{R: 1, G: 1, B: 1}
)

// InBounds reports whether each channel is within 0-1,
// within the package bounds tolerance.
func (c SRGB) InBounds() bool {
	return approxInRange(c.R, 0, 1) &&
		approxInRange(c.G, 0, 1) &&
		approxInRange(c.B, 0, 1)
}

// SRGB gamma-encodes each channel with the sRGB transfer function.
// This loses nothing beyond floating-point rounding: [SRGB.Linear]
// recovers the original to within float epsilon.
func (c LinearRGB) SRGB() SRGB {
	return SRGB{
		R: srgbFromLinearComp(c.R),
		G: srgbFromLinearComp(c.G),
		B: srgbFromLinearComp(c.B),
	}
}

// Linear decodes each channel with the inverse sRGB transfer function,
// recovering the light-linear form.
func (c SRGB) Linear() LinearRGB {
	return LinearRGB{
		R: srgbToLinearComp(c.R),
		G: srgbToLinearComp(c.G),
		B: srgbToLinearComp(c.B),
	}
}

// srgbFromLinearComp converts one linear component to its sRGB encoding:
// a linear segment near zero, a 1/2.4 power law above it.
func srgbFromLinearComp(v float32) float32 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

// srgbToLinearComp converts one sRGB-encoded component to linear.
func srgbToLinearComp(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// RGBA implements the [color.Color] interface, with channels clamped
// to 0-1 and alpha always full.
func (c SRGB) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R)*65535 + 0.5)
	g = uint32(clamp01(c.G)*65535 + 0.5)
	b = uint32(clamp01(c.B)*65535 + 0.5)
	a = 65535
	return
}

// SRGBModel is the standard [color.Model] that converts colors to [SRGB].
var SRGBModel = color.ModelFunc(srgbModel)

func srgbModel(c color.Color) color.Color {
	if s, ok := c.(SRGB); ok {
		return s
	}
	return SRGBFromColor(c)
}

// SRGBFromColor constructs an SRGB color from a standard [color.Color],
// dropping alpha after unpremultiplying by it.
func SRGBFromColor(ci color.Color) SRGB {
	r, g, b, a := ci.RGBA()
	if a == 0 {
		return SRGB{}
	}
	fa := float32(a)
	return SRGB{
		R: float32(r) / fa,
		G: float32(g) / fa,
		B: float32(b) / fa,
	}
}

func (c SRGB) String() string {
	return fmt.Sprintf("srgb(%g, %g, %g)", c.R, c.G, c.B)
}
