// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "fmt"

// LinearRGB is a color with light-linear (gamma-uncorrected) red, green,
// and blue components, using the sRGB primaries under the D65 white point.
// Each component is nominally in 0-1. Linear values are suitable for
// physical light computation; for display, encode with [LinearRGB.SRGB].
type LinearRGB struct {
	R, G, B float32
}

// Black and white points of the linear RGB space.
var (
	LinearRGBBlack = LinearRGB{}
	LinearRGBWhite = LinearRGB{R: 1, G: 1, B: 1}
)

// InBounds reports whether each channel is within 0-1,
// within the package bounds tolerance.
func (c LinearRGB) InBounds() bool {
	return approxInRange(c.R, 0, 1) &&
		approxInRange(c.G, 0, 1) &&
		approxInRange(c.B, 0, 1)
}

// ToXYZ converts to XYZ using the standard sRGB-to-XYZ matrix
// for the D65 illuminant.
func (c LinearRGB) ToXYZ() XYZ {
	return XYZ{
		X: 0.4124564*c.R + 0.3575761*c.G + 0.1804375*c.B,
		Y: 0.2126729*c.R + 0.7151522*c.G + 0.0721750*c.B,
		Z: 0.0193339*c.R + 0.1191920*c.G + 0.9503041*c.B,
	}
}

// FromXYZ converts from XYZ using the inverse of the standard
// sRGB-to-XYZ matrix for the D65 illuminant.
func (LinearRGB) FromXYZ(xyz XYZ) LinearRGB {
	return LinearRGB{
		R: 3.2404542*xyz.X - 1.5371385*xyz.Y - 0.4985314*xyz.Z,
		G: -0.9692660*xyz.X + 1.8760108*xyz.Y + 0.0415560*xyz.Z,
		B: 0.0556434*xyz.X - 0.2040259*xyz.Y + 1.0572252*xyz.Z,
	}
}

func (c LinearRGB) String() string {
	return fmt.Sprintf("rgblin(%g, %g, %g)", c.R, c.G, c.B)
}
