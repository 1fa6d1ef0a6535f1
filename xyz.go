// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "fmt"

// XYZ is a color in the CIE 1931 XYZ color space, the hub through which
// every conversion in this package is routed. The illuminant and observer
// are the standard D65 and 2 degree.
type XYZ struct {

	// X is a mixture of cone response curves chosen by the CIE to be
	// nonnegative, from 0 to 0.95047
	X float32

	// Y is the lightness of the color: 0 is complete black,
	// 1 is the brightest white
	Y float32

	// Z is roughly a measure of the blueness of the color,
	// from 0 (no blue) to 1.08883 (maximum blue)
	Z float32
}

// Black and white points of the XYZ space, with white at the
// D65 reference white.
var (
	XYZBlack = XYZ{}
	XYZWhite = XYZ{X: 0.95047, Y: 1, Z: 1.08883}
)

// InBounds reports whether each channel is within its nominal D65 range,
// within the package bounds tolerance.
func (c XYZ) InBounds() bool {
	return approxInRange(c.X, 0, 0.95047) &&
		approxInRange(c.Y, 0, 1) &&
		approxInRange(c.Z, 0, 1.08883)
}

// ToXYZ returns the color unchanged: XYZ is its own hub.
func (c XYZ) ToXYZ() XYZ {
	return c
}

// FromXYZ returns the given color unchanged: XYZ is its own hub.
func (XYZ) FromXYZ(xyz XYZ) XYZ {
	return xyz
}

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g)", c.X, c.Y, c.Z)
}
