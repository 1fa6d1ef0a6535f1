// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Oklch is the polar form of [Oklab]: the same lightness, with the two
// opponent axes restated as a chroma magnitude and a hue angle. It is not
// a core space; it converts by hopping to Oklab with [Oklch.Oklab] first.
type Oklch struct {

	// L is the perceived lightness, from 0 (black) to 1 (white),
	// identical to Oklab L
	L float32

	// C is the chroma: 0 for greyscale colors, larger for more
	// saturated ones
	C float32

	// H is the hue angle
	H Hue
}

// Black and white points of the Oklch space.
var (
	OklchBlack = Oklch{}
	OklchWhite = Oklch{L: 1}
)

// InBounds reports whether L is within 0-1, within the package bounds
// tolerance, and C is nonnegative. The hue is an angle and is always
// in bounds.
func (c Oklch) InBounds() bool {
	return approxInRange(c.L, 0, 1) && c.C >= 0
}

// OklchFromOklab converts to polar form: C is the magnitude of (A, B)
// and H their angle. A color with no chroma has an indeterminate hue;
// it is reported as 0°.
func OklchFromOklab(lab Oklab) Oklch {
	c := math32.Sqrt(lab.A*lab.A + lab.B*lab.B)
	if c == 0 {
		return Oklch{L: lab.L}
	}
	return Oklch{
		L: lab.L,
		C: c,
		H: hueFromRadians(math32.Atan2(lab.B, lab.A)),
	}
}

// Oklab converts back to Cartesian form: A = C·cos(H), B = C·sin(H).
func (c Oklch) Oklab() Oklab {
	return Oklab{
		L: c.L,
		A: c.C * math32.Cos(c.H.unnormalizedRadians),
		B: c.C * math32.Sin(c.H.unnormalizedRadians),
	}
}

func (c Oklch) String() string {
	return fmt.Sprintf("oklch(%g, %g, %v)", c.L, c.C, c.H)
}
