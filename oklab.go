// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Oklab is a color in the perceptually uniform Oklab color space:
// equal distances in Oklab correspond to roughly equal perceived
// color differences. See https://bottosson.github.io/posts/oklab/
// for the derivation and the matrix constants used here.
type Oklab struct {

	// L is the perceived lightness, from 0 (black) to 1 (white)
	L float32

	// A is the green-red opponent axis, negative toward green and
	// positive toward red; unbounded but practically within about ±0.4
	A float32

	// B is the blue-yellow opponent axis, negative toward blue and
	// positive toward yellow; unbounded but practically within about ±0.4
	B float32
}

// Black and white points of the Oklab space.
var (
	OklabBlack = Oklab{}
	OklabWhite = Oklab{L: 1}
)

// InBounds reports whether L is within 0-1, within the package bounds
// tolerance. A and B have no hard bound, so they are always in bounds.
func (c Oklab) InBounds() bool {
	return approxInRange(c.L, 0, 1)
}

// ToXYZ undoes the Oklab pipeline: undo the LMS'-to-Lab matrix, cube each
// cone response, then apply the inverse XYZ-to-LMS matrix.
func (c Oklab) ToXYZ() XYZ {
	lp := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	mp := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	sp := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	return XYZ{
		X: 1.2270138511*l - 0.5577999807*m + 0.2812561490*s,
		Y: -0.0405801784*l + 1.1122568696*m - 0.0716766787*s,
		Z: -0.0763812845*l - 0.4214819784*m + 1.5861632204*s,
	}
}

// FromXYZ applies the Oklab pipeline: a linear map to long, medium, short
// cone responses, a signed cube root per cone (math32.Cbrt preserves sign,
// so slightly negative responses from numerical noise stay finite), then
// the LMS'-to-Lab matrix.
func (Oklab) FromXYZ(xyz XYZ) Oklab {
	l := 0.8189330101*xyz.X + 0.3618667424*xyz.Y - 0.1288597137*xyz.Z
	m := 0.0329845436*xyz.X + 0.9293118715*xyz.Y + 0.0361456387*xyz.Z
	s := 0.0482003018*xyz.X + 0.2643662691*xyz.Y + 0.6338517070*xyz.Z

	lp := math32.Cbrt(l)
	mp := math32.Cbrt(m)
	sp := math32.Cbrt(s)

	return Oklab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

func (c Oklab) String() string {
	return fmt.Sprintf("oklab(%g, %g, %g)", c.L, c.A, c.B)
}
