// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOklabReference(t *testing.T) {
	lab := Convert[Oklab](LinearRGB{R: 0.4, G: 0.2, B: 0.6})
	assert.InDelta(t, 0.66066486, lab.L, 1e-4)
	assert.InDelta(t, 0.079970956, lab.A, 1e-4)
	assert.InDelta(t, -0.095915854, lab.B, 1e-4)
}

func TestOklabWhitePoint(t *testing.T) {
	white := Oklab{}.FromXYZ(XYZWhite)
	assert.InDelta(t, 1, white.L, 1e-3)
	assert.InDelta(t, 0, white.A, 1e-3)
	assert.InDelta(t, 0, white.B, 1e-3)

	assert.Equal(t, XYZBlack, OklabBlack.ToXYZ())
	assert.Equal(t, OklabBlack, Oklab{}.FromXYZ(XYZBlack))
}

func TestOklabRoundTrip(t *testing.T) {
	for _, c := range []Oklab{
		{L: 0.2, A: 0.1, B: -0.05},
		{L: 0.66, A: 0.08, B: -0.096},
		{L: 0.9, A: -0.2, B: 0.15},
		{L: 0.5},
	} {
		back := Oklab{}.FromXYZ(c.ToXYZ())
		assert.InDelta(t, c.L, back.L, 1e-4)
		assert.InDelta(t, c.A, back.A, 1e-4)
		assert.InDelta(t, c.B, back.B, 1e-4)
	}
}

func TestOklabBounds(t *testing.T) {
	assert.True(t, OklabBlack.InBounds())
	assert.True(t, OklabWhite.InBounds())

	// A and B have no hard bound
	assert.True(t, Oklab{L: 0.5, A: 5, B: -5}.InBounds())
	assert.False(t, Oklab{L: 1.2}.InBounds())
	assert.False(t, Oklab{L: -0.1}.InBounds())
}
