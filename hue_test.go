// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHueRoundTrip(t *testing.T) {
	for degrees := float32(0); degrees < 360; degrees += 0.5 {
		h, err := HueFromDegrees(degrees)
		require.NoError(t, err)
		assert.InDelta(t, degrees, h.Degrees(), 1e-3)
	}
}

func TestHueRange(t *testing.T) {
	for _, degrees := range []float32{-0.001, -90, 360.001, 720, math32.NaN(), math32.Inf(1), math32.Inf(-1)} {
		_, err := HueFromDegrees(degrees)
		assert.ErrorIs(t, err, ErrHueRange, "degrees: %g", degrees)
	}

	// both endpoints are valid, and 360 is the same hue as 0
	h0, err := HueFromDegrees(0)
	require.NoError(t, err)
	h360, err := HueFromDegrees(360)
	require.NoError(t, err)
	assert.Equal(t, h0, h360)
	assert.Equal(t, float32(0), h360.Degrees())
}

func TestHueSeam(t *testing.T) {
	// hues just under 360 and just over 0 must stay continuous through
	// the trigonometry used by the Oklch conversion
	lo := Oklch{L: 0.5, C: 0.2, H: MustHueFromDegrees(359.9)}.Oklab()
	hi := Oklch{L: 0.5, C: 0.2, H: MustHueFromDegrees(0.1)}.Oklab()
	assert.InDelta(t, lo.A, hi.A, 1e-4)
	assert.InDelta(t, lo.B, -hi.B, 1e-4)

	// 180 maps onto the other end of the stored range
	half := MustHueFromDegrees(180)
	assert.InDelta(t, float32(180), half.Degrees(), 1e-3)
	mid := Oklch{L: 0.5, C: 0.2, H: half}.Oklab()
	assert.InDelta(t, float32(-0.2), mid.A, 1e-4)
	assert.InDelta(t, float32(0), mid.B, 1e-4)
}

func TestMustHueFromDegrees(t *testing.T) {
	assert.NotPanics(t, func() { MustHueFromDegrees(123.4) })
	assert.Panics(t, func() { MustHueFromDegrees(-1) })
}

func TestHueString(t *testing.T) {
	assert.Equal(t, "0°", Hue{}.String())
}
