// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Hue is the angular identity of a color (red, green, blue etc)
// in degrees from 0 to 360.
//
// The angle is stored in radians shifted into (-π, π], so that sin and cos
// of hues just under 360° and just over 0° stay continuous instead of
// jittering across the seam.
type Hue struct {
	unnormalizedRadians float32
}

// ErrHueRange is returned by [HueFromDegrees] for degrees outside [0, 360].
var ErrHueRange = errors.New("hue degrees out of range [0, 360]")

// HueFromDegrees returns the Hue for the given angle in degrees.
// Degrees must be in [0, 360]; anything else (including NaN) is rejected
// with an error wrapping [ErrHueRange]. 360 is the same hue as 0.
func HueFromDegrees(degrees float32) (Hue, error) {
	if !(degrees >= 0 && degrees <= 360) {
		return Hue{}, fmt.Errorf("%w: %g", ErrHueRange, degrees)
	}
	if degrees > 180 {
		degrees -= 360
	}
	return Hue{unnormalizedRadians: degrees * (math32.Pi / 180)}, nil
}

// MustHueFromDegrees is like [HueFromDegrees] but panics on error,
// for use with known-good literal angles.
func MustHueFromDegrees(degrees float32) Hue {
	h, err := HueFromDegrees(degrees)
	if err != nil {
		panic("colorspace.MustHueFromDegrees: " + err.Error())
	}
	return h
}

// hueFromRadians wraps an angle already in (-π, π], such as an atan2 result.
func hueFromRadians(radians float32) Hue {
	return Hue{unnormalizedRadians: radians}
}

// Degrees returns the hue angle in degrees, always in [0, 360).
func (h Hue) Degrees() float32 {
	degrees := h.unnormalizedRadians * (180 / math32.Pi)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}

func (h Hue) String() string {
	return fmt.Sprintf("%g°", h.Degrees())
}
