// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace converts colors between representations of the same
// physical stimulus: device-independent [XYZ], perceptually uniform [Oklab]
// and its polar form [Oklch], light-linear [LinearRGB], gamma-encoded [SRGB],
// and the hexadecimal text form [Hex].
//
// XYZ is the hub: every core space converts to and from it, and [Convert]
// composes those two hops. There are no direct pairwise conversions between
// non-XYZ spaces. SRGB, Oklch, and Hex are variants that convert one hop
// to their core counterpart (LinearRGB, Oklab, and SRGB respectively) and
// then ride the hub path.
//
// All values are small float32 structs, freely copyable and safe to use
// from any goroutine; every operation is a pure function of its inputs.
package colorspace

// ColorSpace is implemented by every color representation in this package.
// Each implementation also provides package-level Black and White values
// (for example [XYZBlack] and [XYZWhite]), both of which are in bounds.
type ColorSpace interface {

	// InBounds reports whether every channel is within the nominal range
	// for this space. The check is tolerant: channels may exceed the range
	// by a small amount to absorb floating-point error accumulated by
	// chained conversions.
	InBounds() bool
}

// Core is a color space that converts directly to and from the [XYZ] hub.
// FromXYZ is a constructor: it ignores its receiver, so it is usable on the
// zero value. Both directions are total; inputs outside the nominal range
// are not rejected, they simply produce results that may report
// InBounds() == false.
type Core[T any] interface {
	ColorSpace

	// ToXYZ converts this color to the XYZ hub space.
	ToXYZ() XYZ

	// FromXYZ converts the given XYZ color to this space.
	FromXYZ(xyz XYZ) T
}

// Convert converts a color between any two core color spaces by routing it
// through [XYZ]: exactly one ToXYZ followed by one FromXYZ. The input type
// is inferred, so calls read as Convert[Oklab](rgb).
func Convert[Out Core[Out], In Core[In]](c In) Out {
	var out Out
	return out.FromXYZ(c.ToXYZ())
}

// core spaces implement the hub contract; variants only implement ColorSpace
// and hop to their core counterpart.
var (
	_ Core[XYZ]       = XYZ{}
	_ Core[LinearRGB] = LinearRGB{}
	_ Core[Oklab]     = Oklab{}
	_ ColorSpace      = SRGB{}
	_ ColorSpace      = Oklch{}
	_ ColorSpace      = Hex{}
)

// boundsTol is how far a channel may fall outside its nominal range and
// still count as in bounds. Chained conversions accumulate floating-point
// error, and a display color a hair past the gamut edge is still usable.
const boundsTol = 0.005

func approxInRange(v, lo, hi float32) bool {
	return v >= lo-boundsTol && v <= hi+boundsTol
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
