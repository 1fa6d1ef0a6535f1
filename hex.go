// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Hex is an 8-bit-per-channel encoding of an [SRGB] color, with the text
// form "#RRGGBB". Quantizing to 8 bits is the one lossy step in this
// package: SRGB to Hex and back recovers each channel only to within 1/255.
type Hex struct {
	R, G, B uint8
}

// Black and white points of the Hex encoding.
var (
	HexBlack = Hex{}
	HexWhite = Hex{R: 255, G: 255, B: 255}
)

// ErrHexFormat is returned by [ParseHex] for any input that is not six
// hexadecimal digits with an optional leading '#'.
var ErrHexFormat = errors.New("hex color must be 6 hexadecimal digits")

// ParseHex parses a six-hexadecimal-digit color string such as "#20a0ff"
// or "20A0FF". The leading '#' is optional and digits may be either case;
// every other input shape is rejected with an error wrapping [ErrHexFormat].
func ParseHex(hex string) (Hex, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return Hex{}, fmt.Errorf("%w: %q", ErrHexFormat, hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Hex{}, fmt.Errorf("%w: %q", ErrHexFormat, hex)
	}
	return Hex{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is like [ParseHex] but panics on error,
// for use with known-good literals.
func MustParseHex(hex string) Hex {
	h, err := ParseHex(hex)
	if err != nil {
		panic("colorspace.MustParseHex: " + err.Error())
	}
	return h
}

// Hex quantizes each channel to 8 bits, rounding to nearest and clamping
// out-of-range input into 0-255.
func (c SRGB) Hex() Hex {
	return Hex{R: quant8(c.R), G: quant8(c.G), B: quant8(c.B)}
}

func quant8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// SRGB recovers the 0-1 float channels from the 8-bit encoding.
func (c Hex) SRGB() SRGB {
	return SRGB{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
	}
}

// InBounds always reports true: every 8-bit triple is a representable color.
func (Hex) InBounds() bool {
	return true
}

// String returns the color as a standard 2-hexadecimal-digits-per-component
// string with a leading '#'.
func (c Hex) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// MarshalText implements [encoding.TextMarshaler] using [Hex.String].
func (c Hex) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseHex].
func (c *Hex) UnmarshalText(text []byte) error {
	h, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = h
	return nil
}
