// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXYZHub(t *testing.T) {
	c := XYZ{X: 0.3, Y: 0.4, Z: 0.5}
	assert.Equal(t, c, c.ToXYZ())
	assert.Equal(t, c, XYZ{}.FromXYZ(c))
	assert.Equal(t, c, Convert[XYZ](c))
}

func TestXYZBounds(t *testing.T) {
	assert.True(t, XYZBlack.InBounds())
	assert.True(t, XYZWhite.InBounds())
	assert.True(t, XYZ{X: 0.5, Y: 0.5, Z: 0.5}.InBounds())

	// the tolerance admits a hair past the nominal edge, not more
	assert.True(t, XYZ{X: 0.954, Y: 1.004, Z: 1.09}.InBounds())
	assert.True(t, XYZ{X: -0.004, Y: 0, Z: 0}.InBounds())
	assert.False(t, XYZ{X: 0.96, Y: 0.5, Z: 0.5}.InBounds())
	assert.False(t, XYZ{X: 0.5, Y: 1.1, Z: 0.5}.InBounds())
	assert.False(t, XYZ{X: 0.5, Y: 0.5, Z: -0.01}.InBounds())
}

func TestXYZString(t *testing.T) {
	assert.Equal(t, "xyz(0.5, 0.25, 0.125)", XYZ{X: 0.5, Y: 0.25, Z: 0.125}.String())
}
