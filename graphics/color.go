// seehuhn.de/go/formpdf - render structured form documents as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package graphics

import (
	"fmt"
	"math"
)

// RGB is a colour in the DeviceRGB colour space.
// Each component must be in the range [0, 1].
type RGB struct {
	R, G, B float64
}

// DeviceRGB returns the colour with the given red, green and blue
// components.
func DeviceRGB(r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b}
}

// Gray returns the shade of gray with red, green and blue components all
// equal to v.
func Gray(v float64) RGB {
	return RGB{R: v, G: v, B: v}
}

// Valid reports whether all components of c are in the range [0, 1].
func (c RGB) Valid() bool {
	for _, x := range []float64{c.R, c.G, c.B} {
		if math.IsNaN(x) || x < 0 || x > 1 {
			return false
		}
	}
	return true
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

func (c RGB) operands() string {
	return format(c.R, 3) + " " + format(c.G, 3) + " " + format(c.B, 3)
}
