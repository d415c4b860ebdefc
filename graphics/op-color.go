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

import "fmt"

// This file implements functions to set the stroke and fill colors.
// The operators used here are defined in table 73 of ISO 32000-2:2020.

// SetStrokeColor sets the color to use for stroking operations.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeColor(c RGB) {
	if !w.isValid("SetStrokeColor", objPage|objText) {
		return
	}
	if !c.Valid() {
		w.Err = fmt.Errorf("SetStrokeColor: invalid color %s", c)
		return
	}
	if w.isSet(StateStrokeColor) && w.StrokeColor == c {
		return
	}

	w.StrokeColor = c
	w.Set |= StateStrokeColor

	_, w.Err = fmt.Fprintln(w.Content, c.operands(), "RG")
}

// SetFillColor sets the color to use for non-stroking operations.
// Text is painted using the fill color.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillColor(c RGB) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}
	if !c.Valid() {
		w.Err = fmt.Errorf("SetFillColor: invalid color %s", c)
		return
	}
	if w.isSet(StateFillColor) && w.FillColor == c {
		return
	}

	w.FillColor = c
	w.Set |= StateFillColor

	_, w.Err = fmt.Fprintln(w.Content, c.operands(), "rg")
}
