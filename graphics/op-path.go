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

// This file implements the path construction and path painting operators
// needed for straight lines.  The operators are defined in tables 58 and 59
// of ISO 32000-2:2020.

// MoveTo starts a new path at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if !w.isValid("MoveTo", objPage|objPath) {
		return
	}
	w.currentObject = objPath

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if !w.isValid("LineTo", objPath) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "l")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if !w.isValid("Stroke", objPath) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "S")
}
