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

// SetLineWidth sets the line width.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if !w.isValid("SetLineWidth", objPage|objText) {
		return
	}
	if width < 0 {
		w.Err = fmt.Errorf("SetLineWidth: negative width %g", width)
		return
	}
	if w.isSet(StateLineWidth) && nearlyEqual(width, w.LineWidth) {
		return
	}

	w.LineWidth = width
	w.Set |= StateLineWidth

	_, w.Err = fmt.Fprintln(w.Content, w.coord(width), "w")
}
