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
	"errors"
	"fmt"

	"seehuhn.de/go/formpdf/pdf"
)

// This file implements the text-related PDF operators used for
// positioned single-line text runs.  The operators are defined in tables
// 103, 105, 106 and 107 of ISO 32000-2:2020.

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.
// The font is identified by its name in the resource dictionary of the
// page.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name pdf.Name, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}
	if name == "" {
		w.Err = errors.New("TextSetFont: missing font name")
		return
	}
	if w.isSet(StateFont) && w.Font == name && nearlyEqual(w.FontSize, size) {
		return
	}

	w.Font = name
	w.FontSize = size
	w.Set |= StateFont

	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", w.coord(size), "Tf")
}

// TextFirstLine moves to the start of the first line of text.
// Inside a fresh text object, this places the text origin at (x, y).
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(x, y float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "Td")
}

// TextShow draws the already encoded string s at the current text
// position.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShow(s pdf.String) {
	if !w.isValid("TextShow", objText) {
		return
	}
	if !w.isSet(StateFont) {
		w.Err = errors.New("TextShow: no font set")
		return
	}

	w.Err = s.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}
