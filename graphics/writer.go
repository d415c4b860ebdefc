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
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/formpdf/pdf"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content io.Writer
	Err     error

	State

	currentObject objectType
}

// State holds the parts of the graphics state tracked by a [Writer].
type State struct {
	FillColor   RGB
	StrokeColor RGB
	LineWidth   float64
	Font        pdf.Name
	FontSize    float64

	// Set records which of the fields above have been set
	// in the current content stream.
	Set StateBits
}

// StateBits is used to indicate which fields of a [State] are valid.
type StateBits uint8

// Possible values for [StateBits].
const (
	StateFillColor StateBits = 1 << iota
	StateStrokeColor
	StateLineWidth
	StateFont
)

type objectType byte

// The graphics objects of a content stream.
// See figure 9 in section 8.2 of ISO 32000-2:2020.
const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	var parts []string
	if s&objPage != 0 {
		parts = append(parts, "page")
	}
	if s&objPath != 0 {
		parts = append(parts, "path")
	}
	if s&objText != 0 {
		parts = append(parts, "text")
	}
	if len(parts) == 0 {
		return fmt.Sprintf("objectType(%d)", byte(s))
	}
	return strings.Join(parts, "|")
}

// NewWriter allocates a new Writer which writes the content stream to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		currentObject: objPage,
	}
}

// Close checks that all text and path objects have been completed.
// It returns the first error encountered while writing the stream.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if w.currentObject != objPage {
		return fmt.Errorf("content stream ends inside %s object", w.currentObject)
	}
	return nil
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) isSet(bits StateBits) bool {
	return w.Set&bits == bits
}

func (w *Writer) coord(x float64) string {
	return format(x, 3)
}

// format formats a number for use in a content stream, using at most
// precision digits after the decimal point.
func format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	if out == "-0" {
		out = "0"
	}
	if strings.HasPrefix(out, "0.") {
		out = out[1:]
	} else if strings.HasPrefix(out, "-0.") {
		out = "-" + out[2:]
	}
	return out
}

func nearlyEqual(a, b float64) bool {
	const eps = 1e-6
	return a-b < eps && b-a < eps
}
