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

package document

import (
	"strings"

	"seehuhn.de/go/geom/rect"
)

// Default paper sizes.
var (
	A4     = rect.Rect{URx: 595.276, URy: 841.890}
	A5     = rect.Rect{URx: 420.945, URy: 595.276}
	Letter = rect.Rect{URx: 612, URy: 792}
)

// PaperSize returns the paper size with the given name.
// The name is not case sensitive.
func PaperSize(name string) (rect.Rect, bool) {
	switch strings.ToLower(name) {
	case "a4":
		return A4, true
	case "a5":
		return A5, true
	case "letter":
		return Letter, true
	}
	return rect.Rect{}, false
}
