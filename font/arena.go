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

package font

import (
	"fmt"

	"seehuhn.de/go/formpdf/pdf"
)

// Handle refers to a font registered in an [Arena].
// The zero Handle is not valid.
type Handle int

// ResourceName returns the name under which the font is listed in the
// resource dictionaries of pages.
func (h Handle) ResourceName() pdf.Name {
	return pdf.Name(fmt.Sprintf("F%d", int(h)))
}

// Arena holds the fonts of one document.
//
// Pages refer to fonts by [Handle].  Each font in the arena is embedded
// into the output file once, and all pages share the embedded copy.
type Arena struct {
	faces []*Face
}

// NewArena allocates a new, empty font arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add registers a font with the arena and returns its handle.
// Adding the same face twice returns the same handle.
func (a *Arena) Add(f *Face) Handle {
	for i, g := range a.faces {
		if g == f {
			return Handle(i + 1)
		}
	}
	a.faces = append(a.faces, f)
	return Handle(len(a.faces))
}

// Face returns the font for handle h.
// The second return value is false if h is not registered in the arena.
func (a *Arena) Face(h Handle) (*Face, bool) {
	if h < 1 || int(h) > len(a.faces) {
		return nil, false
	}
	return a.faces[h-1], true
}

// Len returns the number of fonts in the arena.
func (a *Arena) Len() int {
	return len(a.faces)
}

// Usage records which character codes are shown with each font.
// Only the glyphs for used codes are included when a font is embedded.
type Usage map[Handle]*[256]bool

// Add records that the character codes in s are shown using font h.
func (u Usage) Add(h Handle, s pdf.String) {
	if len(s) == 0 {
		return
	}
	codes := u[h]
	if codes == nil {
		codes = &[256]bool{}
		u[h] = codes
	}
	for _, c := range s {
		codes[c] = true
	}
}

// IsUsed reports whether any text is shown using font h.
func (u Usage) IsUsed(h Handle) bool {
	return u[h] != nil
}
