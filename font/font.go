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
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"
	"unicode"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/formpdf/pdf"
)

// Replacement is the character code used for characters which cannot be
// shown using the WinAnsi encoding.
const Replacement = '?'

// firstChar is the smallest character code used for text.
// Codes below this value are control characters in WinAnsi.
const firstChar = 32

// Face is a TrueType font, prepared for use as a simple PDF font with
// WinAnsi encoding.
//
// A Face is immutable after creation and can be shared between concurrent
// renders.
type Face struct {
	ttf  *sfnt.Font
	name string

	gid   [256]glyph.ID
	width [256]float64 // PDF glyph space units
}

// Load parses a TrueType font file.
func Load(data []byte) (*Face, error) {
	ttf, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	if !ttf.IsGlyf() {
		return nil, errors.New("font: not a TrueType font")
	}
	cmap, err := ttf.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("font: cmap: %w", err)
	}

	f := &Face{
		ttf:  ttf,
		name: ttf.PostScriptName(),
	}
	notdefWidth := math.Round(ttf.GlyphWidthPDF(0))
	for c := range 256 {
		f.width[c] = notdefWidth
		if c < firstChar {
			continue
		}
		r := charmap.Windows1252.DecodeByte(byte(c))
		if !isPrintable(r) {
			continue
		}
		gid := cmap.Lookup(r)
		if gid == 0 {
			continue
		}
		f.gid[c] = gid
		f.width[c] = math.Round(ttf.GlyphWidthPDF(gid))
	}
	if f.gid[Replacement] == 0 {
		return nil, fmt.Errorf("font %q: no glyph for %q", f.name, Replacement)
	}
	return f, nil
}

// PostScriptName returns the PostScript name of the font.
func (f *Face) PostScriptName() string {
	return f.name
}

// Encode converts s to a PDF string in WinAnsi encoding.
// Characters which are not part of the encoding, or for which the font
// has no glyph, are replaced by [Replacement].
func (f *Face) Encode(s string) pdf.String {
	res := make(pdf.String, 0, len(s))
	for _, r := range s {
		c := byte(Replacement)
		if isPrintable(r) {
			if b, ok := charmap.Windows1252.EncodeRune(r); ok && f.gid[b] != 0 {
				c = b
			}
		}
		res = append(res, c)
	}
	return res
}

// Width returns the advance width of s when set at the given font size,
// in PDF user space units.
func (f *Face) Width(s string, size float64) float64 {
	var w float64
	for _, c := range f.Encode(s) {
		w += f.width[c]
	}
	return w * size / 1000
}

// CodeWidth returns the width of the glyph for character code c, in PDF
// glyph space units.
func (f *Face) CodeWidth(c byte) float64 {
	return f.width[c]
}

func isPrintable(r rune) bool {
	return r != unicode.ReplacementChar && !unicode.IsControl(r)
}

var (
	goRegular = sync.OnceValues(func() (*Face, error) {
		return Load(goregular.TTF)
	})
	goBold = sync.OnceValues(func() (*Face, error) {
		return Load(gobold.TTF)
	})
)

// GoRegular returns the Go Regular font.
// The font is parsed on first use and shared afterwards.
func GoRegular() (*Face, error) {
	return goRegular()
}

// GoBold returns the Go Bold font.
// The font is parsed on first use and shared afterwards.
func GoBold() (*Face, error) {
	return goBold()
}
