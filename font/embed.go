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
	"math"

	"golang.org/x/exp/slices"
	"golang.org/x/text/encoding/charmap"

	sfntcmap "seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/formpdf/pdf"
)

// Possible values for PDF Font Descriptor Flags.
const (
	flagFixedPitch  pdf.Integer = 1 << 0
	flagSerif       pdf.Integer = 1 << 1
	flagScript      pdf.Integer = 1 << 3
	flagNonsymbolic pdf.Integer = 1 << 5
	flagItalic      pdf.Integer = 1 << 6
)

// Embed writes font h to w, as a subsetted simple TrueType font with
// WinAnsi encoding.  Only the glyphs for the codes recorded for h in
// used are included.  The return value is the reference of the font
// dictionary.
//
// See section 9.6.3 of ISO 32000-2:2020.
func (a *Arena) Embed(w *pdf.Writer, h Handle, used Usage) (pdf.Reference, error) {
	f, ok := a.Face(h)
	if !ok {
		return 0, fmt.Errorf("font: invalid handle %d", h)
	}
	codes := used[h]
	if codes == nil {
		return 0, fmt.Errorf("font %q: no text shown", f.name)
	}

	first, last := -1, -1
	gids := []glyph.ID{0}
	for c, isUsed := range codes {
		if !isUsed {
			continue
		}
		if first < 0 {
			first = c
		}
		last = c
		gids = append(gids, f.gid[c])
	}
	if first < 0 {
		return 0, fmt.Errorf("font %q: no text shown", f.name)
	}
	slices.Sort(gids)
	gids = slices.Compact(gids)

	origTTF := f.ttf.Clone()
	origTTF.CMapTable = nil
	origTTF.Gdef = nil
	origTTF.Gsub = nil
	origTTF.Gpos = nil
	subsetTTF := origTTF.Subset(gids)

	// Viewers map WinAnsi codes to glyphs via the glyph names and a (3,1)
	// "cmap" subtable.
	cmap := sfntcmap.Format4{}
	for c, isUsed := range codes {
		if !isUsed || f.gid[c] == 0 {
			continue
		}
		newGID, _ := slices.BinarySearch(gids, f.gid[c])
		r := charmap.Windows1252.DecodeByte(byte(c))
		cmap[uint16(r)] = glyph.ID(newGID)
	}
	subsetTTF.CMapTable = sfntcmap.Table{
		{PlatformID: 3, EncodingID: 1}: cmap.Encode(0),
	}

	fontName := pdf.Name(subsetTag(gids, f.ttf.NumGlyphs()) + "+" + f.name)

	ww := make(pdf.Array, 0, last-first+1)
	for c := first; c <= last; c++ {
		ww = append(ww, pdf.Number(f.width[c]))
	}

	q := 1000 / float64(subsetTTF.UnitsPerEm)
	bbox := subsetTTF.FontBBoxPDF()

	flags := flagNonsymbolic
	if subsetTTF.IsFixedPitch() {
		flags |= flagFixedPitch
	}
	if subsetTTF.IsSerif {
		flags |= flagSerif
	}
	if subsetTTF.IsScript {
		flags |= flagScript
	}
	if subsetTTF.IsItalic {
		flags |= flagItalic
	}

	fontDictRef := w.Alloc()
	fontDescriptorRef := w.Alloc()
	fontFileRef := w.Alloc()

	fontDict := pdf.Dict{
		"Type":           pdf.Name("Font"),
		"Subtype":        pdf.Name("TrueType"),
		"BaseFont":       fontName,
		"FirstChar":      pdf.Integer(first),
		"LastChar":       pdf.Integer(last),
		"Widths":         ww,
		"FontDescriptor": fontDescriptorRef,
		"Encoding":       pdf.Name("WinAnsiEncoding"),
	}
	err := w.Put(fontDictRef, fontDict)
	if err != nil {
		return 0, err
	}

	fontDescriptor := pdf.Dict{
		"Type":     pdf.Name("FontDescriptor"),
		"FontName": fontName,
		"Flags":    flags,
		"FontBBox": pdf.Array{
			pdf.Number(math.Round(bbox.LLx)),
			pdf.Number(math.Round(bbox.LLy)),
			pdf.Number(math.Round(bbox.URx)),
			pdf.Number(math.Round(bbox.URy)),
		},
		"ItalicAngle": pdf.Number(math.Round(subsetTTF.ItalicAngle*10) / 10),
		"Ascent":      pdf.Number(math.Round(float64(subsetTTF.Ascent) * q)),
		"Descent":     pdf.Number(math.Round(float64(subsetTTF.Descent) * q)),
		"CapHeight":   pdf.Number(math.Round(float64(subsetTTF.CapHeight) * q)),
		"StemV":       pdf.Integer(0),
		"FontFile2":   fontFileRef,
	}
	err = w.Put(fontDescriptorRef, fontDescriptor)
	if err != nil {
		return 0, err
	}

	// See section 9.9 of ISO 32000-2:2020.
	fontFileDict := pdf.Dict{}
	stm, err := w.OpenStream(fontFileRef, fontFileDict)
	if err != nil {
		return 0, err
	}
	n, err := subsetTTF.WriteTrueTypePDF(stm)
	if err != nil {
		return 0, fmt.Errorf("font %q: %w", f.name, err)
	}
	fontFileDict["Length1"] = pdf.Integer(n)
	err = stm.Close()
	if err != nil {
		return 0, err
	}

	return fontDictRef, nil
}
