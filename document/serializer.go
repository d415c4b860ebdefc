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
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/formpdf/font"
	"seehuhn.de/go/formpdf/graphics"
	"seehuhn.de/go/formpdf/layout"
	"seehuhn.de/go/formpdf/metadata"
	"seehuhn.de/go/formpdf/pdf"
)

// Serializer writes laid-out pages as a PDF file.
type Serializer struct {
	// Title, Subject and Producer are stored in the document information
	// dictionary and in the XMP metadata.
	Title    string
	Subject  string
	Producer string

	// HumanReadable disables compression of content streams, fonts and
	// metadata.
	HumanReadable bool

	// NoMetadata omits the XMP metadata stream.
	NoMetadata bool

	fonts *font.Arena
}

// NewSerializer returns a serializer for pages which use fonts from the
// given arena.  A nil arena is treated as an empty one.
func NewSerializer(fonts *font.Arena) *Serializer {
	if fonts == nil {
		fonts = font.NewArena()
	}
	return &Serializer{
		fonts: fonts,
	}
}

// Finalize converts the pages into a PDF file.
// If an error is returned, no partial output is returned.
func (s *Serializer) Finalize(pages []*layout.Page) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := s.Write(buf, pages)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the pages as a PDF file to out.
//
// All pages are validated and converted into content streams before the
// first byte is written, so that a [SerializationError] never leaves
// partial output behind.  Errors from out itself are returned unchanged.
func (s *Serializer) Write(out io.Writer, pages []*layout.Page) error {
	err := s.check(pages)
	if err != nil {
		return err
	}

	used := font.Usage{}
	contents := make([][]byte, len(pages))
	pageFonts := make([][]font.Handle, len(pages))
	for i, p := range pages {
		contents[i], pageFonts[i], err = s.content(p, used)
		if err != nil {
			return &SerializationError{Page: i + 1, Err: err}
		}
	}

	w, err := pdf.NewWriter(out, &pdf.WriterOptions{HumanReadable: s.HumanReadable})
	if err != nil {
		return err
	}

	catalogRef := w.Alloc()
	pagesRef := w.Alloc()

	// Each font is embedded once and shared by all pages which use it.
	fontRefs := make(map[font.Handle]pdf.Reference)
	for h := font.Handle(1); int(h) <= s.fonts.Len(); h++ {
		if !used.IsUsed(h) {
			continue
		}
		ref, err := s.fonts.Embed(w, h, used)
		if err != nil {
			return err
		}
		fontRefs[h] = ref
	}

	kids := make(pdf.Array, len(pages))
	for i, p := range pages {
		contentRef := w.Alloc()
		stm, err := w.OpenStream(contentRef, nil)
		if err != nil {
			return err
		}
		_, err = stm.Write(contents[i])
		if err != nil {
			return err
		}
		err = stm.Close()
		if err != nil {
			return err
		}

		resources := pdf.Dict{}
		if len(pageFonts[i]) > 0 {
			fonts := pdf.Dict{}
			for _, h := range pageFonts[i] {
				fonts[h.ResourceName()] = fontRefs[h]
			}
			resources["Font"] = fonts
		}

		pageRef, err := w.Write(pdf.Dict{
			"Type":      pdf.Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  pdf.Rectangle(p.Box),
			"Resources": resources,
			"Contents":  contentRef,
		})
		if err != nil {
			return err
		}
		kids[i] = pageRef
	}

	err = w.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(pages)),
	})
	if err != nil {
		return err
	}

	info := &metadata.Info{
		Title:    s.Title,
		Subject:  s.Subject,
		Producer: s.Producer,
	}
	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	if !s.NoMetadata {
		ref, err := metadata.Embed(w, info.Packet(), s.HumanReadable)
		if err != nil {
			return err
		}
		catalog["Metadata"] = ref
	}
	err = w.Put(catalogRef, catalog)
	if err != nil {
		return err
	}

	var infoRef pdf.Reference
	if infoDict := info.InfoDict(); len(infoDict) > 0 {
		infoRef, err = w.Write(infoDict)
		if err != nil {
			return err
		}
	}

	return w.Close(catalogRef, infoRef)
}

// content converts the drawing operations of a page into a content
// stream.  The character codes shown are recorded in used.  The second
// return value lists the fonts used on the page.
func (s *Serializer) content(p *layout.Page, used font.Usage) ([]byte, []font.Handle, error) {
	buf := &bytes.Buffer{}
	out := graphics.NewWriter(buf)

	var pageFonts []font.Handle
	for _, op := range p.Ops {
		switch op := op.(type) {
		case *layout.Text:
			face, _ := s.fonts.Face(op.Font)
			text := face.Encode(op.Text)
			if len(text) == 0 {
				continue
			}
			used.Add(op.Font, text)
			if !slices.Contains(pageFonts, op.Font) {
				pageFonts = append(pageFonts, op.Font)
			}

			out.SetFillColor(op.Color)
			out.TextStart()
			out.TextSetFont(op.Font.ResourceName(), op.Size)
			out.TextFirstLine(op.X, op.Y)
			out.TextShow(text)
			out.TextEnd()

		case *layout.Line:
			out.SetLineWidth(op.Width)
			out.SetStrokeColor(op.Color)
			out.MoveTo(op.X0, op.Y0)
			out.LineTo(op.X1, op.Y1)
			out.Stroke()

		default:
			return nil, nil, fmt.Errorf("unsupported drawing operation %T", op)
		}
	}

	err := out.Close()
	if err != nil {
		return nil, nil, err
	}
	slices.Sort(pageFonts)
	return buf.Bytes(), pageFonts, nil
}
