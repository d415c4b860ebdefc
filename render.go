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

package formpdf

import (
	"bytes"
	"io"
	"strings"

	"seehuhn.de/go/formpdf/document"
	"seehuhn.de/go/formpdf/font"
	"seehuhn.de/go/formpdf/graphics"
	"seehuhn.de/go/formpdf/layout"
)

// Producer is stored as the producer in the metadata of all generated
// files.
const Producer = "seehuhn.de/go/formpdf"

// Options control how a document is rendered.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Style is the style used for rendering.  If this is nil, the result
	// of [DefaultStyle] is used.
	Style *Style

	// HumanReadable disables compression, so that the content of the PDF
	// file can be inspected with a text editor.
	HumanReadable bool

	// NoMetadata omits the XMP metadata stream.  The document information
	// dictionary is always included.
	NoMetadata bool
}

// Render lays out doc and returns the resulting PDF file.
//
// An [*InvalidDocumentError] is returned if the document has no title or
// if the style is unusable.  Rendering either succeeds completely or
// returns no data.
func Render(doc *Document, opt *Options) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := Write(buf, doc, opt)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write lays out doc and writes the resulting PDF file to w.
//
// All checks are performed before the first byte is written, so that
// invalid input never leads to partial output.
func Write(w io.Writer, doc *Document, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}

	ps, err := Layout(doc, opt.Style)
	if err != nil {
		return err
	}

	s := document.NewSerializer(ps.Fonts)
	s.Title = doc.Title
	s.Subject = ps.Subtitle
	s.Producer = Producer
	s.HumanReadable = opt.HumanReadable
	s.NoMetadata = opt.NoMetadata
	return s.Write(w, ps.Pages)
}

// PageSet is a document which has been laid out onto pages.
type PageSet struct {
	Pages []*layout.Page
	Fonts *font.Arena

	// Subtitle is the generation stamp shown below the title.
	Subtitle string
}

// Layout places the content of doc onto pages, without generating PDF
// output.  If style is nil, the result of [DefaultStyle] is used.
//
// The output consists of the title and subtitle, all sections in order
// and finally the footer on the last page.  A page break is inserted
// whenever a field or a section header does not fit onto the current
// page, so that these units are never split.
func Layout(doc *Document, style *Style) (*PageSet, error) {
	if doc == nil {
		return nil, &InvalidDocumentError{Err: ErrNoDocument}
	}
	if doc.Title == "" {
		return nil, &InvalidDocumentError{Err: ErrEmptyTitle}
	}
	if style == nil {
		var err error
		style, err = DefaultStyle()
		if err != nil {
			return nil, err
		}
	}
	err := style.check()
	if err != nil {
		return nil, &InvalidDocumentError{Err: err}
	}

	r := newRenderer(style)
	subtitle := strings.TrimSpace(style.SubtitlePrefix + doc.GeneratedDate)
	r.heading(doc.Title, subtitle)
	for i := range doc.Sections {
		r.section(&doc.Sections[i])
	}
	r.footer()

	res := &PageSet{
		Pages:    r.alloc.Pages(),
		Fonts:    r.fonts,
		Subtitle: subtitle,
	}
	return res, nil
}

// renderer holds the state of a single layout pass.
type renderer struct {
	style  *Style
	alloc  *layout.Allocator
	cursor *layout.Cursor
	fonts  *font.Arena

	regular font.Handle
	bold    font.Handle

	left, right float64
}

func newRenderer(style *Style) *renderer {
	alloc := layout.NewAllocator(style.PageSize)
	fonts := font.NewArena()
	box := style.PageSize
	return &renderer{
		style:   style,
		alloc:   alloc,
		cursor:  layout.NewCursor(alloc, style.MarginTop, style.MarginBottom),
		fonts:   fonts,
		regular: fonts.Add(style.Regular),
		bold:    fonts.Add(style.Bold),
		left:    box.LLx + style.MarginLeft,
		right:   box.URx - style.MarginRight,
	}
}

// text draws a line of text on the current line.
func (r *renderer) text(x float64, f font.Handle, size float64, col graphics.RGB, s string, role layout.Role) {
	r.cursor.Page().Add(&layout.Text{
		X:     x,
		Y:     r.cursor.Y(),
		Font:  f,
		Size:  size,
		Color: col,
		Text:  s,
		Role:  role,
	})
}

// heading draws the document title and the subtitle.  Long titles are not
// wrapped and may extend past the right margin.
func (r *renderer) heading(title, subtitle string) {
	s := r.style
	r.text(r.left, r.bold, s.TitleSize, s.TitleColor, title, layout.RoleTitle)
	r.cursor.Advance(s.TitleGap)

	r.text(r.left, r.regular, s.SubtitleSize, s.SubtitleColor, subtitle, layout.RoleSubtitle)
	r.cursor.Advance(s.SubtitleGap)
}

// section draws a section header followed by the fields of the section.
// The header is kept together as one unit, while each field is checked
// separately.
func (r *renderer) section(sec *Section) {
	s := r.style

	r.cursor.EnsureSpace(s.sectionHeaderHeight())
	r.text(r.left, r.bold, s.SectionSize, s.SectionColor, sec.Title, layout.RoleSection)
	r.cursor.Advance(s.LineHeight + s.SeparatorRaise)

	y := r.cursor.Y() + s.SeparatorRaise
	r.cursor.Page().Add(&layout.Line{
		X0:    r.left,
		Y0:    y,
		X1:    r.right,
		Y1:    y,
		Width: s.SeparatorWidth,
		Color: s.SeparatorColor,
	})
	r.cursor.Advance(s.LineHeight)

	for i := range sec.Fields {
		r.field(&sec.Fields[i])
	}

	r.cursor.Advance(s.SectionGap - s.FieldGap)
}

// field draws a label and the corresponding value.
// Both lines always end up on the same page.
func (r *renderer) field(f *Field) {
	s := r.style

	r.cursor.EnsureSpace(s.fieldHeight())

	label := f.Label
	if f.Required {
		label += s.RequiredMarker
	}
	r.text(r.left, r.bold, s.LabelSize, s.LabelColor, label, layout.RoleLabel)
	r.cursor.Advance(s.LineHeight)

	x := r.left + s.ValueIndent
	if text, ok := f.Value.Text(); ok {
		r.text(x, r.regular, s.ValueSize, s.ValueColor, text, layout.RoleValue)
	} else {
		r.text(x, r.regular, s.ValueSize, s.PlaceholderColor, s.Placeholder, layout.RolePlaceholder)
	}
	r.cursor.Advance(s.LineHeight + s.FieldGap)
}

// footer draws the attribution line centred at the bottom of the last
// page.  This does not use the cursor and never causes a page break.
func (r *renderer) footer() {
	s := r.style
	if s.FooterText == "" {
		return
	}

	box := s.PageSize
	width := s.Regular.Width(s.FooterText, s.FooterSize)
	r.alloc.CurrentPage().Add(&layout.Text{
		X:     box.LLx + (box.Dx()-width)/2,
		Y:     box.LLy + s.FooterY,
		Font:  r.regular,
		Size:  s.FooterSize,
		Color: s.FooterColor,
		Text:  s.FooterText,
		Role:  layout.RoleFooter,
	})
}
