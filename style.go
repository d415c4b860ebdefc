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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/formpdf/document"
	"seehuhn.de/go/formpdf/font"
	"seehuhn.de/go/formpdf/graphics"
)

// Style describes the geometry, fonts and colours used to render a
// document.  All lengths are in PDF units (1/72 inch).
//
// A Style is not modified during rendering, so one Style can be shared
// between concurrent calls to [Render].
type Style struct {
	PageSize rect.Rect

	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	Regular *font.Face
	Bold    *font.Face

	// LineHeight is the distance between the baselines of a field label
	// and its value.
	LineHeight float64

	// FieldGap is the extra space after each field.
	FieldGap float64

	// SectionGap is the space between the last field of a section and the
	// next section title.
	SectionGap float64

	TitleSize  float64
	TitleColor graphics.RGB
	TitleGap   float64

	SubtitlePrefix string
	SubtitleSize   float64
	SubtitleColor  graphics.RGB
	SubtitleGap    float64

	SectionSize  float64
	SectionColor graphics.RGB

	// The separator is drawn one line below the section title.
	// SeparatorRaise is the extra space between the separator and the
	// first field, in addition to one line.
	SeparatorRaise float64
	SeparatorWidth float64
	SeparatorColor graphics.RGB

	LabelSize      float64
	LabelColor     graphics.RGB
	RequiredMarker string

	ValueSize        float64
	ValueColor       graphics.RGB
	ValueIndent      float64
	Placeholder      string
	PlaceholderColor graphics.RGB

	FooterText  string
	FooterSize  float64
	FooterColor graphics.RGB

	// FooterY is the baseline of the footer, measured from the bottom
	// of the page.
	FooterY float64
}

// DefaultStyle returns the default style: A4 paper, the Go fonts and the
// FormEase colour scheme.
func DefaultStyle() (*Style, error) {
	regular, err := font.GoRegular()
	if err != nil {
		return nil, err
	}
	bold, err := font.GoBold()
	if err != nil {
		return nil, err
	}

	s := &Style{
		PageSize: document.A4,

		MarginLeft:   50,
		MarginRight:  50,
		MarginTop:    50,
		MarginBottom: 50,

		Regular: regular,
		Bold:    bold,

		LineHeight: 20,
		FieldGap:   10,
		SectionGap: 30,

		TitleSize:  24,
		TitleColor: graphics.DeviceRGB(0, 0, 0.5),
		TitleGap:   40,

		SubtitlePrefix: "Generated on ",
		SubtitleSize:   12,
		SubtitleColor:  graphics.Gray(0.4),
		SubtitleGap:    30,

		SectionSize:  16,
		SectionColor: graphics.DeviceRGB(0, 0, 0.7),

		SeparatorRaise: 5,
		SeparatorWidth: 1,
		SeparatorColor: graphics.Gray(0.7),

		LabelSize:      12,
		LabelColor:     graphics.Gray(0.3),
		RequiredMarker: " *",

		ValueSize:        12,
		ValueColor:       graphics.Gray(0),
		ValueIndent:      20,
		Placeholder:      "Not provided",
		PlaceholderColor: graphics.Gray(0.6),

		FooterText:  "FormEase - AI-Powered Form Assistant",
		FooterSize:  10,
		FooterColor: graphics.Gray(0.5),
		FooterY:     30,
	}
	return s, nil
}

// WithPageSize returns a copy of s which uses the given page size.
func (s *Style) WithPageSize(box rect.Rect) *Style {
	res := *s
	res.PageSize = box
	return &res
}

// sectionHeaderHeight is the space reserved for a section title together
// with its separator line.
func (s *Style) sectionHeaderHeight() float64 {
	return 2*s.LineHeight + s.SeparatorRaise
}

// fieldHeight is the space reserved for a field label, its value and the
// gap below.
func (s *Style) fieldHeight() float64 {
	return 2*s.LineHeight + s.FieldGap
}

// check verifies that s describes a usable style.
func (s *Style) check() error {
	box := s.PageSize
	if !isFinite(box.LLx, box.LLy, box.URx, box.URy) || box.Dx() <= 0 || box.Dy() <= 0 {
		return fmt.Errorf("%w: page size %v", ErrInvalidStyle, box)
	}

	margins := []float64{s.MarginLeft, s.MarginRight, s.MarginTop, s.MarginBottom}
	for _, m := range margins {
		if !isFinite(m) || m < 0 {
			return fmt.Errorf("%w: margin %g", ErrInvalidStyle, m)
		}
	}
	if s.MarginLeft+s.MarginRight >= box.Dx() || s.MarginTop+s.MarginBottom >= box.Dy() {
		return fmt.Errorf("%w: margins leave no space for content", ErrInvalidStyle)
	}

	if s.Regular == nil || s.Bold == nil {
		return fmt.Errorf("%w: missing font", ErrInvalidStyle)
	}

	sizes := []float64{s.TitleSize, s.SubtitleSize, s.SectionSize, s.LabelSize, s.ValueSize, s.FooterSize}
	for _, size := range sizes {
		if !isFinite(size) || size <= 0 {
			return fmt.Errorf("%w: font size %g", ErrInvalidStyle, size)
		}
	}

	lengths := []float64{
		s.LineHeight, s.FieldGap, s.SectionGap, s.TitleGap, s.SubtitleGap,
		s.SeparatorRaise, s.SeparatorWidth, s.ValueIndent, s.FooterY,
	}
	for _, l := range lengths {
		if !isFinite(l) || l < 0 {
			return fmt.Errorf("%w: length %g", ErrInvalidStyle, l)
		}
	}
	if s.LineHeight <= 0 {
		return fmt.Errorf("%w: line height %g", ErrInvalidStyle, s.LineHeight)
	}
	if s.TitleGap <= 0 || s.SubtitleGap <= 0 {
		return fmt.Errorf("%w: heading gaps %g and %g", ErrInvalidStyle, s.TitleGap, s.SubtitleGap)
	}
	if s.SectionGap < s.FieldGap {
		return fmt.Errorf("%w: section gap %g is smaller than field gap %g",
			ErrInvalidStyle, s.SectionGap, s.FieldGap)
	}

	colors := []graphics.RGB{
		s.TitleColor, s.SubtitleColor, s.SectionColor, s.SeparatorColor,
		s.LabelColor, s.ValueColor, s.PlaceholderColor, s.FooterColor,
	}
	for _, c := range colors {
		if !c.Valid() {
			return fmt.Errorf("%w: color %s", ErrInvalidStyle, c)
		}
	}
	return nil
}

func isFinite(xx ...float64) bool {
	for _, x := range xx {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
