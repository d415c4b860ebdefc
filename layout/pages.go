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

package layout

import (
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/formpdf/font"
	"seehuhn.de/go/formpdf/graphics"
)

// Role describes the function of a text element within a document.
type Role uint8

// These are the roles of text elements.
const (
	RoleTitle Role = iota + 1
	RoleSubtitle
	RoleSection
	RoleLabel
	RoleValue
	RolePlaceholder
	RoleFooter
)

func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleSubtitle:
		return "subtitle"
	case RoleSection:
		return "section"
	case RoleLabel:
		return "label"
	case RoleValue:
		return "value"
	case RolePlaceholder:
		return "placeholder"
	case RoleFooter:
		return "footer"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Op is a drawing operation recorded on a page.
type Op interface {
	// Position returns the reference point of the operation in PDF user
	// space.  For text this is the start of the baseline.
	Position() (x, y float64)
}

// Text is a single line of text.
type Text struct {
	X, Y  float64
	Font  font.Handle
	Size  float64
	Color graphics.RGB
	Text  string
	Role  Role
}

// Position implements the [Op] interface.
func (t *Text) Position() (float64, float64) {
	return t.X, t.Y
}

// Line is a straight line segment.
type Line struct {
	X0, Y0 float64
	X1, Y1 float64
	Width  float64
	Color  graphics.RGB
}

// Position implements the [Op] interface.
func (l *Line) Position() (float64, float64) {
	return l.X0, l.Y0
}

// Page is one page of output.
// Drawing operations are appended to Ops in the order they were recorded.
type Page struct {
	Box rect.Rect
	Ops []Op

	closed bool
}

// Add appends a drawing operation to the page.
//
// Pages which are no longer active in their [Allocator] are closed.
// Writing to a closed page is a programming error and panics.
func (p *Page) Add(op Op) {
	if p.closed {
		panic("layout: write to closed page")
	}
	p.Ops = append(p.Ops, op)
}

// IsEmpty reports whether nothing has been drawn on the page yet.
func (p *Page) IsEmpty() bool {
	return len(p.Ops) == 0
}

// Texts returns the text elements on the page, in drawing order.
func (p *Page) Texts() []*Text {
	var res []*Text
	for _, op := range p.Ops {
		if t, ok := op.(*Text); ok {
			res = append(res, t)
		}
	}
	return res
}

// Allocator owns the ordered sequence of pages of a document.
// Pages are only ever appended, and page order equals creation order.
type Allocator struct {
	box   rect.Rect
	pages []*Page
}

// NewAllocator returns an allocator for pages of the given size.
// No page is created until one is requested.
func NewAllocator(box rect.Rect) *Allocator {
	return &Allocator{box: box}
}

// Box returns the page box used for new pages.
func (a *Allocator) Box() rect.Rect {
	return a.box
}

// CurrentPage returns the active page.
// The first page is created on demand.
func (a *Allocator) CurrentPage() *Page {
	if len(a.pages) == 0 {
		return a.NewPage()
	}
	return a.pages[len(a.pages)-1]
}

// NewPage closes the active page, appends a new page and makes it the
// active page.
func (a *Allocator) NewPage() *Page {
	if n := len(a.pages); n > 0 {
		a.pages[n-1].closed = true
	}
	p := &Page{Box: a.box}
	a.pages = append(a.pages, p)
	return p
}

// Pages returns all pages created so far.
func (a *Allocator) Pages() []*Page {
	return a.pages
}

// NumPages returns the number of pages created so far.
func (a *Allocator) NumPages() int {
	return len(a.pages)
}
