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

// Cursor tracks the vertical write position on the active page.
//
// The position y is the baseline of the next element, in PDF user space
// (the origin is at the bottom left of the page, so y decreases as
// content is added).  Callers reserve space for a unit of content with
// [Cursor.EnsureSpace] before drawing it, and move past the unit with
// [Cursor.Advance] afterwards.
type Cursor struct {
	alloc *Allocator
	page  *Page

	top, bottom float64
	y           float64
}

// NewCursor returns a cursor positioned at the top margin of the active
// page of alloc.
func NewCursor(alloc *Allocator, topMargin, bottomMargin float64) *Cursor {
	box := alloc.Box()
	c := &Cursor{
		alloc:  alloc,
		page:   alloc.CurrentPage(),
		top:    box.URy - topMargin,
		bottom: box.LLy + bottomMargin,
	}
	c.y = c.top
	return c
}

// EnsureSpace makes sure that a unit of height h fits between the cursor
// and the bottom margin.  If it does not, a new page is started and the
// cursor moves to the top margin of the new page.  The return value
// reports whether a page break occurred.
//
// A unit which does not fit on an empty page is placed there anyway,
// since starting another page would not help.
func (c *Cursor) EnsureSpace(h float64) bool {
	if c.y-h >= c.bottom || c.page.IsEmpty() {
		return false
	}
	c.page = c.alloc.NewPage()
	c.y = c.top
	return true
}

// Advance moves the cursor down by d.
// Negative amounts are ignored, and the cursor never moves below the
// bottom margin.
func (c *Cursor) Advance(d float64) {
	if !(d > 0) {
		return
	}
	c.y -= d
	if c.y < c.bottom {
		c.y = c.bottom
	}
}

// Y returns the current vertical position.
func (c *Cursor) Y() float64 {
	return c.y
}

// Page returns the page the cursor is on.
func (c *Cursor) Page() *Page {
	return c.page
}

// Remaining returns the vertical space between the cursor and the bottom
// margin.
func (c *Cursor) Remaining() float64 {
	return c.y - c.bottom
}
