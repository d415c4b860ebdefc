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

// Package layout places content onto fixed-size pages.
//
// An [Allocator] owns the sequence of pages of a document.  A [Cursor]
// tracks the current vertical position on the active page and starts a
// new page whenever the next unit of content would not fit above the
// bottom margin.  Pages record drawing operations ([Text] and [Line]) in
// PDF user space, which are turned into content streams later.
package layout
