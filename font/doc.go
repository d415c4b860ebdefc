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

// Package font provides the TrueType fonts used for form documents.
//
// A [Face] wraps a parsed TrueType font and encodes text using the
// WinAnsi encoding, so that every font can be embedded as a simple PDF
// font.  An [Arena] collects the faces used by a document and embeds each
// of them exactly once, subsetted to the glyphs which were actually shown.
package font
