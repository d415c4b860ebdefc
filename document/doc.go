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

// Package document turns laid-out pages into a PDF file.
//
// A [Serializer] validates the recorded drawing operations of all pages,
// converts them into content streams, embeds the fonts they use once,
// and writes the complete file.  Identical input always gives identical
// output.
package document
