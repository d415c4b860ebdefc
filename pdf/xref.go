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

package pdf

import (
	"fmt"
	"io"
)

// writeXRefTable writes a classic cross-reference table, followed by the
// trailer dictionary.  Object numbers which were allocated but never
// written are marked as free.
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", uint32(pdf.nextRef))
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
	if err != nil {
		return err
	}
	for ref := Reference(1); ref < pdf.nextRef; ref++ {
		pos, ok := pdf.xref[ref]
		if ok {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		} else {
			_, err = io.WriteString(pdf.w, "0000000000 00001 f\r\n")
		}
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}
