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

// Package formpdf renders structured form documents as PDF files.
//
// A [Document] consists of a title, a generation date and a sequence of
// sections, each holding labelled fields.  [Render] lays the document out
// onto fixed-size pages and returns the resulting PDF file:
//
//	doc := &formpdf.Document{
//	    Title:         "Contact Details",
//	    GeneratedDate: "2024-05-01",
//	    Sections: []formpdf.Section{
//	        {
//	            Title: "Personal",
//	            Fields: []formpdf.Field{
//	                {Label: "Name", Required: true, Value: formpdf.Present("Jane Doe")},
//	                {Label: "Email", Required: true},
//	            },
//	        },
//	    },
//	}
//	data, err := formpdf.Render(doc, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Fields without a value are shown with a muted placeholder text.  Page
// breaks never split a field, and the attribution footer is shown once,
// on the last page.  Rendering is deterministic: the same document and
// style always give the same bytes.
//
// Fonts, page size, spacing and colours are controlled by a [Style].
// The fonts are embedded into the output, so the files can be shown
// without access to external resources.
package formpdf
