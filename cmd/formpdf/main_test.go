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

package main

import (
	"strings"
	"testing"

	"seehuhn.de/go/formpdf"
)

func TestReadDocument(t *testing.T) {
	in := `{"title": "T", "sections": [{"title": "S", "fields": [
		{"fieldKey": "k", "label": "L", "required": true, "value": "v"},
		{"label": "M", "value": null}
	]}]}`
	doc, err := readDocument(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "T" || len(doc.Sections) != 1 || len(doc.Sections[0].Fields) != 2 {
		t.Fatalf("unexpected document %v", doc)
	}
	fields := doc.Sections[0].Fields
	if fields[0].Value != formpdf.Present("v") || !fields[0].Required {
		t.Errorf("wrong first field %v", fields[0])
	}
	if !fields[1].Value.IsMissing() {
		t.Errorf("wrong second field %v", fields[1])
	}

	_, err = formpdf.Render(doc, nil)
	if err != nil {
		t.Error(err)
	}
}

func TestReadDocumentErrors(t *testing.T) {
	inputs := []string{
		``,
		`{"title": "T"`,
		`{"title": "T", "colour": "red"}`,
		`{"title": "T"} {"title": "U"}`,
		`{"title": "T", "sections": [{"fields": [{"value": 7}]}]}`,
	}
	for _, in := range inputs {
		_, err := readDocument(strings.NewReader(in))
		if err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}
