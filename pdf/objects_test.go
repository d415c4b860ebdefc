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
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(-3), "-3"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{Number(2), "2"},
		{Number(0.25), "0.25"},
		{String("hello"), "(hello)"},
		{String("(x)"), "((x))"},
		{String("a(b"), `(a\(b)`},
		{String(`a\b`), `(a\\b)`},
		{String{0, 1, 2}, "<000102>"},
		{String("caf\xe9!"), `(caf\351!)`},
		{Name("F1"), "/F1"},
		{Name("A B"), "/A#20B"},
		{Name("a/b"), "/a#2fb"},
		{Array{Integer(1), Name("x"), nil}, "[1 /x null]"},
		{Array{}, "[]"},
		{Dict{"Type": Name("Page"), "A": Integer(1), "Z": nil}, "<<\n/A 1\n/Type /Page\n>>"},
		{Reference(12), "12 0 R"},
		{Reference(0), "null"},
		{Rectangle(rect.Rect{URx: 595.276, URy: 841.89}), "[0 0 595.276 841.89]"},
	}
	for _, test := range cases {
		out := Format(test.in)
		if out != test.out {
			t.Errorf("Format(%v) = %q, want %q", test.in, out, test.out)
		}
	}
}

func TestTextString(t *testing.T) {
	cases := []struct {
		in  string
		out String
	}{
		{"", String("")},
		{"Hello", String("Hello")},
		{"é", String{0xFE, 0xFF, 0x00, 0xE9}},
		{"a€", String{0xFE, 0xFF, 0x00, 'a', 0x20, 0xAC}},
	}
	for _, test := range cases {
		out := TextString(test.in)
		if string(out) != string(test.out) {
			t.Errorf("TextString(%q) = %x, want %x", test.in, out, test.out)
		}
	}
}

func TestRealInvalid(t *testing.T) {
	var zero float64
	err := Real(1 / zero).PDF(&discard{})
	if err == nil {
		t.Error("infinite real number was accepted")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
