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

package graphics

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/formpdf/pdf"
)

func TestWriterOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.SetFillColor(DeviceRGB(0, 0, 0.5))
	w.TextStart()
	w.TextSetFont("F1", 24)
	w.TextFirstLine(50, 791.89)
	w.TextShow(pdf.String("Hi"))
	w.TextEnd()

	w.SetFillColor(DeviceRGB(0, 0, 0.5)) // no-op
	w.TextStart()
	w.TextSetFont("F1", 24) // no-op
	w.TextFirstLine(50, 751.89)
	w.TextShow(pdf.String("(x)"))
	w.TextEnd()

	w.SetLineWidth(1)
	w.SetStrokeColor(Gray(0.7))
	w.MoveTo(50, 700)
	w.LineTo(545.276, 700)
	w.Stroke()

	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	want := `0 0 .5 rg
BT
/F1 24 Tf
50 791.89 Td
(Hi) Tj
ET
BT
50 751.89 Td
((x)) Tj
ET
1 w
.7 .7 .7 RG
50 700 m
545.276 700 l
S
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("content stream mismatch (-want +got):\n%s", d)
	}
}

func TestWriterErrors(t *testing.T) {
	type testCase struct {
		name string
		ops  func(w *Writer)
	}
	cases := []testCase{
		{"show outside text", func(w *Writer) {
			w.TextShow(pdf.String("x"))
		}},
		{"show without font", func(w *Writer) {
			w.TextStart()
			w.TextShow(pdf.String("x"))
		}},
		{"line without move", func(w *Writer) {
			w.LineTo(1, 2)
		}},
		{"invalid fill color", func(w *Writer) {
			w.SetFillColor(DeviceRGB(0, 1.5, 0))
		}},
		{"invalid stroke color", func(w *Writer) {
			w.SetStrokeColor(Gray(-0.1))
		}},
		{"negative line width", func(w *Writer) {
			w.SetLineWidth(-1)
		}},
		{"unterminated text", func(w *Writer) {
			w.TextStart()
		}},
		{"unterminated path", func(w *Writer) {
			w.MoveTo(0, 0)
			w.LineTo(1, 1)
		}},
		{"nested text", func(w *Writer) {
			w.TextStart()
			w.TextStart()
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWriter(&bytes.Buffer{})
			c.ops(w)
			if w.Close() == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestStickyError(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.LineTo(1, 1)
	if w.Err == nil {
		t.Fatal("expected an error")
	}
	w.SetFillColor(Gray(0))
	if buf.Len() != 0 {
		t.Errorf("unexpected output after error: %q", buf.String())
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, ".5"},
		{-0.5, "-.5"},
		{1e-9, "0"},
		{-0.0001, "0"},
		{841.89, "841.89"},
		{595.276 - 50, "545.276"},
		{10, "10"},
		{-12.25, "-12.25"},
	}
	for _, c := range cases {
		got := format(c.in, 3)
		if got != c.want {
			t.Errorf("format(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRGBValid(t *testing.T) {
	valid := []RGB{Gray(0), Gray(1), DeviceRGB(0, 0, 0.7)}
	for _, c := range valid {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	invalid := []RGB{Gray(1.01), DeviceRGB(-1, 0, 0), DeviceRGB(0, 0, 2)}
	for _, c := range invalid {
		if c.Valid() {
			t.Errorf("%s should be invalid", c)
		}
	}
}
