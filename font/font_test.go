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

package font

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/formpdf/pdf"
)

func TestEncode(t *testing.T) {
	f, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello", "Hello"},
		{"café", "caf\xe9"},
		{"5 €", "5 \x80"},
		{"a→b", "a?b"},
		{"tab\there", "tab?here"},
		{"line\nbreak", "line?break"},
		{"日本", "??"},
	}
	for _, c := range cases {
		got := string(f.Encode(c.in))
		if got != c.want {
			t.Errorf("Encode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestWidth(t *testing.T) {
	f, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}

	if w := f.Width("", 12); w != 0 {
		t.Errorf("width of empty string is %g", w)
	}

	a := f.Width("a", 10)
	b := f.Width("b", 10)
	if a <= 0 || b <= 0 {
		t.Fatalf("invalid widths %g, %g", a, b)
	}
	if ab := f.Width("ab", 10); math.Abs(ab-(a+b)) > 1e-9 {
		t.Errorf("Width(ab) = %g, want %g", ab, a+b)
	}
	if w20 := f.Width("Hello", 20); math.Abs(w20-2*f.Width("Hello", 10)) > 1e-9 {
		t.Errorf("width does not scale with font size")
	}
	if got, want := f.Width("→", 10), f.Width("?", 10); got != want {
		t.Errorf("width of replaced character is %g, want %g", got, want)
	}
}

func TestGoFontsCached(t *testing.T) {
	r1, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}
	r2, _ := GoRegular()
	if r1 != r2 {
		t.Error("GoRegular returned different faces")
	}
	b, err := GoBold()
	if err != nil {
		t.Fatal(err)
	}
	if b == r1 {
		t.Error("GoBold and GoRegular are the same face")
	}
	if b.PostScriptName() == r1.PostScriptName() {
		t.Errorf("both fonts are called %q", b.PostScriptName())
	}
	if f, _ := GoBold(); f.Width("M", 10) <= r1.Width("i", 10) {
		t.Error("unexpected glyph widths")
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load([]byte("not a font"))
	if err == nil {
		t.Error("expected an error")
	}
}

func TestArena(t *testing.T) {
	regular, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}
	bold, err := GoBold()
	if err != nil {
		t.Fatal(err)
	}

	a := NewArena()
	h1 := a.Add(regular)
	h2 := a.Add(bold)
	if h1 == h2 {
		t.Fatal("different faces share a handle")
	}
	if h := a.Add(regular); h != h1 {
		t.Errorf("adding a face twice gave handles %d and %d", h1, h)
	}
	if a.Len() != 2 {
		t.Errorf("arena has %d fonts, want 2", a.Len())
	}

	if f, ok := a.Face(h2); !ok || f != bold {
		t.Error("wrong face for handle")
	}
	for _, h := range []Handle{0, -1, 3} {
		if _, ok := a.Face(h); ok {
			t.Errorf("handle %d should be invalid", h)
		}
	}

	used := Usage{}
	if used.IsUsed(h1) {
		t.Error("font marked as used before any text was shown")
	}
	used.Add(h2, nil)
	used.Add(h1, regular.Encode("x"))
	if !used.IsUsed(h1) || used.IsUsed(h2) {
		t.Error("usage recorded for the wrong font")
	}

	if name := h2.ResourceName(); name != "F2" {
		t.Errorf("resource name is %q", name)
	}
}

func TestSubsetTag(t *testing.T) {
	gg := []glyph.ID{0, 5, 17, 3}
	tag := subsetTag(gg, 100)
	if len(tag) != 6 || strings.Trim(tag, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") != "" {
		t.Fatalf("malformed tag %q", tag)
	}
	if other := subsetTag([]glyph.ID{17, 3, 5, 0}, 100); other != tag {
		t.Errorf("tag depends on glyph order: %q != %q", other, tag)
	}
	if gg[1] != 5 {
		t.Error("subsetTag modified its argument")
	}
	if other := subsetTag([]glyph.ID{0, 5, 17, 4}, 100); other == tag {
		t.Errorf("different subsets share the tag %q", tag)
	}
}

func TestEmbed(t *testing.T) {
	regular, err := GoRegular()
	if err != nil {
		t.Fatal(err)
	}
	a := NewArena()
	h := a.Add(regular)

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, &pdf.WriterOptions{HumanReadable: true})
	if err != nil {
		t.Fatal(err)
	}

	used := Usage{}
	_, err = a.Embed(w, h, used)
	if err == nil {
		t.Error("embedding an unused font should fail")
	}
	_, err = a.Embed(w, 7, used)
	if err == nil {
		t.Error("embedding an invalid handle should fail")
	}

	used.Add(h, regular.Encode("Hello"))
	ref, err := a.Embed(w, h, used)
	if err != nil {
		t.Fatal(err)
	}
	if ref == 0 {
		t.Error("missing font reference")
	}

	out := buf.String()
	for _, want := range []string{
		"/Subtype /TrueType\n",
		"/Encoding /WinAnsiEncoding\n",
		"/FirstChar 72\n",
		"/LastChar 111\n",
		"/FontFile2 ",
		"/Length1 ",
		"+" + regular.PostScriptName(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}
