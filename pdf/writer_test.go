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
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, opt *WriterOptions) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, opt)
	if err != nil {
		t.Fatal(err)
	}

	font, err := w.Write(Dict{
		"Type":     Name("Font"),
		"Subtype":  Name("Type1"),
		"BaseFont": Name("Helvetica"),
	})
	if err != nil {
		t.Fatal(err)
	}

	contentRef := w.Alloc()
	stm, err := w.OpenStream(contentRef, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = io.WriteString(stm, "BT\n/F1 24 Tf\n30 30 Td\n(Hello World) Tj\nET\n")
	if err != nil {
		t.Fatal(err)
	}
	err = stm.Close()
	if err != nil {
		t.Fatal(err)
	}

	pagesRef := w.Alloc()
	pageRef, err := w.Write(Dict{
		"Type":      Name("Page"),
		"Parent":    pagesRef,
		"MediaBox":  Array{Integer(0), Integer(0), Integer(200), Integer(100)},
		"Resources": Dict{"Font": Dict{"F1": font}},
		"Contents":  contentRef,
	})
	if err != nil {
		t.Fatal(err)
	}
	err = w.Put(pagesRef, Dict{
		"Type":  Name("Pages"),
		"Kids":  Array{pageRef},
		"Count": Integer(1),
	})
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := w.Write(Dict{
		"Type":  Name("Catalog"),
		"Pages": pagesRef,
	})
	if err != nil {
		t.Fatal(err)
	}

	err = w.Close(catalog, 0)
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestWriterStructure(t *testing.T) {
	for _, readable := range []bool{false, true} {
		t.Run(fmt.Sprintf("readable=%t", readable), func(t *testing.T) {
			data := writeTestFile(t, &WriterOptions{HumanReadable: readable})

			if !bytes.HasPrefix(data, []byte("%PDF-1.7\n")) {
				t.Errorf("wrong header %q", data[:10])
			}
			if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
				t.Errorf("missing %%EOF marker")
			}

			m := regexp.MustCompile(`startxref\n(\d+)\n`).FindSubmatch(data)
			if m == nil {
				t.Fatal("startxref not found")
			}
			xrefPos, _ := strconv.Atoi(string(m[1]))
			xref := string(data[xrefPos:])
			if !strings.HasPrefix(xref, "xref\n0 6\n") {
				t.Fatalf("unexpected xref header %q", xref[:12])
			}
			xref = xref[len("xref\n0 6\n"):]
			for i := 0; i < 6; i++ {
				entry := xref[20*i : 20*i+20]
				if i == 0 {
					if entry != "0000000000 65535 f\r\n" {
						t.Errorf("wrong entry 0: %q", entry)
					}
					continue
				}
				pos, err := strconv.Atoi(entry[:10])
				if err != nil {
					t.Fatal(err)
				}
				want := fmt.Sprintf("%d 0 obj\n", i)
				if !bytes.HasPrefix(data[pos:], []byte(want)) {
					t.Errorf("xref entry %d points to %q", i, data[pos:pos+len(want)])
				}
			}

			hasFilter := bytes.Contains(data, []byte("/Filter /FlateDecode"))
			if hasFilter == readable {
				t.Errorf("readable=%t, but /FlateDecode present=%t", readable, hasFilter)
			}
			if readable && !bytes.Contains(data, []byte("(Hello World) Tj")) {
				t.Error("content stream not stored verbatim")
			}
		})
	}
}

func TestWriterDeterministic(t *testing.T) {
	a := writeTestFile(t, nil)
	b := writeTestFile(t, nil)
	if !bytes.Equal(a, b) {
		t.Error("identical input produced different output")
	}
	if !bytes.Contains(a, []byte("/ID [<")) {
		t.Error("missing file identifier")
	}
}

func TestWriterErrors(t *testing.T) {
	w, err := NewWriter(io.Discard, nil)
	if err != nil {
		t.Fatal(err)
	}
	ref, err := w.Write(Integer(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Put(ref, Integer(2)); err == nil {
		t.Error("writing an object twice succeeded")
	}
	if err := w.Put(ref+10, Integer(2)); err == nil {
		t.Error("writing an unallocated object succeeded")
	}
	if err := w.Close(0, 0); err == nil {
		t.Error("closing without catalog succeeded")
	}
	if err := w.Close(ref, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(Integer(3)); err == nil {
		t.Error("writing after Close succeeded")
	}
}

func TestStreamCompression(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	ref := w.Alloc()
	dict := Dict{"Subtype": Name("Test")}
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		t.Fatal(err)
	}
	payload := strings.Repeat("0 0 m 10 10 l S\n", 50)
	_, err = io.WriteString(stm, payload)
	if err != nil {
		t.Fatal(err)
	}
	dict["Length1"] = Integer(42) // added after opening
	err = stm.Close()
	if err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	if !bytes.Contains(data, []byte("/Length1 42")) {
		t.Error("late dictionary entry was not written")
	}
	start := bytes.Index(data, []byte("stream\n")) + len("stream\n")
	end := bytes.Index(data, []byte("\nendstream"))
	zr, err := zlib.NewReader(bytes.NewReader(data[start:end]))
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if string(decoded) != payload {
		t.Error("stream data does not round-trip")
	}
}
