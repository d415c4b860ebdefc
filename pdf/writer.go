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
	"crypto/md5"
	"errors"
	"fmt"
	"hash"
	"io"
)

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// HumanReadable, if set, disables stream compression.
	HumanReadable bool
}

// Writer represents a PDF file open for writing.
// Use [NewWriter] to create a new Writer.
type Writer struct {
	w   *posWriter
	opt WriterOptions

	xref    map[Reference]int64
	nextRef Reference
	closed  bool
}

// NewWriter prepares a PDF file for writing.
// The file header is written immediately.
func NewWriter(w io.Writer, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}
	pdf := &Writer{
		w:       &posWriter{w: w, h: md5.New()},
		opt:     *opt,
		xref:    make(map[Reference]int64),
		nextRef: 1,
	}

	_, err := io.WriteString(pdf.w, "%PDF-1.7\n%\x80\x80\x80\x80\n")
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := pdf.nextRef
	pdf.nextRef++
	return ref
}

// Put writes obj to the PDF file as the indirect object ref.
// Each reference can be written only once.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	err := pdf.startObject(ref)
	if err != nil {
		return err
	}
	if obj == nil {
		_, err = io.WriteString(pdf.w, "null")
	} else {
		err = obj.PDF(pdf.w)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	return err
}

// Write allocates a new reference and writes obj as an indirect object.
func (pdf *Writer) Write(obj Object) (Reference, error) {
	ref := pdf.Alloc()
	err := pdf.Put(ref, obj)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

func (pdf *Writer) startObject(ref Reference) error {
	if pdf.closed {
		return errClosed
	}
	if ref == 0 || ref >= pdf.nextRef {
		return fmt.Errorf("invalid reference %s", ref)
	}
	if _, seen := pdf.xref[ref]; seen {
		return fmt.Errorf("%s: object already written", ref)
	}
	pdf.xref[ref] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d 0 obj\n", uint32(ref))
	return err
}

// OpenStream opens a stream which is written as the indirect object ref.
// The stream data is buffered and written to the file when the returned
// stream is closed.  The dictionary is only read at this time, so
// entries (for example /Length1) can be added to dict until the stream
// is closed.  The /Length and /Filter entries are filled in automatically.
func (pdf *Writer) OpenStream(ref Reference, dict Dict) (io.WriteCloser, error) {
	if pdf.closed {
		return nil, errClosed
	}
	if dict == nil {
		dict = Dict{}
	}
	return &streamWriter{pdf: pdf, ref: ref, dict: dict}, nil
}

type streamWriter struct {
	pdf  *Writer
	ref  Reference
	dict Dict
	buf  bytes.Buffer

	closed bool
}

func (s *streamWriter) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errors.New("write to closed stream")
	}
	return s.buf.Write(p)
}

func (s *streamWriter) Close() error {
	if s.closed {
		return errors.New("stream already closed")
	}
	s.closed = true

	data := s.buf.Bytes()
	dict := make(Dict, len(s.dict)+2)
	for key, val := range s.dict {
		dict[key] = val
	}
	if !s.pdf.opt.HumanReadable {
		var err error
		data, err = flateEncode(data)
		if err != nil {
			return err
		}
		dict["Filter"] = Name("FlateDecode")
	}
	dict["Length"] = Integer(len(data))

	w := s.pdf.w
	err := s.pdf.startObject(s.ref)
	if err != nil {
		return err
	}
	err = dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nstream\n")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\nendstream\nendobj\n")
	return err
}

// Close writes the cross-reference table and the trailer.
// Root is the reference of the document catalog and info, if non-zero, the
// reference of the document information dictionary.
//
// The file identifier in the trailer is derived from the contents of the
// file, so that identical input gives identical output.
func (pdf *Writer) Close(root, info Reference) error {
	if pdf.closed {
		return errClosed
	}
	if root == 0 {
		return errors.New("missing /Root")
	}
	if _, ok := pdf.xref[root]; !ok {
		return fmt.Errorf("/Root %s was never written", root)
	}

	id := String(pdf.w.h.Sum(nil))
	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": root,
		"ID":   Array{id, id},
	}
	if info != 0 {
		trailer["Info"] = info
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}
	pdf.closed = true
	return nil
}

var errClosed = errors.New("pdf writer is closed")

// posWriter keeps track of the number of bytes written,
// and feeds all data into a hash for the file identifier.
type posWriter struct {
	w   io.Writer
	h   hash.Hash
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.h.Write(p[:n])
	w.pos += int64(n)
	return n, err
}
