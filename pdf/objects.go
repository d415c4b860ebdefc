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
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"seehuhn.de/go/geom/rect"
)

// Object represents an object in a PDF file.  The native types of PDF
// objects implemented here are Array, Bool, Dict, Integer, Name, Real,
// Reference, and String.  Streams are written using [Writer.OpenStream].
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the [Object] interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := io.WriteString(w, s)
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the [Object] interface.
func (x Integer) PDF(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(x), 10))
	return err
}

// Real represents a real number in a PDF file.
type Real float64

// PDF implements the [Object] interface.
func (x Real) PDF(w io.Writer) error {
	if math.IsInf(float64(x), 0) || math.IsNaN(float64(x)) {
		return fmt.Errorf("invalid real number %g", float64(x))
	}
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := io.WriteString(w, s)
	return err
}

// Number returns x as an Integer, if x has no fractional part, and as a
// Real otherwise.
func Number(x float64) Object {
	if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
		return Integer(x)
	}
	return Real(x)
}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context.
type String []byte

// PDF implements the [Object] interface.
func (x String) PDF(w io.Writer) error {
	l := []byte(x)

	level := 0
	for _, c := range l {
		if c == '(' {
			level++
		} else if c == ')' {
			level--
			if level < 0 {
				break
			}
		}
	}
	balanced := level == 0

	var funny []int
	for i, c := range l {
		if c == '\n' || c == '\t' {
			continue
		}
		if c < 32 || c >= 127 || c == '\\' ||
			!balanced && (c == '(' || c == ')') {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	if 3*len(funny) <= n {
		buf.WriteString("(")
		pos := 0
		for _, i := range funny {
			if pos < i {
				buf.Write(l[pos:i])
			}
			c := l[i]
			switch c {
			case '\r':
				buf.WriteString(`\r`)
			case '\b':
				buf.WriteString(`\b`)
			case '\f':
				buf.WriteString(`\f`)
			case '(':
				buf.WriteString(`\(`)
			case ')':
				buf.WriteString(`\)`)
			case '\\':
				buf.WriteString(`\\`)
			default:
				fmt.Fprintf(buf, `\%03o`, c)
			}
			pos = i + 1
		}
		if pos < n {
			buf.Write(l[pos:n])
		}
		buf.WriteString(")")
	} else {
		fmt.Fprintf(buf, "<%x>", l)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// TextString creates a String object using the "text string" encoding.
// Printable ASCII is stored as is, everything else uses UTF-16BE with a
// byte order mark.
func TextString(s string) String {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] < 32 || s[i] >= 127 {
			ascii = false
			break
		}
	}
	if ascii {
		return String(s)
	}

	enc := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(enc)+2)
	buf[0] = 0xFE
	buf[1] = 0xFF
	for i, c := range enc {
		buf[2*i+2] = byte(c >> 8)
		buf[2*i+3] = byte(c)
	}
	return String(buf)
}

// Name represents a name in a PDF file.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF(w io.Writer) error {
	l := []byte(x)

	buf := &bytes.Buffer{}
	buf.WriteString("/")
	for _, c := range l {
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// Array represent an array of objects in a PDF file.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// PDF implements the [Object] interface.
func (x Array) PDF(w io.Writer) error {
	_, err := io.WriteString(w, "[")
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err := io.WriteString(w, " ")
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = io.WriteString(w, "null")
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "]")
	return err
}

// Dict represent a Dictionary object in a PDF file.
// Keys are written in sorted order, and entries with a nil value are
// omitted.
type Dict map[Name]Object

func (x Dict) String() string {
	tp, ok := x["Type"].(Name)
	if ok {
		return "<" + string(tp) + " Dict, " + strconv.Itoa(len(x)) + " entries>"
	}
	return "<Dict, " + strconv.Itoa(len(x)) + " entries>"
}

// PDF implements the [Object] interface.
func (x Dict) PDF(w io.Writer) error {
	if x == nil {
		_, err := io.WriteString(w, "null")
		return err
	}

	_, err := io.WriteString(w, "<<")
	if err != nil {
		return err
	}

	keys := make([]Name, 0, len(x))
	for key := range x {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i int, j int) bool {
		return keys[i] < keys[j]
	})

	for _, name := range keys {
		val := x[name]
		if val == nil {
			continue
		}

		_, err = io.WriteString(w, "\n")
		if err != nil {
			return err
		}
		err = name.PDF(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, " ")
		if err != nil {
			return err
		}
		err = val.PDF(w)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n>>")
	return err
}

// Reference represents a reference to an indirect object in a PDF file.
// All objects written by this package have generation number 0.
type Reference uint32

func (x Reference) String() string {
	return "obj_" + strconv.FormatUint(uint64(x), 10)
}

// PDF implements the [Object] interface.
func (x Reference) PDF(w io.Writer) error {
	var err error
	if x == 0 {
		_, err = io.WriteString(w, "null")
	} else {
		_, err = fmt.Fprintf(w, "%d 0 R", uint32(x))
	}
	return err
}

// Rectangle converts a rectangle to the PDF array [LLx LLy URx URy].
func Rectangle(r rect.Rect) Array {
	return Array{Number(r.LLx), Number(r.LLy), Number(r.URx), Number(r.URy)}
}

// Format returns the PDF representation of the object as a string.
// This is mostly useful for debugging and tests.
func Format(obj Object) string {
	if obj == nil {
		return "null"
	}
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		return "<error: " + err.Error() + ">"
	}
	return buf.String()
}
