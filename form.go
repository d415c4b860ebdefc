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

package formpdf

import (
	"encoding/json"
	"fmt"
)

// Document is a form document to be rendered.
// Documents are never modified by this package.
type Document struct {
	Title         string    `json:"title"`
	GeneratedDate string    `json:"generatedDate"`
	Sections      []Section `json:"sections"`
}

// Section is a named group of fields.
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Field is a single labelled value of a form.
type Field struct {
	// Key identifies the field in the form definition.
	// It is not shown in the output.
	Key string `json:"fieldKey,omitempty"`

	Label    string `json:"label"`
	Required bool   `json:"required"`
	Value    Value  `json:"value"`
}

// Value is the value of a field.  A value is either present, with a
// non-empty text, or missing.  The zero Value is missing.
type Value struct {
	text    string
	present bool
}

// Present returns a value with the given text.
// The empty string gives a missing value.
func Present(text string) Value {
	if text == "" {
		return Value{}
	}
	return Value{text: text, present: true}
}

// Missing returns the missing value.
func Missing() Value {
	return Value{}
}

// Text returns the text of the value.
// The second return value is false if the value is missing.
func (v Value) Text() (string, bool) {
	return v.text, v.present
}

// IsMissing reports whether the value is missing.
func (v Value) IsMissing() bool {
	return !v.present
}

func (v Value) String() string {
	if !v.present {
		return "<missing>"
	}
	return fmt.Sprintf("%q", v.text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// Missing values are encoded as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both null and the empty string decode to a missing value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var text string
	err := json.Unmarshal(data, &text)
	if err != nil {
		return fmt.Errorf("field value: %w", err)
	}
	*v = Present(text)
	return nil
}
