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
	"errors"

	"seehuhn.de/go/formpdf/document"
)

// These errors are wrapped in an [InvalidDocumentError].
var (
	ErrNoDocument   = errors.New("missing document")
	ErrEmptyTitle   = errors.New("document title is empty")
	ErrInvalidStyle = errors.New("invalid style")
)

// InvalidDocumentError is returned when a document cannot be rendered
// because of problems with the input.  No output is produced in this
// case.
type InvalidDocumentError struct {
	Err error
}

func (err *InvalidDocumentError) Error() string {
	return "invalid document: " + err.Err.Error()
}

func (err *InvalidDocumentError) Unwrap() error {
	return err.Err
}

// SerializationError is returned when the laid-out pages cannot be
// written as a PDF file.
type SerializationError = document.SerializationError
