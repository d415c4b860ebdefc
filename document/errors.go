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

package document

import (
	"errors"
	"strconv"
)

// These errors are wrapped in a [SerializationError] to describe why a
// set of pages cannot be serialized.
var (
	ErrNoPages         = errors.New("no pages")
	ErrInvalidFont     = errors.New("invalid font")
	ErrInvalidColor    = errors.New("color out of range")
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// SerializationError is returned when pages cannot be converted into a
// PDF file.  No output is produced in this case.
type SerializationError struct {
	// Page is the 1-based number of the offending page, or 0 if the
	// problem is not specific to a single page.
	Page int

	Err error
}

func (err *SerializationError) Error() string {
	where := ""
	if err.Page > 0 {
		where = " (page " + strconv.Itoa(err.Page) + ")"
	}
	return "cannot serialize document: " + err.Err.Error() + where
}

func (err *SerializationError) Unwrap() error {
	return err.Err
}
