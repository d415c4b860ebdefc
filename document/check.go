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
	"fmt"
	"math"

	"seehuhn.de/go/formpdf/layout"
)

// check verifies that all pages can be serialized.
func (s *Serializer) check(pages []*layout.Page) error {
	if len(pages) == 0 {
		return &SerializationError{Err: ErrNoPages}
	}
	for i, p := range pages {
		err := s.checkPage(p)
		if err != nil {
			return &SerializationError{Page: i + 1, Err: err}
		}
	}
	return nil
}

func (s *Serializer) checkPage(p *layout.Page) error {
	if p == nil {
		return fmt.Errorf("%w: missing page", ErrInvalidGeometry)
	}
	box := p.Box
	if !isFinite(box.LLx, box.LLy, box.URx, box.URy) || box.Dx() <= 0 || box.Dy() <= 0 {
		return fmt.Errorf("%w: page box %v", ErrInvalidGeometry, box)
	}

	for _, op := range p.Ops {
		switch op := op.(type) {
		case *layout.Text:
			if _, ok := s.fonts.Face(op.Font); !ok {
				return fmt.Errorf("%w: unknown font handle %d", ErrInvalidFont, op.Font)
			}
			if !isFinite(op.Size) || op.Size <= 0 {
				return fmt.Errorf("%w: font size %g", ErrInvalidFont, op.Size)
			}
			if !op.Color.Valid() {
				return fmt.Errorf("%w: %s", ErrInvalidColor, op.Color)
			}
			if !isFinite(op.X, op.Y) {
				return fmt.Errorf("%w: text at (%g, %g)", ErrInvalidGeometry, op.X, op.Y)
			}
		case *layout.Line:
			if !op.Color.Valid() {
				return fmt.Errorf("%w: %s", ErrInvalidColor, op.Color)
			}
			if !isFinite(op.X0, op.Y0, op.X1, op.Y1, op.Width) || op.Width < 0 {
				return fmt.Errorf("%w: line from (%g, %g) to (%g, %g), width %g",
					ErrInvalidGeometry, op.X0, op.Y0, op.X1, op.Y1, op.Width)
			}
		default:
			return fmt.Errorf("unsupported drawing operation %T", op)
		}
	}
	return nil
}

func isFinite(xx ...float64) bool {
	for _, x := range xx {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
