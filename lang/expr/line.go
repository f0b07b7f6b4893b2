// Attrlang
// Copyright (C) James Shubin and the project contributors
// Written by the attrlang project contributors
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

package expr

import (
	"strings"
)

// Style is the kind of text of a part of a line, so that a user interface can
// render each part differently.
type Style int

// These are the available styles.
const (
	StylePlain Style = iota
	StyleOperator
	StyleConstant
	StyleVariable
	StyleParameter
	StyleField
)

// Part is a run of text with a single style.
type Part struct {
	Text  string
	Style Style
}

// Line is a styled rendering of an expression.
type Line struct {
	Parts []Part
}

// NewLine returns a line that holds the text with the style.
func NewLine(text string, style Style) *Line {
	return &Line{
		Parts: []Part{{Text: text, Style: style}},
	}
}

// Append adds text to the end of this line and returns the line.
func (obj *Line) Append(text string, style Style) *Line {
	obj.Parts = append(obj.Parts, Part{Text: text, Style: style})
	return obj
}

// AppendLine adds all the parts of another line to the end of this one and
// returns this line.
func (obj *Line) AppendLine(line *Line) *Line {
	obj.Parts = append(obj.Parts, line.Parts...)
	return obj
}

// Parenthesize returns a new line that wraps this one in parentheses.
func (obj *Line) Parenthesize() *Line {
	return NewLine("(", StylePlain).AppendLine(obj).Append(")", StylePlain)
}

// String returns the text of this line without any styling.
func (obj *Line) String() string {
	s := &strings.Builder{}
	for _, x := range obj.Parts {
		s.WriteString(x.Text)
	}
	return s.String()
}
