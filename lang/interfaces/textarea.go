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

package interfaces

import (
	"fmt"
	"strings"
)

// Textarea stores the coordinates of an expression in its source text in the
// form of a starting line/column and ending line/column. It also keeps the raw
// byte offsets, so that the exact source substring can be recovered.
type Textarea struct {
	// This data is zero-based. (Eg: first line of the input is 0)
	startLine   int // first
	startColumn int // left
	endLine     int // last
	endColumn   int // right

	offset    int // byte offset of the first char
	endOffset int // byte offset after the last char

	isSet bool
}

// Locate stores the byte offsets of an area of the source, and computes the
// corresponding line and column numbers.
func (obj *Textarea) Locate(source string, offset, endOffset int) {
	if offset < 0 {
		offset = 0
	}
	if endOffset > len(source) {
		endOffset = len(source)
	}
	if endOffset < offset {
		endOffset = offset
	}
	obj.offset = offset
	obj.endOffset = endOffset
	obj.startLine, obj.startColumn = lineCol(source, offset)
	obj.endLine, obj.endColumn = lineCol(source, endOffset)
	obj.isSet = true
}

// lineCol converts a byte offset into zero-based line and column numbers.
func lineCol(source string, offset int) (int, int) {
	if offset > len(source) {
		offset = len(source)
	}
	head := source[:offset]
	line := strings.Count(head, "\n")
	col := offset
	if i := strings.LastIndex(head, "\n"); i >= 0 {
		col = offset - i - 1
	}
	return line, col
}

// IsSet returns if the position was already set with Locate already.
func (obj *Textarea) IsSet() bool {
	return obj.isSet
}

// Pos returns the starting line/column.
func (obj *Textarea) Pos() (int, int) {
	return obj.startLine, obj.startColumn
}

// End returns the end line/column.
func (obj *Textarea) End() (int, int) {
	return obj.endLine, obj.endColumn
}

// Offsets returns the start and end byte offsets.
func (obj *Textarea) Offsets() (int, int) {
	return obj.offset, obj.endOffset
}

// Text returns the substring of the source that this area covers.
func (obj *Textarea) Text(source string) string {
	if !obj.isSet || obj.endOffset > len(source) {
		return ""
	}
	return source[obj.offset:obj.endOffset]
}

// Byline gives a succinct representation of the Textarea, but is useful only in
// debugging. In order to generate pretty error messages, see HighlightText.
func (obj *Textarea) Byline() string {
	// We convert to 1-based for user display.
	return fmt.Sprintf("@ %d:%d-%d:%d", obj.startLine+1, obj.startColumn+1, obj.endLine+1, obj.endColumn+1)
}

// HighlightText generates a generic description that just visually indicates
// part of the line described by a Textarea. If the coordinates that are passed
// span multiple lines, don't show those lines, but just a description of the
// area. If it can't generate a valid snippet, then it returns the empty string.
func (obj *Textarea) HighlightText(source string) string {
	if !obj.isSet {
		return ""
	}
	lines := strings.Split(source, "\n")
	if len(lines) <= obj.endLine {
		return ""
	}

	result := &strings.Builder{}
	result.WriteString(obj.Byline())
	result.WriteString("\n\n")

	if obj.startLine == obj.endLine {
		width := obj.endColumn - obj.startColumn
		if width < 1 {
			width = 1 // point at something, even at the end of input
		}
		result.WriteString(lines[obj.startLine] + "\n")
		result.WriteString(strings.Repeat(" ", obj.startColumn))
		result.WriteString(strings.Repeat("^", width))
		result.WriteString("\n")
		return result.String()
	}

	result.WriteString(lines[obj.startLine] + "\n")
	result.WriteString(strings.Repeat(" ", obj.startColumn))
	result.WriteString("^ from here ...\n")

	result.WriteString(lines[obj.endLine] + "\n")
	if obj.endColumn > 0 {
		result.WriteString(strings.Repeat(" ", obj.endColumn-1))
	}
	result.WriteString("^ ... to here\n")

	return result.String()
}
