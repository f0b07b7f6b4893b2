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

// Package parser contains the lexer and the operator precedence parser that
// turn attribute expression text into untyped parse trees.
package parser

import (
	"fmt"

	"github.com/graphgrammar/attrlang/lang/interfaces"
	"github.com/graphgrammar/attrlang/lang/operators"
)

// LexParseErr is a permanent failure error to notify about borkage.
type LexParseErr struct {
	Err interfaces.Error
	Str string // the offending source text
	Msg string // optional detail

	Row int // this is zero-indexed (the first line is 0)
	Col int // this is zero-indexed (the first char is 0)

	// Offset is the byte offset of Str in the input.
	Offset int
}

// newLexParseErr builds the error for the given area of the input.
func newLexParseErr(e interfaces.Error, input string, offset, end int, msg string) *LexParseErr {
	ta := &interfaces.Textarea{}
	ta.Locate(input, offset, end)
	row, col := ta.Pos()
	start, _ := ta.Offsets()
	return &LexParseErr{
		Err:    e,
		Str:    ta.Text(input),
		Msg:    msg,
		Row:    row,
		Col:    col,
		Offset: start,
	}
}

// Error displays this error with all the relevant state information.
func (e *LexParseErr) Error() string {
	s := e.Err.Error()
	if e.Msg != "" {
		s = fmt.Sprintf("%s (%s)", s, e.Msg)
	}
	return fmt.Sprintf("%s: `%s` @%d:%d", s, e.Str, e.Row+1, e.Col+1)
}

// Unwrap returns the error kind, so that errors.Is can match on it.
func (e *LexParseErr) Unwrap() error {
	return e.Err
}

// LexParse runs the lexer/parser machinery over an expression with the
// built-in operators and returns the untyped tree.
func LexParse(input string) (*Node, error) {
	p := &Parser{
		Registry: operators.Default(),
		Logf:     func(format string, v ...interface{}) {},
	}
	return p.Parse(input, ModeExpression)
}
