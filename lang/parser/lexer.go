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

package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/graphgrammar/attrlang/lang/interfaces"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/shopspring/decimal"
)

// segmentPattern matches one segment of a dotted name.
const segmentPattern = `[a-zA-Z_]\w*`

var segmentRegexp = regexp.MustCompile(`^` + segmentPattern + `$`)

// attrLexer defines the raw tokens of the expression language. The rules are
// tried in order, so reals must come before ints.
var attrLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Real", Pattern: `\d+\.\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Name", Pattern: `\$\w*(\.\w+)*|` + segmentPattern + `(\.` + segmentPattern + `)*`},
	{Name: "Operator", Pattern: `&&|\|\||==|!=|<=|>=|[-+*/%<>!=]`},
	{Name: "Punct", Pattern: `[(),:]`},
})

// IsSegment returns true if the name lexes as one segment of a NAME token. A
// field or a target of a field expression must be one.
func IsSegment(name string) bool {
	return segmentRegexp.MatchString(name)
}

// IsBoolLiteral returns true for the names that lex as bool constants.
func IsBoolLiteral(name string) bool {
	return name == "true" || name == "false"
}

// IsIdentifier returns true if the name lexes back as a single NAME token on
// its own. This is what variables and assignment targets must be.
func IsIdentifier(name string) bool {
	return IsSegment(name) && !IsBoolLiteral(name)
}

// Class is the classification of a token, as seen by the parser.
type Class int

// These are the token classes.
const (
	ClassEOF      Class = iota
	ClassName           // identifier, possibly dotted, or $n
	ClassConst          // literal constant
	ClassSort           // sort keyword that is followed by a SORT_SEP
	ClassSortSep        // the colon of a sort prefix
	ClassOperator       // operator symbol, including `=`
	ClassPunct          // parentheses and commas
)

var classNames = map[Class]string{
	ClassEOF:      "EOF",
	ClassName:     "NAME",
	ClassConst:    "CONST",
	ClassSort:     "SORT",
	ClassSortSep:  "SORT_SEP",
	ClassOperator: "OPERATOR",
	ClassPunct:    "PUNCT",
}

// String returns the name of this class.
func (obj Class) String() string {
	if s, exists := classNames[obj]; exists {
		return s
	}
	return fmt.Sprintf("class(%d)", int(obj))
}

// Token is a classified token with its position in the source.
type Token struct {
	Class Class
	Text  string

	// Value is the literal value of a CONST token. It is nil if the literal
	// could not be converted, in which case a lexer error was reported.
	Value types.Value

	Offset int // byte offset of the first char
	End    int // byte offset after the last char
}

// String returns a visual representation of this token.
func (obj *Token) String() string {
	if obj.Class == ClassEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", obj.Class, obj.Text)
}

// Is returns true if the token has the class, and the text if it isn't empty.
func (obj *Token) Is(class Class, text string) bool {
	return obj.Class == class && (text == "" || obj.Text == text)
}

// TokenStream is a list of tokens with a cursor. It supports lookahead and
// backtracking to any earlier position. The last token is always EOF.
type TokenStream struct {
	tokens    []*Token
	pos       int
	truncated bool
}

// Peek returns the next token without consuming it.
func (obj *TokenStream) Peek() *Token {
	return obj.tokens[obj.pos]
}

// PeekAt returns the token that is n positions ahead of the cursor. It returns
// the EOF token if that is past the end.
func (obj *TokenStream) PeekAt(n int) *Token {
	if i := obj.pos + n; i < len(obj.tokens) {
		return obj.tokens[i]
	}
	return obj.tokens[len(obj.tokens)-1]
}

// Next consumes and returns the next token. It never moves past EOF.
func (obj *TokenStream) Next() *Token {
	tok := obj.tokens[obj.pos]
	if tok.Class != ClassEOF {
		obj.pos++
	}
	return tok
}

// Consume consumes and returns the next token if it has the class, and the
// text if that isn't empty. Otherwise it returns nil and doesn't advance.
func (obj *TokenStream) Consume(class Class, text string) *Token {
	if tok := obj.Peek(); tok.Is(class, text) {
		return obj.Next()
	}
	return nil
}

// Mark returns the current position, so that it can be restored with Reset.
func (obj *TokenStream) Mark() int {
	return obj.pos
}

// Reset moves the cursor back to a position returned by Mark.
func (obj *TokenStream) Reset(mark int) {
	if mark < 0 || mark >= len(obj.tokens) {
		panic(fmt.Sprintf("invalid token stream mark: %d", mark))
	}
	obj.pos = mark
}

// AtEOF returns true if every token was consumed.
func (obj *TokenStream) AtEOF() bool {
	return obj.Peek().Class == ClassEOF
}

// Truncated returns true if unrecognized input ended the stream early. The EOF
// token then sits where the lexer gave up.
func (obj *TokenStream) Truncated() bool {
	return obj.truncated
}

// Tokens returns every token, including the final EOF.
func (obj *TokenStream) Tokens() []*Token {
	return obj.tokens
}

// Lex splits the input into a token stream. Every lexical problem is reported
// in the returned error, but the stream is always usable: unrecognized input
// ends it, and bad literals become CONST tokens without a value.
func Lex(input string) (*TokenStream, error) {
	symbols := attrLexer.Symbols()
	names := make(map[lexer.TokenType]string)
	for name, typ := range symbols {
		names[typ] = name
	}

	stream := &TokenStream{tokens: []*Token{}}
	var err error
	eof := len(input)

	lex, e := attrLexer.LexString("", input)
	if e != nil {
		return nil, e // only fails if the lexer definition is broken
	}
	for {
		tok, e := lex.Next()
		if e != nil {
			offset := eof
			var lexErr *lexer.Error
			if errors.As(e, &lexErr) {
				offset = lexErr.Pos.Offset
			}
			err = errwrap.Append(err, newLexParseErr(interfaces.ErrLexerUnrecognized, input, offset, offset+1, ""))
			eof = offset
			stream.truncated = true
			break
		}
		if tok.EOF() {
			break
		}

		name := names[tok.Type]
		if name == "Whitespace" {
			continue // elide
		}
		t := &Token{
			Text:   tok.Value,
			Offset: tok.Pos.Offset,
			End:    tok.Pos.Offset + len(tok.Value),
		}
		switch name {
		case "Real", "Int", "String":
			t.Class = ClassConst
			v, e := literal(name, tok.Value)
			if e != nil {
				err = errwrap.Append(err, e.located(input, t.Offset, t.End))
			}
			t.Value = v // nil on error

		case "Name":
			t.Class = ClassName
			if IsBoolLiteral(tok.Value) {
				t.Class = ClassConst
				t.Value = types.NewBool(tok.Value == "true")
			}

		case "Operator":
			t.Class = ClassOperator

		case "Punct":
			t.Class = ClassPunct
			if tok.Value == ":" {
				t.Class = ClassSortSep
			}

		default:
			// programming error
			return nil, fmt.Errorf("unhandled token type: %s", name)
		}
		stream.tokens = append(stream.tokens, t)
	}

	// a sort keyword only starts a prefix when the colon follows it
	for i, t := range stream.tokens {
		if t.Class != ClassName || !types.IsSortKeyword(t.Text) {
			continue
		}
		if i+1 < len(stream.tokens) && stream.tokens[i+1].Class == ClassSortSep {
			t.Class = ClassSort
		}
	}

	stream.tokens = append(stream.tokens, &Token{
		Class:  ClassEOF,
		Offset: eof,
		End:    eof,
	})
	return stream, err
}

// literalErr is a lexical error that is not located yet.
type literalErr struct {
	err interfaces.Error
	msg string
}

func (e *literalErr) located(input string, offset, end int) *LexParseErr {
	return newLexParseErr(e.err, input, offset, end, e.msg)
}

// literal converts the text of a constant token into its value.
func literal(name, text string) (types.Value, *literalErr) {
	switch name {
	case "Int":
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &literalErr{err: interfaces.ErrLexerIntegerOverflow, msg: err.Error()}
		}
		return types.NewInt(i), nil

	case "Real":
		d, err := decimal.NewFromString(text)
		if err != nil {
			return nil, &literalErr{err: interfaces.ErrLexerRealInvalid, msg: err.Error()}
		}
		return types.NewReal(d), nil

	case "String":
		s, err := strconv.Unquote(text)
		if err != nil {
			return nil, &literalErr{err: interfaces.ErrLexerStringBadEscaping}
		}
		return types.NewStr(s), nil
	}
	panic(fmt.Sprintf("unhandled literal: %s", name))
}
