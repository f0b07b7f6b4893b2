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

//go:build !root

package parser

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestLex0(t *testing.T) {
	stream, err := Lex(`int:x.y+-3.5 >= "s" && $1(true)`)
	if err != nil {
		t.Errorf("lex failed with: %+v", err)
		return
	}
	got := []string{}
	for _, tok := range stream.Tokens() {
		got = append(got, tok.String())
	}
	exp := []string{
		"SORT(int)",
		"SORT_SEP(:)",
		"NAME(x.y)",
		"OPERATOR(+)",
		"OPERATOR(-)",
		"CONST(3.5)",
		"OPERATOR(>=)",
		`CONST("s")`,
		"OPERATOR(&&)",
		"NAME($1)",
		"PUNCT(()",
		"CONST(true)",
		"PUNCT())",
		"EOF",
	}
	if diff := pretty.Compare(got, exp); diff != "" {
		t.Errorf("tokens differ: (-got +want)\n%s", diff)
	}

	toks := stream.Tokens()
	if toks[2].Offset != 4 || toks[2].End != 7 {
		t.Errorf("unexpected offsets: %d-%d", toks[2].Offset, toks[2].End)
	}
	if v := toks[5].Value; v == nil || v.String() != "3.5" {
		t.Errorf("unexpected value: %v", v)
	}
	if v := toks[11].Value; v == nil || !v.Bool() {
		t.Errorf("unexpected value: %v", v)
	}
}

func TestLex1(t *testing.T) {
	stream, err := Lex(`int + real`)
	if err != nil {
		t.Errorf("lex failed with: %+v", err)
		return
	}
	for _, tok := range stream.Tokens()[:3] {
		if tok.Class == ClassSort {
			t.Errorf("sort keyword without a colon lexed as a prefix: %s", tok)
		}
	}
}

func TestTokenStream0(t *testing.T) {
	stream, err := Lex(`a = b`)
	if err != nil {
		t.Errorf("lex failed with: %+v", err)
		return
	}
	mark := stream.Mark()
	if tok := stream.Consume(ClassConst, ""); tok != nil {
		t.Errorf("consumed the wrong class: %s", tok)
	}
	if stream.Mark() != mark {
		t.Errorf("a failed consume must not advance")
	}
	if tok := stream.Consume(ClassName, "a"); tok == nil {
		t.Errorf("expected to consume `a`")
	}
	if tok := stream.Consume(ClassOperator, "=="); tok != nil {
		t.Errorf("consumed the wrong text: %s", tok)
	}
	if tok := stream.PeekAt(1); tok.Text != "b" {
		t.Errorf("unexpected lookahead: %s", tok)
	}
	stream.Next()
	stream.Next()
	if !stream.AtEOF() {
		t.Errorf("expected EOF")
	}
	if tok := stream.Next(); tok.Class != ClassEOF {
		t.Errorf("next must stay at EOF")
	}
	stream.Reset(mark)
	if tok := stream.Peek(); tok.Text != "a" {
		t.Errorf("reset did not roll back: %s", tok)
	}
}

func TestLex2(t *testing.T) {
	stream, err := Lex(`1 @ 2`)
	if err == nil {
		t.Errorf("expected an error")
	}
	if stream == nil {
		t.Errorf("the stream must be usable after an error")
		return
	}
	toks := stream.Tokens()
	if len(toks) != 2 || toks[1].Class != ClassEOF || toks[1].Offset != 2 {
		t.Errorf("unexpected tokens: %v", toks)
	}
	if !stream.Truncated() {
		t.Errorf("expected the stream to be truncated")
	}
}
