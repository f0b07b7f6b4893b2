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

package interfaces

import (
	"testing"

	"github.com/graphgrammar/attrlang/util"
)

func TestTextarea0(t *testing.T) {
	source := "int:3 + $1"
	ta := &Textarea{}
	if ta.IsSet() {
		t.Errorf("new textarea should not be set")
	}
	ta.Locate(source, 4, 10)
	if s := ta.Text(source); s != "3 + $1" {
		t.Errorf("unexpected text: %q", s)
	}
	if line, col := ta.Pos(); line != 0 || col != 4 {
		t.Errorf("unexpected pos: %d:%d", line, col)
	}
	if line, col := ta.End(); line != 0 || col != 10 {
		t.Errorf("unexpected end: %d:%d", line, col)
	}
	if s := ta.Byline(); s != "@ 1:5-1:11" {
		t.Errorf("unexpected byline: %s", s)
	}
	exp := "@ 1:5-1:11\n\nint:3 + $1\n    ^^^^^^\n"
	if s := ta.HighlightText(source); s != exp {
		t.Errorf("unexpected highlight:\n%s\nexpected:\n%s", s, exp)
	}
}

func TestTextarea1(t *testing.T) {
	source := util.Code(`
	a &&
	b
	`)
	ta := &Textarea{}
	ta.Locate(source, 0, 6)
	if line, col := ta.End(); line != 1 || col != 1 {
		t.Errorf("unexpected end: %d:%d", line, col)
	}
	exp := "@ 1:1-2:2\n\na &&\n^ from here ...\nb\n^ ... to here\n"
	if s := ta.HighlightText(source); s != exp {
		t.Errorf("unexpected highlight:\n%s\nexpected:\n%s", s, exp)
	}
}

func TestTextarea2(t *testing.T) {
	source := "foo("
	ta := &Textarea{}
	ta.Locate(source, 4, 99) // clamped
	if s := ta.Text(source); s != "" {
		t.Errorf("unexpected text: %q", s)
	}
	exp := "@ 1:5-1:5\n\nfoo(\n    ^\n"
	if s := ta.HighlightText(source); s != exp {
		t.Errorf("unexpected highlight:\n%s\nexpected:\n%s", s, exp)
	}
}

func TestError0(t *testing.T) {
	var err error = ErrTypeAmbiguous
	if err.Error() != "ambiguous typing, add a sort prefix" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
