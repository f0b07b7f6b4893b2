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
	"fmt"

	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/parser"
)

// Assignment binds an expression to a name. The name is not typed at this
// level: it is checked by the rule engine against its attribute declarations.
type Assignment struct {
	lhs   string
	rhs   Expr
	parse string
}

// NewAssignment builds an assignment. The name must be a plain identifier.
func NewAssignment(lhs string, rhs Expr, opts ...Option) (*Assignment, error) {
	if !parser.IsIdentifier(lhs) {
		return nil, fmt.Errorf("invalid assignment target: `%s`", lhs)
	}
	if rhs == nil {
		return nil, fmt.Errorf("assignment to `%s` has no value", lhs)
	}
	obj := &Assignment{
		lhs: lhs,
		rhs: rhs,
	}
	if o := newOptions(opts); o.source != "" {
		obj.parse = o.source
	} else {
		obj.parse = obj.render(true).String()
	}
	return obj, nil
}

// LHS returns the name that is assigned to.
func (obj *Assignment) LHS() string { return obj.lhs }

// RHS returns the assigned expression.
func (obj *Assignment) RHS() Expr { return obj.rhs }

// render builds the line of this assignment.
func (obj *Assignment) render(prefixes bool) *Line {
	return NewLine(obj.lhs, StyleField).
		Append(" "+operators.AssignSymbol+" ", StyleOperator).
		AppendLine(render(obj.rhs, prefixes))
}

// ParseString returns a string that parses back to an equal assignment.
func (obj *Assignment) ParseString() string { return obj.parse }

// DisplayString returns the rendering for humans.
func (obj *Assignment) DisplayString() string { return obj.Line().String() }

// Line returns the styled rendering.
func (obj *Assignment) Line() *Line { return obj.render(false) }

// Relabel renames the target and the fields of the value that are named by a
// binary label. It returns this same assignment if nothing changed.
func (obj *Assignment) Relabel(from, to Label) *Assignment {
	lhs := obj.lhs
	if renames(from, to, lhs) && parser.IsIdentifier(to.Text) {
		lhs = to.Text
	}
	rhs := obj.rhs.Relabel(from, to)
	if lhs == obj.lhs && rhs == obj.rhs {
		return obj
	}
	a, err := NewAssignment(lhs, rhs)
	if err != nil { // both parts were checked
		panic(fmt.Sprintf("relabel broke an assignment: %+v", err))
	}
	return a
}

// Equal returns true if both assignments have the same target and equal
// values.
func (obj *Assignment) Equal(other *Assignment) bool {
	if obj == nil || other == nil {
		return obj == nil && other == nil
	}
	return obj.lhs == other.lhs && Equal(obj.rhs, other.rhs)
}

// String returns a short representation of this assignment.
func (obj *Assignment) String() string {
	return fmt.Sprintf("assign(%s, %s)", obj.lhs, obj.rhs)
}
