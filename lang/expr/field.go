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
	"github.com/graphgrammar/attrlang/lang/types"
)

// FieldExpr reads a field of a graph node. The target is the node identifier,
// and it is empty for the node that owns the expression. Chained field access
// is not supported, so neither part contains a dot.
type FieldExpr struct {
	base
	target string
	field  string
}

// NewFieldExpr builds a field expression. A target of "self" is the same as
// an empty target.
func NewFieldExpr(sort types.Sort, target, field string, opts ...Option) (*FieldExpr, error) {
	if !sort.Valid() {
		return nil, fmt.Errorf("field `%s` has an invalid sort", field)
	}
	if target == SelfTarget {
		target = ""
	}
	if !parser.IsSegment(field) || (target != "" && !parser.IsSegment(target)) {
		return nil, fmt.Errorf("invalid field expression: `%s.%s`", target, field)
	}
	o := newOptions(opts)
	obj := &FieldExpr{
		base:   base{sort: sort, prefixed: o.prefixed},
		target: target,
		field:  field,
	}
	obj.finish(obj, o)
	return obj, nil
}

// Target returns the target node identifier, which is empty for self.
func (obj *FieldExpr) Target() string { return obj.target }

// Field returns the field name.
func (obj *FieldExpr) Field() string { return obj.field }

// IsTerm returns false, since a field is not a term.
func (obj *FieldExpr) IsTerm() bool { return false }

// IsClosed returns true, since fields are not variables.
func (obj *FieldExpr) IsClosed() bool { return true }

// Typing returns an empty typing.
func (obj *FieldExpr) Typing() *types.Typing { return types.NewTyping() }

// Kind returns the precedence of the parse string.
func (obj *FieldExpr) Kind() operators.Kind { return kindOf(obj, true) }

// DisplayString returns the rendering for humans.
func (obj *FieldExpr) DisplayString() string { return obj.Line().String() }

// Line returns the styled rendering.
func (obj *FieldExpr) Line() *Line { return render(obj, false) }

// Relabel renames the field if it is named by a binary label.
func (obj *FieldExpr) Relabel(from, to Label) Expr {
	if !renames(from, to, obj.field) {
		return obj
	}
	e, err := NewFieldExpr(obj.sort, obj.target, to.Text, WithPrefix(obj.prefixed))
	if err != nil {
		return obj // not a valid field name, leave it alone
	}
	return e
}

// Accept calls the visitor.
func (obj *FieldExpr) Accept(v Visitor) error { return v.VisitFieldExpr(obj) }

// String returns a short representation of this expression.
func (obj *FieldExpr) String() string {
	target := obj.target
	if target == "" {
		target = SelfTarget
	}
	return fmt.Sprintf("field(%s.%s: %s)", target, obj.field, obj.sort)
}
