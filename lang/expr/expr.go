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

// Package expr contains the typed expression model: the immutable, fully
// resolved expressions that the attribute language produces, together with
// the assignments that bind them to names.
package expr

import (
	"fmt"

	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/types"
)

// SelfTarget is the target name that refers to the node that owns the
// expression. A field expression stores it as an empty target.
const SelfTarget = "self"

// Expr is a typed expression. The set of implementations is closed: it is
// exactly Constant, Variable, Parameter, FieldExpr and CallExpr. Expressions
// are immutable and may be shared freely.
type Expr interface {
	fmt.Stringer // String() string (for debugging)

	// Sort returns the sort of the value of this expression.
	Sort() types.Sort

	// IsTerm returns true if this is built only from constants and calls.
	IsTerm() bool

	// IsClosed returns true if the typing is empty.
	IsClosed() bool

	// Typing returns a copy of the free variables and their sorts.
	Typing() *types.Typing

	// Prefixed returns true if this was marked with an explicit sort
	// prefix, which the parse string then repeats.
	Prefixed() bool

	// Kind returns the precedence of the parse string of this expression,
	// which decides when it needs parentheses.
	Kind() operators.Kind

	// ParseString returns a string that parses back to an equal
	// expression.
	ParseString() string

	// DisplayString returns the rendering for humans, without prefixes.
	DisplayString() string

	// Line returns the styled rendering that DisplayString flattens.
	Line() *Line

	// Relabel returns this expression with every field named by the old
	// label renamed to the new one. It returns the same instance if
	// nothing changed.
	Relabel(from, to Label) Expr

	// Accept calls the method of the visitor that matches this variant.
	Accept(Visitor) error

	isExpr() // seals the interface
}

// Visitor has one method per expression variant. Adding a variant adds a
// method here, so every visitor in the tree stops compiling until it handles
// it.
type Visitor interface {
	VisitConstant(*Constant) error
	VisitVariable(*Variable) error
	VisitParameter(*Parameter) error
	VisitFieldExpr(*FieldExpr) error
	VisitCallExpr(*CallExpr) error
}

// Option is an optional setting for the expression factories.
type Option func(*options)

type options struct {
	prefixed bool
	source   string
}

// WithPrefix marks the expression as carrying an explicit sort prefix.
func WithPrefix(prefixed bool) Option {
	return func(o *options) {
		o.prefixed = prefixed
	}
}

// WithSource uses the text the expression was parsed from as its parse string.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// base holds what every expression variant has.
type base struct {
	sort     types.Sort
	prefixed bool
	parse    string
}

func (obj *base) isExpr() {}

// Sort returns the sort of the value of this expression.
func (obj *base) Sort() types.Sort { return obj.sort }

// Prefixed returns true if this was marked with an explicit sort prefix.
func (obj *base) Prefixed() bool { return obj.prefixed }

// ParseString returns a string that parses back to an equal expression.
func (obj *base) ParseString() string { return obj.parse }

// finish computes the parse string once the variant is otherwise complete.
func (obj *base) finish(e Expr, o *options) {
	if o.source != "" {
		obj.parse = o.source
		return
	}
	obj.parse = parseString(e)
}

// Equal returns true if the two expressions are structurally equal. The
// prefix markers and the parse strings are ignored.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Sort() != b.Sort() {
		return false
	}
	switch x := a.(type) {
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.value.Cmp(y.value) == nil

	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.name == y.name

	case *Parameter:
		y, ok := b.(*Parameter)
		return ok && x.index == y.index

	case *FieldExpr:
		y, ok := b.(*FieldExpr)
		return ok && x.target == y.target && x.field == y.field

	case *CallExpr:
		y, ok := b.(*CallExpr)
		if !ok || x.op.FullName() != y.op.FullName() || len(x.args) != len(y.args) {
			return false
		}
		for i := range x.args {
			if !Equal(x.args[i], y.args[i]) {
				return false
			}
		}
		return true
	}
	panic(fmt.Sprintf("unhandled expression: %T", a))
}

// Cmp returns an error if the two expressions are not structurally equal.
// It is a friendlier version of Equal for tests.
func Cmp(a, b Expr) error {
	if Equal(a, b) {
		return nil
	}
	return fmt.Errorf("expressions differ: %v != %v", a, b)
}
