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

// Variable is a free variable of a known sort.
type Variable struct {
	base
	name string
}

// NewVariable builds a variable. The name must be a plain identifier.
func NewVariable(sort types.Sort, name string, opts ...Option) (*Variable, error) {
	if !sort.Valid() {
		return nil, fmt.Errorf("variable `%s` has an invalid sort", name)
	}
	if !parser.IsIdentifier(name) {
		return nil, fmt.Errorf("invalid variable name: `%s`", name)
	}
	o := newOptions(opts)
	obj := &Variable{
		base: base{sort: sort, prefixed: o.prefixed},
		name: name,
	}
	obj.finish(obj, o)
	return obj, nil
}

// Name returns the name of this variable.
func (obj *Variable) Name() string { return obj.name }

// IsTerm returns false, since a variable is not a term.
func (obj *Variable) IsTerm() bool { return false }

// IsClosed returns false, since the variable itself is free.
func (obj *Variable) IsClosed() bool { return false }

// Typing returns the binding of this variable.
func (obj *Variable) Typing() *types.Typing {
	typing := types.NewTyping()
	if err := typing.Add(obj.name, obj.sort); err != nil {
		panic(fmt.Sprintf("invalid variable: %+v", err)) // checked by NewVariable
	}
	return typing
}

// Kind returns the precedence of the parse string.
func (obj *Variable) Kind() operators.Kind { return kindOf(obj, true) }

// DisplayString returns the rendering for humans.
func (obj *Variable) DisplayString() string { return obj.Line().String() }

// Line returns the styled rendering.
func (obj *Variable) Line() *Line { return render(obj, false) }

// Relabel returns this variable. Variables are not graph labels.
func (obj *Variable) Relabel(from, to Label) Expr { return obj }

// Accept calls the visitor.
func (obj *Variable) Accept(v Visitor) error { return v.VisitVariable(obj) }

// String returns a short representation of this expression.
func (obj *Variable) String() string {
	return fmt.Sprintf("var(%s: %s)", obj.name, obj.sort)
}
