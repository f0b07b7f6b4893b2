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
	"github.com/graphgrammar/attrlang/lang/types"
)

// Parameter is a rule parameter, written $n. It is closed, since its value is
// supplied by the rule engine and not by a variable.
type Parameter struct {
	base
	index int
}

// NewParameter builds a parameter with a non-negative index.
func NewParameter(sort types.Sort, index int, opts ...Option) (*Parameter, error) {
	if !sort.Valid() {
		return nil, fmt.Errorf("parameter $%d has an invalid sort", index)
	}
	if index < 0 {
		return nil, fmt.Errorf("negative parameter index: %d", index)
	}
	o := newOptions(opts)
	obj := &Parameter{
		base:  base{sort: sort, prefixed: o.prefixed},
		index: index,
	}
	obj.finish(obj, o)
	return obj, nil
}

// Index returns the number of this parameter.
func (obj *Parameter) Index() int { return obj.index }

// IsTerm returns false, since a parameter is not a term.
func (obj *Parameter) IsTerm() bool { return false }

// IsClosed returns true.
func (obj *Parameter) IsClosed() bool { return true }

// Typing returns an empty typing.
func (obj *Parameter) Typing() *types.Typing { return types.NewTyping() }

// Kind returns the precedence of the parse string.
func (obj *Parameter) Kind() operators.Kind { return kindOf(obj, true) }

// DisplayString returns the rendering for humans.
func (obj *Parameter) DisplayString() string { return obj.Line().String() }

// Line returns the styled rendering.
func (obj *Parameter) Line() *Line { return render(obj, false) }

// Relabel returns this parameter, which has no fields.
func (obj *Parameter) Relabel(from, to Label) Expr { return obj }

// Accept calls the visitor.
func (obj *Parameter) Accept(v Visitor) error { return v.VisitParameter(obj) }

// String returns a short representation of this expression.
func (obj *Parameter) String() string {
	return fmt.Sprintf("param($%d: %s)", obj.index, obj.sort)
}
