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
	"math"

	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/types"
)

// Constant is a literal value. It is always a closed term.
type Constant struct {
	base
	value types.Value
}

// NewConstant builds a constant out of a value.
func NewConstant(value types.Value, opts ...Option) (*Constant, error) {
	if value == nil {
		return nil, fmt.Errorf("constant has no value")
	}
	if value.Sort() == types.SortInt && value.Int() == math.MinInt64 {
		// its negation overflows, so no literal reads back as this value
		return nil, fmt.Errorf("int constant %d has no literal form", value.Int())
	}
	o := newOptions(opts)
	obj := &Constant{
		base:  base{sort: value.Sort(), prefixed: o.prefixed},
		value: value.Copy(),
	}
	obj.finish(obj, o)
	return obj, nil
}

// Value returns the value of this constant.
func (obj *Constant) Value() types.Value { return obj.value.Copy() }

// isNegative is true for numeric constants that render with a leading minus.
func (obj *Constant) isNegative() bool {
	switch obj.sort {
	case types.SortInt:
		return obj.value.Int() < 0
	case types.SortReal:
		return obj.value.Real().IsNegative()
	}
	return false
}

// IsTerm returns true, since a constant is a term.
func (obj *Constant) IsTerm() bool { return true }

// IsClosed returns true, since a constant has no free variables.
func (obj *Constant) IsClosed() bool { return true }

// Typing returns an empty typing.
func (obj *Constant) Typing() *types.Typing { return types.NewTyping() }

// Kind returns the precedence of the parse string.
func (obj *Constant) Kind() operators.Kind { return kindOf(obj, true) }

// DisplayString returns the rendering for humans.
func (obj *Constant) DisplayString() string { return obj.Line().String() }

// Line returns the styled rendering.
func (obj *Constant) Line() *Line { return render(obj, false) }

// Relabel returns this constant, which has no fields.
func (obj *Constant) Relabel(from, to Label) Expr { return obj }

// Accept calls the visitor.
func (obj *Constant) Accept(v Visitor) error { return v.VisitConstant(obj) }

// String returns a short representation of this expression, eg: int(3).
func (obj *Constant) String() string {
	return fmt.Sprintf("%s(%s)", obj.sort, obj.value)
}
