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
	"strings"

	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"
)

// CallExpr applies an operator to arguments whose sorts are exactly the
// parameter sorts of the operator. Its sort is the result sort.
type CallExpr struct {
	base
	op     *operators.Operator
	args   []Expr
	typing *types.Typing
	term   bool
}

// NewCallExpr builds an operator call. It errors if the number or the sorts of
// the arguments don't match the operator, or if two arguments use the same
// variable with different sorts.
func NewCallExpr(op *operators.Operator, args []Expr, opts ...Option) (*CallExpr, error) {
	if op == nil {
		return nil, fmt.Errorf("call has no operator")
	}
	if len(args) != op.Arity() {
		return nil, fmt.Errorf("operator `%s` expects %d arguments, got %d", op.FullName(), op.Arity(), len(args))
	}

	typing := types.NewTyping()
	term := true
	for i, arg := range args {
		if arg == nil {
			return nil, fmt.Errorf("operator `%s` got a nil argument at %d", op.FullName(), i)
		}
		if arg.Sort() != op.Params[i] {
			return nil, fmt.Errorf("operator `%s` expects %s at %d, got %s", op.FullName(), op.Params[i], i, arg.Sort())
		}
		t, err := typing.Union(arg.Typing())
		if err != nil {
			return nil, errwrap.Wrapf(err, "can't type call of `%s`", op.FullName())
		}
		typing = t
		term = term && arg.IsTerm()
	}

	o := newOptions(opts)
	obj := &CallExpr{
		base:   base{sort: op.Result, prefixed: o.prefixed},
		op:     op,
		args:   append([]Expr{}, args...),
		typing: typing,
		term:   term,
	}
	obj.finish(obj, o)
	return obj, nil
}

// Operator returns the operator of this call.
func (obj *CallExpr) Operator() *operators.Operator { return obj.op }

// Args returns a copy of the list of arguments.
func (obj *CallExpr) Args() []Expr { return append([]Expr{}, obj.args...) }

// IsTerm returns true if every argument is a term.
func (obj *CallExpr) IsTerm() bool { return obj.term }

// IsClosed returns true if no argument has a free variable.
func (obj *CallExpr) IsClosed() bool { return obj.typing.IsEmpty() }

// Typing returns the union of the typings of the arguments.
func (obj *CallExpr) Typing() *types.Typing { return obj.typing.Copy() }

// Kind returns the precedence of the parse string.
func (obj *CallExpr) Kind() operators.Kind { return kindOf(obj, true) }

// DisplayString returns the rendering for humans.
func (obj *CallExpr) DisplayString() string { return obj.Line().String() }

// Line returns the styled rendering.
func (obj *CallExpr) Line() *Line { return render(obj, false) }

// Relabel relabels every argument. It returns this same call if none of them
// changed.
func (obj *CallExpr) Relabel(from, to Label) Expr {
	args := make([]Expr, len(obj.args))
	changed := false
	for i, arg := range obj.args {
		args[i] = arg.Relabel(from, to)
		if args[i] != arg {
			changed = true
		}
	}
	if !changed {
		return obj
	}
	e, err := NewCallExpr(obj.op, args, WithPrefix(obj.prefixed))
	if err != nil { // relabeling keeps sorts and typings
		panic(fmt.Sprintf("relabel broke a call: %+v", err))
	}
	return e
}

// Accept calls the visitor.
func (obj *CallExpr) Accept(v Visitor) error { return v.VisitCallExpr(obj) }

// String returns a short representation of this expression.
func (obj *CallExpr) String() string {
	args := []string{}
	for _, x := range obj.args {
		args = append(args, x.String())
	}
	return fmt.Sprintf("call:%s(%s)", obj.op.FullName(), strings.Join(args, ", "))
}
