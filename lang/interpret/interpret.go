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

// Package interpret evaluates typed terms, which are the expressions that are
// built only from constants and operator calls.
package interpret

import (
	"fmt"

	"github.com/graphgrammar/attrlang/lang/expr"
	"github.com/graphgrammar/attrlang/lang/interfaces"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"
)

// ErrNotTerm is returned when the expression reads variables, parameters or
// fields, whose values are only known to the rule engine.
const ErrNotTerm = interfaces.Error("expression is not a term")

// Eval computes the value of a term by applying the function of each operator
// to the values of its arguments.
func Eval(e expr.Expr) (types.Value, error) {
	if e == nil {
		return nil, fmt.Errorf("nothing to evaluate")
	}
	if !e.IsTerm() {
		return nil, errwrap.Wrapf(ErrNotTerm, "can't evaluate `%s`", e.DisplayString())
	}
	v := &evaluator{}
	if err := e.Accept(v); err != nil {
		return nil, err
	}
	return v.result, nil
}

// evaluator is the visitor that computes the value of the last expression that
// it visited.
type evaluator struct {
	result types.Value
}

func (obj *evaluator) VisitConstant(x *expr.Constant) error {
	obj.result = x.Value()
	return nil
}

func (obj *evaluator) VisitVariable(x *expr.Variable) error {
	return errwrap.Wrapf(ErrNotTerm, "variable `%s` has no value", x.Name())
}

func (obj *evaluator) VisitParameter(x *expr.Parameter) error {
	return errwrap.Wrapf(ErrNotTerm, "parameter `%s` has no value", x.DisplayString())
}

func (obj *evaluator) VisitFieldExpr(x *expr.FieldExpr) error {
	return errwrap.Wrapf(ErrNotTerm, "field `%s` has no value", x.DisplayString())
}

func (obj *evaluator) VisitCallExpr(x *expr.CallExpr) error {
	args := []types.Value{}
	for _, arg := range x.Args() {
		if err := arg.Accept(obj); err != nil {
			return err
		}
		args = append(args, obj.result)
	}
	result, err := x.Operator().Call(args)
	if err != nil {
		return errwrap.Wrapf(err, "can't evaluate `%s`", x.DisplayString())
	}
	obj.result = result
	return nil
}
