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

// bareKind is the precedence of an expression rendered without its prefix.
func bareKind(e Expr) operators.Kind {
	switch x := e.(type) {
	case *Constant:
		if x.isNegative() {
			return operators.KindNeg // it renders with a leading minus
		}
	case *CallExpr:
		if x.op.HasSymbol() {
			return x.op.Kind
		}
		return operators.KindCall
	}
	return operators.KindAtom
}

// kindOf is the precedence of an expression as rendered. A sort prefix binds
// like an atom.
func kindOf(e Expr, prefixes bool) operators.Kind {
	if prefixes && e.Prefixed() {
		return operators.KindAtom
	}
	return bareKind(e)
}

// parseString synthesizes the parse string of an expression.
func parseString(e Expr) string {
	return render(e, true).String()
}

// render builds the line of an expression, with or without sort prefixes.
func render(e Expr, prefixes bool) *Line {
	var line *Line
	switch x := e.(type) {
	case *Constant:
		line = NewLine(x.value.String(), StyleConstant)

	case *Variable:
		line = NewLine(x.name, StyleVariable)

	case *Parameter:
		line = NewLine(fmt.Sprintf("%s%d", parser.ParamPrefix, x.index), StyleParameter)

	case *FieldExpr:
		switch {
		case x.target != "":
			line = NewLine(x.target+"."+x.field, StyleField)
		case prefixes: // must not read back as a variable
			line = NewLine(SelfTarget+"."+x.field, StyleField)
		default:
			line = NewLine(x.field, StyleField)
		}

	case *CallExpr:
		line = renderCall(x, prefixes)

	default:
		panic(fmt.Sprintf("unhandled expression: %T", e))
	}

	if !prefixes || !e.Prefixed() {
		return line
	}
	if bareKind(e) < operators.KindNeg {
		line = line.Parenthesize()
	}
	return NewLine(e.Sort().String()+":", StyleOperator).AppendLine(line)
}

// renderCall builds the line of an operator call. Symbolic operators render
// in their fixity and get parentheses around operands that bind more loosely.
func renderCall(x *CallExpr, prefixes bool) *Line {
	op := x.op
	operand := func(arg Expr, paren bool) *Line {
		line := render(arg, prefixes)
		if paren {
			return line.Parenthesize()
		}
		return line
	}

	if !op.HasSymbol() {
		line := NewLine(op.Name, StyleOperator).Append("(", StylePlain)
		for i, arg := range x.args {
			if i > 0 {
				line.Append(", ", StylePlain)
			}
			line.AppendLine(render(arg, prefixes))
		}
		return line.Append(")", StylePlain)
	}

	if op.Kind.IsPrefix() {
		arg := x.args[0]
		return NewLine(op.Symbol, StyleOperator).AppendLine(operand(arg, kindOf(arg, prefixes) < op.Kind))
	}

	left, right := x.args[0], x.args[1]
	line := operand(left, kindOf(left, prefixes) < op.Kind)
	line.Append(" ", StylePlain).Append(op.Symbol, StyleOperator).Append(" ", StylePlain)
	return line.AppendLine(operand(right, kindOf(right, prefixes) <= op.Kind))
}
