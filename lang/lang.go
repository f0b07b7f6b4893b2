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

// Package lang is the attribute expression language. It parses the text of an
// attribute expression, resolves the sort of every part of it, and returns an
// immutable typed expression.
package lang

import (
	"fmt"
	"strings"

	"github.com/graphgrammar/attrlang/lang/expr"
	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/parser"
	"github.com/graphgrammar/attrlang/lang/resolve"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"
)

// FormatError is returned by every entry point of this package. It holds the
// text that could not be parsed, and all of the individual problems found in
// it.
type FormatError struct {
	// Input is the text that was parsed.
	Input string

	// Err holds the individual errors, as built by errwrap.Append.
	Err error
}

// Error lists each problem on its own line, after the input.
func (obj *FormatError) Error() string {
	s := fmt.Sprintf("can't parse `%s`", obj.Input)
	for _, err := range obj.Errors() {
		s += fmt.Sprintf("\n\t* %s", err)
	}
	return s
}

// Errors returns the individual errors.
func (obj *FormatError) Errors() []error {
	return errwrap.Errors(obj.Err)
}

// Unwrap returns the aggregated error, so that errors.As can look inside it.
func (obj *FormatError) Unwrap() error {
	return obj.Err
}

// Lang is the main language lexer/parser object. The zero value is usable and
// uses the built-in operators and no logging.
type Lang struct {
	// Registry holds the operators. If nil, operators.Default is used.
	Registry *operators.Registry

	Debug bool
	Logf  func(format string, v ...interface{})
}

func (obj *Lang) registry() *operators.Registry {
	if obj.Registry == nil {
		return operators.Default()
	}
	return obj.Registry
}

func (obj *Lang) logf(prefix string) func(format string, v ...interface{}) {
	return func(format string, v ...interface{}) {
		if obj.Logf == nil {
			return
		}
		obj.Logf(prefix+format, v...)
	}
}

// parse runs the parser in the given mode and packages any errors.
func (obj *Lang) parse(input string, mode parser.Mode) (*parser.Node, error) {
	p := &parser.Parser{
		Registry: obj.registry(),
		Debug:    obj.Debug,
		Logf:     obj.logf("parser: "),
	}
	node, err := p.Parse(input, mode)
	if err != nil {
		return nil, &FormatError{Input: input, Err: err}
	}
	return node, nil
}

func (obj *Lang) resolver(typing *types.Typing) *resolve.Resolver {
	return &resolve.Resolver{
		Typing: typing,
		Debug:  obj.Debug,
		Logf:   obj.logf("resolve: "),
	}
}

// expression parses and resolves an expression in one of the modes that
// produce one.
func (obj *Lang) expression(input string, typing *types.Typing, mode parser.Mode) (expr.Expr, error) {
	node, err := obj.parse(input, mode)
	if err != nil {
		return nil, err
	}
	e, err := obj.resolver(typing).Resolve(node)
	if err != nil {
		return nil, &FormatError{Input: input, Err: err}
	}
	if obj.Debug {
		obj.logf("")("expression: %s", e)
	}
	return e, nil
}

// ParseExpression parses an expression in which every plain name is a field of
// the node that owns it.
func (obj *Lang) ParseExpression(input string) (expr.Expr, error) {
	return obj.expression(input, nil, parser.ModeExpression)
}

// ParseExpressionWithTyping parses an expression in which the names of the
// typing are variables of the given sorts.
func (obj *Lang) ParseExpressionWithTyping(input string, typing *types.Typing) (expr.Expr, error) {
	return obj.expression(input, typing, parser.ModeExpression)
}

// ParseTest parses an expression in the legacy test syntax, where a leading
// `name = e` means `name == e`.
func (obj *Lang) ParseTest(input string, typing *types.Typing) (expr.Expr, error) {
	return obj.expression(input, typing, parser.ModeTest)
}

// ParseAssignment parses `name = e`. The name is not typed.
func (obj *Lang) ParseAssignment(input string) (*expr.Assignment, error) {
	return obj.ParseAssignmentWithTyping(input, nil)
}

// ParseAssignmentWithTyping parses `name = e`, where the names of the typing
// are variables inside of e.
func (obj *Lang) ParseAssignmentWithTyping(input string, typing *types.Typing) (*expr.Assignment, error) {
	node, err := obj.parse(input, parser.ModeAssignment)
	if err != nil {
		return nil, err
	}
	a, err := obj.resolver(typing).ResolveAssignment(node)
	if err != nil {
		return nil, &FormatError{Input: input, Err: err}
	}
	if obj.Debug {
		obj.logf("")("assignment: %s", a)
	}
	return a, nil
}

// ParseExpression parses an expression with the built-in operators.
func ParseExpression(input string) (expr.Expr, error) {
	return (&Lang{}).ParseExpression(input)
}

// ParseExpressionWithTyping parses an expression with the built-in operators
// and the variables of the typing.
func ParseExpressionWithTyping(input string, typing *types.Typing) (expr.Expr, error) {
	return (&Lang{}).ParseExpressionWithTyping(input, typing)
}

// ParseTest parses the legacy test syntax with the built-in operators.
func ParseTest(input string, typing *types.Typing) (expr.Expr, error) {
	return (&Lang{}).ParseTest(input, typing)
}

// ParseAssignment parses an assignment with the built-in operators.
func ParseAssignment(input string) (*expr.Assignment, error) {
	return (&Lang{}).ParseAssignment(input)
}

// ErrorStrings returns the messages of the individual errors inside of err, for
// display.
func ErrorStrings(err error) []string {
	errs := errwrap.Errors(err)
	if e, ok := err.(*FormatError); ok {
		errs = e.Errors()
	}
	s := []string{}
	for _, x := range errs {
		s = append(s, strings.TrimSpace(x.Error()))
	}
	return s
}
