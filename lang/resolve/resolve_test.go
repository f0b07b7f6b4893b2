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

//go:build !root

package resolve

import (
	"errors"
	"fmt"
	"testing"

	"github.com/graphgrammar/attrlang/lang/expr"
	"github.com/graphgrammar/attrlang/lang/interfaces"
	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/parser"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util"
	"github.com/graphgrammar/attrlang/util/errwrap"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
)

func hasErr(err error, kind interfaces.Error) bool {
	for _, e := range errwrap.Errors(err) {
		if errors.Is(e, kind) {
			return true
		}
	}
	return false
}

func parse(t *testing.T, code string, mode parser.Mode) *parser.Node {
	p := &parser.Parser{
		Registry: operators.Default(),
		Logf: func(format string, v ...interface{}) {
			t.Logf("parser: "+format, v...)
		},
	}
	node, err := p.Parse(code, mode)
	if err != nil {
		t.Fatalf("parse of `%s` failed: %+v", code, err)
	}
	return node
}

func testResolver(t *testing.T, m map[string]types.Sort) *Resolver {
	typing, err := types.NewTypingFromMap(m)
	if err != nil {
		t.Fatalf("bad typing: %+v", err)
	}
	return &Resolver{
		Typing: typing,
		Debug:  testing.Verbose(),
		Logf: func(format string, v ...interface{}) {
			t.Logf("resolve: "+format, v...)
		},
	}
}

func TestResolve0(t *testing.T) {
	type test struct { // an individual test
		name   string
		code   string
		mode   parser.Mode
		typing map[string]types.Sort
		fail   bool
		kind   interfaces.Error // expected error kind, if failing
		sort   types.Sort
		disp   string // expected display string
		parse  string // expected parse string
		term   bool
		closed bool
	}
	values := []test{}

	{
		values = append(values, test{
			name:   "integer addition",
			code:   `3+4`,
			sort:   types.SortInt,
			disp:   `3 + 4`,
			parse:  `3+4`,
			term:   true,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "real multiplication",
			code:   `1.5 * 2.0`,
			sort:   types.SortReal,
			disp:   `1.5 * 2.0`,
			parse:  `1.5 * 2.0`,
			term:   true,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "string concatenation",
			code:   `"a" + "b"`,
			sort:   types.SortString,
			disp:   `"a" + "b"`,
			parse:  `"a" + "b"`,
			term:   true,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "variable from typing",
			code:   `x + 1`,
			typing: map[string]types.Sort{"x": types.SortInt},
			sort:   types.SortInt,
			disp:   `x + 1`,
			parse:  `x + 1`,
			term:   false,
			closed: false,
		})
	}
	{
		values = append(values, test{
			name:   "unknown name is a field of self",
			code:   `count > 0`,
			sort:   types.SortBool,
			disp:   `count > 0`,
			parse:  `count > 0`,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "explicit self field",
			code:   `self.count + 1`,
			sort:   types.SortInt,
			disp:   `count + 1`,
			parse:  `self.count + 1`,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "field of another node",
			code:   `n.count * 2.0`,
			sort:   types.SortReal,
			disp:   `n.count * 2.0`,
			parse:  `n.count * 2.0`,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "prefixed field",
			code:   `int:self.count`,
			sort:   types.SortInt,
			disp:   `count`,
			parse:  `int:self.count`,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "prefix removes the ambiguity of parameters",
			code:   `real:$0 + $1`,
			sort:   types.SortReal,
			disp:   `$0 + $1`,
			parse:  `real:$0 + $1`,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "named operator",
			code:   `min(1, 2)`,
			sort:   types.SortInt,
			disp:   `min(1, 2)`,
			parse:  `min(1, 2)`,
			term:   true,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "string length",
			code:   `length("ab") + 1`,
			sort:   types.SortInt,
			disp:   `length("ab") + 1`,
			parse:  `length("ab") + 1`,
			term:   true,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "negative constant is folded",
			code:   `-1`,
			sort:   types.SortInt,
			disp:   `-1`,
			parse:  `-1`,
			term:   true,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "not of a field",
			code:   `!flag`,
			sort:   types.SortBool,
			disp:   `!flag`,
			parse:  `!flag`,
			closed: true,
		})
	}
	{
		values = append(values, test{
			name:   "legacy test form",
			code:   `x = 3`,
			mode:   parser.ModeTest,
			typing: map[string]types.Sort{"x": types.SortInt},
			sort:   types.SortBool,
			disp:   `x == 3`,
			parse:  `x == 3`,
			closed: false,
		})
	}
	{
		values = append(values, test{
			name: "parameters are ambiguous",
			code: `$0 + $1`,
			fail: true,
			kind: interfaces.ErrTypeAmbiguous,
		})
	}
	{
		values = append(values, test{
			name: "bare field is ambiguous",
			code: `self.count`,
			fail: true,
			kind: interfaces.ErrTypeAmbiguous,
		})
	}
	{
		values = append(values, test{
			name: "equality of two fields is ambiguous",
			code: `self.a == self.b`,
			fail: true,
			kind: interfaces.ErrTypeAmbiguous,
		})
	}
	{
		values = append(values, test{
			name: "negation of a field is ambiguous",
			code: `-self.x`,
			fail: true,
			kind: interfaces.ErrTypeAmbiguous,
		})
	}
	{
		values = append(values, test{
			name: "nested field",
			code: `a.b.c + 1`,
			fail: true,
			kind: interfaces.ErrTypeNestedField,
		})
	}
	{
		values = append(values, test{
			name: "mixed sorts",
			code: `1 + true`,
			fail: true,
			kind: interfaces.ErrTypeNotApplicable,
		})
	}
	{
		values = append(values, test{
			name:   "variable of the wrong sort",
			code:   `x + 1`,
			typing: map[string]types.Sort{"x": types.SortBool},
			fail:   true,
			kind:   interfaces.ErrTypeNotApplicable,
		})
	}
	{
		values = append(values, test{
			name:   "prefix disagrees with the typing",
			code:   `int:x`,
			typing: map[string]types.Sort{"x": types.SortBool},
			fail:   true,
			kind:   interfaces.ErrTypePrefixConflict,
		})
	}
	{
		values = append(values, test{
			name: "prefix that no operator yields",
			code: `int:(1 < 2)`,
			fail: true,
			kind: interfaces.ErrTypeNotApplicable,
		})
	}

	names := []string{}
	for index, tc := range values { // run all the tests
		if tc.name == "" {
			t.Errorf("test #%d: not named", index)
			continue
		}
		if util.StrInList(tc.name, names) {
			t.Errorf("test #%d: duplicate sub test name of: %s", index, tc.name)
			continue
		}
		names = append(names, tc.name)

		t.Run(fmt.Sprintf("test #%d (%s)", index, tc.name), func(t *testing.T) {
			node := parse(t, tc.code, tc.mode)
			resolver := testResolver(t, tc.typing)
			e, err := resolver.Resolve(node)

			if !tc.fail && err != nil {
				t.Errorf("test #%d: resolve failed with: %+v", index, err)
				return
			}
			if tc.fail {
				if err == nil {
					t.Errorf("test #%d: resolve passed, expected fail", index)
					t.Logf("test #%d: got: %s", index, spew.Sdump(e))
					return
				}
				if !hasErr(err, tc.kind) {
					t.Errorf("test #%d: expected error kind: %s", index, tc.kind)
					t.Logf("test #%d: got: %+v", index, err)
				}
				return
			}

			if s := e.Sort(); s != tc.sort {
				t.Errorf("test #%d: expected sort %s, got %s", index, tc.sort, s)
			}
			if s := e.DisplayString(); s != tc.disp {
				t.Errorf("test #%d: expected display `%s`, got `%s`", index, tc.disp, s)
			}
			if s := e.ParseString(); s != tc.parse {
				t.Errorf("test #%d: expected parse `%s`, got `%s`", index, tc.parse, s)
			}
			if e.IsTerm() != tc.term {
				t.Errorf("test #%d: expected term: %t", index, tc.term)
			}
			if e.IsClosed() != tc.closed {
				t.Errorf("test #%d: expected closed: %t", index, tc.closed)
			}

			// the parse string reads back to the same expression
			again, err := resolver.Resolve(parse(t, e.ParseString(), parser.ModeExpression))
			if err != nil {
				t.Errorf("test #%d: re-resolve failed with: %+v", index, err)
				return
			}
			if err := expr.Cmp(e, again); err != nil {
				t.Errorf("test #%d: round trip: %+v", index, err)
			}
		})
	}
}

func TestResolve1(t *testing.T) {
	node := parse(t, `-2`, parser.ModeExpression)
	e, err := testResolver(t, nil).Resolve(node)
	if err != nil {
		t.Fatalf("resolve failed with: %+v", err)
	}
	c, ok := e.(*expr.Constant)
	if !ok {
		t.Fatalf("expected a constant, got: %s", e)
	}
	if i := c.Value().Int(); i != -2 {
		t.Errorf("expected -2, got %d", i)
	}
}

func TestResolve2(t *testing.T) {
	node := parse(t, `(1 + true) * ("a" - 2)`, parser.ModeExpression)
	_, err := testResolver(t, nil).Resolve(node)
	if err == nil {
		t.Fatalf("resolve passed, expected fail")
	}
	if n := len(errwrap.Errors(err)); n != 2 {
		t.Errorf("expected 2 errors, got %d: %+v", n, err)
	}
}

func TestResolve3(t *testing.T) {
	node := parse(t, `x + y`, parser.ModeExpression)
	m := map[string]types.Sort{
		"x": types.SortInt,
		"y": types.SortInt,
	}
	e, err := testResolver(t, m).Resolve(node)
	if err != nil {
		t.Fatalf("resolve failed with: %+v", err)
	}
	if s := e.Typing().String(); s != "{x: int, y: int}" {
		t.Errorf("unexpected typing: %s", s)
	}
}

func TestResolveAssignment0(t *testing.T) {
	resolver := testResolver(t, nil)

	a, err := resolver.ResolveAssignment(parse(t, `x = int:self.count + 1`, parser.ModeAssignment))
	if err != nil {
		t.Fatalf("resolve failed with: %+v", err)
	}
	if a.LHS() != "x" {
		t.Errorf("unexpected lhs: %s", a.LHS())
	}
	if s := a.RHS().Sort(); s != types.SortInt {
		t.Errorf("unexpected sort: %s", s)
	}
	if s := a.DisplayString(); s != "x = count + 1" {
		t.Errorf("unexpected display: %s", s)
	}

	_, err = resolver.ResolveAssignment(parse(t, `x = self.count`, parser.ModeAssignment))
	if !hasErr(err, interfaces.ErrTypeAmbiguous) {
		t.Errorf("expected ambiguity, got: %+v", err)
	}

	_, err = resolver.ResolveAssignment(parse(t, `1 + 2`, parser.ModeExpression))
	if !hasErr(err, interfaces.ErrTypeNoAssignment) {
		t.Errorf("expected not an assignment, got: %+v", err)
	}
}

func TestTypeErr0(t *testing.T) {
	node := parse(t, "1 +\n  true", parser.ModeExpression)
	_, err := testResolver(t, nil).Resolve(node)
	var e *TypeErr
	if !errors.As(err, &e) {
		t.Fatalf("expected a type error, got: %+v", err)
	}
	if e.Row != 0 || e.Col != 0 {
		t.Errorf("unexpected position: %d:%d", e.Row, e.Col)
	}
	if e.Str != "1 +\n  true" {
		t.Errorf("unexpected text: %s", e.Str)
	}
}

func TestMissingLogf0(t *testing.T) {
	node := parse(t, `1`, parser.ModeExpression)
	resolver := &Resolver{}
	if _, err := resolver.Resolve(node); err == nil {
		t.Errorf("expected an error without Logf")
	}
}

func TestMalformedTree0(t *testing.T) {
	node := parse(t, `1 + 2`, parser.ModeExpression)
	node.Children = node.Children[:1]
	if _, err := testResolver(t, nil).Resolve(node); err == nil {
		t.Errorf("expected an error for a missing operand")
	}

	node = parse(t, `1 + 2`, parser.ModeExpression)
	node.Children[1] = &parser.Node{}
	if _, err := testResolver(t, nil).Resolve(node); err == nil {
		t.Errorf("expected an error for a node without an operator")
	}
}

func TestResolveNullary0(t *testing.T) {
	pi := &operators.Operator{
		Sort:   types.SortReal,
		Name:   "pi",
		Kind:   operators.KindCall,
		Params: []types.Sort{},
		Result: types.SortReal,
		F: func(input []types.Value) (types.Value, error) {
			return types.NewReal(decimal.RequireFromString("3.14")), nil
		},
	}
	catalog := operators.RealCatalog()
	catalog.Operators = append(catalog.Operators, pi)
	registry := operators.NewRegistry(operators.IntCatalog(), catalog)

	p := &parser.Parser{
		Registry: registry,
		Logf: func(format string, v ...interface{}) {
			t.Logf("parser: "+format, v...)
		},
	}
	for _, code := range []string{`pi()`, `pi() * 2.0`, `-pi()`} {
		node, err := p.Parse(code, parser.ModeExpression)
		if err != nil {
			t.Errorf("parse of `%s` failed: %+v", code, err)
			continue
		}
		e, err := testResolver(t, nil).Resolve(node)
		if err != nil {
			t.Errorf("resolve of `%s` failed: %+v", code, err)
			continue
		}
		if e.Sort() != types.SortReal || !e.IsTerm() || e.DisplayString() != code {
			t.Errorf("unexpected resolution of `%s`: %s", code, spew.Sdump(e))
		}
	}
}
