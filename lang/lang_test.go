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

package lang

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/graphgrammar/attrlang/lang/expr"
	"github.com/graphgrammar/attrlang/lang/interfaces"
	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util"

	"github.com/davecgh/go-spew/spew"
)

func testLang(t *testing.T) *Lang {
	return &Lang{
		Debug: testing.Verbose(),
		Logf: func(format string, v ...interface{}) {
			t.Logf("lang: "+format, v...)
		},
	}
}

func typing(t *testing.T, m map[string]types.Sort) *types.Typing {
	typing, err := types.NewTypingFromMap(m)
	if err != nil {
		t.Fatalf("bad typing: %+v", err)
	}
	return typing
}

// hasErr returns true if any of the individual errors is of the kind.
func hasErr(err error, kind interfaces.Error) bool {
	var e *FormatError
	if !errors.As(err, &e) {
		return false
	}
	for _, x := range e.Errors() {
		if errors.Is(x, kind) {
			return true
		}
	}
	return false
}

func TestScenarios0(t *testing.T) {
	l := testLang(t)

	t.Run("integer addition", func(t *testing.T) {
		e, err := l.ParseExpression("3+4")
		if err != nil {
			t.Fatalf("parse failed with: %+v", err)
		}
		call, ok := e.(*expr.CallExpr)
		if !ok {
			t.Fatalf("expected a call, got: %s", spew.Sdump(e))
		}
		if s := call.Operator().FullName(); s != "int:add" {
			t.Errorf("unexpected operator: %s", s)
		}
		if e.Sort() != types.SortInt {
			t.Errorf("unexpected sort: %s", e.Sort())
		}
		if s := e.String(); s != "call:int:add(int(3), int(4))" {
			t.Errorf("unexpected expression: %s", s)
		}
	})

	t.Run("ambiguous assignment", func(t *testing.T) {
		_, err := l.ParseAssignment("x = self.count")
		if err == nil {
			t.Fatalf("parse passed, expected fail")
		}
		if !strings.Contains(err.Error(), "x = self.count") {
			t.Errorf("error does not name the input: %s", err)
		}
		if !hasErr(err, interfaces.ErrTypeAmbiguous) {
			t.Errorf("expected ambiguity, got: %+v", err)
		}

		a, err := l.ParseAssignment("x = int:self.count")
		if err != nil {
			t.Fatalf("parse failed with: %+v", err)
		}
		f, ok := a.RHS().(*expr.FieldExpr)
		if !ok || a.LHS() != "x" || f.Target() != "" || f.Field() != "count" || f.Sort() != types.SortInt {
			t.Errorf("unexpected assignment: %s", a)
		}
	})

	t.Run("parameter and constant", func(t *testing.T) {
		e, err := l.ParseExpression("$0 && true")
		if err != nil {
			t.Fatalf("parse failed with: %+v", err)
		}
		if s := e.String(); s != "call:bool:and(param($0: bool), bool(true))" {
			t.Errorf("unexpected expression: %s", s)
		}
	})

	t.Run("nested field", func(t *testing.T) {
		_, err := l.ParseExpression("a.b.c")
		if !hasErr(err, interfaces.ErrTypeNestedField) {
			t.Fatalf("expected a nested field error, got: %+v", err)
		}
		if !strings.Contains(err.Error(), "nested field expression not supported") {
			t.Errorf("unexpected message: %s", err)
		}
	})

	t.Run("unterminated call", func(t *testing.T) {
		_, err := l.ParseExpression("foo(")
		if !hasErr(err, interfaces.ErrParseExpectedClose) {
			t.Fatalf("expected a missing close error, got: %+v", err)
		}
	})

	t.Run("negative constant", func(t *testing.T) {
		a, err := l.ParseExpression("-3")
		if err != nil {
			t.Fatalf("parse failed with: %+v", err)
		}
		b, err := l.ParseExpression("int:-3")
		if err != nil {
			t.Fatalf("parse failed with: %+v", err)
		}
		if _, ok := b.(*expr.Constant); !ok {
			t.Errorf("expected a constant, got: %s", b)
		}
		if err := expr.Cmp(a, b); err != nil {
			t.Errorf("expected equal constants: %+v", err)
		}
		if b.ParseString() != "int:-3" {
			t.Errorf("unexpected parse string: %s", b.ParseString())
		}
	})
}

func TestRoundTrip0(t *testing.T) {
	m := map[string]types.Sort{
		"x":    types.SortInt,
		"r":    types.SortReal,
		"s":    types.SortString,
		"flag": types.SortBool,
	}
	code := util.Code(`
	x + 1
	-x * 2
	-(x + 1) * 2
	x - (1 - 2)
	r / 2.5 >= 1.0
	!flag || x != 3 && s == "a\"b"
	real:self.ratio * r
	int:n.count % 3
	min(x, abs(-7))
	to_real(x) + r
	length(s + "!") > 2
	real:$0 + $1
	int:(int:$0 + 1)
	`)

	for index, line := range strings.Split(strings.TrimSpace(code), "\n") {
		line = strings.TrimSpace(line)
		t.Run(fmt.Sprintf("test #%d (%s)", index, line), func(t *testing.T) {
			l := testLang(t)
			e, err := l.ParseExpressionWithTyping(line, typing(t, m))
			if err != nil {
				t.Fatalf("parse failed with: %+v", err)
			}
			if e.ParseString() != line {
				t.Errorf("parse string is not the source: %s", e.ParseString())
			}
			for _, s := range []string{e.ParseString(), e.Relabel(expr.BinaryLabel("a"), expr.BinaryLabel("b")).ParseString()} {
				again, err := l.ParseExpressionWithTyping(s, e.Typing())
				if err != nil {
					t.Errorf("reparse of `%s` failed with: %+v", s, err)
					continue
				}
				if err := expr.Cmp(e, again); err != nil {
					t.Errorf("round trip of `%s`: %+v", s, err)
				}
			}

			// a synthesized parse string reads back the same way
			synth := e.Relabel(expr.BinaryLabel("count"), expr.BinaryLabel("total"))
			synth = synth.Relabel(expr.BinaryLabel("total"), expr.BinaryLabel("count"))
			again, err := l.ParseExpressionWithTyping(synth.ParseString(), e.Typing())
			if err != nil {
				t.Fatalf("reparse of `%s` failed with: %+v", synth.ParseString(), err)
			}
			if err := expr.Cmp(e, again); err != nil {
				t.Errorf("round trip of `%s`: %+v", synth.ParseString(), err)
			}
		})
	}
}

func TestDeterminism0(t *testing.T) {
	for _, code := range []string{"3 + x * 2", "self.a == self.b", "1 + true", "foo(", "$0.x"} {
		a, errA := ParseExpression(code)
		b, errB := ParseExpression(code)
		if (errA == nil) != (errB == nil) {
			t.Errorf("`%s`: different outcomes", code)
			continue
		}
		if errA != nil {
			if errA.Error() != errB.Error() {
				t.Errorf("`%s`: different errors:\n%s\n%s", code, errA, errB)
			}
			continue
		}
		if err := expr.Cmp(a, b); err != nil {
			t.Errorf("`%s`: %+v", code, err)
		}
	}
}

func TestAmbiguity0(t *testing.T) {
	_, err := ParseExpression("$0 + $1")
	if !hasErr(err, interfaces.ErrTypeAmbiguous) {
		t.Errorf("expected ambiguity, got: %+v", err)
	}

	e, err := ParseExpression("real:$0 + $1")
	if err != nil {
		t.Fatalf("parse failed with: %+v", err)
	}
	call, ok := e.(*expr.CallExpr)
	if !ok || call.Operator().FullName() != "real:add" {
		t.Errorf("expected the real addition, got: %s", e)
	}

	// the prefix binds to the literal, which is an integer
	_, err = ParseExpression("real:3+4")
	if !hasErr(err, interfaces.ErrParsePrefixConflict) {
		t.Errorf("expected a prefix conflict, got: %+v", err)
	}
	e, err = ParseExpression("3.0+4.0")
	if err != nil || e.Sort() != types.SortReal {
		t.Errorf("expected a real sum, got: %v (%+v)", e, err)
	}
}

// TestSortPrefix0 pins down that a sort prefix binds to the operand right
// after it, so it never widens the sort of a literal.
func TestSortPrefix0(t *testing.T) {
	type test struct { // an individual test
		name string
		code string
		kind interfaces.Error // expected error kind, if failing
		sort types.Sort
		disp string
	}
	values := []test{}

	values = append(values, test{name: "int literal under real", code: "real:3+4", kind: interfaces.ErrParsePrefixConflict})
	values = append(values, test{name: "int literal under real right", code: "3+real:4", kind: interfaces.ErrParsePrefixConflict})
	values = append(values, test{name: "int sum under real", code: "real:(3+4)", kind: interfaces.ErrTypeNotApplicable})
	values = append(values, test{name: "mixed operands", code: "real:3.0+4", kind: interfaces.ErrTypeNotApplicable})
	values = append(values, test{name: "int literal under int", code: "int:3+4", sort: types.SortInt, disp: "3 + 4"})
	values = append(values, test{name: "real literals", code: "real:3.0+4.0", sort: types.SortReal, disp: "3.0 + 4.0"})
	values = append(values, test{name: "parameters under real", code: "real:$0 + $1", sort: types.SortReal, disp: "$0 + $1"})

	names := []string{}
	for index, tc := range values { // run all the tests
		if util.StrInList(tc.name, names) {
			t.Errorf("test #%d: duplicate sub test name of: %s", index, tc.name)
			continue
		}
		names = append(names, tc.name)

		t.Run(fmt.Sprintf("test #%d (%s)", index, tc.name), func(t *testing.T) {
			e, err := ParseExpression(tc.code)
			if tc.kind != "" {
				if !hasErr(err, tc.kind) {
					t.Errorf("test #%d: expected error kind `%s`, got: %v (%+v)", index, tc.kind, e, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("test #%d: parse failed with: %+v", index, err)
			}
			if e.Sort() != tc.sort || e.DisplayString() != tc.disp {
				t.Errorf("test #%d: unexpected expression: %s", index, spew.Sdump(e))
			}
			if s := e.ParseString(); s != tc.code {
				t.Errorf("test #%d: expected parse `%s`, got `%s`", index, tc.code, s)
			}
		})
	}
}

func TestTypingConflict0(t *testing.T) {
	must := func(e expr.Expr, err error) expr.Expr {
		if err != nil {
			t.Fatalf("can't build expression: %+v", err)
		}
		return e
	}
	eq := operators.Default().Infix("==").For(types.SortInt)
	length := operators.Default().Call("length", 1).For(types.SortString)
	_, err := expr.NewCallExpr(eq, []expr.Expr{
		must(expr.NewVariable(types.SortInt, "x")),
		must(expr.NewCallExpr(length, []expr.Expr{must(expr.NewVariable(types.SortString, "x"))})),
	})
	if err == nil {
		t.Errorf("expected a typing conflict")
	}
}

func TestRelabel0(t *testing.T) {
	e, err := ParseExpression("self.count > 0 && other.count < 10 && int:self.size > 1")
	if err != nil {
		t.Fatalf("parse failed with: %+v", err)
	}
	if x := e.Relabel(expr.BinaryLabel("missing"), expr.BinaryLabel("total")); x != e {
		t.Errorf("expected the same instance on a miss")
	}
	x := e.Relabel(expr.BinaryLabel("count"), expr.BinaryLabel("total"))
	if x == e {
		t.Fatalf("expected a new instance")
	}
	if s := x.DisplayString(); s != "total > 0 && other.total < 10 && size > 1" {
		t.Errorf("unexpected relabel: %s", s)
	}
	if s := e.DisplayString(); s != "count > 0 && other.count < 10 && size > 1" {
		t.Errorf("relabel changed the original: %s", s)
	}
}

func TestRelabel1(t *testing.T) {
	type test struct { // an individual test
		name  string
		label string
		parse string // empty if the relabel must be refused
	}
	values := []test{}

	values = append(values, test{"identifier", "total", "int:self.total + 1"})
	values = append(values, test{"underscore", "_total", "int:self._total + 1"})
	values = append(values, test{"bool literal segment", "true", "int:self.true + 1"})
	values = append(values, test{"dash", "a-b", ""})
	values = append(values, test{"space", "total count", ""})
	values = append(values, test{"leading digit", "9lives", ""})
	values = append(values, test{"dotted", "a.b", ""})
	values = append(values, test{"empty", "", ""})

	names := []string{}
	for index, tc := range values { // run all the tests
		if util.StrInList(tc.name, names) {
			t.Errorf("test #%d: duplicate sub test name of: %s", index, tc.name)
			continue
		}
		names = append(names, tc.name)

		t.Run(fmt.Sprintf("test #%d (%s)", index, tc.name), func(t *testing.T) {
			e, err := ParseExpression("int:self.count + 1")
			if err != nil {
				t.Fatalf("test #%d: parse failed with: %+v", index, err)
			}
			x := e.Relabel(expr.BinaryLabel("count"), expr.BinaryLabel(tc.label))
			if tc.parse == "" {
				if x != e {
					t.Errorf("test #%d: expected the relabel to be refused, got: %s", index, x.ParseString())
				}
				return
			}
			if s := x.ParseString(); s != tc.parse {
				t.Errorf("test #%d: expected parse `%s`, got `%s`", index, tc.parse, s)
			}
			y, err := ParseExpressionWithTyping(x.ParseString(), x.Typing())
			if err != nil {
				t.Fatalf("test #%d: reparse failed with: %+v", index, err)
			}
			if err := expr.Cmp(x, y); err != nil {
				t.Errorf("test #%d: relabeled expression does not round trip: %+v", index, err)
			}
		})
	}
}

func TestParseTest0(t *testing.T) {
	m := map[string]types.Sort{"x": types.SortInt}
	e, err := ParseTest("x = 3", typing(t, m))
	if err != nil {
		t.Fatalf("parse failed with: %+v", err)
	}
	if e.Sort() != types.SortBool || e.ParseString() != "x == 3" {
		t.Errorf("unexpected test: %s", e)
	}

	e, err = ParseTest("x > 3", typing(t, m))
	if err != nil {
		t.Fatalf("parse failed with: %+v", err)
	}
	if e.ParseString() != "x > 3" {
		t.Errorf("unexpected test: %s", e)
	}

	if _, err := ParseExpressionWithTyping("x = 3", typing(t, m)); err == nil {
		t.Errorf("expected an assignment to fail in an expression")
	}
}

func TestFormatError0(t *testing.T) {
	_, err := ParseExpression("(1 + true) * (\"a\" - 2)")
	var e *FormatError
	if !errors.As(err, &e) {
		t.Fatalf("expected a format error, got: %+v", err)
	}
	if n := len(e.Errors()); n != 2 {
		t.Errorf("expected 2 errors, got %d: %s", n, e)
	}
	s := e.Error()
	if !strings.HasPrefix(s, "can't parse `(1 + true) * (\"a\" - 2)`\n\t* ") {
		t.Errorf("unexpected message: %s", s)
	}
	if n := len(ErrorStrings(err)); n != 2 {
		t.Errorf("expected 2 strings, got %d", n)
	}
}
