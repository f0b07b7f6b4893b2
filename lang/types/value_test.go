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

package types

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPrint1(t *testing.T) {
	testCases := map[Value]string{
		&BoolValue{V: true}:                        "true",
		&BoolValue{V: false}:                       "false",
		&StrValue{V: ""}:                           `""`,
		&StrValue{V: "hello"}:                      `"hello"`,
		&StrValue{V: "hello\tworld"}:               `"hello\tworld"`,
		&StrValue{V: "say \"hi\""}:                 `"say \"hi\""`,
		&IntValue{V: 0}:                            "0",
		&IntValue{V: 42}:                           "42",
		&IntValue{V: -13}:                          "-13",
		&RealValue{V: decimal.New(15, -1)}:         "1.5",
		&RealValue{V: decimal.New(-42, -1)}:        "-4.2",
		&RealValue{V: decimal.New(3, 0)}:           "3.0",
		&RealValue{V: decimal.Zero}:                "0.0",
		&RealValue{V: decimal.RequireFromString("2.50")}: "2.5",
	}

	for v, exp := range testCases { // run all the tests
		if s := v.String(); s != exp {
			t.Errorf("value %+v printed as `%s`, expected `%s`", v.Value(), s, exp)
		}
	}
}

func TestSorts0(t *testing.T) {
	testCases := map[Value]Sort{
		NewBool(true):          SortBool,
		NewInt(3):              SortInt,
		NewReal(decimal.Zero):  SortReal,
		NewStr("x"):            SortString,
	}
	for v, exp := range testCases {
		if s := v.Sort(); s != exp {
			t.Errorf("value %s has sort %s, expected %s", v, s, exp)
		}
	}
}

func TestCmp0(t *testing.T) {
	if err := NewInt(3).Cmp(NewInt(3)); err != nil {
		t.Errorf("equal ints differ: %+v", err)
	}
	if err := NewInt(3).Cmp(NewInt(4)); err == nil {
		t.Errorf("different ints are equal")
	}
	if err := NewInt(3).Cmp(NewReal(decimal.New(3, 0))); err == nil {
		t.Errorf("int and real must not compare equal")
	}
	if err := NewReal(decimal.RequireFromString("1.50")).Cmp(NewReal(decimal.RequireFromString("1.5"))); err != nil {
		t.Errorf("equal reals differ: %+v", err)
	}
	if err := NewStr("a").Cmp(nil); err == nil {
		t.Errorf("cmp to nil must fail")
	}
	if err := NewBool(false).Cmp(NewBool(false)); err != nil {
		t.Errorf("equal bools differ: %+v", err)
	}
}

func TestCopy0(t *testing.T) {
	values := []Value{
		NewBool(true),
		NewInt(-7),
		NewReal(decimal.RequireFromString("0.25")),
		NewStr("copy"),
	}
	for _, v := range values {
		c := v.Copy()
		if c == v {
			t.Errorf("copy of %s returned the same pointer", v)
		}
		if err := c.Cmp(v); err != nil {
			t.Errorf("copy of %s differs: %+v", v, err)
		}
	}
}

func TestLess0(t *testing.T) {
	ints := []Value{NewInt(3), NewInt(-1), NewInt(2)}
	sort.Slice(ints, func(i, j int) bool { return ints[i].Less(ints[j]) })
	if ints[0].Int() != -1 || ints[2].Int() != 3 {
		t.Errorf("ints sorted wrongly: %v", ints)
	}

	if !NewBool(false).Less(NewBool(true)) {
		t.Errorf("false should sort first")
	}
	if NewBool(true).Less(NewBool(true)) {
		t.Errorf("equal values are never less")
	}
	if !NewReal(decimal.New(-1, 0)).Less(NewReal(decimal.New(1, -3))) {
		t.Errorf("-1.0 should be less than 0.001")
	}
	if !NewStr("abc").Less(NewStr("abd")) {
		t.Errorf("abc should be less than abd")
	}
}

func TestBasePanics0(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic")
		}
	}()
	NewInt(1).Str()
}

func TestValueOf0(t *testing.T) {
	values := map[interface{}]string{
		true:   "true",
		4:      "4",
		int64(-2): "-2",
		"s":    `"s"`,
		0.5:    "0.5",
	}
	for i, exp := range values {
		v, err := ValueOf(i)
		if err != nil {
			t.Errorf("could not convert %v: %+v", i, err)
			continue
		}
		if s := v.String(); s != exp {
			t.Errorf("value of %v is `%s`, expected `%s`", i, s, exp)
		}
	}

	if _, err := ValueOf([]int{1}); err == nil {
		t.Errorf("expected an error for a list")
	}
}
