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

package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/graphgrammar/attrlang/util/errwrap"
	"github.com/shopspring/decimal"
)

// Value represents an interface to get values out of each sort. Each literal
// constant in an expression holds one of these.
type Value interface {
	fmt.Stringer // String() string (the literal form that parses back)
	Sort() Sort
	Less(Value) bool // to find the smaller of the two values (for sort)
	Cmp(Value) error // error if the two values aren't the same
	Copy() Value     // returns a copy of this value
	Value() interface{}
	Bool() bool
	Str() string
	Int() int64
	Real() decimal.Decimal
}

// ValueOf takes a golang value and produces the equivalent internal
// representation. This is very useful for writing tests.
func ValueOf(i interface{}) (Value, error) {
	switch x := i.(type) {
	case bool:
		return &BoolValue{V: x}, nil
	case int:
		return &IntValue{V: int64(x)}, nil
	case int64:
		return &IntValue{V: x}, nil
	case float64:
		return &RealValue{V: decimal.NewFromFloat(x)}, nil
	case decimal.Decimal:
		return &RealValue{V: x}, nil
	case string:
		return &StrValue{V: x}, nil
	}
	return nil, fmt.Errorf("unable to represent value of type %T", i)
}

// base implements the missing methods that all sorts need.
type base struct{}

// Bool represents the value of this sort as a bool if it is one. If this is
// not a bool, then this panics.
func (obj *base) Bool() bool {
	panic("not a bool")
}

// Str represents the value of this sort as a string if it is one. If this is
// not a string, then this panics.
func (obj *base) Str() string {
	panic("not a string")
}

// Int represents the value of this sort as an integer if it is one. If this is
// not an integer, then this panics.
func (obj *base) Int() int64 {
	panic("not an int")
}

// Real represents the value of this sort as a decimal if it is one. If this is
// not a real, then this panics.
func (obj *base) Real() decimal.Decimal {
	panic("not a real")
}

// cmpSort is the common head of every Cmp implementation.
func cmpSort(obj, val Value) error {
	if val == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if obj.Sort() != val.Sort() {
		return errwrap.Wrapf(fmt.Errorf("%s != %s", obj.Sort(), val.Sort()), "cannot cmp sorts")
	}
	return nil
}

// BoolValue represents a boolean value.
type BoolValue struct {
	base
	V bool
}

// NewBool creates a new boolean value.
func NewBool(v bool) *BoolValue { return &BoolValue{V: v} }

// String returns the literal form of this value.
func (obj *BoolValue) String() string {
	return strconv.FormatBool(obj.V) // true or false
}

// Sort returns the sort of this value.
func (obj *BoolValue) Sort() Sort { return SortBool }

// Less compares to value and returns true if we're smaller. This panics if the
// two sorts aren't the same.
func (obj *BoolValue) Less(v Value) bool {
	if obj.V != v.(*BoolValue).V { // there must be one false
		return !obj.V // false sorts first
	}
	return false // they're the same
}

// Cmp returns an error if this value isn't the same as the arg passed in.
func (obj *BoolValue) Cmp(val Value) error {
	if obj == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if err := cmpSort(obj, val); err != nil {
		return err
	}
	if obj.V != val.(*BoolValue).V {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *BoolValue) Copy() Value {
	return &BoolValue{V: obj.V}
}

// Value returns the raw value of this sort.
func (obj *BoolValue) Value() interface{} {
	return obj.V
}

// Bool represents the value of this sort as a bool if it is one. If this is
// not a bool, then this panics.
func (obj *BoolValue) Bool() bool {
	return obj.V
}

// IntValue represents an integer value.
type IntValue struct {
	base
	V int64
}

// NewInt creates a new int value.
func NewInt(v int64) *IntValue { return &IntValue{V: v} }

// String returns the literal form of this value.
func (obj *IntValue) String() string {
	return strconv.FormatInt(obj.V, 10)
}

// Sort returns the sort of this value.
func (obj *IntValue) Sort() Sort { return SortInt }

// Less compares to value and returns true if we're smaller. This panics if the
// two sorts aren't the same.
func (obj *IntValue) Less(v Value) bool {
	return obj.V < v.(*IntValue).V
}

// Cmp returns an error if this value isn't the same as the arg passed in.
func (obj *IntValue) Cmp(val Value) error {
	if obj == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if err := cmpSort(obj, val); err != nil {
		return err
	}
	if obj.V != val.(*IntValue).V {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *IntValue) Copy() Value {
	return &IntValue{V: obj.V}
}

// Value returns the raw value of this sort.
func (obj *IntValue) Value() interface{} {
	return obj.V
}

// Int represents the value of this sort as an integer if it is one. If this is
// not an integer, then this panics.
func (obj *IntValue) Int() int64 {
	return obj.V
}

// RealValue represents a real value. It is stored as an arbitrary precision
// decimal so that the literal text survives a round trip unchanged.
type RealValue struct {
	base
	V decimal.Decimal
}

// NewReal creates a new real value.
func NewReal(v decimal.Decimal) *RealValue { return &RealValue{V: v} }

// String returns the literal form of this value. It always carries a decimal
// point, so that it lexes as a real and not as an int.
func (obj *RealValue) String() string {
	s := obj.V.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Sort returns the sort of this value.
func (obj *RealValue) Sort() Sort { return SortReal }

// Less compares to value and returns true if we're smaller. This panics if the
// two sorts aren't the same.
func (obj *RealValue) Less(v Value) bool {
	return obj.V.LessThan(v.(*RealValue).V)
}

// Cmp returns an error if this value isn't the same as the arg passed in.
func (obj *RealValue) Cmp(val Value) error {
	if obj == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if err := cmpSort(obj, val); err != nil {
		return err
	}
	if !obj.V.Equal(val.(*RealValue).V) {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *RealValue) Copy() Value {
	return &RealValue{V: obj.V} // decimals are immutable
}

// Value returns the raw value of this sort.
func (obj *RealValue) Value() interface{} {
	return obj.V
}

// Real represents the value of this sort as a decimal if it is one. If this is
// not a real, then this panics.
func (obj *RealValue) Real() decimal.Decimal {
	return obj.V
}

// StrValue represents a string value.
type StrValue struct {
	base
	V string
}

// NewStr creates a new string value.
func NewStr(v string) *StrValue { return &StrValue{V: v} }

// String returns the literal form of this value.
func (obj *StrValue) String() string {
	return strconv.Quote(obj.V) // wraps in quotes, turns tabs into \t etc...
}

// Sort returns the sort of this value.
func (obj *StrValue) Sort() Sort { return SortString }

// Less compares to value and returns true if we're smaller. This panics if the
// two sorts aren't the same.
func (obj *StrValue) Less(v Value) bool {
	return obj.V < v.(*StrValue).V
}

// Cmp returns an error if this value isn't the same as the arg passed in.
func (obj *StrValue) Cmp(val Value) error {
	if obj == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if err := cmpSort(obj, val); err != nil {
		return err
	}
	if obj.V != val.(*StrValue).V {
		return fmt.Errorf("values are different")
	}
	return nil
}

// Copy returns a copy of this value.
func (obj *StrValue) Copy() Value {
	return &StrValue{V: obj.V}
}

// Value returns the raw value of this sort.
func (obj *StrValue) Value() interface{} {
	return obj.V
}

// Str represents the value of this sort as a string if it is one. If this is
// not a string, then this panics.
func (obj *StrValue) Str() string {
	return obj.V
}
