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

package operators

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util"

	"github.com/shopspring/decimal"
)

const (
	// ErrDivisionByZero is returned when the divisor of a division or of a
	// modulo is zero.
	ErrDivisionByZero = util.Error("division by zero")

	// ErrIntegerOverflow is returned when an int result doesn't fit.
	ErrIntegerOverflow = util.Error("integer overflow")
)

// DivisionPrecision is the number of decimal places kept by real division.
const DivisionPrecision = 16

var (
	sBool = types.SortBool
	sInt  = types.SortInt
	sReal = types.SortReal
	sStr  = types.SortString
)

// sorts is a tiny helper to build parameter lists.
func sorts(s ...types.Sort) []types.Sort { return s }

// BoolCatalog returns the operators of the bool sort.
func BoolCatalog() *Catalog {
	return &Catalog{
		Sort: sBool,
		Operators: []*Operator{
			{Sort: sBool, Name: "and", Symbol: "&&", Kind: KindAnd, Params: sorts(sBool, sBool), Result: sBool,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewBool(input[0].Bool() && input[1].Bool()), nil
				},
			},
			{Sort: sBool, Name: "or", Symbol: "||", Kind: KindOr, Params: sorts(sBool, sBool), Result: sBool,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewBool(input[0].Bool() || input[1].Bool()), nil
				},
			},
			{Sort: sBool, Name: "not", Symbol: "!", Kind: KindNot, Params: sorts(sBool), Result: sBool,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewBool(!input[0].Bool()), nil
				},
			},
			eqOperator(sBool),
			neqOperator(sBool),
		},
	}
}

// IntCatalog returns the operators of the int sort.
func IntCatalog() *Catalog {
	return &Catalog{
		Sort: sInt,
		Operators: []*Operator{
			{Sort: sInt, Name: "add", Symbol: "+", Kind: KindAdd, Params: sorts(sInt, sInt), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					// FIXME: check for overflow?
					return types.NewInt(input[0].Int() + input[1].Int()), nil
				},
			},
			{Sort: sInt, Name: "sub", Symbol: "-", Kind: KindAdd, Params: sorts(sInt, sInt), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewInt(input[0].Int() - input[1].Int()), nil
				},
			},
			{Sort: sInt, Name: "mul", Symbol: "*", Kind: KindMult, Params: sorts(sInt, sInt), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewInt(input[0].Int() * input[1].Int()), nil
				},
			},
			{Sort: sInt, Name: "div", Symbol: "/", Kind: KindMult, Params: sorts(sInt, sInt), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					if input[1].Int() == 0 {
						return nil, ErrDivisionByZero
					}
					return types.NewInt(input[0].Int() / input[1].Int()), nil
				},
			},
			{Sort: sInt, Name: "mod", Symbol: "%", Kind: KindMult, Params: sorts(sInt, sInt), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					if input[1].Int() == 0 {
						return nil, ErrDivisionByZero
					}
					return types.NewInt(input[0].Int() % input[1].Int()), nil
				},
			},
			{Sort: sInt, Name: "neg", Symbol: "-", Kind: KindNeg, Params: sorts(sInt), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					if input[0].Int() == math.MinInt64 {
						return nil, ErrIntegerOverflow
					}
					return types.NewInt(-input[0].Int()), nil
				},
			},
			cmpOperator(sInt, "lt", "<", func(c int) bool { return c < 0 }),
			cmpOperator(sInt, "le", "<=", func(c int) bool { return c <= 0 }),
			cmpOperator(sInt, "gt", ">", func(c int) bool { return c > 0 }),
			cmpOperator(sInt, "ge", ">=", func(c int) bool { return c >= 0 }),
			eqOperator(sInt),
			neqOperator(sInt),
			minMaxOperator(sInt, "min", true),
			minMaxOperator(sInt, "max", false),
			{Sort: sInt, Name: "abs", Kind: KindCall, Params: sorts(sInt), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					x := input[0].Int()
					if x == math.MinInt64 {
						return nil, ErrIntegerOverflow
					}
					if x < 0 {
						x = -x
					}
					return types.NewInt(x), nil
				},
			},
			{Sort: sInt, Name: "toReal", Kind: KindCall, Params: sorts(sInt), Result: sReal,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewReal(decimal.NewFromInt(input[0].Int())), nil
				},
			},
			toStringOperator(sInt),
		},
	}
}

// RealCatalog returns the operators of the real sort.
func RealCatalog() *Catalog {
	return &Catalog{
		Sort: sReal,
		Operators: []*Operator{
			{Sort: sReal, Name: "add", Symbol: "+", Kind: KindAdd, Params: sorts(sReal, sReal), Result: sReal,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewReal(input[0].Real().Add(input[1].Real())), nil
				},
			},
			{Sort: sReal, Name: "sub", Symbol: "-", Kind: KindAdd, Params: sorts(sReal, sReal), Result: sReal,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewReal(input[0].Real().Sub(input[1].Real())), nil
				},
			},
			{Sort: sReal, Name: "mul", Symbol: "*", Kind: KindMult, Params: sorts(sReal, sReal), Result: sReal,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewReal(input[0].Real().Mul(input[1].Real())), nil
				},
			},
			{Sort: sReal, Name: "div", Symbol: "/", Kind: KindMult, Params: sorts(sReal, sReal), Result: sReal,
				F: func(input []types.Value) (types.Value, error) {
					if input[1].Real().IsZero() {
						return nil, ErrDivisionByZero
					}
					return types.NewReal(input[0].Real().DivRound(input[1].Real(), DivisionPrecision)), nil
				},
			},
			{Sort: sReal, Name: "neg", Symbol: "-", Kind: KindNeg, Params: sorts(sReal), Result: sReal,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewReal(input[0].Real().Neg()), nil
				},
			},
			cmpOperator(sReal, "lt", "<", func(c int) bool { return c < 0 }),
			cmpOperator(sReal, "le", "<=", func(c int) bool { return c <= 0 }),
			cmpOperator(sReal, "gt", ">", func(c int) bool { return c > 0 }),
			cmpOperator(sReal, "ge", ">=", func(c int) bool { return c >= 0 }),
			eqOperator(sReal),
			neqOperator(sReal),
			minMaxOperator(sReal, "min", true),
			minMaxOperator(sReal, "max", false),
			{Sort: sReal, Name: "abs", Kind: KindCall, Params: sorts(sReal), Result: sReal,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewReal(input[0].Real().Abs()), nil
				},
			},
			{Sort: sReal, Name: "toInt", Kind: KindCall, Params: sorts(sReal), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					x := input[0].Real().Truncate(0)
					if !x.BigInt().IsInt64() {
						return nil, ErrIntegerOverflow
					}
					return types.NewInt(x.IntPart()), nil
				},
			},
			toStringOperator(sReal),
		},
	}
}

// StringCatalog returns the operators of the string sort.
func StringCatalog() *Catalog {
	return &Catalog{
		Sort: sStr,
		Operators: []*Operator{
			{Sort: sStr, Name: "concat", Symbol: "+", Kind: KindAdd, Params: sorts(sStr, sStr), Result: sStr,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewStr(input[0].Str() + input[1].Str()), nil
				},
			},
			cmpOperator(sStr, "lt", "<", func(c int) bool { return c < 0 }),
			cmpOperator(sStr, "le", "<=", func(c int) bool { return c <= 0 }),
			cmpOperator(sStr, "gt", ">", func(c int) bool { return c > 0 }),
			cmpOperator(sStr, "ge", ">=", func(c int) bool { return c >= 0 }),
			eqOperator(sStr),
			neqOperator(sStr),
			{Sort: sStr, Name: "length", Kind: KindCall, Params: sorts(sStr), Result: sInt,
				F: func(input []types.Value) (types.Value, error) {
					return types.NewInt(int64(utf8.RuneCountInString(input[0].Str()))), nil
				},
			},
		},
	}
}

// compare returns -1, 0 or 1 for two values of the same sort.
func compare(x, y types.Value) int {
	switch x.Sort() {
	case types.SortInt:
		switch a, b := x.Int(), y.Int(); {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	case types.SortReal:
		return x.Real().Cmp(y.Real())
	case types.SortString:
		return strings.Compare(x.Str(), y.Str())
	case types.SortBool:
		if x.Bool() == y.Bool() {
			return 0
		}
		if x.Less(y) {
			return -1
		}
		return 1
	}
	panic(fmt.Sprintf("unhandled sort: %s", x.Sort()))
}

// cmpOperator builds an ordering comparison for the sort.
func cmpOperator(sort types.Sort, name, symbol string, test func(int) bool) *Operator {
	return &Operator{
		Sort:   sort,
		Name:   name,
		Symbol: symbol,
		Kind:   KindLess,
		Params: sorts(sort, sort),
		Result: types.SortBool,
		F: func(input []types.Value) (types.Value, error) {
			return types.NewBool(test(compare(input[0], input[1]))), nil
		},
	}
}

// eqOperator builds the equality test for the sort.
func eqOperator(sort types.Sort) *Operator {
	return &Operator{
		Sort:   sort,
		Name:   "eq",
		Symbol: "==",
		Kind:   KindEqual,
		Params: sorts(sort, sort),
		Result: types.SortBool,
		F: func(input []types.Value) (types.Value, error) {
			return types.NewBool(input[0].Cmp(input[1]) == nil), nil
		},
	}
}

// neqOperator builds the inequality test for the sort.
func neqOperator(sort types.Sort) *Operator {
	return &Operator{
		Sort:   sort,
		Name:   "neq",
		Symbol: "!=",
		Kind:   KindEqual,
		Params: sorts(sort, sort),
		Result: types.SortBool,
		F: func(input []types.Value) (types.Value, error) {
			return types.NewBool(input[0].Cmp(input[1]) != nil), nil
		},
	}
}

// minMaxOperator builds the min or the max function for the sort.
func minMaxOperator(sort types.Sort, name string, isMin bool) *Operator {
	return &Operator{
		Sort:   sort,
		Name:   name,
		Kind:   KindCall,
		Params: sorts(sort, sort),
		Result: sort,
		F: func(input []types.Value) (types.Value, error) {
			c := compare(input[0], input[1])
			if (isMin && c <= 0) || (!isMin && c >= 0) {
				return input[0].Copy(), nil
			}
			return input[1].Copy(), nil
		},
	}
}

// toStringOperator builds the conversion to string for the sort. It formats
// the value the way it is written in the source text, without quotes.
func toStringOperator(sort types.Sort) *Operator {
	return &Operator{
		Sort:   sort,
		Name:   "toString",
		Kind:   KindCall,
		Params: sorts(sort),
		Result: types.SortString,
		F: func(input []types.Value) (types.Value, error) {
			return types.NewStr(input[0].String()), nil
		},
	}
}
