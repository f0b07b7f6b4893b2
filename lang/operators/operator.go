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
	"strings"

	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"
)

// Func is the evaluation function of an operator. It receives exactly as many
// values as the operator has parameters, each of the declared sort.
type Func func(input []types.Value) (types.Value, error)

// Operator is a single, sort specific operation. Operators are built once by
// their catalog and are never modified afterwards.
type Operator struct {
	// Sort is the sort of the catalog this operator belongs to. Together
	// with the name it uniquely identifies the operator.
	Sort types.Sort

	// Name is the canonical, call-style name of this operator.
	Name string

	// Symbol is the optional prefix or infix form of this operator. It is
	// empty for operators that can only be called by name.
	Symbol string

	// Kind is the fixity and precedence of the symbol form. It is KindCall
	// if there is no symbol.
	Kind Kind

	// Params are the sorts of the parameters, in order.
	Params []types.Sort

	// Result is the sort of the value this operator computes.
	Result types.Sort

	// F computes the result.
	F Func
}

// Arity returns the number of parameters of this operator.
func (obj *Operator) Arity() int {
	return len(obj.Params)
}

// FullName returns the uniqueness tag of this operator, eg: int:neg.
func (obj *Operator) FullName() string {
	return fmt.Sprintf("%s:%s", obj.Sort, obj.Name)
}

// HasSymbol returns true if this operator can be written with a symbol.
func (obj *Operator) HasSymbol() bool {
	return obj.Symbol != ""
}

// Display returns the symbol of this operator if it has one, and otherwise its
// name.
func (obj *Operator) Display() string {
	if obj.HasSymbol() {
		return obj.Symbol
	}
	return obj.Name
}

// Signature returns a visual representation of the sorts of this operator, eg:
// int:add(int, int) int.
func (obj *Operator) Signature() string {
	params := []string{}
	for _, x := range obj.Params {
		params = append(params, x.String())
	}
	return fmt.Sprintf("%s(%s) %s", obj.FullName(), strings.Join(params, ", "), obj.Result)
}

// String returns the uniqueness tag of this operator.
func (obj *Operator) String() string {
	return obj.FullName()
}

// Validate checks that this operator is well formed.
func (obj *Operator) Validate() error {
	if obj.Name == "" {
		return fmt.Errorf("operator has no name")
	}
	if !obj.Sort.Valid() {
		return fmt.Errorf("operator `%s` has an invalid sort", obj.Name)
	}
	if !obj.Result.Valid() {
		return fmt.Errorf("operator `%s` has an invalid result sort", obj.FullName())
	}
	for i, x := range obj.Params {
		if !x.Valid() {
			return fmt.Errorf("operator `%s` has an invalid sort for parameter %d", obj.FullName(), i)
		}
	}
	if obj.F == nil {
		return fmt.Errorf("operator `%s` has no implementation", obj.FullName())
	}

	if !obj.HasSymbol() {
		if obj.Kind != KindCall {
			return fmt.Errorf("operator `%s` has no symbol but kind %s", obj.FullName(), obj.Kind)
		}
		return nil
	}
	switch obj.Kind.Fixity() {
	case FixityPrefix:
		if obj.Arity() != 1 {
			return fmt.Errorf("operator `%s` of kind %s must have one parameter", obj.FullName(), obj.Kind)
		}
	case FixityInfix:
		if obj.Arity() != 2 {
			return fmt.Errorf("operator `%s` of kind %s must have two parameters", obj.FullName(), obj.Kind)
		}
	default:
		return fmt.Errorf("operator `%s` has a symbol but kind %s", obj.FullName(), obj.Kind)
	}
	return nil
}

// Call runs the operator after checking the number and the sorts of the input
// values.
func (obj *Operator) Call(input []types.Value) (types.Value, error) {
	if len(input) != obj.Arity() {
		return nil, fmt.Errorf("operator `%s` expects %d arguments, got %d", obj.FullName(), obj.Arity(), len(input))
	}
	for i, x := range input {
		if x == nil {
			return nil, fmt.Errorf("operator `%s` got a nil argument at %d", obj.FullName(), i)
		}
		if x.Sort() != obj.Params[i] {
			return nil, fmt.Errorf("operator `%s` expects %s at %d, got %s", obj.FullName(), obj.Params[i], i, x.Sort())
		}
	}
	result, err := obj.F(input)
	if err != nil {
		return nil, errwrap.Wrapf(err, "operator `%s` failed", obj.FullName())
	}
	if result == nil || result.Sort() != obj.Result {
		// programming error
		return nil, fmt.Errorf("operator `%s` returned a value of the wrong sort", obj.FullName())
	}
	return result, nil
}

// OverloadSet is the group of operators that share a symbol or a name, a kind
// and an arity. It holds at most one operator per catalog sort.
type OverloadSet struct {
	// Key is the symbol or the call-style name of the set.
	Key string

	// Kind is the fixity and precedence of the set.
	Kind Kind

	// Arity is the number of operands of every operator in the set.
	Arity int

	// Operators are the members, ordered by sort.
	Operators []*Operator
}

// For returns the member that belongs to the catalog of the given sort, or nil
// if there is none.
func (obj *OverloadSet) For(sort types.Sort) *Operator {
	for _, x := range obj.Operators {
		if x.Sort == sort {
			return x
		}
	}
	return nil
}

// IsPseudo returns true for the synthesized sets that have no members.
func (obj *OverloadSet) IsPseudo() bool {
	return obj.Kind == KindAssign || obj.Kind == KindAtom
}

// String returns a visual representation of this set, eg: +/2:add.
func (obj *OverloadSet) String() string {
	return fmt.Sprintf("%s/%d:%s", obj.Key, obj.Arity, obj.Kind)
}

// add inserts the operator, keeping the members ordered by sort. It panics on a
// duplicate, since this is a defect of the catalogs.
func (obj *OverloadSet) add(op *Operator) {
	if x := obj.For(op.Sort); x != nil {
		panic(fmt.Sprintf("overload set %s already has an operator for sort %s: %s and %s", obj, op.Sort, x.FullName(), op.FullName()))
	}
	if op.Arity() != obj.Arity {
		panic(fmt.Sprintf("operator %s does not fit arity of overload set %s", op.FullName(), obj))
	}
	i := 0
	for i < len(obj.Operators) && obj.Operators[i].Sort < op.Sort {
		i++
	}
	obj.Operators = append(obj.Operators, nil)
	copy(obj.Operators[i+1:], obj.Operators[i:])
	obj.Operators[i] = op
}
