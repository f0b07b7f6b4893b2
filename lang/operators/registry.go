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

// Package operators holds the operator registry: the sort specific operator
// catalogs, grouped into overload sets that the parser and the resolver look
// up by symbol or by name.
package operators

import (
	"fmt"
	"sort"
	"sync"

	"github.com/graphgrammar/attrlang/lang/types"

	"github.com/iancoleman/strcase"
)

const (
	// AssignSymbol is the symbol of the assignment pseudo operator.
	AssignSymbol = "="

	// AtomName is the name of the pseudo operator that identifiers and
	// constants are built with. It can't be written in the source text.
	AtomName = "_atom"
)

// Catalog is the list of operators that belong to one sort.
type Catalog struct {
	Sort      types.Sort
	Operators []*Operator
}

// setKey identifies an overload set.
type setKey struct {
	name  string
	kind  Kind
	arity int
}

// Registry is the immutable table of every known operator, grouped into
// overload sets. It is safe for concurrent use once built.
type Registry struct {
	operators []*Operator
	sets      map[setKey]*OverloadSet

	prefix map[string]*OverloadSet // by symbol
	infix  map[string]*OverloadSet // by symbol
	arity  map[string][]int        // by call-style name

	assign *OverloadSet
	atom   *OverloadSet
}

// NewRegistry builds the registry out of the catalogs. Every operator is
// grouped under its call-style name, and when it has a symbol, also under that
// symbol and kind. It panics if the catalogs are malformed, since this is a
// programming error.
func NewRegistry(catalogs ...*Catalog) *Registry {
	obj := &Registry{
		operators: []*Operator{},
		sets:      make(map[setKey]*OverloadSet),
		prefix:    make(map[string]*OverloadSet),
		infix:     make(map[string]*OverloadSet),
		arity:     make(map[string][]int),
		assign: &OverloadSet{
			Key:       AssignSymbol,
			Kind:      KindAssign,
			Arity:     2,
			Operators: []*Operator{},
		},
		atom: &OverloadSet{
			Key:       AtomName,
			Kind:      KindAtom,
			Arity:     0,
			Operators: []*Operator{},
		},
	}

	for _, catalog := range catalogs {
		if catalog == nil {
			panic("nil catalog")
		}
		for _, op := range catalog.Operators {
			if op.Sort != catalog.Sort {
				panic(fmt.Sprintf("operator %s is in the %s catalog", op.FullName(), catalog.Sort))
			}
			obj.register(op)
		}
	}

	for name := range obj.arity {
		sort.Ints(obj.arity[name])
	}
	return obj
}

// register adds one operator to every overload set it belongs to.
func (obj *Registry) register(op *Operator) {
	if err := op.Validate(); err != nil {
		panic(fmt.Sprintf("invalid operator: %+v", err))
	}
	if op.Symbol == AssignSymbol {
		panic(fmt.Sprintf("operator %s can't use the assignment symbol", op.FullName()))
	}
	if Normalize(op.Name) != op.Name {
		panic(fmt.Sprintf("operator name %s is not in canonical form", op.Name))
	}
	obj.operators = append(obj.operators, op)

	set := obj.set(op.Name, KindCall, op.Arity())
	if len(set.Operators) == 0 {
		obj.arity[op.Name] = append(obj.arity[op.Name], op.Arity())
	}
	set.add(op)

	if !op.HasSymbol() {
		return
	}
	set = obj.set(op.Symbol, op.Kind, op.Arity())
	index := obj.infix
	if op.Kind.IsPrefix() {
		index = obj.prefix
	}
	if x, exists := index[op.Symbol]; exists && x != set {
		panic(fmt.Sprintf("symbol %s is used with both kind %s and %s", op.Symbol, x.Kind, op.Kind))
	}
	index[op.Symbol] = set
	set.add(op)
}

// set returns the overload set for the key, creating it if needed.
func (obj *Registry) set(name string, kind Kind, arity int) *OverloadSet {
	key := setKey{name: name, kind: kind, arity: arity}
	if set, exists := obj.sets[key]; exists {
		return set
	}
	set := &OverloadSet{
		Key:       name,
		Kind:      kind,
		Arity:     arity,
		Operators: []*Operator{},
	}
	obj.sets[key] = set
	return set
}

// Normalize returns the canonical form of a call-style operator name, so that
// to_real and toReal name the same operator.
func Normalize(name string) string {
	return strcase.ToLowerCamel(name)
}

// Lookup returns the overload set for the symbol or name, kind and arity. It
// returns nil if there is no such set. Call-style names are normalized first.
func (obj *Registry) Lookup(symbolOrName string, kind Kind, arity int) *OverloadSet {
	switch kind {
	case KindAssign:
		if symbolOrName == AssignSymbol && arity == 2 {
			return obj.assign
		}
		return nil
	case KindAtom:
		if arity == 0 {
			return obj.atom
		}
		return nil
	case KindCall:
		symbolOrName = Normalize(symbolOrName)
	}
	return obj.sets[setKey{name: symbolOrName, kind: kind, arity: arity}]
}

// Call returns the call-style overload set for the name and arity, or nil.
func (obj *Registry) Call(name string, arity int) *OverloadSet {
	return obj.Lookup(name, KindCall, arity)
}

// Prefix returns the prefix overload set for the symbol, or nil.
func (obj *Registry) Prefix(symbol string) *OverloadSet {
	return obj.prefix[symbol]
}

// Infix returns the infix overload set for the symbol, or nil.
func (obj *Registry) Infix(symbol string) *OverloadSet {
	return obj.infix[symbol]
}

// Arities returns the sorted list of arities that a call-style name was
// registered with. It is empty if the name is unknown.
func (obj *Registry) Arities(name string) []int {
	arities := []int{}
	arities = append(arities, obj.arity[Normalize(name)]...)
	return arities
}

// Assign returns the assignment pseudo overload set.
func (obj *Registry) Assign() *OverloadSet { return obj.assign }

// Atom returns the atom pseudo overload set.
func (obj *Registry) Atom() *OverloadSet { return obj.atom }

// Operators returns every registered operator, in registration order.
func (obj *Registry) Operators() []*Operator {
	operators := []*Operator{}
	operators = append(operators, obj.operators...)
	return operators
}

// Sets returns every overload set that holds operators, ordered by kind, then
// by key and arity.
func (obj *Registry) Sets() []*OverloadSet {
	sets := []*OverloadSet{}
	for _, set := range obj.sets {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool {
		if sets[i].Kind != sets[j].Kind {
			return sets[i].Kind < sets[j].Kind
		}
		if sets[i].Key != sets[j].Key {
			return sets[i].Key < sets[j].Key
		}
		return sets[i].Arity < sets[j].Arity
	})
	return sets
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry of the built-in catalogs. It is built once, on
// first use, and must be treated as read-only.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(
			BoolCatalog(),
			IntCatalog(),
			RealCatalog(),
			StringCatalog(),
		)
	})
	return defaultRegistry
}
