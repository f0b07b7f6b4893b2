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
	"strings"

	"github.com/graphgrammar/attrlang/util"
	"github.com/graphgrammar/attrlang/util/errwrap"

	"github.com/emirpasic/gods/maps/treemap"
)

// Typing is a finite mapping from variable names to sorts. It records the free
// variables of an expression. Names are kept in order, so that iterating over a
// typing is deterministic. A nil typing is a valid, empty typing for all the
// read-only methods.
type Typing struct {
	m *treemap.Map // string -> Sort
}

// NewTyping returns a new, empty typing.
func NewTyping() *Typing {
	return &Typing{
		m: treemap.NewWithStringComparator(),
	}
}

// NewTypingFromMap builds a typing out of a golang map. This is useful for
// tests and for the typing context files.
func NewTypingFromMap(m map[string]Sort) (*Typing, error) {
	typing := NewTyping()
	for name, sort := range m {
		if err := typing.Add(name, sort); err != nil {
			return nil, err
		}
	}
	return typing, nil
}

// Add binds the name to the sort. Adding a name that is already bound to the
// same sort is a no-op, while binding it to a different sort is an error.
func (obj *Typing) Add(name string, sort Sort) error {
	if name == "" {
		return fmt.Errorf("empty variable name")
	}
	if !sort.Valid() {
		return fmt.Errorf("invalid sort for `%s`", name)
	}
	if obj.m == nil {
		obj.m = treemap.NewWithStringComparator()
	}
	if v, exists := obj.m.Get(name); exists {
		if old := v.(Sort); old != sort {
			return fmt.Errorf("variable `%s` is typed as both %s and %s", name, old, sort)
		}
		return nil
	}
	obj.m.Put(name, sort)
	return nil
}

// Lookup returns the sort bound to the name, if any.
func (obj *Typing) Lookup(name string) (Sort, bool) {
	if obj == nil || obj.m == nil {
		return 0, false
	}
	v, exists := obj.m.Get(name)
	if !exists {
		return 0, false
	}
	return v.(Sort), true
}

// Len returns the number of bound names.
func (obj *Typing) Len() int {
	if obj == nil || obj.m == nil {
		return 0
	}
	return obj.m.Size()
}

// IsEmpty returns true if no names are bound.
func (obj *Typing) IsEmpty() bool {
	return obj.Len() == 0
}

// Names returns the bound names in sorted order.
func (obj *Typing) Names() []string {
	names := []string{}
	if obj == nil || obj.m == nil {
		return names
	}
	for _, k := range obj.m.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Copy returns a copy of this typing. The copy of a nil typing is empty.
func (obj *Typing) Copy() *Typing {
	typing := NewTyping()
	if obj == nil || obj.m == nil {
		return typing
	}
	it := obj.m.Iterator()
	for it.Next() {
		typing.m.Put(it.Key(), it.Value())
	}
	return typing
}

// Union returns a new typing with the bindings of both. It errors if the same
// name is bound to two different sorts. Neither input is modified.
func (obj *Typing) Union(typing *Typing) (*Typing, error) {
	result := obj.Copy()
	for _, name := range typing.Names() {
		sort, _ := typing.Lookup(name)
		if err := result.Add(name, sort); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Cmp returns an error if the two typings don't hold the same bindings.
func (obj *Typing) Cmp(typing *Typing) error {
	if err := util.SortedStrSliceCompare(obj.Names(), typing.Names()); err != nil {
		return errwrap.Wrapf(err, "typings bind different names")
	}
	for _, name := range obj.Names() {
		x, _ := obj.Lookup(name)
		y, _ := typing.Lookup(name)
		if x != y {
			return fmt.Errorf("variable `%s` differs: %s != %s", name, x, y)
		}
	}
	return nil
}

// Map returns the bindings as a golang map.
func (obj *Typing) Map() map[string]Sort {
	m := make(map[string]Sort)
	for _, name := range obj.Names() {
		m[name], _ = obj.Lookup(name)
	}
	return m
}

// String returns a visual representation of this typing, eg: {x: int}.
func (obj *Typing) String() string {
	s := []string{}
	for _, name := range obj.Names() {
		sort, _ := obj.Lookup(name)
		s = append(s, fmt.Sprintf("%s: %s", name, sort))
	}
	return "{" + strings.Join(s, ", ") + "}"
}
