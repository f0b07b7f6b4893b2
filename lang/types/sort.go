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

// Package types provides the sorts, the literal values and the typings that
// the attribute expression language is built on.
package types

import (
	"fmt"
)

// Sort is one of the primitive data types of the attribute algebra. The set of
// sorts is closed and two sorts are equal if and only if they are identical.
type Sort int

// These are the available sorts, in declaration order.
const (
	SortBool Sort = iota
	SortInt
	SortReal
	SortString
)

// SortCount is the number of available sorts. It can be used to size arrays
// that are indexed by sort.
const SortCount = int(SortString) + 1

// sortKeywords are the keywords that name each sort in source text.
var sortKeywords = [SortCount]string{
	SortBool:   "bool",
	SortInt:    "int",
	SortReal:   "real",
	SortString: "string",
}

// Sorts returns every sort in declaration order.
func Sorts() []Sort {
	sorts := []Sort{}
	for i := 0; i < SortCount; i++ {
		sorts = append(sorts, Sort(i))
	}
	return sorts
}

// SortOf returns the sort named by the keyword. It errors if the keyword does
// not name any sort.
func SortOf(keyword string) (Sort, error) {
	for i, x := range sortKeywords {
		if x == keyword {
			return Sort(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sort: %s", keyword)
}

// IsSortKeyword returns true if the string is the keyword of a sort.
func IsSortKeyword(s string) bool {
	_, err := SortOf(s)
	return err == nil
}

// Valid returns true if this is one of the declared sorts.
func (obj Sort) Valid() bool {
	return obj >= 0 && int(obj) < SortCount
}

// String returns the keyword of this sort.
func (obj Sort) String() string {
	if !obj.Valid() {
		return fmt.Sprintf("sort(%d)", int(obj))
	}
	return sortKeywords[obj]
}

// UnmarshalYAML is the standard unmarshal method for this struct. It lets us
// write sorts by keyword in the typing context files.
func (obj *Sort) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	sort, err := SortOf(s)
	if err != nil {
		return err
	}
	*obj = sort
	return nil
}

// MarshalYAML is the standard marshal method for this struct.
func (obj Sort) MarshalYAML() (interface{}, error) {
	if !obj.Valid() {
		return nil, fmt.Errorf("invalid sort: %d", int(obj))
	}
	return obj.String(), nil
}
