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

package util

import (
	"reflect"
	"strings"
)

// LookupSubcommand returns the name of the subcommand in the obj, of a struct.
// This is useful for determining the name of the subcommand that was activated.
// It returns an empty string if a specific name was not found.
func LookupSubcommand(obj interface{}, st interface{}) string {
	val := reflect.ValueOf(obj)
	if val.Kind() == reflect.Ptr { // max one de-referencing
		val = val.Elem()
	}

	v := reflect.ValueOf(st) // value of the struct
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := val.Field(i) // value of the field
		if f.Interface() != v.Interface() {
			continue
		}

		field := typ.Field(i)
		alias, ok := field.Tag.Lookup("arg")
		if !ok {
			continue
		}

		prefix := "subcommand"
		split := strings.Split(alias, ":")
		if len(split) != 2 || split[0] != prefix {
			continue
		}

		return split[1] // found
	}
	return "" // not found
}

// ExprArgs is the expr CLI parsing structure and type of the parsed result.
type ExprArgs struct {
	// Text is the expression. Several words are joined with spaces, so
	// that the shell quoting can be skipped for simple input.
	Text []string `arg:"positional,required" help:"the expression to parse"`

	Context string `arg:"--context" help:"path to a yaml context file with the variables in scope"`
	Test    bool   `arg:"--test" help:"accept the legacy test syntax (x = e means x == e)"`
	Eval    bool   `arg:"--eval" help:"evaluate the expression, which must be a term"`
	Dump    bool   `arg:"--dump" help:"dump the typed expression tree"`
}

// AssignArgs is the assign CLI parsing structure and type of the parsed result.
type AssignArgs struct {
	Text []string `arg:"positional,required" help:"the assignment to parse"`

	Context string `arg:"--context" help:"path to a yaml context file with the variables in scope"`
	Dump    bool   `arg:"--dump" help:"dump the typed assignment tree"`
}

// OperatorsArgs is the operators CLI parsing structure and type of the parsed
// result.
type OperatorsArgs struct {
	Sort string `arg:"--sort" help:"only list the operators of this sort catalog"`
}
