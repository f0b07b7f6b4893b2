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

package lang

import (
	"fmt"
	"io"
	"sort"

	"github.com/graphgrammar/attrlang/lang/expr"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"

	"gopkg.in/yaml.v2"
)

// ContextFilename is the usual name of a context file.
const ContextFilename = "context.yaml"

// Context is what a caller knows about the place an expression comes from.
// It's usually stored in a yaml file next to a rule, such as:
//
//	test: true
//	variables:
//	  x: int
//	  ratio: real
type Context struct {
	// Test is true if expressions use the legacy test syntax.
	Test bool `yaml:"test"`

	// Variables are the names in scope and their sorts. Any other plain
	// name is a field of the node that owns the expression.
	Variables map[string]types.Sort `yaml:"variables"`

	// bug395 is a flag to workaround the yaml parser resetting all the
	// default struct field values when it finds an empty yaml document.
	// See: https://github.com/go-yaml/yaml/issues/395 for more information.
	bug395 bool
}

// DefaultContext returns the context that is used for absent values.
func DefaultContext() *Context {
	return &Context{
		Variables: make(map[string]types.Sort),

		bug395: true,
	}
}

// UnmarshalYAML is the standard unmarshal method for this struct.
func (obj *Context) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type indirect Context // indirection to avoid infinite recursion
	raw := indirect(*DefaultContext())

	if err := unmarshal(&raw); err != nil {
		return err
	}

	*obj = Context(raw) // restore from indirection with type conversion!
	return nil
}

// ToBytes marshals the struct into a byte array and returns it.
func (obj *Context) ToBytes() ([]byte, error) {
	return yaml.Marshal(obj)
}

// ParseContext reads from some input and returns a *Context struct that
// contains plausible values to be used.
func ParseContext(reader io.Reader) (*Context, error) {
	context := DefaultContext()

	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't read context")
	}
	if err := yaml.UnmarshalStrict(b, context); err != nil {
		return nil, errwrap.Wrapf(err, "can't parse context")
	}

	if !context.bug395 { // we got an empty document
		context = DefaultContext()
	}
	if context.Variables == nil { // `variables:` with nothing in it
		context.Variables = make(map[string]types.Sort)
	}

	if err := context.Validate(); err != nil {
		return nil, errwrap.Wrapf(err, "invalid context")
	}
	return context, nil
}

// Validate returns an error if a variable can't be used as one.
func (obj *Context) Validate() error {
	names := []string{}
	for name := range obj.Variables {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic errors

	var reterr error
	for _, name := range names {
		if _, err := expr.NewVariable(obj.Variables[name], name); err != nil {
			reterr = errwrap.Append(reterr, err)
		}
		if types.IsSortKeyword(name) {
			reterr = errwrap.Append(reterr, fmt.Errorf("variable `%s` is named like a sort", name))
		}
	}
	return reterr
}

// Typing returns the variables as a typing.
func (obj *Context) Typing() (*types.Typing, error) {
	return types.NewTypingFromMap(obj.Variables)
}

// Parse parses an expression within this context.
func (obj *Context) Parse(l *Lang, input string) (expr.Expr, error) {
	typing, err := obj.Typing()
	if err != nil {
		return nil, err
	}
	if obj.Test {
		return l.ParseTest(input, typing)
	}
	return l.ParseExpressionWithTyping(input, typing)
}
