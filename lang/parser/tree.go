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

package parser

import (
	"fmt"
	"strings"

	"github.com/graphgrammar/attrlang/lang/interfaces"
	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/types"
)

// Node is a node of the untyped parse tree. It is either an atom, which holds
// an identifier or a constant, or a call of an overload set, which holds one
// child per operand. The operator of a call is not chosen yet: that is the job
// of the resolver.
type Node struct {
	// Set is the overload set of a call, or the atom pseudo set.
	Set *operators.OverloadSet

	// Children are the operands of a call. There are exactly Set.Arity
	// of them.
	Children []*Node

	// Name is the identifier of an atom. It may be dotted, or a parameter
	// like $1. It is empty for constants.
	Name string

	// Constant is the literal value of an atom, if any.
	Constant types.Value

	// Prefixed is true if an explicit sort prefix was given, in which case
	// Prefix is that sort.
	Prefixed bool
	Prefix   types.Sort

	// Source is the complete parsed input, and Textarea locates this node
	// inside of it.
	Source   string
	Textarea interfaces.Textarea

	// Rewritten is true if the text of this node is not its own syntax,
	// as with the legacy test form `x = e`, which means `x == e`.
	Rewritten bool

	// failed marks a sentinel node that stands in for a subtree which
	// could not be parsed. Its error was already reported.
	failed bool
}

// IsError returns true if this is a sentinel error node.
func (obj *Node) IsError() bool {
	return obj.failed
}

// IsAtom returns true if this node is an identifier or a constant.
func (obj *Node) IsAtom() bool {
	return !obj.failed && obj.Set != nil && obj.Set.Kind == operators.KindAtom
}

// IsAssign returns true if this node is the root of an assignment.
func (obj *Node) IsAssign() bool {
	return !obj.failed && obj.Set != nil && obj.Set.Kind == operators.KindAssign
}

// IsCall returns true if this node applies an overload set of operators.
func (obj *Node) IsCall() bool {
	return !obj.failed && obj.Set != nil && !obj.Set.IsPseudo()
}

// Kind returns the kind of the top level operator of this node.
func (obj *Node) Kind() operators.Kind {
	if obj.Set == nil {
		return operators.KindAtom
	}
	return obj.Set.Kind
}

// Segments returns the dot separated parts of the name of an atom.
func (obj *Node) Segments() []string {
	if obj.Name == "" {
		return []string{}
	}
	return strings.Split(obj.Name, ".")
}

// Text returns the exact source substring that this node was parsed from.
func (obj *Node) Text() string {
	return obj.Textarea.Text(obj.Source)
}

// String returns a visual representation of this node, for debugging.
func (obj *Node) String() string {
	prefix := ""
	if obj.Prefixed {
		prefix = obj.Prefix.String() + ":"
	}
	switch {
	case obj.failed:
		return "<error>"
	case obj.IsAtom() && obj.Constant != nil:
		return prefix + obj.Constant.String()
	case obj.IsAtom():
		return prefix + obj.Name
	}
	children := []string{}
	for _, x := range obj.Children {
		children = append(children, x.String())
	}
	return fmt.Sprintf("%s%s(%s)", prefix, obj.Set, strings.Join(children, ", "))
}

// Walk runs the function on this node and then on each of its descendants in
// depth first order. It stops and returns the first error.
func (obj *Node) Walk(fn func(*Node) error) error {
	if err := fn(obj); err != nil {
		return err
	}
	for _, x := range obj.Children {
		if err := x.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}
