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

// Package resolve contains the type resolver, which turns an untyped parse
// tree into a typed expression by choosing one operator out of each overload
// set.
package resolve

import (
	"fmt"
	"strings"

	"github.com/graphgrammar/attrlang/lang/expr"
	"github.com/graphgrammar/attrlang/lang/interfaces"
	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/parser"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"
)

// NegName is the name of the negation operators, which are folded into the
// constant they negate.
const NegName = "neg"

// TypeErr is a resolution failure for some part of the input.
type TypeErr struct {
	Err interfaces.Error
	Str string // the offending source text
	Msg string // optional detail

	Row int // this is zero-indexed (the first line is 0)
	Col int // this is zero-indexed (the first char is 0)
}

// newTypeErr builds the error for the node.
func newTypeErr(e interfaces.Error, node *parser.Node, msg string) *TypeErr {
	row, col := node.Textarea.Pos()
	return &TypeErr{
		Err: e,
		Str: node.Text(),
		Msg: msg,
		Row: row,
		Col: col,
	}
}

// Error displays this error with all the relevant state information.
func (e *TypeErr) Error() string {
	s := e.Err.Error()
	if e.Msg != "" {
		s = fmt.Sprintf("%s (%s)", s, e.Msg)
	}
	return fmt.Sprintf("%s: `%s` @%d:%d", s, e.Str, e.Row+1, e.Col+1)
}

// Unwrap returns the error kind, so that errors.Is can match on it.
func (e *TypeErr) Unwrap() error {
	return e.Err
}

// candidates holds the possible typed expressions of a node, indexed by sort.
type candidates [types.SortCount]expr.Expr

// sorts returns the sorts that have a candidate.
func (obj *candidates) sorts() []types.Sort {
	sorts := []types.Sort{}
	for i, x := range obj {
		if x != nil {
			sorts = append(sorts, types.Sort(i))
		}
	}
	return sorts
}

// String returns the sorts that have a candidate, eg: int|real.
func (obj *candidates) String() string {
	s := []string{}
	for _, x := range obj.sorts() {
		s = append(s, x.String())
	}
	return strings.Join(s, "|")
}

// Resolver computes typed expressions out of untyped parse trees. The typing
// holds the variables that are in scope. A resolver holds no state between
// calls.
type Resolver struct {
	// Typing is the sort of each variable in scope. It may be nil.
	Typing *types.Typing

	Debug bool
	Logf  func(format string, v ...interface{})
}

// Resolve returns the unique typed expression of the tree. It errors if any
// part can't be typed, or if more than one sort is possible at the root.
func (obj *Resolver) Resolve(node *parser.Node) (expr.Expr, error) {
	if err := obj.validate(node); err != nil {
		return nil, err
	}
	if node.IsAssign() {
		return nil, newTypeErr(interfaces.ErrTypeNoAssignment, node, "an assignment is not an expression")
	}
	state := &resolveState{
		resolver: obj,
		memo:     make(map[*parser.Node]*candidates),
	}
	return state.root(node)
}

// ResolveAssignment returns the assignment that the tree describes. The target
// name is taken as is, and the value is resolved like any other expression.
func (obj *Resolver) ResolveAssignment(node *parser.Node) (*expr.Assignment, error) {
	if err := obj.validate(node); err != nil {
		return nil, err
	}
	if !node.IsAssign() || len(node.Children) != 2 {
		return nil, newTypeErr(interfaces.ErrTypeNoAssignment, node, "")
	}
	state := &resolveState{
		resolver: obj,
		memo:     make(map[*parser.Node]*candidates),
	}
	rhs, err := state.root(node.Children[1])
	if err != nil {
		return nil, err
	}
	lhs := node.Children[0].Name
	a, err := expr.NewAssignment(lhs, rhs, expr.WithSource(node.Text()))
	if err != nil {
		return nil, newTypeErr(interfaces.ErrTypeNoAssignment, node, err.Error())
	}
	return a, nil
}

func (obj *Resolver) validate(node *parser.Node) error {
	if obj.Logf == nil {
		return fmt.Errorf("the Logf function is missing")
	}
	if node == nil {
		return fmt.Errorf("the tree is nil")
	}
	return node.Walk(func(n *parser.Node) error {
		if n.IsError() {
			return fmt.Errorf("the tree contains parse errors")
		}
		if n.Set == nil || len(n.Children) != n.Set.Arity {
			return fmt.Errorf("malformed tree node: `%s`", n.Text())
		}
		return nil
	})
}

// resolveState is the mutable state of a single resolution.
type resolveState struct {
	resolver *Resolver
	memo     map[*parser.Node]*candidates
}

// root resolves the node and requires exactly one candidate.
func (obj *resolveState) root(node *parser.Node) (expr.Expr, error) {
	cands, err := obj.resolve(node)
	if err != nil {
		return nil, err
	}
	sorts := cands.sorts()
	switch len(sorts) {
	case 0:
		return nil, newTypeErr(interfaces.ErrTypeUnresolved, node, "")
	case 1:
		return cands[sorts[0]], nil
	}
	return nil, newTypeErr(interfaces.ErrTypeAmbiguous, node, fmt.Sprintf("could be any of %s", cands))
}

// options returns the factory options for the expression of a node.
func options(node *parser.Node) []expr.Option {
	opts := []expr.Option{expr.WithPrefix(node.Prefixed)}
	if !node.Rewritten {
		opts = append(opts, expr.WithSource(node.Text()))
	}
	return opts
}

// admissible returns the sorts that a node can have given its prefix.
func admissible(node *parser.Node) []types.Sort {
	if node.Prefixed {
		return []types.Sort{node.Prefix}
	}
	return types.Sorts()
}

// resolve computes the candidates of a node, bottom up. Each node is computed
// only once.
func (obj *resolveState) resolve(node *parser.Node) (*candidates, error) {
	if cands, exists := obj.memo[node]; exists {
		return cands, nil
	}

	var cands *candidates
	var err error
	switch {
	case node.IsError():
		err = fmt.Errorf("unexpected error node") // programming error
	case node.IsAtom() && node.Constant != nil:
		cands, err = obj.constant(node)
	case node.IsAtom():
		cands, err = obj.identifier(node)
	case node.IsCall():
		cands, err = obj.call(node)
	default:
		err = newTypeErr(interfaces.ErrTypeUnresolved, node, "unexpected operator")
	}
	if err != nil {
		return nil, err
	}

	if obj.resolver.Debug {
		obj.resolver.Logf("candidates of `%s`: %s", node.Text(), cands)
	}
	obj.memo[node] = cands
	return cands, nil
}

// constant gives a literal its own sort. A disagreeing prefix was already
// rejected by the parser.
func (obj *resolveState) constant(node *parser.Node) (*candidates, error) {
	if node.Prefixed && node.Prefix != node.Constant.Sort() {
		return nil, newTypeErr(interfaces.ErrTypePrefixConflict, node, "")
	}
	c, err := expr.NewConstant(node.Constant, options(node)...)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't build constant")
	}
	cands := &candidates{}
	cands[c.Sort()] = c
	return cands, nil
}

// identifier types a name. Parameters and fields could have any sort, unless
// they are prefixed. Plain names are variables if the typing knows them, and
// fields of self otherwise.
func (obj *resolveState) identifier(node *parser.Node) (*candidates, error) {
	cands := &candidates{}
	segments := node.Segments()

	if len(segments) > 2 {
		return nil, newTypeErr(interfaces.ErrTypeNestedField, node, "")
	}

	if strings.HasPrefix(node.Name, parser.ParamPrefix) {
		index, err := parser.ParamIndex(node.Name)
		if err != nil {
			return nil, newTypeErr(interfaces.ErrTypeUnresolved, node, err.Error())
		}
		for _, sort := range admissible(node) {
			p, err := expr.NewParameter(sort, index, options(node)...)
			if err != nil {
				return nil, errwrap.Wrapf(err, "can't build parameter")
			}
			cands[sort] = p
		}
		return cands, nil
	}

	target, field := "", segments[0]
	if len(segments) == 2 {
		target, field = segments[0], segments[1]
	} else if sort, exists := obj.resolver.Typing.Lookup(field); exists {
		if node.Prefixed && node.Prefix != sort {
			msg := fmt.Sprintf("variable `%s` is of sort %s", field, sort)
			return nil, newTypeErr(interfaces.ErrTypePrefixConflict, node, msg)
		}
		v, err := expr.NewVariable(sort, field, options(node)...)
		if err != nil {
			return nil, errwrap.Wrapf(err, "can't build variable")
		}
		cands[sort] = v
		return cands, nil
	}

	for _, sort := range admissible(node) {
		f, err := expr.NewFieldExpr(sort, target, field, options(node)...)
		if err != nil {
			return nil, newTypeErr(interfaces.ErrTypeUnresolved, node, err.Error())
		}
		cands[sort] = f
	}
	return cands, nil
}

// call chooses the operators of the overload set that apply to the candidates
// of the children. Each operator yields one candidate of its result sort, and
// two operators that yield the same sort are ambiguous.
func (obj *resolveState) call(node *parser.Node) (*candidates, error) {
	children := []*candidates{}
	var reterr error
	for _, x := range node.Children {
		c, err := obj.resolve(x)
		reterr = errwrap.Append(reterr, err) // keep going to find more
		children = append(children, c)
	}
	if reterr != nil {
		return nil, reterr
	}

	cands := &candidates{}
	tried := []string{}
	for _, op := range node.Set.Operators {
		if node.Prefixed && op.Result != node.Prefix {
			continue
		}
		tried = append(tried, op.Signature())

		args := []expr.Expr{}
		for i, sort := range op.Params {
			if c := children[i][sort]; c != nil {
				args = append(args, c)
			}
		}
		if len(args) != op.Arity() {
			continue // not applicable
		}

		e, err := obj.build(node, op, args)
		if err != nil {
			return nil, err
		}
		if other := cands[op.Result]; other != nil {
			var name string
			if c, ok := other.(*expr.CallExpr); ok {
				name = c.Operator().FullName()
			} else {
				name = NegName // folded
			}
			msg := fmt.Sprintf("both `%s` and `%s` yield %s", name, op.FullName(), op.Result)
			return nil, newTypeErr(interfaces.ErrTypeAmbiguous, node, msg)
		}
		cands[op.Result] = e
	}

	if len(cands.sorts()) == 0 {
		argSorts := []string{}
		for _, c := range children {
			argSorts = append(argSorts, c.String())
		}
		msg := fmt.Sprintf("no overload of `%s` takes (%s)", node.Set.Key, strings.Join(argSorts, ", "))
		if len(tried) > 0 {
			msg += "; tried " + strings.Join(tried, ", ")
		} else if node.Prefixed {
			msg += fmt.Sprintf("; none yields %s", node.Prefix)
		}
		return nil, newTypeErr(interfaces.ErrTypeNotApplicable, node, msg)
	}
	return cands, nil
}

// build makes the candidate of one operator. The negation of a constant is
// folded into a negative constant, so that `-1` has a single representation.
func (obj *resolveState) build(node *parser.Node, op *operators.Operator, args []expr.Expr) (expr.Expr, error) {
	if op.Name != NegName || op.Kind != operators.KindNeg || len(args) != 1 {
		return obj.apply(node, op, args)
	}
	if c, ok := args[0].(*expr.Constant); ok {
		v, err := op.Call([]types.Value{c.Value()})
		if err != nil {
			return nil, newTypeErr(interfaces.ErrTypeNotApplicable, node, err.Error())
		}
		e, err := expr.NewConstant(v, options(node)...)
		if err != nil {
			return nil, errwrap.Wrapf(err, "can't fold constant")
		}
		return e, nil
	}
	return obj.apply(node, op, args)
}

// apply makes the candidate of an operator call that is not folded.
func (obj *resolveState) apply(node *parser.Node, op *operators.Operator, args []expr.Expr) (expr.Expr, error) {
	e, err := expr.NewCallExpr(op, args, options(node)...)
	if err != nil {
		return nil, newTypeErr(interfaces.ErrTypeNotApplicable, node, err.Error())
	}
	return e, nil
}
