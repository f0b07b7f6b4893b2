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
	"strconv"
	"strings"

	"github.com/graphgrammar/attrlang/lang/interfaces"
	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"
)

// Mode selects what kind of input the parser accepts at the top level.
type Mode int

// These are the parser modes.
const (
	// ModeExpression accepts a single expression. A top level `=` is an
	// error.
	ModeExpression Mode = iota

	// ModeAssignment accepts `name = expression` only.
	ModeAssignment

	// ModeTest is the legacy test syntax: if the input starts with
	// `name =`, then that `=` is read as an equality test. Otherwise this
	// is the same as ModeExpression.
	ModeTest
)

// String returns the name of this mode.
func (obj Mode) String() string {
	switch obj {
	case ModeExpression:
		return "expression"
	case ModeAssignment:
		return "assignment"
	case ModeTest:
		return "test"
	}
	return fmt.Sprintf("mode(%d)", int(obj))
}

// ParamPrefix is the prefix of parameter names, as in $1.
const ParamPrefix = "$"

// Parser builds untyped parse trees. It holds no state between calls and is
// safe for concurrent use if the registry is not modified.
type Parser struct {
	Registry *operators.Registry

	Debug bool
	Logf  func(format string, v ...interface{})
}

// Parse lexes and parses the input in the given mode. It either returns the
// tree, or an error that contains every problem that was found.
func (obj *Parser) Parse(input string, mode Mode) (*Node, error) {
	if obj.Registry == nil {
		return nil, fmt.Errorf("the Registry is nil")
	}
	if obj.Logf == nil {
		return nil, fmt.Errorf("the Logf function is missing")
	}

	stream, err := Lex(input)
	if stream == nil {
		return nil, err
	}
	if obj.Debug {
		obj.Logf("tokens: %v", stream.Tokens())
	}

	state := &parseState{
		registry: obj.Registry,
		stream:   stream,
		source:   input,
		err:      err, // lexer errors come first
	}

	var root *Node
	switch mode {
	case ModeExpression:
		root = state.expressionRoot()
	case ModeAssignment:
		root = state.assignment()
	case ModeTest:
		root = state.test()
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}

	if state.err != nil {
		return nil, state.err
	}
	if obj.Debug {
		obj.Logf("tree: %s", root)
	}
	return root, nil
}

// parseState is the mutable state of a single parse.
type parseState struct {
	registry *operators.Registry
	stream   *TokenStream
	source   string
	err      error
}

// fail records an error located at the token and returns an error node for
// it.
func (obj *parseState) fail(e interfaces.Error, tok *Token, msg string) *Node {
	obj.failAt(e, tok.Offset, tok.End, msg)
	return obj.errorNode(tok.Offset, tok.End)
}

// failAt records an error that covers the given area of the source. Errors at
// the end of a truncated stream are dropped, since the lexer already reported
// why the input stops there.
func (obj *parseState) failAt(e interfaces.Error, offset, end int, msg string) {
	if obj.stream.Truncated() && offset >= obj.stream.Tokens()[len(obj.stream.Tokens())-1].Offset {
		return
	}
	obj.err = errwrap.Append(obj.err, newLexParseErr(e, obj.source, offset, end, msg))
}

// errorNode builds the sentinel that replaces a subtree that failed.
func (obj *parseState) errorNode(offset, end int) *Node {
	node := &Node{
		Source: obj.source,
		failed: true,
	}
	node.Textarea.Locate(obj.source, offset, end)
	return node
}

// node builds a located node.
func (obj *parseState) node(set *operators.OverloadSet, offset, end int) *Node {
	node := &Node{
		Set:      set,
		Children: []*Node{},
		Source:   obj.source,
	}
	node.Textarea.Locate(obj.source, offset, end)
	return node
}

// call builds a call node over the children.
func (obj *parseState) call(set *operators.OverloadSet, offset, end int, children ...*Node) *Node {
	node := obj.node(set, offset, end)
	node.Children = children
	for _, x := range children {
		if x.failed { // propagate, the error was already reported
			node.failed = true
		}
	}
	return node
}

// bounds returns the offsets that a node covers.
func bounds(node *Node) (int, int) {
	return node.Textarea.Offsets()
}

// expectEOF reports any input that was left over.
func (obj *parseState) expectEOF() {
	if tok := obj.stream.Peek(); tok.Class != ClassEOF {
		obj.fail(interfaces.ErrParseUnexpected, tok, "")
	}
}

// expressionRoot parses a complete expression.
func (obj *parseState) expressionRoot() *Node {
	root := obj.expression(operators.KindAssign.Next())
	obj.expectEOF()
	return root
}

// assignment parses `name = expression`.
func (obj *parseState) assignment() *Node {
	tok := obj.stream.Consume(ClassName, "")
	if tok == nil {
		obj.fail(interfaces.ErrParseExpectedName, obj.stream.Peek(), "")
		return nil
	}
	if strings.Contains(tok.Text, ".") || strings.HasPrefix(tok.Text, ParamPrefix) {
		obj.fail(interfaces.ErrParseExpectedName, tok, "assignment target must be a plain name")
	}
	if obj.stream.Consume(ClassOperator, operators.AssignSymbol) == nil {
		obj.fail(interfaces.ErrParseExpectedAssign, obj.stream.Peek(), "")
		return nil
	}

	lhs := obj.node(obj.registry.Atom(), tok.Offset, tok.End)
	lhs.Name = tok.Text
	rhs := obj.expression(operators.KindAssign.Next())
	obj.expectEOF()

	_, end := bounds(rhs)
	return obj.call(obj.registry.Assign(), tok.Offset, end, lhs, rhs)
}

// test parses the legacy test syntax, where `name = e` means `name == e`.
func (obj *parseState) test() *Node {
	mark := obj.stream.Mark()
	tok := obj.stream.Consume(ClassName, "")
	if tok == nil || obj.stream.Consume(ClassOperator, operators.AssignSymbol) == nil {
		obj.stream.Reset(mark) // not a test, roll back
		return obj.expressionRoot()
	}

	set := obj.registry.Infix("==")
	if set == nil {
		return obj.fail(interfaces.ErrParseUnknownOp, tok, "no equality operator is registered")
	}
	lhs := obj.identifier(tok)
	rhs := obj.expression(operators.KindAssign.Next())
	obj.expectEOF()

	_, end := bounds(rhs)
	node := obj.call(set, tok.Offset, end, lhs, rhs)
	node.Rewritten = true
	return node
}

// expression parses operators whose kind is at least threshold, by precedence
// climbing. Every infix kind associates to the left, so the right operand is
// parsed one level tighter.
func (obj *parseState) expression(threshold operators.Kind) *Node {
	left := obj.operand()
	for {
		tok := obj.stream.Peek()
		if tok.Class != ClassOperator {
			return left
		}
		set := obj.registry.Infix(tok.Text)
		if set == nil || set.Kind < threshold {
			return left // leave it for the caller
		}
		obj.stream.Next()

		next := set.Kind
		if set.Kind.IsLeftAssoc() {
			next = set.Kind.Next()
		}
		right := obj.expression(next)

		start, _ := bounds(left)
		_, end := bounds(right)
		left = obj.call(set, start, end, left, right)
	}
}

// operand parses a prefix application, a sort prefixed operand, a
// parenthesized expression, a call or an atom.
func (obj *parseState) operand() *Node {
	tok := obj.stream.Peek()
	switch tok.Class {
	case ClassOperator:
		set := obj.registry.Prefix(tok.Text)
		if set == nil {
			obj.stream.Next()
			return obj.fail(interfaces.ErrParseExpectedExpr, tok, "")
		}
		obj.stream.Next()
		// prefix operators are admitted at any threshold
		child := obj.expression(set.Kind)
		_, end := bounds(child)
		return obj.call(set, tok.Offset, end, child)

	case ClassSort:
		return obj.prefixed()

	case ClassName:
		obj.stream.Next()
		if obj.stream.Peek().Is(ClassPunct, "(") {
			return obj.application(tok)
		}
		return obj.identifier(tok)

	case ClassConst:
		obj.stream.Next()
		if tok.Value == nil { // already reported by the lexer
			return obj.errorNode(tok.Offset, tok.End)
		}
		node := obj.node(obj.registry.Atom(), tok.Offset, tok.End)
		node.Constant = tok.Value
		return node

	case ClassPunct:
		if tok.Text == "(" {
			return obj.parenthesized()
		}
		// don't consume, the enclosing call wants to see this
		return obj.fail(interfaces.ErrParseExpectedExpr, tok, "")

	case ClassEOF:
		return obj.fail(interfaces.ErrParseExpectedExpr, tok, "end of input")
	}

	obj.stream.Next()
	return obj.fail(interfaces.ErrParseUnexpected, tok, "")
}

// prefixed parses `sort: operand`. The prefix binds at atom precedence, so
// `int:x + y` is `(int:x) + y`.
func (obj *parseState) prefixed() *Node {
	mark := obj.stream.Mark()
	sortTok := obj.stream.Consume(ClassSort, "")
	if sortTok == nil || obj.stream.Consume(ClassSortSep, "") == nil {
		obj.stream.Reset(mark)
		tok := obj.stream.Next()
		return obj.identifier(tok)
	}
	sort, err := types.SortOf(sortTok.Text)
	if err != nil { // programming error in the lexer
		return obj.fail(interfaces.ErrParseError, sortTok, err.Error())
	}

	child := obj.expression(operators.KindAtom)
	if child.failed {
		return child
	}
	_, end := bounds(child)
	if child.Prefixed {
		obj.failAt(interfaces.ErrParseDoublePrefix, sortTok.Offset, end, "")
		return obj.errorNode(sortTok.Offset, end)
	}
	if child.Constant != nil && child.Constant.Sort() != sort {
		msg := fmt.Sprintf("%s is a constant of sort %s", child.Constant, child.Constant.Sort())
		obj.failAt(interfaces.ErrParsePrefixConflict, sortTok.Offset, end, msg)
		return obj.errorNode(sortTok.Offset, end)
	}

	child.Prefixed = true
	child.Prefix = sort
	child.Textarea.Locate(obj.source, sortTok.Offset, end)
	return child
}

// parenthesized parses `( expression )`.
func (obj *parseState) parenthesized() *Node {
	open := obj.stream.Next()
	inner := obj.expression(operators.KindAssign.Next())
	closing := obj.stream.Consume(ClassPunct, ")")
	if closing == nil {
		obj.fail(interfaces.ErrParseExpectedClose, obj.stream.Peek(), "")
		_, end := bounds(inner)
		return obj.errorNode(open.Offset, end)
	}
	if !inner.failed {
		inner.Textarea.Locate(obj.source, open.Offset, closing.End) // include the parens
	}
	return inner
}

// identifier builds the atom for a name token. Parameter names are checked
// here, since a malformed index can never resolve.
func (obj *parseState) identifier(tok *Token) *Node {
	if strings.HasPrefix(tok.Text, ParamPrefix) {
		if _, err := ParamIndex(tok.Text); err != nil {
			return obj.fail(interfaces.ErrParseParamIndex, tok, err.Error())
		}
	}
	node := obj.node(obj.registry.Atom(), tok.Offset, tok.End)
	node.Name = tok.Text
	return node
}

// application parses the argument list of a call-style operator. The name was
// already consumed, and the next token is the opening parenthesis.
func (obj *parseState) application(name *Token) *Node {
	obj.stream.Next() // (

	if obj.stream.Peek().Class == ClassEOF {
		return obj.fail(interfaces.ErrParseExpectedClose, obj.stream.Peek(), "")
	}

	args := []*Node{}
	var closing *Token
	if closing = obj.stream.Consume(ClassPunct, ")"); closing == nil {
		for {
			args = append(args, obj.expression(operators.KindAssign.Next()))
			if obj.stream.Consume(ClassPunct, ",") != nil {
				continue
			}
			closing = obj.stream.Consume(ClassPunct, ")")
			break
		}
	}
	if closing == nil {
		tok := obj.stream.Peek()
		obj.fail(interfaces.ErrParseExpectedClose, tok, "")
		return obj.errorNode(name.Offset, tok.Offset)
	}

	if strings.Contains(name.Text, ".") || strings.HasPrefix(name.Text, ParamPrefix) {
		return obj.fail(interfaces.ErrParseUnknownOp, name, fmt.Sprintf("`%s` can't be called", name.Text))
	}
	set := obj.registry.Call(name.Text, len(args))
	if set == nil {
		arities := obj.registry.Arities(name.Text)
		if len(arities) == 0 {
			obj.failAt(interfaces.ErrParseUnknownOp, name.Offset, closing.End, fmt.Sprintf("no operator is named `%s`", name.Text))
			return obj.errorNode(name.Offset, closing.End)
		}
		expected := []string{}
		for _, x := range arities {
			expected = append(expected, strconv.Itoa(x))
		}
		msg := fmt.Sprintf("operator `%s` expects %s arguments, got %d", name.Text, strings.Join(expected, " or "), len(args))
		obj.failAt(interfaces.ErrParseArgCount, name.Offset, closing.End, msg)
		return obj.errorNode(name.Offset, closing.End)
	}
	return obj.call(set, name.Offset, closing.End, args...)
}

// ParamIndex returns the index of a parameter name such as $3. It errors if
// the suffix is not a non-negative decimal integer.
func ParamIndex(name string) (int, error) {
	s := strings.TrimPrefix(name, ParamPrefix)
	if s == name {
		return 0, fmt.Errorf("`%s` is not a parameter", name)
	}
	if s == "" {
		return 0, fmt.Errorf("`%s` has no index", name)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("`%s` has a non-numeric index", name)
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("`%s` has an out of range index", name)
	}
	return i, nil
}
