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
)

// Kind describes the fixity, the precedence and the associativity of an
// operator. Kinds are declared in increasing order of precedence, so that they
// can be compared directly by the parser.
type Kind int

// These are the available operator kinds, from the loosest to the tightest.
const (
	KindAssign Kind = iota // x = e
	KindOr                 // e || e
	KindAnd                // e && e
	KindNot                // !e
	KindEqual              // e == e
	KindLess               // e < e
	KindAdd                // e + e
	KindMult               // e * e
	KindNeg                // -e
	KindAtom               // identifiers and constants
	KindCall               // name(e, e)
)

// Fixity is the position of an operator symbol relative to its operands.
type Fixity int

// These are the available fixities.
const (
	FixityNone Fixity = iota
	FixityPrefix
	FixityInfix
)

var kindNames = map[Kind]string{
	KindAssign: "assign",
	KindOr:     "or",
	KindAnd:    "and",
	KindNot:    "not",
	KindEqual:  "equal",
	KindLess:   "less",
	KindAdd:    "add",
	KindMult:   "mult",
	KindNeg:    "neg",
	KindAtom:   "atom",
	KindCall:   "call",
}

// String returns the name of this kind.
func (obj Kind) String() string {
	if s, exists := kindNames[obj]; exists {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(obj))
}

// Fixity returns the fixity of operators of this kind.
func (obj Kind) Fixity() Fixity {
	switch obj {
	case KindNot, KindNeg:
		return FixityPrefix
	case KindAssign, KindOr, KindAnd, KindEqual, KindLess, KindAdd, KindMult:
		return FixityInfix
	}
	return FixityNone // atoms and call-style applications
}

// IsLeftAssoc returns true if operators of this kind associate to the left.
// Every infix kind does, so `a - b - c` means `(a - b) - c`.
func (obj Kind) IsLeftAssoc() bool {
	return obj.Fixity() == FixityInfix
}

// IsPrefix returns true for prefix operator kinds.
func (obj Kind) IsPrefix() bool { return obj.Fixity() == FixityPrefix }

// IsInfix returns true for infix operator kinds.
func (obj Kind) IsInfix() bool { return obj.Fixity() == FixityInfix }

// Next returns the kind that is one precedence level tighter than this one.
func (obj Kind) Next() Kind {
	if obj >= KindCall {
		return KindCall
	}
	return obj + 1
}
