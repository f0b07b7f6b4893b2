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

// Package interfaces contains the error kinds and the source position helpers
// that are shared by the parser, the resolver and the expression model.
package interfaces

// Error is a constant error type that implements error.
type Error string

// Error fulfills the error interface of this type.
func (e Error) Error() string { return string(e) }

// These constants represent the different possible lexer/parser errors.
const (
	ErrLexerUnrecognized      = Error("unrecognized")
	ErrLexerStringBadEscaping = Error("string: bad escaping")
	ErrLexerIntegerOverflow   = Error("integer: overflow")
	ErrLexerRealInvalid       = Error("real: invalid")

	ErrParseError          = Error("parser")
	ErrParseUnexpected     = Error("unexpected token")
	ErrParseExpectedName   = Error("expected a name")
	ErrParseExpectedAssign = Error("expected `=`")
	ErrParseExpectedClose  = Error("expected `)`")
	ErrParseExpectedExpr   = Error("expected an expression")
	ErrParseDoublePrefix   = Error("sort prefix applied twice")
	ErrParsePrefixConflict = Error("sort prefix conflicts with constant")
	ErrParseParamIndex     = Error("malformed parameter index")
	ErrParseUnknownOp      = Error("unknown operator")
	ErrParseArgCount       = Error("wrong number of arguments")
)

// These constants represent the different possible resolution errors.
const (
	ErrTypeNestedField    = Error("nested field expression not supported")
	ErrTypeAmbiguous      = Error("ambiguous typing, add a sort prefix")
	ErrTypeNotApplicable  = Error("operator not applicable to arguments")
	ErrTypePrefixConflict = Error("sort prefix conflicts with inferred sort")
	ErrTypeNoAssignment   = Error("not an assignment")
	ErrTypeUnresolved     = Error("expression has no valid typing")
)
