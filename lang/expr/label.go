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

package expr

import (
	"fmt"
)

// Role is the role of a label in the surrounding graph.
type Role int

// These are the label roles. Only binary labels name fields.
const (
	RoleBinary   Role = iota // an edge, which is also an attribute field
	RoleFlag                 // a node flag
	RoleNodeType             // a node type
)

// String returns the name of this role.
func (obj Role) String() string {
	switch obj {
	case RoleBinary:
		return "binary"
	case RoleFlag:
		return "flag"
	case RoleNodeType:
		return "type"
	}
	return fmt.Sprintf("role(%d)", int(obj))
}

// Label is a graph label, as renamed by the surrounding graph model.
type Label struct {
	Role Role
	Text string
}

// BinaryLabel is a helper that builds a label with the binary role.
func BinaryLabel(text string) Label {
	return Label{Role: RoleBinary, Text: text}
}

// String returns a visual representation of this label.
func (obj Label) String() string {
	return fmt.Sprintf("%s:%s", obj.Role, obj.Text)
}

// renames returns true if relabeling from one label to the other renames the
// field.
func renames(from, to Label, field string) bool {
	return from.Role == RoleBinary && to.Role == RoleBinary && from.Text == field && from.Text != to.Text
}
