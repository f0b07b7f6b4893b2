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

package cli

import (
	"context"
	"fmt"
	"strings"

	cliUtil "github.com/graphgrammar/attrlang/cli/util"
)

// AssignArgs is the CLI parsing structure and type of the parsed result. This
// particular one contains all the flags for the `assign` subcommand.
type AssignArgs struct {
	cliUtil.AssignArgs
}

// Run parses the assignment and prints it.
func (obj *AssignArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	input := strings.TrimSpace(strings.Join(obj.Text, " "))
	if input == "" {
		return false, cliUtil.MissingInput
	}

	cfg, err := readContext(data.Fs, obj.Context)
	if err != nil {
		return false, err
	}
	typing, err := contextTyping(cfg)
	if err != nil {
		return false, err
	}

	l := newLang("assign", data)
	a, err := l.ParseAssignmentWithTyping(input, typing)
	if err != nil {
		return false, err
	}

	w := data.Stdout
	fmt.Fprintf(w, "parse: %s\n", a.ParseString())
	fmt.Fprintf(w, "display: %s\n", a.DisplayString())
	fmt.Fprintf(w, "target: %s\n", a.LHS())
	fmt.Fprintf(w, "sort: %s\n", a.RHS().Sort())
	if obj.Dump {
		fmt.Fprintf(w, "%s\n", dump(a))
	}
	return true, nil
}
