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
	"github.com/graphgrammar/attrlang/lang/interpret"
)

// ExprArgs is the CLI parsing structure and type of the parsed result. This
// particular one contains all the flags for the `expr` subcommand.
type ExprArgs struct {
	cliUtil.ExprArgs // embedded config (can't be a pointer) https://github.com/alexflint/go-arg/issues/240
}

// Run executes the correct subcommand. It errors if there's ever an error. It
// returns true if we did activate one of the subcommands. It returns false if
// we did not.
func (obj *ExprArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	input := strings.TrimSpace(strings.Join(obj.Text, " "))
	if input == "" {
		return false, cliUtil.MissingInput
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	cfg, err := readContext(data.Fs, obj.Context)
	if err != nil {
		return false, err
	}
	if obj.Test { // the flag can only turn it on
		cfg.Test = true
	}

	l := newLang("expr", data)
	e, err := cfg.Parse(l, input)
	if err != nil {
		return false, err
	}

	typing := e.Typing()
	if typing.IsEmpty() {
		typing = nil // print as none
	}

	w := data.Stdout
	fmt.Fprintf(w, "parse: %s\n", e.ParseString())
	fmt.Fprintf(w, "display: %s\n", e.DisplayString())
	fmt.Fprintf(w, "sort: %s\n", e.Sort())
	if typing != nil {
		fmt.Fprintf(w, "typing: %s\n", typing)
	}
	fmt.Fprintf(w, "term: %t\n", e.IsTerm())

	if obj.Eval {
		v, err := interpret.Eval(e)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(w, "value: %s\n", v)
	}
	if obj.Dump {
		fmt.Fprintf(w, "%s\n", dump(e))
	}
	return true, nil
}
