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
	"text/tabwriter"

	cliUtil "github.com/graphgrammar/attrlang/cli/util"
	"github.com/graphgrammar/attrlang/lang/operators"
	"github.com/graphgrammar/attrlang/lang/types"
)

const (
	twMinWidth = 0
	twTabWidth = 8
	twPadding  = 2   // ensure columns have at least a space between them
	twPadChar  = ' ' // using a tab here creates 'jumpy' columns on output
	twFlags    = 0
)

// OperatorsArgs is the CLI parsing structure and type of the parsed result.
// This particular one contains all the flags for the `operators` subcommand.
type OperatorsArgs struct {
	cliUtil.OperatorsArgs
}

// Run lists the overload sets of the built-in registry, and their members.
func (obj *OperatorsArgs) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	var only *types.Sort
	if obj.Sort != "" {
		sort, err := types.SortOf(obj.Sort)
		if err != nil {
			return false, cliUtil.CliParseError(err)
		}
		only = &sort
	}

	w := tabwriter.NewWriter(data.Stdout, twMinWidth, twTabWidth, twPadding, twPadChar, twFlags)
	fmt.Fprintf(w, "SET\tOPERATOR\tSIGNATURE\n")
	for _, set := range operators.Default().Sets() {
		for _, op := range set.Operators {
			if only != nil && op.Sort != *only {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", set, op.Display(), op.Signature())
		}
	}
	if err := w.Flush(); err != nil {
		return false, err
	}
	return true, nil
}
