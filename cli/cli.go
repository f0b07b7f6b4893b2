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

// Package cli handles all of the core command line parsing. It's the first
// entry point after the real main function, and it runs the parser of the
// attribute language on the given input.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	cliUtil "github.com/graphgrammar/attrlang/cli/util"
	"github.com/graphgrammar/attrlang/lang"
	"github.com/graphgrammar/attrlang/lang/types"
	"github.com/graphgrammar/attrlang/util/errwrap"

	"github.com/alexflint/go-arg"
	"github.com/sanity-io/litter"
	"github.com/spf13/afero"
)

// CLI is the entry point for using attrlang normally from the CLI.
func CLI(ctx context.Context, data *cliUtil.Data) error {
	// test for sanity
	if data == nil {
		return fmt.Errorf("this CLI was not run correctly")
	}
	if data.Program == "" || data.Version == "" {
		return fmt.Errorf("program was not compiled correctly")
	}
	if data.Fs == nil {
		data.Fs = afero.NewOsFs()
	}
	if data.Stdout == nil {
		data.Stdout = os.Stdout
	}

	args := Args{}
	args.version = data.Version // copy this in
	args.description = data.Tagline

	config := arg.Config{
		Program: data.Program,
	}
	parser, err := arg.NewParser(config, &args)
	if err != nil {
		// programming error
		return errwrap.Wrapf(err, "cli config error")
	}
	err = parser.Parse(data.Args[1:]) // args[0] is the program name
	if err == arg.ErrHelp {
		parser.WriteHelp(data.Stdout)
		return nil
	}
	if err == arg.ErrVersion {
		fmt.Fprintf(data.Stdout, "%s\n", data.Version) // byon: bring your own newline
		return nil
	}
	if err != nil {
		return cliUtil.CliParseError(err) // consistent errors
	}

	if ok, err := args.Run(ctx, data); err != nil {
		return err
	} else if ok { // did we activate one of the commands?
		return nil
	}

	// print help if no subcommands are set
	parser.WriteHelp(data.Stdout)

	return nil
}

// Args is the CLI parsing structure and type of the parsed result. This
// particular struct is the top-most one.
type Args struct {
	ExprCmd *ExprArgs `arg:"subcommand:expr" help:"parse and type an expression"`

	AssignCmd *AssignArgs `arg:"subcommand:assign" help:"parse and type an assignment"`

	OperatorsCmd *OperatorsArgs `arg:"subcommand:operators" help:"list the built-in operators"`

	// version is a private handle for our version string.
	version string `arg:"-"` // ignored from parsing

	// description is a private handle for our description string.
	description string `arg:"-"` // ignored from parsing
}

// Version returns the version string. Implementing this signature is part of
// the API for the cli library.
func (obj *Args) Version() string {
	return obj.version
}

// Description returns a description string. Implementing this signature is part
// of the API for the cli library.
func (obj *Args) Description() string {
	return obj.description
}

// Run executes the correct subcommand. It errors if there's ever an error. It
// returns true if we did activate one of the subcommands. It returns false if
// we did not. This information is used so that the top-level parser can return
// usage or help information if no subcommand activates.
func (obj *Args) Run(ctx context.Context, data *cliUtil.Data) (bool, error) {
	if cmd := obj.ExprCmd; cmd != nil {
		return cmd.Run(ctx, data)
	}

	if cmd := obj.AssignCmd; cmd != nil {
		return cmd.Run(ctx, data)
	}

	if cmd := obj.OperatorsCmd; cmd != nil {
		return cmd.Run(ctx, data)
	}

	return false, nil // nobody activated
}

// newLang builds the language object that the subcommands share.
func newLang(name string, data *cliUtil.Data) *lang.Lang {
	return &lang.Lang{
		Debug: data.Flags.Debug,
		Logf: func(format string, v ...interface{}) {
			log.Printf(name+": "+format, v...)
		},
	}
}

// readContext returns the context in the file, or the default one if there is
// no file.
func readContext(fs afero.Fs, path string) (*lang.Context, error) {
	if path == "" {
		return lang.DefaultContext(), nil
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, errwrap.Wrapf(err, "can't open context file")
	}
	defer f.Close() // ignore error, it was only read

	cfg, err := lang.ParseContext(f)
	if err != nil {
		return nil, errwrap.Wrapf(err, "bad context file `%s`", path)
	}
	return cfg, nil
}

// contextTyping returns the typing of the context.
func contextTyping(cfg *lang.Context) (*types.Typing, error) {
	typing, err := cfg.Typing()
	if err != nil {
		return nil, errwrap.Wrapf(err, "bad variables")
	}
	return typing, nil
}

// dump returns a full dump of a typed value, for debugging.
func dump(v interface{}) string {
	lo := &litter.Options{
		StripPackageNames: true,
		HidePrivateFields: false, // the expressions only have private fields
		HideZeroValues:    true,
		Separator:         " ",
	}
	return lo.Sdump(v)
}
