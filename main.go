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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/graphgrammar/attrlang/cli"
	cliUtil "github.com/graphgrammar/attrlang/cli/util"

	"github.com/spf13/afero"
)

// These constants are some global variables that are used throughout the code.
const (
	tagline = "attribute expression front end for graph transformation rules"
	debug   = false // add additional log messages
	verbose = false // add extra log message output
)

// set at compile time
var (
	program string
	version string
)

func main() {
	if program == "" {
		program = "attrlang"
	}
	if version == "" {
		version = "0.0.0-dev"
	}
	flags := cliUtil.Flags{
		Debug:   debug,
		Verbose: verbose,
	}
	cliUtil.Hello(program, version, flags) // say hello!

	data := &cliUtil.Data{
		Program: program,
		Version: version,
		Tagline: tagline,
		Flags:   flags,
		Args:    os.Args,
		Fs:      afero.NewOsFs(),
		Stdout:  os.Stdout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.CLI(ctx, data); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
		return
	}
}
