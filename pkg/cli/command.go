// Copyright 2026 The Recipe App API Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Portions of this code originated in the Go source code, under
// cmd/go/internal/base.

package cli

import (
	"flag"
	"strings"
)

// A Command is an implementation of a single CLI command, like
// '<program> user-server' or '<program> dump-data ...'.
// If Command.Run is nil, it's a documentation pseudo-command accessible only
// via '<program> help [topic]'.
type Command struct {
	// Run runs the command. The args are the arguments after the command
	// name, to be parsed as needed using cmd.FlagSet. Flag parsing failures
	// are to be returned as ParseError(err) so the caller can distinguish
	// them from command execution errors.
	Run func(cmd *Command, args []string) error

	// UsageLine is the one-line usage message.
	//
	// NB: The first word in the line is taken to be the command name.
	UsageLine string

	// Short is the short description shown in the '<program> help' output.
	Short string

	// Long is the long description shown in the '<program> help <command>'
	// output.
	Long string

	// FlagSet is the set of flags specific to the command. It can be
	// populated when constructing the Command struct, or from within the
	// provided Run implementation before parsing the command-line args.
	//
	// NB: FlagSet output is discarded for composability with the rest of
	// this package.
	FlagSet flag.FlagSet
}

type Commands []*Command

// Name returns the command's name: the first word in the usage line.
func (c *Command) Name() string {
	name := c.UsageLine
	if i := strings.Index(name, " "); i >= 0 {
		name = name[:i]
	}
	return name
}

// Runnable reports whether the command can be run; otherwise it is a
// documentation pseudo-command such as 'architecture'.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

// Lookup retrieves the command with the given name, if any.
func (cs Commands) Lookup(name string) (*Command, bool) {
	for _, cmd := range cs {
		if cmd.Name() == name {
			return cmd, true
		}
	}
	return nil, false
}

// parseError wraps errors arising from command-line flag parsing, as opposed
// to errors from the command execution itself. We hold on to a concrete type
// so Process can tell the two apart.
type parseError struct {
	error
}

// ParseError marks the given error as a command-line parse error. Commands
// are expected to wrap cmd.FlagSet.Parse failures with it.
func ParseError(err error) error {
	return parseError{err}
}
