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

package freeze

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sort"

	"github.com/normanaranez/recipe-app-api/pkg/cli"
)

var FreezeCmd = &cli.Command{
	Run:       freezeCmdRun,
	UsageLine: "freeze [-o <path>]",
	Short:     "print the dependencies compiled into this binary",
	Long: `
Prints the module dependencies compiled into this binary, one
'path version' pair per line, sorted by path. Pinning the output to a file
records the exact dependency set a build shipped with.

Only works on binaries built with module support; otherwise reports that
build information is unavailable.
    `,
}

func freezeCmdRun(cmd *cli.Command, args []string) error {
	var output string
	cmd.FlagSet.StringVar(&output, "o", "",
		"Write the listing to this file instead of standard output")

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.ParseError(err)
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fmt.Errorf("build information unavailable")
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.OpenFile(output, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	writeListing(w, info)
	return nil
}

func writeListing(w io.Writer, info *debug.BuildInfo) {
	deps := make([]*debug.Module, len(info.Deps))
	copy(deps, info.Deps)
	sort.Slice(deps, func(i, j int) bool { return deps[i].Path < deps[j].Path })

	for _, dep := range deps {
		// A replaced module reports the module actually compiled in.
		if dep.Replace != nil {
			dep = dep.Replace
		}
		fmt.Fprintf(w, "%s %s\n", dep.Path, dep.Version)
	}
}
