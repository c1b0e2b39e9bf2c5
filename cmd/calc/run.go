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

package calc

import (
	"fmt"
	"os"
	"strconv"

	"github.com/normanaranez/recipe-app-api/pkg/calc"
	"github.com/normanaranez/recipe-app-api/pkg/cli"
)

var CalcCmd = &cli.Command{
	Run:       calcCmdRun,
	UsageLine: "calc (add|subtract) <x> <y>",
	Short:     "evaluate the sample arithmetic helpers",
	Long: `
Evaluates the sample arithmetic helpers against two integers and prints
the result. Exists to smoke test the command plumbing.
    `,
}

func calcCmdRun(cmd *cli.Command, args []string) error {
	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.ParseError(err)
	}
	rest := cmd.FlagSet.Args()
	if len(rest) != 3 {
		return cli.ParseError(fmt.Errorf("expected an operation and two integers"))
	}

	x, err := strconv.Atoi(rest[1])
	if err != nil {
		return cli.ParseError(fmt.Errorf("not an integer: %s", rest[1]))
	}
	y, err := strconv.Atoi(rest[2])
	if err != nil {
		return cli.ParseError(fmt.Errorf("not an integer: %s", rest[2]))
	}

	var res int
	switch rest[0] {
	case "add":
		res = calc.Add(x, y)
	case "subtract":
		res = calc.Subtract(x, y)
	default:
		return cli.ParseError(fmt.Errorf("unknown operation: %s", rest[0]))
	}

	fmt.Fprintln(os.Stdout, res)
	return nil
}
