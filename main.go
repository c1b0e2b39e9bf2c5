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

package main

import (
	"os"

	"github.com/normanaranez/recipe-app-api/doc"
	"github.com/normanaranez/recipe-app-api/pkg/cli"

	calc "github.com/normanaranez/recipe-app-api/cmd/calc"
	createsuperuser "github.com/normanaranez/recipe-app-api/cmd/create-superuser"
	dumpdata "github.com/normanaranez/recipe-app-api/cmd/dump-data"
	freeze "github.com/normanaranez/recipe-app-api/cmd/freeze"
	userserver "github.com/normanaranez/recipe-app-api/cmd/user-server"
	waitfor "github.com/normanaranez/recipe-app-api/cmd/wait-for"
)

func main() {
	// We aggregate all the top-level commands (i.e. 'recipe-app-api
	// <command> ...') as needed.
	var commands cli.Commands

	// The user-server is the long-running API process; everything else is a
	// management command ran against it (or against its database directly).
	commands = append(commands, userserver.UserServerCmd)
	commands = append(commands, createsuperuser.CreateSuperuserCmd)
	commands = append(commands, dumpdata.DumpDataCmd)
	commands = append(commands, waitfor.WaitForCmd)
	commands = append(commands, freeze.FreezeCmd)
	commands = append(commands, calc.CalcCmd)

	// We also include documentation pseudo-commands for the service
	// architecture and the containerized development workflow.
	commands = append(commands, doc.ArchitectureCmd)
	commands = append(commands, doc.DevWorkflowCmd)

	// We define the top level CLI abstract here.
	abstract := "Recipe App API is a token-authenticated user API with an embedded store, in Go."
	if err := cli.Process(abstract, commands); err != nil {
		os.Exit(1)
	}
}
