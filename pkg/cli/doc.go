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

// Package cli allows the construction of structured command-line interfaces
// with sub-commands and help topics. This is very similar to the interface in
// git where the top-level program name (git) is followed by a qualifier that
// determines what sub-command to execute (git {reflog,commit,cherry-pick}),
// and is how the management commands of this project are surfaced.
//
// Package cli explicitly avoids init time global hooks and has a minimal
// binary size footprint.
//
// Example:
//
//      // We aggregate all the top-level commands, accessible via
//      // 'recipe-app-api <command> ...', as needed.
//      var commands cli.Commands
//
//      commands = append(commands, userserver.UserServerCmd)
//      commands = append(commands, createsuperuser.CreateSuperuserCmd)
//      commands = append(commands, waitfor.WaitForCmd)
//
//      // We also include documentation pseudo-commands.
//      commands = append(commands, doc.ArchitectureCmd)
//      commands = append(commands, doc.DevWorkflowCmd)
//
//      // We define the top level CLI blurb here.
//      abstract := "Recipe App API is a token-authenticated user API, in Go."
//      if err := cli.Process(abstract, commands); err != nil {
//      	os.Exit(1)
//      }
//
// This generates the following top-level behaviour:
//
//      $ recipe-app-api {,-h,help}
//      Recipe App API is a token-authenticated user API, in Go.
//
//      Usage:
//
//          recipe-app-api command [arguments]
//
//      The commands are:
//
//              user-server            run the user API server
//              create-superuser       create an administrative user
//              wait-for               wait until the API answers health checks
//
//      Use 'recipe-app-api help [command]' for more information about a command.
//
//      Additional help topics:
//
//              architecture           service architecture overview
//              dev-workflow           containerized development workflow
//
//      Use "recipe-app-api help [topic]" for more information about that topic.
//
// Individual commands also have their own '-h' switches for additional
// command details:
//
//      $ recipe-app-api user-server -h
//      Usage:
//
//          recipe-app-api user-server [-db-store <path>] [-port port]
//
//          -db-store string
//              Folder to store database records to
//          -port int
//              Port which the server will run on
//
package cli
