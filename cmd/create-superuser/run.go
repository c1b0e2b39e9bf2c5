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

package createsuperuser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/normanaranez/recipe-app-api/pkg/cli"
	"github.com/normanaranez/recipe-app-api/pkg/logflags"
	"github.com/normanaranez/recipe-app-api/pkg/userstore"
)

var CreateSuperuserCmd = &cli.Command{
	Run:       createSuperuserCmdRun,
	UsageLine: "create-superuser -email <email> [-name <name>] [-password <password>] [-db-store <path>]",
	Short:     "create an administrative user",
	Long: `
Creates a superuser account directly against the database folder, without
going through the API. The server must not be running against the same
database folder while this command executes.

If -password is not passed, the password is prompted for twice on the
terminal without echo.
    `,
}

func createSuperuserCmdRun(cmd *cli.Command, args []string) error {
	var (
		dbStore  string
		email    string
		name     string
		password string
	)
	cmd.FlagSet.StringVar(&dbStore, "db-store", "recipe-app-db",
		"Folder to store database records to")
	cmd.FlagSet.StringVar(&email, "email", "",
		"Email address for the new superuser")
	cmd.FlagSet.StringVar(&name, "name", "",
		"Display name for the new superuser")
	cmd.FlagSet.StringVar(&password, "password", "",
		"Password for the new superuser; prompted for if not passed")
	lf := logflags.Register(&cmd.FlagSet)

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.ParseError(err)
	}

	logger := lf.NewLogger()

	if email == "" {
		return cli.ParseError(fmt.Errorf("-email must be specified"))
	}
	email, err := userstore.NormalizeEmail(email)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	if password == "" {
		password, err = promptPassword(os.Stdin, os.Stdout)
		if err != nil {
			logger.Error(err.Error())
			return err
		}
	}

	hash, err := userstore.HashPassword(password)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	store, err := userstore.Open(dbStore)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer store.Close()

	user := &userstore.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Superuser:    true,
		Created:      time.Now().UTC(),
	}
	if err := store.Create(user); err != nil {
		logger.Error(err.Error())
		return err
	}

	logger.Infof("created superuser: %s", email)
	fmt.Fprintf(os.Stdout, "Superuser created successfully.\n")
	return nil
}

// promptPassword asks for the password twice. Echo is disabled when stdin
// is a terminal; otherwise a single line is read, for piped use.
func promptPassword(in *os.File, out io.Writer) (string, error) {
	if !term.IsTerminal(int(in.Fd())) {
		reader := bufio.NewReader(in)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(out, "Password: ")
	first, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}

	fmt.Fprint(out, "Password (again): ")
	second, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(first), nil
}
