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

package dumpdata

import (
	"encoding/json"
	"io/ioutil"
	"time"

	"github.com/normanaranez/recipe-app-api/pkg/cli"
	"github.com/normanaranez/recipe-app-api/pkg/logflags"
	"github.com/normanaranez/recipe-app-api/pkg/userstore"
)

var DumpDataCmd = &cli.Command{
	Run:       dumpDataCmdRun,
	UsageLine: "dump-data [-db-store <path>] [-output <path>] [-gdrive]",
	Short:     "export the user database as JSON",
	Long: `
Exports every user record, ordered by email, as a JSON document. The dump
is written to the output file, and optionally uploaded to Google Drive,
replacing any previous dump with the same name there.

The Google Drive upload expects an OAuth client secret in the credentials
file; the first run walks through the browser consent flow and caches the
resulting token in the token file.

The server must not be running against the same database folder while this
command executes.
    `,
}

// userRecord is one exported user. Password hashes are included so a dump
// can serve as a backup; tokens are deliberately not exported.
type userRecord struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"password_hash"`
	Superuser    bool      `json:"superuser"`
	Created      time.Time `json:"created"`
}

type dump struct {
	ExportedAt time.Time    `json:"exported_at"`
	Users      []userRecord `json:"users"`
}

func dumpDataCmdRun(cmd *cli.Command, args []string) error {
	var (
		dbStore         string
		output          string
		gdrive          bool
		credentialsFile string
		tokenFile       string
	)
	cmd.FlagSet.StringVar(&dbStore, "db-store", "recipe-app-db",
		"Folder to read database records from")
	cmd.FlagSet.StringVar(&output, "output", "dump.json",
		"File the JSON dump is written to")
	cmd.FlagSet.BoolVar(&gdrive, "gdrive", false,
		"Also upload the dump to Google Drive")
	cmd.FlagSet.StringVar(&credentialsFile, "credentials", "credentials.json",
		"OAuth client secret file for the Google Drive upload")
	cmd.FlagSet.StringVar(&tokenFile, "token-file", "token.json",
		"Cached OAuth token file for the Google Drive upload")
	lf := logflags.Register(&cmd.FlagSet)

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.ParseError(err)
	}

	logger := lf.NewLogger()

	store, err := userstore.Open(dbStore)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	defer store.Close()

	raw, err := export(store)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	if err := ioutil.WriteFile(output, raw, 0600); err != nil {
		logger.Error(err.Error())
		return err
	}
	logger.Infof("wrote dump to: %s", output)

	if gdrive {
		uploader, err := newGoogleDriveUploader(logger, credentialsFile, tokenFile)
		if err != nil {
			logger.Error(err.Error())
			return err
		}
		if err := uploader.Upload(output, raw); err != nil {
			logger.Error(err.Error())
			return err
		}
		logger.Infof("uploaded dump to Google Drive as: %s", output)
	}

	return nil
}

// export serializes all users, ordered by email.
func export(store userstore.Store) ([]byte, error) {
	d := dump{ExportedAt: time.Now().UTC()}
	for _, email := range store.Emails() {
		user, err := store.Get(email)
		if err != nil {
			return nil, err
		}
		d.Users = append(d.Users, userRecord{
			Email:        user.Email,
			Name:         user.Name,
			PasswordHash: user.PasswordHash,
			Superuser:    user.Superuser,
			Created:      user.Created,
		})
	}

	return json.MarshalIndent(d, "", "  ")
}
