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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"

	"github.com/normanaranez/recipe-app-api/pkg/log"
)

// gdriveUploader pushes database dumps to Google Drive, replacing any
// previous dump under the same name.
type gdriveUploader struct {
	client *drive.Service
	logger *log.Logger
}

func newGoogleDriveUploader(logger *log.Logger, credentialsFile, tokenFile string) (*gdriveUploader, error) {
	client, err := getClient(logger, credentialsFile, tokenFile)
	if err != nil {
		return nil, err
	}
	driveClient, err := drive.New(client)
	if err != nil {
		return nil, errors.New("Unable to get Google Drive client")
	}
	return &gdriveUploader{client: driveClient, logger: logger}, nil
}

func (g *gdriveUploader) Upload(name string, contents []byte) error {
	query := "name = '" + name + "'"
	res, err := g.client.Files.List().Fields("files(name, id)").Q(query).Do()
	if err != nil {
		return err
	}

	for _, f := range res.Files {
		if err := g.client.Files.Delete(f.Id).Do(); err != nil {
			return err
		}
	}

	r := bytes.NewReader(contents)
	_, err = g.client.Files.Create(&drive.File{Name: name}).Media(r).Do()
	if err != nil {
		return errors.New("Unable to write file to Google Drive")
	}

	return nil
}

func getClient(logger *log.Logger, credentialsFile, tokenFile string) (*http.Client, error) {
	b, err := ioutil.ReadFile(credentialsFile)
	if err != nil {
		logger.Errorf("Unable to read client secret file: %v", err)
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, drive.DriveScope)
	if err != nil {
		logger.Errorf("Unable to parse client secret file to config: %v", err)
		return nil, err
	}

	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		tok = getTokenFromWeb(logger, config)
		saveToken(logger, tokenFile, tok)
	}

	return config.Client(context.Background(), tok), nil
}

func getTokenFromWeb(logger *log.Logger, config *oauth2.Config) *oauth2.Token {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		logger.Errorf("Unable to read authorization code %v", err)
	}

	tok, err := config.Exchange(context.TODO(), authCode)
	if err != nil {
		logger.Errorf("Unable to retrieve token from web %v", err)
	}
	return tok
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(logger *log.Logger, path string, token *oauth2.Token) {
	fmt.Printf("Saving credential file to: %s\n", path)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		logger.Errorf("Unable to cache oauth token: %v", err)
	}
	defer f.Close()
	json.NewEncoder(f).Encode(token)
}
