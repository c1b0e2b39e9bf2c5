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

package userserver

import (
	"flag"
	"io/ioutil"
	"path/filepath"
	"reflect"
	"testing"
)

func writeSettingsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := ioutil.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveSettingsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	settings, err := resolveSettings("", fs)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(settings, defaultSettings()) {
		t.Errorf("unexpected defaults: %+v", settings)
	}
}

func TestResolveSettingsFile(t *testing.T) {
	path := writeSettingsFile(t, `
ip: 127.0.0.1
port: 9000
db_store: /tmp/users
token_rate: 2.5
token_burst: 5
cors_origins:
  - http://localhost:3000
`)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	settings, err := resolveSettings(path, fs)
	if err != nil {
		t.Fatal(err)
	}
	if settings.IP != "127.0.0.1" || settings.Port != 9000 || settings.DBStore != "/tmp/users" {
		t.Errorf("unexpected settings: %+v", settings)
	}
	if settings.TokenRate != 2.5 || settings.TokenBurst != 5 {
		t.Errorf("unexpected limiter settings: %+v", settings)
	}
	if len(settings.CORSOrigins) != 1 || settings.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected cors origins: %v", settings.CORSOrigins)
	}
}

func TestResolveSettingsPartialFile(t *testing.T) {
	// Omitted keys keep their defaults.
	path := writeSettingsFile(t, "port: 9000\n")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	settings, err := resolveSettings(path, fs)
	if err != nil {
		t.Fatal(err)
	}
	if settings.Port != 9000 {
		t.Errorf("expected port 9000, got %d", settings.Port)
	}
	if settings.IP != defaultIP || settings.DBStore != defaultDBStore {
		t.Errorf("expected remaining defaults, got %+v", settings)
	}
}

func TestResolveSettingsPortEnv(t *testing.T) {
	t.Setenv("PORT", "9123")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	settings, err := resolveSettings("", fs)
	if err != nil {
		t.Fatal(err)
	}
	if settings.Port != 9123 {
		t.Errorf("expected PORT to override the default, got %d", settings.Port)
	}
}

func TestResolveSettingsErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"port out of range", "port: 70000\n"},
		{"negative rate", "token_rate: -1\n"},
		{"zero burst", "token_burst: 0\n"},
		{"malformed yaml", "port: [\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeSettingsFile(t, test.contents)
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			if _, err := resolveSettings(path, fs); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestResolveSettingsMissingFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := resolveSettings(filepath.Join(t.TempDir(), "nope.yaml"), fs); err == nil {
		t.Error("expected an error for a missing settings file")
	}
}

func TestVisitedFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("ip", defaultIP, "")
	fs.Int("port", defaultPort, "")
	if err := fs.Parse([]string{"-port", "9000"}); err != nil {
		t.Fatal(err)
	}
	visited := visitedFlags(fs)
	if !visited["port"] || visited["ip"] {
		t.Errorf("unexpected visited set: %v", visited)
	}
}
