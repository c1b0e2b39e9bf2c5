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
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultIP      = "0.0.0.0"
	defaultPort    = 8000
	defaultDBStore = "recipe-app-db"
)

// Settings holds the user-server configuration. All fields can be provided
// through the optional YAML settings file; IP, port and database folder are
// also exposed as flags, and the port additionally as the PORT environment
// variable (the settings surface the app container historically exposed).
type Settings struct {
	IP      string `yaml:"ip"`
	Port    int    `yaml:"port"`
	DBStore string `yaml:"db_store"`

	// CORSOrigins lists the origins allowed on the browser-facing
	// surfaces. Empty means all origins.
	CORSOrigins []string `yaml:"cors_origins"`

	// TokenRate and TokenBurst bound the credential guessing rate on the
	// token endpoint, in requests per second.
	TokenRate  float64 `yaml:"token_rate"`
	TokenBurst int     `yaml:"token_burst"`
}

func defaultSettings() Settings {
	return Settings{
		IP:         defaultIP,
		Port:       defaultPort,
		DBStore:    defaultDBStore,
		TokenRate:  10,
		TokenBurst: 20,
	}
}

// resolveSettings layers the settings file (if any) and the PORT environment
// variable over the built-in defaults. Explicit flag overrides are applied
// by the caller, which knows which flags were actually passed.
func resolveSettings(path string, fs *flag.FlagSet) (Settings, error) {
	settings := defaultSettings()

	if path != "" {
		raw, err := ioutil.ReadFile(path)
		if err != nil {
			return settings, err
		}
		if err := yaml.Unmarshal(raw, &settings); err != nil {
			return settings, fmt.Errorf("malformed settings file %s: %v", path, err)
		}
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			settings.Port = port
		}
	}

	if settings.Port <= 0 || settings.Port > 65535 {
		return settings, fmt.Errorf("port out of range: %d", settings.Port)
	}
	if settings.TokenRate <= 0 {
		return settings, fmt.Errorf("token_rate must be positive: %v", settings.TokenRate)
	}
	if settings.TokenBurst <= 0 {
		return settings, fmt.Errorf("token_burst must be positive: %d", settings.TokenBurst)
	}

	return settings, nil
}

// visitedFlags collects the names of the flags explicitly passed on the
// command line.
func visitedFlags(fs *flag.FlagSet) map[string]bool {
	visited := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = true
	})
	return visited
}
