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

package logflags

import (
	"testing"

	"github.com/normanaranez/recipe-app-api/pkg/log"
)

func TestModeRoundTrip(t *testing.T) {
	var tests = []struct {
		input    string
		expected log.Mode
	}{
		{"info", log.InfoMode},
		{"debug", log.DebugMode},
		{"info|warn", log.InfoMode | log.WarnMode},
		{"info|warn|error", log.DefaultMode},
		{"disabled", log.DisabledMode},
	}

	for _, test := range tests {
		m, err := modeFromString(test.input)
		if err != nil {
			t.Errorf("%s: %v", test.input, err)
			continue
		}
		if m != test.expected {
			t.Errorf("%s: expected mode %v, got %v", test.input, test.expected, m)
		}
	}

	if _, err := modeFromString("verbose"); err == nil {
		t.Error("expected error for unrecognized mode")
	}
}

func TestLogFilterSet(t *testing.T) {
	var filter logFilter
	if err := filter.Set("rest.go:debug,storage.go:info|warn"); err != nil {
		t.Fatal(err)
	}
	if len(filter) != 2 {
		t.Fatalf("expected 2 filter entries, got %d", len(filter))
	}
	if filter[0].fname != "rest.go" || filter[0].fmode != log.DebugMode {
		t.Errorf("unexpected first entry: %+v", filter[0])
	}

	var invalid logFilter
	if err := invalid.Set("rest.go"); err == nil {
		t.Error("expected error for entry without mode")
	}
	if err := invalid.Set("rest:debug"); err == nil {
		t.Error("expected error for non .go filename")
	}
	if err := invalid.Set("rest.go:loud"); err == nil {
		t.Error("expected error for unrecognized mode")
	}
}

func TestBacktracePointsSet(t *testing.T) {
	var pts backtracePoints
	if err := pts.Set("server.go:42,rest.go:113"); err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 || pts[0] != "server.go:42" {
		t.Errorf("unexpected tracepoints: %v", pts)
	}

	var invalid backtracePoints
	if err := invalid.Set("server.go:fortytwo"); err == nil {
		t.Error("expected error for non-numeric line")
	}
}
