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

package cli

import (
	"errors"
	"testing"
)

func TestCommandName(t *testing.T) {
	tests := []struct {
		usageLine string
		expected  string
	}{
		{"user-server [-ip addr] [-port port]", "user-server"},
		{"freeze", "freeze"},
	}
	for _, test := range tests {
		cmd := &Command{UsageLine: test.usageLine}
		if name := cmd.Name(); name != test.expected {
			t.Errorf("UsageLine %q: expected name %q, got %q", test.usageLine, test.expected, name)
		}
	}
}

func TestCommandRunnable(t *testing.T) {
	runnable := &Command{Run: func(cmd *Command, args []string) error { return nil }}
	if !runnable.Runnable() {
		t.Error("expected command with Run to be runnable")
	}
	pseudo := &Command{UsageLine: "architecture"}
	if pseudo.Runnable() {
		t.Error("expected documentation pseudo-command to not be runnable")
	}
}

func TestCommandsLookup(t *testing.T) {
	commands := Commands{
		&Command{UsageLine: "first"},
		&Command{UsageLine: "second [-flag]"},
	}

	cmd, ok := commands.Lookup("second")
	if !ok || cmd.Name() != "second" {
		t.Errorf("expected to find 'second', got %v, %t", cmd, ok)
	}
	if _, ok := commands.Lookup("missing"); ok {
		t.Error("didn't expect to find 'missing'")
	}
}

func TestParseErrorDistinguishable(t *testing.T) {
	plain := errors.New("command failure")
	if _, ok := plain.(parseError); ok {
		t.Error("plain errors must not be parse errors")
	}

	wrapped := ParseError(errors.New("bad flag"))
	if _, ok := wrapped.(parseError); !ok {
		t.Error("expected ParseError to produce a parseError")
	}
}
