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
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestPromptPasswordPiped(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"secretpass\n", "secretpass"},
		{"secretpass\r\n", "secretpass"},
		{"secretpass", "secretpass"},
	}
	for _, test := range tests {
		path := filepath.Join(t.TempDir(), "stdin")
		if err := ioutil.WriteFile(path, []byte(test.input), 0600); err != nil {
			t.Fatal(err)
		}
		in, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		password, err := promptPassword(in, &out)
		in.Close()
		if err != nil {
			t.Fatalf("input %q: %v", test.input, err)
		}
		if password != test.expected {
			t.Errorf("input %q: expected %q, got %q", test.input, test.expected, password)
		}
	}
}
