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

package freeze

import (
	"bytes"
	"runtime/debug"
	"testing"
)

func TestWriteListing(t *testing.T) {
	info := &debug.BuildInfo{
		Deps: []*debug.Module{
			{Path: "example.com/b", Version: "v1.2.0"},
			{Path: "example.com/a", Version: "v0.1.0"},
			{
				Path:    "example.com/c",
				Version: "v2.0.0",
				Replace: &debug.Module{Path: "example.com/c-fork", Version: "v2.0.1"},
			},
		},
	}

	var buf bytes.Buffer
	writeListing(&buf, info)

	expected := "example.com/a v0.1.0\n" +
		"example.com/b v1.2.0\n" +
		"example.com/c-fork v2.0.1\n"
	if buf.String() != expected {
		t.Errorf("unexpected listing:\n%s", buf.String())
	}
}
