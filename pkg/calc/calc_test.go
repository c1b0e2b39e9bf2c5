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

package calc

import "testing"

func TestAdd(t *testing.T) {
	if res := Add(3, 8); res != 11 {
		t.Errorf("Add(3, 8) = %d, expected 11", res)
	}
}

func TestSubtract(t *testing.T) {
	if res := Subtract(10, 5); res != 5 {
		t.Errorf("Subtract(10, 5) = %d, expected 5", res)
	}
}
