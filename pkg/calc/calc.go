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

// Package calc holds the sample arithmetic helpers used to sanity-check the
// build and test tooling.
package calc

// Add returns x plus y.
func Add(x, y int) int {
	return x + y
}

// Subtract returns x minus y.
func Subtract(x, y int) int {
	return x - y
}
