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

package log

import (
	"io"
	"path/filepath"
	"runtime"
)

// Flag determines what log headers look like; see the constants below.
type Flag int

const (
	// Ldate includes the date of the log statement: 2009/01/23.
	Ldate Flag = 1 << iota
	// Ltime includes the time of the log statement: 01:23:23.
	Ltime
	// Lmicroseconds includes microsecond resolution: 01:23:23.123123.
	// Assumes Ltime.
	Lmicroseconds
	// Llongfile includes the full file name and line number: a/b/c/d.go:23.
	Llongfile
	// Lshortfile includes the final file name element and line number:
	// d.go:23. Overrides Llongfile.
	Lshortfile
	// LUTC uses UTC rather than the local time zone for Ldate and Ltime.
	LUTC
	// Lmode prefixes the statement with the single character mode qualifier
	// (I, W, E, F or D).
	Lmode

	// LstdFlags captures the initial values for the default logger.
	LstdFlags = Lmode | Ldate | Ltime | Lshortfile
)

// option is the type operated on by the configuration pattern used in New;
// each returned closure applies a single setting to the logger under
// construction.
type option func(*Logger)

// Writer configures the logger to write out to the specified io.Writer. The
// writer is used as given; wrap it with SynchronizedWriter if the logger is
// shared across goroutines.
func Writer(w io.Writer) option {
	return func(l *Logger) {
		l.w = w
	}
}

// Flags configures the logger's header format with the specified flag set.
func Flags(f Flag) option {
	return func(l *Logger) {
		l.flag = f
	}
}

// SkipBasePath truncates the repository base path prefix from file names
// emitted under Llongfile. If no path is provided, the base path of the
// repository this package was compiled from is used.
func SkipBasePath(path ...string) option {
	return func(l *Logger) {
		if len(path) > 0 {
			l.basePath = path[0]
			return
		}

		// This file sits at <base>/pkg/log/options.go; we walk three levels
		// up to derive <base>.
		_, fname, _, ok := runtime.Caller(0)
		if !ok {
			return
		}
		l.basePath = filepath.Dir(filepath.Dir(filepath.Dir(fname)))
	}
}
