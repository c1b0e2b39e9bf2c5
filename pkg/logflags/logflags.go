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

// Package logflags wires the pkg/log configuration surface into a command's
// flag.FlagSet. Every command that logs registers the same five flags
// (-log-dir, -suppress-stderr, -log-mode, -log-filter, -log-backtrace-at);
// this package holds the flag.Value implementations and the writer assembly
// they all share.
package logflags

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"regexp"
	"strings"

	"github.com/normanaranez/recipe-app-api/pkg/log"
)

// rotationThreshold caps individual log files written under -log-dir.
const rotationThreshold = 50 << 20 // 50 MiB

// Flags collects the values of the registered logging flags, to be consumed
// via NewLogger after flag parsing.
type Flags struct {
	dir            string
	suppressStderr bool
	mode           logMode
	filter         logFilter
	backtracePts   backtracePoints
}

// Register installs the logging flag set onto the given FlagSet and returns
// the value holder.
func Register(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.dir, "log-dir", "",
		"Write log files to the specified directory")
	fs.BoolVar(&f.suppressStderr, "suppress-stderr", false,
		"Suppress standard error logging")
	fs.Var(&f.mode, "log-mode",
		"Log mode for logs emitted globally (can be overridden using -log-filter)")
	fs.Var(&f.filter, "log-filter",
		"Comma-separated list of fname.go:mode settings for file-filtered logging")
	fs.Var(&f.backtracePts, "log-backtrace-at",
		"Comma-separated list of fname.go:N settings to emit backtraces")
	return f
}

// NewLogger applies the parsed flag values to the global filtering state and
// returns a logger writing to the configured destinations.
func (f *Flags) NewLogger() *log.Logger {
	if f.mode.set {
		log.SetGlobalLogMode(f.mode.m)
	}
	for _, flm := range f.filter {
		log.SetFileLogMode(flm.fname, flm.fmode)
	}
	for _, tp := range f.backtracePts {
		log.SetTracePoint(tp)
	}

	writer := io.Writer(ioutil.Discard)
	if f.dir != "" {
		writer = log.LogRotationWriter(f.dir, rotationThreshold)
	}
	if !f.suppressStderr {
		writer = log.MultiWriter(writer, os.Stderr)
	}
	writer = log.SynchronizedWriter(writer)
	logf := log.Ldate | log.Ltime | log.Lmicroseconds | log.Llongfile | log.LUTC | log.Lmode
	return log.New(log.Writer(writer), log.Flags(logf), log.SkipBasePath())
}

type logMode struct {
	m   log.Mode
	set bool
}

func (l logMode) String() string {
	return modeToString(l.m)
}

func (l *logMode) Set(value string) error {
	m, err := modeFromString(value)
	if err != nil {
		return err
	}
	l.m = m
	l.set = true
	return nil
}

type fileLogMode struct {
	fname string
	fmode log.Mode
}

type logFilter []fileLogMode

func (l logFilter) String() string {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, flm := range l {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(fmt.Sprintf("%s:%s", flm.fname, modeToString(flm.fmode)))
	}
	buf.WriteString("]")
	return buf.String()
}

var (
	fileNameRegex   = regexp.MustCompile(`^[\w-]+\.go$`)
	modeRegex       = regexp.MustCompile(`^(info|debug|warn|error|disabled)(\|(info|debug|warn|error))*$`)
	lineNumberRegex = regexp.MustCompile(`^\d+$`)
)

func (l *logFilter) Set(value string) error {
	for _, entry := range strings.Split(value, ",") {
		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			return fmt.Errorf("improperly formatted filter: %s, expected fname.go:mode", entry)
		}

		fname, mode := parts[0], parts[1]
		if !fileNameRegex.MatchString(fname) {
			return fmt.Errorf("expected filename '%s' to match the regex '%s'", fname, fileNameRegex)
		}
		if !modeRegex.MatchString(mode) {
			return fmt.Errorf("expected mode '%s' to match the regex '%s'", mode, modeRegex)
		}

		fmode, err := modeFromString(mode)
		if err != nil {
			return err
		}
		*l = append(*l, fileLogMode{fname: fname, fmode: fmode})
	}
	return nil
}

type backtracePoints []string

func (l backtracePoints) String() string {
	return fmt.Sprint([]string(l))
}

func (l *backtracePoints) Set(value string) error {
	for _, entry := range strings.Split(value, ",") {
		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			return fmt.Errorf("improperly formatted tracepoint: %s, expected fname.go:line", entry)
		}

		fname, lnumber := parts[0], parts[1]
		if !fileNameRegex.MatchString(fname) {
			return fmt.Errorf("expected filename '%s' to match the regex '%s'", fname, fileNameRegex)
		}
		if !lineNumberRegex.MatchString(lnumber) {
			return fmt.Errorf("expected line number '%s' to match the regex '%s'", lnumber, lineNumberRegex)
		}
		*l = append(*l, fmt.Sprintf("%s:%s", fname, lnumber))
	}
	return nil
}

func modeFromString(value string) (log.Mode, error) {
	var m log.Mode
	for _, mode := range strings.Split(value, "|") {
		switch mode {
		case "info":
			m |= log.InfoMode
		case "debug":
			m |= log.DebugMode
		case "warn":
			m |= log.WarnMode
		case "error":
			m |= log.ErrorMode
		case "disabled":
			return log.DisabledMode, nil
		default:
			return m, errors.New(fmt.Sprintf("unrecognized mode: %v", mode))
		}
	}
	return m, nil
}

func modeToString(m log.Mode) string {
	if m == log.DisabledMode {
		return "disabled"
	}

	var buf bytes.Buffer
	if (m & log.InfoMode) != log.DisabledMode {
		buf.WriteString("info|")
	}
	if (m & log.WarnMode) != log.DisabledMode {
		buf.WriteString("warn|")
	}
	if (m & log.ErrorMode) != log.DisabledMode {
		buf.WriteString("error|")
	}
	if (m & log.DebugMode) != log.DisabledMode {
		buf.WriteString("debug|")
	}
	return strings.TrimSuffix(buf.String(), "|")
}
