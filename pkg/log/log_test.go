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
	"bytes"
	"fmt"
	"regexp"
	"testing"
)

func TestSetGetTracePoint(t *testing.T) {
	tp := fmt.Sprintf("%s:%d", "t.go", 42)
	SetTracePoint(tp)
	defer ResetTracePoint(tp)
	if !GetTracePoint(tp) {
		t.Errorf("expected tracepoint %s to be enabled", tp)
	}
}

func TestUnsetTracePoint(t *testing.T) {
	tp := fmt.Sprintf("%s:%d", "t.go", 42)
	if GetTracePoint(tp) {
		t.Errorf("didn't expect tracepoint %s to be enabled", tp)
	}
}

func expectLog(t *testing.T, buffer *bytes.Buffer, regex string) {
	t.Helper()
	match, err := regexp.Match(regex, buffer.Bytes())
	if err != nil {
		t.Error(err)
	}
	if !match {
		t.Errorf("expected pattern: %q, got: %s", regex, buffer.String())
	}
	buffer.Reset()
}

func TestInfoLog(t *testing.T) {
	SetGlobalLogMode(InfoMode)
	defer SetGlobalLogMode(DefaultMode)

	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer))

	logger.Info("info")
	expectLog(t, buffer, `^I.*\] info`)

	logger.Infof("infof")
	expectLog(t, buffer, `^I.*\] infof`)

	logger.Infof("%t %d %s", true, 1, "infof")
	expectLog(t, buffer, `^I.*\] true 1 infof`)
}

func TestModeFiltering(t *testing.T) {
	SetGlobalLogMode(ErrorMode)
	defer SetGlobalLogMode(DefaultMode)

	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer))

	logger.Info("filtered out")
	logger.Debug("filtered out")
	if buffer.Len() != 0 {
		t.Errorf("expected suppressed output, got: %s", buffer.String())
	}

	logger.Error("error")
	expectLog(t, buffer, `^E.*\] error`)
}

func TestFileModeOverride(t *testing.T) {
	SetGlobalLogMode(DisabledMode)
	defer SetGlobalLogMode(DefaultMode)

	// The override applies to this very test file; the global mode above
	// would otherwise suppress everything.
	SetFileLogMode("log_test.go", DebugMode)
	defer ResetFileLogMode("log_test.go")

	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer))

	logger.Info("still filtered out")
	if buffer.Len() != 0 {
		t.Errorf("expected suppressed output, got: %s", buffer.String())
	}

	logger.Debug("debug")
	expectLog(t, buffer, `^D.*\] debug`)
}

func TestHeaderFlags(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), Flags(Lmode|Lshortfile))

	logger.Warn("warn")
	expectLog(t, buffer, `^W log_test\.go:[0-9]+\] warn`)
}
