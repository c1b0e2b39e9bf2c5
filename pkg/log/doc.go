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

// Package log implements modal execution logs. Logging statements are
// qualified with a mode (info, warn, error, fatal or debug), and emitted
// output is filtered through a global mode mask, overridable per file. The
// library provides hooks such that the following top-level usage is made
// possible on each long-running command:
//
//     $ recipe-app-api user-server \
//                      -log-mode info|warn \
//                      -log-dir /path/to/dir \
//                      -log-filter rest.go:debug,storage.go:warn \
//                      -log-backtrace-at server.go:42
//
// Modes can be reconfigured at runtime; a running service could opt-in to
// provide open endpoints accepting logger reconfigurations.
//
// Basic example:
//
//     logger := log.New(log.Writer(os.Stderr), log.Flags(log.LstdFlags))
//     logger.Infof("serving on port: %d", port)
//
// The emitted header is of the form:
//
//     Myymmdd hh:mm:ss.micros file.go:ln] message
//     I260831 06:33:04.606396 run.go:42] serving on port: 8000
package log
