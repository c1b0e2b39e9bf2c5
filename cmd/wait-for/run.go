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

package waitfor

import (
	"fmt"
	"net/http"
	"time"

	"github.com/normanaranez/recipe-app-api/pkg/cli"
	"github.com/normanaranez/recipe-app-api/pkg/log"
	"github.com/normanaranez/recipe-app-api/pkg/logflags"
)

var WaitForCmd = &cli.Command{
	Run:       waitForCmdRun,
	UsageLine: "wait-for [-url <url>] [-timeout <duration>] [-interval <duration>]",
	Short:     "block until the user server answers its health check",
	Long: `
Polls the health check endpoint until it answers 200 OK, then exits. Used
by container orchestration and scripts to sequence startup: dependents run
wait-for before issuing real traffic.

Exits with an error if the endpoint does not come up within the timeout.
    `,
}

func waitForCmdRun(cmd *cli.Command, args []string) error {
	var (
		url      string
		timeout  time.Duration
		interval time.Duration
	)
	cmd.FlagSet.StringVar(&url, "url", "http://localhost:8000/api/health-check/",
		"Health check URL to poll")
	cmd.FlagSet.DurationVar(&timeout, "timeout", 60*time.Second,
		"Give up after this long")
	cmd.FlagSet.DurationVar(&interval, "interval", time.Second,
		"Delay between polls")
	lf := logflags.Register(&cmd.FlagSet)

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.ParseError(err)
	}

	logger := lf.NewLogger()

	if err := waitFor(logger, url, timeout, interval); err != nil {
		logger.Error(err.Error())
		return err
	}
	return nil
}

func waitFor(logger *log.Logger, url string, timeout, interval time.Duration) error {
	client := &http.Client{Timeout: interval}
	deadline := time.Now().Add(timeout)

	for attempt := 1; ; attempt++ {
		res, err := client.Get(url)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				logger.Infof("%s answered after %d attempt(s)", url, attempt)
				return nil
			}
			logger.Debugf("attempt %d: %s answered %d", attempt, url, res.StatusCode)
		} else {
			logger.Debugf("attempt %d: %v", attempt, err)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%s did not answer 200 within %v", url, timeout)
		}
		time.Sleep(interval)
	}
}
