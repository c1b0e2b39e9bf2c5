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

package userserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/soheilhy/cmux"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/normanaranez/recipe-app-api/pkg/cli"
	"github.com/normanaranez/recipe-app-api/pkg/log"
	"github.com/normanaranez/recipe-app-api/pkg/logflags"
	upb "github.com/normanaranez/recipe-app-api/pkg/pb/user"
	"github.com/normanaranez/recipe-app-api/pkg/userstore"
)

var UserServerCmd = &cli.Command{
	Run:       userServerCmdRun,
	UsageLine: "user-server [-settings <path>] [-db-store <path>] [-ip addr] [-port port]",
	Short:     "run the user API server",
	Long: `
Runs the user API server: account registration, token based authentication
and self-service profile management.

The service is exposed twice over a single TCP port: as a gRPC service
(grpc-web wrapped for browser clients), and as a JSON REST surface under
/api/user/ plus /api/health-check/ for container orchestration probes.

Configuration is resolved in increasing order of precedence: built-in
defaults, the optional YAML settings file, the PORT environment variable,
then explicitly passed flags.
    `,
}

func userServerCmdRun(cmd *cli.Command, args []string) error {
	var (
		settingsPath string
		ip           string
		port         int
		dbStore      string
	)
	cmd.FlagSet.StringVar(&settingsPath, "settings", "",
		"Optional YAML settings file")
	cmd.FlagSet.StringVar(&ip, "ip", defaultIP,
		"IP (ipv4 addresses only) on which the server will run on")
	cmd.FlagSet.IntVar(&port, "port", defaultPort,
		"Port which the server will run on")
	cmd.FlagSet.StringVar(&dbStore, "db-store", defaultDBStore,
		"Folder to store database records to")
	lf := logflags.Register(&cmd.FlagSet)

	if err := cmd.FlagSet.Parse(args); err != nil {
		return cli.ParseError(err)
	}

	logger := lf.NewLogger()

	settings, err := resolveSettings(settingsPath, &cmd.FlagSet)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	// Explicit flags win over the settings file and environment.
	visited := visitedFlags(&cmd.FlagSet)
	if visited["ip"] {
		settings.IP = ip
	}
	if visited["port"] {
		settings.Port = port
	}
	if visited["db-store"] {
		settings.DBStore = dbStore
	}

	wait, shutdown, err := Start(logger, settings)
	if err != nil {
		logger.Error(err.Error())
		return err
	}

	wait()
	shutdown()

	return nil
}

// Start brings up the user server and returns a wait function blocking until
// all serving goroutines wind down, and a shutdown function tearing the
// server down.
func Start(logger *log.Logger, settings Settings) (wait func(), shutdown func(), err error) {
	var wg sync.WaitGroup
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", settings.IP, settings.Port))
	if err != nil {
		logger.Errorf("failed to open TCP port: %v", err)
		return nil, nil, err
	}

	store, err := userstore.Open(settings.DBStore)
	if err != nil {
		lis.Close()
		return nil, nil, err
	}

	// Create a cmux; multiplex grpc and http over the same listener.
	//
	// Match connections in order: first grpc, then everything else for the
	// web surfaces (grpc-web and REST).
	mux := cmux.New(lis)
	grpcL := mux.Match(cmux.HTTP2HeaderField("content-type", "application/grpc"))
	httpL := mux.Match(cmux.Any())

	userServer := newUserServer(logger, store)
	grpcServer := grpc.NewServer()
	upb.RegisterUserServiceServer(grpcServer, userServer)

	wrappedGrpc := grpcweb.WrapServer(grpcServer)
	tokenLimiter := rate.NewLimiter(rate.Limit(settings.TokenRate), settings.TokenBurst)
	restHandler := newRESTHandler(logger, userServer, tokenLimiter, settings.CORSOrigins)

	// grpc-web traffic is picked off first; everything else is the JSON
	// REST surface.
	httpServer := http.Server{Handler: http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if wrappedGrpc.IsGrpcWebRequest(r) || wrappedGrpc.IsAcceptableGrpcCorsRequest(r) {
				wrappedGrpc.ServeHTTP(w, r)
				return
			}
			restHandler.ServeHTTP(w, r)
		})}

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Infof("serving RPC server on port: %d", settings.Port)
		if err := grpcServer.Serve(grpcL); err != nil {
			logger.Errorf("grpc server error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Infof("serving HTTP server on port: %d", settings.Port)
		if err := httpServer.Serve(httpL); err != nil {
			logger.Errorf("http server error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := mux.Serve(); err != nil {
			logger.Errorf("cmux server error: %v", err)
		}
	}()

	shutdown = func() {
		lis.Close()
		grpcServer.Stop()
		httpServer.Shutdown(context.Background())
		grpcL.Close()
		store.Close()
	}

	return wg.Wait, shutdown, nil
}
