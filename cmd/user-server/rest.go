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
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/cors"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/normanaranez/recipe-app-api/pkg/log"
	upb "github.com/normanaranez/recipe-app-api/pkg/pb/user"
)

// The JSON REST surface, kept path-compatible with the historical API so
// existing clients and compose health checks keep working.
const (
	createPath      = "/api/user/create/"
	tokenPath       = "/api/user/token/"
	mePath          = "/api/user/me/"
	healthCheckPath = "/api/health-check/"
)

type restServer struct {
	logger       *log.Logger
	users        upb.UserServiceServer
	tokenLimiter *rate.Limiter
}

// newRESTHandler assembles the JSON surface over the same service
// implementation the gRPC listener uses.
func newRESTHandler(logger *log.Logger, users upb.UserServiceServer, tokenLimiter *rate.Limiter, corsOrigins []string) http.Handler {
	rs := &restServer{
		logger:       logger,
		users:        users,
		tokenLimiter: tokenLimiter,
	}

	mux := http.NewServeMux()
	mux.HandleFunc(createPath, rs.handleCreate)
	mux.HandleFunc(tokenPath, rs.handleToken)
	mux.HandleFunc(mePath, rs.handleMe)
	mux.HandleFunc(healthCheckPath, rs.handleHealthCheck)

	c := cors.New(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(rs.logRequests(mux))
}

type userPayload struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
}

type tokenPayload struct {
	Token string `json:"token"`
}

type errorPayload struct {
	Detail string `json:"detail"`
}

func (rs *restServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	res, err := rs.users.CreateUser(r.Context(), &upb.CreateUserRequest{
		Email:    payload.Email,
		Password: payload.Password,
		Name:     payload.Name,
	})
	if err != nil {
		rs.writeRPCError(w, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, userPayload{
		Email: res.User.Email,
		Name:  res.User.Name,
	})
}

func (rs *restServer) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// The token endpoint is the credential guessing target; it alone is
	// rate limited.
	if !rs.tokenLimiter.Allow() {
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusTooManyRequests, "request was throttled")
		return
	}

	var payload userPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	res, err := rs.users.CreateToken(r.Context(), &upb.CreateTokenRequest{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		// Bad credentials surface as 400 here, matching the historical
		// token endpoint contract.
		rs.writeRPCError(w, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, tokenPayload{Token: res.Token})
}

func (rs *restServer) handleMe(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication credentials were not provided")
		return
	}

	switch r.Method {
	case http.MethodGet:
		res, err := rs.users.GetUser(r.Context(), &upb.GetUserRequest{Token: token})
		if err != nil {
			rs.writeRPCError(w, err, http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, userPayload{Email: res.User.Email, Name: res.User.Name})

	case http.MethodPatch, http.MethodPut:
		var payload userPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		res, err := rs.users.UpdateUser(r.Context(), &upb.UpdateUserRequest{
			Token:    token,
			Name:     payload.Name,
			Password: payload.Password,
		})
		if err != nil {
			rs.writeRPCError(w, err, http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, userPayload{Email: res.User.Email, Name: res.User.Name})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (rs *restServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"healthy": true})
}

// bearerToken extracts the key from an 'Authorization: Token <key>' header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Token" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// writeRPCError maps a grpc status error onto the REST surface.
// Unauthenticated maps to 401 except on endpoints that historically
// answered 400 (the token endpoint), which pass that in as authStatus.
func (rs *restServer) writeRPCError(w http.ResponseWriter, err error, authStatus int) {
	st := status.Convert(err)
	httpStatus := http.StatusInternalServerError
	switch st.Code() {
	case codes.InvalidArgument, codes.AlreadyExists:
		httpStatus = http.StatusBadRequest
	case codes.Unauthenticated:
		httpStatus = authStatus
	case codes.NotFound:
		httpStatus = http.StatusNotFound
	}

	if httpStatus == http.StatusInternalServerError {
		rs.logger.Errorf("internal error on REST surface: %v", err)
		// Internal detail stays in the logs.
		writeError(w, httpStatus, "internal server error")
		return
	}
	writeError(w, httpStatus, st.Message())
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorPayload{Detail: detail})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (rs *restServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		rs.logger.Debugf("%s %s: %d", r.Method, r.URL.Path, recorder.status)
	})
}
