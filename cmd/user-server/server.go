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
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/normanaranez/recipe-app-api/pkg/log"
	upb "github.com/normanaranez/recipe-app-api/pkg/pb/user"
	"github.com/normanaranez/recipe-app-api/pkg/userstore"
)

type userServer struct {
	logger *log.Logger
	store  userstore.Store
}

var _ upb.UserServiceServer = &userServer{}

func newUserServer(logger *log.Logger, store userstore.Store) *userServer {
	return &userServer{
		logger: logger,
		store:  store,
	}
}

func (s *userServer) CreateUser(ctx context.Context, req *upb.CreateUserRequest) (*upb.CreateUserResponse, error) {
	email, err := userstore.NormalizeEmail(req.Email)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	// Password policy is enforced before any state is touched; a failed
	// registration leaves no partial record behind.
	hash, err := userstore.HashPassword(req.Password)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	user := &userstore.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Created:      time.Now().UTC(),
	}
	if err := s.store.Create(user); err != nil {
		if err == userstore.ErrExists {
			return nil, status.Error(codes.AlreadyExists, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.logger.Infof("created user: %s", email)
	return &upb.CreateUserResponse{User: publicUser(user)}, nil
}

func (s *userServer) CreateToken(ctx context.Context, req *upb.CreateTokenRequest) (*upb.CreateTokenResponse, error) {
	email, err := userstore.NormalizeEmail(req.Email)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, userstore.ErrInvalidCredentials.Error())
	}

	user, err := s.store.Get(email)
	if err != nil {
		// Indistinguishable from a bad password: we don't leak which emails
		// are registered.
		return nil, status.Error(codes.Unauthenticated, userstore.ErrInvalidCredentials.Error())
	}
	if req.Password == "" || !user.CheckPassword(req.Password) {
		return nil, status.Error(codes.Unauthenticated, userstore.ErrInvalidCredentials.Error())
	}

	token, err := s.store.Token(email)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.logger.Debugf("issued token for user: %s", email)
	return &upb.CreateTokenResponse{Token: token}, nil
}

func (s *userServer) GetUser(ctx context.Context, req *upb.GetUserRequest) (*upb.GetUserResponse, error) {
	user, err := s.authenticate(req.Token)
	if err != nil {
		return nil, err
	}
	return &upb.GetUserResponse{User: publicUser(user)}, nil
}

func (s *userServer) UpdateUser(ctx context.Context, req *upb.UpdateUserRequest) (*upb.UpdateUserResponse, error) {
	user, err := s.authenticate(req.Token)
	if err != nil {
		return nil, err
	}

	// Empty fields are left unchanged.
	if req.Name != "" {
		user.Name = strings.TrimSpace(req.Name)
	}
	if req.Password != "" {
		hash, err := userstore.HashPassword(req.Password)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		user.PasswordHash = hash
	}

	if err := s.store.Update(user); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.logger.Infof("updated user: %s", user.Email)
	return &upb.UpdateUserResponse{User: publicUser(user)}, nil
}

func (s *userServer) authenticate(token string) (*userstore.User, error) {
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, userstore.ErrInvalidToken.Error())
	}
	user, err := s.store.Resolve(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, userstore.ErrInvalidToken.Error())
	}
	return user, nil
}

// publicUser projects a stored record onto the wire type; credential
// material never crosses this boundary.
func publicUser(user *userstore.User) *upb.User {
	return &upb.User{
		Email:     user.Email,
		Name:      user.Name,
		Superuser: user.Superuser,
	}
}
