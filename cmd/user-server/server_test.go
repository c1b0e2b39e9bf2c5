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
	"sort"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/normanaranez/recipe-app-api/pkg/log"
	upb "github.com/normanaranez/recipe-app-api/pkg/pb/user"
	"github.com/normanaranez/recipe-app-api/pkg/userstore"
)

// testStore is an in-memory Store used to exercise the server without bolt.
type testStore struct {
	users  map[string]*userstore.User
	tokens map[string]string // token -> email
	minted int
}

var _ userstore.Store = &testStore{}

func newTestStore() *testStore {
	return &testStore{
		users:  make(map[string]*userstore.User),
		tokens: make(map[string]string),
	}
}

func (t *testStore) Get(email string) (*userstore.User, error) {
	user, ok := t.users[email]
	if !ok {
		return nil, userstore.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (t *testStore) Create(user *userstore.User) error {
	if _, ok := t.users[user.Email]; ok {
		return userstore.ErrExists
	}
	copied := *user
	t.users[user.Email] = &copied
	return nil
}

func (t *testStore) Update(user *userstore.User) error {
	if _, ok := t.users[user.Email]; !ok {
		return userstore.ErrNotFound
	}
	copied := *user
	t.users[user.Email] = &copied
	return nil
}

func (t *testStore) Token(email string) (string, error) {
	if _, ok := t.users[email]; !ok {
		return "", userstore.ErrNotFound
	}
	for token, tokenEmail := range t.tokens {
		if tokenEmail == email {
			return token, nil
		}
	}
	t.minted++
	token := fmt.Sprintf("token-%d", t.minted)
	t.tokens[token] = email
	return token, nil
}

func (t *testStore) Resolve(token string) (*userstore.User, error) {
	email, ok := t.tokens[token]
	if !ok {
		return nil, userstore.ErrInvalidToken
	}
	return t.Get(email)
}

func (t *testStore) Emails() []string {
	emails := make([]string, 0, len(t.users))
	for email := range t.users {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

func (t *testStore) Close() error { return nil }

func createTestUser(t *testing.T, server *userServer) {
	t.Helper()
	_, err := server.CreateUser(context.Background(), &upb.CreateUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	if err != nil {
		t.Fatal(err)
	}
}

func expectCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	if got := status.Code(err); got != code {
		t.Errorf("expected code %v, got %v (%v)", code, got, err)
	}
}

func TestCreateUser(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)

	res, err := server.CreateUser(context.Background(), &upb.CreateUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.User.Email != "test@example.com" || res.User.Name != "Test User" {
		t.Errorf("unexpected user in response: %v", res.User)
	}

	stored, err := store.Get("test@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !stored.CheckPassword("testpass123") {
		t.Error("expected stored hash to verify the password")
	}
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)

	res, err := server.CreateUser(context.Background(), &upb.CreateUserRequest{
		Email:    " test@EXAMPLE.COM ",
		Password: "testpass123",
		Name:     "Test User",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.User.Email != "test@example.com" {
		t.Errorf("expected normalized email, got %s", res.User.Email)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)
	createTestUser(t, server)

	_, err := server.CreateUser(context.Background(), &upb.CreateUserRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	expectCode(t, err, codes.AlreadyExists)
}

func TestCreateUserPasswordTooShort(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)

	_, err := server.CreateUser(context.Background(), &upb.CreateUserRequest{
		Email:    "test@example.com",
		Password: "pw",
		Name:     "Test User",
	})
	expectCode(t, err, codes.InvalidArgument)

	// A failed registration leaves no partial record behind.
	if _, err := store.Get("test@example.com"); err != userstore.ErrNotFound {
		t.Errorf("expected no user to be created, got %v", err)
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)

	_, err := server.CreateUser(context.Background(), &upb.CreateUserRequest{
		Email:    "not-an-email",
		Password: "testpass123",
		Name:     "Test User",
	})
	expectCode(t, err, codes.InvalidArgument)
}

func TestCreateToken(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)
	createTestUser(t, server)

	res, err := server.CreateToken(context.Background(), &upb.CreateTokenRequest{
		Email:    "test@example.com",
		Password: "testpass123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Token == "" {
		t.Error("expected a token in the response")
	}

	// Issuance is idempotent per user.
	again, err := server.CreateToken(context.Background(), &upb.CreateTokenRequest{
		Email:    "test@example.com",
		Password: "testpass123",
	})
	if err != nil {
		t.Fatal(err)
	}
	if again.Token != res.Token {
		t.Errorf("expected the same token on re-issue, got %s and %s", res.Token, again.Token)
	}
}

func TestCreateTokenInvalidCredentials(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)
	createTestUser(t, server)

	_, err := server.CreateToken(context.Background(), &upb.CreateTokenRequest{
		Email:    "wrong@example.com",
		Password: "wrongpassword",
	})
	expectCode(t, err, codes.Unauthenticated)

	_, err = server.CreateToken(context.Background(), &upb.CreateTokenRequest{
		Email:    "test@example.com",
		Password: "wrongpassword",
	})
	expectCode(t, err, codes.Unauthenticated)
}

func TestCreateTokenBlankPassword(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)
	createTestUser(t, server)

	_, err := server.CreateToken(context.Background(), &upb.CreateTokenRequest{
		Email:    "test@example.com",
		Password: "",
	})
	expectCode(t, err, codes.Unauthenticated)
}

func TestGetUser(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)
	createTestUser(t, server)

	token, err := store.Token("test@example.com")
	if err != nil {
		t.Fatal(err)
	}

	res, err := server.GetUser(context.Background(), &upb.GetUserRequest{Token: token})
	if err != nil {
		t.Fatal(err)
	}
	if res.User.Email != "test@example.com" || res.User.Name != "Test User" {
		t.Errorf("unexpected user: %v", res.User)
	}

	_, err = server.GetUser(context.Background(), &upb.GetUserRequest{Token: "bogus"})
	expectCode(t, err, codes.Unauthenticated)

	_, err = server.GetUser(context.Background(), &upb.GetUserRequest{})
	expectCode(t, err, codes.Unauthenticated)
}

func TestUpdateUser(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)
	createTestUser(t, server)

	token, err := store.Token("test@example.com")
	if err != nil {
		t.Fatal(err)
	}

	res, err := server.UpdateUser(context.Background(), &upb.UpdateUserRequest{
		Token:    token,
		Name:     "Updated Name",
		Password: "newpass456",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.User.Name != "Updated Name" {
		t.Errorf("expected updated name, got %s", res.User.Name)
	}

	stored, err := store.Get("test@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !stored.CheckPassword("newpass456") {
		t.Error("expected new password to verify")
	}
	if stored.CheckPassword("testpass123") {
		t.Error("didn't expect old password to verify")
	}
}

func TestUpdateUserPartial(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)
	createTestUser(t, server)

	token, err := store.Token("test@example.com")
	if err != nil {
		t.Fatal(err)
	}

	// Empty fields are left unchanged.
	res, err := server.UpdateUser(context.Background(), &upb.UpdateUserRequest{
		Token: token,
		Name:  "Only The Name",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.User.Name != "Only The Name" {
		t.Errorf("expected updated name, got %s", res.User.Name)
	}

	stored, err := store.Get("test@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !stored.CheckPassword("testpass123") {
		t.Error("expected password to be unchanged")
	}
}

func TestUpdateUserShortPassword(t *testing.T) {
	store := newTestStore()
	server := newUserServer(log.Discarder(), store)
	createTestUser(t, server)

	token, err := store.Token("test@example.com")
	if err != nil {
		t.Fatal(err)
	}

	_, err = server.UpdateUser(context.Background(), &upb.UpdateUserRequest{
		Token:    token,
		Password: "pw",
	})
	expectCode(t, err, codes.InvalidArgument)
}
