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

// Package userstore holds the persistent account records behind the user
// API: users keyed by normalized email, and the auth tokens issued for them.
package userstore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at registration and on
// password change.
const MinPasswordLength = 5

var (
	ErrExists             = errors.New("user with email already exists")
	ErrNotFound           = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// User is the stored account record. PasswordHash is the only credential
// material ever persisted; plaintext passwords don't survive the call that
// carries them.
type User struct {
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"password_hash"`
	Superuser    bool      `json:"superuser"`
	Created      time.Time `json:"created"`
}

// CheckPassword reports whether the given plaintext password matches the
// record's hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}

// Store is the persistence surface consumed by the user server and the
// management commands. Emails are expected pre-normalized (see
// NormalizeEmail).
type Store interface {
	// Get retrieves the user with the given email, or ErrNotFound.
	Get(email string) (*User, error)
	// Create persists a new user, or returns ErrExists.
	Create(user *User) error
	// Update overwrites an existing user's record, or returns ErrNotFound.
	Update(user *User) error
	// Token returns the user's auth token, minting and persisting one on
	// first use. Token issuance is idempotent per user.
	Token(email string) (string, error)
	// Resolve maps an auth token back to its user, or returns
	// ErrInvalidToken.
	Resolve(token string) (*User, error)
	// Emails lists all registered emails in lexicographic order.
	Emails() []string
	// Close releases the underlying database.
	Close() error
}

// NormalizeEmail trims surrounding whitespace and lowercases the domain part
// of the address, mirroring how the accounts were normalized historically.
// Addresses without a non-empty local and domain part are rejected.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", ErrInvalidEmail
	}
	local, domain := email[:at], email[at+1:]
	if strings.ContainsAny(local, " \t") || strings.ContainsAny(domain, " \t@") {
		return "", ErrInvalidEmail
	}
	return local + "@" + strings.ToLower(domain), nil
}

// HashPassword validates the password policy and returns the bcrypt hash to
// be stored.
func HashPassword(password string) ([]byte, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// tokenBytes sizes minted tokens; 20 random bytes hex-encode to the 40
// character keys the historical API handed out.
const tokenBytes = 20

// mintToken generates a new random auth token.
func mintToken() (string, error) {
	key := make([]byte, tokenBytes)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
