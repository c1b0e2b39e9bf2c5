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

package userstore

import (
	"encoding/json"
	"os"
	"path"
	"sync"

	"github.com/boltdb/bolt"
	"github.com/google/btree"
)

var (
	usersBucket      = []byte("users")       // email -> json(User)
	tokensBucket     = []byte("tokens")      // token -> email
	userTokensBucket = []byte("user-tokens") // email -> token
)

// indexDegree sizes the btree nodes of the in-memory email index.
const indexDegree = 8

// BoltStore is the bolt-backed Store implementation. Alongside the database
// it maintains an in-memory btree over emails, so ordered listings (exports,
// admin tooling) don't have to scan buckets.
type BoltStore struct {
	db *bolt.DB

	mu    sync.RWMutex
	index *btree.BTree
}

var _ Store = &BoltStore{}

type emailItem string

func (e emailItem) Less(than btree.Item) bool {
	return e < than.(emailItem)
}

// Open opens (creating if necessary) the user database under the given
// directory and loads the email index.
func Open(dir string) (*BoltStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil && !os.IsExist(err) {
		return nil, err
	}

	db, err := bolt.Open(path.Join(dir, "users.db"), 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{usersBucket, tokensBucket, userTokensBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	index := btree.New(indexDegree)
	err = db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(usersBucket).ForEach(func(k, v []byte) error {
			index.ReplaceOrInsert(emailItem(k))
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, index: index}, nil
}

func (s *BoltStore) Get(email string) (*User, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		raw = tx.Bucket(usersBucket).Get([]byte(email))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrNotFound
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *BoltStore) Create(user *User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(usersBucket)
		if b.Get([]byte(user.Email)) != nil {
			return ErrExists
		}
		return b.Put([]byte(user.Email), raw)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.index.ReplaceOrInsert(emailItem(user.Email))
	s.mu.Unlock()
	return nil
}

func (s *BoltStore) Update(user *User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(usersBucket)
		if b.Get([]byte(user.Email)) == nil {
			return ErrNotFound
		}
		return b.Put([]byte(user.Email), raw)
	})
}

func (s *BoltStore) Token(email string) (string, error) {
	var token string
	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(usersBucket).Get([]byte(email)) == nil {
			return ErrNotFound
		}

		// Reuse the previously minted token, if any; issuance is idempotent
		// per user.
		if existing := tx.Bucket(userTokensBucket).Get([]byte(email)); existing != nil {
			token = string(existing)
			return nil
		}

		minted, err := mintToken()
		if err != nil {
			return err
		}
		if err := tx.Bucket(userTokensBucket).Put([]byte(email), []byte(minted)); err != nil {
			return err
		}
		if err := tx.Bucket(tokensBucket).Put([]byte(minted), []byte(email)); err != nil {
			return err
		}
		token = minted
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *BoltStore) Resolve(token string) (*User, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		email := tx.Bucket(tokensBucket).Get([]byte(token))
		if email == nil {
			return ErrInvalidToken
		}
		raw = tx.Bucket(usersBucket).Get(email)
		if raw == nil {
			// A token pointing at a deleted record is as good as no token.
			return ErrInvalidToken
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *BoltStore) Emails() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emails := make([]string, 0, s.index.Len())
	s.index.Ascend(func(item btree.Item) bool {
		emails = append(emails, string(item.(emailItem)))
		return true
	})
	return emails
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
