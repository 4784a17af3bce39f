package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core/session"
)

// fileStore persists the session token pair between console runs.
type fileStore struct {
	path string

	mu   sync.Mutex
	sess session.Session
}

var _ client.TokenStore = (*fileStore)(nil)

func newFileStore(path string) (*fileStore, error) {
	store := &fileStore{path: path}

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading session file")
	}
	if err := json.Unmarshal(data, &store.sess); err != nil {
		// a corrupt session file just means logging in again
		store.sess = session.Session{}
	}
	return store, nil
}

func (s *fileStore) Session() session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

func (s *fileStore) SetSession(sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "marshalling session")
	}
	return errors.Wrap(ioutil.WriteFile(s.path, data, 0o600), "writing session file")
}
