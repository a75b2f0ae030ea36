// Package memory is an in-memory Store implementation, used by the handler
// tests and as the backend when no database is configured.
package memory

import (
	"sync"

	"autolist/portal/internal/model"
)

type Store struct {
	mu sync.Mutex

	users       map[string]model.User
	submissions map[string]model.Submission

	// insertion order of submission IDs, so listings are stable
	order []string
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]model.User),
		submissions: make(map[string]model.Submission),
	}
}
