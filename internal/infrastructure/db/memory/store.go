// Package memory implements the repository ports on plain in-memory
// collections. The store is the single writer for all entity collections;
// entities are never deleted, so references between them cannot dangle.
package memory

import (
	"sync"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// Store holds every entity collection behind its own RWMutex. Reads take
// the read lock and return copies, so callers always observe a consistent
// snapshot; writes on the same collection are mutually exclusive.
type Store struct {
	forumsMu sync.RWMutex
	forums   []domain.Forum

	postsMu sync.RWMutex
	posts   []domain.Post

	commentsMu sync.RWMutex
	comments   []domain.Comment

	usersMu sync.RWMutex
	users   []domain.User
}

// NewStore returns an empty Store. Construct one per process (or per test)
// and hand it by reference to the services; there is no ambient global state.
func NewStore() *Store {
	return &Store{}
}
