package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/common"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. Emails are matched case
// insensitively.
type MemoryRepository struct {
	mu         sync.RWMutex
	byEmail    map[string]*User
	byIdentity map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail:    make(map[string]*User),
		byIdentity: make(map[string]*User),
	}
}

func (r *MemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if email != "" {
		if _, ok := r.byEmail[email]; ok {
			return nil, common.ErrAlreadyExists
		}
	}
	if user.Identity != "" {
		if _, ok := r.byIdentity[user.Identity]; ok {
			return nil, common.ErrAlreadyExists
		}
	}

	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()

	if email != "" {
		r.byEmail[email] = &u
	}
	if u.Identity != "" {
		r.byIdentity[u.Identity] = &u
	}

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetUserByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *MemoryRepository) GetUserByIdentity(_ context.Context, identity string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byIdentity[identity]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *u
	return &out, nil
}
