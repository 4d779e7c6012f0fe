package user

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gofrs/uuid"
)

// Repository stores users for the stub users service.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
}

// MemoryRepository keeps users in process memory. Safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepository(seed []User) (*MemoryRepository, error) {
	r := &MemoryRepository{users: make(map[string]User, len(seed))}
	for i := range seed {
		u := seed[i]
		if _, err := r.Create(context.Background(), &u); err != nil {
			return nil, fmt.Errorf("failed to seed user %q: %w", seed[i].Name, err)
		}
	}
	return r, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID < users[j].ID
	})

	return users, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// Create stores a new user. A caller-supplied ID is kept (seed files use
// this), otherwise a UUID is generated.
func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(user.Email, "") {
		return nil, ErrEmailExists
	}

	created := *user
	if created.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("failed to generate user id: %w", err)
		}
		created.ID = id.String()
	} else if _, exists := r.users[created.ID]; exists {
		return nil, fmt.Errorf("user id '%s' already in use", created.ID)
	}

	r.users[created.ID] = created
	return &created, nil
}

func (r *MemoryRepository) Update(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return nil, ErrNotFound
	}
	if r.emailTaken(user.Email, user.ID) {
		return nil, ErrEmailExists
	}

	updated := *user
	r.users[updated.ID] = updated
	return &updated, nil
}

func (r *MemoryRepository) emailTaken(email, exceptID string) bool {
	for id, u := range r.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
