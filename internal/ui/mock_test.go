package ui_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/vasiliy-maslov/user-admin/internal/ui"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FetchUsers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, u user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []ui.Notice
}

func (r *recordingNotifier) Notify(n ui.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *recordingNotifier) all() []ui.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ui.Notice(nil), r.notices...)
}

func ana() user.User {
	return user.User{ID: "1", Name: "Ana", Age: 30, Email: "ana@example.com", Password: "secret", Phone: 555}
}
