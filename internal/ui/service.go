// Package ui holds the list and edit-form controllers of the user console.
// Front-ends (web, terminal) own a controller pair per session and render
// from its state; the controllers never render anything themselves.
package ui

import (
	"context"

	"github.com/vasiliy-maslov/user-admin/internal/user"
)

// UserService is the remote users collaborator.
type UserService interface {
	FetchUsers(ctx context.Context) ([]user.User, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
}
