package tui_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/user-admin/internal/tui"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

// scriptedPrompter answers prompts from a fixed script. Select answers
// pick the first option starting with the scripted text. Once the script
// runs out every prompt reports ErrQuit.
type scriptedPrompter struct {
	answers []string
	infos   []string
	menus   [][]string
}

func (p *scriptedPrompter) next() (string, bool) {
	if len(p.answers) == 0 {
		return "", false
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, true
}

func (p *scriptedPrompter) Select(ctx context.Context, message string, options []string) (int, error) {
	p.menus = append(p.menus, options)
	answer, ok := p.next()
	if !ok {
		return 0, tui.ErrQuit
	}
	for i, option := range options {
		if strings.HasPrefix(option, answer) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no option matching %q in %v", answer, options)
}

func (p *scriptedPrompter) Input(ctx context.Context, message, def string) (string, error) {
	answer, ok := p.next()
	if !ok {
		return "", tui.ErrQuit
	}
	return answer, nil
}

func (p *scriptedPrompter) Password(ctx context.Context, message string) (string, error) {
	return p.Input(ctx, message, "")
}

func (p *scriptedPrompter) Info(ctx context.Context, msg string) error {
	p.infos = append(p.infos, msg)
	return nil
}

func (p *scriptedPrompter) lastMenu() []string {
	if len(p.menus) == 0 {
		return nil
	}
	return p.menus[len(p.menus)-1]
}

type fakeService struct {
	users      []user.User
	fetchErr   error
	updateErr  error
	fetchCalls int
	updates    []user.User
}

func (s *fakeService) FetchUsers(ctx context.Context) ([]user.User, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return append([]user.User(nil), s.users...), nil
}

func (s *fakeService) UpdateUser(ctx context.Context, u user.User) (*user.User, error) {
	s.updates = append(s.updates, u)
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &u, nil
}

func ana() user.User {
	return user.User{ID: "1", Name: "Ana", Age: 30, Email: "ana@example.com", Password: "secret", Phone: 555}
}

func TestApp_QuitFromList(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{"Quit"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, svc.fetchCalls)
	require.Len(t, prompt.menus, 1)
	assert.Equal(t, []string{"1. Ana (age 30, ana@example.com)", "Refresh", "Quit"}, prompt.menus[0])
}

func TestApp_InterruptQuits(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	assert.NoError(t, err)
}

func TestApp_EmptyListOnFetchFailure(t *testing.T) {
	svc := &fakeService{fetchErr: errors.New("users api down")}
	prompt := &scriptedPrompter{answers: []string{"Quit"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"No users to show."}, prompt.infos)
	assert.Equal(t, []string{"Refresh", "Quit"}, prompt.lastMenu())
}

func TestApp_EditAndUpdate(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{
		"1. Ana",
		"Age:", "31",
		"Update",
	}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	require.Len(t, svc.updates, 1)
	expected := ana()
	expected.Age = 31
	assert.Equal(t, expected, svc.updates[0])
	assert.Contains(t, prompt.infos, "✔ User updated successfully!")

	assert.Equal(t, []string{
		"Name: ",
		"Age: 0",
		"Email: ",
		"Password: ",
		"Phone: 0",
		"Clear",
		"Update",
		"Back",
	}, prompt.lastMenu(), "form resets to the empty template after a successful update")
}

func TestApp_EditMenuShowsDraft(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{"1. Ana"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Name: Ana",
		"Age: 30",
		"Email: ana@example.com",
		"Password: ******",
		"Phone: 555",
		"Clear",
		"Update",
		"Back",
	}, prompt.lastMenu())
}

func TestApp_UpdateFailureKeepsDraft(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}, updateErr: errors.New("timeout")}
	prompt := &scriptedPrompter{answers: []string{"1. Ana", "Name:", "Ana Maria", "Update"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	require.Len(t, svc.updates, 1)
	assert.Contains(t, prompt.infos, "✘ Failed to update user. Please try again.")
	assert.Contains(t, prompt.lastMenu(), "Name: Ana Maria")
}

func TestApp_InvalidNumberRejected(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{"1. Ana", "Age:", "thirty"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	require.Len(t, prompt.infos, 1)
	assert.Contains(t, prompt.infos[0], "value is not a number")
	assert.Contains(t, prompt.lastMenu(), "Age: 30")
}

func TestApp_EmptyPasswordKeepsCurrent(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{"1. Ana", "Password:", ""}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, prompt.lastMenu(), "Password: ******")
}

func TestApp_ValidationBlocksUpdate(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{"1. Ana", "Email:", "", "Update"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, svc.updates)
	assert.Contains(t, prompt.infos, "✘ Field 'Email' is required")
}

func TestApp_ClearThenUpdateNeedsID(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{
		"1. Ana",
		"Clear",
		"Name:", "Ana",
		"Email:", "ana@example.com",
		"Password:", "secret",
		"Update",
	}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, svc.updates)
	assert.Contains(t, prompt.infos, "✘ User ID is required to update the user.")
}

func TestApp_BackRefreshesList(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{"1. Ana", "Back"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, svc.fetchCalls)
	assert.Equal(t, []string{"1. Ana (age 30, ana@example.com)", "Refresh", "Quit"}, prompt.lastMenu())
}

func TestApp_RefreshFromList(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{"Refresh"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, svc.fetchCalls)
}

func TestApp_PromptErrorStopsRun(t *testing.T) {
	svc := &fakeService{users: []user.User{ana()}}
	prompt := &scriptedPrompter{answers: []string{"Delete"}}

	err := tui.NewApp(svc, prompt).Run(context.Background())

	assert.Error(t, err)
}
