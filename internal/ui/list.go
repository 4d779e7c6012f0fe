package ui

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

// Mode is the view a front-end renders for a ListController.
type Mode int

const (
	ModeList Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "list"
}

// Row is a list entry. Key identifies the record when it is picked.
type Row struct {
	Key   string
	Name  string
	Age   int
	Email string
}

// RowKey is the record ID, or the name for records the service has not
// assigned an ID to.
func RowKey(u user.User) string {
	if u.HasID() {
		return u.ID
	}
	return u.Name
}

// ListController owns the loaded records and the current selection.
type ListController struct {
	mu sync.Mutex

	svc    UserService
	notify Notifier

	records  []user.User
	selected *user.User
	form     *FormController

	formOpts []FormOption
}

type ListOption func(*ListController)

// WithFormOptions applies opts to every form created by Select.
func WithFormOptions(opts ...FormOption) ListOption {
	return func(l *ListController) {
		l.formOpts = append(l.formOpts, opts...)
	}
}

func NewListController(svc UserService, notifier Notifier, initial []user.User, opts ...ListOption) *ListController {
	if notifier == nil {
		notifier = discardNotifier
	}

	l := &ListController{
		svc:     svc,
		notify:  notifier,
		records: append([]user.User(nil), initial...),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Refresh replaces the records with the service's collection. On failure
// the list is emptied; the error is logged and returned, never notified.
func (l *ListController) Refresh(ctx context.Context) error {
	users, err := l.svc.FetchUsers(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		log.Error().Err(err).Msg("Error loading users")
		l.records = nil
		return err
	}

	l.records = append([]user.User(nil), users...)
	log.Debug().Int("count", len(l.records)).Msg("Users loaded")
	return nil
}

// Select switches to edit mode with a fresh form seeded from a copy of u.
func (l *ListController) Select(u user.User) {
	l.mu.Lock()
	defer l.mu.Unlock()

	selected := u
	l.selected = &selected
	l.form = NewFormController(l.svc, l.notify, u, l.formOpts...)
}

// SelectByKey selects the first record whose RowKey matches key.
func (l *ListController) SelectByKey(key string) bool {
	l.mu.Lock()
	var match *user.User
	for i := range l.records {
		if RowKey(l.records[i]) == key {
			u := l.records[i]
			match = &u
			break
		}
	}
	l.mu.Unlock()

	if match == nil {
		return false
	}
	l.Select(*match)
	return true
}

// GoBack drops the selection and reloads the list.
func (l *ListController) GoBack(ctx context.Context) error {
	l.mu.Lock()
	l.selected = nil
	l.form = nil
	l.mu.Unlock()

	return l.Refresh(ctx)
}

func (l *ListController) Mode() Mode {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.selected != nil {
		return ModeEdit
	}
	return ModeList
}

func (l *ListController) Selected() (user.User, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.selected == nil {
		return user.User{}, false
	}
	return *l.selected, true
}

// Form is the active edit form, nil in list mode.
func (l *ListController) Form() *FormController {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.form
}

func (l *ListController) Records() []user.User {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]user.User(nil), l.records...)
}

func (l *ListController) Rows() []Row {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows := make([]Row, 0, len(l.records))
	for _, u := range l.records {
		rows = append(rows, Row{
			Key:   RowKey(u),
			Name:  u.Name,
			Age:   u.Age,
			Email: u.Email,
		})
	}
	return rows
}
