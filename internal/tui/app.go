// Package tui is the interactive terminal front-end of the user console.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/user-admin/internal/ui"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

const (
	optRefresh = "Refresh"
	optQuit    = "Quit"
	optClear   = "Clear"
	optUpdate  = "Update"
	optBack    = "Back"
)

// App runs one console session on a terminal.
type App struct {
	list   *ui.ListController
	prompt Prompter

	mu      sync.Mutex
	pending []ui.Notice
}

func NewApp(svc ui.UserService, prompt Prompter, opts ...ui.ListOption) *App {
	a := &App{prompt: prompt}
	a.list = ui.NewListController(svc, a, nil, opts...)
	return a
}

// Notify queues n for display before the next prompt.
func (a *App) Notify(n ui.Notice) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = append(a.pending, n)
}

// Run loads the list and serves prompts until the person quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	if err := a.list.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("Initial user load failed")
	}

	for {
		if err := a.flush(ctx); err != nil {
			return err
		}

		var err error
		if a.list.Mode() == ui.ModeEdit {
			err = a.editStep(ctx)
		} else {
			err = a.listStep(ctx)
		}

		switch {
		case errors.Is(err, ErrQuit):
			log.Info().Msg("Console closed")
			return nil
		case err != nil:
			return err
		}
	}
}

func (a *App) listStep(ctx context.Context) error {
	rows := a.list.Rows()
	if len(rows) == 0 {
		if err := a.prompt.Info(ctx, "No users to show."); err != nil {
			return err
		}
	}

	options := make([]string, 0, len(rows)+2)
	for i, row := range rows {
		options = append(options, rowLabel(i, row))
	}
	options = append(options, optRefresh, optQuit)

	idx, err := a.prompt.Select(ctx, "Users", options)
	if err != nil {
		return err
	}

	switch {
	case idx < len(rows):
		if !a.list.SelectByKey(rows[idx].Key) {
			a.Notify(ui.Notice{Level: ui.LevelError, Message: "That user is no longer in the list."})
		}
	case options[idx] == optRefresh:
		if err := a.list.Refresh(ctx); err != nil {
			log.Warn().Err(err).Msg("Refresh failed")
		}
	default:
		return ErrQuit
	}
	return nil
}

func (a *App) editStep(ctx context.Context) error {
	form := a.list.Form()
	draft := form.Draft()

	fields := user.Fields()
	options := make([]string, 0, len(fields)+3)
	for _, f := range fields {
		options = append(options, fieldLabel(f, draft))
	}
	options = append(options, optClear, optUpdate, optBack)

	idx, err := a.prompt.Select(ctx, "Edit user", options)
	if err != nil {
		return err
	}

	if idx < len(fields) {
		return a.editField(ctx, form, fields[idx], draft)
	}

	switch options[idx] {
	case optClear:
		form.Clear()
	case optUpdate:
		a.update(ctx, form)
	case optBack:
		if err := a.list.GoBack(ctx); err != nil {
			log.Warn().Err(err).Msg("Reload after back failed")
		}
	}
	return nil
}

func (a *App) editField(ctx context.Context, form *ui.FormController, f user.Field, draft user.User) error {
	var (
		raw string
		err error
	)
	if f == user.FieldPassword {
		raw, err = a.prompt.Password(ctx, f.Label())
		if err == nil && raw == "" {
			return nil
		}
	} else {
		raw, err = a.prompt.Input(ctx, f.Label(), fieldValue(f, draft))
	}
	if err != nil {
		return err
	}

	if err := form.SetField(string(f), raw); err != nil {
		a.Notify(ui.Notice{Level: ui.LevelError, Message: err.Error()})
	}
	return nil
}

func (a *App) update(ctx context.Context, form *ui.FormController) {
	if err := user.Validate(form.Draft()); err != nil {
		for _, msg := range user.ValidationMessages(err) {
			a.Notify(ui.Notice{Level: ui.LevelError, Message: msg})
		}
		return
	}

	if err := form.Submit(ctx); err != nil {
		log.Debug().Err(err).Msg("Submit did not go through")
	}
}

func (a *App) flush(ctx context.Context) error {
	a.mu.Lock()
	pending := a.pending
	a.pending = nil
	a.mu.Unlock()

	for _, n := range pending {
		if err := a.prompt.Info(ctx, noticeLine(n)); err != nil {
			return err
		}
	}
	return nil
}

func rowLabel(i int, row ui.Row) string {
	return fmt.Sprintf("%d. %s (age %d, %s)", i+1, row.Name, row.Age, row.Email)
}

func fieldLabel(f user.Field, draft user.User) string {
	if f == user.FieldPassword {
		return f.Label() + ": " + strings.Repeat("*", len(draft.Password))
	}
	return f.Label() + ": " + fieldValue(f, draft)
}

func fieldValue(f user.Field, draft user.User) string {
	switch f {
	case user.FieldName:
		return draft.Name
	case user.FieldAge:
		return strconv.Itoa(draft.Age)
	case user.FieldEmail:
		return draft.Email
	case user.FieldPassword:
		return draft.Password
	case user.FieldPhone:
		return strconv.FormatInt(draft.Phone, 10)
	default:
		return ""
	}
}

func noticeLine(n ui.Notice) string {
	switch n.Level {
	case ui.LevelSuccess:
		return "✔ " + n.Message
	case ui.LevelError:
		return "✘ " + n.Message
	default:
		return "• " + n.Message
	}
}
