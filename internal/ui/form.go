package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

var (
	ErrSubmitInProgress = errors.New("an update is already in progress")
	ErrUnknownField     = user.ErrUnknownField
	ErrInvalidNumber    = errors.New("value is not a number")
)

// FormState is the submission state of an edit form.
type FormState int

const (
	StateEditing FormState = iota
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s FormState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("FormState(%d)", int(s))
	}
}

// FormController edits a private draft of one user and submits it.
type FormController struct {
	mu sync.Mutex

	svc    UserService
	notify Notifier

	draft user.User
	state FormState

	onTransition func(from, to FormState)
}

type FormOption func(*FormController)

// WithTransitionHook registers fn to observe every state change. fn runs
// with the controller locked and must not call back into it.
func WithTransitionHook(fn func(from, to FormState)) FormOption {
	return func(f *FormController) {
		f.onTransition = fn
	}
}

// NewFormController seeds the draft with a copy of seed.
func NewFormController(svc UserService, notifier Notifier, seed user.User, opts ...FormOption) *FormController {
	if notifier == nil {
		notifier = discardNotifier
	}

	f := &FormController{
		svc:    svc,
		notify: notifier,
		draft:  seed,
		state:  StateEditing,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *FormController) Draft() user.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *FormController) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Dispatch applies action to the draft.
func (f *FormController) Dispatch(action Action) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = Reduce(f.draft, action)
}

// SetField writes raw into the named field. Numeric fields are coerced, a
// blank value counting as zero.
func (f *FormController) SetField(name, raw string) error {
	field, err := user.ParseField(name)
	if err != nil {
		return err
	}

	action := Action{Type: ActionChangeValue, Field: field}
	if field.IsNumeric() {
		n, err := parseNumber(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", field.Label(), err)
		}
		action.Number = n
	} else {
		action.Text = raw
	}

	f.Dispatch(action)
	return nil
}

// Clear resets the draft to the empty template.
func (f *FormController) Clear() {
	f.Dispatch(Action{Type: ActionClear})
}

// Submit sends the draft upstream. Failures are reported through the
// notifier as well as returned.
func (f *FormController) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}

	draft := f.draft
	if !draft.HasID() {
		f.mu.Unlock()
		log.Warn().Str("name", draft.Name).Msg("Refusing to submit user without id")
		f.notify.Notify(Notice{Level: LevelError, Message: msgMissingID})
		return user.ErrMissingID
	}

	f.transition(StateSubmitting)
	f.mu.Unlock()

	updated, err := f.svc.UpdateUser(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.transition(StateFailed)
		log.Error().Err(err).Str("user_id", draft.ID).Msg("Failed to update user")
		f.notify.Notify(Notice{Level: LevelError, Message: msgUpdateFailure})
		f.transition(StateEditing)
		return fmt.Errorf("failed to update user '%s': %w", draft.ID, err)
	}

	f.transition(StateSubmitted)
	if updated != nil {
		log.Info().Str("user_id", updated.ID).Str("name", updated.Name).Msg("User updated")
	}
	f.notify.Notify(Notice{Level: LevelSuccess, Message: msgUpdateSuccess})
	f.draft = Reduce(f.draft, Action{Type: ActionClear})
	f.transition(StateEditing)

	return nil
}

func (f *FormController) transition(to FormState) {
	from := f.state
	f.state = to
	log.Debug().Stringer("from", from).Stringer("to", to).Msg("Form state changed")
	if f.onTransition != nil {
		f.onTransition(from, to)
	}
}

func parseNumber(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return n, nil
}
