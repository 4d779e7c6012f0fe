package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/user-admin/internal/ui"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

const defaultCookieName = "user_admin_session"

type sessionKey struct{}

// Handler serves the browser console. Every mutation answers with a
// redirect to "/", which renders whichever view the session is in.
type Handler struct {
	sessions   *SessionStore
	views      *Views
	cookieName string
}

type Option func(*Handler)

func WithCookieName(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.cookieName = name
		}
	}
}

func NewHandler(sessions *SessionStore, views *Views, opts ...Option) *Handler {
	h := &Handler{
		sessions:   sessions,
		views:      views,
		cookieName: defaultCookieName,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(h.loadSession)

		r.Get("/", h.handleIndex)
		r.Post("/users/select", h.handleSelect)
		r.Post("/form", h.handleForm)
		r.Post("/back", h.handleBack)
	})
}

func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(h.cookieName); err == nil {
			if id, err := uuid.FromString(cookie.Value); err == nil {
				if sess, ok := h.sessions.get(id); ok {
					next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
					return
				}
			}
		}

		sess, err := h.sessions.create(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to create session")
			http.Error(w, "failed to create session", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     h.cookieName,
			Value:    sess.id.String(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

func sessionFrom(r *http.Request) *session {
	return r.Context().Value(sessionKey{}).(*session)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	notices := sess.takeNotices()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var err error
	if form := sess.list.Form(); form != nil && sess.list.Mode() == ui.ModeEdit {
		err = h.views.renderEdit(w, notices, form.Draft())
	} else {
		err = h.views.renderList(w, notices, sess.list.Rows())
	}
	if err != nil {
		log.Error().Err(err).Str("session_id", sess.id.String()).Msg("Failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	key := r.PostFormValue("key")
	if !sess.list.SelectByKey(key) {
		log.Warn().Str("key", key).Msg("Selected user is not in the list")
		sess.Notify(ui.Notice{Level: ui.LevelError, Message: "That user is no longer in the list."})
	}

	redirectHome(w, r)
}

func (h *Handler) handleForm(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	form := sess.list.Form()
	if form == nil {
		redirectHome(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("Failed to parse form")
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	switch action := r.PostForm.Get("action"); action {
	case "clear":
		form.Clear()
	case "update":
		h.update(r, sess, form)
	default:
		log.Warn().Str("action", action).Msg("Unknown form action")
		http.Error(w, "unknown form action", http.StatusBadRequest)
		return
	}

	redirectHome(w, r)
}

// update copies posted values into the draft, checks required fields and
// submits. Every outcome reaches the user as a notice.
func (h *Handler) update(r *http.Request, sess *session, form *ui.FormController) {
	valid := true
	for _, f := range user.Fields() {
		values, ok := r.PostForm[string(f)]
		if !ok || len(values) == 0 {
			continue
		}
		if err := form.SetField(string(f), values[0]); err != nil {
			sess.Notify(ui.Notice{Level: ui.LevelError, Message: err.Error()})
			valid = false
		}
	}
	if !valid {
		return
	}

	if err := user.Validate(form.Draft()); err != nil {
		for _, msg := range user.ValidationMessages(err) {
			sess.Notify(ui.Notice{Level: ui.LevelError, Message: msg})
		}
		return
	}

	if err := form.Submit(r.Context()); err != nil {
		if errors.Is(err, ui.ErrSubmitInProgress) {
			sess.Notify(ui.Notice{Level: ui.LevelInfo, Message: "An update is already in progress."})
		}
		log.Debug().Err(err).Str("session_id", sess.id.String()).Msg("Submit did not go through")
	}
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)

	if err := sess.list.GoBack(r.Context()); err != nil {
		log.Warn().Err(err).Str("session_id", sess.id.String()).Msg("Reload after back failed")
	}

	redirectHome(w, r)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
