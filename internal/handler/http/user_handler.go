package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/user-admin/internal/user"
)

// UserHandler serves the users API consumed by the console.
type UserHandler struct {
	repo user.Repository
}

func NewUserHandler(repo user.Repository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) RegisterRoutes(router chi.Router) {
	router.Get("/users", h.handleListUsers)
	router.Post("/users", h.handleCreateUser)
	router.Get("/users/{id}", h.handleGetUserByID)
	router.Put("/users/{id}", h.handleUpdateUser)
}

func (h *UserHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to list users")
		return
	}

	respondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestPayload, ok := decodeUser(w, r)
	if !ok {
		return
	}
	requestPayload.ID = ""

	createdUser, err := h.repo.Create(r.Context(), &requestPayload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create user")

		clientMessage := "Failed to create user"
		if errors.Is(err, user.ErrEmailExists) {
			clientMessage = "Email already exists"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusCreated, createdUser)
}

func (h *UserHandler) handleGetUserByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	foundUser, err := h.repo.GetByID(r.Context(), userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to get user by id")

		clientMessage := "Failed to get user by id"
		if errors.Is(err, user.ErrNotFound) {
			clientMessage = "User not found"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, foundUser)
}

func (h *UserHandler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	requestPayload, ok := decodeUser(w, r)
	if !ok {
		return
	}

	if requestPayload.ID != "" && requestPayload.ID != userID {
		log.Warn().Str("user_id", userID).Str("body_id", requestPayload.ID).Msg("Path and body ids differ")
		respondWithError(w, http.StatusBadRequest, "Id in body does not match the URL")
		return
	}
	requestPayload.ID = userID

	updatedUser, err := h.repo.Update(r.Context(), &requestPayload)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to update user")

		var clientMessage string
		if errors.Is(err, user.ErrNotFound) {
			clientMessage = "User not found"
		} else if errors.Is(err, user.ErrEmailExists) {
			clientMessage = "Email already exists"
		} else {
			clientMessage = "Failed to update user"
		}

		respondWithError(w, mapErrorToStatusCode(err), clientMessage)
		return
	}

	respondWithJSON(w, http.StatusOK, updatedUser)
}

// decodeUser reads and validates a user payload, answering the request
// itself when the payload is unusable.
func decodeUser(w http.ResponseWriter, r *http.Request) (user.User, bool) {
	var requestPayload user.User

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return user.User{}, false
	}

	if err := user.Validate(requestPayload); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed",
			Details: user.ValidationMessages(err),
		})
		return user.User{}, false
	}

	return requestPayload, true
}
