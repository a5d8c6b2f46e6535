package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harwoodm/newsdesk/internal/api/shared"
	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a UserHandler. A nil logger falls back to
// slog.Default.
func NewUserHandler(users store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersResponse{Users: users})
}

// GetByUsername handles GET /api/users/{username}.
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userResponse{User: user})
}

// Create handles POST /api/users. An omitted avatar URL gets the default;
// a supplied one must look like a URL.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondError(w, r, ErrInvalidBody)
		return
	}

	user := &domain.User{
		Username:  req.Username,
		AvatarURL: req.AvatarURL,
		Name:      req.Name,
	}
	if err := user.Normalize(); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := h.users.Create(r.Context(), user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userResponse{User: created})
}
