package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/savu-app/savu-backend/internal/auth"
	"github.com/savu-app/savu-backend/internal/http/respond"
	"github.com/savu-app/savu-backend/internal/logging"
	"github.com/savu-app/savu-backend/internal/models/dto"
	"github.com/savu-app/savu-backend/internal/storage"
)

// AuthHandler owns the signup and login endpoints.
type AuthHandler struct {
	store storage.Store
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/signup", h.handleSignup)
	mux.HandleFunc("POST /api/login", h.handleLogin)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	if _, err := h.store.CreateUser(r.Context(), username, passwordHash); err != nil {
		if errors.Is(err, storage.ErrDuplicateUsername) {
			respond.Error(w, http.StatusConflict, "Username already exists")
			return
		}
		logging.Logger.WithError(err).WithField("username", username).Error("create user failed")
		respond.Error(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]string{"message": "User created successfully"})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.store.GetUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		logging.Logger.WithError(err).WithField("username", username).Error("fetch user failed")
		respond.Error(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	respond.JSON(w, http.StatusOK, dto.LoginResponse{Message: "Login successful", User: user})
}
