package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/VentureLens-Labs/VentureLens/internal/events"
	"github.com/VentureLens-Labs/VentureLens/internal/session"
	"github.com/VentureLens-Labs/VentureLens/internal/store"
)

type AuthHandler struct {
	store    store.Store
	sessions *session.Manager
	events   events.Client
}

func NewAuthHandler(s store.Store, sessions *session.Manager, ev events.Client) *AuthHandler {
	return &AuthHandler{store: s, sessions: sessions, events: ev}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := &store.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectUserSignedUp, events.UserSignedUpEvent{
			Username:  user.Username,
			Timestamp: user.CreatedAt,
		})
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created", "username": user.Username})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to look up user")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := h.sessions.Create(r.Context(), user.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: user.Username})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := tokenFrom(r.Context())
	if err := h.sessions.Delete(r.Context(), token); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to end session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
