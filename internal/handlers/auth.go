package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wellnest-health/wellnest-backend/internal/middleware"
	"github.com/wellnest-health/wellnest-backend/internal/models"
	"github.com/wellnest-health/wellnest-backend/internal/services"
	"github.com/wellnest-health/wellnest-backend/pkg/utils"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// AuthHandler manages accounts (PostgreSQL) and bearer sessions (Redis).
type AuthHandler struct {
	db       *sql.DB
	sessions *services.SessionService
	log      *zap.Logger
}

func NewAuthHandler(db *sql.DB, sessions *services.SessionService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{db: db, sessions: sessions, log: log}
}

// Register creates an account and signs the user in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}

	var existing string
	err := h.db.QueryRow("SELECT email FROM users WHERE LOWER(email) = $1", req.Email).Scan(&existing)
	if err == nil {
		respondError(w, http.StatusConflict, "An account with this email already exists")
		return
	} else if err != sql.ErrNoRows {
		h.log.Error("register: email lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		h.log.Error("register: password hashing failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	var user models.User
	err = h.db.QueryRow(
		`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3)
		 RETURNING id, name, email, created_at`,
		req.Name, req.Email, hashed,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		h.log.Error("register: insert failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	token, err := h.issueSession(r, user.ID)
	if err != nil {
		h.log.Error("register: session creation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{Success: true, Token: token, User: &user})
}

// Login verifies credentials and issues a fresh session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	var user models.User
	err := h.db.QueryRow(
		"SELECT id, name, email, password_hash, created_at FROM users WHERE LOWER(email) = $1",
		req.Email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	} else if err != nil {
		h.log.Error("login: user lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !ok {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.issueSession(r, user.ID)
	if err != nil {
		h.log.Error("login: session creation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	user.PasswordHash = ""
	respondJSON(w, http.StatusOK, AuthResponse{Success: true, Token: token, User: &user})
}

// Profile returns the authenticated user's account data.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var user models.User
	err := h.db.QueryRow(
		"SELECT id, name, email, created_at FROM users WHERE id = $1", userID,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err == sql.ErrNoRows {
		respondError(w, http.StatusNotFound, "User not found")
		return
	} else if err != nil {
		h.log.Error("profile: user lookup failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// Logout invalidates the caller's session token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractBearerToken(r.Header.Get("Authorization"))
	if err := h.sessions.Invalidate(r.Context(), token); err != nil {
		h.log.Error("logout: session invalidation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *AuthHandler) issueSession(r *http.Request, userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", err
	}
	return h.sessions.Create(r.Context(), id)
}
