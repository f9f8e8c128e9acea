package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridebook/internal/domain"
	"ridebook/internal/store"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	session *store.Session
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(session *store.Session) *AuthHandler {
	return &AuthHandler{session: session}
}

// LoginRequest is the HTTP request body for logging in.
type LoginRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	ActorType string `json:"actor_type"` // user, driver, admin
}

// LoginResponse is the HTTP response for a successful login.
type LoginResponse struct {
	Actor  string          `json:"actor"`
	User   *UserResponse   `json:"user,omitempty"`
	Driver *DriverResponse `json:"driver,omitempty"`
}

// AuthStateResponse is the HTTP response describing the current identity.
type AuthStateResponse struct {
	Authenticated bool            `json:"authenticated"`
	Actor         string          `json:"actor,omitempty"`
	DisplayName   string          `json:"display_name,omitempty"`
	User          *UserResponse   `json:"user,omitempty"`
	Driver        *DriverResponse `json:"driver,omitempty"`
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.session.Login(c.Request.Context(), req.Email, req.Password, domain.Actor(req.ActorType))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := LoginResponse{Actor: string(result.Actor)}
	if result.User != nil {
		u := toUserResponse(*result.User)
		resp.User = &u
	}
	if result.Driver != nil {
		d := toDriverResponse(*result.Driver)
		resp.Driver = &d
	}

	respondJSON(c, http.StatusOK, resp)
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// State handles GET /v1/auth/state
func (h *AuthHandler) State(c *gin.Context) {
	state := h.session.AuthState()

	resp := AuthStateResponse{
		Authenticated: state.Authenticated,
		Actor:         string(state.Actor),
		DisplayName:   state.DisplayName,
	}
	if state.User != nil {
		u := toUserResponse(*state.User)
		resp.User = &u
	}
	if state.Driver != nil {
		d := toDriverResponse(*state.Driver)
		resp.Driver = &d
	}

	respondJSON(c, http.StatusOK, resp)
}
