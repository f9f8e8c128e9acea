package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ridebook/internal/domain"
	"ridebook/internal/store"
)

// UserHandler handles HTTP requests for rider accounts.
type UserHandler struct {
	accounts *store.AccountStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(accounts *store.AccountStore) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// UserResponse is the HTTP projection of a rider account. The password is
// never included.
type UserResponse struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	WalletBalance int     `json:"wallet_balance"`
	JoinedDate    string  `json:"joined_date"`
	TotalRides    int     `json:"total_rides"`
	AverageRating float64 `json:"average_rating"`
	ProfileImage  string  `json:"profile_image,omitempty"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		WalletBalance: u.WalletBalance,
		JoinedDate:    u.JoinedDate.Format("2006-01-02T15:04:05Z07:00"),
		TotalRides:    u.TotalRides,
		AverageRating: u.AverageRating,
		ProfileImage:  u.ProfileImage,
	}
}

// RegisterUserRequest is the HTTP request body for registering a rider.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the HTTP request body for patching the current
// account's profile. Empty fields are left unchanged.
type UpdateProfileRequest struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// WalletRequest is the HTTP request body for adjusting the wallet.
type WalletRequest struct {
	Amount    int    `json:"amount"`
	Operation string `json:"operation"` // add, deduct
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), store.RegisterUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toUserResponse(*user))
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users := h.accounts.GetAll()

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}

	c.JSON(http.StatusOK, response)
}

// GetByID handles GET /v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, store.ErrInvalidUserID)
		return
	}

	user, err := h.accounts.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(*user))
}

// Me handles GET /v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	user := h.accounts.Current()
	if user == nil {
		respondError(c, store.ErrNotAuthenticated)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(*user))
}

// UpdateProfile handles PATCH /v1/users/me/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.accounts.UpdateProfile(c.Request.Context(), store.UserProfilePatch{
		Name:         req.Name,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(*user))
}

// UpdateWallet handles POST /v1/users/me/wallet
func (h *UserHandler) UpdateWallet(c *gin.Context) {
	var req WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.accounts.UpdateWallet(c.Request.Context(), req.Amount, store.WalletOp(req.Operation))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toUserResponse(*user))
}
