package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"starwars-api/apierror"
	"starwars-api/usecases"
)

type AuthHandler struct {
	users *usecases.UserUseCase
	auth  *usecases.AuthUseCase
}

func NewAuthHandler(users *usecases.UserUseCase, auth *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{users: users, auth: auth}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// bindCredentials maps validation failures to the missing-fields error and
// anything else (malformed JSON, wrong types) to a generic bad request.
func bindCredentials(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return usecases.ErrMissingCredentials
		}
		return apierror.BadRequest("Invalid request body")
	}
	return nil
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindCredentials(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user.Serialize())
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindCredentials(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    token,
		Username: user.Username,
	})
}
