package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/carkenya/internal/handler/http/dto"
	"github.com/mikiasgoitom/carkenya/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// AuthHandlerInterface allows the handler to be swapped in router tests.
type AuthHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	Me(*gin.Context)
}

var _ AuthHandlerInterface = (*AuthHandler)(nil)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewAuthHandler(authUsecase usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles user registration (signup)
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	au, err := h.authUsecase.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, au)
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	au, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, au)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), callerFrom(c), middleware.TokenFrom(c)); err != nil {
		ErrorHandler(c, err)
		return
	}
	DeletedHandler(c)
}

// Me returns the profile behind the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.Me(c.Request.Context(), callerFrom(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}
