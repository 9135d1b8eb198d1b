package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/carkenya/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	ListUsers(*gin.Context)
	UpdateUser(*gin.Context)
	DeleteUser(*gin.Context)
	ToggleActive(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context(), callerFrom(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.UpdateUser(c.Request.Context(), callerFrom(c), c.Param("id"), req.ToPatch())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUsecase.DeleteUser(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		ErrorHandler(c, err)
		return
	}
	DeletedHandler(c)
}

func (h *UserHandler) ToggleActive(c *gin.Context) {
	var req dto.ToggleActiveRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	user, err := h.userUsecase.ToggleActive(c.Request.Context(), callerFrom(c), c.Param("id"), *req.IsActive)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}
