package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/carkenya/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{postUsecase: postUsecase}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUsecase.ListPosts(c.Request.Context(), callerFrom(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, posts)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	post, err := h.postUsecase.CreatePost(c.Request.Context(), callerFrom(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	post, err := h.postUsecase.UpdatePost(c.Request.Context(), callerFrom(c), c.Param("id"), req.ToPatch())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUsecase.DeletePost(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		ErrorHandler(c, err)
		return
	}
	DeletedHandler(c)
}

// LikePost toggles the caller's like.
func (h *PostHandler) LikePost(c *gin.Context) {
	post, err := h.postUsecase.LikePost(c.Request.Context(), callerFrom(c), c.Param("id"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, post)
}
