package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/carkenya/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

type BlogHandler struct {
	blogUsecase usecasecontract.IBlogUseCase
}

func NewBlogHandler(blogUsecase usecasecontract.IBlogUseCase) *BlogHandler {
	return &BlogHandler{blogUsecase: blogUsecase}
}

// GetBlogsHandler lists blogs; drafts are included for admins only.
func (h *BlogHandler) GetBlogsHandler(c *gin.Context) {
	blogs, err := h.blogUsecase.ListBlogs(c.Request.Context(), callerFrom(c))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, blogs)
}

// GetBlogDetailHandler returns one blog and counts the view.
func (h *BlogHandler) GetBlogDetailHandler(c *gin.Context) {
	blog, err := h.blogUsecase.GetBlog(c.Request.Context(), callerFrom(c), c.Param("id"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, blog)
}

func (h *BlogHandler) CreateBlogHandler(c *gin.Context) {
	var req dto.CreateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	blog, err := h.blogUsecase.CreateBlog(c.Request.Context(), callerFrom(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, blog)
}

func (h *BlogHandler) UpdateBlogHandler(c *gin.Context) {
	var req dto.UpdateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	blog, err := h.blogUsecase.UpdateBlog(c.Request.Context(), callerFrom(c), c.Param("id"), req.ToPatch())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, blog)
}

func (h *BlogHandler) DeleteBlogHandler(c *gin.Context) {
	if err := h.blogUsecase.DeleteBlog(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		ErrorHandler(c, err)
		return
	}
	DeletedHandler(c)
}

func (h *BlogHandler) LikeBlogHandler(c *gin.Context) {
	blog, err := h.blogUsecase.LikeBlog(c.Request.Context(), callerFrom(c), c.Param("id"))
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, blog)
}

func (h *BlogHandler) CommentBlogHandler(c *gin.Context) {
	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	blog, err := h.blogUsecase.CommentOnBlog(c.Request.Context(), callerFrom(c), c.Param("id"), req.Content)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, blog)
}
