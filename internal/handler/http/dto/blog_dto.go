package dto

import (
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

type CreateBlogRequest struct {
	Title       string   `json:"title" binding:"required,min=1"`
	Content     string   `json:"content" binding:"required,min=1"`
	Excerpt     string   `json:"excerpt"`
	CoverImage  string   `json:"coverImage"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"isPublished"`
}

func (r CreateBlogRequest) ToInput() usecasecontract.CreateBlogInput {
	return usecasecontract.CreateBlogInput{
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		CoverImage:  r.CoverImage,
		Images:      r.Images,
		Category:    r.Category,
		Tags:        r.Tags,
		IsPublished: r.IsPublished,
	}
}

// UpdateBlogRequest is a partial update. Setting isPublished moves the blog
// between draft and published.
type UpdateBlogRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=1"`
	Content     *string  `json:"content" binding:"omitempty,min=1"`
	Excerpt     *string  `json:"excerpt"`
	CoverImage  *string  `json:"coverImage"`
	Images      []string `json:"images"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"isPublished"`
}

func (r UpdateBlogRequest) ToPatch() entity.BlogPatch {
	return entity.BlogPatch{
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		CoverImage:  r.CoverImage,
		Images:      r.Images,
		Category:    r.Category,
		Tags:        r.Tags,
		IsPublished: r.IsPublished,
	}
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}
