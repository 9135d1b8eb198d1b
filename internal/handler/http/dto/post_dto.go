package dto

import (
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

type CreatePostRequest struct {
	Content  string   `json:"content" binding:"required,min=1"`
	Images   []string `json:"images"`
	CarBrand *string  `json:"carBrand"`
	CarModel *string  `json:"carModel"`
}

func (r CreatePostRequest) ToInput() usecasecontract.CreatePostInput {
	return usecasecontract.CreatePostInput{
		Content:  r.Content,
		Images:   r.Images,
		CarBrand: r.CarBrand,
		CarModel: r.CarModel,
	}
}

type UpdatePostRequest struct {
	Content  *string  `json:"content" binding:"omitempty,min=1"`
	Images   []string `json:"images"`
	CarBrand *string  `json:"carBrand"`
	CarModel *string  `json:"carModel"`
}

func (r UpdatePostRequest) ToPatch() entity.PostPatch {
	return entity.PostPatch{
		Content:  r.Content,
		Images:   r.Images,
		CarBrand: r.CarBrand,
		CarModel: r.CarModel,
	}
}
