package dto

import "github.com/mikiasgoitom/carkenya/internal/domain/entity"

// UpdateUserRequest is a partial profile update; omitted fields are kept.
type UpdateUserRequest struct {
	Name           *string  `json:"name" binding:"omitempty,min=2"`
	Bio            *string  `json:"bio"`
	Avatar         *string  `json:"avatar"`
	FavoriteBrands []string `json:"favoriteBrands"`
}

func (r UpdateUserRequest) ToPatch() entity.UserPatch {
	return entity.UserPatch{
		Name:           r.Name,
		Bio:            r.Bio,
		Avatar:         r.Avatar,
		FavoriteBrands: r.FavoriteBrands,
	}
}

type ToggleActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
