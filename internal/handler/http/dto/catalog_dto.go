package dto

type CarsQuery struct {
	Category string `form:"category"`
	Trending bool   `form:"trending"`
}

type NewsQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=global kenya"`
}
