package entity

type CarCategory string

const (
	CarCategorySupercars CarCategory = "Supercars"
	CarCategoryClassics  CarCategory = "Classics"
	CarCategoryJDM       CarCategory = "JDM"
	CarCategoryEVs       CarCategory = "EVs"
	CarCategoryOffRoad   CarCategory = "Off-road"
	CarCategoryLuxury    CarCategory = "Luxury"
)

type CarSpecs struct {
	Engine       string `json:"engine"`
	Horsepower   int    `json:"horsepower"`
	TopSpeed     string `json:"topSpeed"`
	Acceleration string `json:"acceleration"`
}

// Car is a read-only reference entry.
type Car struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Model       string      `json:"model"`
	Year        int         `json:"year"`
	Category    CarCategory `json:"category"`
	Image       string      `json:"image"`
	Specs       CarSpecs    `json:"specs"`
	Price       string      `json:"price,omitempty"`
	Description string      `json:"description"`
	Trending    bool        `json:"trending"`
}

// NewsArticle is a read-only reference entry. Category is "global" or "kenya".
type NewsArticle struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category"`
}
