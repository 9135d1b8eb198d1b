package entity

// DailyCount is one bucket of a trailing daily histogram. Date is YYYY-MM-DD (UTC).
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type TopBlog struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int    `json:"views"`
}

// Analytics is computed on demand from the store.
type Analytics struct {
	TotalUsers     int          `json:"totalUsers"`
	ActiveUsers    int          `json:"activeUsers"`
	TotalBlogs     int          `json:"totalBlogs"`
	PublishedBlogs int          `json:"publishedBlogs"`
	TotalViews     int          `json:"totalViews"`
	TotalLikes     int          `json:"totalLikes"`
	TotalComments  int          `json:"totalComments"`
	UserGrowth     []DailyCount `json:"userGrowth"`
	BlogViews      []DailyCount `json:"blogViews"`
	TopBlogs       []TopBlog    `json:"topBlogs"`
}
