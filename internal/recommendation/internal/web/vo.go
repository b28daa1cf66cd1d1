package web

type FeedReq struct {
	Limit int `json:"limit"`
}

type RankedVideo struct {
	Id         int64   `json:"id"`
	Title      string  `json:"title"`
	Thumbnail  string  `json:"thumbnail"`
	Author     string  `json:"author"`
	ViewsCount int64   `json:"viewsCount"`
	UploadedAt int64   `json:"uploadedAt"`
	Score      float64 `json:"score"`
}
