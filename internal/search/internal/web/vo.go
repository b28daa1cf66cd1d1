package web

type SearchReq struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type VideoResult struct {
	Id         int64   `json:"id"`
	Title      string  `json:"title"`
	Author     string  `json:"author"`
	Thumbnail  string  `json:"thumbnail"`
	ViewsCount int64   `json:"viewsCount"`
	Score      float64 `json:"score"`
}

type HistoryResult struct {
	VideoId       int64  `json:"videoId"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	AuthorAvatar  string `json:"authorAvatar"`
	Thumbnail     string `json:"thumbnail"`
	Duration      int64  `json:"duration"`
	ViewsCount    int64  `json:"viewsCount"`
	WatchedAt     int64  `json:"watchedAt"`
	WatchDuration int64  `json:"watchDuration"`
}
