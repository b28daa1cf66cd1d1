package domain

// Candidate 通过命中过滤、还没打分的候选
type Candidate struct {
	Id          int64
	Title       string
	Description string
	Author      string
	Thumbnail   string
	ViewsCount  int64
}

// VideoResult 全站搜索结果
type VideoResult struct {
	Id         int64
	Title      string
	Author     string
	Thumbnail  string
	ViewsCount int64
	Score      float64
}

// HistoryResult 在自己的观看历史里搜出来的一条记录
type HistoryResult struct {
	VideoId       int64
	Title         string
	Author        string
	AuthorAvatar  string
	Thumbnail     string
	Duration      int64
	ViewsCount    int64
	WatchedAt     int64
	WatchDuration int64
	Score         float64
}
