package domain

// Candidate 是参与排序的候选视频，Affinity 是用户对该视频分类的原始偏好分
type Candidate struct {
	Id         int64
	Title      string
	Thumbnail  string
	Author     string
	ViewsCount int64
	CategoryId int64
	// UploadedAt 毫秒时间戳
	UploadedAt int64
	Affinity   float64
}

type RankedVideo struct {
	Id         int64
	Title      string
	Thumbnail  string
	Author     string
	ViewsCount int64
	UploadedAt int64
	Score      float64
}
