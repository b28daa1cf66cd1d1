package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

//go:generate mockgen -source=./search.go -package=daomocks -destination=mocks/search.mock.go SearchDAO
type SearchDAO interface {
	// Candidates 只做命中过滤，打分在上层做。
	// pattern 形如 %query%，query 已经转成小写
	Candidates(ctx context.Context, pattern string) ([]CandidateRow, error)
	// HistoryCandidates 只在 uid 自己的观看记录里找，描述不参与命中
	HistoryCandidates(ctx context.Context, uid int64, pattern string) ([]HistoryRow, error)
}

type GORMSearchDAO struct {
	db *egorm.Component
}

func NewSearchDAO(db *egorm.Component) SearchDAO {
	return &GORMSearchDAO{
		db: db,
	}
}

func (d *GORMSearchDAO) Candidates(ctx context.Context, pattern string) ([]CandidateRow, error) {
	var rows []CandidateRow
	err := d.db.WithContext(ctx).Raw(`
SELECT DISTINCT v.id, v.title, v.description, v.thumbnail,
       v.views_count, u.username AS author
FROM videos AS v
JOIN users AS u ON u.id = v.uid
LEFT JOIN video_tags AS vt ON vt.video_id = v.id
LEFT JOIN tags AS t ON t.id = vt.tag_id
WHERE LOWER(v.title) LIKE ?
   OR LOWER(u.username) LIKE ?
   OR LOWER(v.description) LIKE ?
   OR LOWER(t.name) LIKE ?`,
		pattern, pattern, pattern, pattern).
		Scan(&rows).Error
	return rows, err
}

func (d *GORMSearchDAO) HistoryCandidates(ctx context.Context, uid int64, pattern string) ([]HistoryRow, error) {
	var rows []HistoryRow
	err := d.db.WithContext(ctx).Raw(`
SELECT DISTINCT v.id AS video_id, v.title, v.thumbnail, v.duration,
       v.views_count, u.username AS author, u.avatar AS author_avatar,
       h.watched_at, h.watch_duration
FROM histories AS h
JOIN videos AS v ON v.id = h.video_id
JOIN users AS u ON u.id = v.uid
LEFT JOIN video_tags AS vt ON vt.video_id = v.id
LEFT JOIN tags AS t ON t.id = vt.tag_id
WHERE h.uid = ?
  AND (LOWER(v.title) LIKE ?
   OR LOWER(u.username) LIKE ?
   OR LOWER(t.name) LIKE ?)`,
		uid, pattern, pattern, pattern).
		Scan(&rows).Error
	return rows, err
}

type CandidateRow struct {
	Id          int64
	Title       string
	Description string
	Thumbnail   string
	ViewsCount  int64
	Author      string
}

type HistoryRow struct {
	VideoId       int64
	Title         string
	Thumbnail     string
	Duration      int64
	ViewsCount    int64
	Author        string
	AuthorAvatar  string
	WatchedAt     int64
	WatchDuration int64
}
