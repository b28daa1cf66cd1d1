package dao

import (
	"context"

	"github.com/ego-component/egorm"
)

//go:generate mockgen -source=./recommendation.go -package=daomocks -destination=mocks/recommendation.mock.go RecommendationDAO
type RecommendationDAO interface {
	// Candidates 拉出全量候选，uid 为 0 时偏好分一律是 0
	Candidates(ctx context.Context, uid int64) ([]CandidateRow, error)
}

type GORMRecommendationDAO struct {
	db *egorm.Component
}

func NewRecommendationDAO(db *egorm.Component) RecommendationDAO {
	return &GORMRecommendationDAO{
		db: db,
	}
}

func (d *GORMRecommendationDAO) Candidates(ctx context.Context, uid int64) ([]CandidateRow, error) {
	var rows []CandidateRow
	err := d.db.WithContext(ctx).Raw(`
SELECT v.id, v.title, v.thumbnail, u.username AS author,
       v.views_count, v.category_id, v.ctime,
       COALESCE(p.score, 0) AS pref_score
FROM videos AS v
LEFT JOIN users AS u ON u.id = v.uid
LEFT JOIN user_preferences AS p
    ON p.category_id = v.category_id AND p.uid = ?`, uid).
		Scan(&rows).Error
	return rows, err
}

type CandidateRow struct {
	Id         int64
	Title      string
	Thumbnail  string
	Author     string
	ViewsCount int64
	CategoryId int64
	Ctime      int64
	PrefScore  float64
}
