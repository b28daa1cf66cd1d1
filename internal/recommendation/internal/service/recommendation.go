package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/clipflow/clipflow/internal/recommendation/internal/domain"
	"github.com/clipflow/clipflow/internal/recommendation/internal/repository"
)

//go:generate mockgen -source=./recommendation.go -package=svcmocks -destination=mocks/recommendation.mock.go RecommendationService
type RecommendationService interface {
	// Recommend uid 为 0 时按匿名用户处理，偏好项恒为 0
	Recommend(ctx context.Context, uid int64, limit int) ([]domain.RankedVideo, error)
}

type recommendationService struct {
	repo repository.RecommendationRepository
}

func NewService(repo repository.RecommendationRepository) RecommendationService {
	return &recommendationService{
		repo: repo,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, uid int64, limit int) ([]domain.RankedVideo, error) {
	candidates, err := s.repo.Candidates(ctx, uid)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	res := make([]domain.RankedVideo, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, domain.RankedVideo{
			Id:         c.Id,
			Title:      c.Title,
			Thumbnail:  c.Thumbnail,
			Author:     c.Author,
			ViewsCount: c.ViewsCount,
			UploadedAt: c.UploadedAt,
			Score: popularityScore(c.ViewsCount) +
				recencyScore(c.UploadedAt, now) +
				affinityScore(c.Affinity),
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		return res[i].UploadedAt > res[j].UploadedAt
	})
	limit = normalizeLimit(limit)
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// popularityScore 观看量的对数，封顶 10 分。零播放就是 0 分
func popularityScore(views int64) float64 {
	if views <= 0 {
		return 0
	}
	return math.Min(10, 2*math.Log10(float64(views)+1))
}

// recencyScore 越新的视频分越高
func recencyScore(uploadedAt int64, now time.Time) float64 {
	age := now.Sub(time.UnixMilli(uploadedAt))
	switch {
	case age < 24*time.Hour:
		return 10
	case age < 7*24*time.Hour:
		return 7
	case age < 30*24*time.Hour:
		return 4
	default:
		return 1
	}
}

// affinityScore 偏好分缩小十倍，封顶 10 分
func affinityScore(prefScore float64) float64 {
	return math.Min(10, prefScore/10)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 50 {
		return 50
	}
	return limit
}
