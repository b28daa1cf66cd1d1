package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/clipflow/clipflow/internal/search/internal/domain"
	"github.com/clipflow/clipflow/internal/search/internal/repository"
)

//go:generate mockgen -source=./search.go -package=svcmocks -destination=mocks/search.mock.go SearchService
type SearchService interface {
	// Search 空白查询返回空结果，和"搜了但没命中"是两回事
	Search(ctx context.Context, query string, limit int) ([]domain.VideoResult, error)
	// SearchHistory 只在 uid 自己的观看历史里搜
	SearchHistory(ctx context.Context, uid int64, query string, limit int) ([]domain.HistoryResult, error)
}

type searchService struct {
	repo repository.SearchRepository
}

func NewService(repo repository.SearchRepository) SearchService {
	return &searchService{
		repo: repo,
	}
}

func (s *searchService) Search(ctx context.Context, query string, limit int) ([]domain.VideoResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.VideoResult{}, nil
	}
	candidates, err := s.repo.Candidates(ctx, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	res := make([]domain.VideoResult, 0, len(candidates))
	for _, c := range candidates {
		score := tierScore(c.Title, query, 50, 30, 15) +
			tierScore(c.Author, query, 40, 25, 10)
		if strings.Contains(strings.ToLower(c.Description), query) {
			score += 5
		}
		score += searchPopularity(c.ViewsCount)
		// 只靠标签挤进来、而且一次播放都没有的，分是 0，不往外给
		if score <= 0 {
			continue
		}
		res = append(res, domain.VideoResult{
			Id:         c.Id,
			Title:      c.Title,
			Author:     c.Author,
			Thumbnail:  c.Thumbnail,
			ViewsCount: c.ViewsCount,
			Score:      score,
		})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		return res[i].ViewsCount > res[j].ViewsCount
	})
	limit = normalizeLimit(limit, 20)
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (s *searchService) SearchHistory(ctx context.Context, uid int64, query string, limit int) ([]domain.HistoryResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.HistoryResult{}, nil
	}
	candidates, err := s.repo.HistoryCandidates(ctx, uid, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	res := make([]domain.HistoryResult, 0, len(candidates))
	for _, c := range candidates {
		// 历史搜索不算描述分和热度分
		score := tierScore(c.Title, query, 50, 30, 15) +
			tierScore(c.Author, query, 40, 25, 10)
		if score <= 0 {
			continue
		}
		c.Score = score
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		// 同分的，最近看过的在前
		return res[i].WatchedAt > res[j].WatchedAt
	})
	limit = normalizeLimit(limit, 50)
	if len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

// tierScore 三档是叠加的：完全相同的串同时命中前缀和包含
func tierScore(value, query string, exact, prefix, substr float64) float64 {
	value = strings.ToLower(value)
	var score float64
	if value == query {
		score += exact
	}
	if strings.HasPrefix(value, query) {
		score += prefix
	}
	if strings.Contains(value, query) {
		score += substr
	}
	return score
}

// searchPopularity 热度只是微调项，封顶 5 分
func searchPopularity(views int64) float64 {
	if views <= 0 {
		return 0
	}
	return math.Min(5, math.Log10(float64(views)+1))
}

func normalizeLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > 100 {
		return 100
	}
	return limit
}
