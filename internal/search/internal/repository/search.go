package repository

import (
	"context"

	"github.com/clipflow/clipflow/internal/search/internal/domain"
	"github.com/clipflow/clipflow/internal/search/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./search.go -package=repomocks -destination=mocks/search.mock.go SearchRepository
type SearchRepository interface {
	Candidates(ctx context.Context, pattern string) ([]domain.Candidate, error)
	HistoryCandidates(ctx context.Context, uid int64, pattern string) ([]domain.HistoryResult, error)
}

type searchRepository struct {
	dao dao.SearchDAO
}

func NewSearchRepository(d dao.SearchDAO) SearchRepository {
	return &searchRepository{
		dao: d,
	}
}

func (r *searchRepository) Candidates(ctx context.Context, pattern string) ([]domain.Candidate, error) {
	rows, err := r.dao.Candidates(ctx, pattern)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(idx int, src dao.CandidateRow) domain.Candidate {
		return domain.Candidate{
			Id:          src.Id,
			Title:       src.Title,
			Description: src.Description,
			Author:      src.Author,
			Thumbnail:   src.Thumbnail,
			ViewsCount:  src.ViewsCount,
		}
	}), nil
}

func (r *searchRepository) HistoryCandidates(ctx context.Context, uid int64, pattern string) ([]domain.HistoryResult, error) {
	rows, err := r.dao.HistoryCandidates(ctx, uid, pattern)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(idx int, src dao.HistoryRow) domain.HistoryResult {
		return domain.HistoryResult{
			VideoId:       src.VideoId,
			Title:         src.Title,
			Author:        src.Author,
			AuthorAvatar:  src.AuthorAvatar,
			Thumbnail:     src.Thumbnail,
			Duration:      src.Duration,
			ViewsCount:    src.ViewsCount,
			WatchedAt:     src.WatchedAt,
			WatchDuration: src.WatchDuration,
		}
	}), nil
}
