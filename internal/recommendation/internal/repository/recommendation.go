package repository

import (
	"context"

	"github.com/clipflow/clipflow/internal/recommendation/internal/domain"
	"github.com/clipflow/clipflow/internal/recommendation/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./recommendation.go -package=repomocks -destination=mocks/recommendation.mock.go RecommendationRepository
type RecommendationRepository interface {
	Candidates(ctx context.Context, uid int64) ([]domain.Candidate, error)
}

type recommendationRepository struct {
	dao dao.RecommendationDAO
}

func NewRecommendationRepository(d dao.RecommendationDAO) RecommendationRepository {
	return &recommendationRepository{
		dao: d,
	}
}

func (r *recommendationRepository) Candidates(ctx context.Context, uid int64) ([]domain.Candidate, error) {
	rows, err := r.dao.Candidates(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(rows, func(idx int, src dao.CandidateRow) domain.Candidate {
		return domain.Candidate{
			Id:         src.Id,
			Title:      src.Title,
			Thumbnail:  src.Thumbnail,
			Author:     src.Author,
			ViewsCount: src.ViewsCount,
			CategoryId: src.CategoryId,
			UploadedAt: src.Ctime,
			Affinity:   src.PrefScore,
		}
	}), nil
}
