package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

// HomeService 首頁聚合與後台儀表板
type HomeService interface {
	// Home 組合首頁一次載入的區塊
	Home(ctx context.Context) (*dto.HomeResponse, error)
	// Stats 回傳各集合筆數（後台儀表板）
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type homeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHomeService 建立 HomeService 實例
func NewHomeService(repo *repository.Repository, logger *zap.Logger) HomeService {
	return &homeService{repo: repo, logger: logger}
}

func (s *homeService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	teachers, err := s.repo.Teachers.List(ctx, repository.Query{})
	if err != nil {
		s.logger.Error("查詢師資失敗", zap.Error(err))
		return nil, err
	}

	// 最近三筆著作，依年份遞減
	pubs, err := s.repo.Publications.List(ctx, repository.Query{Sort: "-year", Limit: 3})
	if err != nil {
		s.logger.Error("查詢著作失敗", zap.Error(err))
		return nil, err
	}

	areas, err := s.repo.Research.Filter(ctx,
		map[string]any{"type": model.ResearchTypeArea},
		repository.Query{Sort: "-created_at", Limit: 3},
	)
	if err != nil {
		s.logger.Error("查詢研究方向失敗", zap.Error(err))
		return nil, err
	}

	current, err := s.repo.Members.Filter(ctx,
		map[string]any{"status": model.MemberStatusActive},
		repository.Query{},
	)
	if err != nil {
		s.logger.Error("查詢在學成員失敗", zap.Error(err))
		return nil, err
	}

	return &dto.HomeResponse{
		Teachers:           teachers,
		RecentPublications: pubs,
		ResearchAreas:      areas,
		CurrentMemberCount: int64(len(current)),
	}, nil
}

func (s *homeService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var stats dto.StatsResponse
	counts := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&stats.Teachers, s.repo.Teachers.Count},
		{&stats.Members, s.repo.Members.Count},
		{&stats.Publications, s.repo.Publications.Count},
		{&stats.Research, s.repo.Research.Count},
		{&stats.Courses, s.repo.Courses.Count},
		{&stats.Awards, s.repo.Awards.Count},
		{&stats.Galleries, s.repo.Galleries.Count},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			s.logger.Error("統計集合筆數失敗", zap.Error(err))
			return nil, err
		}
		*c.dst = n
	}
	return &stats, nil
}
