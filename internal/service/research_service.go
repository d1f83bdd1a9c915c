package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

var ErrResearchNotFound = errors.New("找不到研究資料")

// ResearchService 研究業務介面
type ResearchService interface {
	List(ctx context.Context, req *dto.ResearchListRequest) ([]model.Research, error)
	GetByID(ctx context.Context, id int) (*model.Research, error)
	Create(ctx context.Context, req *dto.CreateResearchRequest) (*model.Research, error)
	Update(ctx context.Context, id int, req *dto.UpdateResearchRequest) (*model.Research, error)
	Delete(ctx context.Context, id int) error
}

type researchService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewResearchService 建立 ResearchService 實例
func NewResearchService(repo *repository.Repository, logger *zap.Logger) ResearchService {
	return &researchService{repo: repo, logger: logger}
}

func (s *researchService) List(ctx context.Context, req *dto.ResearchListRequest) ([]model.Research, error) {
	q := repository.Query{Sort: req.Sort, Limit: req.Limit}

	var items []model.Research
	var err error
	if req.Type != "" {
		items, err = s.repo.Research.Filter(ctx, map[string]any{"type": req.Type}, q)
	} else {
		items, err = s.repo.Research.List(ctx, q)
	}
	if err != nil {
		s.logger.Error("列出研究失敗", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *researchService) GetByID(ctx context.Context, id int) (*model.Research, error) {
	r, ok, err := s.repo.Research.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查詢研究失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrResearchNotFound
	}
	return r, nil
}

func (s *researchService) Create(ctx context.Context, req *dto.CreateResearchRequest) (*model.Research, error) {
	typ := req.Type
	if typ == "" {
		typ = model.ResearchTypeArea
	}
	status := req.Status
	if status == "" {
		status = "進行中"
	}

	r := &model.Research{
		Title:       req.Title,
		Description: req.Description,
		Type:        typ,
		Status:      status,
		StartYear:   req.StartYear,
		EndYear:     req.EndYear,
	}

	if err := s.repo.Research.Create(ctx, r); err != nil {
		s.logger.Error("新增研究失敗", zap.Error(err))
		return nil, err
	}
	return r, nil
}

func (s *researchService) Update(ctx context.Context, id int, req *dto.UpdateResearchRequest) (*model.Research, error) {
	r, ok, err := s.repo.Research.Update(ctx, id, func(m *model.Research) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.Type != nil {
			m.Type = *req.Type
		}
		if req.Status != nil {
			m.Status = *req.Status
		}
		if req.StartYear != nil {
			m.StartYear = *req.StartYear
		}
		if req.EndYear != nil {
			m.EndYear = *req.EndYear
		}
	})
	if err != nil {
		s.logger.Error("更新研究失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrResearchNotFound
	}
	return r, nil
}

func (s *researchService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Research.Delete(ctx, id)
	if err != nil {
		s.logger.Error("刪除研究失敗", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrResearchNotFound
	}
	return nil
}
