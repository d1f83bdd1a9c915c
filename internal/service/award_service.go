package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

var ErrAwardNotFound = errors.New("找不到獲獎資料")

// AwardService 獲獎業務介面
type AwardService interface {
	List(ctx context.Context, req *dto.AwardListRequest) ([]model.Award, error)
	GetByID(ctx context.Context, id int) (*model.Award, error)
	Create(ctx context.Context, req *dto.CreateAwardRequest) (*model.Award, error)
	Update(ctx context.Context, id int, req *dto.UpdateAwardRequest) (*model.Award, error)
	Delete(ctx context.Context, id int) error
}

type awardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAwardService 建立 AwardService 實例
func NewAwardService(repo *repository.Repository, logger *zap.Logger) AwardService {
	return &awardService{repo: repo, logger: logger}
}

func (s *awardService) List(ctx context.Context, req *dto.AwardListRequest) ([]model.Award, error) {
	q := repository.Query{Sort: req.Sort, Limit: req.Limit}

	fields := map[string]any{}
	if req.Year != 0 {
		fields["year"] = req.Year
	}
	if req.Category != "" {
		fields["category"] = req.Category
	}

	var awards []model.Award
	var err error
	if len(fields) > 0 {
		awards, err = s.repo.Awards.Filter(ctx, fields, q)
	} else {
		awards, err = s.repo.Awards.List(ctx, q)
	}
	if err != nil {
		s.logger.Error("列出獲獎失敗", zap.Error(err))
		return nil, err
	}
	return awards, nil
}

func (s *awardService) GetByID(ctx context.Context, id int) (*model.Award, error) {
	a, ok, err := s.repo.Awards.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查詢獲獎失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrAwardNotFound
	}
	return a, nil
}

func (s *awardService) Create(ctx context.Context, req *dto.CreateAwardRequest) (*model.Award, error) {
	a := &model.Award{
		Title:        req.Title,
		Recipient:    req.Recipient,
		Organization: req.Organization,
		Year:         req.Year,
		Category:     req.Category,
	}

	if err := s.repo.Awards.Create(ctx, a); err != nil {
		s.logger.Error("新增獲獎失敗", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *awardService) Update(ctx context.Context, id int, req *dto.UpdateAwardRequest) (*model.Award, error) {
	a, ok, err := s.repo.Awards.Update(ctx, id, func(m *model.Award) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Recipient != nil {
			m.Recipient = *req.Recipient
		}
		if req.Organization != nil {
			m.Organization = *req.Organization
		}
		if req.Year != nil {
			m.Year = *req.Year
		}
		if req.Category != nil {
			m.Category = *req.Category
		}
	})
	if err != nil {
		s.logger.Error("更新獲獎失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrAwardNotFound
	}
	return a, nil
}

func (s *awardService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Awards.Delete(ctx, id)
	if err != nil {
		s.logger.Error("刪除獲獎失敗", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrAwardNotFound
	}
	return nil
}
