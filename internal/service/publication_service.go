package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

var ErrPublicationNotFound = errors.New("找不到論文資料")

// PublicationService 論文業務介面
type PublicationService interface {
	List(ctx context.Context, req *dto.PublicationListRequest) ([]model.Publication, error)
	GetByID(ctx context.Context, id int) (*model.Publication, error)
	Create(ctx context.Context, req *dto.CreatePublicationRequest) (*model.Publication, error)
	Update(ctx context.Context, id int, req *dto.UpdatePublicationRequest) (*model.Publication, error)
	Delete(ctx context.Context, id int) error
}

type publicationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPublicationService 建立 PublicationService 實例
func NewPublicationService(repo *repository.Repository, logger *zap.Logger) PublicationService {
	return &publicationService{repo: repo, logger: logger}
}

func (s *publicationService) List(ctx context.Context, req *dto.PublicationListRequest) ([]model.Publication, error) {
	q := repository.Query{Sort: req.Sort, Limit: req.Limit}

	fields := map[string]any{}
	if req.Year != 0 {
		fields["year"] = req.Year
	}
	if req.Type != "" {
		fields["type"] = req.Type
	}

	var pubs []model.Publication
	var err error
	if len(fields) > 0 {
		pubs, err = s.repo.Publications.Filter(ctx, fields, q)
	} else {
		pubs, err = s.repo.Publications.List(ctx, q)
	}
	if err != nil {
		s.logger.Error("列出論文失敗", zap.Error(err))
		return nil, err
	}
	return pubs, nil
}

func (s *publicationService) GetByID(ctx context.Context, id int) (*model.Publication, error) {
	p, ok, err := s.repo.Publications.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查詢論文失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrPublicationNotFound
	}
	return p, nil
}

func (s *publicationService) Create(ctx context.Context, req *dto.CreatePublicationRequest) (*model.Publication, error) {
	p := &model.Publication{
		Title:    req.Title,
		Authors:  req.Authors,
		Journal:  req.Journal,
		Year:     req.Year,
		Type:     req.Type,
		DOI:      req.DOI,
		PDFURL:   req.PDFURL,
		Abstract: req.Abstract,
	}

	if err := s.repo.Publications.Create(ctx, p); err != nil {
		s.logger.Error("新增論文失敗", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (s *publicationService) Update(ctx context.Context, id int, req *dto.UpdatePublicationRequest) (*model.Publication, error) {
	p, ok, err := s.repo.Publications.Update(ctx, id, func(m *model.Publication) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Authors != nil {
			m.Authors = *req.Authors
		}
		if req.Journal != nil {
			m.Journal = *req.Journal
		}
		if req.Year != nil {
			m.Year = *req.Year
		}
		if req.Type != nil {
			m.Type = *req.Type
		}
		if req.DOI != nil {
			m.DOI = *req.DOI
		}
		if req.PDFURL != nil {
			m.PDFURL = *req.PDFURL
		}
		if req.Abstract != nil {
			m.Abstract = *req.Abstract
		}
	})
	if err != nil {
		s.logger.Error("更新論文失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrPublicationNotFound
	}
	return p, nil
}

func (s *publicationService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Publications.Delete(ctx, id)
	if err != nil {
		s.logger.Error("刪除論文失敗", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrPublicationNotFound
	}
	return nil
}
