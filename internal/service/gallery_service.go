package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

var ErrGalleryNotFound = errors.New("找不到相簿資料")

// GalleryService 相簿業務介面
type GalleryService interface {
	List(ctx context.Context, req *dto.GalleryListRequest) ([]model.Gallery, error)
	GetByID(ctx context.Context, id int) (*model.Gallery, error)
	Create(ctx context.Context, req *dto.CreateGalleryRequest) (*model.Gallery, error)
	Update(ctx context.Context, id int, req *dto.UpdateGalleryRequest) (*model.Gallery, error)
	Delete(ctx context.Context, id int) error
}

type galleryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGalleryService 建立 GalleryService 實例
func NewGalleryService(repo *repository.Repository, logger *zap.Logger) GalleryService {
	return &galleryService{repo: repo, logger: logger}
}

// toImageList 將請求內的照片轉為模型型別，保留傳入順序
func toImageList(in []dto.GalleryImageInput) model.ImageList {
	images := make(model.ImageList, 0, len(in))
	for _, img := range in {
		images = append(images, model.GalleryImage{
			URL:     img.URL,
			Caption: img.Caption,
			Date:    img.Date,
		})
	}
	return images
}

func (s *galleryService) List(ctx context.Context, req *dto.GalleryListRequest) ([]model.Gallery, error) {
	q := repository.Query{Sort: req.Sort, Limit: req.Limit}

	var galleries []model.Gallery
	var err error
	if req.Category != "" {
		galleries, err = s.repo.Galleries.Filter(ctx, map[string]any{"category": req.Category}, q)
	} else {
		galleries, err = s.repo.Galleries.List(ctx, q)
	}
	if err != nil {
		s.logger.Error("列出相簿失敗", zap.Error(err))
		return nil, err
	}
	return galleries, nil
}

func (s *galleryService) GetByID(ctx context.Context, id int) (*model.Gallery, error) {
	g, ok, err := s.repo.Galleries.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查詢相簿失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrGalleryNotFound
	}
	return g, nil
}

func (s *galleryService) Create(ctx context.Context, req *dto.CreateGalleryRequest) (*model.Gallery, error) {
	g := &model.Gallery{
		Title:         req.Title,
		Description:   req.Description,
		CoverImageURL: req.CoverImageURL,
		Images:        toImageList(req.Images),
		EventDate:     req.EventDate,
		Category:      req.Category,
	}

	if err := s.repo.Galleries.Create(ctx, g); err != nil {
		s.logger.Error("新增相簿失敗", zap.Error(err))
		return nil, err
	}
	return g, nil
}

func (s *galleryService) Update(ctx context.Context, id int, req *dto.UpdateGalleryRequest) (*model.Gallery, error) {
	g, ok, err := s.repo.Galleries.Update(ctx, id, func(m *model.Gallery) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.CoverImageURL != nil {
			m.CoverImageURL = *req.CoverImageURL
		}
		if req.Images != nil {
			m.Images = toImageList(*req.Images)
		}
		if req.EventDate != nil {
			m.EventDate = *req.EventDate
		}
		if req.Category != nil {
			m.Category = *req.Category
		}
	})
	if err != nil {
		s.logger.Error("更新相簿失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrGalleryNotFound
	}
	return g, nil
}

func (s *galleryService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Galleries.Delete(ctx, id)
	if err != nil {
		s.logger.Error("刪除相簿失敗", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrGalleryNotFound
	}
	return nil
}
