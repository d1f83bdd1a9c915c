package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

var ErrTeacherNotFound = errors.New("找不到教師資料")

// TeacherService 師資業務介面
type TeacherService interface {
	List(ctx context.Context, q *dto.ListQuery) ([]model.Teacher, error)
	GetByID(ctx context.Context, id int) (*model.Teacher, error)
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*model.Teacher, error)
	Update(ctx context.Context, id int, req *dto.UpdateTeacherRequest) (*model.Teacher, error)
	Delete(ctx context.Context, id int) error
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService 建立 TeacherService 實例
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

func (s *teacherService) List(ctx context.Context, q *dto.ListQuery) ([]model.Teacher, error) {
	teachers, err := s.repo.Teachers.List(ctx, repository.Query{Sort: q.Sort, Limit: q.Limit})
	if err != nil {
		s.logger.Error("列出教師失敗", zap.Error(err))
		return nil, err
	}
	return teachers, nil
}

func (s *teacherService) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	t, ok, err := s.repo.Teachers.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查詢教師失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrTeacherNotFound
	}
	return t, nil
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*model.Teacher, error) {
	t := &model.Teacher{
		Name:      req.Name,
		Title:     req.Title,
		Email:     req.Email,
		Office:    req.Office,
		Bio:       req.Bio,
		IsPrimary: req.IsPrimary,
		PhotoURL:  req.PhotoURL,
	}

	if err := s.repo.Teachers.Create(ctx, t); err != nil {
		s.logger.Error("新增教師失敗", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (s *teacherService) Update(ctx context.Context, id int, req *dto.UpdateTeacherRequest) (*model.Teacher, error) {
	t, ok, err := s.repo.Teachers.Update(ctx, id, func(m *model.Teacher) {
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Email != nil {
			m.Email = *req.Email
		}
		if req.Office != nil {
			m.Office = *req.Office
		}
		if req.Bio != nil {
			m.Bio = *req.Bio
		}
		if req.IsPrimary != nil {
			m.IsPrimary = *req.IsPrimary
		}
		if req.PhotoURL != nil {
			m.PhotoURL = *req.PhotoURL
		}
	})
	if err != nil {
		s.logger.Error("更新教師失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrTeacherNotFound
	}
	return t, nil
}

func (s *teacherService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Teachers.Delete(ctx, id)
	if err != nil {
		s.logger.Error("刪除教師失敗", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrTeacherNotFound
	}
	return nil
}
