package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

var ErrCourseNotFound = errors.New("找不到課程資料")

// CourseService 課程業務介面
type CourseService interface {
	List(ctx context.Context, req *dto.CourseListRequest) ([]model.Course, error)
	GetByID(ctx context.Context, id int) (*model.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	Update(ctx context.Context, id int, req *dto.UpdateCourseRequest) (*model.Course, error)
	Delete(ctx context.Context, id int) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 建立 CourseService 實例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context, req *dto.CourseListRequest) ([]model.Course, error) {
	q := repository.Query{Sort: req.Sort, Limit: req.Limit}

	fields := map[string]any{}
	if req.Year != 0 {
		fields["year"] = req.Year
	}
	if req.Level != "" {
		fields["level"] = req.Level
	}

	var courses []model.Course
	var err error
	if len(fields) > 0 {
		courses, err = s.repo.Courses.Filter(ctx, fields, q)
	} else {
		courses, err = s.repo.Courses.List(ctx, q)
	}
	if err != nil {
		s.logger.Error("列出課程失敗", zap.Error(err))
		return nil, err
	}
	return courses, nil
}

func (s *courseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c, ok, err := s.repo.Courses.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查詢課程失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	c := &model.Course{
		Title:      req.Title,
		Code:       req.Code,
		Semester:   req.Semester,
		Year:       req.Year,
		Credits:    req.Credits,
		Level:      req.Level,
		Instructor: req.Instructor,
	}

	if err := s.repo.Courses.Create(ctx, c); err != nil {
		s.logger.Error("新增課程失敗", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (s *courseService) Update(ctx context.Context, id int, req *dto.UpdateCourseRequest) (*model.Course, error) {
	c, ok, err := s.repo.Courses.Update(ctx, id, func(m *model.Course) {
		if req.Title != nil {
			m.Title = *req.Title
		}
		if req.Code != nil {
			m.Code = *req.Code
		}
		if req.Semester != nil {
			m.Semester = *req.Semester
		}
		if req.Year != nil {
			m.Year = *req.Year
		}
		if req.Credits != nil {
			m.Credits = *req.Credits
		}
		if req.Level != nil {
			m.Level = *req.Level
		}
		if req.Instructor != nil {
			m.Instructor = *req.Instructor
		}
	})
	if err != nil {
		s.logger.Error("更新課程失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Courses.Delete(ctx, id)
	if err != nil {
		s.logger.Error("刪除課程失敗", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrCourseNotFound
	}
	return nil
}
