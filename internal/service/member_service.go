package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

var ErrMemberNotFound = errors.New("找不到成員資料")

// MemberService 成員業務介面
type MemberService interface {
	List(ctx context.Context, req *dto.MemberListRequest) ([]model.Member, error)
	GetByID(ctx context.Context, id int) (*model.Member, error)
	Create(ctx context.Context, req *dto.CreateMemberRequest) (*model.Member, error)
	Update(ctx context.Context, id int, req *dto.UpdateMemberRequest) (*model.Member, error)
	Delete(ctx context.Context, id int) error
}

type memberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemberService 建立 MemberService 實例
func NewMemberService(repo *repository.Repository, logger *zap.Logger) MemberService {
	return &memberService{repo: repo, logger: logger}
}

func (s *memberService) List(ctx context.Context, req *dto.MemberListRequest) ([]model.Member, error) {
	q := repository.Query{Sort: req.Sort, Limit: req.Limit}

	var members []model.Member
	var err error
	if req.Status != "" {
		members, err = s.repo.Members.Filter(ctx, map[string]any{"status": req.Status}, q)
	} else {
		members, err = s.repo.Members.List(ctx, q)
	}
	if err != nil {
		s.logger.Error("列出成員失敗", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (s *memberService) GetByID(ctx context.Context, id int) (*model.Member, error) {
	m, ok, err := s.repo.Members.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("查詢成員失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

func (s *memberService) Create(ctx context.Context, req *dto.CreateMemberRequest) (*model.Member, error) {
	status := req.Status
	if status == "" {
		status = model.MemberStatusActive
	}

	m := &model.Member{
		Name:           req.Name,
		Position:       req.Position,
		Status:         status,
		Year:           req.Year,
		ResearchTopic:  req.ResearchTopic,
		GraduationYear: req.GraduationYear,
	}

	if err := s.repo.Members.Create(ctx, m); err != nil {
		s.logger.Error("新增成員失敗", zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (s *memberService) Update(ctx context.Context, id int, req *dto.UpdateMemberRequest) (*model.Member, error) {
	m, ok, err := s.repo.Members.Update(ctx, id, func(rec *model.Member) {
		if req.Name != nil {
			rec.Name = *req.Name
		}
		if req.Position != nil {
			rec.Position = *req.Position
		}
		if req.Status != nil {
			rec.Status = *req.Status
		}
		if req.Year != nil {
			rec.Year = *req.Year
		}
		if req.ResearchTopic != nil {
			rec.ResearchTopic = *req.ResearchTopic
		}
		if req.GraduationYear != nil {
			rec.GraduationYear = *req.GraduationYear
		}
	})
	if err != nil {
		s.logger.Error("更新成員失敗", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

func (s *memberService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Members.Delete(ctx, id)
	if err != nil {
		s.logger.Error("刪除成員失敗", zap.Int("id", id), zap.Error(err))
		return err
	}
	if !ok {
		return ErrMemberNotFound
	}
	return nil
}
