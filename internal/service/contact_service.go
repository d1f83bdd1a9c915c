package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

var ErrContactNotFound = errors.New("找不到聯絡資訊")

// ContactService 聯絡資訊業務介面
// 聯絡資訊實務上只有一筆：Get 回傳集合的第一筆，Update 不存在時自動建立
type ContactService interface {
	Get(ctx context.Context) (*model.Contact, error)
	Update(ctx context.Context, req *dto.UpdateContactRequest) (*model.Contact, error)
}

type contactService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewContactService 建立 ContactService 實例
func NewContactService(repo *repository.Repository, logger *zap.Logger) ContactService {
	return &contactService{repo: repo, logger: logger}
}

func (s *contactService) Get(ctx context.Context) (*model.Contact, error) {
	contacts, err := s.repo.Contacts.List(ctx, repository.Query{Limit: 1})
	if err != nil {
		s.logger.Error("查詢聯絡資訊失敗", zap.Error(err))
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrContactNotFound
	}
	return &contacts[0], nil
}

func (s *contactService) Update(ctx context.Context, req *dto.UpdateContactRequest) (*model.Contact, error) {
	apply := func(m *model.Contact) {
		if req.LabName != nil {
			m.LabName = *req.LabName
		}
		if req.Department != nil {
			m.Department = *req.Department
		}
		if req.University != nil {
			m.University = *req.University
		}
		if req.Address != nil {
			m.Address = *req.Address
		}
		if req.Phone != nil {
			m.Phone = *req.Phone
		}
		if req.Email != nil {
			m.Email = *req.Email
		}
		if req.Latitude != nil {
			m.Latitude = *req.Latitude
		}
		if req.Longitude != nil {
			m.Longitude = *req.Longitude
		}
	}

	contacts, err := s.repo.Contacts.List(ctx, repository.Query{Limit: 1})
	if err != nil {
		s.logger.Error("查詢聯絡資訊失敗", zap.Error(err))
		return nil, err
	}

	// 尚無聯絡資訊時以本次請求內容建立第一筆
	if len(contacts) == 0 {
		c := &model.Contact{}
		apply(c)
		if err := s.repo.Contacts.Create(ctx, c); err != nil {
			s.logger.Error("建立聯絡資訊失敗", zap.Error(err))
			return nil, err
		}
		return c, nil
	}

	c, ok, err := s.repo.Contacts.Update(ctx, contacts[0].ID, apply)
	if err != nil {
		s.logger.Error("更新聯絡資訊失敗", zap.Error(err))
		return nil, err
	}
	if !ok {
		return nil, ErrContactNotFound
	}
	return c, nil
}
