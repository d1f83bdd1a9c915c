package service

import (
	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
	"github.com/Rogerszheng0724/my-lab-website/internal/session"
	"github.com/Rogerszheng0724/my-lab-website/pkg/token"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	Teacher     TeacherService
	Member      MemberService
	Publication PublicationService
	Research    ResearchService
	Course      CourseService
	Award       AwardService
	Gallery     GalleryService
	Contact     ContactService
	Home        HomeService
	Export      ExportService
	Calendar    CalendarService
}

// NewService 建立 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	gate *session.Gate,
	tokenMgr *token.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, gate, tokenMgr, logger),
		Teacher:     NewTeacherService(repo, logger),
		Member:      NewMemberService(repo, logger),
		Publication: NewPublicationService(repo, logger),
		Research:    NewResearchService(repo, logger),
		Course:      NewCourseService(repo, logger),
		Award:       NewAwardService(repo, logger),
		Gallery:     NewGalleryService(repo, logger),
		Contact:     NewContactService(repo, logger),
		Home:        NewHomeService(repo, logger),
		Export:      NewExportService(repo, logger),
		Calendar:    NewCalendarService(cfg, repo, logger),
	}
}
