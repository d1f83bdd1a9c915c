package handler

import "github.com/Rogerszheng0724/my-lab-website/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	Teacher     *TeacherHandler
	Member      *MemberHandler
	Publication *PublicationHandler
	Research    *ResearchHandler
	Course      *CourseHandler
	Award       *AwardHandler
	Gallery     *GalleryHandler
	Contact     *ContactHandler
	Home        *HomeHandler
	Export      *ExportHandler
	Calendar    *CalendarHandler
}

// NewHandler 建立 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Teacher:     NewTeacherHandler(svc.Teacher),
		Member:      NewMemberHandler(svc.Member),
		Publication: NewPublicationHandler(svc.Publication),
		Research:    NewResearchHandler(svc.Research),
		Course:      NewCourseHandler(svc.Course),
		Award:       NewAwardHandler(svc.Award),
		Gallery:     NewGalleryHandler(svc.Gallery),
		Contact:     NewContactHandler(svc.Contact),
		Home:        NewHomeHandler(svc.Home),
		Export:      NewExportHandler(svc.Export),
		Calendar:    NewCalendarHandler(svc.Calendar),
	}
}
