package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

// CalendarService 活動行事曆業務介面
//
// 將相簿中有活動日期的紀錄輸出為 iCalendar (.ics)，
// 供成員訂閱實驗室活動回顧行事曆
type CalendarService interface {
	// EventsICS 產生活動行事曆內容（text/calendar）
	EventsICS(ctx context.Context) (string, error)
}

type calendarService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService 建立 CalendarService 實例
func NewCalendarService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{cfg: cfg, repo: repo, logger: logger}
}

func (s *calendarService) EventsICS(ctx context.Context) (string, error) {
	galleries, err := s.repo.Galleries.List(ctx, repository.Query{Sort: "-event_date"})
	if err != nil {
		s.logger.Error("查詢活動相簿失敗", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//my-lab-website//活動行事曆//ZH")
	cal.SetName("實驗室活動")
	cal.SetTimezoneId("Asia/Taipei")

	for _, g := range galleries {
		// 無活動日期的相簿不列入行事曆
		day, perr := time.Parse("2006-01-02", g.EventDate)
		if perr != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("gallery-%d@my-lab-website", g.ID))
		event.SetSummary(g.Title)
		if g.Description != "" {
			event.SetDescription(g.Description)
		}
		if g.Category != "" {
			event.SetLocation(g.Category)
		}
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetDtStampTime(g.UpdatedAt)
		event.SetURL(fmt.Sprintf("%s/api/v1/galleries/%d", s.cfg.Server.BaseURL, g.ID))
	}

	return cal.Serialize(), nil
}
