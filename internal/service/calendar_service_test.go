package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/config"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

func TestCalendarServiceEventsICS(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.BaseURL = "http://localhost:8080"

	repo := repository.NewMemoryRepository()
	svc := NewCalendarService(cfg, repo, zap.NewNop())
	ctx := context.Background()

	repo.Galleries.Create(ctx, &model.Gallery{
		Title:     "實驗室春酒",
		EventDate: "2025-02-14",
		Category:  "實驗室活動",
	})
	// 無活動日期的相簿不應出現在行事曆
	repo.Galleries.Create(ctx, &model.Gallery{Title: "無日期相簿"})

	ics, err := svc.EventsICS(ctx)
	if err != nil {
		t.Fatalf("產生行事曆失敗: %v", err)
	}

	if !strings.Contains(ics, "BEGIN:VCALENDAR") || !strings.Contains(ics, "END:VCALENDAR") {
		t.Error("輸出應為完整的 VCALENDAR")
	}
	if !strings.Contains(ics, "實驗室春酒") {
		t.Error("行事曆應包含有日期的活動")
	}
	if strings.Contains(ics, "無日期相簿") {
		t.Error("行事曆不應包含無日期的相簿")
	}
	if strings.Count(ics, "BEGIN:VEVENT") != 1 {
		t.Errorf("應只有 1 個 VEVENT，實際為 %d", strings.Count(ics, "BEGIN:VEVENT"))
	}
}

func TestCalendarServiceEmptyCalendar(t *testing.T) {
	cfg := &config.Config{}
	svc := NewCalendarService(cfg, repository.NewMemoryRepository(), zap.NewNop())

	ics, err := svc.EventsICS(context.Background())
	if err != nil {
		t.Fatalf("空集合不應出錯: %v", err)
	}
	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("空集合不應有任何 VEVENT")
	}
}
