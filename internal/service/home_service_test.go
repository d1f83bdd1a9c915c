package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

func TestHomeServiceHomeAggregation(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewHomeService(repo, zap.NewNop())
	ctx := context.Background()

	repo.Teachers.Create(ctx, &model.Teacher{Name: "陳建宏", Title: "教授"})

	for _, y := range []int{2020, 2024, 2022, 2023} {
		repo.Publications.Create(ctx, &model.Publication{Title: "論文", Year: y})
	}

	repo.Research.Create(ctx, &model.Research{Title: "醫學影像", Type: model.ResearchTypeArea})
	repo.Research.Create(ctx, &model.Research{Title: "產學合作案", Type: model.ResearchTypeProject})

	repo.Members.Create(ctx, &model.Member{Name: "甲", Status: model.MemberStatusActive})
	repo.Members.Create(ctx, &model.Member{Name: "乙", Status: model.MemberStatusGraduated})
	repo.Members.Create(ctx, &model.Member{Name: "丙", Status: model.MemberStatusActive})

	result, err := svc.Home(ctx)
	if err != nil {
		t.Fatalf("首頁聚合失敗: %v", err)
	}

	if len(result.Teachers) != 1 {
		t.Errorf("師資應為 1 筆，實際為 %d", len(result.Teachers))
	}

	// 近期著作取年份遞減前三筆
	if len(result.RecentPublications) != 3 {
		t.Fatalf("近期著作應為 3 筆，實際為 %d", len(result.RecentPublications))
	}
	wantYears := []int{2024, 2023, 2022}
	for i, w := range wantYears {
		if result.RecentPublications[i].Year != w {
			t.Errorf("近期著作第 %d 筆年份應為 %d，實際為 %d", i, w, result.RecentPublications[i].Year)
		}
	}

	// 研究區塊只收研究方向，不含研究專案
	if len(result.ResearchAreas) != 1 || result.ResearchAreas[0].Type != model.ResearchTypeArea {
		t.Errorf("研究方向區塊內容不符: %+v", result.ResearchAreas)
	}

	if result.CurrentMemberCount != 2 {
		t.Errorf("在學成員數應為 2，實際為 %d", result.CurrentMemberCount)
	}
}

func TestHomeServiceStats(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := NewHomeService(repo, zap.NewNop())
	ctx := context.Background()

	repo.Teachers.Create(ctx, &model.Teacher{Name: "甲"})
	repo.Awards.Create(ctx, &model.Award{Title: "獎項"})
	repo.Awards.Create(ctx, &model.Award{Title: "獎項"})

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("統計失敗: %v", err)
	}
	if stats.Teachers != 1 {
		t.Errorf("師資筆數應為 1，實際為 %d", stats.Teachers)
	}
	if stats.Awards != 2 {
		t.Errorf("獲獎筆數應為 2，實際為 %d", stats.Awards)
	}
	if stats.Members != 0 {
		t.Errorf("成員筆數應為 0，實際為 %d", stats.Members)
	}
}
