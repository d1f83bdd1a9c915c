package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Rogerszheng0724/my-lab-website/internal/dto"
	"github.com/Rogerszheng0724/my-lab-website/internal/model"
	"github.com/Rogerszheng0724/my-lab-website/internal/repository"
)

func newTestMemberService() MemberService {
	return NewMemberService(repository.NewMemoryRepository(), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestMemberServiceCreateAndGet(t *testing.T) {
	svc := newTestMemberService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateMemberRequest{
		Name:          "王小明",
		Position:      "博士生",
		Status:        model.MemberStatusActive,
		Year:          "2022",
		ResearchTopic: "深度學習於醫學影像之應用",
	})
	if err != nil {
		t.Fatalf("新增成員失敗: %v", err)
	}
	if created.ID == 0 {
		t.Error("新增後應指派 id")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("查詢成員失敗: %v", err)
	}
	if got.Name != "王小明" || got.Status != model.MemberStatusActive {
		t.Errorf("查詢結果與新增內容不符: %+v", got)
	}
}

func TestMemberServiceGetNotFound(t *testing.T) {
	svc := newTestMemberService()

	_, err := svc.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("不存在的 id 應回傳 ErrMemberNotFound，實際為 %v", err)
	}
}

func TestMemberServiceListFilterByStatus(t *testing.T) {
	svc := newTestMemberService()
	ctx := context.Background()

	svc.Create(ctx, &dto.CreateMemberRequest{Name: "甲", Status: model.MemberStatusActive})
	svc.Create(ctx, &dto.CreateMemberRequest{Name: "乙", Status: model.MemberStatusGraduated})
	svc.Create(ctx, &dto.CreateMemberRequest{Name: "丙", Status: model.MemberStatusActive})

	active, err := svc.List(ctx, &dto.MemberListRequest{Status: model.MemberStatusActive})
	if err != nil {
		t.Fatalf("過濾列表失敗: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("在學成員應為 2 筆，實際為 %d", len(active))
	}

	all, _ := svc.List(ctx, &dto.MemberListRequest{})
	if len(all) != 3 {
		t.Errorf("不帶條件應回傳全部 3 筆，實際為 %d", len(all))
	}
}

func TestMemberServicePartialUpdate(t *testing.T) {
	svc := newTestMemberService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateMemberRequest{
		Name:     "李美麗",
		Position: "碩士生",
		Status:   model.MemberStatusActive,
	})

	// 僅更新狀態與畢業年，其餘欄位應保留
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateMemberRequest{
		Status:         strPtr(model.MemberStatusGraduated),
		GraduationYear: strPtr("2024"),
	})
	if err != nil {
		t.Fatalf("更新成員失敗: %v", err)
	}
	if updated.Status != model.MemberStatusGraduated || updated.GraduationYear != "2024" {
		t.Errorf("更新欄位未生效: %+v", updated)
	}
	if updated.Name != "李美麗" || updated.Position != "碩士生" {
		t.Errorf("未出現於請求的欄位不應被改動: %+v", updated)
	}
}

func TestMemberServiceUpdateNotFound(t *testing.T) {
	svc := newTestMemberService()

	_, err := svc.Update(context.Background(), 999, &dto.UpdateMemberRequest{Name: strPtr("無人")})
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("更新不存在的成員應回傳 ErrMemberNotFound，實際為 %v", err)
	}
}

func TestMemberServiceDelete(t *testing.T) {
	svc := newTestMemberService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, &dto.CreateMemberRequest{Name: "甲"})

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("刪除成員失敗: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("重複刪除應回傳 ErrMemberNotFound，實際為 %v", err)
	}
}
