package repository

import (
	"context"
	"testing"

	"github.com/Rogerszheng0724/my-lab-website/internal/model"
)

func newAwardRepo() Repo[model.Award] {
	return NewMemoryRepo[model.Award, *model.Award]()
}

func TestMemoryRepoCreateAssignsIncrementingID(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	first := &model.Award{Title: "最佳論文獎", Year: 2023}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("新增第一筆失敗: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("第一筆 id 應為 1，實際為 %d", first.ID)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("新增後應設定時間戳")
	}

	second := &model.Award{Title: "優秀學生獎", Year: 2024}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("新增第二筆失敗: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("第二筆 id 應為 2，實際為 %d", second.ID)
	}
}

func TestMemoryRepoIDFollowsMaxAfterDelete(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	a := &model.Award{Title: "甲"}
	b := &model.Award{Title: "乙"}
	repo.Create(ctx, a)
	repo.Create(ctx, b)

	// 刪除 id=1 後集合內最大 id 仍為 2，下一筆應取 3
	ok, err := repo.Delete(ctx, a.ID)
	if err != nil || !ok {
		t.Fatalf("刪除 id=%d 失敗: ok=%v err=%v", a.ID, ok, err)
	}

	recs, err := repo.List(ctx, Query{})
	if err != nil {
		t.Fatalf("列表失敗: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != 2 {
		t.Fatalf("刪除後應只剩 id=2，實際為 %+v", recs)
	}

	c := &model.Award{Title: "丙"}
	repo.Create(ctx, c)
	if c.ID != 3 {
		t.Errorf("刪除低位 id 後新增應取 max+1=3，實際為 %d", c.ID)
	}
}

func TestMemoryRepoIDReuseAfterDeletingMax(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	a := &model.Award{Title: "甲"}
	b := &model.Award{Title: "乙"}
	repo.Create(ctx, a)
	repo.Create(ctx, b)

	// 刪除最大 id 後，max+1 會重用該 id
	if ok, _ := repo.Delete(ctx, b.ID); !ok {
		t.Fatal("刪除 id=2 應成功")
	}

	c := &model.Award{Title: "丙"}
	repo.Create(ctx, c)
	if c.ID != 2 {
		t.Errorf("刪除最大 id 後新增應重用 id=2，實際為 %d", c.ID)
	}
}

func TestMemoryRepoListSortAndLimit(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	for _, y := range []int{2021, 2024, 2019, 2023} {
		repo.Create(ctx, &model.Award{Title: "獎項", Year: y})
	}

	desc, err := repo.List(ctx, Query{Sort: "-year"})
	if err != nil {
		t.Fatalf("列表失敗: %v", err)
	}
	wantDesc := []int{2024, 2023, 2021, 2019}
	for i, w := range wantDesc {
		if desc[i].Year != w {
			t.Fatalf("遞減排序第 %d 筆年份應為 %d，實際為 %d", i, w, desc[i].Year)
		}
	}

	asc, _ := repo.List(ctx, Query{Sort: "year", Limit: 2})
	if len(asc) != 2 {
		t.Fatalf("limit=2 應回傳 2 筆，實際為 %d", len(asc))
	}
	if asc[0].Year != 2019 || asc[1].Year != 2021 {
		t.Errorf("遞增排序前兩筆年份應為 2019、2021，實際為 %d、%d", asc[0].Year, asc[1].Year)
	}
}

func TestMemoryRepoListUnknownSortKeepsOrder(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	repo.Create(ctx, &model.Award{Title: "甲", Year: 2024})
	repo.Create(ctx, &model.Award{Title: "乙", Year: 2019})

	recs, _ := repo.List(ctx, Query{Sort: "-no_such_field"})
	if recs[0].Title != "甲" || recs[1].Title != "乙" {
		t.Error("未知排序欄位應維持插入順序")
	}
}

func TestMemoryRepoFilter(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	repo.Create(ctx, &model.Award{Title: "甲", Year: 2024, Category: "學生獎項"})
	repo.Create(ctx, &model.Award{Title: "乙", Year: 2024, Category: "教師獎項"})
	repo.Create(ctx, &model.Award{Title: "丙", Year: 2023, Category: "學生獎項"})

	got, err := repo.Filter(ctx, map[string]any{"year": 2024, "category": "學生獎項"}, Query{})
	if err != nil {
		t.Fatalf("過濾失敗: %v", err)
	}
	if len(got) != 1 || got[0].Title != "甲" {
		t.Fatalf("AND 過濾應命中「甲」一筆，實際為 %+v", got)
	}

	// 條件鍵無對應欄位時不命中任何記錄
	none, _ := repo.Filter(ctx, map[string]any{"no_such_field": 1}, Query{})
	if len(none) != 0 {
		t.Errorf("未知條件鍵應回傳空集合，實際為 %d 筆", len(none))
	}

	// 空條件等同列表
	all, _ := repo.Filter(ctx, map[string]any{}, Query{})
	if len(all) != 3 {
		t.Errorf("空條件應回傳全部 3 筆，實際為 %d 筆", len(all))
	}
}

func TestMemoryRepoGetByID(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	a := &model.Award{Title: "甲"}
	repo.Create(ctx, a)

	got, ok, err := repo.GetByID(ctx, a.ID)
	if err != nil || !ok {
		t.Fatalf("查詢 id=%d 失敗: ok=%v err=%v", a.ID, ok, err)
	}
	if got.Title != "甲" {
		t.Errorf("查詢結果標題應為「甲」，實際為 %q", got.Title)
	}

	// 回傳為複本，改動不影響底層集合
	got.Title = "改動"
	again, _, _ := repo.GetByID(ctx, a.ID)
	if again.Title != "甲" {
		t.Error("改動查詢結果不應影響底層記錄")
	}

	if _, ok, _ := repo.GetByID(ctx, 999); ok {
		t.Error("不存在的 id 應回傳 ok=false")
	}
}

func TestMemoryRepoUpdate(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	a := &model.Award{Title: "甲", Recipient: "王小明", Year: 2023}
	repo.Create(ctx, a)
	created := a.UpdatedAt

	got, ok, err := repo.Update(ctx, a.ID, func(m *model.Award) {
		m.Year = 2024
	})
	if err != nil || !ok {
		t.Fatalf("更新失敗: ok=%v err=%v", ok, err)
	}
	if got.Year != 2024 {
		t.Errorf("更新後年份應為 2024，實際為 %d", got.Year)
	}
	if got.Recipient != "王小明" {
		t.Error("未改動的欄位應保留原值")
	}
	if got.UpdatedAt.Before(created) {
		t.Error("更新後 UpdatedAt 不應早於建立時間")
	}

	if _, ok, _ := repo.Update(ctx, 999, func(m *model.Award) {}); ok {
		t.Error("更新不存在的 id 應回傳 ok=false")
	}
}

func TestMemoryRepoDeleteAbsent(t *testing.T) {
	repo := newAwardRepo()

	ok, err := repo.Delete(context.Background(), 42)
	if err != nil {
		t.Fatalf("刪除不應出錯: %v", err)
	}
	if ok {
		t.Error("刪除不存在的 id 應回傳 ok=false")
	}
}

func TestMemoryRepoCount(t *testing.T) {
	repo := newAwardRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		repo.Create(ctx, &model.Award{Title: "獎項"})
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("計數失敗: %v", err)
	}
	if n != 3 {
		t.Errorf("筆數應為 3，實際為 %d", n)
	}
}
