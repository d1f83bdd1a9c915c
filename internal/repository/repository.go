package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Rogerszheng0724/my-lab-website/internal/model"
)

// Repo 單一集合的資料存取介面
// 所有操作對未知 id 一律以布林值回報，不回傳錯誤也不 panic
type Repo[T any] interface {
	// List 回傳集合內所有記錄的複本，依 q 排序與截斷
	List(ctx context.Context, q Query) ([]T, error)
	// Filter 回傳所有欄位皆嚴格相等（AND）的記錄；空條件等同 List
	Filter(ctx context.Context, fields map[string]any, q Query) ([]T, error)
	// GetByID 依 id 取得單筆；找不到時 ok 為 false
	GetByID(ctx context.Context, id int) (*T, bool, error)
	// Create 寫入新記錄並指派 id，回填至 rec
	Create(ctx context.Context, rec *T) error
	// Update 依 id 定位記錄並套用 mutate；找不到時 ok 為 false、集合不變
	Update(ctx context.Context, id int, mutate func(*T)) (*T, bool, error)
	// Delete 依 id 移除記錄；找不到時回傳 false、集合不變
	Delete(ctx context.Context, id int) (bool, error)
	// Count 回傳集合目前的記錄數
	Count(ctx context.Context) (int64, error)
}

// entity 約束：模型指標需能讀寫 id 與時間戳
type entity[T any] interface {
	*T
	GetID() int
	SetID(int)
	Stamp(now time.Time)
}

// Repository 所有集合的聚合入口
// 顯式建構後注入呼叫端，不以套件層級單例共享
type Repository struct {
	Teachers     Repo[model.Teacher]
	Members      Repo[model.Member]
	Publications Repo[model.Publication]
	Research     Repo[model.Research]
	Courses      Repo[model.Course]
	Awards       Repo[model.Award]
	Galleries    Repo[model.Gallery]
	Contacts     Repo[model.Contact]
}

// NewMemoryRepository 建立記憶體資料層（展示模式與測試）
func NewMemoryRepository() *Repository {
	return &Repository{
		Teachers:     NewMemoryRepo[model.Teacher, *model.Teacher](),
		Members:      NewMemoryRepo[model.Member, *model.Member](),
		Publications: NewMemoryRepo[model.Publication, *model.Publication](),
		Research:     NewMemoryRepo[model.Research, *model.Research](),
		Courses:      NewMemoryRepo[model.Course, *model.Course](),
		Awards:       NewMemoryRepo[model.Award, *model.Award](),
		Galleries:    NewMemoryRepo[model.Gallery, *model.Gallery](),
		Contacts:     NewMemoryRepo[model.Contact, *model.Contact](),
	}
}

// NewGormRepository 建立 PostgreSQL 資料層
func NewGormRepository(db *gorm.DB) *Repository {
	return &Repository{
		Teachers:     NewGormRepo[model.Teacher](db),
		Members:      NewGormRepo[model.Member](db),
		Publications: NewGormRepo[model.Publication](db),
		Research:     NewGormRepo[model.Research](db),
		Courses:      NewGormRepo[model.Course](db),
		Awards:       NewGormRepo[model.Award](db),
		Galleries:    NewGormRepo[model.Gallery](db),
		Contacts:     NewGormRepo[model.Contact](db),
	}
}
