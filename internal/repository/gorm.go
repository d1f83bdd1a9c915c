package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// gormRepo Repo 的 GORM/PostgreSQL 實作
// id 交由資料庫 identity 欄位產生，不沿用記憶體實作的 max+1 規則
type gormRepo[T any] struct {
	db *gorm.DB
}

// NewGormRepo 建立 GORM Repo
func NewGormRepo[T any](db *gorm.DB) Repo[T] {
	return &gormRepo[T]{db: db}
}

// orderClause 將排序規格轉為 ORDER BY 子句；欄位名稱已白名單化
func orderClause(spec string) (string, bool) {
	field, desc := parseSort(spec)
	if !validSortField(field) {
		return "", false
	}
	if desc {
		return fmt.Sprintf("%s DESC", field), true
	}
	return fmt.Sprintf("%s ASC", field), true
}

func (r *gormRepo[T]) List(ctx context.Context, q Query) ([]T, error) {
	var recs []T
	tx := r.db.WithContext(ctx)
	if ord, ok := orderClause(q.Sort); ok {
		tx = tx.Order(ord)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	err := tx.Find(&recs).Error
	return recs, err
}

func (r *gormRepo[T]) Filter(ctx context.Context, fields map[string]any, q Query) ([]T, error) {
	var recs []T
	tx := r.db.WithContext(ctx)
	if len(fields) > 0 {
		tx = tx.Where(map[string]interface{}(fields))
	}
	if ord, ok := orderClause(q.Sort); ok {
		tx = tx.Order(ord)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	err := tx.Find(&recs).Error
	return recs, err
}

func (r *gormRepo[T]) GetByID(ctx context.Context, id int) (*T, bool, error) {
	var rec T
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &rec, true, nil
}

func (r *gormRepo[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *gormRepo[T]) Update(ctx context.Context, id int, mutate func(*T)) (*T, bool, error) {
	var rec T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&rec).Error; err != nil {
			return err
		}
		mutate(&rec)
		return tx.Save(&rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &rec, true, nil
}

func (r *gormRepo[T]) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *gormRepo[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}
