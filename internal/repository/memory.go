package repository

import (
	"context"
	"sync"
	"time"
)

// memoryRepo Repo 的記憶體實作
// 單一互斥鎖涵蓋整個操作，max+1 的 id 指派對同集合而言是原子的；
// 讀取一律回傳複本，呼叫端改動結果不影響底層集合
type memoryRepo[T any, PT entity[T]] struct {
	mu   sync.RWMutex
	recs []T
}

// NewMemoryRepo 建立空集合的記憶體 Repo
func NewMemoryRepo[T any, PT entity[T]]() Repo[T] {
	return &memoryRepo[T, PT]{}
}

func (r *memoryRepo[T, PT]) List(_ context.Context, q Query) ([]T, error) {
	r.mu.RLock()
	out := make([]T, len(r.recs))
	copy(out, r.recs)
	r.mu.RUnlock()

	sortRecords(out, q.Sort)
	return limitRecords(out, q.Limit), nil
}

func (r *memoryRepo[T, PT]) Filter(_ context.Context, fields map[string]any, q Query) ([]T, error) {
	r.mu.RLock()
	out := make([]T, 0, len(r.recs))
	for _, rec := range r.recs {
		if matchFields(rec, fields) {
			out = append(out, rec)
		}
	}
	r.mu.RUnlock()

	sortRecords(out, q.Sort)
	return limitRecords(out, q.Limit), nil
}

func (r *memoryRepo[T, PT]) GetByID(_ context.Context, id int) (*T, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.recs {
		if PT(&r.recs[i]).GetID() == id {
			rec := r.recs[i]
			return &rec, true, nil
		}
	}
	return nil, false, nil
}

func (r *memoryRepo[T, PT]) Create(_ context.Context, rec *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// id = 集合內現有最大 id + 1，空集合時為 1
	next := 1
	for i := range r.recs {
		if id := PT(&r.recs[i]).GetID(); id >= next {
			next = id + 1
		}
	}

	p := PT(rec)
	p.SetID(next)
	p.Stamp(time.Now())

	r.recs = append(r.recs, *rec)
	return nil
}

func (r *memoryRepo[T, PT]) Update(_ context.Context, id int, mutate func(*T)) (*T, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.recs {
		if PT(&r.recs[i]).GetID() == id {
			mutate(&r.recs[i])
			PT(&r.recs[i]).Stamp(time.Now())
			rec := r.recs[i]
			return &rec, true, nil
		}
	}
	return nil, false, nil
}

func (r *memoryRepo[T, PT]) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.recs {
		if PT(&r.recs[i]).GetID() == id {
			r.recs = append(r.recs[:i], r.recs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepo[T, PT]) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.recs)), nil
}
