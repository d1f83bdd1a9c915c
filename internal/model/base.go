package model

import "time"

// Base 通用欄位（所有內容模型嵌入）
// 各集合的 id 各自獨立遞增，不做跨集合唯一
type Base struct {
	ID        int       `gorm:"primaryKey"                         json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// GetID 回傳記錄 id
func (b *Base) GetID() int { return b.ID }

// SetID 設定記錄 id（記憶體資料層指派 max+1 時使用）
func (b *Base) SetID(id int) { b.ID = id }

// Stamp 更新時間戳；首次寫入時一併設定 CreatedAt
func (b *Base) Stamp(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}
