package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// GalleryImage 相簿內的單張照片
type GalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	Date    string `json:"date,omitempty"`
}

// ImageList 對應 PostgreSQL JSONB 欄位，實作 GORM Scanner/Valuer 介面
type ImageList []GalleryImage

// Scan 將 JSONB 內容解析為 []GalleryImage
func (l *ImageList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("ImageList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// Value 將 []GalleryImage 序列化為 JSONB 文字
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Gallery 活動相簿 — 對應 galleries
type Gallery struct {
	Base
	Title         string    `gorm:"type:varchar(200);not null"    json:"title"`
	Description   string    `gorm:"type:text"                     json:"description"`
	CoverImageURL string    `gorm:"type:text"                     json:"cover_image_url"`
	Images        ImageList `gorm:"type:jsonb;not null;default:'[]'" json:"images"`
	EventDate     string    `gorm:"type:varchar(10)"              json:"event_date"` // YYYY-MM-DD
	Category      string    `gorm:"type:varchar(50)"              json:"category"`   // 實驗室活動 | 學術會議 ...
}

// TableName 指定表名
func (Gallery) TableName() string { return "galleries" }
