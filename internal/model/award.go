package model

// Award 獲獎紀錄 — 對應 awards
type Award struct {
	Base
	Title        string `gorm:"type:varchar(200);not null" json:"title"`
	Recipient    string `gorm:"type:varchar(100)"          json:"recipient"`
	Organization string `gorm:"type:varchar(200)"          json:"organization"`
	Year         int    `gorm:"not null;default:0"         json:"year"`
	Category     string `gorm:"type:varchar(50)"           json:"category"` // 學生獎項 | 教師獎項 ...
}

// TableName 指定表名
func (Award) TableName() string { return "awards" }
