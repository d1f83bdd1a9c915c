package model

// 研究類型列舉
const (
	ResearchTypeArea    = "研究方向"
	ResearchTypeProject = "研究專案"
)

// Research 研究主題 — 對應 research
type Research struct {
	Base
	Title       string `gorm:"type:text;not null"                        json:"title"`
	Description string `gorm:"type:text"                                 json:"description"`
	Type        string `gorm:"type:varchar(50);not null;default:'研究方向'" json:"type"`
	Status      string `gorm:"type:varchar(20);not null;default:'進行中'"  json:"status"` // 進行中 | 已完成
	StartYear   int    `gorm:"not null;default:0"                        json:"start_year"`
	EndYear     int    `gorm:"not null;default:0"                        json:"end_year"`
}

// TableName 指定表名
func (Research) TableName() string { return "research" }
