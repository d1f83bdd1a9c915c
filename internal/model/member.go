package model

// 成員狀態列舉
const (
	MemberStatusActive    = "在學"
	MemberStatusGraduated = "已畢業"
	MemberStatusLeft      = "已離職"
)

// Member 實驗室成員 — 對應 members
type Member struct {
	Base
	Name           string `gorm:"type:varchar(100);not null"            json:"name"`
	Position       string `gorm:"type:varchar(50)"                      json:"position"` // 碩士生 | 博士生 | 研究助理 ...
	Status         string `gorm:"type:varchar(20);not null;default:'在學'" json:"status"`
	Year           string `gorm:"type:varchar(10)"                      json:"year"`
	ResearchTopic  string `gorm:"type:text"                             json:"research_topic"`
	GraduationYear string `gorm:"type:varchar(10)"                      json:"graduation_year"`
}

// TableName 指定表名
func (Member) TableName() string { return "members" }
